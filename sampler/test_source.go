// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

// ErrScriptExhausted is returned by a scripted source once its draws are
// spent.
var ErrScriptExhausted = errors.New("scripted source exhausted")

// NewScriptedSource returns a width-[bits] Source that replays [script] in
// order and fails with ErrScriptExhausted afterwards. It is intended for
// tests that need to force specific draws, rejections, or failures.
func NewScriptedSource(bits uint, script ...uint64) Source {
	return &scriptedSource{
		bits:   bits,
		script: script,
	}
}

type scriptedSource struct {
	bits   uint
	script []uint64
}

func (s *scriptedSource) Uint64() (uint64, error) {
	if len(s.script) == 0 {
		return 0, ErrScriptExhausted
	}
	draw := s.script[0]
	s.script = s.script[1:]
	return draw, nil
}

func (s *scriptedSource) Bits() uint {
	return s.bits
}

// CountingSource wraps a Source and counts every draw made against it. Tests
// use it to assert on rejection overhead.
type CountingSource struct {
	Source

	Draws int
}

func (s *CountingSource) Uint64() (uint64, error) {
	s.Draws++
	return s.Source.Uint64()
}
