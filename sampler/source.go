// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source produces independent, uniformly distributed fixed-width unsigned
// integers. Every value in [0, 2^Bits()-1] must be equally likely on each
// draw and draws must be mutually independent; the samplers treat this as a
// precondition and cannot detect or correct a biased source.
type Source interface {
	// Uint64 returns a random number in [0, 2^Bits()-1] and advances the
	// source's state. Sources that can fail report the failure here; the
	// samplers propagate it to the caller without retrying.
	Uint64() (uint64, error)

	// Bits returns the width of the values produced by Uint64, in [1, 64].
	// The width is fixed for the lifetime of the source.
	Bits() uint
}

var globalRNG = newRNG()

func newRNG() *rng {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(uint64(time.Now().UnixNano()))
	return &rng{src: &prngSource{mt: source}}
}

// NewPseudoSource returns a seedable 64-bit pseudorandom Source. It never
// fails and is not cryptographically secure.
func NewPseudoSource(seed uint64) Source {
	source := prng.NewMT19937()
	source.Seed(seed)
	return &prngSource{mt: source}
}

type prngSource struct {
	mt *prng.MT19937
}

func (s *prngSource) Uint64() (uint64, error) {
	return s.mt.Uint64(), nil
}

func (*prngSource) Bits() uint {
	return 64
}

func (s *prngSource) Seed(seed uint64) {
	s.mt.Seed(seed)
}
