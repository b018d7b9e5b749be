// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

// ErrOutOfRange is returned when a sampler is asked for more values than its
// range contains or for a value outside its distribution.
var ErrOutOfRange = errors.New("out of range")

// WithoutReplacement samples values without replacement in the provided range
type WithoutReplacement interface {
	Initialize(sampleRange uint64) error
	Sample(length int) ([]uint64, error)

	Seed(int64)
	ClearSeed()

	Reset()
	Next() (uint64, error)
}

// NewWithoutReplacement returns a new sampler
func NewWithoutReplacement() WithoutReplacement {
	return &withoutReplacementResample{
		defaultRNG: globalRNG,
		seededRNG:  newRNG(),
		rng:        globalRNG,
	}
}

// NewDeterministicWithoutReplacement returns a new sampler that draws from
// [source]
func NewDeterministicWithoutReplacement(source Source) WithoutReplacement {
	r := &rng{src: source}
	return &withoutReplacementResample{
		defaultRNG: r,
		seededRNG:  r,
		rng:        r,
	}
}
