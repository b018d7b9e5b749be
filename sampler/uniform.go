// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "errors"

// ErrInvalidRange is returned when a range's maximum is below its minimum.
var ErrInvalidRange = errors.New("maximum must be greater than or equal to minimum")

// Uniform samples integers uniformly at random from an inclusive range
type Uniform interface {
	Initialize(minimum, maximum int64) error
	Sample() (int64, error)

	Seed(int64)
	ClearSeed()
}

// NewUniform returns a new sampler backed by the process-wide pseudorandom
// source
func NewUniform() Uniform {
	return &uniformRange{
		defaultRNG: globalRNG,
		seededRNG:  newRNG(),
		rng:        globalRNG,
	}
}

// NewDeterministicUniform returns a new sampler that draws from [source]
func NewDeterministicUniform(source Source) Uniform {
	r := &rng{src: source}
	return &uniformRange{
		defaultRNG: r,
		seededRNG:  r,
		rng:        r,
	}
}
