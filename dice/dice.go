// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package dice rolls fair dice on top of the rejection-sampling uniform
// sampler. A plain modulo over a random draw favors low faces whenever the
// source's cardinality isn't a multiple of the number of sides; the sampler
// removes that skew.
package dice

import (
	"errors"
	"math"

	"github.com/ava-labs/fairsample/sampler"
)

var (
	errNoSides      = errors.New("a die must have at least one side")
	errTooManySides = errors.New("too many sides")
)

// Die rolls values in [1, Sides()] with every face equally likely.
type Die struct {
	sides   uint64
	sampler sampler.Uniform
}

// New returns a die backed by the process-wide pseudorandom source.
func New(sides uint64) (*Die, error) {
	return newDie(sides, sampler.NewUniform())
}

// NewDeterministic returns a die that draws from [source].
func NewDeterministic(sides uint64, source sampler.Source) (*Die, error) {
	return newDie(sides, sampler.NewDeterministicUniform(source))
}

func newDie(sides uint64, s sampler.Uniform) (*Die, error) {
	if sides == 0 {
		return nil, errNoSides
	}
	if sides > math.MaxInt64 {
		return nil, errTooManySides
	}
	if err := s.Initialize(1, int64(sides)); err != nil {
		return nil, err
	}
	return &Die{
		sides:   sides,
		sampler: s,
	}, nil
}

func (d *Die) Sides() uint64 {
	return d.sides
}

// Roll returns a uniformly distributed face. Source failures propagate.
func (d *Die) Roll() (uint64, error) {
	v, err := d.sampler.Sample()
	return uint64(v), err
}

// Seed pins the die to a private seeded source for reproducible runs.
func (d *Die) Seed(seed int64) {
	d.sampler.Seed(seed)
}

// ClearSeed reverts Seed.
func (d *Die) ClearSeed() {
	d.sampler.ClearSeed()
}
