// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"math"
	"sync"
)

// ErrRangeTooWide is returned when a requested range has more values than the
// backing source can produce in a single draw.
var ErrRangeTooWide = errors.New("range exceeds source width")

type seeder interface {
	Seed(uint64)
}

type rng struct {
	lock sync.Mutex
	src  Source
}

// Uint64Inclusive returns a uniformly distributed number in [0,n].
//
// Draws at or above the largest multiple of n+1 that the source width can
// represent are discarded and redrawn, so the returned value carries no
// modulo bias. The number of draws per call is geometrically distributed with
// success probability above 1/2; there is no hard bound on retries.
func (r *rng) Uint64Inclusive(n uint64) (uint64, error) {
	w := r.width()
	if w < 64 && n >= uint64(1)<<w {
		return 0, ErrRangeTooWide
	}
	switch {
	// n+1 is power of two, so we can just mask. Every draw is accepted.
	//
	// Note: This does work for MaxUint64 as overflow is explicitly part of the
	// compiler specification: https://go.dev/ref/spec#Integer_overflow
	case n&(n+1) == 0:
		v, err := r.uint64()
		return v & n, err

	// n is greater than MaxUint64/2 so we need to just iterate until we get a
	// number in the requested range.
	case n > math.MaxInt64:
		for {
			v, err := r.uint64()
			if err != nil {
				return 0, err
			}
			if v <= n {
				return v, nil
			}
		}

	// n is less than half the source's cardinality so we generate a number in
	// the range [0, k*(n+1)) where k is the largest integer such that k*(n+1)
	// does not exceed the source's cardinality.
	default:
		var (
			maximum uint64
			draw    func() (uint64, error)
		)
		if w == 64 {
			// We can't easily find k such that k*(n+1) is less than or equal
			// to MaxUint64 because the calculation would overflow, so draw
			// 63-bit values instead.
			//
			// ref: https://github.com/golang/go/blob/ce10e9d84574112b224eae88dc4e0f43710808de/src/math/rand/rand.go#L127-L132
			maximum = (1 << 63) - 1 - (1<<63)%(n+1)
			draw = r.uint63
		} else {
			maximum = (uint64(1) << w) - (uint64(1)<<w)%(n+1) - 1
			draw = r.uint64
		}
		for {
			v, err := draw()
			if err != nil {
				return 0, err
			}
			if v <= maximum {
				return v % (n + 1), nil
			}
		}
	}
}

// uint63 returns a random number in [0, MaxInt64]
func (r *rng) uint63() (uint64, error) {
	v, err := r.uint64()
	return v & math.MaxInt64, err
}

// uint64 returns a random number over the source's full width
func (r *rng) uint64() (uint64, error) {
	// Note: We must grab a write lock here because the source advances
	// internal state.
	r.lock.Lock()
	v, err := r.src.Uint64()
	r.lock.Unlock()
	return v, err
}

func (r *rng) width() uint {
	return r.src.Bits()
}

// Seed reseeds the underlying source if it supports seeding and is a no-op
// otherwise.
func (r *rng) Seed(seed int64) {
	r.lock.Lock()
	if s, ok := r.src.(seeder); ok {
		s.Seed(uint64(seed))
	}
	r.lock.Unlock()
}
