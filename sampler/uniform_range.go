// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

// uniformRange allows for sampling over a uniform distribution with
// replacement from an inclusive integer range.
//
// Each call to Sample is independent and holds no state beyond the source, so
// a uniformRange is safe for concurrent use when its source is.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(1) expected time; the draw count per sample
// follows a geometric distribution with success probability above 1/2.
type uniformRange struct {
	defaultRNG *rng
	seededRNG  *rng
	rng        *rng
	minimum    int64
	n          uint64 // number of values in the range, minus one
}

func (s *uniformRange) Initialize(minimum, maximum int64) error {
	if maximum < minimum {
		return ErrInvalidRange
	}
	// The difference of any two int64 values fits in a uint64.
	n := uint64(maximum) - uint64(minimum)
	if w := s.rng.width(); w < 64 && n >= uint64(1)<<w {
		return ErrRangeTooWide
	}
	s.minimum = minimum
	s.n = n
	return nil
}

func (s *uniformRange) Sample() (int64, error) {
	v, err := s.rng.Uint64Inclusive(s.n)
	if err != nil {
		return 0, err
	}
	// Wrapping addition maps [0, n] back onto [minimum, maximum] for any
	// int64 range.
	return s.minimum + int64(v), nil
}

func (s *uniformRange) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *uniformRange) ClearSeed() {
	s.rng = s.defaultRNG
}
