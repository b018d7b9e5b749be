// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import "golang.org/x/exp/maps"

// withoutReplacementResample allows for sampling over a uniform distribution
// without replacement.
//
// Sampling is performed by sampling with replacement and resampling if a
// duplicate is sampled.
//
// Initialization takes O(1) time.
//
// Sampling is performed in O(count) time and O(count) space.
type withoutReplacementResample struct {
	defaultRNG *rng
	seededRNG  *rng
	rng        *rng
	length     uint64
	drawn      map[uint64]struct{}
}

func (s *withoutReplacementResample) Initialize(length uint64) error {
	if length > 0 {
		if w := s.rng.width(); w < 64 && length-1 >= uint64(1)<<w {
			return ErrRangeTooWide
		}
	}
	s.length = length
	s.drawn = make(map[uint64]struct{})
	return nil
}

func (s *withoutReplacementResample) Sample(count int) ([]uint64, error) {
	s.Reset()

	results := make([]uint64, count)
	for i := 0; i < count; i++ {
		ret, err := s.Next()
		if err != nil {
			return nil, err
		}
		results[i] = ret
	}
	return results, nil
}

func (s *withoutReplacementResample) Seed(seed int64) {
	s.rng = s.seededRNG
	s.rng.Seed(seed)
}

func (s *withoutReplacementResample) ClearSeed() {
	s.rng = s.defaultRNG
}

func (s *withoutReplacementResample) Reset() {
	maps.Clear(s.drawn)
}

func (s *withoutReplacementResample) Next() (uint64, error) {
	i := uint64(len(s.drawn))
	if i >= s.length {
		return 0, ErrOutOfRange
	}

	for {
		draw, err := s.rng.Uint64Inclusive(s.length - 1)
		if err != nil {
			return 0, err
		}
		if _, ok := s.drawn[draw]; ok {
			continue
		}
		s.drawn[draw] = struct{}{}
		return draw, nil
	}
}
