// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"math"
	"time"

	safemath "github.com/ava-labs/fairsample/utils/math"
)

var errNoValidWeightedSamplers = errors.New("no valid weighted samplers found")

// weightedBest implements the Weighted interface.
//
// Initialize runs a short benchmark over the candidate implementations with
// this distribution and keeps whichever sampled fastest.
type weightedBest struct {
	Weighted

	samplers            []Weighted
	benchmarkIterations int
}

func (s *weightedBest) Initialize(weights []uint64) error {
	totalWeight := uint64(0)
	for _, weight := range weights {
		newWeight, err := safemath.Add64(totalWeight, weight)
		if err != nil {
			return err
		}
		totalWeight = newWeight
	}

	samples := []uint64(nil)
	if totalWeight > 0 {
		samples = make([]uint64, s.benchmarkIterations)
		for i := range samples {
			sample, err := globalRNG.Uint64Inclusive(totalWeight - 1)
			if err != nil {
				return err
			}
			samples[i] = sample
		}
	}

	bestDuration := time.Duration(math.MaxInt64)
	s.Weighted = nil
	for _, candidate := range s.samplers {
		// Candidates that can't represent this distribution are skipped
		// rather than failing the whole sampler.
		if err := candidate.Initialize(weights); err != nil {
			continue
		}

		start := time.Now()
		for _, sample := range samples {
			_, _ = candidate.Sample(sample)
		}
		if duration := time.Since(start); duration < bestDuration {
			bestDuration = duration
			s.Weighted = candidate
		}
	}

	if s.Weighted == nil {
		return errNoValidWeightedSamplers
	}
	return nil
}
