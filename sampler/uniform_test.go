// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

func TestUniformInitializeInvalidRange(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(NewUniform().Initialize(1, 0), ErrInvalidRange)
}

func TestUniformInitializeRangeTooWide(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicUniform(NewScriptedSource(8))
	require.ErrorIs(s.Initialize(0, 1<<8), ErrRangeTooWide)
}

func TestUniformSampleInRange(t *testing.T) {
	ranges := []struct {
		minimum, maximum int64
	}{
		{0, 0},
		{0, 1},
		{1, 6},
		{-10, 10},
		{math.MinInt64, math.MaxInt64},
		{math.MaxInt64 - 5, math.MaxInt64},
		{math.MinInt64, math.MinInt64 + 5},
	}

	require := require.New(t)

	s := NewUniform()
	s.Seed(12345)
	for _, r := range ranges {
		require.NoError(s.Initialize(r.minimum, r.maximum))
		for i := 0; i < 1000; i++ {
			v, err := s.Sample()
			require.NoError(err)
			require.GreaterOrEqual(v, r.minimum)
			require.LessOrEqual(v, r.maximum)
		}
	}
}

func TestUniformSingletonRange(t *testing.T) {
	require := require.New(t)

	// Whatever the source produces, a single-value range returns its minimum.
	s := NewDeterministicUniform(NewScriptedSource(8, 255, 0, 37))
	require.NoError(s.Initialize(7, 7))
	for i := 0; i < 3; i++ {
		v, err := s.Sample()
		require.NoError(err)
		require.Equal(int64(7), v)
	}
}

func TestUniformEightBitSourceMapsEvenly(t *testing.T) {
	require := require.New(t)

	// Feed every 8-bit value through a six-sided range exactly once. The 252
	// values below the rejection threshold must map 42-to-1 onto each face;
	// 252 through 255 must be rejected.
	allBytes := make([]byte, 256)
	for i := range allBytes {
		allBytes[i] = byte(i)
	}
	source, err := NewReaderSource(bytes.NewReader(allBytes), 8)
	require.NoError(err)

	s := NewDeterministicUniform(source)
	require.NoError(s.Initialize(1, 6))

	counts := make(map[int64]int)
	samples := 0
	for {
		v, sampleErr := s.Sample()
		if sampleErr != nil {
			// The last four byte values were all rejected, so the redraw ran
			// off the end of the stream.
			require.ErrorIs(sampleErr, io.EOF)
			break
		}
		samples++
		counts[v]++
	}

	require.Equal(252, samples)
	for face := int64(1); face <= 6; face++ {
		require.Equal(42, counts[face])
	}
}

func TestUniformChiSquared(t *testing.T) {
	const (
		rangeSize = 10
		trials    = 100000
	)

	require := require.New(t)

	s := NewDeterministicUniform(NewPseudoSource(2024))
	require.NoError(s.Initialize(0, rangeSize-1))

	observed := make([]float64, rangeSize)
	expected := make([]float64, rangeSize)
	for i := range expected {
		expected[i] = float64(trials) / rangeSize
	}
	for i := 0; i < trials; i++ {
		v, err := s.Sample()
		require.NoError(err)
		observed[int(v)]++
	}

	chi2 := stat.ChiSquare(observed, expected)

	// The run is seeded, so this is a regression check rather than a flaky
	// statistical assertion.
	dist := distuv.ChiSquared{K: rangeSize - 1}
	require.Greater(dist.Survival(chi2), .001)
}

func TestUniformDeterministicReplay(t *testing.T) {
	require := require.New(t)

	first := NewDeterministicUniform(NewPseudoSource(7))
	second := NewDeterministicUniform(NewPseudoSource(7))
	require.NoError(first.Initialize(-3, 12))
	require.NoError(second.Initialize(-3, 12))

	for i := 0; i < 1000; i++ {
		v1, err := first.Sample()
		require.NoError(err)
		v2, err := second.Sample()
		require.NoError(err)
		require.Equal(v1, v2)
	}
}

func TestUniformSeededRunsMatch(t *testing.T) {
	require := require.New(t)

	s := NewUniform()
	require.NoError(s.Initialize(0, 99))

	sampleRun := func() []int64 {
		run := make([]int64, 100)
		for i := range run {
			v, err := s.Sample()
			require.NoError(err)
			run[i] = v
		}
		return run
	}

	s.Seed(1)
	firstRun := sampleRun()
	s.Seed(1)
	secondRun := sampleRun()
	require.Equal(firstRun, secondRun)

	s.ClearSeed()
	_, err := s.Sample()
	require.NoError(err)
}
