// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWithoutReplacementSamplesEveryValueOnce(t *testing.T) {
	require := require.New(t)

	s := NewWithoutReplacement()
	require.NoError(s.Initialize(5))

	sampled, err := s.Sample(5)
	require.NoError(err)
	require.ElementsMatch([]uint64{0, 1, 2, 3, 4}, sampled)
}

func TestWithoutReplacementExhaustion(t *testing.T) {
	require := require.New(t)

	s := NewWithoutReplacement()
	require.NoError(s.Initialize(2))

	_, err := s.Sample(3)
	require.ErrorIs(err, ErrOutOfRange)
}

func TestWithoutReplacementNextAndReset(t *testing.T) {
	require := require.New(t)

	s := NewWithoutReplacement()
	require.NoError(s.Initialize(1))

	v, err := s.Next()
	require.NoError(err)
	require.Zero(v)

	_, err = s.Next()
	require.ErrorIs(err, ErrOutOfRange)

	s.Reset()

	v, err = s.Next()
	require.NoError(err)
	require.Zero(v)
}

func TestWithoutReplacementDeterministic(t *testing.T) {
	require := require.New(t)

	first := NewDeterministicWithoutReplacement(NewPseudoSource(33))
	second := NewDeterministicWithoutReplacement(NewPseudoSource(33))
	require.NoError(first.Initialize(100))
	require.NoError(second.Initialize(100))

	firstSampled, err := first.Sample(10)
	require.NoError(err)
	secondSampled, err := second.Sample(10)
	require.NoError(err)
	require.Equal(firstSampled, secondSampled)
}

func TestWithoutReplacementRangeTooWide(t *testing.T) {
	require := require.New(t)

	s := NewDeterministicWithoutReplacement(NewScriptedSource(8))
	require.ErrorIs(s.Initialize(1<<8+1), ErrRangeTooWide)
}
