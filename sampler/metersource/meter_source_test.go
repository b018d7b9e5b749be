// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersource

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/fairsample/sampler"
)

func TestMeterSourceCounts(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	source, err := New("test", registry, sampler.NewScriptedSource(8, 1, 2))
	require.NoError(err)
	require.Equal(uint(8), source.Bits())

	v, err := source.Uint64()
	require.NoError(err)
	require.Equal(uint64(1), v)

	_, err = source.Uint64()
	require.NoError(err)

	_, err = source.Uint64()
	require.ErrorIs(err, sampler.ErrScriptExhausted)

	// The failed attempt still counts as a draw.
	meter := source.(*meterSource)
	require.Equal(float64(3), testutil.ToFloat64(meter.draw))
	require.Equal(float64(1), testutil.ToFloat64(meter.failure))
}

func TestMeterSourceSamplesUnchanged(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	source, err := New("test", registry, sampler.NewPseudoSource(9))
	require.NoError(err)

	metered := sampler.NewDeterministicUniform(source)
	plain := sampler.NewDeterministicUniform(sampler.NewPseudoSource(9))
	require.NoError(metered.Initialize(1, 6))
	require.NoError(plain.Initialize(1, 6))

	for i := 0; i < 100; i++ {
		meteredValue, err := metered.Sample()
		require.NoError(err)
		plainValue, err := plain.Sample()
		require.NoError(err)
		require.Equal(plainValue, meteredValue)
	}
}

func TestMeterSourceDuplicateRegistration(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	_, err := New("test", registry, sampler.NewPseudoSource(0))
	require.NoError(err)

	_, err = New("test", registry, sampler.NewPseudoSource(0))
	require.Error(err)
}
