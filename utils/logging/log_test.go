// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestToLevel(t *testing.T) {
	require := require.New(t)

	for _, level := range []Level{Debug, Info, Warn, Error, Fatal, Off} {
		parsed, err := ToLevel(level.String())
		require.NoError(err)
		require.Equal(level, parsed)
	}

	parsed, err := ToLevel("info")
	require.NoError(err)
	require.Equal(Info, parsed)

	_, err = ToLevel("verbose")
	require.Error(err)
}

func TestLoggerRespectsLevel(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	log := NewLogger("test", Info, &buf)
	log.Debug("hidden entry")
	log.Info("shown entry", zap.String("key", "value"))
	log.Stop()

	require.NotContains(buf.String(), "hidden entry")
	require.Contains(buf.String(), "shown entry")
	require.Contains(buf.String(), "value")
}

func TestLoggerOff(t *testing.T) {
	require := require.New(t)

	var buf bytes.Buffer
	log := NewLogger("test", Off, &buf)
	log.Error("dropped")
	log.Stop()

	require.Empty(buf.String())
}
