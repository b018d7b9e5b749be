// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersource

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/fairsample/sampler"
)

var _ sampler.Source = (*meterSource)(nil)

// New returns a Source that counts draws and draw failures of [source] in
// [registerer]. Comparing the draw count against the number of returned
// samples exposes the rejection overhead without the samplers themselves
// reporting retries.
func New(
	namespace string,
	registerer prometheus.Registerer,
	source sampler.Source,
) (sampler.Source, error) {
	meter := &meterSource{src: source}
	return meter, meter.metrics.Initialize(namespace, registerer)
}

type meterSource struct {
	metrics
	src sampler.Source
}

func (m *meterSource) Uint64() (uint64, error) {
	// Every attempt counts as a draw; failures are counted on top.
	m.draw.Inc()
	v, err := m.src.Uint64()
	if err != nil {
		m.failure.Inc()
		return 0, err
	}
	return v, nil
}

func (m *meterSource) Bits() uint {
	return m.src.Bits()
}
