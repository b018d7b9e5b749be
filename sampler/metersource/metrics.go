// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metersource

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/fairsample/utils/wrappers"
)

func newCounterMetric(namespace, name string) prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      name,
		Help:      fmt.Sprintf("# of times a %s occurred", name),
	})
}

type metrics struct {
	draw,
	failure prometheus.Counter
}

func (m *metrics) Initialize(
	namespace string,
	registerer prometheus.Registerer,
) error {
	m.draw = newCounterMetric(namespace, "draw")
	m.failure = newCounterMetric(namespace, "failure")

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.draw),
		registerer.Register(m.failure),
	)
	return errs.Err
}
