// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package dice

import "golang.org/x/exp/slices"

// Frequency tallies roll outcomes. It is owned by whatever harness drives the
// die; the samplers themselves keep no statistics.
type Frequency map[uint64]uint64

func (f Frequency) Observe(value uint64) {
	f[value]++
}

func (f Frequency) Count(value uint64) uint64 {
	return f[value]
}

// Trials returns the total number of observations.
func (f Frequency) Trials() uint64 {
	total := uint64(0)
	for _, count := range f {
		total += count
	}
	return total
}

// Percent returns the share of observations that produced [value], in
// [0, 100].
func (f Frequency) Percent(value uint64) float64 {
	trials := f.Trials()
	if trials == 0 {
		return 0
	}
	return 100 * float64(f[value]) / float64(trials)
}

// Values returns the observed outcomes in increasing order.
func (f Frequency) Values() []uint64 {
	values := make([]uint64, 0, len(f))
	for value := range f {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}

// LongRunningFrequency rolls [die] [trials] times and tallies the outcomes.
func LongRunningFrequency(die *Die, trials uint64) (Frequency, error) {
	frequency := make(Frequency, die.Sides())
	for i := uint64(0); i < trials; i++ {
		roll, err := die.Roll()
		if err != nil {
			return nil, err
		}
		frequency.Observe(roll)
	}
	return frequency, nil
}
