// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sort"

	safemath "github.com/ava-labs/fairsample/utils/math"
)

type weightedArrayElement struct {
	cumulativeWeight uint64
	index            int
}

// weightedArray implements the Weighted interface.
//
// Sampling is performed by executing a binary search over the provided
// elements in the order of their cumulative weight.
//
// Initialization takes O(n) time, where n is the number of elements that can
// be sampled.
//
// Sampling can take up to O(log(n)) time.
type weightedArray struct {
	arr []weightedArrayElement
}

func (s *weightedArray) Initialize(weights []uint64) error {
	numWeights := len(weights)
	if numWeights <= cap(s.arr) {
		s.arr = s.arr[:numWeights]
	} else {
		s.arr = make([]weightedArrayElement, numWeights)
	}

	cumulativeWeight := uint64(0)
	for i, weight := range weights {
		newWeight, err := safemath.Add64(cumulativeWeight, weight)
		if err != nil {
			return err
		}
		cumulativeWeight = newWeight
		s.arr[i] = weightedArrayElement{
			cumulativeWeight: cumulativeWeight,
			index:            i,
		}
	}

	return nil
}

func (s *weightedArray) Sample(value uint64) (int, error) {
	if len(s.arr) == 0 || s.arr[len(s.arr)-1].cumulativeWeight <= value {
		return 0, ErrOutOfRange
	}

	index := sort.Search(len(s.arr), func(i int) bool {
		return value < s.arr[i].cumulativeWeight
	})
	return s.arr[index].index, nil
}
