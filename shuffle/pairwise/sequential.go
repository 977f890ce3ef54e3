package pairwise

import (
	"log/slog"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/haijima/allpairs/shuffle"
)

// SequentialStrategy walks the full cross-product in lexicographic order (last
// position fastest) and keeps a tuple only if it covers at least one value pair
// no earlier kept tuple covered. The walk stops as soon as every pair is covered.
//
// With a single column there are no pairs; every value is then returned once,
// in domain order. The zero value is ready to use and holds no state.
type SequentialStrategy struct{}

var _ shuffle.Strategy = SequentialStrategy{}

func (SequentialStrategy) Generate(sizes []int) ([][]int, error) {
	if err := shuffle.ValidateSizes(sizes); err != nil {
		return nil, err
	}

	switch len(sizes) {
	case 0:
		return [][]int{}, nil
	case 1:
		tuples := make([][]int, sizes[0])
		for i := range tuples {
			tuples[i] = []int{i}
		}
		return tuples, nil
	}

	pairs := positionPairs(len(sizes))
	needed := NeededPairs(sizes)
	covered := mapset.NewThreadUnsafeSetWithSize[pairKey](needed)
	keys := make([]pairKey, 0, len(pairs))

	accepted := make([][]int, 0)
	examined := 0
	for cp := newCrossProduct(sizes); covered.Cardinality() < needed; {
		tuple, ok := cp.Next()
		if !ok {
			break
		}
		examined++

		keys = tupleKeys(tuple, pairs, keys)
		if covered.Contains(keys...) {
			continue
		}
		covered.Append(keys...)
		accepted = append(accepted, tuple)
	}

	slog.Debug("sequential pairwise generation", "sizes", sizes, "needed", needed, "examined", examined, "accepted", len(accepted))
	return accepted, nil
}
