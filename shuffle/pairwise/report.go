package pairwise

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/haijima/allpairs/internal/util"
	"golang.org/x/exp/maps"
)

// Report describes how much of the needed-pair set a set of tuples covers.
type Report struct {
	Sizes       []int
	Tuples      int
	Needed      int
	Covered     int
	ColumnPairs []ColumnPairCoverage
}

type ColumnPairCoverage struct {
	Left, Right int
	Needed      int
	Covered     int
}

func (r *Report) Missing() int {
	return r.Needed - r.Covered
}

func (r *Report) Complete() bool {
	return r.Covered == r.Needed
}

// Cover audits tuples against the pairs needed for sizes.
// Every tuple must have len(sizes) in-range indices.
func Cover(sizes []int, tuples [][]int) *Report {
	positions := util.Seq(len(sizes))
	covered := util.NewSetMap[util.Pair[int], util.Pair[int]](positionPairs(len(sizes))...)
	for _, tuple := range tuples {
		util.PairCombinateFunc(positions, func(l, r int) {
			covered.Add(util.Pair[int]{L: l, R: r}, util.Pair[int]{L: tuple[l], R: tuple[r]})
		})
	}

	keys := maps.Keys(covered)
	slices.SortFunc(keys, func(a, b util.Pair[int]) int {
		return cmp.Or(cmp.Compare(a.L, b.L), cmp.Compare(a.R, b.R))
	})

	r := &Report{Sizes: sizes, Tuples: len(tuples), Needed: NeededPairs(sizes), Covered: covered.Len()}
	r.ColumnPairs = make([]ColumnPairCoverage, 0, len(keys))
	for _, k := range keys {
		r.ColumnPairs = append(r.ColumnPairs, ColumnPairCoverage{
			Left:    k.L,
			Right:   k.R,
			Needed:  sizes[k.L] * sizes[k.R],
			Covered: covered[k].Cardinality(),
		})
	}
	return r
}

// CrossProductSize returns the product of sizes. It is 0 for no sizes.
func CrossProductSize(sizes []int) *big.Int {
	if len(sizes) == 0 {
		return big.NewInt(0)
	}
	n := big.NewInt(1)
	for _, s := range sizes {
		n.Mul(n, big.NewInt(int64(s)))
	}
	return n
}
