package pairwise

import (
	"github.com/haijima/allpairs/internal/util"
)

// pairKey identifies one value pair of one column pair. colA < colB always holds.
type pairKey struct {
	colA, valA int
	colB, valB int
}

func positionPairs(n int) []util.Pair[int] {
	return util.PairCombinate(util.Seq(n))
}

// tupleKeys writes the pair keys of tuple into dst, one per position pair.
func tupleKeys(tuple []int, pairs []util.Pair[int], dst []pairKey) []pairKey {
	dst = dst[:0]
	for _, p := range pairs {
		dst = append(dst, pairKey{colA: p.L, valA: tuple[p.L], colB: p.R, valB: tuple[p.R]})
	}
	return dst
}

// NeededPairs returns the number of value pairs a pairwise covering set must contain:
// the sum of sizes[i]*sizes[j] over all i < j.
func NeededPairs(sizes []int) int {
	var needed, prefix int
	for _, n := range sizes {
		needed += prefix * n
		prefix += n
	}
	return needed
}
