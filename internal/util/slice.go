package util

import (
	"cmp"
	"slices"
)

type Pair[T any] struct{ L, R T }

// PairCombinate returns every pair {a[i], a[j]} with i < j of the sorted, deduplicated elements.
func PairCombinate[T cmp.Ordered](a []T) []Pair[T] {
	a = slices.Compact(slices.Sorted(slices.Values(a)))

	r := make([]Pair[T], 0, len(a)*(len(a)-1)/2)
	for i, a1 := range a {
		for _, a2 := range a[i+1:] {
			r = append(r, Pair[T]{a1, a2})
		}
	}
	return r
}

func PairCombinateFunc[T cmp.Ordered](a []T, f func(l, r T)) {
	for _, p := range PairCombinate(a) {
		f(p.L, p.R)
	}
}

// Seq returns 0, 1, ..., n-1.
func Seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}
