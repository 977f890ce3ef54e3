// Package shuffle turns column domains into combined rows.
//
// A Strategy works purely in index space: it receives the size of every domain and
// returns index-tuples. IndexShuffle maps those tuples back to column values, so the
// same strategy serves any value type.
package shuffle

import "github.com/haijima/allpairs/data"

// Shuffle combines columns into rows.
type Shuffle[V any] interface {
	Apply(cols data.Columns[V]) (data.Rows[V], error)
}

// Strategy computes index-tuples for the given domain sizes.
// Each tuple has len(sizes) elements and tuple[k] is in [0, sizes[k]).
// Implementations fail with an error marked ErrInvalidArgument if any size is below 1.
type Strategy interface {
	Generate(sizes []int) ([][]int, error)
}
