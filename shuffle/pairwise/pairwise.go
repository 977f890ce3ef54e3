// Package pairwise generates rows that cover every value pair of every two columns.
//
//	rows, err := pairwise.Apply(data.Columns[string]{
//		data.NewColumn("browser", "chrome", "firefox", "safari"),
//		data.NewColumn("os", "linux", "macos", "windows"),
//		data.NewColumn("locale", "en", "ja"),
//	})
package pairwise

import (
	"github.com/haijima/allpairs/data"
	"github.com/haijima/allpairs/shuffle"
)

// Sequential is the ready-made sequential filtering strategy.
// It carries no state and may be shared by any number of goroutines.
var Sequential shuffle.Strategy = SequentialStrategy{}

// New returns a shuffle backed by Sequential.
func New[V any]() *shuffle.IndexShuffle[V] {
	return shuffle.NewIndexShuffle[V](Sequential)
}

// Apply runs a one-shot sequential pairwise shuffle over cols.
func Apply[V any](cols data.Columns[V]) (data.Rows[V], error) {
	return New[V]().Apply(cols)
}
