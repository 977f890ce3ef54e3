// Package data holds the column and row model consumed and produced by shuffles.
package data

// Column is a named domain of candidate values.
// Values are expected to be distinct; they are addressed by index only.
type Column[V any] struct {
	Name   string
	Values []V
}

func NewColumn[V any](name string, values ...V) Column[V] {
	return Column[V]{Name: name, Values: values}
}

func (c Column[V]) Size() int {
	return len(c.Values)
}

// Columns is an ordered list of columns. The order defines the row layout.
type Columns[V any] []Column[V]

func (cs Columns[V]) Sizes() []int {
	sizes := make([]int, len(cs))
	for i, c := range cs {
		sizes[i] = c.Size()
	}
	return sizes
}

func (cs Columns[V]) Names() []string {
	names := make([]string, len(cs))
	for i, c := range cs {
		names[i] = c.Name
	}
	return names
}
