package shuffle

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/haijima/allpairs/data"
)

// IndexShuffle adapts a Strategy to column values.
// It holds no mutable state and can be shared between goroutines.
type IndexShuffle[V any] struct {
	strategy Strategy
}

var _ Shuffle[any] = (*IndexShuffle[any])(nil)

func NewIndexShuffle[V any](strategy Strategy) *IndexShuffle[V] {
	return &IndexShuffle[V]{strategy: strategy}
}

func (s *IndexShuffle[V]) Strategy() Strategy {
	return s.strategy
}

// Tuples asks the strategy for the index-tuples of cols. A failure caused by
// empty domains carries a hint naming those columns. Zero columns produce no
// tuples and the strategy is not invoked.
func (s *IndexShuffle[V]) Tuples(cols data.Columns[V]) ([][]int, error) {
	if len(cols) == 0 {
		return [][]int{}, nil
	}

	tuples, err := s.strategy.Generate(cols.Sizes())
	if err != nil {
		var ede *EmptyDomainError
		if errors.As(err, &ede) {
			return nil, errors.WithHintf(err, "columns without values: %s", describe(cols, ede.Positions))
		}
		return nil, err
	}
	return tuples, nil
}

// Apply maps every tuple returned by Tuples to a row of values, keeping the
// strategy's output order.
func (s *IndexShuffle[V]) Apply(cols data.Columns[V]) (data.Rows[V], error) {
	tuples, err := s.Tuples(cols)
	if err != nil {
		return nil, err
	}

	rows := make(data.Rows[V], 0, len(tuples))
	for _, tuple := range tuples {
		row := make(data.Row[V], len(tuple))
		for k, idx := range tuple {
			row[k] = cols[k].Values[idx]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func describe[V any](cols data.Columns[V], positions []int) string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		if p < len(cols) && cols[p].Name != "" {
			names = append(names, fmt.Sprintf("%q (#%d)", cols[p].Name, p))
		} else {
			names = append(names, fmt.Sprintf("#%d", p))
		}
	}
	return strings.Join(names, ", ")
}
