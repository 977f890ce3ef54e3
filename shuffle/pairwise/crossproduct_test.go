package pairwise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(cp *crossProduct) [][]int {
	var out [][]int
	for {
		tuple, ok := cp.Next()
		if !ok {
			return out
		}
		out = append(out, tuple)
	}
}

func TestCrossProduct(t *testing.T) {
	tests := []struct {
		name  string
		sizes []int
		want  [][]int
	}{
		{"no positions", []int{}, nil},
		{"single", []int{3}, [][]int{{0}, {1}, {2}}},
		{"last position fastest", []int{2, 3}, [][]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}, {1, 1}, {1, 2}}},
		{"unit domains", []int{1, 1, 1}, [][]int{{0, 0, 0}}},
		{"three positions", []int{2, 1, 2}, [][]int{{0, 0, 0}, {0, 0, 1}, {1, 0, 0}, {1, 0, 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, collect(newCrossProduct(tt.sizes)))
		})
	}
}

func TestCrossProduct_returnsCopies(t *testing.T) {
	cp := newCrossProduct([]int{2})
	first, _ := cp.Next()
	first[0] = 42
	second, _ := cp.Next()

	assert.Equal(t, []int{1}, second)
}

func TestCrossProduct_exhausted(t *testing.T) {
	cp := newCrossProduct([]int{1})
	_, ok := cp.Next()
	assert.True(t, ok)
	_, ok = cp.Next()
	assert.False(t, ok)
	_, ok = cp.Next()
	assert.False(t, ok)
}
