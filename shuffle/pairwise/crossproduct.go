package pairwise

// crossProduct enumerates every index-tuple of the given sizes in lexicographic
// order, the last position varying fastest: (0,0), (0,1), ..., (1,0), ...
// All sizes must be at least 1.
type crossProduct struct {
	sizes   []int
	current []int
	started bool
	done    bool
}

func newCrossProduct(sizes []int) *crossProduct {
	return &crossProduct{sizes: sizes, current: make([]int, len(sizes)), done: len(sizes) == 0}
}

// Next returns a fresh copy of the next tuple, or false once the product is exhausted.
func (c *crossProduct) Next() ([]int, bool) {
	if c.done {
		return nil, false
	}
	if c.started && !c.advance() {
		c.done = true
		return nil, false
	}
	c.started = true

	tuple := make([]int, len(c.current))
	copy(tuple, c.current)
	return tuple, true
}

func (c *crossProduct) advance() bool {
	for k := len(c.current) - 1; k >= 0; k-- {
		c.current[k]++
		if c.current[k] < c.sizes[k] {
			return true
		}
		c.current[k] = 0 // carry
	}
	return false
}
