package data

// Row holds one value per column, in column order.
type Row[V any] []V

// Rows is the ordered output of a shuffle.
type Rows[V any] []Row[V]

// Column returns the values found at the given column position of every row.
func (rs Rows[V]) Column(pos int) []V {
	values := make([]V, 0, len(rs))
	for _, r := range rs {
		values = append(values, r[pos])
	}
	return values
}
