package shuffle

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidArgument marks errors caused by input that cannot be combined.
var ErrInvalidArgument = errors.New("invalid argument")

// EmptyDomainError reports the positions of columns without any value.
type EmptyDomainError struct {
	Positions []int
}

func (e *EmptyDomainError) Error() string {
	return fmt.Sprintf("empty domain at position(s) %v", e.Positions)
}

// ValidateSizes checks that every domain has at least one value.
// It is called by strategies before any tuple is produced.
func ValidateSizes(sizes []int) error {
	var positions []int
	for i, n := range sizes {
		if n < 1 {
			positions = append(positions, i)
		}
	}
	if len(positions) > 0 {
		return errors.Mark(&EmptyDomainError{Positions: positions}, ErrInvalidArgument)
	}
	return nil
}
