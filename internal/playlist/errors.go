package playlist

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when building a playlist without items.
var ErrEmpty = errors.New("playlist is empty")

// ErrNotFound is returned by lookups for unknown ids.
var ErrNotFound = errors.New("playlist item not found")

// OutOfRangeError is returned when navigating past either end.
type OutOfRangeError struct {
	Index int
	Len   int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("playlist index %d out of range [0, %d)", e.Index, e.Len)
}
