package analysis

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyDataset = errors.New("no trips match the selected filters")
	ErrNoTripPairs  = errors.New("not enough trips to determine the most common trip")
)

// MissingCategoryError is returned by user stats when one of the expected
// user types never occurs in the filtered trips.
type MissingCategoryError struct {
	Category string
}

func (e *MissingCategoryError) Error() string {
	return fmt.Sprintf("no %q riders in the selected trips", e.Category)
}
