package books

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("book not found")
	ErrInvalidBook = errors.New("invalid book")
)

func invalid(field, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidBook, field, reason)
}
