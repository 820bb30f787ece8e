package system

import (
	"errors"
	"fmt"
)

// ErrUnavailable matches every *UnavailableError with errors.Is
var ErrUnavailable = errors.New("metric unavailable")

// UnavailableError reports that the host does not expose a metric category
type UnavailableError struct {
	Category string
	Err      error
}

func (e *UnavailableError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Category, ErrUnavailable)
	}
	return fmt.Sprintf("%s unavailable: %v", e.Category, e.Err)
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}

func unavailable(category string, err error) error {
	return &UnavailableError{Category: category, Err: err}
}
