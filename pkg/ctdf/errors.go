package ctdf

import (
	"errors"
	"fmt"
)

var ErrInvalidQuery = errors.New("invalid query")

// ValidationError reports the query parameter that stopped a search from running.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Reason)
	}

	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Reason, e.Value)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidQuery
}
