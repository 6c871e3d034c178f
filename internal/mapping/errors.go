package mapping

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceNotFound is returned when a mapping source does not exist.
	ErrResourceNotFound = errors.New("mapping resource not found")
	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("invalid mapping document")
	// ErrMappingNotFound is returned when no document has the requested transaction type.
	ErrMappingNotFound = errors.New("mapping not found")
)

// ParseError reports a document that failed to decode or validate.
// Index is the 0-based ordinal of the document in its source.
type ParseError struct {
	Index int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse mapping document %d: %v", e.Index, e.Err)
}

// Unwrap exposes both ErrParse and the underlying cause to errors.Is / errors.As.
func (e *ParseError) Unwrap() []error {
	return []error{ErrParse, e.Err}
}
