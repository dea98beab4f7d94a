package engine

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidOptions is returned when request options fail validation
	// before any computation starts.
	ErrInvalidOptions = errors.New("invalid options")

	// ErrSourceUnavailable is returned when the candidate source call
	// fails. The engine does not retry; that belongs to the source.
	ErrSourceUnavailable = errors.New("candidate source unavailable")
)

// SourceError wraps a candidate source failure with the request context.
type SourceError struct {
	Genres []string
	Err    error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("fetching candidates for genres %v: %v", e.Genres, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
