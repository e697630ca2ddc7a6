package pricing

import (
	"errors"
	"fmt"
)

// ErrDomain is matched by every input that falls outside the Black-Scholes domain.
var ErrDomain = errors.New("pricing: input outside domain")

// DomainError reports the offending field of a rejected pricing input.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("pricing: invalid %s: %v", e.Field, e.Value)
}

func (e *DomainError) Is(target error) bool {
	return target == ErrDomain
}

// RecordError ties a failure to its position in a batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
