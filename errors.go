package finpredictor

import (
	"errors"
	"fmt"
)

var (
	// ErrDomain is matched by every DomainError.
	ErrDomain = errors.New("value outside of the calculation domain")
	// ErrInvalid reports an input that fails validation.
	ErrInvalid = errors.New("invalid input")
)

// DomainError reports an input for which a calculation has no finite result,
// e.g. an inflation rate of -100% or less.
type DomainError struct {
	Op    string  // calculation that refused the input
	Field string  // offending input
	Value float64 // offending value
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s %v is outside of the calculation domain", e.Op, e.Field, e.Value)
}

// Is makes errors.Is(err, ErrDomain) true for any DomainError.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// invalidf returns an error wrapping ErrInvalid.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}
