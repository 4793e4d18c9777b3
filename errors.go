package dateformat

import (
	"errors"
	"fmt"
)

var (
	// ErrNoMatch is returned by Parse when the input does not satisfy
	// the compiled pattern.
	ErrNoMatch = errors.New("input does not match format")

	// ErrInvalidDate is returned by Parse when the extracted fields do
	// not form a valid calendar date-time.
	ErrInvalidDate = errors.New("invalid date")

	// ErrUnknownTimezone is returned by Parse when a captured zone name
	// is not known to the timezone provider.
	ErrUnknownTimezone = errors.New("unknown timezone")

	// ErrMissingTimezone is returned by Format when the specification
	// requires zone information but the value carries none.
	ErrMissingTimezone = errors.New("value carries no timezone")

	// ErrUnresolvedTimezone is returned by Format when the value's zone
	// has neither a canonical name nor an abbreviation.
	ErrUnresolvedTimezone = errors.New("timezone cannot be named")
)

// SpecError reports a fragment of a format specification that matches
// no catalog token. It is fatal to construction.
type SpecError struct {
	Fragment string
}

func (e *SpecError) Error() string {
	return fmt.Sprintf("dateformat: could not parse %q", e.Fragment)
}
