package matching

import (
	"errors"
	"fmt"
)

// ErrRequesterNotFound is returned when the requester id is absent from the pool.
var ErrRequesterNotFound = errors.New("requester not found in candidate pool")

// ValidationError reports a profile whose required identity field is missing
// or unreadable. Input holds the rejected value when there was one.
type ValidationError struct {
	ProfileID string
	Field     string
	Input     string
}

func (e *ValidationError) Error() string {
	problem := "missing " + e.Field
	if e.Input != "" {
		problem = fmt.Sprintf("unrecognized %s %q", e.Field, e.Input)
	}
	if e.ProfileID != "" {
		return fmt.Sprintf("validation error: profile %s: %s", e.ProfileID, problem)
	}
	return "validation error: " + problem
}

// MalformedRangeError reports a preferred age range that could not be parsed.
type MalformedRangeError struct {
	Input  string
	Reason string
}

func (e *MalformedRangeError) Error() string {
	return fmt.Sprintf("malformed age range %q: %s", e.Input, e.Reason)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
