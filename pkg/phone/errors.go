package phone

import (
	"errors"
	"fmt"
)

var ErrEmptyInput = errors.New("no number given")

// ParseError means the input could not be read as a phone number at all.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse `%s`: %s", e.Input, e.Err.Error())
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError means the input parsed but is not a number that can be
// dialled in its region.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string {
	return "Invalid number"
}

// IsParseError and IsValidationError save callers an errors.As dance.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
