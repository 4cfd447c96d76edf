package timecode

import "fmt"

// ErrorType classifies a timecode failure.
type ErrorType string

const (
	ErrorTypeSyntax          ErrorType = "SYNTAX_ERROR"
	ErrorTypeRateConflict    ErrorType = "RATE_CONFLICT"
	ErrorTypeInvalidRate     ErrorType = "INVALID_RATE"
	ErrorTypeInvalidTimeCode ErrorType = "INVALID_TIMECODE"
	ErrorTypeRateMismatch    ErrorType = "RATE_MISMATCH"
)

// Error is a timecode error with the failure class attached. Every failure
// returned by this package is an *Error.
type Error struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsError checks if an error is a timecode *Error.
func IsError(err error) bool {
	_, ok := err.(*Error)
	return ok
}

// GetError extracts the timecode *Error from an error.
func GetError(err error) (*Error, bool) {
	tcErr, ok := err.(*Error)
	return tcErr, ok
}

func newError(errType ErrorType, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

func newSyntaxError(text string) *Error {
	return newError(ErrorTypeSyntax, "invalid timecode syntax: %q", text)
}

func newAmbiguousFormatError(text string) *Error {
	return newError(ErrorTypeSyntax, "ambiguous drop-frame format: %q", text)
}

func newRateConflictError(hint, embedded FrameRate) *Error {
	return newError(ErrorTypeRateConflict,
		"frame rate hint %s conflicts with rate %s embedded in the timecode string", hint, embedded)
}

func newInvalidRateError(message string) *Error {
	return newError(ErrorTypeInvalidRate, "%s", message)
}

func newFieldRangeError(hour, minute, second, frame int, rate FrameRate) *Error {
	return newError(ErrorTypeInvalidTimeCode,
		"timecode fields %02d:%02d:%02d:%02d are out of range at %s", hour, minute, second, frame, rate)
}

func newSkippedFrameError(hour, minute, second, frame int, rate FrameRate) *Error {
	return newError(ErrorTypeInvalidTimeCode,
		"timecode %02d:%02d:%02d;%02d does not exist at %s: drop-frame counting skips it",
		hour, minute, second, frame, rate)
}

func newNegativeFrameCountError(count int64) *Error {
	return newError(ErrorTypeInvalidTimeCode, "frame count %d is negative", count)
}

func newRateMismatchError(operand, receiver FrameRate) *Error {
	return newError(ErrorTypeRateMismatch, "frame rates must match: operand is %s, receiver is %s", operand, receiver)
}
