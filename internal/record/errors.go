package record

import "fmt"

// ValidationError marks malformed input to one of the pure record functions:
// unknown evaluation type, out-of-range rating, unknown competency key, or an
// out-of-bounds question index. Callers distinguish it from server errors via
// errors.As.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
