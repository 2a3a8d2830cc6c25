package host

import "fmt"

// ValidationError rejects malformed profile or template input.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &ValidationError{
		Code:    "validationError",
		Message: msg,
	}
}

// SlugTakenError signals that the requested slug belongs to another host.
type SlugTakenError struct {
	Code    string
	Message string
}

func (e *SlugTakenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlugTakenError(slug string) error {
	return &SlugTakenError{
		Code:    "SLUG_TAKEN",
		Message: fmt.Sprintf("slug %q is already in use", slug),
	}
}
