package booking

import "fmt"

// SlotTakenError signals a legitimate concurrent-booking race: another
// client confirmed the same slot first. The caller should re-fetch
// availability and pick another slot; nothing to retry automatically.
type SlotTakenError struct {
	Code    string
	Message string
}

func (e *SlotTakenError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotTakenError() error {
	return &SlotTakenError{
		Code:    "SLOT_TAKEN",
		Message: "this slot was just booked",
	}
}

// ValidationError rejects malformed booking input before any I/O.
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
