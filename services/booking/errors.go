package booking

import "fmt"

// Error codes for remote-rejection class failures. Transport failures are
// plain wrapped errors from the repository layer.
const (
	CodeInvalidInput      = "invalidInput"
	CodeSlotTaken         = "slotTaken"
	CodeNotOwner          = "notOwner"
	CodeInvalidTransition = "invalidTransition"
)

type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewBookingError(code, msg string) error {
	return &BookingError{
		Code:    code,
		Message: msg,
	}
}

// ErrCode returns the booking error code, or "" for other errors.
func ErrCode(err error) string {
	if be, ok := err.(*BookingError); ok {
		return be.Code
	}
	return ""
}
