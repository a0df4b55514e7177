package reservation

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidName        = errors.New("invalid name")
	ErrEmailRequired      = errors.New("email is required")
	ErrEmailMissingAt     = errors.New("email must contain an @")
	ErrDomainMissingDot   = errors.New("email domain must contain a .")
	ErrInvalidDomain      = errors.New("invalid email domain")
	ErrInvalidPhoneLength = errors.New("invalid phone number (want 10 digits)")
	ErrGuestsRequired     = errors.New("guests must be greater than 0")
	ErrTooManyGuests      = errors.New("ambitious, are we? try doing this manually for more than 10 guests")
	ErrInvalidDay         = errors.New("invalid day")
	ErrInvalidTime        = errors.New("invalid time (want h:mm AM|PM)")
)

// InputError ties a validation failure to the input that caused it.
// errors.Is matches on the wrapped kind.
type InputError struct {
	Err   error
	Value string
}

func (e *InputError) Error() string {
	if e.Value == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %q", e.Err, e.Value)
}

func (e *InputError) Unwrap() error { return e.Err }

func inputErr(kind error, value string) error {
	return &InputError{Err: kind, Value: value}
}
