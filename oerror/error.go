package oerror

import "fmt"

// Error is the error type raised by milieu when an internal contract is broken.
type Error struct {
	Err string
}

// New formats a new Error from the message and arguments passed.
func New(message string, args ...any) *Error {
	if len(args) == 0 {
		return &Error{Err: message}
	}
	return &Error{Err: fmt.Sprintf(message, args...)}
}

func (e *Error) Error() string {
	return "milieu: " + e.Err
}
