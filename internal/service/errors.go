package service

import (
	"errors"
	"fmt"

	"posadmin/m/internal/store"
)

type Kind int

const (
	// KindInternal covers every failure that is not a natural-key conflict,
	// including missing records and malformed input.
	KindInternal Kind = iota
	// KindConflict means a natural key is already taken.
	KindConflict
)

// Error is the error type returned by every service operation.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

// Conflict builds a conflict error carrying a client-facing message.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Internal wraps err; its message is passed to clients unchanged.
func Internal(err error) *Error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return &Error{Kind: KindInternal, Message: err.Error(), Err: err}
}

// Internalf formats a new internal error.
func Internalf(format string, args ...any) *Error {
	return Internal(fmt.Errorf(format, args...))
}

// IsConflict reports whether err is a conflict-kind service error.
func IsConflict(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Kind == KindConflict
}

// fromStore maps a store failure onto the service taxonomy. Unique violations
// become conflicts with the given message.
func fromStore(err error, conflictMessage string) error {
	if errors.Is(err, store.ErrDuplicate) {
		return Conflict(conflictMessage)
	}
	return Internal(err)
}

func notFound(entity string, id int64) error {
	return Internalf("%s %d: %w", entity, id, store.ErrNotFound)
}
