package linkedvec

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle is wrapped by every handle validation failure.
	ErrInvalidHandle = errors.New("linkedvec: invalid handle")
	// ErrNilHandle is returned when the nil handle is used where an element
	// is required.
	ErrNilHandle = errors.New("nil handle")
	// ErrHandleOutOfRange is returned when a handle addresses a slot the list
	// never allocated.
	ErrHandleOutOfRange = errors.New("handle out of range")
	// ErrHandleExpired is returned when the handle's element has been removed,
	// whether or not its slot was reused since.
	ErrHandleExpired = errors.New("handle has expired")
	// ErrForeignHandle is returned when the handle was issued by another list.
	ErrForeignHandle = errors.New("handle is not native to this list")

	// ErrEmpty is returned by operations that need at least one element.
	ErrEmpty = errors.New("linkedvec: list is empty")
	// ErrCorrupted is returned by Verify when a structural invariant is broken.
	ErrCorrupted = errors.New("linkedvec: list corrupted")
)

// HandleError describes why a handle was rejected.
//
// errors.Is matches both ErrInvalidHandle and the specific Reason.
type HandleError struct {
	Handle Handle
	Reason error
}

func (e *HandleError) Error() string {
	return fmt.Sprintf("%v: %v: %v", ErrInvalidHandle, e.Handle, e.Reason)
}

func (e *HandleError) Unwrap() []error { return []error{ErrInvalidHandle, e.Reason} }

func corrupted(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrCorrupted, fmt.Sprintf(format, args...))
}
