//go:build !linkedvec_release

package linkedvec

import (
	"fmt"

	"github.com/google/uuid"
)

// DebugChecks is true when handles carry a generation counter and the
// identity of their list, so stale and foreign handles are detected. Build
// with the linkedvec_release tag to drop both and trust the caller.
const DebugChecks = true

// Handle is an opaque, copyable reference to an element of a List.
//
// A Handle does not keep its element alive. It stays valid until the element
// is removed; Sort, Swap and other relinking operations never invalidate it.
// Generations are 64-bit, so a slot cannot wrap back to a stale handle's
// generation in practice.
type Handle struct {
	index int
	gen   uint64
	owner uuid.UUID
}

func newHandle(index int, gen uint64, owner uuid.UUID) Handle {
	return Handle{index: index, gen: gen, owner: owner}
}

func (h Handle) suffix() string {
	return fmt.Sprintf("#g%d", h.gen)
}

// validate reports why h cannot be used with l, or nil if it can.
func (l *List[T]) validate(h Handle) error {
	if h.IsNil() {
		return &HandleError{Handle: h, Reason: ErrNilHandle}
	}
	if h.owner != l.id {
		return &HandleError{Handle: h, Reason: ErrForeignHandle}
	}
	if !l.arena.Contains(h.index) {
		return &HandleError{Handle: h, Reason: ErrHandleOutOfRange}
	}
	n := l.arena.Node(h.index)
	if n.Gen != h.gen || !n.Live {
		return &HandleError{Handle: h, Reason: ErrHandleExpired}
	}
	return nil
}

// assert panics when h is invalid. Unchecked accessors call it so misuse is
// loud in debug builds.
func (l *List[T]) assert(h Handle) {
	if err := l.validate(h); err != nil {
		panic(err)
	}
}
