//go:build linkedvec_release

package linkedvec

import "github.com/google/uuid"

// DebugChecks is false in release builds: handles are bare slot indices and
// only range and occupancy are validated.
const DebugChecks = false

// Handle is an opaque, copyable reference to an element of a List.
//
// A Handle does not keep its element alive. It stays valid until the element
// is removed; Sort, Swap and other relinking operations never invalidate it.
type Handle struct {
	index int
}

func newHandle(index int, _ uint64, _ uuid.UUID) Handle {
	return Handle{index: index}
}

func (h Handle) suffix() string {
	return ""
}

// validate reports why h cannot be used with l, or nil if it can. A handle
// whose slot was reclaimed and reissued passes this check.
func (l *List[T]) validate(h Handle) error {
	if h.IsNil() {
		return &HandleError{Handle: h, Reason: ErrNilHandle}
	}
	if !l.arena.Contains(h.index) {
		return &HandleError{Handle: h, Reason: ErrHandleOutOfRange}
	}
	if !l.arena.Node(h.index).Live {
		return &HandleError{Handle: h, Reason: ErrHandleExpired}
	}
	return nil
}

func (l *List[T]) assert(Handle) {}
