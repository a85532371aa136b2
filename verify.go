package linkedvec

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/linkedvec/internal/arena"
	"github.com/hupe1980/linkedvec/internal/conv"
)

// Verify walks the element ring and the recycle chain and checks the
// structural invariants of l:
//
//   - following Next from the front visits exactly Len live slots, and Prev
//     is the exact reverse of that walk (the front's Prev is the back)
//   - recycled slots are vacant, have a nil Prev and are each chained once
//   - every slot is either an element or recycled, never both
//
// It returns nil or an error wrapping ErrCorrupted. O(n).
func (l *List[T]) Verify() error {
	err := l.verify()
	l.logger.LogVerify(l.len, err)
	return err
}

func (l *List[T]) verify() error {
	live, err := l.verifyRing()
	if err != nil {
		return err
	}
	free, err := l.verifyFreeChain()
	if err != nil {
		return err
	}

	if both := roaring.And(live, free); !both.IsEmpty() {
		return corrupted("slots %v are both linked and recycled", both.ToArray())
	}
	slots, err := conv.IntToUint64(l.arena.Slots())
	if err != nil {
		return corrupted("slot count: %v", err)
	}
	if got := live.GetCardinality() + free.GetCardinality(); got != slots {
		return corrupted("%d of %d slots are neither linked nor recycled", slots-got, slots)
	}
	if l.arena.Live() != l.len {
		return corrupted("arena holds %d values, list length is %d", l.arena.Live(), l.len)
	}
	return nil
}

func (l *List[T]) verifyRing() (*roaring.Bitmap, error) {
	seen := roaring.New()
	if l.head == arena.Nil {
		if l.len != 0 {
			return nil, corrupted("no head but length is %d", l.len)
		}
		return seen, nil
	}
	if !l.arena.Contains(l.head) {
		return nil, corrupted("head %d outside 1..%d", l.head, l.arena.Slots())
	}

	prev := l.node(l.head).Prev
	for idx := l.head; idx != arena.Nil; idx = l.node(idx).Next {
		id, err := l.slotID(idx)
		if err != nil {
			return nil, err
		}
		if !seen.CheckedAdd(id) {
			return nil, corrupted("slot %d linked twice", idx)
		}
		if seen.GetCardinality() > uint64(l.len) {
			return nil, corrupted("ring is longer than length %d", l.len)
		}
		n := l.node(idx)
		if !n.Live {
			return nil, corrupted("linked slot %d is vacant", idx)
		}
		if idx != l.head && n.Prev != prev {
			return nil, corrupted("slot %d: prev is %d, want %d", idx, n.Prev, prev)
		}
		prev = idx
	}

	if got := seen.GetCardinality(); got != uint64(l.len) {
		return nil, corrupted("ring has %d elements, length is %d", got, l.len)
	}
	if tail := l.tail(); tail != prev {
		return nil, corrupted("head's prev is %d, last linked slot is %d", tail, prev)
	}
	return seen, nil
}

func (l *List[T]) verifyFreeChain() (*roaring.Bitmap, error) {
	seen := roaring.New()
	for idx := l.arena.FreeHead(); idx != arena.Nil; idx = l.node(idx).Next {
		id, err := l.slotID(idx)
		if err != nil {
			return nil, err
		}
		if !seen.CheckedAdd(id) {
			return nil, corrupted("recycle chain revisits slot %d", idx)
		}
		n := l.node(idx)
		if n.Live {
			return nil, corrupted("recycled slot %d holds a value", idx)
		}
		if n.Prev != arena.Nil {
			return nil, corrupted("recycled slot %d has prev %d", idx, n.Prev)
		}
	}
	if got := seen.GetCardinality(); got != uint64(l.arena.Free()) {
		return nil, corrupted("recycle chain has %d slots, %d were reclaimed", got, l.arena.Free())
	}
	return seen, nil
}

func (l *List[T]) slotID(idx int) (uint32, error) {
	if !l.arena.Contains(idx) {
		return 0, corrupted("link to slot %d outside 1..%d", idx, l.arena.Slots())
	}
	id, err := conv.IntToUint32(idx)
	if err != nil {
		return 0, corrupted("slot %d: %v", idx, err)
	}
	return id, nil
}
