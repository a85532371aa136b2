package linkedvec

import "github.com/hupe1980/linkedvec/internal/arena"

// The live elements form a ring through Prev: the head's Prev is the tail.
// Next is linear, the tail's Next is arena.Nil. Only these two fields and
// l.head are touched here; values never move between slots.

// linkBefore threads the unlinked slot idx in front of anchor, or at the
// back when anchor is arena.Nil.
func (l *List[T]) linkBefore(idx, anchor int) {
	n := l.node(idx)
	if l.head == arena.Nil {
		n.Prev = idx
		n.Next = arena.Nil
		l.head = idx
		return
	}

	if anchor == arena.Nil {
		tail := l.tail()
		n.Prev = tail
		n.Next = arena.Nil
		l.node(tail).Next = idx
		l.node(l.head).Prev = idx
		return
	}

	a := l.node(anchor)
	prev := a.Prev
	n.Prev = prev
	n.Next = anchor
	a.Prev = idx
	if anchor == l.head {
		l.head = idx
	} else {
		l.node(prev).Next = idx
	}
}

// unlink detaches idx from the ring and clears its links.
func (l *List[T]) unlink(idx int) {
	n := l.node(idx)
	if idx == l.head && n.Prev == idx {
		l.head = arena.Nil
	} else {
		prev, next := n.Prev, n.Next
		if next == arena.Nil {
			l.node(l.head).Prev = prev
		} else {
			l.node(next).Prev = prev
		}
		if idx == l.head {
			l.head = next
		} else {
			l.node(prev).Next = next
		}
	}
	n.Prev = arena.Nil
	n.Next = arena.Nil
}

// Swap exchanges the positions of the elements addressed by a and b. Both
// handles keep addressing the same values; only the traversal order changes.
// O(1).
func (l *List[T]) Swap(a, b Handle) error {
	if err := l.validate(a); err != nil {
		return err
	}
	if err := l.validate(b); err != nil {
		return err
	}

	ai, bi := a.index, b.index
	if ai == bi {
		return nil
	}

	an, bn := l.node(ai).Next, l.node(bi).Next
	switch {
	case an == bi:
		l.unlink(ai)
		l.linkBefore(ai, l.node(bi).Next)
	case bn == ai:
		l.unlink(bi)
		l.linkBefore(bi, l.node(ai).Next)
	default:
		// Neither successor is the other operand, so both stay linked while
		// a and b are taken out.
		l.unlink(ai)
		l.unlink(bi)
		l.linkBefore(ai, bn)
		l.linkBefore(bi, an)
	}
	return nil
}

// MoveToFront relinks the element addressed by h as the first element.
func (l *List[T]) MoveToFront(h Handle) error {
	if err := l.validate(h); err != nil {
		return err
	}
	if h.index == l.head {
		return nil
	}
	l.unlink(h.index)
	l.linkBefore(h.index, l.head)
	return nil
}

// MoveToBack relinks the element addressed by h as the last element.
func (l *List[T]) MoveToBack(h Handle) error {
	if err := l.validate(h); err != nil {
		return err
	}
	if h.index == l.tail() {
		return nil
	}
	l.unlink(h.index)
	l.linkBefore(h.index, arena.Nil)
	return nil
}
