package linkedvec

import "fmt"

// Cursor is a read-only position in a List.
//
// A Cursor delegates every operation to its list and re-validates its handle
// each time, so it degrades to "absent" rather than misbehaving when the
// element under it is removed behind its back.
type Cursor[T any] struct {
	list *List[T]
	cur  Handle
}

// CursorMut is a Cursor that can also edit the list around its position.
type CursorMut[T any] struct {
	Cursor[T]
}

// Cursor returns a read-only cursor positioned at h.
func (l *List[T]) Cursor(h Handle) (*Cursor[T], error) {
	if err := l.validate(h); err != nil {
		return nil, err
	}
	return &Cursor[T]{list: l, cur: h}, nil
}

// CursorFront returns a read-only cursor at the first element.
func (l *List[T]) CursorFront() (*Cursor[T], bool) {
	h, ok := l.FrontNode()
	if !ok {
		return nil, false
	}
	return &Cursor[T]{list: l, cur: h}, true
}

// CursorBack returns a read-only cursor at the last element.
func (l *List[T]) CursorBack() (*Cursor[T], bool) {
	h, ok := l.BackNode()
	if !ok {
		return nil, false
	}
	return &Cursor[T]{list: l, cur: h}, true
}

// CursorMut returns an editing cursor positioned at h.
func (l *List[T]) CursorMut(h Handle) (*CursorMut[T], error) {
	c, err := l.Cursor(h)
	if err != nil {
		return nil, err
	}
	return &CursorMut[T]{Cursor: *c}, nil
}

// CursorFrontMut returns an editing cursor at the first element.
func (l *List[T]) CursorFrontMut() (*CursorMut[T], bool) {
	c, ok := l.CursorFront()
	if !ok {
		return nil, false
	}
	return &CursorMut[T]{Cursor: *c}, true
}

// CursorBackMut returns an editing cursor at the last element.
func (l *List[T]) CursorBackMut() (*CursorMut[T], bool) {
	c, ok := l.CursorBack()
	if !ok {
		return nil, false
	}
	return &CursorMut[T]{Cursor: *c}, true
}

// Handle returns the handle under the cursor. It is nil once the cursor's
// list has been emptied through it.
func (c *Cursor[T]) Handle() Handle {
	return c.cur
}

// Get returns the element under the cursor.
func (c *Cursor[T]) Get() (T, bool) {
	return c.list.Get(c.cur)
}

// MoveTo jumps to h. The cursor does not move if h is not valid.
func (c *Cursor[T]) MoveTo(h Handle) error {
	if err := c.list.validate(h); err != nil {
		return err
	}
	c.cur = h
	return nil
}

// MoveNext steps to the next element and returns its handle. At the back
// the cursor stays put and ok is false.
func (c *Cursor[T]) MoveNext() (Handle, bool) {
	h, ok := c.list.NextNode(c.cur)
	if ok {
		c.cur = h
	}
	return h, ok
}

// MovePrev steps to the previous element and returns its handle. At the
// front the cursor stays put and ok is false.
func (c *Cursor[T]) MovePrev() (Handle, bool) {
	h, ok := c.list.PrevNode(c.cur)
	if ok {
		c.cur = h
	}
	return h, ok
}

// MoveToFront jumps to the first element.
func (c *Cursor[T]) MoveToFront() (Handle, bool) {
	h, ok := c.list.FrontNode()
	if ok {
		c.cur = h
	}
	return h, ok
}

// MoveToBack jumps to the last element.
func (c *Cursor[T]) MoveToBack() (Handle, bool) {
	h, ok := c.list.BackNode()
	if ok {
		c.cur = h
	}
	return h, ok
}

// Forward steps up to n elements towards the back. It returns the handle
// reached and whether all n steps were taken; on a short move the cursor
// rests on the last element.
func (c *Cursor[T]) Forward(n int) (Handle, bool) {
	for range n {
		if _, ok := c.MoveNext(); !ok {
			return c.cur, false
		}
	}
	return c.cur, true
}

// Backward steps up to n elements towards the front. It returns the handle
// reached and whether all n steps were taken; on a short move the cursor
// rests on the first element.
func (c *Cursor[T]) Backward(n int) (Handle, bool) {
	for range n {
		if _, ok := c.MovePrev(); !ok {
			return c.cur, false
		}
	}
	return c.cur, true
}

// Set replaces the element under the cursor.
func (c *CursorMut[T]) Set(v T) bool {
	return c.list.Set(c.cur, v)
}

// Update calls fn with a pointer to a copy of the element under the cursor,
// as List.Update does.
func (c *CursorMut[T]) Update(fn func(*T)) bool {
	return c.list.Update(c.cur, fn)
}

// Insert inserts v before the cursor and moves the cursor onto it. On a
// cursor whose list was emptied through it, v becomes the only element.
func (c *CursorMut[T]) Insert(v T) (Handle, error) {
	h, err := c.list.InsertBefore(c.cur, v)
	if err != nil {
		return Handle{}, err
	}
	c.cur = h
	return h, nil
}

// InsertAfter inserts v after the cursor. The cursor stays put.
func (c *CursorMut[T]) InsertAfter(v T) (Handle, error) {
	if c.cur.IsNil() {
		return c.Insert(v)
	}
	return c.list.InsertAfter(c.cur, v)
}

// Remove deletes the element under the cursor and returns it. The cursor
// moves to the next element, or to the previous one at the back; removing
// the last remaining element leaves the cursor on the nil handle.
func (c *CursorMut[T]) Remove() (v T, err error) {
	if c.list.IsEmpty() {
		return v, fmt.Errorf("%w: nothing to remove", ErrEmpty)
	}
	if err = c.list.validate(c.cur); err != nil {
		return v, err
	}
	removed := c.cur
	if h, ok := c.list.NextNode(removed); ok {
		c.cur = h
	} else if h, ok := c.list.PrevNode(removed); ok {
		c.cur = h
	} else {
		c.cur = Handle{}
	}
	return c.list.remove(removed.index), nil
}
