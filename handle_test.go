//go:build !linkedvec_release

package linkedvec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_StaleAfterReuse(t *testing.T) {
	l := New[string]()
	l.PushBack("a")
	h := l.PushBack("b")

	v, err := l.Remove(h)
	require.NoError(t, err)
	assert.Equal(t, "b", v)

	h2 := l.PushBack("c")
	require.Equal(t, h.index, h2.index, "the reclaimed slot is reused first")
	assert.NotEqual(t, h, h2)

	_, ok := l.Get(h)
	assert.False(t, ok)
	got, ok := l.Get(h2)
	require.True(t, ok)
	assert.Equal(t, "c", got)

	err = l.Check(h)
	require.ErrorIs(t, err, ErrInvalidHandle)
	require.ErrorIs(t, err, ErrHandleExpired)

	var herr *HandleError
	require.True(t, errors.As(err, &herr))
	assert.Equal(t, h, herr.Handle)
}

func TestHandle_Foreign(t *testing.T) {
	a := FromSlice([]int{1, 2, 3})
	b := FromSlice([]int{4, 5, 6})
	ha, _ := a.FrontNode()

	require.ErrorIs(t, b.Check(ha), ErrForeignHandle)
	_, ok := b.Get(ha)
	assert.False(t, ok)
	_, err := b.Remove(ha)
	require.ErrorIs(t, err, ErrForeignHandle)
	hb, _ := b.FrontNode()
	require.ErrorIs(t, b.Swap(ha, hb), ErrForeignHandle)
	_, err = b.Cursor(ha)
	require.ErrorIs(t, err, ErrForeignHandle)

	assert.Equal(t, []int{4, 5, 6}, b.ToSlice())
}

func TestHandle_OutOfRange(t *testing.T) {
	l := FromSlice([]int{1})
	h := newHandle(42, 0, l.id)

	require.ErrorIs(t, l.Check(h), ErrHandleOutOfRange)
	assert.False(t, l.Valid(h))
}

func TestHandle_StaleAfterClear(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	handles := make([]Handle, 0, 3)
	for h := range l.Handles() {
		handles = append(handles, h)
	}

	l.Clear()
	l.PushBack(10)
	l.PushBack(20)
	l.PushBack(30)

	for _, h := range handles {
		require.ErrorIs(t, l.Check(h), ErrHandleExpired, "handle %v", h)
	}
}

func TestHandle_GenerationPastUint32(t *testing.T) {
	l := New[int]()
	h := l.PushBack(1)
	l.node(h.index).Gen = math.MaxUint32
	old := l.handle(h.index)

	_, err := l.Remove(old)
	require.NoError(t, err)
	h2 := l.PushBack(2)
	require.Equal(t, old.index, h2.index)

	assert.Equal(t, uint64(math.MaxUint32)+1, h2.gen)
	require.ErrorIs(t, l.Check(old), ErrHandleExpired)
	require.NoError(t, l.Check(h2))
}

func TestHandle_String(t *testing.T) {
	l := New[int]()
	h := l.PushBack(1)
	assert.Equal(t, "Handle(1#g0)", h.String())

	_, err := l.Remove(h)
	require.NoError(t, err)
	h = l.PushBack(2)
	assert.Equal(t, "Handle(1#g1)", h.String())
}

func TestHandle_UncheckedPanics(t *testing.T) {
	l := New[int]()
	h := l.PushBack(1)
	_, err := l.Remove(h)
	require.NoError(t, err)

	assert.PanicsWithError(t, (&HandleError{Handle: h, Reason: ErrHandleExpired}).Error(), func() {
		l.GetUnchecked(h)
	})
	assert.Panics(t, func() {
		l.SetUnchecked(Handle{}, 2)
	})
}

func TestHandle_CursorOnRemovedElement(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	h, _ := l.HandleAt(1)
	c, err := l.Cursor(h)
	require.NoError(t, err)

	_, err = l.Remove(h)
	require.NoError(t, err)

	_, ok := c.Get()
	assert.False(t, ok)
	_, ok = c.MoveNext()
	assert.False(t, ok)
	assert.Equal(t, h, c.Handle(), "cursor stays put on failure")

	_, ok = c.MoveToFront()
	require.True(t, ok)
	v, _ := c.Get()
	assert.Equal(t, 1, v)
}
