package linkedvec

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backward collects the elements back to front.
func backward[T any](l *List[T]) []T {
	var out []T
	for _, v := range l.Backward() {
		out = append(out, v)
	}
	return out
}

// requireConsistent checks the invariants and that both traversal
// directions agree.
func requireConsistent[T any](t *testing.T, l *List[T]) {
	t.Helper()
	require.NoError(t, l.Verify())
	fwd := l.ToSlice()
	rev := backward(l)
	slices.Reverse(rev)
	require.Equal(t, len(fwd), l.Len())
	if len(fwd) == 0 {
		require.Empty(t, rev)
		return
	}
	require.Equal(t, fwd, rev)
}

func TestList_PushBack(t *testing.T) {
	l := New[int]()
	l.PushBack(1)
	l.PushBack(2)
	l.PushBack(3)

	front, ok := l.Front()
	require.True(t, ok)
	back, ok := l.Back()
	require.True(t, ok)

	assert.Equal(t, 1, front)
	assert.Equal(t, 3, back)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_PushFront(t *testing.T) {
	l := New[int]()
	h1 := l.PushFront(1)
	h2 := l.PushFront(2)
	h3 := l.PushFront(3)

	assert.Equal(t, []int{3, 2, 1}, l.ToSlice())

	front, _ := l.FrontNode()
	back, _ := l.BackNode()
	assert.Equal(t, h3, front)
	assert.Equal(t, h1, back)

	next, ok := l.NextNode(h3)
	require.True(t, ok)
	assert.Equal(t, h2, next)
	requireConsistent(t, l)
}

func TestList_Empty(t *testing.T) {
	l := New[string]()

	assert.True(t, l.IsEmpty())
	assert.Equal(t, 0, l.Len())

	_, ok := l.Front()
	assert.False(t, ok)
	_, ok = l.Back()
	assert.False(t, ok)
	_, ok = l.FrontNode()
	assert.False(t, ok)
	_, ok = l.BackNode()
	assert.False(t, ok)
	_, ok = l.PopFront()
	assert.False(t, ok)
	_, ok = l.PopBack()
	assert.False(t, ok)
	_, ok = l.HandleAt(0)
	assert.False(t, ok)
	assert.Empty(t, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_InsertBefore(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5, 6, 7, 8, 9})
	h5, ok := Index(l, 5)
	require.True(t, ok)

	h10, err := l.InsertBefore(h5, 10)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 10, 5, 6, 7, 8, 9}, l.ToSlice())
	assert.Equal(t, 10, l.Len())

	next, ok := l.NextNode(h10)
	require.True(t, ok)
	assert.Equal(t, h5, next)
	requireConsistent(t, l)
}

func TestList_InsertBeforeHead(t *testing.T) {
	l := FromSlice([]int{2, 3})
	head, _ := l.FrontNode()

	h1, err := l.InsertBefore(head, 1)
	require.NoError(t, err)

	front, _ := l.FrontNode()
	assert.Equal(t, h1, front)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_InsertBeforeNilAppends(t *testing.T) {
	l := FromSlice([]int{1, 2})

	h, err := l.InsertBefore(Handle{}, 3)
	require.NoError(t, err)

	back, _ := l.BackNode()
	assert.Equal(t, h, back)
	assert.Equal(t, []int{1, 2, 3}, l.ToSlice())
}

func TestList_InsertBeforeOnEmpty(t *testing.T) {
	other := FromSlice([]int{1})
	foreign, _ := other.FrontNode()

	l := New[int]()
	_, err := l.InsertBefore(foreign, 2)
	require.ErrorIs(t, err, ErrEmpty)
	assert.True(t, l.IsEmpty())

	h, err := l.InsertBefore(Handle{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, l.ToSlice())
	assert.True(t, l.Valid(h))
	requireConsistent(t, l)
}

func TestList_InsertAfter(t *testing.T) {
	l := New[int]()
	h1 := l.PushBack(42)

	h2, err := l.InsertAfter(h1, 43)
	require.NoError(t, err)
	next, _ := l.NextNode(h1)
	assert.Equal(t, h2, next)

	h0, err := l.InsertAfter(h1, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{42, 0, 43}, l.ToSlice())

	back, _ := l.BackNode()
	assert.Equal(t, h2, back)
	prev, _ := l.PrevNode(h2)
	assert.Equal(t, h0, prev)
	requireConsistent(t, l)
}

func TestList_Remove(t *testing.T) {
	l := New[int]()
	h1 := l.PushBack(1)
	h2 := l.PushBack(2)
	h3 := l.PushBack(3)

	v, err := l.Remove(h2)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3}, l.ToSlice())
	requireConsistent(t, l)

	_, err = l.Remove(h2)
	require.ErrorIs(t, err, ErrInvalidHandle)
	require.ErrorIs(t, err, ErrHandleExpired)

	v, err = l.Remove(h1)
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	front, _ := l.FrontNode()
	assert.Equal(t, h3, front)
	requireConsistent(t, l)

	v, err = l.Remove(h3)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.True(t, l.IsEmpty())
	requireConsistent(t, l)
}

func TestList_RemoveTail(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	tail, _ := l.BackNode()

	_, err := l.Remove(tail)
	require.NoError(t, err)

	back, _ := l.Back()
	assert.Equal(t, 2, back)
	assert.Equal(t, []int{2, 1}, backward(l))
	requireConsistent(t, l)
}

func TestList_PopFrontBack(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})

	v, ok := l.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	v, ok = l.PopBack()
	require.True(t, ok)
	assert.Equal(t, 4, v)

	assert.Equal(t, []int{2, 3}, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_RemoveValue(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 2})

	assert.True(t, RemoveValue(l, 2))
	assert.Equal(t, []int{1, 3, 2}, l.ToSlice())
	assert.False(t, RemoveValue(l, 9))

	v, ok := l.RemoveFunc(func(v int) bool { return v > 2 })
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assert.Equal(t, []int{1, 2}, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_GetSetUpdate(t *testing.T) {
	l := New[int]()
	h := l.PushBack(1)

	v, ok := l.Get(h)
	require.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, l.Set(h, 2))
	assert.True(t, l.Update(h, func(v *int) { *v *= 10 }))
	v, _ = l.Get(h)
	assert.Equal(t, 20, v)

	_, err := l.Remove(h)
	require.NoError(t, err)

	_, ok = l.Get(h)
	assert.False(t, ok)
	assert.False(t, l.Set(h, 3))
	called := false
	assert.False(t, l.Update(h, func(*int) { called = true }))
	assert.False(t, called)
}

func TestList_UpdateGrowsList(t *testing.T) {
	l := New[int](WithCapacity(1))
	h := l.PushBack(1)

	assert.True(t, l.Update(h, func(v *int) {
		for i := range 100 {
			l.PushBack(i)
		}
		*v = 42
	}))
	v, ok := l.Get(h)
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 101, l.Len())
	requireConsistent(t, l)
}

func TestList_UpdateRemovesElement(t *testing.T) {
	l := New[*int]()
	h := l.PushBack(new(int))
	keep := l.PushBack(new(int))

	x := 7
	assert.False(t, l.Update(h, func(v **int) {
		_, err := l.Remove(h)
		require.NoError(t, err)
		*v = &x
	}))

	assert.False(t, l.node(h.index).Live)
	assert.Nil(t, l.node(h.index).Value, "reclaimed slot must stay zeroed")
	assert.Equal(t, 1, l.Len())
	assert.True(t, l.Valid(keep))
	requireConsistent(t, l)
}

func TestList_Unchecked(t *testing.T) {
	l := New[string]()
	h := l.PushBack("a")

	assert.Equal(t, "a", l.GetUnchecked(h))
	l.SetUnchecked(h, "b")
	assert.Equal(t, "b", l.GetUnchecked(h))
}

func TestList_NilHandle(t *testing.T) {
	l := FromSlice([]int{1})

	var h Handle
	assert.True(t, h.IsNil())
	assert.Equal(t, "Handle(nil)", h.String())
	require.ErrorIs(t, l.Check(h), ErrNilHandle)
	_, ok := l.Get(h)
	assert.False(t, ok)
	_, ok = l.NextNode(h)
	assert.False(t, ok)
	_, err := l.Remove(h)
	require.ErrorIs(t, err, ErrInvalidHandle)
}

func TestList_NextPrevBoundaries(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	front, _ := l.FrontNode()
	back, _ := l.BackNode()

	_, ok := l.PrevNode(front)
	assert.False(t, ok)
	_, ok = l.NextNode(back)
	assert.False(t, ok)

	v, ok := l.NextValue(front)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	v, ok = l.PrevValue(back)
	require.True(t, ok)
	assert.Equal(t, 2, v)
	_, ok = l.PrevValue(front)
	assert.False(t, ok)
}

func TestList_HandleAt(t *testing.T) {
	l := FromSlice([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})

	for i := range 10 {
		h, ok := l.HandleAt(i)
		require.True(t, ok, "index %d", i)
		v, _ := l.Get(h)
		assert.Equal(t, i, v)
	}

	_, ok := l.HandleAt(10)
	assert.False(t, ok)
	_, ok = l.HandleAt(-1)
	assert.False(t, ok)
}

func TestList_HandleStability(t *testing.T) {
	l := New[int]()
	handles := make(map[int]Handle)
	for i := range 20 {
		handles[i] = l.PushBack(i)
	}

	for i := 0; i < 20; i += 3 {
		_, err := l.Remove(handles[i])
		require.NoError(t, err)
		delete(handles, i)
	}
	for i := 100; i < 110; i++ {
		handles[i] = l.PushFront(i)
	}
	Sort(l)
	a, _ := l.HandleAt(2)
	b, _ := l.HandleAt(l.Len() - 3)
	require.NoError(t, l.Swap(a, b))

	for want, h := range handles {
		got, ok := l.Get(h)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	requireConsistent(t, l)
}

func TestList_ClearThenReuse(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	old, _ := l.FrontNode()

	l.Clear()
	assert.True(t, l.IsEmpty())
	assert.False(t, l.Valid(old))
	requireConsistent(t, l)

	l.PushBack(7)
	l.PushFront(6)
	l.PushBack(8)
	assert.Equal(t, []int{6, 7, 8}, l.ToSlice())
	requireConsistent(t, l)

	fresh := FromSlice([]int{6, 7, 8})
	assert.True(t, Equal(l, fresh))
}

func TestList_RemoveAllThenReuse(t *testing.T) {
	l := FromSlice([]int{1, 2, 3})
	for l.Len() > 0 {
		h, _ := l.BackNode()
		_, err := l.Remove(h)
		require.NoError(t, err)
	}
	assert.True(t, l.IsEmpty())
	requireConsistent(t, l)

	h := l.PushBack(4)
	front, _ := l.FrontNode()
	back, _ := l.BackNode()
	assert.Equal(t, h, front)
	assert.Equal(t, h, back)
	assert.Equal(t, 3, l.Stats().Slots, "no new slot while recycled ones exist")
	requireConsistent(t, l)
}

func TestList_Append(t *testing.T) {
	l1 := FromSlice([]int{1, 2})
	l2 := FromSlice([]int{3, 4, 5})
	h3, _ := l2.FrontNode()

	l1.Append(l2)

	assert.Equal(t, []int{1, 2, 3, 4, 5}, l1.ToSlice())
	assert.Equal(t, 0, l2.Len())
	assert.False(t, l2.Valid(h3))
	if DebugChecks {
		assert.False(t, l1.Valid(h3))
	}
	requireConsistent(t, l1)
	requireConsistent(t, l2)

	l1.Append(l1)
	assert.Equal(t, 5, l1.Len())
	l1.Append(nil)
	assert.Equal(t, 5, l1.Len())
}

func TestList_Clone(t *testing.T) {
	l := FromSlice([]int{5, 1, 4})
	Sort(l)

	c := l.Clone()
	assert.Equal(t, []int{1, 4, 5}, c.ToSlice())
	assert.True(t, Equal(l, c))

	h, _ := l.FrontNode()
	if DebugChecks {
		assert.False(t, c.Valid(h), "clone has its own identity")
	}

	c.PushBack(9)
	assert.Equal(t, 3, l.Len())
	requireConsistent(t, c)
}

func TestList_SearchHelpers(t *testing.T) {
	l := FromSlice([]string{"a", "b", "c"})

	assert.True(t, Contains(l, "b"))
	assert.False(t, Contains(l, "z"))

	h, ok := l.IndexFunc(func(s string) bool { return s > "a" })
	require.True(t, ok)
	v, _ := l.Get(h)
	assert.Equal(t, "b", v)

	assert.False(t, Equal(l, FromSlice([]string{"a", "b"})))
	assert.False(t, Equal(l, FromSlice([]string{"a", "b", "d"})))
	assert.True(t, Equal(New[string](), New[string]()))
}

func TestList_IterationEarlyExit(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4})

	var got []int
	for v := range l.Values() {
		if v == 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 2}, got)

	got = got[:0]
	for _, v := range l.Backward() {
		if v == 2 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []int{4, 3}, got)

	var handles []Handle
	for h := range l.Handles() {
		handles = append(handles, h)
	}
	require.Len(t, handles, 4)
	first, _ := l.FrontNode()
	assert.Equal(t, first, handles[0])
}

func TestList_RemoveDuringIteration(t *testing.T) {
	l := FromSlice([]int{1, 2, 3, 4, 5, 6})

	for h, v := range l.All() {
		if v%2 == 0 {
			_, err := l.Remove(h)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, []int{1, 3, 5}, l.ToSlice())

	for h, v := range l.Backward() {
		if v != 3 {
			_, err := l.Remove(h)
			require.NoError(t, err)
		}
	}
	assert.Equal(t, []int{3}, l.ToSlice())
	requireConsistent(t, l)
}

func TestList_CollectExtend(t *testing.T) {
	l := Collect(slices.Values([]int{1, 2}))
	l.Extend(slices.Values([]int{3, 4}))
	assert.Equal(t, []int{1, 2, 3, 4}, l.ToSlice())
}

func TestList_String(t *testing.T) {
	assert.Equal(t, "[1 2 3]", FromSlice([]int{1, 2, 3}).String())
	assert.Equal(t, "[]", New[int]().String())
}

func TestList_GrowAndStats(t *testing.T) {
	l := New[int](WithCapacity(4))
	assert.Equal(t, 4, l.Cap())

	l.Grow(100)
	assert.GreaterOrEqual(t, l.Cap(), 100)
	grows := l.Stats().Grows

	h := l.PushBack(1)
	for i := range 99 {
		l.PushBack(i)
	}
	assert.Equal(t, grows, l.Stats().Grows, "pushes within reserved capacity must not grow")

	_, err := l.Remove(h)
	require.NoError(t, err)
	l.PushBack(2)

	s := l.Stats()
	assert.Equal(t, 100, s.Len)
	assert.Equal(t, 100, s.Slots)
	assert.Equal(t, 0, s.Free)
	assert.Equal(t, uint64(101), s.Allocs)
	assert.Equal(t, uint64(1), s.Recycled)
	assert.Equal(t, uint64(1), s.Reclaims)
}

func BenchmarkList_PushPop(b *testing.B) {
	l := New[int](WithCapacity(1024))
	b.ReportAllocs()
	for b.Loop() {
		l.PushBack(1)
		l.PopFront()
	}
}

func BenchmarkList_InsertRemoveMiddle(b *testing.B) {
	values := make([]int, 1024)
	l := FromSlice(values)
	mid, _ := l.HandleAt(512)
	b.ReportAllocs()
	for b.Loop() {
		h, _ := l.InsertBefore(mid, 1)
		_, _ = l.Remove(h)
	}
}

func BenchmarkList_Sort(b *testing.B) {
	values := make([]int, 10_000)
	for i := range values {
		values[i] = (i * 7919) % len(values)
	}
	for b.Loop() {
		b.StopTimer()
		l := FromSlice(values)
		b.StartTimer()
		Sort(l)
	}
}
