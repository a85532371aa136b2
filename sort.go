package linkedvec

import (
	"cmp"
	"slices"
	"time"

	"github.com/hupe1980/linkedvec/internal/arena"
)

// SortFunc orders the list by cmp, as slices.SortFunc does. Elements stay in
// their slots; only the links are rewritten, so every handle keeps
// addressing the same value. The sort is not stable.
// O(n log n) time, O(n) extra space.
func (l *List[T]) SortFunc(cmp func(a, b T) int) {
	l.sortFunc(cmp, false)
}

// SortStableFunc is like SortFunc but keeps equal elements in their original
// order.
func (l *List[T]) SortStableFunc(cmp func(a, b T) int) {
	l.sortFunc(cmp, true)
}

func (l *List[T]) sortFunc(cmp func(a, b T) int, stable bool) {
	if l.len < 2 {
		return
	}
	start := time.Now()

	order := make([]int, 0, l.len)
	for idx := l.head; idx != arena.Nil; idx = l.node(idx).Next {
		order = append(order, idx)
	}

	byValue := func(i, j int) int {
		return cmp(l.node(i).Value, l.node(j).Value)
	}
	if stable {
		slices.SortStableFunc(order, byValue)
	} else {
		slices.SortFunc(order, byValue)
	}

	l.rethread(order)
	l.logger.LogSort(l.len, stable, time.Since(start))
}

// rethread links the slots in order as the whole list.
func (l *List[T]) rethread(order []int) {
	for i := 1; i < len(order); i++ {
		l.node(order[i-1]).Next = order[i]
		l.node(order[i]).Prev = order[i-1]
	}
	first, last := order[0], order[len(order)-1]
	l.head = first
	l.node(first).Prev = last
	l.node(last).Next = arena.Nil
}

// Sort orders l ascending. Not stable.
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// SortStable orders l ascending, keeping equal elements in order.
func SortStable[T cmp.Ordered](l *List[T]) {
	l.SortStableFunc(cmp.Compare[T])
}

// SortByKey orders l ascending by key(element). Not stable. key is invoked
// O(n log n) times.
func SortByKey[T any, K cmp.Ordered](l *List[T], key func(T) K) {
	l.SortFunc(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}

// SortStableByKey orders l ascending by key(element), keeping elements with
// equal keys in order.
func SortStableByKey[T any, K cmp.Ordered](l *List[T], key func(T) K) {
	l.SortStableFunc(func(a, b T) int {
		return cmp.Compare(key(a), key(b))
	})
}
