// Package linkedvec provides a doubly linked list backed by a single growable
// slice.
//
// Nodes are slots of one contiguous slice instead of individual heap objects,
// so the list costs no allocation per element once the slice has grown, and
// removed slots are recycled by later insertions. Callers address elements
// through Handles: small comparable values that stay valid until their
// element is removed, no matter how the list is reordered around them.
//
// # Quick Start
//
//	l := linkedvec.New[string]()
//	a := l.PushBack("a")
//	c := l.PushBack("c")
//	b, _ := l.InsertBefore(c, "b")
//
//	l.Swap(a, c)                      // order: c b a
//	linkedvec.Sort(l)                 // order: a b c, handles unchanged
//	v, _ := l.Get(b)                  // "b"
//
//	for h, v := range l.All() { ... }
//
// # Handle Validity
//
// Every operation that takes a Handle checks it first. Accessors report an
// invalid handle through their ok result; structural operations return a
// *HandleError that matches ErrInvalidHandle with errors.Is.
//
// By default (DebugChecks == true) a Handle also records the generation of
// its slot and the identity of its List. A handle whose element was removed
// is therefore rejected even after the slot has been reused, and a handle of
// another list is rejected outright. Building with
//
//	go build -tags linkedvec_release
//
// shrinks Handle to a bare slot index and drops both checks; handles to
// removed-and-reused slots then silently address the new element.
//
// GetUnchecked and SetUnchecked skip validation in release builds and panic
// on misuse in debug builds.
//
// # Complexity
//
//	PushBack, PushFront, PopFront, PopBack   O(1) amortized
//	InsertBefore, InsertAfter, Remove, Swap  O(1)
//	Get, Set, NextNode, PrevNode             O(1)
//	HandleAt                                 O(min(i, n-i))
//	SortFunc, SortStableFunc                 O(n log n)
//	Append, Clear, Clone, Verify             O(n)
//
// # Concurrency
//
// A List has no internal synchronization. Use it from one goroutine, or
// guard it externally.
package linkedvec
