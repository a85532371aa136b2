package testutil

import (
	"math/rand/v2"
	"slices"
	"sync"
)

// RNG is a seeded random source. It is safe for concurrent use.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.IntN(n)
}

// Bool returns a pseudo-random bool.
func (r *RNG) Bool() bool {
	return r.Intn(2) == 1
}

// Ints returns n values drawn from [0, limit).
// Locks only once per call.
func (r *RNG) Ints(n, limit int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, n)
	for i := range out {
		out[i] = r.rand.IntN(limit)
	}
	return out
}

// Perm returns a random permutation of [0, n).
func (r *RNG) Perm(n int) []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Perm(n)
}

// Model is a slice-backed reference list addressed by position.
type Model[T any] struct {
	items []T
}

// NewModel creates a Model holding values in order.
func NewModel[T any](values ...T) *Model[T] {
	return &Model[T]{items: slices.Clone(values)}
}

// Len returns the number of items.
func (m *Model[T]) Len() int {
	return len(m.items)
}

// At returns the i-th item.
func (m *Model[T]) At(i int) T {
	return m.items[i]
}

// PushBack appends v.
func (m *Model[T]) PushBack(v T) {
	m.items = append(m.items, v)
}

// PushFront prepends v.
func (m *Model[T]) PushFront(v T) {
	m.items = slices.Insert(m.items, 0, v)
}

// InsertAt inserts v so that it becomes the i-th item.
func (m *Model[T]) InsertAt(i int, v T) {
	m.items = slices.Insert(m.items, i, v)
}

// RemoveAt removes and returns the i-th item.
func (m *Model[T]) RemoveAt(i int) T {
	v := m.items[i]
	m.items = slices.Delete(m.items, i, i+1)
	return v
}

// Swap exchanges the i-th and j-th items.
func (m *Model[T]) Swap(i, j int) {
	m.items[i], m.items[j] = m.items[j], m.items[i]
}

// MoveToFront moves the i-th item to the front.
func (m *Model[T]) MoveToFront(i int) {
	v := m.RemoveAt(i)
	m.PushFront(v)
}

// MoveToBack moves the i-th item to the back.
func (m *Model[T]) MoveToBack(i int) {
	v := m.RemoveAt(i)
	m.PushBack(v)
}

// Values returns a copy of the items in order. The result is never nil.
func (m *Model[T]) Values() []T {
	return append(make([]T, 0, len(m.items)), m.items...)
}
