// Package testutil provides testing utilities for linkedvec.
//
// This package is intended for use in tests and benchmarks only.
//
// # Random Operation Sequences
//
//	rng := testutil.NewRNG(seed)
//	values := rng.Ints(100, 1000)   // 100 values in [0, 1000)
//	i := rng.Intn(l.Len())
//
// # Reference Model
//
// Model is a plain slice with the same positional operations as a list. Tests
// apply each random operation to both and compare the traversal orders.
//
//	m := testutil.NewModel[int]()
//	m.InsertAt(2, 10)
//	m.Swap(0, 3)
//	want := m.Values()
package testutil
