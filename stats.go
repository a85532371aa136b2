package linkedvec

// Stats is a snapshot of a list's slot usage.
type Stats struct {
	Len      int    // elements in the list
	Slots    int    // slots ever allocated, occupied or recycled
	Free     int    // slots waiting on the recycle chain
	Capacity int    // slots the backing slice holds before growing
	Allocs   uint64 // insertions so far
	Recycled uint64 // insertions served from the recycle chain
	Reclaims uint64 // removals so far, including Clear
	Grows    uint64 // backing slice reallocations
}

// Stats returns current slot usage. O(1).
func (l *List[T]) Stats() Stats {
	s := l.arena.Stats()
	return Stats{
		Len:      l.len,
		Slots:    s.Slots,
		Free:     s.Free,
		Capacity: s.Capacity,
		Allocs:   s.Allocs,
		Recycled: s.Recycled,
		Reclaims: s.Reclaims,
		Grows:    s.Grows,
	}
}
