// Package cache provides size-bounded LRU caches whose recency order is kept
// in a linkedvec.List.
//
// Each key maps to the Handle of its entry, so a hit relinks the entry to the
// front in O(1) and eviction pops the back. Entries never move in memory and
// the list recycles the slots of evicted entries, so a warm cache allocates
// nothing per operation.
//
// Capacity is measured in units chosen by a sizer function (one unit per
// entry by default). A resource.Controller may additionally cap the memory
// of several caches together.
package cache
