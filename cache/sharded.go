package cache

import (
	"hash/maphash"

	"golang.org/x/sync/errgroup"
)

// DefaultShards is the shard count used when NewSharded is given n <= 0.
const DefaultShards = 16

// Sharded spreads keys over several LRUs to reduce lock contention. Recency
// is tracked per shard, so eviction is approximately LRU overall.
type Sharded[K comparable, V any] struct {
	shards []*LRU[K, V]
	seed   maphash.Seed
}

// NewSharded creates a cache of n shards sharing capacity evenly.
func NewSharded[K comparable, V any](n int, capacity int64, opts ...Option[K, V]) *Sharded[K, V] {
	if n <= 0 {
		n = DefaultShards
	}
	shardCapacity := capacity / int64(n)
	if shardCapacity < 1 {
		shardCapacity = 1
	}

	s := &Sharded[K, V]{
		shards: make([]*LRU[K, V], n),
		seed:   maphash.MakeSeed(),
	}
	for i := range s.shards {
		s.shards[i] = NewLRU(shardCapacity, opts...)
	}
	return s
}

func (s *Sharded[K, V]) shard(key K) *LRU[K, V] {
	h := maphash.Comparable(s.seed, key)
	return s.shards[h%uint64(len(s.shards))]
}

// Get returns the value cached for key.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

// Set caches value under key.
func (s *Sharded[K, V]) Set(key K, value V) bool {
	return s.shard(key).Set(key, value)
}

// Remove drops key from the cache.
func (s *Sharded[K, V]) Remove(key K) bool {
	return s.shard(key).Remove(key)
}

// Invalidate removes entries matching pred from all shards in parallel.
// pred must be safe for concurrent use.
func (s *Sharded[K, V]) Invalidate(pred func(K) bool) int {
	counts := make([]int, len(s.shards))

	var g errgroup.Group
	for i, shard := range s.shards {
		g.Go(func() error {
			counts[i] = shard.Invalidate(pred)
			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// Len returns the number of cached entries across all shards.
func (s *Sharded[K, V]) Len() int {
	total := 0
	for _, shard := range s.shards {
		total += shard.Len()
	}
	return total
}

// Stats returns the counters summed over all shards.
func (s *Sharded[K, V]) Stats() Stats {
	var total Stats
	for _, shard := range s.shards {
		st := shard.Stats()
		total.Hits += st.Hits
		total.Misses += st.Misses
		total.Evictions += st.Evictions
		total.Len += st.Len
		total.Size += st.Size
	}
	return total
}
