package blobstore

import (
	"context"
	"sync"

	"github.com/hupe1980/linkedvec/cache"
)

// CachingStore wraps a Store and keeps recently opened blobs in memory,
// bounded by total byte size.
//
// A blob loaded while a write through the same CachingStore completes is
// returned but not cached. Writes that bypass the CachingStore are not seen
// until the cached copy is evicted.
type CachingStore struct {
	inner Store
	cache *cache.Sharded[string, []byte]

	mu  sync.Mutex
	gen uint64 // bumped by every invalidation
}

// NewCachingStore wraps inner with a cache holding up to capacity bytes.
func NewCachingStore(inner Store, capacity int64, opts ...cache.Option[string, []byte]) *CachingStore {
	opts = append([]cache.Option[string, []byte]{
		cache.WithSizer(func(_ string, data []byte) int64 { return int64(len(data)) }),
	}, opts...)
	return &CachingStore{
		inner: inner,
		cache: cache.NewSharded(cache.DefaultShards, capacity, opts...),
	}
}

// Open serves name from the cache, loading the whole blob on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if data, ok := s.cache.Get(name); ok {
		return bytesBlob(data), nil
	}

	s.mu.Lock()
	gen := s.gen
	s.mu.Unlock()

	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	data, err := ReadAll(b)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.gen == gen {
		s.cache.Set(name, data)
	}
	s.mu.Unlock()
	return bytesBlob(data), nil
}

func (s *CachingStore) invalidate(name string) {
	s.mu.Lock()
	s.gen++
	s.cache.Remove(name)
	s.mu.Unlock()
}

// Create passes through and drops the cached copy once the write lands.
func (s *CachingStore) Create(ctx context.Context, name string) (WritableBlob, error) {
	w, err := s.inner.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	return &invalidatingWriter{WritableBlob: w, drop: func() { s.invalidate(name) }}, nil
}

// Put writes through and drops the cached copy.
func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	defer s.invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Delete removes the blob and its cached copy.
func (s *CachingStore) Delete(ctx context.Context, name string) error {
	defer s.invalidate(name)
	return s.inner.Delete(ctx, name)
}

// List passes through to the wrapped store.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats reports cache effectiveness.
func (s *CachingStore) Stats() cache.Stats {
	return s.cache.Stats()
}

type invalidatingWriter struct {
	WritableBlob
	drop func()
}

func (w *invalidatingWriter) Close() error {
	defer w.drop()
	return w.WritableBlob.Close()
}
