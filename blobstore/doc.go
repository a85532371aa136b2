// Package blobstore stores immutable named blobs, typically list
// snapshots written by the snapshot package.
//
// Built-in implementations:
//
//   - MemoryStore: in-process map, for tests
//   - LocalStore: files below a directory, read through mmap
//   - CachingStore: byte-bounded LRU in front of any Store
//   - s3.Store: Amazon S3, with DynamoDB-backed commits in s3.CommitStore
//   - minio.Store: MinIO and other S3-compatible services
//
// Writes are atomic: Put either replaces the whole blob or leaves the old
// one in place, and a blob from Create becomes visible only on Close.
package blobstore
