package blobstore

import (
	"context"
	"errors"
	"io"
	"os"
)

// CurrentName is the blob holding the name of the most recently
// published snapshot.
const CurrentName = "CURRENT"

// ErrNotFound is returned when a blob does not exist. It matches
// os.ErrNotExist under errors.Is.
var ErrNotFound = os.ErrNotExist

// ErrInvalidOffset is returned by Blob.ReadAt for a negative offset.
var ErrInvalidOffset = errors.New("blobstore: negative offset")

// Store holds immutable named blobs such as list snapshots.
// Implementations must be safe for concurrent use.
type Store interface {
	// Open opens a blob for reading.
	Open(ctx context.Context, name string) (Blob, error)
	// Create starts a streaming write. The blob becomes visible when the
	// returned writer is closed without error.
	Create(ctx context.Context, name string) (WritableBlob, error)
	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error
	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error
	// List returns the sorted names that start with prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a stored blob.
type Blob interface {
	io.ReaderAt
	io.Closer
	// Size returns the size of the blob in bytes.
	Size() int64
}

// WritableBlob is a streaming writer returned by Store.Create.
type WritableBlob interface {
	io.WriteCloser
	// Abort discards everything written so far. Close after Abort is a
	// no-op.
	Abort() error
}

// NewReader returns a sequential reader over the whole blob.
func NewReader(b Blob) *io.SectionReader {
	return io.NewSectionReader(b, 0, b.Size())
}

// ReadAll reads the whole blob into memory.
func ReadAll(b Blob) ([]byte, error) {
	data := make([]byte, b.Size())
	if _, err := b.ReadAt(data, 0); err != nil && err != io.EOF {
		return nil, err
	}
	return data, nil
}

// FromBytes returns a Blob over data. data must not be modified while
// the Blob is in use.
func FromBytes(data []byte) Blob {
	return bytesBlob(data)
}
