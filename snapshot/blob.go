package snapshot

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/hupe1980/linkedvec"
	"github.com/hupe1980/linkedvec/blobstore"
	"github.com/hupe1980/linkedvec/resource"
)

// Ext is the file extension of published snapshots.
const Ext = ".lvsn"

// SaveBlob streams a snapshot of l into store under name. The blob is
// discarded if writing fails.
func SaveBlob[T any](ctx context.Context, store blobstore.Store, name string, l *linkedvec.List[T], optFns ...func(*Options)) error {
	wb, err := store.Create(ctx, name)
	if err != nil {
		return err
	}

	var w io.Writer = wb
	if rc := applyOptions(optFns).Resource; rc != nil {
		w = resource.NewRateLimitedWriter(ctx, wb, rc)
	}
	buf := bufio.NewWriterSize(w, fileBufferSize)
	if _, err := Write(buf, l, optFns...); err != nil {
		_ = wb.Abort()
		return err
	}
	if err := buf.Flush(); err != nil {
		_ = wb.Abort()
		return err
	}
	return wb.Close()
}

// LoadBlob reads the snapshot stored under name.
func LoadBlob[T any](ctx context.Context, store blobstore.Store, name string, optFns ...func(*Options)) (*linkedvec.List[T], error) {
	b, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer b.Close()

	var r io.Reader = blobstore.NewReader(b)
	if rc := applyOptions(optFns).Resource; rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, rc)
	}
	return Read[T](bufio.NewReaderSize(r, fileBufferSize), optFns...)
}

// Publish saves l under a fresh time-ordered name and then points
// blobstore.CurrentName at it. It returns the snapshot's name. Readers
// following CurrentName never see a partially written snapshot.
func Publish[T any](ctx context.Context, store blobstore.Store, l *linkedvec.List[T], optFns ...func(*Options)) (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	name := id.String() + Ext

	if err := SaveBlob(ctx, store, name, l, optFns...); err != nil {
		return "", err
	}
	if err := store.Put(ctx, blobstore.CurrentName, []byte(name)); err != nil {
		return "", fmt.Errorf("snapshot: publish %s: %w", name, err)
	}
	return name, nil
}

// LoadCurrent reads the most recently published snapshot.
func LoadCurrent[T any](ctx context.Context, store blobstore.Store, optFns ...func(*Options)) (*linkedvec.List[T], error) {
	b, err := store.Open(ctx, blobstore.CurrentName)
	if err != nil {
		return nil, err
	}
	name, err := blobstore.ReadAll(b)
	_ = b.Close()
	if err != nil {
		return nil, err
	}
	return LoadBlob[T](ctx, store, string(name), optFns...)
}
