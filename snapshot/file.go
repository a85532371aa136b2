package snapshot

import (
	"bufio"
	"context"
	"io"

	"github.com/hupe1980/linkedvec"
	"github.com/hupe1980/linkedvec/internal/fs"
	"github.com/hupe1980/linkedvec/internal/mmap"
	"github.com/hupe1980/linkedvec/resource"
)

const fileBufferSize = 256 * 1024

// SaveFile writes a snapshot of l to filename. The file is written to a
// temporary sibling and renamed into place, so readers never observe a
// partial snapshot. ctx bounds waits on the Options.Resource I/O limit.
func SaveFile[T any](ctx context.Context, filename string, l *linkedvec.List[T], optFns ...func(*Options)) error {
	o := applyOptions(optFns)

	af, err := fs.CreateAtomic(o.fsys, filename)
	if err != nil {
		return err
	}

	var w io.Writer = af
	if o.Resource != nil {
		w = resource.NewRateLimitedWriter(ctx, af, o.Resource)
	}
	buf := bufio.NewWriterSize(w, fileBufferSize)
	if _, err := Write(buf, l, optFns...); err != nil {
		_ = af.Abort()
		return err
	}
	if err := buf.Flush(); err != nil {
		_ = af.Abort()
		return err
	}
	return af.Commit()
}

// LoadFile reads a snapshot written by SaveFile.
func LoadFile[T any](ctx context.Context, filename string, optFns ...func(*Options)) (*linkedvec.List[T], error) {
	o := applyOptions(optFns)
	if o.Mmap {
		return loadMapped[T](filename, optFns)
	}

	fsys := o.fsys
	if fsys == nil {
		fsys = fs.Default
	}
	f, err := fsys.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if o.Resource != nil {
		r = resource.NewRateLimitedReader(ctx, f, o.Resource)
	}
	return Read[T](bufio.NewReaderSize(r, fileBufferSize), optFns...)
}

// loadMapped decodes from a memory mapping. Read copies everything it
// keeps, so the mapping can be released as soon as it returns.
func loadMapped[T any](filename string, optFns []func(*Options)) (*linkedvec.List[T], error) {
	m, err := mmap.Open(filename)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	_ = m.Advise(mmap.AdviceSequential)
	return Read[T](m.NewReader(), optFns...)
}
