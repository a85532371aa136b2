package fs

import (
	"errors"
	"path/filepath"
)

// TempMarker appears in the names of in-flight AtomicFile temporaries.
const TempMarker = ".tmp-"

// ErrFinished is returned by writes to a committed or aborted AtomicFile.
var ErrFinished = errors.New("fs: atomic file already finished")

// AtomicFile writes to a temporary sibling of its target and renames it
// into place on Commit, so readers see either the old file or the
// complete new one.
type AtomicFile struct {
	fsys   FileSystem
	f      File
	target string
	done   bool
}

// CreateAtomic starts an atomic write of filename, creating missing
// parent directories.
func CreateAtomic(fsys FileSystem, filename string) (*AtomicFile, error) {
	if fsys == nil {
		fsys = Default
	}
	dir := filepath.Dir(filename)
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f, err := fsys.CreateTemp(dir, filepath.Base(filename)+TempMarker+"*")
	if err != nil {
		return nil, err
	}
	return &AtomicFile{fsys: fsys, f: f, target: filename}, nil
}

func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.done {
		return 0, ErrFinished
	}
	return a.f.Write(p)
}

// Commit syncs the temporary file and renames it over the target. On
// failure the temporary file is removed and the target is untouched.
func (a *AtomicFile) Commit() error {
	if a.done {
		return nil
	}
	a.done = true

	tmp := a.f.Name()
	_ = a.f.Chmod(0o644)
	err := a.f.Sync()
	if cerr := a.f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = a.fsys.Rename(tmp, a.target)
	}
	if err != nil {
		_ = a.fsys.Remove(tmp)
		return err
	}
	return a.fsys.SyncDir(filepath.Dir(a.target))
}

// Abort discards the temporary file. It is a no-op after Commit.
func (a *AtomicFile) Abort() error {
	if a.done {
		return nil
	}
	a.done = true
	_ = a.f.Close()
	return a.fsys.Remove(a.f.Name())
}
