// Package fs abstracts the file operations behind snapshot files so that
// tests can inject I/O failures.
//
// Production code uses [Default], which is [LocalFS]. [AtomicFile] writes
// through a temporary sibling and a rename. [FaultyFS] wraps another
// FileSystem and fails writes, syncs, closes, or renames of matching
// files:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule(".lvsn", fs.Fault{FailAfterBytes: -1, FailOnSync: true})
//
// The interfaces take no context.Context; local file operations cannot be
// interrupted at the syscall level. Remote storage lives in blobstore.
package fs
