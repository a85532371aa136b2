// Package mmap maps snapshot files read-only into memory.
//
//	m, err := mmap.Open("list.lvsn")
//	if err != nil { ... }
//	defer m.Close()
//
//	_ = m.Advise(mmap.AdviceSequential)
//	data := m.Bytes()
//
// Unix platforms use mmap(2) with madvise(2) hints; Windows uses
// CreateFileMapping/MapViewOfFile and ignores hints.
//
// Close is idempotent. Slices obtained from Bytes must not be used after
// Close returns.
package mmap
