package mmap

import "errors"

// Advice tells the kernel how a mapping is about to be read.
type Advice int

const (
	// AdviceNormal drops any earlier hint.
	AdviceNormal Advice = iota
	// AdviceSequential suits a single front-to-back decode of a snapshot.
	AdviceSequential
	// AdviceRandom suits ReadAt calls at scattered offsets.
	AdviceRandom
	// AdviceWillNeed asks for the whole mapping to be paged in ahead of use.
	AdviceWillNeed
)

var (
	// ErrClosed is returned by every accessor once Close was called.
	ErrClosed = errors.New("mmap: mapping is closed")
	// ErrInvalidSize is returned for a file too large to map on this platform.
	ErrInvalidSize = errors.New("mmap: file too large to map")
	// ErrInvalidOffset is returned by ReadAt for a negative offset.
	ErrInvalidOffset = errors.New("mmap: negative offset")
)
