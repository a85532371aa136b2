//go:build unix

package mmap

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// osMap maps f read-only. Snapshots and blobs are immutable once committed,
// so a shared mapping sees the same bytes a read would.
func osMap(f *os.File, size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

var madvise = map[Advice]int{
	AdviceNormal:     unix.MADV_NORMAL,
	AdviceSequential: unix.MADV_SEQUENTIAL,
	AdviceRandom:     unix.MADV_RANDOM,
	AdviceWillNeed:   unix.MADV_WILLNEED,
}

func osAdvise(data []byte, advice Advice) error {
	flag, ok := madvise[advice]
	if !ok {
		flag = unix.MADV_NORMAL
	}

	// madvise wants page-aligned addresses; the hint is advisory, so an
	// unaligned slice is not an error.
	err := unix.Madvise(data, flag)
	if errors.Is(err, unix.EINVAL) {
		return nil
	}
	return err
}
