package snapshot

import "errors"

var (
	// ErrBadMagic is returned when the input is not a snapshot.
	ErrBadMagic = errors.New("snapshot: bad magic")
	// ErrUnsupportedVersion is returned for a format version this package
	// cannot read.
	ErrUnsupportedVersion = errors.New("snapshot: unsupported version")
	// ErrChecksum is returned when the payload does not match its checksum.
	ErrChecksum = errors.New("snapshot: checksum mismatch")
	// ErrUnknownCodec is returned when the recorded codec is not registered.
	ErrUnknownCodec = errors.New("snapshot: unknown codec")
	// ErrUnknownCompression is returned for an unrecognised compression byte.
	ErrUnknownCompression = errors.New("snapshot: unknown compression")
	// ErrTooLarge is returned when a header announces a payload above
	// Options.MaxPayloadSize, or when a compressed payload inflates past the
	// raw size its header announces.
	ErrTooLarge = errors.New("snapshot: payload too large")
	// ErrCountMismatch is returned when the decoded payload does not hold the
	// number of elements recorded in the header.
	ErrCountMismatch = errors.New("snapshot: element count mismatch")
)
