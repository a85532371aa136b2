// Package snapshot persists the elements of a linkedvec.List in traversal
// order.
//
// A snapshot stores values only. Handles are not persisted: Read builds a new
// List with its own identity, laid out contiguously.
//
// # Format
//
// All integers are little-endian.
//
//	magic        [4]byte  "LVSN"
//	version      uint8
//	compression  uint8    None, LZ4 or ZSTD
//	codec length uint16
//	count        uint64   number of elements
//	raw size     uint64   encoded payload size before compression
//	stored size  uint64   payload size as written
//	checksum     uint32   CRC32C of the stored payload
//	codec name   [codec length]byte
//	payload      [stored size]byte
//
// The payload is the codec encoding of the element slice. Read selects the
// codec by the name recorded in the header, so a snapshot written with one
// codec can be read by a caller that configured another.
//
// # Storage
//
// SaveFile and LoadFile work on local paths; LoadFile can read through a
// memory mapping with WithMmap. SaveBlob and LoadBlob work on any
// blobstore.Store. Publish stores a snapshot under a time-ordered name and
// then repoints blobstore.CurrentName at it, and LoadCurrent follows that
// pointer.
package snapshot
