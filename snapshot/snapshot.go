package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/hupe1980/linkedvec"
	"github.com/hupe1980/linkedvec/internal/conv"
	"github.com/hupe1980/linkedvec/internal/fs"
	"github.com/hupe1980/linkedvec/internal/hash"
	"github.com/hupe1980/linkedvec/resource"
)

const (
	// Version is the format version written by Write.
	Version uint8 = 1

	// DefaultMaxPayloadSize bounds the payload Read accepts unless
	// Options.MaxPayloadSize says otherwise.
	DefaultMaxPayloadSize = 1 << 30
)

var magic = [4]byte{'L', 'V', 'S', 'N'}

// header is the fixed-size prefix of a snapshot.
type header struct {
	Magic       [4]byte
	Version     uint8
	Compression Compression
	CodecLen    uint16
	Count       uint64
	RawSize     uint64
	StoredSize  uint64
	Checksum    uint32
}

// Options configures Write and Read.
type Options struct {
	// Codec encodes the elements on Write. Read prefers it when its name
	// matches the recorded codec and falls back to the built-ins otherwise.
	// Defaults to DefaultCodec.
	Codec Codec

	// Compression applied by Write. Ignored by Read, which follows the
	// header.
	Compression Compression

	// MaxPayloadSize is the largest raw or stored payload Read accepts.
	// Defaults to DefaultMaxPayloadSize.
	MaxPayloadSize int

	// ListOptions are passed to the List built by Read.
	ListOptions []linkedvec.Option

	// Resource throttles SaveFile and LoadFile to its I/O limit.
	Resource *resource.Controller

	// Mmap makes LoadFile map the file instead of reading it through a
	// buffered file handle. Resource throttling does not apply.
	Mmap bool

	fsys fs.FileSystem
}

func applyOptions(optFns []func(*Options)) Options {
	o := Options{
		Codec:          DefaultCodec,
		MaxPayloadSize: DefaultMaxPayloadSize,
	}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.Codec == nil {
		o.Codec = DefaultCodec
	}
	if o.MaxPayloadSize <= 0 {
		o.MaxPayloadSize = DefaultMaxPayloadSize
	}
	return o
}

// WithCodec sets the codec used by Write.
func WithCodec(c Codec) func(*Options) {
	return func(o *Options) {
		o.Codec = c
	}
}

// WithCompression sets the compression used by Write.
func WithCompression(c Compression) func(*Options) {
	return func(o *Options) {
		o.Compression = c
	}
}

// WithResource throttles SaveFile and LoadFile with rc.
func WithResource(rc *resource.Controller) func(*Options) {
	return func(o *Options) {
		o.Resource = rc
	}
}

// WithMmap makes LoadFile read through a read-only memory mapping.
func WithMmap() func(*Options) {
	return func(o *Options) {
		o.Mmap = true
	}
}

// Write stores the elements of l in traversal order and returns the number
// of bytes written.
func Write[T any](w io.Writer, l *linkedvec.List[T], optFns ...func(*Options)) (int64, error) {
	o := applyOptions(optFns)
	if !o.Compression.valid() {
		return 0, fmt.Errorf("%w: %v", ErrUnknownCompression, o.Compression)
	}

	name := o.Codec.Name()
	if len(name) == 0 || len(name) > math.MaxUint16 {
		return 0, fmt.Errorf("snapshot: codec name of length %d", len(name))
	}

	values := l.ToSlice()
	raw, err := o.Codec.Marshal(values)
	if err != nil {
		return 0, fmt.Errorf("snapshot: encode with %s: %w", name, err)
	}
	stored, used, err := compress(raw, o.Compression)
	if err != nil {
		return 0, fmt.Errorf("snapshot: compress with %v: %w", o.Compression, err)
	}

	hdr := header{
		Magic:       magic,
		Version:     Version,
		Compression: used,
		CodecLen:    uint16(len(name)),
		Checksum:    hash.CRC32C(stored),
	}
	if hdr.Count, err = conv.IntToUint64(len(values)); err != nil {
		return 0, err
	}
	if hdr.RawSize, err = conv.IntToUint64(len(raw)); err != nil {
		return 0, err
	}
	if hdr.StoredSize, err = conv.IntToUint64(len(stored)); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.LittleEndian, &hdr); err != nil {
		return cw.n, fmt.Errorf("snapshot: write header: %w", err)
	}
	if _, err := io.WriteString(cw, name); err != nil {
		return cw.n, fmt.Errorf("snapshot: write codec name: %w", err)
	}
	if _, err := cw.Write(stored); err != nil {
		return cw.n, fmt.Errorf("snapshot: write payload: %w", err)
	}
	return cw.n, nil
}

// Read decodes a snapshot written by Write into a new List.
func Read[T any](r io.Reader, optFns ...func(*Options)) (*linkedvec.List[T], error) {
	o := applyOptions(optFns)

	var hdr header
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("snapshot: read header: %w", err)
	}
	if hdr.Magic != magic {
		return nil, fmt.Errorf("%w: %q", ErrBadMagic, hdr.Magic[:])
	}
	if hdr.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, hdr.Version)
	}
	if !hdr.Compression.valid() {
		return nil, fmt.Errorf("%w: %v", ErrUnknownCompression, hdr.Compression)
	}

	nameBuf := make([]byte, hdr.CodecLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("snapshot: read codec name: %w", err)
	}
	codec, err := resolveCodec(string(nameBuf), o.Codec)
	if err != nil {
		return nil, err
	}

	rawSize, err := payloadSize(hdr.RawSize, o.MaxPayloadSize)
	if err != nil {
		return nil, err
	}
	storedSize, err := payloadSize(hdr.StoredSize, o.MaxPayloadSize)
	if err != nil {
		return nil, err
	}
	count, err := conv.Uint64ToInt(hdr.Count)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCountMismatch, err)
	}

	stored := make([]byte, storedSize)
	if _, err := io.ReadFull(r, stored); err != nil {
		return nil, fmt.Errorf("snapshot: read payload: %w", err)
	}
	if sum := hash.CRC32C(stored); sum != hdr.Checksum {
		return nil, fmt.Errorf("%w: expected 0x%08x, got 0x%08x", ErrChecksum, hdr.Checksum, sum)
	}

	raw, err := decompress(stored, hdr.Compression, rawSize)
	if err != nil {
		return nil, err
	}

	var values []T
	if err := codec.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("snapshot: decode with %s: %w", codec.Name(), err)
	}
	if len(values) != count {
		return nil, fmt.Errorf("%w: header says %d, payload holds %d", ErrCountMismatch, count, len(values))
	}

	return linkedvec.FromSlice(values, o.ListOptions...), nil
}

func resolveCodec(name string, preferred Codec) (Codec, error) {
	if preferred != nil && preferred.Name() == name {
		return preferred, nil
	}
	if c, ok := CodecByName(name); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

func payloadSize(size uint64, limit int) (int, error) {
	n, err := conv.Uint64ToInt(size)
	if err != nil || n > limit {
		return 0, fmt.Errorf("%w: %d bytes, limit %d", ErrTooLarge, size, limit)
	}
	return n, nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}

// IsCorrupt reports whether err means the snapshot bytes are damaged or not
// a snapshot at all, as opposed to an I/O or configuration problem.
func IsCorrupt(err error) bool {
	return errors.Is(err, ErrBadMagic) ||
		errors.Is(err, ErrChecksum) ||
		errors.Is(err, ErrCountMismatch) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
