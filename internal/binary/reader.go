// Package binary provides the byte-level primitives used by the tag
// decoders: integer and float codecs, a positioned cursor over seekable
// sources, and a bounds-checked reader over in-memory tag regions.
package binary

import (
	"github.com/simonhull/id3meta/internal/types"
)

// Reader reads sequentially from an in-memory buffer with bounds checking.
//
// The first failed read is remembered and every later read returns a zero
// value without touching the buffer, so a run of fields can be read and the
// error checked once:
//
//	r := binary.NewReader(header, 0, path)
//	id := r.String(3, "tag marker")
//	major := r.Byte("major version")
//	size := r.Synchsafe(4, "tag size")
//	if err := r.Err(); err != nil {
//		return err
//	}
type Reader struct {
	err  error
	name string
	buf  []byte
	base int64
	off  int
}

// NewReader creates a Reader over buf. base is the absolute offset of
// buf[0] and is only used in error messages.
func NewReader(buf []byte, base int64, name string) *Reader {
	return &Reader{
		buf:  buf,
		base: base,
		name: name,
	}
}

// Bytes returns the next n bytes and advances past them. The returned slice
// aliases the underlying buffer.
func (r *Reader) Bytes(n int, what string) []byte {
	if r.err != nil {
		return nil
	}

	if n < 0 || r.off+n > len(r.buf) {
		r.err = &types.OutOfBoundsError{
			Path:   r.name,
			What:   what,
			Offset: r.base + int64(r.off),
			Length: n,
			Size:   r.base + int64(len(r.buf)),
		}
		return nil
	}

	b := r.buf[r.off : r.off+n]
	r.off += n
	return b
}

// Byte reads a single byte.
func (r *Reader) Byte(what string) byte {
	b := r.Bytes(1, what)
	if b == nil {
		return 0
	}
	return b[0]
}

// String reads n bytes as a string.
func (r *Reader) String(n int, what string) string {
	return string(r.Bytes(n, what))
}

// Synchsafe reads an n-byte synchsafe integer.
func (r *Reader) Synchsafe(n int, what string) uint64 {
	return SynchsafeToInt(r.Bytes(n, what))
}

// Skip advances past n bytes.
func (r *Reader) Skip(n int, what string) {
	r.Bytes(n, what)
}

// Rest returns every unread byte and moves to the end of the buffer.
func (r *Reader) Rest() []byte {
	return r.Bytes(r.Remaining(), "remaining data")
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.off
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.off
}

// Err returns the first read error, if any.
func (r *Reader) Err() error {
	return r.err
}
