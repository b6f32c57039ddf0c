package binary

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// Cursor is a seekable read position over a byte source.
//
// The source is either an open file or an in-memory buffer; both go through
// the same position arithmetic so seek origins (io.SeekStart, io.SeekCurrent,
// io.SeekEnd) and short reads behave identically. Cursor does not own the
// underlying storage and never closes it.
type Cursor struct {
	rs   io.ReadSeeker
	name string
	size int64
	pos  int64
}

// NewCursor creates a Cursor over rs, which holds size bytes.
func NewCursor(rs io.ReadSeeker, size int64, name string) *Cursor {
	return &Cursor{
		rs:   rs,
		name: name,
		size: size,
	}
}

// NewBufferCursor creates a Cursor over the in-memory buffer b. The buffer is
// not copied.
func NewBufferCursor(b []byte, name string) *Cursor {
	return NewCursor(bytes.NewReader(b), int64(len(b)), name)
}

// Name returns the path or label associated with the source.
func (c *Cursor) Name() string {
	return c.name
}

// Size returns the total number of bytes in the source.
func (c *Cursor) Size() int64 {
	return c.size
}

// Tell returns the current position.
func (c *Cursor) Tell() int64 {
	return c.pos
}

// Seek moves the cursor. Negative offsets with io.SeekEnd count back from the
// end of the source. Seeking past the end is allowed; subsequent reads return
// no data. Seeking before the start is an error and leaves the cursor unmoved.
func (c *Cursor) Seek(offset int64, whence int) (int64, error) {
	var target int64
	switch whence {
	case io.SeekStart:
		target = offset
	case io.SeekCurrent:
		target = c.pos + offset
	case io.SeekEnd:
		target = c.size + offset
	default:
		return c.pos, fmt.Errorf("%s: invalid seek origin %d", c.name, whence)
	}

	if target < 0 {
		return c.pos, fmt.Errorf("%s: seek to negative position %d", c.name, target)
	}

	if _, err := c.rs.Seek(target, io.SeekStart); err != nil {
		return c.pos, fmt.Errorf("%s: seek to %d: %w", c.name, target, err)
	}

	c.pos = target
	return c.pos, nil
}

// Read reads up to n bytes from the current position and advances past them.
//
// Reaching the end of the source is not an error: the returned slice is simply
// shorter than n (and empty at or past the end).
func (c *Cursor) Read(n int) ([]byte, error) {
	if n <= 0 || c.pos >= c.size {
		return []byte{}, nil
	}

	buf := make([]byte, min(int64(n), c.size-c.pos))
	read, err := io.ReadFull(c.rs, buf)
	c.pos += int64(read)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return buf[:read], fmt.Errorf("%s: read %d bytes at offset %d: %w", c.name, n, c.pos-int64(read), err)
	}

	return buf[:read], nil
}

// ReadAt seeks to off (from the start) and reads up to n bytes.
func (c *Cursor) ReadAt(off int64, n int) ([]byte, error) {
	if _, err := c.Seek(off, io.SeekStart); err != nil {
		return nil, err
	}
	return c.Read(n)
}
