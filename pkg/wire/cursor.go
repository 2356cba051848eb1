package wire

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ShortReadError reports a read that would run past the end of the buffer.
// It records where the decoder was and what it wanted, for diagnostics.
type ShortReadError struct {
	// Offset is the byte offset at which the read was attempted.
	Offset int

	// Want is the number of bytes the read needed.
	Want int

	// Have is the number of bytes remaining in the buffer.
	Have int
}

func (e *ShortReadError) Error() string {
	return fmt.Sprintf("short read at offset %d: want %d bytes, have %d", e.Offset, e.Want, e.Have)
}

// Cursor reads little-endian values from a byte buffer.
//
// Cursor is fail-closed: the first read past the end of the buffer latches
// a ShortReadError and all subsequent reads return zero values without
// advancing. Decoders read an entire layout and check Err once.
type Cursor struct {
	data []byte
	off  int
	err  error
}

// NewCursor creates a cursor over data. The cursor does not copy data;
// callers must not mutate the buffer while decoding.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the current byte offset.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Err returns the latched error, or nil if all reads succeeded so far.
func (c *Cursor) Err() error {
	return c.err
}

// Ok reports whether no read has failed.
func (c *Cursor) Ok() bool {
	return c.err == nil
}

// take reserves n bytes and returns them, or nil after latching an error.
func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || c.Remaining() < n {
		c.err = &ShortReadError{Offset: c.off, Want: n, Have: c.Remaining()}
		return nil
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b
}

// Skip advances the cursor by n bytes.
func (c *Cursor) Skip(n int) {
	c.take(n)
}

// Uint8 reads one unsigned byte.
func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

// Int8 reads one signed byte.
func (c *Cursor) Int8() int8 {
	return int8(c.Uint8())
}

// Bool reads one byte and reports whether it is non-zero.
func (c *Cursor) Bool() bool {
	return c.Uint8() != 0
}

// Uint16 reads a little-endian uint16.
func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

// Int16 reads a little-endian int16.
func (c *Cursor) Int16() int16 {
	return int16(c.Uint16())
}

// Uint32 reads a little-endian uint32.
func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

// Int32 reads a little-endian int32.
func (c *Cursor) Int32() int32 {
	return int32(c.Uint32())
}

// Float32 reads a little-endian IEEE 754 float32.
func (c *Cursor) Float32() float32 {
	return math.Float32frombits(c.Uint32())
}

// Bytes reads n bytes and returns a copy, so decoded records never alias
// the raw record buffer.
func (c *Cursor) Bytes(n int) []byte {
	b := c.take(n)
	if b == nil {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// String reads n bytes as a UTF-8 string.
func (c *Cursor) String(n int) string {
	b := c.take(n)
	if b == nil {
		return ""
	}
	return string(b)
}
