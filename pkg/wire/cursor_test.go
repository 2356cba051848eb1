package wire

import (
	"errors"
	"testing"
)

func TestCursorReadsLittleEndian(t *testing.T) {
	data := []byte{
		0x01,                   // uint8
		0xFF,                   // int8 (-1)
		0x34, 0x12,             // uint16
		0x78, 0x56, 0x34, 0x12, // uint32
		0x00, 0x00, 0x80, 0x3F, // float32 (1.0)
	}
	c := NewCursor(data)

	if got := c.Uint8(); got != 0x01 {
		t.Errorf("Uint8: got %#x, want 0x01", got)
	}
	if got := c.Int8(); got != -1 {
		t.Errorf("Int8: got %d, want -1", got)
	}
	if got := c.Uint16(); got != 0x1234 {
		t.Errorf("Uint16: got %#x, want 0x1234", got)
	}
	if got := c.Uint32(); got != 0x12345678 {
		t.Errorf("Uint32: got %#x, want 0x12345678", got)
	}
	if got := c.Float32(); got != 1.0 {
		t.Errorf("Float32: got %v, want 1.0", got)
	}
	if err := c.Err(); err != nil {
		t.Fatalf("unexpected cursor error: %v", err)
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining: got %d, want 0", c.Remaining())
	}
}

func TestCursorFailClosed(t *testing.T) {
	c := NewCursor([]byte{0xAA})

	if got := c.Uint16(); got != 0 {
		t.Errorf("overrunning Uint16: got %#x, want 0", got)
	}
	if c.Ok() {
		t.Fatal("cursor should have latched an error")
	}

	var short *ShortReadError
	if !errors.As(c.Err(), &short) {
		t.Fatalf("error type: got %T, want *ShortReadError", c.Err())
	}
	if short.Offset != 0 || short.Want != 2 || short.Have != 1 {
		t.Errorf("ShortReadError fields: got %+v", short)
	}

	// Reads after the error must not advance or return data.
	if got := c.Uint8(); got != 0 {
		t.Errorf("Uint8 after error: got %#x, want 0", got)
	}
	if c.Offset() != 0 {
		t.Errorf("Offset after error: got %d, want 0", c.Offset())
	}
}

func TestCursorOffsetInError(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	c.Uint16()
	c.Uint32()

	var short *ShortReadError
	if !errors.As(c.Err(), &short) {
		t.Fatalf("expected ShortReadError, got %v", c.Err())
	}
	if short.Offset != 2 {
		t.Errorf("error offset: got %d, want 2", short.Offset)
	}
}

func TestCursorBytesCopies(t *testing.T) {
	data := []byte{1, 2, 3}
	c := NewCursor(data)

	got := c.Bytes(3)
	data[0] = 0xFF
	if got[0] != 1 {
		t.Error("Bytes did not copy the underlying buffer")
	}
}

func TestCursorString(t *testing.T) {
	c := NewCursor([]byte("en-Fan"))
	if got := c.String(2); got != "en" {
		t.Errorf("String(2): got %q, want %q", got, "en")
	}
	if got := c.String(4); got != "-Fan" {
		t.Errorf("String(4): got %q, want %q", got, "-Fan")
	}
	if got := c.String(1); got != "" || c.Ok() {
		t.Errorf("overrunning String: got %q, ok=%v", got, c.Ok())
	}
}

func TestCursorSkip(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	c.Skip(3)
	if got := c.Uint8(); got != 4 {
		t.Errorf("Uint8 after Skip(3): got %d, want 4", got)
	}

	c.Skip(1)
	if c.Ok() {
		t.Error("Skip past end should latch an error")
	}
}
