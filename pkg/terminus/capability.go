package terminus

import (
	"errors"
	"fmt"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// ErrInvalidMaskSize reports a capability bitmap of the wrong size.
var ErrInvalidMaskSize = errors.New("invalid capability mask size")

// TypeSet is the fixed 64-bit set of message types a terminus supports,
// bit i for type i.
type TypeSet uint64

// NewTypeSet builds a set from individual types. Types outside [0, 64)
// are ignored.
func NewTypeSet(types ...uint8) TypeSet {
	var s TypeSet
	for _, t := range types {
		if t < wire.MaxTypes {
			s |= 1 << t
		}
	}
	return s
}

// Has reports whether the set contains typ. Any type outside [0, 64)
// reports false.
func (s TypeSet) Has(typ uint8) bool {
	if typ >= wire.MaxTypes {
		return false
	}
	return s&(1<<typ) != 0
}

// CommandTable is the per-type command support bitmap of a terminus. The
// zero value is an empty table that supports nothing.
//
// All bit addressing goes through wire.CommandBitIndex; the table itself
// only bounds-checks and tests.
type CommandTable struct {
	mask []byte
}

// Set replaces the table with mask, which must be exactly
// wire.CommandMaskSize bytes. On size mismatch the existing table is left
// untouched and ErrInvalidMaskSize is returned. The mask is copied, so a
// successful Set is a full replacement with no partial state and no
// aliasing of the caller's buffer.
func (ct *CommandTable) Set(mask []byte) error {
	if len(mask) != wire.CommandMaskSize {
		return fmt.Errorf("%w: expected %d bytes, received %d",
			ErrInvalidMaskSize, wire.CommandMaskSize, len(mask))
	}
	m := make([]byte, len(mask))
	copy(m, mask)
	ct.mask = m
	return nil
}

// Supports reports whether the table has the bit for (typ, command).
// Types outside [0, 64) and bits beyond the stored table report false.
func (ct *CommandTable) Supports(typ, command uint8) bool {
	if typ >= wire.MaxTypes {
		return false
	}
	byteIndex, bitIndex := wire.CommandBitIndex(typ, command)
	if byteIndex >= len(ct.mask) {
		return false
	}
	return ct.mask[byteIndex]&(1<<bitIndex) != 0
}

// Size returns the stored table size in bytes: 0 before the first
// successful Set, wire.CommandMaskSize after.
func (ct *CommandTable) Size() int {
	return len(ct.mask)
}
