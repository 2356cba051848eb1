package log

import (
	"time"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// Event is one diagnostic event emitted by the terminus core.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// TID identifies the terminus the event belongs to.
	TID uint8 `cbor:"2,keyasint"`

	// PassID identifies the decode pass (UUID). Empty for events outside
	// a pass, such as capability updates.
	PassID string `cbor:"3,keyasint,omitempty"`

	// Category classifies the event type.
	Category Category `cbor:"4,keyasint"`

	// Type-specific payload (one of these will be set).
	Record     *RecordEvent     `cbor:"5,keyasint,omitempty"` // Decoded record
	Fault      *FaultEvent      `cbor:"6,keyasint,omitempty"` // Discarded record
	Capability *CapabilityEvent `cbor:"7,keyasint,omitempty"` // Rejected bitmap
	State      *StateEvent      `cbor:"8,keyasint,omitempty"` // State change
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryRecord indicates a record decoded successfully.
	CategoryRecord Category = 0
	// CategoryFault indicates a record was discarded during decode.
	CategoryFault Category = 1
	// CategoryCapability indicates a capability bitmap update was rejected.
	CategoryCapability Category = 2
	// CategoryState indicates a terminus state change.
	CategoryState Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryRecord:
		return "RECORD"
	case CategoryFault:
		return "FAULT"
	case CategoryCapability:
		return "CAPABILITY"
	case CategoryState:
		return "STATE"
	default:
		return "UNKNOWN"
	}
}

// RecordEvent describes one successfully decoded record.
type RecordEvent struct {
	// Index is the record's position in the store for this pass.
	Index int `cbor:"1,keyasint"`

	// Handle is the record handle from the common header.
	Handle uint32 `cbor:"2,keyasint"`

	// Type is the record type discriminator.
	Type wire.RecordType `cbor:"3,keyasint"`

	// SensorID is the decoded sensor id, where the record has one.
	SensorID uint16 `cbor:"4,keyasint,omitempty"`
}

// FaultEvent describes one discarded record.
type FaultEvent struct {
	// Index is the record's position in the store for this pass.
	Index int `cbor:"1,keyasint"`

	// Type is the declared record type, where the header was readable.
	Type wire.RecordType `cbor:"2,keyasint,omitempty"`

	// Offset is the payload byte offset at which decoding failed.
	Offset int `cbor:"3,keyasint,omitempty"`

	// Reason is a short human-readable cause.
	Reason string `cbor:"4,keyasint"`
}

// CapabilityEvent describes a rejected capability bitmap update.
type CapabilityEvent struct {
	// Expected is the required bitmap size in bytes.
	Expected int `cbor:"1,keyasint"`

	// Received is the size of the rejected buffer.
	Received int `cbor:"2,keyasint"`
}

// StateEvent describes a terminus state change.
type StateEvent struct {
	// Name identifies the change, e.g. "pdr_store_replaced".
	Name string `cbor:"1,keyasint"`

	// Detail carries an optional human-readable qualifier.
	Detail string `cbor:"2,keyasint,omitempty"`
}

// Terminus state change names.
const (
	StatePDRStoreReplaced = "pdr_store_replaced"
	StateDecodedCleared   = "decoded_cleared"
	StateInitialized      = "initialized"
)
