package pdr

import (
	"errors"
	"fmt"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// Record is a decoded PDR variant. Exactly four concrete types implement
// it: *NumericSensor, *CompactNumericSensor, *SensorAuxiliaryNames and
// *Unknown.
type Record interface {
	// RecordHeader returns the common header of the source record.
	RecordHeader() wire.RecordHeader
}

// Unknown holds a record whose type this module does not decode. Keeping
// the raw payload lets callers forward or dump records they cannot
// interpret.
type Unknown struct {
	Header wire.RecordHeader

	// Data is the record payload, bounded by the declared length.
	Data []byte
}

// RecordHeader returns the common record header.
func (u *Unknown) RecordHeader() wire.RecordHeader {
	return u.Header
}

// DecodeError describes a structurally invalid record. It is diagnostic
// only; decode passes log it and move on to the next record.
type DecodeError struct {
	// RecordType is the declared type of the offending record, if the
	// common header could be read.
	RecordType wire.RecordType

	// Offset is the payload byte offset at which decoding failed, where
	// known.
	Offset int

	// Reason is a short human-readable cause.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode %v record: %s: %v", e.RecordType, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode %v record: %s", e.RecordType, e.Reason)
}

// Unwrap returns the underlying error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// faultAt builds a DecodeError from a latched cursor error, preserving the
// payload offset the cursor failed at.
func faultAt(typ wire.RecordType, c *wire.Cursor, reason string) *DecodeError {
	e := &DecodeError{RecordType: typ, Offset: c.Offset(), Reason: reason, Err: c.Err()}
	var short *wire.ShortReadError
	if errors.As(c.Err(), &short) {
		e.Offset = short.Offset
	}
	return e
}

// Parse decodes a single raw record into its typed variant. It is total:
// malformed input yields a *DecodeError, never a panic. Records of a type
// this module does not know decode to *Unknown.
//
// Decoders read at most min(declared length, len(record)) payload bytes.
func Parse(record []byte) (Record, error) {
	hdr, err := wire.DecodeRecordHeader(record)
	if err != nil {
		return nil, &DecodeError{Reason: "record shorter than common header", Err: err}
	}

	payload := hdr.Payload(record)
	switch hdr.Type {
	case wire.RecordTypeNumericSensor:
		return decodeNumericSensor(hdr, payload)
	case wire.RecordTypeSensorAuxiliaryNames:
		return decodeSensorAuxiliaryNames(hdr, payload)
	case wire.RecordTypeCompactNumericSensor:
		return decodeCompactNumericSensor(hdr, payload)
	default:
		// Copied so the variant never aliases the caller's record buffer.
		return &Unknown{Header: hdr, Data: append([]byte(nil), payload...)}, nil
	}
}
