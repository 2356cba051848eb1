package wire

import (
	"errors"
	"fmt"
)

// RecordHeaderSize is the size of the common PDR header in bytes.
const RecordHeaderSize = 10

// RecordHeaderVersion is the PDR header version this module understands.
const RecordHeaderVersion = 1

// RecordType identifies the payload layout of a PDR.
type RecordType uint8

// Record types defined by the platform-monitoring wire specification.
// Types not listed here are valid on the wire but opaque to this module.
const (
	RecordTypeNumericSensor        RecordType = 2
	RecordTypeSensorAuxiliaryNames RecordType = 8
	RecordTypeCompactNumericSensor RecordType = 21
)

// String returns the record type name.
func (t RecordType) String() string {
	switch t {
	case RecordTypeNumericSensor:
		return "NUMERIC_SENSOR"
	case RecordTypeSensorAuxiliaryNames:
		return "SENSOR_AUXILIARY_NAMES"
	case RecordTypeCompactNumericSensor:
		return "COMPACT_NUMERIC_SENSOR"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
	}
}

// RecordHeader is the fixed header every PDR begins with.
type RecordHeader struct {
	// Handle is the record handle assigned by the terminus.
	Handle uint32

	// Version is the header format version.
	Version uint8

	// Type is the record type discriminator.
	Type RecordType

	// ChangeNumber increments when the terminus modifies the record.
	ChangeNumber uint16

	// DataLength is the number of payload bytes following the header.
	DataLength uint16
}

// Record framing errors.
var (
	ErrRecordTooShort = errors.New("record shorter than common header")
	ErrRecordLength   = errors.New("record length field exceeds buffer")
)

// DecodeRecordHeader reads the common header from the start of record.
func DecodeRecordHeader(record []byte) (RecordHeader, error) {
	if len(record) < RecordHeaderSize {
		return RecordHeader{}, ErrRecordTooShort
	}
	c := NewCursor(record)
	hdr := RecordHeader{
		Handle:       c.Uint32(),
		Version:      c.Uint8(),
		Type:         RecordType(c.Uint8()),
		ChangeNumber: c.Uint16(),
		DataLength:   c.Uint16(),
	}
	return hdr, c.Err()
}

// Payload returns the record payload bounded by both the declared
// DataLength and the actual buffer size, whichever is smaller. Decoders
// must never read past either limit.
func (h RecordHeader) Payload(record []byte) []byte {
	if len(record) <= RecordHeaderSize {
		return nil
	}
	end := RecordHeaderSize + int(h.DataLength)
	if end > len(record) {
		end = len(record)
	}
	return record[RecordHeaderSize:end]
}

// Split cuts a stream of concatenated PDRs into individual records using
// each record's declared length. A truncated trailing record fails the
// whole split; PDR dumps are produced atomically, so a short tail means
// the file is corrupt rather than merely incomplete.
func Split(stream []byte) ([][]byte, error) {
	var records [][]byte
	for off := 0; off < len(stream); {
		rest := stream[off:]
		hdr, err := DecodeRecordHeader(rest)
		if err != nil {
			return nil, fmt.Errorf("record at offset %d: %w", off, err)
		}
		size := RecordHeaderSize + int(hdr.DataLength)
		if size > len(rest) {
			return nil, fmt.Errorf("record at offset %d: %w", off, ErrRecordLength)
		}
		records = append(records, rest[:size])
		off += size
	}
	return records, nil
}
