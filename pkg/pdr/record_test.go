package pdr

import (
	"errors"
	"strings"
	"testing"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

func TestParseUnknownType(t *testing.T) {
	var b recordBuilder
	b.u8(0xAA)
	b.u8(0xBB)
	record := b.record(3, wire.RecordType(77))

	rec, err := Parse(record)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	unknown, ok := rec.(*Unknown)
	if !ok {
		t.Fatalf("variant: got %T, want *Unknown", rec)
	}
	if unknown.Header.Type != wire.RecordType(77) {
		t.Errorf("Type: got %v, want 77", unknown.Header.Type)
	}
	if len(unknown.Data) != 2 || unknown.Data[0] != 0xAA {
		t.Errorf("Data: got %v, want [0xAA 0xBB]", unknown.Data)
	}

	// The variant must not alias the input record.
	record[wire.RecordHeaderSize] = 0
	if unknown.Data[0] != 0xAA {
		t.Error("Unknown.Data aliases the input buffer")
	}
}

func TestParseShortRecord(t *testing.T) {
	_, err := Parse([]byte{1, 2, 3})

	var decodeErr *DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("error type: got %T, want *DecodeError", err)
	}
	if !errors.Is(err, wire.ErrRecordTooShort) {
		t.Errorf("cause: got %v, want ErrRecordTooShort", decodeErr.Err)
	}
}

func TestParseCompactNumericSensor(t *testing.T) {
	rec, err := Parse(compactSensorRecord(8, 33, "CPU Fan"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s, ok := rec.(*CompactNumericSensor)
	if !ok {
		t.Fatalf("variant: got %T, want *CompactNumericSensor", rec)
	}

	if s.SensorID != 33 {
		t.Errorf("SensorID: got %d, want 33", s.SensorID)
	}
	if s.BaseUnit != UnitRPM {
		t.Errorf("BaseUnit: got %v, want RPM", s.BaseUnit)
	}
	if s.WarningHigh != 9000 || s.WarningLow != 500 {
		t.Errorf("warning range: got [%d, %d], want [500, 9000]", s.WarningLow, s.WarningHigh)
	}
	if s.FatalHigh != 0 || s.RangeSupport.Has(CompactRangeFatalHigh) {
		t.Errorf("absent fatal threshold decoded: %d", s.FatalHigh)
	}
	if s.Name != "CPU Fan" {
		t.Errorf("Name: got %q, want %q", s.Name, "CPU Fan")
	}
}

func TestCompactNumericSensorAuxiliaryNames(t *testing.T) {
	rec, err := Parse(compactSensorRecord(8, 33, "CPU Fan"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	names := rec.(*CompactNumericSensor).AuxiliaryNames()

	if names == nil {
		t.Fatal("AuxiliaryNames returned nil for a named sensor")
	}
	if names.SensorID != 33 || names.SensorCount != 1 {
		t.Errorf("derived table: id=%d count=%d", names.SensorID, names.SensorCount)
	}
	if got := names.Names[0][0]; got != (NamePair{Language: "en", Name: "CPU Fan"}) {
		t.Errorf("derived pair: got %+v", got)
	}
}

func TestCompactNumericSensorNoName(t *testing.T) {
	rec, err := Parse(compactSensorRecord(8, 34, ""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if names := rec.(*CompactNumericSensor).AuxiliaryNames(); names != nil {
		t.Errorf("AuxiliaryNames for unnamed sensor: got %+v, want nil", names)
	}
}

func TestParseCompactNumericSensorFaults(t *testing.T) {
	good := compactSensorRecord(8, 33, "CPU Fan")

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{
			name: "name length overruns record",
			mutate: func(r []byte) []byte {
				r[wire.RecordHeaderSize+10] = 200
				return r
			},
		},
		{
			name: "threshold fields overrun record",
			mutate: func(r []byte) []byte {
				return r[:wire.RecordHeaderSize+17]
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := tt.mutate(append([]byte(nil), good...))
			if rec, err := Parse(record); err == nil {
				t.Fatalf("Parse succeeded with %T, want decode fault", rec)
			}
		})
	}
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{
		RecordType: wire.RecordTypeSensorAuxiliaryNames,
		Offset:     12,
		Reason:     "name entry overruns record",
	}
	if msg := err.Error(); !strings.Contains(msg, "SENSOR_AUXILIARY_NAMES") ||
		!strings.Contains(msg, "name entry overruns record") {
		t.Errorf("message: %q", msg)
	}
}
