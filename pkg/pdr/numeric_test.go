package pdr

import (
	"testing"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

func TestDecodeNumericSensor(t *testing.T) {
	rec, err := Parse(numericSensorRecord(42, 17))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s, ok := rec.(*NumericSensor)
	if !ok {
		t.Fatalf("variant: got %T, want *NumericSensor", rec)
	}

	if s.Header.Handle != 42 {
		t.Errorf("Handle: got %d, want 42", s.Header.Handle)
	}
	if s.SensorID != 17 {
		t.Errorf("SensorID: got %d, want 17", s.SensorID)
	}
	if s.BaseUnit != UnitDegreesC {
		t.Errorf("BaseUnit: got %v, want DEGREES_C", s.BaseUnit)
	}
	if s.UnitModifier != -2 {
		t.Errorf("UnitModifier: got %d, want -2", s.UnitModifier)
	}
	if !s.HasAuxiliaryNames || !s.IsLinear {
		t.Errorf("flags: HasAuxiliaryNames=%v IsLinear=%v, want both true", s.HasAuxiliaryNames, s.IsLinear)
	}
	if s.DataSize != DataSizeUint16 {
		t.Errorf("DataSize: got %v, want uint16", s.DataSize)
	}
	if s.Resolution != 0.5 || s.Offset != 10 {
		t.Errorf("scaling: resolution=%v offset=%v, want 0.5/10", s.Resolution, s.Offset)
	}
	if s.Hysteresis != 2 {
		t.Errorf("Hysteresis: got %d, want 2", s.Hysteresis)
	}
	if !s.SupportedThresholds.Has(ThresholdUpperWarning | ThresholdLowerWarning) {
		t.Errorf("SupportedThresholds: got %08b", s.SupportedThresholds)
	}
	if s.SupportedThresholds.Has(ThresholdUpperFatal) {
		t.Error("SupportedThresholds reports unsupported fatal threshold")
	}
	if s.MaxReadable != 5000 || s.MinReadable != 0 {
		t.Errorf("readable range: got [%d, %d], want [0, 5000]", s.MinReadable, s.MaxReadable)
	}
	if s.WarningHigh != 90 || s.WarningLow != 5 {
		t.Errorf("warning range: got [%v, %v], want [5, 90]", s.WarningLow, s.WarningHigh)
	}
	// Fields absent from RangeSupport stay zero.
	if s.CriticalHigh != 0 || s.NominalValue != 0 {
		t.Errorf("absent range fields: critical=%v nominal=%v, want 0", s.CriticalHigh, s.NominalValue)
	}
}

func TestDecodeNumericSensorSignedReadings(t *testing.T) {
	var b recordBuilder
	b.u16(1)
	b.u16(9)
	b.u16(0x1234)
	b.u16(1)
	b.u16(0)
	b.u8(uint8(SensorInitNone))
	b.u8(0)
	b.u8(uint8(UnitDegreesC))
	b.i8(0)
	b.u8(0)
	b.u8(1)
	b.u8(uint8(DataSizeInt8))
	b.f32(1)
	b.f32(0)
	b.u16(0)
	b.i8(-1) // hysteresis
	b.u8(0)
	b.i8(127)  // max readable
	b.i8(-128) // min readable
	b.u8(uint8(RangeFormatInt8))
	b.u8(uint8(RangeNominalValue))
	b.i8(-40) // nominal

	rec, err := Parse(b.record(1, wire.RecordTypeNumericSensor))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	s := rec.(*NumericSensor)

	if s.Hysteresis != -1 {
		t.Errorf("Hysteresis: got %d, want -1 (sign extension)", s.Hysteresis)
	}
	if s.MaxReadable != 127 || s.MinReadable != -128 {
		t.Errorf("readable range: got [%d, %d], want [-128, 127]", s.MinReadable, s.MaxReadable)
	}
	if s.NominalValue != -40 {
		t.Errorf("NominalValue: got %v, want -40", s.NominalValue)
	}
}

func TestDecodeNumericSensorFaults(t *testing.T) {
	good := numericSensorRecord(42, 17)

	tests := []struct {
		name   string
		mutate func([]byte) []byte
	}{
		{
			name: "truncated identity fields",
			mutate: func(r []byte) []byte {
				return r[:wire.RecordHeaderSize+5]
			},
		},
		{
			name: "invalid data size",
			mutate: func(r []byte) []byte {
				r[wire.RecordHeaderSize+16] = 99
				return r
			},
		},
		{
			name: "invalid range format",
			mutate: func(r []byte) []byte {
				// rangeFormat byte: 17 fixed + 4+4+2 scaling + 2 hysteresis
				// + 1 thresholds + 2 + 2 readable = offset 34
				r[wire.RecordHeaderSize+34] = 200
				return r
			},
		},
		{
			name: "range fields overrun record",
			mutate: func(r []byte) []byte {
				return r[:len(r)-2]
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
