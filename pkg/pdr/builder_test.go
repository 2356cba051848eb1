package pdr

import (
	"encoding/binary"
	"math"

	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// recordBuilder assembles raw test records field by field.
type recordBuilder struct {
	buf []byte
}

func (b *recordBuilder) u8(v uint8) *recordBuilder {
	b.buf = append(b.buf, v)
	return b
}

func (b *recordBuilder) i8(v int8) *recordBuilder {
	return b.u8(uint8(v))
}

func (b *recordBuilder) u16(v uint16) *recordBuilder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *recordBuilder) u32(v uint32) *recordBuilder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *recordBuilder) i32(v int32) *recordBuilder {
	return b.u32(uint32(v))
}

func (b *recordBuilder) f32(v float32) *recordBuilder {
	return b.u32(math.Float32bits(v))
}

func (b *recordBuilder) str(s string) *recordBuilder {
	b.buf = append(b.buf, s...)
	return b
}

// record prepends a common header declaring the accumulated payload.
func (b *recordBuilder) record(handle uint32, typ wire.RecordType) []byte {
	var h recordBuilder
	h.u32(handle).u8(wire.RecordHeaderVersion).u8(uint8(typ)).u16(0).u16(uint16(len(b.buf)))
	return append(h.buf, b.buf...)
}

// auxNamesRecord builds a well-formed auxiliary-names record.
func auxNamesRecord(handle uint32, sensorID SensorID, names [][]NamePair) []byte {
	var b recordBuilder
	b.u16(uint16(sensorID)).u8(uint8(len(names)))
	for _, pairs := range names {
		b.u8(uint8(len(pairs)))
		for _, p := range pairs {
			b.str(p.Language).u8(uint8(len(p.Name))).str(p.Name)
		}
	}
	return b.record(handle, wire.RecordTypeSensorAuxiliaryNames)
}

// numericSensorRecord builds a well-formed numeric sensor record with
// uint16 readings and two float32 range fields (warning high/low).
func numericSensorRecord(handle uint32, sensorID SensorID) []byte {
	var b recordBuilder
	b.u16(1) // terminus handle
	b.u16(uint16(sensorID))
	b.u16(0x1234) // entity type
	b.u16(1)      // entity instance
	b.u16(0)      // container
	b.u8(uint8(SensorInitEnable))
	b.u8(1) // has aux names
	b.u8(uint8(UnitDegreesC))
	b.i8(-2) // unit modifier
	b.u8(0)  // rate unit
	b.u8(1)  // linear
	b.u8(uint8(DataSizeUint16))
	b.f32(0.5) // resolution
	b.f32(10)  // offset
	b.u16(0)   // accuracy
	b.u16(2)   // hysteresis
	b.u8(uint8(ThresholdUpperWarning | ThresholdLowerWarning))
	b.u16(5000) // max readable
	b.u16(0)    // min readable
	b.u8(uint8(RangeFormatFloat32))
	b.u8(uint8(RangeWarningHigh | RangeWarningLow))
	b.f32(90) // warning high
	b.f32(5)  // warning low
	return b.record(handle, wire.RecordTypeNumericSensor)
}

// compactSensorRecord builds a well-formed compact numeric sensor record
// with warning thresholds and an inline name.
func compactSensorRecord(handle uint32, sensorID SensorID, name string) []byte {
	var b recordBuilder
	b.u16(1)
	b.u16(uint16(sensorID))
	b.u16(0x1234)
	b.u16(2)
	b.u16(0)
	b.u8(uint8(len(name)))
	b.u8(uint8(UnitRPM))
	b.i8(0)
	b.u8(10) // occurrence rate
	b.u8(uint8(CompactRangeWarningHigh | CompactRangeWarningLow))
	b.i32(9000)
	b.i32(500)
	b.str(name)
	return b.record(handle, wire.RecordTypeCompactNumericSensor)
}
