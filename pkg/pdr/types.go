package pdr

import "fmt"

// SensorID identifies a sensor within one terminus.
type SensorID uint16

// DataSize declares the width and signedness of a sensor reading field.
type DataSize uint8

// Sensor data sizes.
const (
	DataSizeUint8 DataSize = iota
	DataSizeInt8
	DataSizeUint16
	DataSizeInt16
	DataSizeUint32
	DataSizeInt32
)

// Width returns the encoded width in bytes, or 0 for an invalid value.
func (d DataSize) Width() int {
	switch d {
	case DataSizeUint8, DataSizeInt8:
		return 1
	case DataSizeUint16, DataSizeInt16:
		return 2
	case DataSizeUint32, DataSizeInt32:
		return 4
	default:
		return 0
	}
}

// Signed reports whether the encoded value is two's complement.
func (d DataSize) Signed() bool {
	switch d {
	case DataSizeInt8, DataSizeInt16, DataSizeInt32:
		return true
	default:
		return false
	}
}

// String returns the data size name.
func (d DataSize) String() string {
	switch d {
	case DataSizeUint8:
		return "uint8"
	case DataSizeInt8:
		return "int8"
	case DataSizeUint16:
		return "uint16"
	case DataSizeInt16:
		return "int16"
	case DataSizeUint32:
		return "uint32"
	case DataSizeInt32:
		return "int32"
	default:
		return fmt.Sprintf("DATA_SIZE(%d)", uint8(d))
	}
}

// RangeFormat declares the width of the optional range fields in a numeric
// sensor record. It extends DataSize with a float32 encoding.
type RangeFormat uint8

// Range field formats.
const (
	RangeFormatUint8 RangeFormat = iota
	RangeFormatInt8
	RangeFormatUint16
	RangeFormatInt16
	RangeFormatUint32
	RangeFormatInt32
	RangeFormatFloat32
)

// Width returns the encoded width in bytes, or 0 for an invalid value.
func (f RangeFormat) Width() int {
	if f == RangeFormatFloat32 {
		return 4
	}
	return DataSize(f).Width()
}

// String returns the range format name.
func (f RangeFormat) String() string {
	if f == RangeFormatFloat32 {
		return "float32"
	}
	return DataSize(f).String()
}

// Unit is the base measurement unit of a sensor.
type Unit uint8

// Base units carried by sensor records. The wire value space is larger;
// unlisted values pass through undecorated.
const (
	UnitNone     Unit = 0
	UnitDegreesC Unit = 2
	UnitVolts    Unit = 5
	UnitAmps     Unit = 6
	UnitWatts    Unit = 7
	UnitJoules   Unit = 8
	UnitPercent  Unit = 13
	UnitHertz    Unit = 20
	UnitRPM      Unit = 19
)

// String returns the unit name.
func (u Unit) String() string {
	switch u {
	case UnitNone:
		return "NONE"
	case UnitDegreesC:
		return "DEGREES_C"
	case UnitVolts:
		return "VOLTS"
	case UnitAmps:
		return "AMPS"
	case UnitWatts:
		return "WATTS"
	case UnitJoules:
		return "JOULES"
	case UnitPercent:
		return "PERCENT"
	case UnitRPM:
		return "RPM"
	case UnitHertz:
		return "HERTZ"
	default:
		return fmt.Sprintf("UNIT(%d)", uint8(u))
	}
}

// ThresholdSupport is the bitfield of thresholds a numeric sensor exposes.
type ThresholdSupport uint8

// Threshold bits, LSB first.
const (
	ThresholdUpperWarning ThresholdSupport = 1 << iota
	ThresholdLowerWarning
	ThresholdUpperCritical
	ThresholdLowerCritical
	ThresholdUpperFatal
	ThresholdLowerFatal
)

// Has reports whether all thresholds in mask are supported.
func (s ThresholdSupport) Has(mask ThresholdSupport) bool {
	return s&mask == mask
}

// RangeFieldSupport is the bitfield declaring which optional range fields
// are present in a numeric sensor record. Fields are encoded in bit order.
type RangeFieldSupport uint8

// Range field bits, LSB first.
const (
	RangeNominalValue RangeFieldSupport = 1 << iota
	RangeNormalMax
	RangeNormalMin
	RangeWarningHigh
	RangeWarningLow
	RangeCriticalHigh
	RangeCriticalLow
)

// Has reports whether all fields in mask are present.
func (s RangeFieldSupport) Has(mask RangeFieldSupport) bool {
	return s&mask == mask
}

// CompactRangeSupport is the bitfield declaring which threshold fields are
// present in a compact numeric sensor record. Fields are encoded in bit
// order as int32 values.
type CompactRangeSupport uint8

// Compact range field bits, LSB first.
const (
	CompactRangeWarningHigh CompactRangeSupport = 1 << iota
	CompactRangeWarningLow
	CompactRangeCriticalHigh
	CompactRangeCriticalLow
	CompactRangeFatalHigh
	CompactRangeFatalLow
)

// Has reports whether all fields in mask are present.
func (s CompactRangeSupport) Has(mask CompactRangeSupport) bool {
	return s&mask == mask
}

// SensorInit is the requested init action for a sensor.
type SensorInit uint8

// Sensor init actions.
const (
	SensorInitNone SensorInit = iota
	SensorInitUseInitRecord
	SensorInitEnable
	SensorInitDisable
)

// String returns the init action name.
func (i SensorInit) String() string {
	switch i {
	case SensorInitNone:
		return "NO_INIT"
	case SensorInitUseInitRecord:
		return "USE_INIT_RECORD"
	case SensorInitEnable:
		return "ENABLE"
	case SensorInitDisable:
		return "DISABLE"
	default:
		return fmt.Sprintf("SENSOR_INIT(%d)", uint8(i))
	}
}
