package pdr

import (
	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// NumericSensor is the decoded fixed-layout definition of one numeric
// sensor: identity, unit and scaling, reading width and threshold ranges.
// Reading values themselves are out of scope; this record only carries the
// metadata a monitoring collaborator needs to configure polling.
type NumericSensor struct {
	Header wire.RecordHeader `yaml:"-"`

	TerminusHandle uint16   `yaml:"terminusHandle"`
	SensorID       SensorID `yaml:"sensorId"`
	EntityType     uint16   `yaml:"entityType"`
	EntityInstance uint16   `yaml:"entityInstance"`
	ContainerID    uint16   `yaml:"containerId"`

	Init              SensorInit `yaml:"init"`
	HasAuxiliaryNames bool       `yaml:"hasAuxiliaryNames"`

	BaseUnit     Unit  `yaml:"baseUnit"`
	UnitModifier int8  `yaml:"unitModifier"`
	RateUnit     uint8 `yaml:"rateUnit"`
	IsLinear     bool  `yaml:"isLinear"`

	// DataSize declares the width of reading-typed fields (hysteresis,
	// min/max readable).
	DataSize   DataSize `yaml:"dataSize"`
	Resolution float32  `yaml:"resolution"`
	Offset     float32  `yaml:"offset"`
	Accuracy   uint16   `yaml:"accuracy"`
	Hysteresis int64    `yaml:"hysteresis"`

	SupportedThresholds ThresholdSupport `yaml:"supportedThresholds"`

	MaxReadable int64 `yaml:"maxReadable"`
	MinReadable int64 `yaml:"minReadable"`

	// RangeFormat declares the width of the optional range fields below;
	// RangeSupport declares which of them were present on the wire. Absent
	// fields are zero.
	RangeFormat  RangeFormat       `yaml:"rangeFormat"`
	RangeSupport RangeFieldSupport `yaml:"rangeSupport"`

	NominalValue float64 `yaml:"nominalValue"`
	NormalMax    float64 `yaml:"normalMax"`
	NormalMin    float64 `yaml:"normalMin"`
	WarningHigh  float64 `yaml:"warningHigh"`
	WarningLow   float64 `yaml:"warningLow"`
	CriticalHigh float64 `yaml:"criticalHigh"`
	CriticalLow  float64 `yaml:"criticalLow"`
}

// RecordHeader returns the common record header.
func (s *NumericSensor) RecordHeader() wire.RecordHeader {
	return s.Header
}

// readSized reads one value of the given data size, sign-extending the
// signed encodings. Returns 0 with the cursor error latched on overrun.
func readSized(c *wire.Cursor, size DataSize) int64 {
	switch size {
	case DataSizeUint8:
		return int64(c.Uint8())
	case DataSizeInt8:
		return int64(c.Int8())
	case DataSizeUint16:
		return int64(c.Uint16())
	case DataSizeInt16:
		return int64(c.Int16())
	case DataSizeUint32:
		return int64(c.Uint32())
	default: // DataSizeInt32; invalid sizes are rejected before reading
		return int64(c.Int32())
	}
}

// readRange reads one range field of the given format.
func readRange(c *wire.Cursor, format RangeFormat) float64 {
	if format == RangeFormatFloat32 {
		return float64(c.Float32())
	}
	return float64(readSized(c, DataSize(format)))
}

func decodeNumericSensor(hdr wire.RecordHeader, payload []byte) (*NumericSensor, error) {
	c := wire.NewCursor(payload)

	s := &NumericSensor{
		Header:            hdr,
		TerminusHandle:    c.Uint16(),
		SensorID:          SensorID(c.Uint16()),
		EntityType:        c.Uint16(),
		EntityInstance:    c.Uint16(),
		ContainerID:       c.Uint16(),
		Init:              SensorInit(c.Uint8()),
		HasAuxiliaryNames: c.Bool(),
		BaseUnit:          Unit(c.Uint8()),
		UnitModifier:      c.Int8(),
		RateUnit:          c.Uint8(),
		IsLinear:          c.Bool(),
		DataSize:          DataSize(c.Uint8()),
	}
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "truncated sensor identity fields")
	}
	if s.DataSize.Width() == 0 {
		return nil, &DecodeError{RecordType: hdr.Type, Offset: c.Offset(), Reason: "invalid sensor data size"}
	}

	s.Resolution = c.Float32()
	s.Offset = c.Float32()
	s.Accuracy = c.Uint16()
	s.Hysteresis = readSized(c, s.DataSize)
	s.SupportedThresholds = ThresholdSupport(c.Uint8())
	s.MaxReadable = readSized(c, s.DataSize)
	s.MinReadable = readSized(c, s.DataSize)
	s.RangeFormat = RangeFormat(c.Uint8())
	s.RangeSupport = RangeFieldSupport(c.Uint8())
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "truncated sensor scaling fields")
	}
	if s.RangeFormat.Width() == 0 {
		return nil, &DecodeError{RecordType: hdr.Type, Offset: c.Offset(), Reason: "invalid range field format"}
	}

	// Optional range fields, present per RangeSupport in bit order.
	ranges := []struct {
		bit RangeFieldSupport
		dst *float64
	}{
		{RangeNominalValue, &s.NominalValue},
		{RangeNormalMax, &s.NormalMax},
		{RangeNormalMin, &s.NormalMin},
		{RangeWarningHigh, &s.WarningHigh},
		{RangeWarningLow, &s.WarningLow},
		{RangeCriticalHigh, &s.CriticalHigh},
		{RangeCriticalLow, &s.CriticalLow},
	}
	for _, r := range ranges {
		if s.RangeSupport.Has(r.bit) {
			*r.dst = readRange(c, s.RangeFormat)
		}
	}
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "range fields overrun record")
	}

	return s, nil
}
