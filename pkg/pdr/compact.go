package pdr

import (
	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// CompactNumericSensor is the denser sensor definition used when a
// terminus exposes many sensors: the same identity and unit fields as
// NumericSensor, int32 threshold fields gated by a support bitmask, and an
// inline UTF-8 sensor name instead of a separate name record.
type CompactNumericSensor struct {
	Header wire.RecordHeader `yaml:"-"`

	TerminusHandle uint16   `yaml:"terminusHandle"`
	SensorID       SensorID `yaml:"sensorId"`
	EntityType     uint16   `yaml:"entityType"`
	EntityInstance uint16   `yaml:"entityInstance"`
	ContainerID    uint16   `yaml:"containerId"`

	BaseUnit       Unit  `yaml:"baseUnit"`
	UnitModifier   int8  `yaml:"unitModifier"`
	OccurrenceRate uint8 `yaml:"occurrenceRate"`

	// RangeSupport declares which threshold fields were present on the
	// wire. Absent fields are zero.
	RangeSupport CompactRangeSupport `yaml:"rangeSupport"`

	WarningHigh  int32 `yaml:"warningHigh"`
	WarningLow   int32 `yaml:"warningLow"`
	CriticalHigh int32 `yaml:"criticalHigh"`
	CriticalLow  int32 `yaml:"criticalLow"`
	FatalHigh    int32 `yaml:"fatalHigh"`
	FatalLow     int32 `yaml:"fatalLow"`

	// Name is the inline sensor name; empty when the record declares no
	// name.
	Name string `yaml:"name"`
}

// RecordHeader returns the common record header.
func (s *CompactNumericSensor) RecordHeader() wire.RecordHeader {
	return s.Header
}

// defaultLanguageTag is the language assigned to inline compact sensor
// names, which carry no tag of their own on the wire.
const defaultLanguageTag = "en"

// AuxiliaryNames derives a single-sub-sensor name table from the inline
// name, or nil when the record has no name.
func (s *CompactNumericSensor) AuxiliaryNames() *SensorAuxiliaryNames {
	if s.Name == "" {
		return nil
	}
	return &SensorAuxiliaryNames{
		Header:      s.Header,
		SensorID:    s.SensorID,
		SensorCount: 1,
		Names: [][]NamePair{
			{{Language: defaultLanguageTag, Name: s.Name}},
		},
	}
}

func decodeCompactNumericSensor(hdr wire.RecordHeader, payload []byte) (*CompactNumericSensor, error) {
	c := wire.NewCursor(payload)

	s := &CompactNumericSensor{
		Header:         hdr,
		TerminusHandle: c.Uint16(),
		SensorID:       SensorID(c.Uint16()),
		EntityType:     c.Uint16(),
		EntityInstance: c.Uint16(),
		ContainerID:    c.Uint16(),
	}
	nameLen := c.Uint8()
	s.BaseUnit = Unit(c.Uint8())
	s.UnitModifier = c.Int8()
	s.OccurrenceRate = c.Uint8()
	s.RangeSupport = CompactRangeSupport(c.Uint8())
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "truncated sensor identity fields")
	}

	// Threshold fields, present per RangeSupport in bit order.
	ranges := []struct {
		bit CompactRangeSupport
		dst *int32
	}{
		{CompactRangeWarningHigh, &s.WarningHigh},
		{CompactRangeWarningLow, &s.WarningLow},
		{CompactRangeCriticalHigh, &s.CriticalHigh},
		{CompactRangeCriticalLow, &s.CriticalLow},
		{CompactRangeFatalHigh, &s.FatalHigh},
		{CompactRangeFatalLow, &s.FatalLow},
	}
	for _, r := range ranges {
		if s.RangeSupport.Has(r.bit) {
			*r.dst = c.Int32()
		}
	}
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "threshold fields overrun record")
	}

	s.Name = c.String(int(nameLen))
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "sensor name overruns record")
	}

	return s, nil
}
