package pdr

import (
	"github.com/pmcp-protocol/pmcp-go/pkg/wire"
)

// languageTagSize is the fixed size of a name language code on the wire.
const languageTagSize = 2

// NamePair is one language-tagged display name.
type NamePair struct {
	// Language is the fixed-size language code, e.g. "en".
	Language string `yaml:"language"`

	// Name is the UTF-8 display name.
	Name string `yaml:"name"`
}

// SensorAuxiliaryNames is the decoded name table of one sensor record.
// Names holds one ordered name list per sub-sensor, in wire order.
//
// Decoded tables are shared between the index and its callers; treat them
// as read-only.
type SensorAuxiliaryNames struct {
	Header wire.RecordHeader `yaml:"-"`

	// SensorID is the sensor the names belong to.
	SensorID SensorID `yaml:"sensorId"`

	// SensorCount is the number of sub-sensors; len(Names) always equals
	// SensorCount for a successfully decoded record.
	SensorCount uint8 `yaml:"sensorCount"`

	// Names is the per-sub-sensor list of language-tagged names.
	Names [][]NamePair `yaml:"names"`
}

// RecordHeader returns the common record header. For name tables derived
// from a compact numeric sensor record, this is the compact record's
// header.
func (n *SensorAuxiliaryNames) RecordHeader() wire.RecordHeader {
	return n.Header
}

// NamesForSubSensor returns the name list of one sub-sensor, or nil if the
// index is out of range.
func (n *SensorAuxiliaryNames) NamesForSubSensor(i int) []NamePair {
	if i < 0 || i >= len(n.Names) {
		return nil
	}
	return n.Names[i]
}

// decodeSensorAuxiliaryNames decodes the nested name table layout:
// sensorID, sub-sensor count, then per sub-sensor a name count and per
// name a fixed-size language tag plus a length-prefixed UTF-8 string.
//
// The decode is whole-record-or-nothing: any count or length prefix that
// would overrun the payload rejects the entire record.
func decodeSensorAuxiliaryNames(hdr wire.RecordHeader, payload []byte) (*SensorAuxiliaryNames, error) {
	c := wire.NewCursor(payload)

	sensorID := SensorID(c.Uint16())
	sensorCount := c.Uint8()
	if !c.Ok() {
		return nil, faultAt(hdr.Type, c, "truncated name table header")
	}

	names := make([][]NamePair, 0, sensorCount)
	for i := 0; i < int(sensorCount); i++ {
		nameCount := c.Uint8()
		if !c.Ok() {
			return nil, faultAt(hdr.Type, c, "name count overruns record")
		}

		pairs := make([]NamePair, 0, nameCount)
		for j := 0; j < int(nameCount); j++ {
			language := c.String(languageTagSize)
			nameLen := c.Uint8()
			name := c.String(int(nameLen))
			if !c.Ok() {
				return nil, faultAt(hdr.Type, c, "name entry overruns record")
			}
			pairs = append(pairs, NamePair{Language: language, Name: name})
		}
		names = append(names, pairs)
	}

	return &SensorAuxiliaryNames{
		Header:      hdr,
		SensorID:    sensorID,
		SensorCount: sensorCount,
		Names:       names,
	}, nil
}
