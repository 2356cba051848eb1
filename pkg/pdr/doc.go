// Package pdr decodes Platform Descriptor Records into typed sensor
// metadata.
//
// A PDR arrives as an opaque byte record whose common header declares a
// record type and payload length. Parse is total: it never panics and
// returns either one of the typed variants (NumericSensor,
// CompactNumericSensor, SensorAuxiliaryNames, Unknown) or a structured
// DecodeError describing where and why decoding failed. Unrecognized
// record types are not an error; they decode to Unknown so callers can
// skip them.
//
// Decoding is whole-record-or-nothing: a record whose nested counts or
// length fields overrun the payload is rejected entirely. A decoded
// variant is therefore always structurally consistent.
package pdr
