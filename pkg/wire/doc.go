// Package wire defines the binary wire primitives shared by the PMCP
// terminus model: the little-endian cursor used by all record decoders,
// the common Platform Descriptor Record (PDR) header, record framing for
// PDR dump streams, and the capability-bitmap layout constants.
//
// All multi-byte integers on the wire are little-endian. The Cursor type
// is fail-closed: the first out-of-bounds read latches an error and every
// subsequent read returns the zero value, so decoders can read a full
// fixed layout and check Err once at the end.
package wire
