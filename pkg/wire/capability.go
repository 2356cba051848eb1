package wire

// Capability bitmap layout. The bitmap is a 2D boolean matrix indexed by
// (type, command), serialized byte-major by type then command, one bit per
// command, least-significant bit first within each byte.
const (
	// MaxTypes is the number of addressable message types.
	MaxTypes = 64

	// MaxCommandsPerType is the number of addressable commands per type.
	MaxCommandsPerType = 256

	// CommandMaskBytesPerType is the per-type stride in the bitmap.
	CommandMaskBytesPerType = MaxCommandsPerType / 8

	// CommandMaskSize is the exact serialized bitmap size in bytes.
	CommandMaskSize = MaxTypes * CommandMaskBytesPerType
)

// CommandBitIndex returns the byte and bit index of (typ, command) in a
// serialized capability bitmap. All bitmap addressing goes through here so
// the arithmetic is testable in one place.
func CommandBitIndex(typ, command uint8) (byteIndex int, bitIndex uint) {
	return int(typ)*CommandMaskBytesPerType + int(command)/8, uint(command % 8)
}
