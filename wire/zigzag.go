package wire

// EncodeZigZag32 maps a signed 32-bit integer onto an unsigned one such
// that small-magnitude values (positive or negative) map to small
// varints: 0, -1, 1, -2, 2 become 0, 1, 2, 3, 4. This is the wire
// transform for sint32.
func EncodeZigZag32(v int32) uint64 {
	return uint64(uint32(v<<1) ^ uint32(v>>31))
}

// DecodeZigZag32 is the inverse of EncodeZigZag32.
func DecodeZigZag32(v uint64) int32 {
	u := uint32(v)
	return int32(u>>1) ^ -int32(u&1)
}

// EncodeZigZag64 is the 64-bit form of EncodeZigZag32, the wire transform
// for sint64.
func EncodeZigZag64(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63)
}

// DecodeZigZag64 is the inverse of EncodeZigZag64.
func DecodeZigZag64(v uint64) int64 {
	return int64(v>>1) ^ -int64(v&1)
}

// EncodeSignedInt32 sign-extends a signed 32-bit value to 64 bits before
// varint encoding. A negative int32 therefore always occupies all 10
// varint bytes, since plain (non-zigzag) int32 fields are encoded as if
// they were int64 — the wire-compatibility rule that lets an int64 field
// widen a previously-int32 one without breaking old readers.
func EncodeSignedInt32(v int32) uint64 {
	return uint64(int64(v))
}

// DecodeSignedInt32 truncates a varint-decoded 64-bit value back to
// int32, discarding the sign-extension bits EncodeSignedInt32 added.
func DecodeSignedInt32(v uint64) int32 {
	return int32(v)
}
