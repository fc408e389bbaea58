// Package wire implements the byte-level primitives of the Protocol Buffers
// binary encoding: tags, varints, zig-zag transforms, and little-endian
// fixed-width integers. It has no notion of messages, fields, or
// descriptors — those live in package codec (the coded reader/writer) and
// package proto (the message contract and containers) built atop it.
package wire

import "math"

// Type is the 3-bit wire type carried in the low bits of every tag.
type Type int8

const (
	Varint          Type = 0
	Fixed64         Type = 1
	Bytes           Type = 2 // length-delimited
	StartGroup      Type = 3
	EndGroup        Type = 4
	Fixed32         Type = 5
	invalidWireType6     = 6
	invalidWireType7     = 7
)

// MaxFieldNumber is the largest field number representable in a tag
// (2^29 - 1); field numbers are encoded in the upper 29 bits of the tag
// varint.
const MaxFieldNumber = 1<<29 - 1

// String renders the wire type the way protoc and the reference
// implementation name it in diagnostics.
func (t Type) String() string {
	switch t {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case Bytes:
		return "bytes"
	case StartGroup:
		return "start_group"
	case EndGroup:
		return "end_group"
	case Fixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

// EncodeTag packs a field number and wire type into the varint value that
// appears on the wire ahead of every field. It is the caller's
// responsibility to ensure fieldNumber and wt are both in range;
// EncodeTag does not validate (field descriptors are built once, at
// program start, from already-validated schema data, so this is not a
// recoverable-error boundary — see DecodeTag for the parse-time check).
func EncodeTag(fieldNumber int32, wt Type) uint64 {
	return uint64(fieldNumber)<<3 | uint64(wt&7)
}

// DecodeTag splits a tag varint (as read by a coded input) back into its
// field number and wire type, failing on the two invalid forms: field
// number zero, and a wire type of 6 or 7.
func DecodeTag(v uint64) (fieldNumber int32, wt Type, err error) {
	fn := v >> 3
	if fn == 0 || fn > math.MaxInt32 {
		return 0, 0, ErrInvalidTag
	}
	t := Type(v & 7)
	if t == invalidWireType6 || t == invalidWireType7 {
		return 0, 0, ErrInvalidTag
	}
	return int32(fn), t, nil
}

// Packable reports whether values of this wire type may be concatenated
// into a single length-delimited "packed" run: varints and the two
// fixed-width forms qualify; length-delimited and group forms do not (a
// packed run of them would be ambiguous to re-split).
func (t Type) Packable() bool {
	switch t {
	case Varint, Fixed32, Fixed64:
		return true
	default:
		return false
	}
}
