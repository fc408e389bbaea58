package proto

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// rawValue is one captured unknown-field value, tagged with the wire
// type it was read as so it can be re-emitted byte-for-byte.
type rawValue struct {
	wireType wire.Type
	varint   uint64 // valid when wireType == Varint
	fixed32  uint32 // valid when wireType == Fixed32
	fixed64  uint64 // valid when wireType == Fixed64
	bytes    []byte // valid when wireType == Bytes or StartGroup (verbatim group body incl. nested end tags, excl. outer end tag)
}

func (v rawValue) size(fieldNumber int32) int {
	tagSize := codec.SizeTag(fieldNumber, v.wireType)
	switch v.wireType {
	case wire.Varint:
		return tagSize + codec.SizeVarint(v.varint)
	case wire.Fixed32:
		return tagSize + 4
	case wire.Fixed64:
		return tagSize + 8
	case wire.Bytes:
		return tagSize + codec.SizeBytes(len(v.bytes))
	case wire.StartGroup:
		// tag + body + matching end-group tag
		return tagSize + len(v.bytes) + codec.SizeTag(fieldNumber, wire.EndGroup)
	default:
		return 0
	}
}

func (v rawValue) marshalTo(fieldNumber int32, w *codec.Writer) {
	w.WriteTag(fieldNumber, v.wireType)
	switch v.wireType {
	case wire.Varint:
		w.WriteVarint(v.varint)
	case wire.Fixed32:
		w.WriteFixed32(v.fixed32)
	case wire.Fixed64:
		w.WriteFixed64(v.fixed64)
	case wire.Bytes:
		w.WriteBytes(v.bytes)
	case wire.StartGroup:
		w.WriteRaw(v.bytes)
		w.WriteTag(fieldNumber, wire.EndGroup)
	}
}

// UnknownFields holds fields whose field number was not recognized
// during a parse, preserved so that re-serializing the owning message
// round-trips them byte-for-byte. Field numbers are kept
// in first-seen order; within one field number, values are appended in
// read order, matching the repeated-field append semantics that a
// statically-known repeated field would have had, had the schema known
// about it.
type UnknownFields struct {
	order  []int32
	values map[int32][]rawValue
}

// Len reports how many distinct field numbers are present.
func (u *UnknownFields) Len() int {
	return len(u.order)
}

// FieldNumbers returns the distinct unknown field numbers, in
// first-seen order.
func (u *UnknownFields) FieldNumbers() []int32 {
	out := make([]int32, len(u.order))
	copy(out, u.order)
	return out
}

// Merge reads one wire value of type wt from r and appends it under
// fieldNumber — identical bytes to what Reader.Skip would consume, just
// retained instead of discarded.
func (u *UnknownFields) Merge(fieldNumber int32, wt wire.Type, r *codec.Reader) error {
	var v rawValue
	v.wireType = wt
	switch wt {
	case wire.Varint:
		val, err := r.ReadVarint()
		if err != nil {
			return err
		}
		v.varint = val
	case wire.Fixed32:
		val, err := r.ReadFixed32()
		if err != nil {
			return err
		}
		v.fixed32 = val
	case wire.Fixed64:
		val, err := r.ReadFixed64()
		if err != nil {
			return err
		}
		v.fixed64 = val
	case wire.Bytes:
		val, err := r.ReadBytes()
		if err != nil {
			return err
		}
		v.bytes = append([]byte(nil), val...)
	case wire.StartGroup:
		body, err := readGroupBody(r, fieldNumber)
		if err != nil {
			return err
		}
		v.bytes = body
	default:
		return wire.ErrInvalidTag
	}
	if u.values == nil {
		u.values = map[int32][]rawValue{}
	}
	if _, ok := u.values[fieldNumber]; !ok {
		u.order = append(u.order, fieldNumber)
	}
	u.values[fieldNumber] = append(u.values[fieldNumber], v)
	return nil
}

// readGroupBody re-encodes a group's contents verbatim by walking its
// fields with Reader.Skip and recording exactly the bytes consumed.
func readGroupBody(r *codec.Reader, fieldNumber int32) ([]byte, error) {
	start := r.Bytes()
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, wire.ErrTruncatedMessage
		}
		if wt == wire.EndGroup {
			if fn != fieldNumber {
				return nil, wire.ErrInvalidTag
			}
			consumed := len(start) - len(r.Bytes())
			// exclude the end-group tag itself from the stored body
			endTagSize := codec.SizeTag(fieldNumber, wire.EndGroup)
			body := start[:consumed-endTagSize]
			return append([]byte(nil), body...), nil
		}
		if err := r.Skip(fn, wt); err != nil {
			return nil, err
		}
	}
}

// Size returns the total encoded size of every retained unknown field,
// tag bytes included.
func (u *UnknownFields) Size() int {
	total := 0
	for _, fn := range u.order {
		for _, v := range u.values[fn] {
			total, _ = codec.CheckedAdd(total, v.size(fn))
		}
	}
	return total
}

// MarshalTo re-emits every retained unknown field, each preceded by its
// original tag, in first-seen field-number order.
func (u *UnknownFields) MarshalTo(w *codec.Writer) error {
	for _, fn := range u.order {
		for _, v := range u.values[fn] {
			v.marshalTo(fn, w)
		}
	}
	return nil
}

// Clone returns a deep copy of u.
func (u *UnknownFields) Clone() UnknownFields {
	if u == nil || len(u.order) == 0 {
		return UnknownFields{}
	}
	out := UnknownFields{
		order:  append([]int32(nil), u.order...),
		values: make(map[int32][]rawValue, len(u.values)),
	}
	for fn, vs := range u.values {
		cp := make([]rawValue, len(vs))
		for i, v := range vs {
			cp[i] = v
			if v.bytes != nil {
				cp[i].bytes = append([]byte(nil), v.bytes...)
			}
		}
		out.values[fn] = cp
	}
	return out
}
