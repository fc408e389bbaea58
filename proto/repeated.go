package proto

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// ScalarCodec describes how to read, write, and size one scalar Go type T
// on the wire, for use by Repeated[T] and Map[K,V]. A generated message
// is expected to hold one package-level ScalarCodec value per scalar
// wire type it uses (int32, int64, uint32, fixed64, bool, string, ...)
// and share it across every field of that type, rather than
// constructing one per field.
type ScalarCodec[T any] struct {
	// WireType is the type this scalar is written as when it appears
	// unpacked (every packable type also has a Varint/Fixed32/Fixed64
	// WireType; Bytes-form scalars such as string are never packable).
	WireType wire.Type

	// Size returns the encoded size of v, not including any tag.
	Size func(v T) int

	// Write appends v's encoding to w, not including any tag.
	Write func(w *codec.Writer, v T)

	// Read consumes one value of T from r. For packable types this is
	// called once per element inside a packed run; for Bytes-form types
	// it is called once per tag occurrence.
	Read func(r *codec.Reader) (T, error)
}

// Packable reports whether c's wire type may appear packed into a single
// length-delimited run (true for Varint, Fixed32, and Fixed64).
func (c ScalarCodec[T]) Packable() bool {
	return c.WireType.Packable()
}

// Repeated is an ordered-sequence container. It carries no codec of its
// own — the owning message supplies one to
// each call, so the same Repeated[T] shape works for every scalar,
// message, and enum-raw element type.
type Repeated[T any] []T

// Len reports the number of elements.
func (r Repeated[T]) Len() int {
	return len(r)
}

// Append appends v to the sequence. Order written to the wire equals
// order of iteration by construction: Repeated is a plain slice, and
// callers only ever append or iterate it in order.
func (r *Repeated[T]) Append(v T) {
	*r = append(*r, v)
}

// MergeEntry decodes one repeated-field occurrence: given the tag just
// read from r (fieldNumber/wt already consumed by the caller's dispatch),
// it decodes either a packed run or a single unpacked element according
// to c and the observed wire type, appending the result(s) to r's
// backing slice.
func (r *Repeated[T]) MergeEntry(wt wire.Type, c ScalarCodec[T], reader *codec.Reader) error {
	if wt == wire.Bytes && c.Packable() {
		payload, err := reader.ReadBytes()
		if err != nil {
			return err
		}
		sub := codec.NewReader(payload)
		for !sub.Done() {
			v, err := c.Read(sub)
			if err != nil {
				return err
			}
			*r = append(*r, v)
		}
		return nil
	}
	if wt != c.WireType {
		return wire.ErrInvalidTag
	}
	v, err := c.Read(reader)
	if err != nil {
		return err
	}
	*r = append(*r, v)
	return nil
}

// Size returns the encoded size of the whole repeated field — including
// tags — as it would be written by MarshalTo with the given packed
// preference. fieldNumber is the field's tag number.
func (r Repeated[T]) Size(fieldNumber int32, c ScalarCodec[T], packed bool) int {
	if len(r) == 0 {
		return 0
	}
	if packed && c.Packable() {
		payload := 0
		for _, v := range r {
			payload, _ = codec.CheckedAdd(payload, c.Size(v))
		}
		total := codec.SizeTag(fieldNumber, wire.Bytes)
		total, _ = codec.CheckedAdd(total, codec.SizeBytes(payload))
		return total
	}
	total := 0
	tagSize := codec.SizeTag(fieldNumber, c.WireType)
	for _, v := range r {
		total, _ = codec.CheckedAdd(total, tagSize)
		total, _ = codec.CheckedAdd(total, c.Size(v))
	}
	return total
}

// MarshalTo writes the repeated field to w, emitting one packed run when
// packed is true and c is packable (proto3's default for scalar repeated
// fields, and proto2 fields explicitly marked packed), or one tag per
// element otherwise.
func (r Repeated[T]) MarshalTo(fieldNumber int32, c ScalarCodec[T], packed bool, w *codec.Writer) {
	if len(r) == 0 {
		return
	}
	if packed && c.Packable() {
		payload := 0
		for _, v := range r {
			payload, _ = codec.CheckedAdd(payload, c.Size(v))
		}
		w.WriteTag(fieldNumber, wire.Bytes)
		w.WriteVarint(uint64(payload))
		for _, v := range r {
			c.Write(w, v)
		}
		return
	}
	for _, v := range r {
		w.WriteTag(fieldNumber, c.WireType)
		c.Write(w, v)
	}
}

// Clone returns a shallow copy of the sequence (element type T is
// expected to be either a value type or itself provide its own deep-copy
// semantics, e.g. via Message.Clone for repeated sub-messages).
func (r Repeated[T]) Clone() Repeated[T] {
	if r == nil {
		return nil
	}
	out := make(Repeated[T], len(r))
	copy(out, r)
	return out
}
