package proto

import (
	"math"
	"unicode/utf8"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// FieldCodec is a static, compile-time per-field descriptor: precomputed
// tag bytes plus the wire type. Generated
// message code is expected to hold one FieldCodec per field as a
// package-level value and reuse it across every instance of the
// message, rather than reconstructing tag bytes on each write.
type FieldCodec struct {
	FieldNumber int32
	WireType    wire.Type
	Tag         []byte // precomputed wire.EncodeTag(FieldNumber, WireType), varint-encoded
}

// NewFieldCodec precomputes a FieldCodec's tag bytes.
func NewFieldCodec(fieldNumber int32, wt wire.Type) FieldCodec {
	return FieldCodec{
		FieldNumber: fieldNumber,
		WireType:    wt,
		Tag:         wire.AppendVarint(nil, wire.EncodeTag(fieldNumber, wt)),
	}
}

// WriteTag emits the field's precomputed tag bytes verbatim — the fast
// path generated code is expected to take, with no runtime tag
// construction.
func (f FieldCodec) WriteTag(w *codec.Writer) {
	w.WriteRawTag(f.Tag)
}

// TagSize returns the size of the field's tag bytes.
func (f FieldCodec) TagSize() int {
	return len(f.Tag)
}

// The scalar codecs below are the primitive ScalarCodec[T] values every
// generated message built on this package shares; they cover every
// scalar wire form protobuf defines.

var Int32Codec = ScalarCodec[int32]{
	WireType: wire.Varint,
	Size:     func(v int32) int { return codec.SizeVarint(wire.EncodeSignedInt32(v)) },
	Write:    func(w *codec.Writer, v int32) { w.WriteVarint(wire.EncodeSignedInt32(v)) },
	Read: func(r *codec.Reader) (int32, error) {
		v, err := r.ReadVarint()
		if err != nil {
			return 0, err
		}
		return wire.DecodeSignedInt32(v), nil
	},
}

var Int64Codec = ScalarCodec[int64]{
	WireType: wire.Varint,
	Size:     func(v int64) int { return codec.SizeVarint(uint64(v)) },
	Write:    func(w *codec.Writer, v int64) { w.WriteVarint(uint64(v)) },
	Read: func(r *codec.Reader) (int64, error) {
		v, err := r.ReadVarint()
		return int64(v), err
	},
}

var UInt32Codec = ScalarCodec[uint32]{
	WireType: wire.Varint,
	Size:     func(v uint32) int { return codec.SizeVarint(uint64(v)) },
	Write:    func(w *codec.Writer, v uint32) { w.WriteVarint(uint64(v)) },
	Read: func(r *codec.Reader) (uint32, error) {
		v, err := r.ReadVarint()
		return uint32(v), err
	},
}

var UInt64Codec = ScalarCodec[uint64]{
	WireType: wire.Varint,
	Size:     func(v uint64) int { return codec.SizeVarint(v) },
	Write:    func(w *codec.Writer, v uint64) { w.WriteVarint(v) },
	Read: func(r *codec.Reader) (uint64, error) {
		return r.ReadVarint()
	},
}

var SInt32Codec = ScalarCodec[int32]{
	WireType: wire.Varint,
	Size:     func(v int32) int { return codec.SizeVarint(wire.EncodeZigZag32(v)) },
	Write:    func(w *codec.Writer, v int32) { w.WriteVarint(wire.EncodeZigZag32(v)) },
	Read: func(r *codec.Reader) (int32, error) {
		v, err := r.ReadVarint()
		if err != nil {
			return 0, err
		}
		return wire.DecodeZigZag32(v), nil
	},
}

var SInt64Codec = ScalarCodec[int64]{
	WireType: wire.Varint,
	Size:     func(v int64) int { return codec.SizeVarint(wire.EncodeZigZag64(v)) },
	Write:    func(w *codec.Writer, v int64) { w.WriteVarint(wire.EncodeZigZag64(v)) },
	Read: func(r *codec.Reader) (int64, error) {
		v, err := r.ReadVarint()
		if err != nil {
			return 0, err
		}
		return wire.DecodeZigZag64(v), nil
	},
}

var BoolCodec = ScalarCodec[bool]{
	WireType: wire.Varint,
	Size:     func(v bool) int { return 1 },
	Write: func(w *codec.Writer, v bool) {
		if v {
			w.WriteVarint(1)
		} else {
			w.WriteVarint(0)
		}
	},
	Read: func(r *codec.Reader) (bool, error) {
		v, err := r.ReadVarint()
		return v != 0, err
	},
}

var Fixed32Codec = ScalarCodec[uint32]{
	WireType: wire.Fixed32,
	Size:     func(v uint32) int { return 4 },
	Write:    func(w *codec.Writer, v uint32) { w.WriteFixed32(v) },
	Read:     func(r *codec.Reader) (uint32, error) { return r.ReadFixed32() },
}

var SFixed32Codec = ScalarCodec[int32]{
	WireType: wire.Fixed32,
	Size:     func(v int32) int { return 4 },
	Write:    func(w *codec.Writer, v int32) { w.WriteFixed32(uint32(v)) },
	Read: func(r *codec.Reader) (int32, error) {
		v, err := r.ReadFixed32()
		return int32(v), err
	},
}

var Fixed64Codec = ScalarCodec[uint64]{
	WireType: wire.Fixed64,
	Size:     func(v uint64) int { return 8 },
	Write:    func(w *codec.Writer, v uint64) { w.WriteFixed64(v) },
	Read:     func(r *codec.Reader) (uint64, error) { return r.ReadFixed64() },
}

var SFixed64Codec = ScalarCodec[int64]{
	WireType: wire.Fixed64,
	Size:     func(v int64) int { return 8 },
	Write:    func(w *codec.Writer, v int64) { w.WriteFixed64(uint64(v)) },
	Read: func(r *codec.Reader) (int64, error) {
		v, err := r.ReadFixed64()
		return int64(v), err
	},
}

var FloatCodec = ScalarCodec[float32]{
	WireType: wire.Fixed32,
	Size:     func(v float32) int { return 4 },
	Write:    func(w *codec.Writer, v float32) { w.WriteFixed32(math.Float32bits(v)) },
	Read: func(r *codec.Reader) (float32, error) {
		v, err := r.ReadFixed32()
		return math.Float32frombits(v), err
	},
}

var DoubleCodec = ScalarCodec[float64]{
	WireType: wire.Fixed64,
	Size:     func(v float64) int { return 8 },
	Write:    func(w *codec.Writer, v float64) { w.WriteFixed64(math.Float64bits(v)) },
	Read: func(r *codec.Reader) (float64, error) {
		v, err := r.ReadFixed64()
		return math.Float64frombits(v), err
	},
}

var StringCodec = ScalarCodec[string]{
	WireType: wire.Bytes,
	Size:     func(v string) int { return codec.SizeBytes(len(v)) },
	Write:    func(w *codec.Writer, v string) { w.WriteBytes([]byte(v)) },
	Read: func(r *codec.Reader) (string, error) {
		b, err := r.ReadBytes()
		if err != nil {
			return "", err
		}
		if !utf8.Valid(b) {
			return "", wire.ErrInvalidUTF8
		}
		return string(b), nil
	},
}

// MessageCodec builds a ScalarCodec for a message-typed element — used
// to plug a repeated or map-valued sub-message into Repeated[T]/Map[K,V]
// the same way a scalar plugs in. newT constructs a fresh empty instance
// to merge into. Every length-delimited element is read via
// Reader.ReadBytes rather than a push/pop limit pair on the parent
// reader, mirroring how Map.MergeEntry already isolates one entry's
// bytes — simpler than threading the limit stack through a generic
// codec, at the cost of one extra Reader allocation per nested message
// (the payload slice itself aliases the parent's buffer and is not
// copied).
func MessageCodec[T Message](newT func() T) ScalarCodec[T] {
	return ScalarCodec[T]{
		WireType: wire.Bytes,
		Size:     func(v T) int { return codec.SizeBytes(v.Size()) },
		Write: func(w *codec.Writer, v T) {
			w.WriteVarint(uint64(v.Size()))
			if err := v.MarshalTo(w); err != nil {
				// Size() was just computed from the same field values;
				// MarshalTo failing here means the message was mutated
				// concurrently with its own serialization, which a single
				// message value is never supposed to see.
				panic(err)
			}
		},
		Read: func(r *codec.Reader) (T, error) {
			b, err := r.ReadBytes()
			if err != nil {
				var zero T
				return zero, err
			}
			m := newT()
			if err := m.MergeFrom(codec.NewReader(b)); err != nil {
				var zero T
				return zero, err
			}
			return m, nil
		},
	}
}

var BytesCodec = ScalarCodec[[]byte]{
	WireType: wire.Bytes,
	Size:     func(v []byte) int { return codec.SizeBytes(len(v)) },
	Write:    func(w *codec.Writer, v []byte) { w.WriteBytes(v) },
	Read: func(r *codec.Reader) ([]byte, error) {
		b, err := r.ReadBytes()
		if err != nil {
			return nil, err
		}
		return append([]byte(nil), b...), nil
	},
}
