package proto

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// mapKeyFieldNumber and mapValueFieldNumber are fixed by the protobuf
// wire format itself: every map field is encoded on the wire as a
// repeated entry message with key at field 1 and value at field 2,
// regardless of the map's own field number.
const (
	mapKeyFieldNumber   = 1
	mapValueFieldNumber = 2
)

// Map is an unordered K→V container. Iteration order is unspecified
// (Go's own map iteration already satisfies that); this package does not
// sort entries before writing them, since wire order beyond the
// replace-on-duplicate-read rule is not observable.
type Map[K comparable, V any] map[K]V

// Len reports the number of entries.
func (m Map[K, V]) Len() int {
	return len(m)
}

// Set stores v under k, replacing any existing entry.
func (m *Map[K, V]) Set(k K, v V) {
	if *m == nil {
		*m = make(Map[K, V])
	}
	(*m)[k] = v
}

// Get returns the value stored under k, and whether it was present.
func (m Map[K, V]) Get(k K) (V, bool) {
	v, ok := m[k]
	return v, ok
}

// Delete removes k, if present.
func (m Map[K, V]) Delete(k K) {
	delete(m, k)
}

// MergeEntry decodes one length-delimited map-entry sub-message from r
// (the entry's own tag/wire-type having already been consumed by the
// caller's dispatch) and stores it, replacing any prior value under the
// same key: on duplicate keys, the last one read wins. A key or value
// field absent from the entry bytes (legal on the wire, since proto3
// still omits defaults for ordinary fields) decodes to its Go zero
// value.
func (m *Map[K, V]) MergeEntry(keyCodec ScalarCodec[K], valueCodec ScalarCodec[V], r *codec.Reader) error {
	payload, err := r.ReadBytes()
	if err != nil {
		return err
	}
	sub := codec.NewReader(payload)
	var key K
	var value V
	for !sub.Done() {
		fn, wt, ok, err := sub.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		switch fn {
		case mapKeyFieldNumber:
			if wt != keyCodec.WireType {
				return wire.ErrInvalidTag
			}
			key, err = keyCodec.Read(sub)
			if err != nil {
				return err
			}
		case mapValueFieldNumber:
			if wt != valueCodec.WireType {
				return wire.ErrInvalidTag
			}
			value, err = valueCodec.Read(sub)
			if err != nil {
				return err
			}
		default:
			if err := sub.Skip(fn, wt); err != nil {
				return err
			}
		}
	}
	m.Set(key, value)
	return nil
}

// entrySize returns the size of one key/value pair's entry sub-message,
// not including the outer field tag. Both key and value are always
// emitted, even at their zero value — map entries don't get the usual
// proto3 "zero means absent" treatment.
func entrySize[K comparable, V any](k K, v V, keyCodec ScalarCodec[K], valueCodec ScalarCodec[V]) int {
	size := codec.SizeTag(mapKeyFieldNumber, keyCodec.WireType) + keyCodec.Size(k)
	size += codec.SizeTag(mapValueFieldNumber, valueCodec.WireType) + valueCodec.Size(v)
	return size
}

// Size returns the encoded size of the whole map field, tags included.
func (m Map[K, V]) Size(fieldNumber int32, keyCodec ScalarCodec[K], valueCodec ScalarCodec[V]) int {
	if len(m) == 0 {
		return 0
	}
	tagSize := codec.SizeTag(fieldNumber, wire.Bytes)
	total := 0
	for k, v := range m {
		entry := entrySize(k, v, keyCodec, valueCodec)
		total, _ = codec.CheckedAdd(total, tagSize)
		total, _ = codec.CheckedAdd(total, codec.SizeBytes(entry))
	}
	return total
}

// MarshalTo writes the map field to w, one length-delimited entry
// sub-message per key, each unconditionally carrying both its key and
// value fields.
func (m Map[K, V]) MarshalTo(fieldNumber int32, keyCodec ScalarCodec[K], valueCodec ScalarCodec[V], w *codec.Writer) {
	for k, v := range m {
		w.WriteTag(fieldNumber, wire.Bytes)
		w.WriteVarint(uint64(entrySize(k, v, keyCodec, valueCodec)))
		w.WriteTag(mapKeyFieldNumber, keyCodec.WireType)
		keyCodec.Write(w, k)
		w.WriteTag(mapValueFieldNumber, valueCodec.WireType)
		valueCodec.Write(w, v)
	}
}

// Clone returns a shallow copy of the map.
func (m Map[K, V]) Clone() Map[K, V] {
	if m == nil {
		return nil
	}
	out := make(Map[K, V], len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
