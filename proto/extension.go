package proto

import (
	"sync"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// MessageTypeID names an extendable message type, for use as a key into
// an ExtensionRegistry. Generated message code is expected to define one
// package-level constant per extendable type it declares (conventionally
// the message's fully-qualified proto name).
type MessageTypeID string

// ExtensionDesc is the static codec for one extension field, analogous
// to FieldCodec but keyed by a (message type, field number) pair in a
// registry rather than being embedded in generated field code. Extension
// values are stored in ExtensionFields as untyped raw values (the same
// shape UnknownFields uses) so the registry does not need a type parameter
// per extension; callers that know the concrete Go type at a call site use
// ExtensionValue/SetExtensionValue to get/set the typed value.
type ExtensionDesc struct {
	Name        string
	FieldNumber int32
	WireType    wire.Type
}

// ExtensionRegistry maps (message type, field number) to an
// ExtensionDesc, consulted while parsing an extendable message's unknown
// tags. A registry composes: it is constructible from a set of parent
// registries plus a local table, and lookup walks the local map first,
// then each parent in order, so an application can layer its own
// extensions over a shared base registry without mutating it.
type ExtensionRegistry struct {
	parents []*ExtensionRegistry

	mu   sync.RWMutex
	exts map[MessageTypeID]map[int32]ExtensionDesc
}

// NewExtensionRegistry returns an empty registry composed atop the given
// parents, consulted in order after the local table misses.
func NewExtensionRegistry(parents ...*ExtensionRegistry) *ExtensionRegistry {
	return &ExtensionRegistry{parents: parents}
}

// defaultRegistryOnce and defaultRegistry back the process-wide,
// effectively-immutable default registry every extendable message
// consults unless given a more specific one explicitly, built once on
// first use via a one-shot initializer.
var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *ExtensionRegistry
)

// DefaultRegistry returns the process-wide default extension registry,
// building it on first use.
func DefaultRegistry() *ExtensionRegistry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewExtensionRegistry()
	})
	return defaultRegistry
}

// Register adds ext to r's local table, keyed under messageType. A
// second call for the same (messageType, field number) pair replaces the
// earlier entry.
func (r *ExtensionRegistry) Register(messageType MessageTypeID, ext ExtensionDesc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.exts == nil {
		r.exts = map[MessageTypeID]map[int32]ExtensionDesc{}
	}
	m := r.exts[messageType]
	if m == nil {
		m = map[int32]ExtensionDesc{}
		r.exts[messageType] = m
	}
	m[ext.FieldNumber] = ext
}

// Find looks up the extension registered for (messageType, fieldNumber),
// checking r's own table first and then each parent registry in order.
// A nil receiver is a valid, always-empty registry, so code can call
// Find on an unset *ExtensionRegistry field without a nil check.
func (r *ExtensionRegistry) Find(messageType MessageTypeID, fieldNumber int32) (ExtensionDesc, bool) {
	if r == nil {
		return ExtensionDesc{}, false
	}
	r.mu.RLock()
	ext, ok := r.exts[messageType][fieldNumber]
	r.mu.RUnlock()
	if ok {
		return ext, true
	}
	for _, parent := range r.parents {
		if ext, ok := parent.Find(messageType, fieldNumber); ok {
			return ext, true
		}
	}
	return ExtensionDesc{}, false
}

// ExtensionFields holds the extension values actually set on one
// extendable message instance — the per-message counterpart to the
// process-wide ExtensionRegistry's per-type codec table. It stores raw
// wire values using the same representation UnknownFields does, since an
// extension whose Go accessor type the caller doesn't know yet (e.g. a
// value read via a registry the message's own package never imported)
// still needs to round-trip byte-for-byte.
type ExtensionFields struct {
	unknown UnknownFields
}

// Merge records one extension's wire value, read the same way
// UnknownFields.Merge reads an unrecognized field — the registry having
// already confirmed fieldNumber belongs to a known extension, but the
// value itself is stored exactly as UnknownFields would store it, ready
// to be reinterpreted by a typed accessor or re-emitted verbatim.
func (e *ExtensionFields) Merge(fieldNumber int32, wt wire.Type, r *codec.Reader) error {
	return e.unknown.Merge(fieldNumber, wt, r)
}

// Has reports whether an extension value is present for fieldNumber.
func (e *ExtensionFields) Has(fieldNumber int32) bool {
	for _, fn := range e.unknown.order {
		if fn == fieldNumber {
			return true
		}
	}
	return false
}

// Size returns the encoded size of every stored extension value.
func (e *ExtensionFields) Size() int {
	return e.unknown.Size()
}

// MarshalTo re-emits every stored extension value.
func (e *ExtensionFields) MarshalTo(w *codec.Writer) error {
	return e.unknown.MarshalTo(w)
}

// Clone returns a deep copy of e.
func (e *ExtensionFields) Clone() ExtensionFields {
	return ExtensionFields{unknown: e.unknown.Clone()}
}

// ExtensionValue decodes the value stored for fieldNumber using c,
// returning false if no value is present. A singular extension is
// last-write-wins, so only the most recently merged occurrence is
// decoded. Decoding replays the stored raw wire components back through
// a fresh codec.Reader rather than keeping a second, typed copy per
// extension — extensions are rare enough on a hot path that this is a
// fine trade against a second storage representation.
func ExtensionValue[T any](e *ExtensionFields, fieldNumber int32, c ScalarCodec[T]) (T, bool) {
	var zero T
	if e == nil {
		return zero, false
	}
	vs := e.unknown.values[fieldNumber]
	if len(vs) == 0 {
		return zero, false
	}
	v := vs[len(vs)-1]
	var buf []byte
	switch v.wireType {
	case wire.Varint:
		buf = wire.AppendVarint(nil, v.varint)
	case wire.Fixed32:
		buf = wire.AppendFixed32(nil, v.fixed32)
	case wire.Fixed64:
		buf = wire.AppendFixed64(nil, v.fixed64)
	case wire.Bytes:
		buf = wire.AppendVarint(nil, uint64(len(v.bytes)))
		buf = append(buf, v.bytes...)
	default:
		return zero, false
	}
	val, err := c.Read(codec.NewReader(buf))
	if err != nil {
		return zero, false
	}
	return val, true
}

// SetExtensionValue stores v under fieldNumber, replacing any prior
// value — extensions, like any other singular field, are last-write-wins.
func SetExtensionValue[T any](e *ExtensionFields, fieldNumber int32, c ScalarCodec[T], v T) {
	w := codec.NewWriter(nil)
	c.Write(w, v)
	buf := w.Bytes()

	var rv rawValue
	rv.wireType = c.WireType
	switch c.WireType {
	case wire.Varint:
		val, _, _ := wire.ConsumeVarint(buf)
		rv.varint = val
	case wire.Fixed32:
		rv.fixed32 = wire.ConsumeFixed32(buf)
	case wire.Fixed64:
		rv.fixed64 = wire.ConsumeFixed64(buf)
	case wire.Bytes:
		_, n, _ := wire.ConsumeVarint(buf)
		rv.bytes = append([]byte(nil), buf[n:]...)
	}

	if e.unknown.values == nil {
		e.unknown.values = map[int32][]rawValue{}
	}
	if _, ok := e.unknown.values[fieldNumber]; !ok {
		e.unknown.order = append(e.unknown.order, fieldNumber)
	}
	e.unknown.values[fieldNumber] = []rawValue{rv}
}
