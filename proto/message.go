// Package proto implements the message-shape contract every generated
// message satisfies, the container types repeated and map fields use,
// the unknown-field set, the enum sum type, and the extension registry.
// It is built entirely on package codec's Reader/Writer; it never imports
// the reference google.golang.org/protobuf implementation outside of
// tests.
package proto

import (
	"fmt"
	"math"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

// Message is the five-operation contract every generated message type
// satisfies. "new()" is the ordinary Go zero value plus
// Reset (most generated messages need no constructor beyond &T{}, since
// every field defaults to its Go zero value); the other four operations
// are these methods.
type Message interface {
	// Reset restores every field to its default: scalar zero/empty, enum
	// default variant, sub-message absent, repeated/map empty, unknown
	// set empty.
	Reset()

	// MergeFrom reads tags from r until r reports clean end-of-input
	// (EOF, or the end of whatever limit the caller pushed), dispatching
	// each tag by field number: a recognized number with the expected
	// wire type is parsed and assigned/appended; a recognized number
	// with a mismatched wire type is skipped into the unknown-field set,
	// matching the reference implementation's behavior, except for
	// repeated fields: an occurrence whose wire type fits neither the
	// packed nor the unpacked form is rejected with wire.ErrInvalidTag by
	// Repeated.MergeEntry. An unrecognized
	// number is routed to a registered extension if the
	// message is extendable, else to the unknown-field set. Repeated and
	// map fields accumulate across multiple MergeFrom calls; oneof
	// assignment replaces; singular scalars are last-write-wins.
	MergeFrom(r *codec.Reader) error

	// Size returns the number of bytes MarshalTo will write for the
	// message's current field values, not counting any length prefix a
	// caller wraps it in. It must equal len(Marshal(m)) exactly, provided
	// the message is not mutated between the two calls.
	Size() int

	// MarshalTo emits every present field, followed by the unknown-field
	// set, in field-number order, writing each field's tag bytes verbatim
	// from its precomputed codec rather than reconstructing them.
	MarshalTo(w *codec.Writer) error

	// Clone returns a deep copy.
	Clone() Message
}

// ClonerFrom is an optional interface a Message may additionally
// implement so that CloneInto, when copying repeatedly into the same
// destination, can reuse owned sub-message allocations instead of
// replacing them.
type ClonerFrom interface {
	CloneFrom(src Message)
}

// Marshal serializes m to a newly allocated byte slice, pre-sized from
// m.Size() to avoid reallocation. It fails with wire.ErrValueTooLarge if
// the message's size would exceed the signed-32-bit length-prefix
// ceiling.
func Marshal(m Message) ([]byte, error) {
	size := m.Size()
	if size < 0 || size > math.MaxInt32 {
		return nil, wire.ErrValueTooLarge
	}
	w := codec.NewWriter(make([]byte, 0, size))
	if err := m.MarshalTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Unmarshal resets m and then parses buf into it via MergeFrom.
// MergeFrom itself is additive; starting from Reset is what gives
// Unmarshal its usual "replace, don't accumulate" semantics for a fresh
// destination. Callers that want accumulation across multiple wire
// messages (the documented protobuf "merge" behavior) should call
// MergeFrom directly instead.
func Unmarshal(buf []byte, m Message) error {
	m.Reset()
	r := codec.NewReader(buf)
	if err := m.MergeFrom(r); err != nil {
		return err
	}
	if !r.Done() {
		return fmt.Errorf("%w: %d trailing bytes after message", wire.ErrTruncatedMessage, r.Len())
	}
	return nil
}

// MarshalAppend serializes m and appends the result to buf, returning
// the extended slice. It is the allocation-avoiding counterpart to
// Marshal for a caller that already has a buffer to grow (for example, a
// length-delimited sub-message writer).
func MarshalAppend(buf []byte, m Message) ([]byte, error) {
	size := m.Size()
	if size < 0 || size > math.MaxInt32 {
		return nil, wire.ErrValueTooLarge
	}
	w := codec.NewWriter(buf)
	w.Grow(size)
	if err := m.MarshalTo(w); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// CloneInto deep-copies src into dst, reusing dst's existing sub-message
// allocations when dst implements ClonerFrom. It is a
// convenience wrapper for the common "clone into a pooled destination"
// pattern; simple callers can just use src.Clone() directly.
func CloneInto(dst, src Message) {
	if cf, ok := dst.(ClonerFrom); ok {
		cf.CloneFrom(src)
		return
	}
	dst.Reset()
	// Fall back to a marshal/unmarshal round trip when the destination
	// does not support allocation-reusing clone.
	b, err := Marshal(src)
	if err != nil {
		// Size/MarshalTo only fail on overflow of an already-validated
		// message; a value big enough to hit that ceiling cannot have
		// been produced by this package's own constructors, so this is
		// unreachable in practice. Still, never silently drop data.
		panic(err)
	}
	if err := Unmarshal(b, dst); err != nil {
		panic(err)
	}
}
