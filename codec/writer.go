package codec

import "github.com/jhump/protocodec/wire"

// Writer accumulates the protobuf wire format into a growable byte
// buffer. Unlike Reader, it never needs a limit stack: length prefixes
// are written by first asking the message contract for its precomputed
// Size(), then writing that many bytes worth of length-delimited payload
// — the writer itself does not need to look ahead.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer that appends to buf (which may be nil).
func NewWriter(buf []byte) *Writer {
	return &Writer{buf: buf}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Reset discards any accumulated output, retaining the backing array.
func (w *Writer) Reset() {
	w.buf = w.buf[:0]
}

// WriteTag writes a tag for the given field number and wire type.
// Generated message code is expected to emit tag bytes verbatim from a
// precomputed field codec rather than reconstructing them on every write;
// WriteRawTag supports that. WriteTag remains here for callers
// (containers, the unknown-field set, tests) that do not have a
// precomputed tag at hand.
func (w *Writer) WriteTag(fieldNumber int32, wt wire.Type) {
	w.buf = wire.AppendVarint(w.buf, wire.EncodeTag(fieldNumber, wt))
}

// WriteRaw appends b to the output with no interpretation — used to
// re-emit an already-encoded payload (a captured unknown group body, a
// pre-marshaled sub-message) verbatim.
func (w *Writer) WriteRaw(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteRawTag appends precomputed tag bytes verbatim, with no
// recomputation — the fast path generated code is expected to take.
func (w *Writer) WriteRawTag(tag []byte) {
	w.buf = append(w.buf, tag...)
}

// WriteVarint writes a varint.
func (w *Writer) WriteVarint(v uint64) {
	w.buf = wire.AppendVarint(w.buf, v)
}

// WriteFixed32 writes a 4-byte little-endian value.
func (w *Writer) WriteFixed32(v uint32) {
	w.buf = wire.AppendFixed32(w.buf, v)
}

// WriteFixed64 writes an 8-byte little-endian value.
func (w *Writer) WriteFixed64(v uint64) {
	w.buf = wire.AppendFixed64(w.buf, v)
}

// WriteBytes writes a varint length prefix followed by b. It does not
// validate the length against the 2^31-1 ceiling itself — callers that
// need that invariant enforced should size the message with CheckedAdd
// first; WriteBytes is the unconditional low-level primitive.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = wire.AppendVarint(w.buf, uint64(len(b)))
	w.buf = append(w.buf, b...)
}

// Grow preallocates capacity for at least n more bytes, avoiding
// repeated reallocation when the caller already knows the final size
// (from a prior call to the message's Size method).
func (w *Writer) Grow(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	buf := make([]byte, len(w.buf), len(w.buf)+n)
	copy(buf, w.buf)
	w.buf = buf
}
