// Package codec is the coded-input/coded-output layer: a byte-oriented
// reader with a nested read-limit stack, and a byte-oriented writer,
// built on top of package wire's tag/varint/fixed primitives. The reader
// tracks a push/pop limit stack so a length-delimited sub-message cannot
// read past its own framing, which is what lets nested messages
// self-terminate during a merge.
package codec

import (
	"fmt"
	"math"

	"github.com/jhump/protocodec/wire"
)

// Reader decodes the protobuf wire format from an in-memory byte slice.
// It owns a single active read limit: a byte budget, relative to the
// reader's position, that bounds how far a nested read is allowed to go.
// PushLimit/PopLimit make length-delimited sub-messages self-terminating
// without the reader needing to know the sub-message's shape in advance.
type Reader struct {
	buf []byte
	pos int

	// limit is the absolute index in buf beyond which the current budget
	// forbids reading; -1 means "no limit beyond the end of buf".
	limit int
}

// NewReader wraps buf for reading. The returned Reader does not copy buf.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf, limit: -1}
}

// end returns the absolute index this reader may not read past right now.
func (r *Reader) end() int {
	if r.limit < 0 {
		return len(r.buf)
	}
	return r.limit
}

// Len returns the number of bytes remaining to be read within the
// current limit (or to the end of the buffer, if no limit is active).
func (r *Reader) Len() int {
	return r.end() - r.pos
}

// Done reports whether the reader has consumed every byte available to
// it within the current limit.
func (r *Reader) Done() bool {
	return r.pos >= r.end()
}

// PushLimit establishes a new budget of n bytes starting at the reader's
// current position, and returns a token that PopLimit uses to restore the
// previous budget. It fails if n is negative or would extend past the
// enclosing budget (a sub-message may never claim to be longer than the
// bytes its parent has left).
func (r *Reader) PushLimit(n int) (prev int, err error) {
	if n < 0 {
		return 0, wire.ErrNegativeSize
	}
	newLimit := r.pos + n
	if newLimit < r.pos || newLimit > r.end() {
		return 0, wire.ErrNegativeSize
	}
	prev = r.limit
	r.limit = newLimit
	return prev, nil
}

// PopLimit restores the budget returned by a prior PushLimit. This is
// only valid once the pushed budget has been fully consumed; PopLimit
// enforces that itself rather than trusting the caller to have looped
// correctly.
func (r *Reader) PopLimit(prev int) error {
	if !r.Done() {
		return wire.ErrTruncatedMessage
	}
	r.limit = prev
	return nil
}

// ReadTag reads one tag. ok is false exactly when the reader is at a
// clean end of input (EOF exactly at a field boundary, or the current
// limit exactly exhausted) — the signal every merge loop uses to know
// when to stop. Once the first byte of a tag has been read, any further
// EOF is a genuine truncation and is returned as an error, not as
// ok == false: the first byte of a tag is the only place a clean end of
// input is expected, every byte after that is a strict continuation.
func (r *Reader) ReadTag() (fieldNumber int32, wt wire.Type, ok bool, err error) {
	if r.Done() {
		return 0, 0, false, nil
	}
	v, err := r.ReadVarint()
	if err != nil {
		return 0, 0, false, err
	}
	fieldNumber, wt, err = wire.DecodeTag(v)
	if err != nil {
		return 0, 0, false, err
	}
	return fieldNumber, wt, true, nil
}

// ReadVarint reads a single varint, bounded by the current limit.
func (r *Reader) ReadVarint() (uint64, error) {
	v, n, err := wire.ConsumeVarint(r.buf[r.pos:r.end()])
	if err != nil {
		return 0, err
	}
	r.pos += n
	return v, nil
}

// ReadFixed32 reads a 4-byte little-endian value.
func (r *Reader) ReadFixed32() (uint32, error) {
	if r.pos+4 > r.end() {
		return 0, wire.ErrTruncatedMessage
	}
	v := wire.ConsumeFixed32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

// ReadFixed64 reads an 8-byte little-endian value.
func (r *Reader) ReadFixed64() (uint64, error) {
	if r.pos+8 > r.end() {
		return 0, wire.ErrTruncatedMessage
	}
	v := wire.ConsumeFixed64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

// ReadBytes reads a length-delimited payload: a varint length followed by
// that many raw bytes. The length is bounded by the signed-32-bit max and
// by the reader's current budget. The returned slice aliases the
// reader's backing array; callers that need to retain it beyond the
// current parse should copy it.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadVarint()
	if err != nil {
		return nil, err
	}
	if n > math.MaxInt32 {
		return nil, wire.ErrNegativeSize
	}
	length := int(n)
	end := r.pos + length
	if end < r.pos || end > r.end() {
		return nil, wire.ErrNegativeSize
	}
	b := r.buf[r.pos:end]
	r.pos = end
	return b, nil
}

// Skip consumes, without interpreting, one wire value of the given wire
// type — the mechanism both unknown-field capture and group skipping use.
// For StartGroup it recurses until the matching EndGroup (of the same
// field number) is found.
func (r *Reader) Skip(fieldNumber int32, wt wire.Type) error {
	switch wt {
	case wire.Varint:
		_, err := r.ReadVarint()
		return err
	case wire.Fixed32:
		_, err := r.ReadFixed32()
		return err
	case wire.Fixed64:
		_, err := r.ReadFixed64()
		return err
	case wire.Bytes:
		_, err := r.ReadBytes()
		return err
	case wire.StartGroup:
		return r.skipGroup(fieldNumber)
	case wire.EndGroup:
		return fmt.Errorf("%w: unexpected end-group tag", wire.ErrInvalidTag)
	default:
		return wire.ErrInvalidTag
	}
}

func (r *Reader) skipGroup(fieldNumber int32) error {
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return wire.ErrTruncatedMessage
		}
		if wt == wire.EndGroup {
			if fn != fieldNumber {
				return fmt.Errorf("%w: mismatched end-group for field %d (started field %d)", wire.ErrInvalidTag, fn, fieldNumber)
			}
			return nil
		}
		if err := r.Skip(fn, wt); err != nil {
			return err
		}
	}
}

// Bytes returns the bytes remaining to be read within the current limit,
// without consuming them.
func (r *Reader) Bytes() []byte {
	return r.buf[r.pos:r.end()]
}
