package codec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/wire"
)

func TestReadWriteTagVarint(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(1, wire.Varint)
	w.WriteVarint(150)

	r := codec.NewReader(w.Bytes())
	fn, wt, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(1), fn)
	require.Equal(t, wire.Varint, wt)
	v, err := r.ReadVarint()
	require.NoError(t, err)
	require.Equal(t, uint64(150), v)
	require.True(t, r.Done())

	// A second ReadTag on an exhausted reader reports clean EOF, not an error.
	_, _, ok, err = r.ReadTag()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReadTagMidStreamEOFIsError(t *testing.T) {
	// A single byte with the continuation bit set: looks like the start
	// of a tag varint, but there is nothing after it.
	r := codec.NewReader([]byte{0x80})
	_, _, _, err := r.ReadTag()
	require.ErrorIs(t, err, wire.ErrMalformedVarint)
}

func TestPushPopLimit(t *testing.T) {
	// Build a length-delimited sub-message (field 1: varint 7, field 2:
	// fixed32 9) followed by trailing data outside of it, and parse it
	// the way a real merge loop would: push a limit sized from the
	// length prefix, loop ReadTag until clean EOF, then pop.
	inner := codec.NewWriter(nil)
	inner.WriteTag(1, wire.Varint)
	inner.WriteVarint(7)
	inner.WriteTag(2, wire.Fixed32)
	inner.WriteFixed32(9)

	w := codec.NewWriter(nil)
	w.WriteBytes(inner.Bytes())
	w.WriteVarint(42) // trailing data outside the sub-message

	r := codec.NewReader(w.Bytes())
	n, err := r.ReadVarint() // length prefix
	require.NoError(t, err)
	require.Equal(t, uint64(len(inner.Bytes())), n)

	prev, err := r.PushLimit(int(n))
	require.NoError(t, err)

	var gotVarint uint64
	var gotFixed32 uint32
	for {
		fn, wt, ok, err := r.ReadTag()
		require.NoError(t, err)
		if !ok {
			break
		}
		switch fn {
		case 1:
			gotVarint, err = r.ReadVarint()
			require.NoError(t, err)
		case 2:
			gotFixed32, err = r.ReadFixed32()
			require.NoError(t, err)
		default:
			require.NoError(t, r.Skip(fn, wt))
		}
	}
	require.Equal(t, uint64(7), gotVarint)
	require.Equal(t, uint32(9), gotFixed32)

	require.NoError(t, r.PopLimit(prev))

	v, err := r.ReadVarint()
	require.NoError(t, err)
	require.Equal(t, uint64(42), v)
}

func TestPopLimitFailsIfNotFullyConsumed(t *testing.T) {
	r := codec.NewReader([]byte{0x01, 0x02, 0x03})
	prev, err := r.PushLimit(3)
	require.NoError(t, err)
	_, err = r.ReadVarint() // consumes 1 byte, leaves 2
	require.NoError(t, err)
	err = r.PopLimit(prev)
	require.ErrorIs(t, err, wire.ErrTruncatedMessage)
}

func TestPushLimitRejectsBudgetLargerThanParent(t *testing.T) {
	r := codec.NewReader([]byte{0x01, 0x02})
	_, err := r.PushLimit(10)
	require.ErrorIs(t, err, wire.ErrNegativeSize)
}

func TestSkipGroup(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(5, wire.StartGroup)
	w.WriteTag(1, wire.Varint)
	w.WriteVarint(7)
	// nested group
	w.WriteTag(2, wire.StartGroup)
	w.WriteTag(1, wire.Fixed32)
	w.WriteFixed32(9)
	w.WriteTag(2, wire.EndGroup)
	w.WriteTag(5, wire.EndGroup)
	w.WriteTag(9, wire.Varint)
	w.WriteVarint(1)

	r := codec.NewReader(w.Bytes())
	fn, wt, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, wire.StartGroup, wt)
	require.NoError(t, r.Skip(fn, wt))

	fn, wt, ok, err = r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(9), fn)
	require.Equal(t, wire.Varint, wt)
}

func TestSkipGroupMismatchedEndTag(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(5, wire.StartGroup)
	w.WriteTag(6, wire.EndGroup) // wrong field number
	r := codec.NewReader(w.Bytes())
	fn, wt, _, err := r.ReadTag()
	require.NoError(t, err)
	err = r.Skip(fn, wt)
	require.ErrorIs(t, err, wire.ErrInvalidTag)
}

func TestSizeExactness(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(1, wire.Varint)
	w.WriteVarint(300)
	w.WriteTag(2, wire.Bytes)
	w.WriteBytes([]byte("hello world"))

	want := codec.SizeTag(1, wire.Varint) + codec.SizeVarint(300) +
		codec.SizeTag(2, wire.Bytes) + codec.SizeBytes(len("hello world"))
	require.Equal(t, want, len(w.Bytes()))
}

func TestCheckedAddOverflow(t *testing.T) {
	_, ok := codec.CheckedAdd(1<<30, 1<<30)
	require.False(t, ok)
	sum, ok := codec.CheckedAdd(100, 200)
	require.True(t, ok)
	require.Equal(t, 300, sum)
}
