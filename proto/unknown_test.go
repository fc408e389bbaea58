package proto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

func TestUnknownFieldsRoundTrip(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(99, wire.Varint)
	w.WriteVarint(12345)
	w.WriteTag(100, wire.Bytes)
	w.WriteBytes([]byte("hello"))

	var u proto.UnknownFields
	r := codec.NewReader(w.Bytes())
	for !r.Done() {
		fn, wt, ok, err := r.ReadTag()
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, u.Merge(fn, wt, r))
	}
	require.Equal(t, 2, u.Len())
	require.Equal(t, []int32{99, 100}, u.FieldNumbers())

	out := codec.NewWriter(nil)
	require.NoError(t, u.MarshalTo(out))
	require.Equal(t, w.Bytes(), out.Bytes())
	require.Equal(t, len(w.Bytes()), u.Size())
}

func TestUnknownFieldsForwardCompat(t *testing.T) {
	// A field number not declared by any known schema field, injected
	// with wire type Bytes, survives a parse -> re-serialize round trip
	// verbatim.
	injected := codec.NewWriter(nil)
	injected.WriteTag(55, wire.Bytes)
	injected.WriteBytes([]byte("payload"))

	var u proto.UnknownFields
	r := codec.NewReader(injected.Bytes())
	fn, wt, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, u.Merge(fn, wt, r))

	out := codec.NewWriter(nil)
	require.NoError(t, u.MarshalTo(out))
	require.Equal(t, injected.Bytes(), out.Bytes())
}

func TestUnknownFieldsGroup(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(5, wire.StartGroup)
	w.WriteTag(1, wire.Varint)
	w.WriteVarint(7)
	w.WriteTag(5, wire.EndGroup)

	var u proto.UnknownFields
	r := codec.NewReader(w.Bytes())
	fn, wt, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, u.Merge(fn, wt, r))
	require.True(t, r.Done())

	out := codec.NewWriter(nil)
	require.NoError(t, u.MarshalTo(out))
	require.Equal(t, w.Bytes(), out.Bytes())
}

func TestUnknownFieldsClone(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteTag(1, wire.Bytes)
	w.WriteBytes([]byte("abc"))

	var u proto.UnknownFields
	r := codec.NewReader(w.Bytes())
	fn, wt, _, err := r.ReadTag()
	require.NoError(t, err)
	require.NoError(t, u.Merge(fn, wt, r))

	clone := u.Clone()
	out := codec.NewWriter(nil)
	require.NoError(t, clone.MarshalTo(out))
	require.Equal(t, w.Bytes(), out.Bytes())
}
