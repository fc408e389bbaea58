package proto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
)

func TestMapRoundTrip(t *testing.T) {
	var m proto.Map[string, int32]
	m.Set("a", 1)
	m.Set("b", 2)

	w := codec.NewWriter(nil)
	m.MarshalTo(5, proto.StringCodec, proto.Int32Codec, w)

	var got proto.Map[string, int32]
	r := codec.NewReader(w.Bytes())
	for !r.Done() {
		fn, wt, ok, err := r.ReadTag()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, int32(5), fn)
		_ = wt
		require.NoError(t, got.MergeEntry(proto.StringCodec, proto.Int32Codec, r))
	}
	require.Equal(t, m.Len(), got.Len())
	for k, v := range m {
		gv, ok := got.Get(k)
		require.True(t, ok)
		require.Equal(t, v, gv)
	}
}

func TestMapDuplicateKeyLastWriteWins(t *testing.T) {
	w := codec.NewWriter(nil)
	var first proto.Map[string, int32]
	first.Set("k", 1)
	first.MarshalTo(1, proto.StringCodec, proto.Int32Codec, w)
	var second proto.Map[string, int32]
	second.Set("k", 2)
	second.MarshalTo(1, proto.StringCodec, proto.Int32Codec, w)

	var got proto.Map[string, int32]
	r := codec.NewReader(w.Bytes())
	for !r.Done() {
		_, _, ok, err := r.ReadTag()
		require.NoError(t, err)
		require.True(t, ok)
		require.NoError(t, got.MergeEntry(proto.StringCodec, proto.Int32Codec, r))
	}
	v, ok := got.Get("k")
	require.True(t, ok)
	require.Equal(t, int32(2), v)
}

func TestMapEntryAlwaysEmitsDefaultKeyAndValue(t *testing.T) {
	var m proto.Map[string, int32]
	m.Set("", 0)

	w := codec.NewWriter(nil)
	m.MarshalTo(1, proto.StringCodec, proto.Int32Codec, w)
	require.NotEmpty(t, w.Bytes())

	var got proto.Map[string, int32]
	r := codec.NewReader(w.Bytes())
	_, _, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, got.MergeEntry(proto.StringCodec, proto.Int32Codec, r))
	v, present := got.Get("")
	require.True(t, present)
	require.Equal(t, int32(0), v)
}

func TestMapSizeMatchesMarshalLength(t *testing.T) {
	var m proto.Map[string, int32]
	m.Set("x", 10)
	m.Set("y", 20)
	w := codec.NewWriter(nil)
	m.MarshalTo(9, proto.StringCodec, proto.Int32Codec, w)
	require.Equal(t, m.Size(9, proto.StringCodec, proto.Int32Codec), len(w.Bytes()))
}

func TestMapEmptyContributesZeroSize(t *testing.T) {
	var m proto.Map[string, int32]
	require.Equal(t, 0, m.Size(1, proto.StringCodec, proto.Int32Codec))
}
