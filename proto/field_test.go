package proto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

func TestInt32CodecNegativeOccupiesTenBytes(t *testing.T) {
	w := codec.NewWriter(nil)
	proto.Int32Codec.Write(w, -1)
	require.Equal(t, wire.MaxVarintLen, len(w.Bytes()))
	require.Equal(t, wire.MaxVarintLen, proto.Int32Codec.Size(-1))

	r := codec.NewReader(w.Bytes())
	v, err := proto.Int32Codec.Read(r)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestSInt32CodecUsesZigZag(t *testing.T) {
	w := codec.NewWriter(nil)
	proto.SInt32Codec.Write(w, -1)
	// ZigZag(-1) == 1, a one-byte varint — far smaller than Int32Codec's
	// ten bytes for the same logical value.
	require.Equal(t, 1, len(w.Bytes()))

	r := codec.NewReader(w.Bytes())
	v, err := proto.SInt32Codec.Read(r)
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestBoolCodecRoundTrip(t *testing.T) {
	w := codec.NewWriter(nil)
	proto.BoolCodec.Write(w, true)
	proto.BoolCodec.Write(w, false)
	r := codec.NewReader(w.Bytes())
	v1, err := proto.BoolCodec.Read(r)
	require.NoError(t, err)
	require.True(t, v1)
	v2, err := proto.BoolCodec.Read(r)
	require.NoError(t, err)
	require.False(t, v2)
}

func TestFloatDoubleCodecRoundTrip(t *testing.T) {
	w := codec.NewWriter(nil)
	proto.FloatCodec.Write(w, 3.5)
	proto.DoubleCodec.Write(w, -2.25)
	r := codec.NewReader(w.Bytes())
	f, err := proto.FloatCodec.Read(r)
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f)
	d, err := proto.DoubleCodec.Read(r)
	require.NoError(t, err)
	require.Equal(t, -2.25, d)
}

func TestStringCodecRejectsInvalidUTF8(t *testing.T) {
	w := codec.NewWriter(nil)
	w.WriteBytes([]byte{0xff, 0xfe})
	r := codec.NewReader(w.Bytes())
	_, err := proto.StringCodec.Read(r)
	require.ErrorIs(t, err, wire.ErrInvalidUTF8)
}

func TestFieldCodecWritesPrecomputedTag(t *testing.T) {
	f := proto.NewFieldCodec(4, wire.Varint)
	w := codec.NewWriter(nil)
	f.WriteTag(w)
	require.Equal(t, f.TagSize(), len(w.Bytes()))

	r := codec.NewReader(w.Bytes())
	fn, wt, ok, err := r.ReadTag()
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, int32(4), fn)
	require.Equal(t, wire.Varint, wt)
}
