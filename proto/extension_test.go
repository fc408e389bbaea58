package proto_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

const testMessageType proto.MessageTypeID = "test.Message"

func TestExtensionRegistryFindLocal(t *testing.T) {
	reg := proto.NewExtensionRegistry()
	ext := proto.ExtensionDesc{Name: "test.ext", FieldNumber: 10, WireType: wire.Varint}
	reg.Register(testMessageType, ext)

	got, ok := reg.Find(testMessageType, 10)
	require.True(t, ok)
	require.Equal(t, ext, got)

	_, ok = reg.Find(testMessageType, 11)
	require.False(t, ok)
}

func TestExtensionRegistryComposesWithParents(t *testing.T) {
	parent := proto.NewExtensionRegistry()
	parent.Register(testMessageType, proto.ExtensionDesc{Name: "parent.ext", FieldNumber: 1, WireType: wire.Bytes})

	child := proto.NewExtensionRegistry(parent)
	child.Register(testMessageType, proto.ExtensionDesc{Name: "child.ext", FieldNumber: 2, WireType: wire.Varint})

	got, ok := child.Find(testMessageType, 1)
	require.True(t, ok)
	require.Equal(t, "parent.ext", got.Name)

	got, ok = child.Find(testMessageType, 2)
	require.True(t, ok)
	require.Equal(t, "child.ext", got.Name)

	_, ok = child.Find(testMessageType, 99)
	require.False(t, ok)
}

func TestExtensionRegistryLocalShadowsParent(t *testing.T) {
	parent := proto.NewExtensionRegistry()
	parent.Register(testMessageType, proto.ExtensionDesc{Name: "parent.ext", FieldNumber: 1, WireType: wire.Bytes})

	child := proto.NewExtensionRegistry(parent)
	child.Register(testMessageType, proto.ExtensionDesc{Name: "child.ext", FieldNumber: 1, WireType: wire.Bytes})

	got, ok := child.Find(testMessageType, 1)
	require.True(t, ok)
	require.Equal(t, "child.ext", got.Name)
}

func TestNilExtensionRegistryFindIsSafe(t *testing.T) {
	var reg *proto.ExtensionRegistry
	_, ok := reg.Find(testMessageType, 1)
	require.False(t, ok)
}

func TestExtensionValueRoundTrip(t *testing.T) {
	var ext proto.ExtensionFields
	proto.SetExtensionValue(&ext, 10, proto.StringCodec, "hello")

	got, ok := proto.ExtensionValue(&ext, 10, proto.StringCodec)
	require.True(t, ok)
	require.Equal(t, "hello", got)

	_, ok = proto.ExtensionValue(&ext, 11, proto.StringCodec)
	require.False(t, ok)
}

func TestExtensionValueReplacesOnSecondSet(t *testing.T) {
	var ext proto.ExtensionFields
	proto.SetExtensionValue(&ext, 1, proto.Int32Codec, 7)
	proto.SetExtensionValue(&ext, 1, proto.Int32Codec, 9)

	got, ok := proto.ExtensionValue(&ext, 1, proto.Int32Codec)
	require.True(t, ok)
	require.Equal(t, int32(9), got)
}

func TestDefaultRegistrySingleton(t *testing.T) {
	require.Same(t, proto.DefaultRegistry(), proto.DefaultRegistry())
}
