package messages_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jhump/protocodec/messages"
	"github.com/jhump/protocodec/proto"
)

func TestWidgetOneofExclusivity(t *testing.T) {
	w := &messages.Widget{}
	w.Value = messages.WidgetStringValue{StringValue: "a"}
	w.Value = messages.WidgetIntValue{IntValue: 5}

	b, err := proto.Marshal(w)
	require.NoError(t, err)

	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(b, got))
	iv, ok := got.Value.(messages.WidgetIntValue)
	require.True(t, ok)
	require.Equal(t, int32(5), iv.IntValue)
}

func TestWidgetOneofReassignmentOnWire(t *testing.T) {
	// Two oneof members written back-to-back on the wire: the later one
	// wins, mirroring in-memory last-write-wins assignment.
	first := &messages.Widget{Value: messages.WidgetStringValue{StringValue: "x"}}
	fb, err := proto.Marshal(first)
	require.NoError(t, err)

	second := &messages.Widget{Value: messages.WidgetIntValue{IntValue: 3}}
	sb, err := proto.Marshal(second)
	require.NoError(t, err)

	combined := append(append([]byte(nil), fb...), sb...)
	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(combined, got))
	iv, ok := got.Value.(messages.WidgetIntValue)
	require.True(t, ok)
	require.Equal(t, int32(3), iv.IntValue)
}

func TestWidgetMapField(t *testing.T) {
	w := &messages.Widget{}
	w.Tags.Set("a", 1)
	w.Tags.Set("b", 2)

	b, err := proto.Marshal(w)
	require.NoError(t, err)
	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(b, got))
	require.Equal(t, 2, got.Tags.Len())
	v, ok := got.Tags.Get("a")
	require.True(t, ok)
	require.Equal(t, int32(1), v)
}

func TestWidgetPackedRepeated(t *testing.T) {
	w := &messages.Widget{Counts: proto.Repeated[int32]{1, 2, 3}}
	b, err := proto.Marshal(w)
	require.NoError(t, err)
	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(b, got))
	require.Equal(t, []int32{1, 2, 3}, []int32(got.Counts))
}

func TestWidgetExplicitOptionalPriority(t *testing.T) {
	unset := &messages.Widget{}
	require.Nil(t, unset.Priority)
	require.Equal(t, 0, unset.Size())

	zero := int32(0)
	set := &messages.Widget{Priority: &zero}
	require.NotEqual(t, 0, set.Size()) // present despite equaling the Go zero value

	b, err := proto.Marshal(set)
	require.NoError(t, err)
	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(b, got))
	require.NotNil(t, got.Priority)
	require.Equal(t, int32(0), *got.Priority)
}

func TestWidgetExtensionRoundTrip(t *testing.T) {
	w := &messages.Widget{}
	w.SetLabel("a label")

	b, err := proto.Marshal(w)
	require.NoError(t, err)
	got := &messages.Widget{}
	require.NoError(t, proto.Unmarshal(b, got))
	label, ok := got.Label()
	require.True(t, ok)
	require.Equal(t, "a label", label)
}

func TestWidgetSizeMatchesMarshalLength(t *testing.T) {
	w := &messages.Widget{
		Value:  messages.WidgetStringValue{StringValue: "hi"},
		Counts: proto.Repeated[int32]{1, 2, 3},
	}
	w.Tags.Set("k", 9)
	w.SetLabel("l")
	b, err := proto.Marshal(w)
	require.NoError(t, err)
	require.Equal(t, w.Size(), len(b))
}
