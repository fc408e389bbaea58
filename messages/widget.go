package messages

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

// WidgetTypeID identifies Widget to the extension registry.
const WidgetTypeID proto.MessageTypeID = "messages.Widget"

// WidgetLabelExtension is a demonstration extension on Widget, analogous
// to a field declared in a separate .proto file via an `extend` block.
// Registering it against proto.DefaultRegistry makes it available to every
// Widget parse, since Widget.MergeFrom consults that registry.
var WidgetLabelExtension = proto.ExtensionDesc{
	Name:        "messages.widget_label",
	FieldNumber: 100,
	WireType:    wire.Bytes,
}

func init() {
	proto.DefaultRegistry().Register(WidgetTypeID, WidgetLabelExtension)
}

var (
	widgetStringValueField = proto.NewFieldCodec(10, wire.Bytes)
	widgetIntValueField    = proto.NewFieldCodec(11, wire.Varint)
	widgetTagsField        = proto.NewFieldCodec(20, wire.Bytes)
	widgetCountsField      = proto.NewFieldCodec(21, wire.Varint)
	widgetPriorityField    = proto.NewFieldCodec(22, wire.Varint)
)

// WidgetValue is the oneof sum type for Widget's "value" group: at most
// one of StringValue/IntValue is ever present, since assigning Value to
// any one member clears the others by construction.
type WidgetValue interface {
	isWidgetValue()
}

type WidgetStringValue struct{ StringValue string }

func (WidgetStringValue) isWidgetValue() {}

type WidgetIntValue struct{ IntValue int32 }

func (WidgetIntValue) isWidgetValue() {}

// Widget exercises the container and contract features AddressBook
// doesn't: a oneof, a map field, a packed repeated scalar, a proto2-style
// explicit-optional scalar, and an extension range.
type Widget struct {
	// Value is the active oneof member, or nil if none is set.
	Value WidgetValue

	Tags   proto.Map[string, int32]
	Counts proto.Repeated[int32]

	// Priority is proto2-style explicit-optional: a nil pointer means
	// "not set", distinct from a present value of zero.
	Priority *int32

	ext     proto.ExtensionFields
	unknown proto.UnknownFields
}

func (w *Widget) Reset() {
	w.Value = nil
	w.Tags = nil
	w.Counts = nil
	w.Priority = nil
	w.ext = proto.ExtensionFields{}
	w.unknown = proto.UnknownFields{}
}

func (w *Widget) MergeFrom(r *codec.Reader) error {
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case widgetStringValueField.FieldNumber:
			if wt != widgetStringValueField.WireType {
				if err := w.mergeUnrecognized(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(r)
			if err != nil {
				return err
			}
			w.Value = WidgetStringValue{StringValue: v}
		case widgetIntValueField.FieldNumber:
			if wt != widgetIntValueField.WireType {
				if err := w.mergeUnrecognized(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.Int32Codec.Read(r)
			if err != nil {
				return err
			}
			w.Value = WidgetIntValue{IntValue: v}
		case widgetTagsField.FieldNumber:
			if wt != widgetTagsField.WireType {
				if err := w.mergeUnrecognized(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			if err := w.Tags.MergeEntry(proto.StringCodec, proto.Int32Codec, r); err != nil {
				return err
			}
		case widgetCountsField.FieldNumber:
			if err := w.Counts.MergeEntry(wt, proto.Int32Codec, r); err != nil {
				return err
			}
		case widgetPriorityField.FieldNumber:
			if wt != widgetPriorityField.WireType {
				if err := w.mergeUnrecognized(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.Int32Codec.Read(r)
			if err != nil {
				return err
			}
			w.Priority = &v
		default:
			if err := w.mergeUnrecognized(fn, wt, r); err != nil {
				return err
			}
		}
	}
}

// mergeUnrecognized implements the extension-then-unknown fallthrough: a
// tag not matching any declared field is first offered to the extension
// registry, and only falls into the unknown-field set if the registry
// doesn't recognize it either (or recognizes it under a different wire
// type than what was actually written, which is itself treated as
// unknown, exactly as a mismatched known field is).
func (w *Widget) mergeUnrecognized(fn int32, wt wire.Type, r *codec.Reader) error {
	if ext, ok := proto.DefaultRegistry().Find(WidgetTypeID, fn); ok && ext.WireType == wt {
		return w.ext.Merge(fn, wt, r)
	}
	return w.unknown.Merge(fn, wt, r)
}

// Label returns the value of WidgetLabelExtension, if set.
func (w *Widget) Label() (string, bool) {
	return proto.ExtensionValue(&w.ext, WidgetLabelExtension.FieldNumber, proto.StringCodec)
}

// SetLabel sets WidgetLabelExtension's value.
func (w *Widget) SetLabel(v string) {
	proto.SetExtensionValue(&w.ext, WidgetLabelExtension.FieldNumber, proto.StringCodec, v)
}

func (w *Widget) Size() int {
	total := 0
	switch v := w.Value.(type) {
	case WidgetStringValue:
		total += widgetStringValueField.TagSize() + proto.StringCodec.Size(v.StringValue)
	case WidgetIntValue:
		total += widgetIntValueField.TagSize() + proto.Int32Codec.Size(v.IntValue)
	}
	total, _ = codec.CheckedAdd(total, w.Tags.Size(widgetTagsField.FieldNumber, proto.StringCodec, proto.Int32Codec))
	total, _ = codec.CheckedAdd(total, w.Counts.Size(widgetCountsField.FieldNumber, proto.Int32Codec, true))
	if w.Priority != nil {
		total, _ = codec.CheckedAdd(total, widgetPriorityField.TagSize()+proto.Int32Codec.Size(*w.Priority))
	}
	total, _ = codec.CheckedAdd(total, w.ext.Size())
	total, _ = codec.CheckedAdd(total, w.unknown.Size())
	return total
}

func (w *Widget) MarshalTo(out *codec.Writer) error {
	switch v := w.Value.(type) {
	case WidgetStringValue:
		widgetStringValueField.WriteTag(out)
		proto.StringCodec.Write(out, v.StringValue)
	case WidgetIntValue:
		widgetIntValueField.WriteTag(out)
		proto.Int32Codec.Write(out, v.IntValue)
	}
	w.Tags.MarshalTo(widgetTagsField.FieldNumber, proto.StringCodec, proto.Int32Codec, out)
	w.Counts.MarshalTo(widgetCountsField.FieldNumber, proto.Int32Codec, true, out)
	if w.Priority != nil {
		widgetPriorityField.WriteTag(out)
		proto.Int32Codec.Write(out, *w.Priority)
	}
	if err := w.ext.MarshalTo(out); err != nil {
		return err
	}
	return w.unknown.MarshalTo(out)
}

func (w *Widget) Clone() proto.Message {
	out := &Widget{
		Value:   w.Value,
		Tags:    w.Tags.Clone(),
		Counts:  w.Counts.Clone(),
		ext:     w.ext.Clone(),
		unknown: w.unknown.Clone(),
	}
	if w.Priority != nil {
		p := *w.Priority
		out.Priority = &p
	}
	return out
}
