// Package messages holds hand-written message types built on package
// proto, standing in for what a code generator would otherwise emit from
// a .proto schema. Their shape is exactly what such a generator targets
// (the message contract, field codecs, container wiring); they contain
// no novel logic of their own.
package messages

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

var (
	personNameField   = proto.NewFieldCodec(1, wire.Bytes)
	personIDField     = proto.NewFieldCodec(2, wire.Varint)
	personEmailField  = proto.NewFieldCodec(3, wire.Bytes)
	personPhonesField = proto.NewFieldCodec(4, wire.Bytes)

	phoneNumberField = proto.NewFieldCodec(1, wire.Bytes)

	addressBookPeopleField = proto.NewFieldCodec(1, wire.Bytes)
)

var phoneNumberCodec = proto.MessageCodec(func() *PhoneNumber { return &PhoneNumber{} })
var personCodec = proto.MessageCodec(func() *Person { return &Person{} })

// PhoneNumber is a single phone entry on a Person.
type PhoneNumber struct {
	Number string

	unknown proto.UnknownFields
}

func (p *PhoneNumber) Reset() {
	p.Number = ""
	p.unknown = proto.UnknownFields{}
}

func (p *PhoneNumber) MergeFrom(r *codec.Reader) error {
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case phoneNumberField.FieldNumber:
			if wt != phoneNumberField.WireType {
				if err := p.unknown.Merge(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(r)
			if err != nil {
				return err
			}
			p.Number = v
		default:
			if err := p.unknown.Merge(fn, wt, r); err != nil {
				return err
			}
		}
	}
}

func (p *PhoneNumber) Size() int {
	total := 0
	if p.Number != "" {
		total += phoneNumberField.TagSize() + proto.StringCodec.Size(p.Number)
	}
	total, _ = codec.CheckedAdd(total, p.unknown.Size())
	return total
}

func (p *PhoneNumber) MarshalTo(w *codec.Writer) error {
	if p.Number != "" {
		phoneNumberField.WriteTag(w)
		proto.StringCodec.Write(w, p.Number)
	}
	return p.unknown.MarshalTo(w)
}

func (p *PhoneNumber) Clone() proto.Message {
	return &PhoneNumber{Number: p.Number, unknown: p.unknown.Clone()}
}

func (p *PhoneNumber) CloneFrom(src proto.Message) {
	s := src.(*PhoneNumber)
	p.Number = s.Number
	p.unknown = s.unknown.Clone()
}

// Person is the scenario-2 message from the end-to-end test suite: a
// proto3-style name/id/email triple plus a repeated PhoneNumber.
type Person struct {
	Name   string
	ID     int32
	Email  string
	Phones proto.Repeated[*PhoneNumber]

	unknown proto.UnknownFields
}

func (p *Person) Reset() {
	p.Name = ""
	p.ID = 0
	p.Email = ""
	p.Phones = nil
	p.unknown = proto.UnknownFields{}
}

func (p *Person) MergeFrom(r *codec.Reader) error {
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case personNameField.FieldNumber:
			if wt != personNameField.WireType {
				if err := p.unknown.Merge(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(r)
			if err != nil {
				return err
			}
			p.Name = v
		case personIDField.FieldNumber:
			if wt != personIDField.WireType {
				if err := p.unknown.Merge(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.Int32Codec.Read(r)
			if err != nil {
				return err
			}
			p.ID = v
		case personEmailField.FieldNumber:
			if wt != personEmailField.WireType {
				if err := p.unknown.Merge(fn, wt, r); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(r)
			if err != nil {
				return err
			}
			p.Email = v
		case personPhonesField.FieldNumber:
			if err := p.Phones.MergeEntry(wt, phoneNumberCodec, r); err != nil {
				return err
			}
		default:
			if err := p.unknown.Merge(fn, wt, r); err != nil {
				return err
			}
		}
	}
}

func (p *Person) Size() int {
	total := 0
	if p.Name != "" {
		total += personNameField.TagSize() + proto.StringCodec.Size(p.Name)
	}
	if p.ID != 0 {
		total += personIDField.TagSize() + proto.Int32Codec.Size(p.ID)
	}
	if p.Email != "" {
		total += personEmailField.TagSize() + proto.StringCodec.Size(p.Email)
	}
	total, _ = codec.CheckedAdd(total, p.Phones.Size(personPhonesField.FieldNumber, phoneNumberCodec, false))
	total, _ = codec.CheckedAdd(total, p.unknown.Size())
	return total
}

func (p *Person) MarshalTo(w *codec.Writer) error {
	if p.Name != "" {
		personNameField.WriteTag(w)
		proto.StringCodec.Write(w, p.Name)
	}
	if p.ID != 0 {
		personIDField.WriteTag(w)
		proto.Int32Codec.Write(w, p.ID)
	}
	if p.Email != "" {
		personEmailField.WriteTag(w)
		proto.StringCodec.Write(w, p.Email)
	}
	p.Phones.MarshalTo(personPhonesField.FieldNumber, phoneNumberCodec, false, w)
	return p.unknown.MarshalTo(w)
}

func (p *Person) Clone() proto.Message {
	out := &Person{Name: p.Name, ID: p.ID, Email: p.Email, unknown: p.unknown.Clone()}
	out.Phones = make(proto.Repeated[*PhoneNumber], len(p.Phones))
	for i, ph := range p.Phones {
		out.Phones[i] = ph.Clone().(*PhoneNumber)
	}
	return out
}

func (p *Person) CloneFrom(src proto.Message) {
	s := src.(*Person)
	p.Name, p.ID, p.Email = s.Name, s.ID, s.Email
	p.unknown = s.unknown.Clone()
	if cap(p.Phones) >= len(s.Phones) {
		p.Phones = p.Phones[:len(s.Phones)]
	} else {
		p.Phones = make(proto.Repeated[*PhoneNumber], len(s.Phones))
	}
	for i, ph := range s.Phones {
		if p.Phones[i] != nil {
			p.Phones[i].CloneFrom(ph)
		} else {
			p.Phones[i] = ph.Clone().(*PhoneNumber)
		}
	}
}

// AddressBook is a repeated collection of Person entries.
type AddressBook struct {
	People proto.Repeated[*Person]

	unknown proto.UnknownFields
}

func (a *AddressBook) Reset() {
	a.People = nil
	a.unknown = proto.UnknownFields{}
}

func (a *AddressBook) MergeFrom(r *codec.Reader) error {
	for {
		fn, wt, ok, err := r.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case addressBookPeopleField.FieldNumber:
			if err := a.People.MergeEntry(wt, personCodec, r); err != nil {
				return err
			}
		default:
			if err := a.unknown.Merge(fn, wt, r); err != nil {
				return err
			}
		}
	}
}

func (a *AddressBook) Size() int {
	total := a.People.Size(addressBookPeopleField.FieldNumber, personCodec, false)
	total, _ = codec.CheckedAdd(total, a.unknown.Size())
	return total
}

func (a *AddressBook) MarshalTo(w *codec.Writer) error {
	a.People.MarshalTo(addressBookPeopleField.FieldNumber, personCodec, false, w)
	return a.unknown.MarshalTo(w)
}

func (a *AddressBook) Clone() proto.Message {
	out := &AddressBook{unknown: a.unknown.Clone()}
	out.People = make(proto.Repeated[*Person], len(a.People))
	for i, p := range a.People {
		out.People[i] = p.Clone().(*Person)
	}
	return out
}
