package main

import (
	"github.com/jhump/protocodec/codec"
	"github.com/jhump/protocodec/proto"
	"github.com/jhump/protocodec/wire"
)

var (
	reqFileToGenerateField = proto.NewFieldCodec(1, wire.Bytes)
	reqParameterField      = proto.NewFieldCodec(2, wire.Bytes)
	reqProtoFileField      = proto.NewFieldCodec(15, wire.Bytes)

	respErrorField = proto.NewFieldCodec(1, wire.Bytes)
	respFileField  = proto.NewFieldCodec(15, wire.Bytes)

	fileNameField    = proto.NewFieldCodec(1, wire.Bytes)
	fileContentField = proto.NewFieldCodec(15, wire.Bytes)
)

// codeGeneratorRequest is the plugin-I/O request shape: the files to
// generate, the parameter string, and the transitive set of
// file-descriptor bytes. Those descriptor bytes are carried opaquely (raw
// length-delimited payloads, not parsed messages) since interpreting them
// is a descriptor pool's job — a collaborator this binary only proves the
// wire format for, without implementing itself.
type codeGeneratorRequest struct {
	FileToGenerate proto.Repeated[string]
	Parameter      string
	ProtoFile      proto.Repeated[[]byte]

	unknown proto.UnknownFields
}

func (r *codeGeneratorRequest) Reset() {
	r.FileToGenerate = nil
	r.Parameter = ""
	r.ProtoFile = nil
	r.unknown = proto.UnknownFields{}
}

func (r *codeGeneratorRequest) MergeFrom(in *codec.Reader) error {
	for {
		fn, wt, ok, err := in.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case reqFileToGenerateField.FieldNumber:
			if err := r.FileToGenerate.MergeEntry(wt, proto.StringCodec, in); err != nil {
				return err
			}
		case reqParameterField.FieldNumber:
			if wt != reqParameterField.WireType {
				if err := r.unknown.Merge(fn, wt, in); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(in)
			if err != nil {
				return err
			}
			r.Parameter = v
		case reqProtoFileField.FieldNumber:
			if err := r.ProtoFile.MergeEntry(wt, proto.BytesCodec, in); err != nil {
				return err
			}
		default:
			if err := r.unknown.Merge(fn, wt, in); err != nil {
				return err
			}
		}
	}
}

func (r *codeGeneratorRequest) Size() int {
	total := r.FileToGenerate.Size(reqFileToGenerateField.FieldNumber, proto.StringCodec, false)
	if r.Parameter != "" {
		total, _ = codec.CheckedAdd(total, reqParameterField.TagSize()+proto.StringCodec.Size(r.Parameter))
	}
	total, _ = codec.CheckedAdd(total, r.ProtoFile.Size(reqProtoFileField.FieldNumber, proto.BytesCodec, false))
	total, _ = codec.CheckedAdd(total, r.unknown.Size())
	return total
}

func (r *codeGeneratorRequest) MarshalTo(w *codec.Writer) error {
	r.FileToGenerate.MarshalTo(reqFileToGenerateField.FieldNumber, proto.StringCodec, false, w)
	if r.Parameter != "" {
		reqParameterField.WriteTag(w)
		proto.StringCodec.Write(w, r.Parameter)
	}
	r.ProtoFile.MarshalTo(reqProtoFileField.FieldNumber, proto.BytesCodec, false, w)
	return r.unknown.MarshalTo(w)
}

func (r *codeGeneratorRequest) Clone() proto.Message {
	return &codeGeneratorRequest{
		FileToGenerate: r.FileToGenerate.Clone(),
		Parameter:      r.Parameter,
		ProtoFile:      r.ProtoFile.Clone(),
		unknown:        r.unknown.Clone(),
	}
}

// generatedFile is one (relative_path, content) pair in a response.
type generatedFile struct {
	Name    string
	Content string

	unknown proto.UnknownFields
}

func (f *generatedFile) Reset() {
	f.Name, f.Content = "", ""
	f.unknown = proto.UnknownFields{}
}

func (f *generatedFile) MergeFrom(in *codec.Reader) error {
	for {
		fn, wt, ok, err := in.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case fileNameField.FieldNumber:
			if wt != fileNameField.WireType {
				if err := f.unknown.Merge(fn, wt, in); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(in)
			if err != nil {
				return err
			}
			f.Name = v
		case fileContentField.FieldNumber:
			if wt != fileContentField.WireType {
				if err := f.unknown.Merge(fn, wt, in); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(in)
			if err != nil {
				return err
			}
			f.Content = v
		default:
			if err := f.unknown.Merge(fn, wt, in); err != nil {
				return err
			}
		}
	}
}

func (f *generatedFile) Size() int {
	total := 0
	if f.Name != "" {
		total += fileNameField.TagSize() + proto.StringCodec.Size(f.Name)
	}
	if f.Content != "" {
		total += fileContentField.TagSize() + proto.StringCodec.Size(f.Content)
	}
	total, _ = codec.CheckedAdd(total, f.unknown.Size())
	return total
}

func (f *generatedFile) MarshalTo(w *codec.Writer) error {
	if f.Name != "" {
		fileNameField.WriteTag(w)
		proto.StringCodec.Write(w, f.Name)
	}
	if f.Content != "" {
		fileContentField.WriteTag(w)
		proto.StringCodec.Write(w, f.Content)
	}
	return f.unknown.MarshalTo(w)
}

func (f *generatedFile) Clone() proto.Message {
	return &generatedFile{Name: f.Name, Content: f.Content, unknown: f.unknown.Clone()}
}

// codeGeneratorResponse is the plugin-I/O response shape: either an
// error string or a list of generated files. Exit status is zero on any
// well-formed response, including one carrying an error string;
// non-zero only on I/O failure.
type codeGeneratorResponse struct {
	Error *string
	File  proto.Repeated[*generatedFile]

	unknown proto.UnknownFields
}

func (r *codeGeneratorResponse) Reset() {
	r.Error = nil
	r.File = nil
	r.unknown = proto.UnknownFields{}
}

var generatedFileCodec = proto.MessageCodec(func() *generatedFile { return &generatedFile{} })

func (r *codeGeneratorResponse) MergeFrom(in *codec.Reader) error {
	for {
		fn, wt, ok, err := in.ReadTag()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		switch fn {
		case respErrorField.FieldNumber:
			if wt != respErrorField.WireType {
				if err := r.unknown.Merge(fn, wt, in); err != nil {
					return err
				}
				continue
			}
			v, err := proto.StringCodec.Read(in)
			if err != nil {
				return err
			}
			r.Error = &v
		case respFileField.FieldNumber:
			if err := r.File.MergeEntry(wt, generatedFileCodec, in); err != nil {
				return err
			}
		default:
			if err := r.unknown.Merge(fn, wt, in); err != nil {
				return err
			}
		}
	}
}

func (r *codeGeneratorResponse) Size() int {
	total := 0
	if r.Error != nil {
		total += respErrorField.TagSize() + proto.StringCodec.Size(*r.Error)
	}
	total, _ = codec.CheckedAdd(total, r.File.Size(respFileField.FieldNumber, generatedFileCodec, false))
	total, _ = codec.CheckedAdd(total, r.unknown.Size())
	return total
}

func (r *codeGeneratorResponse) MarshalTo(w *codec.Writer) error {
	if r.Error != nil {
		respErrorField.WriteTag(w)
		proto.StringCodec.Write(w, *r.Error)
	}
	r.File.MarshalTo(respFileField.FieldNumber, generatedFileCodec, false, w)
	return r.unknown.MarshalTo(w)
}

func (r *codeGeneratorResponse) Clone() proto.Message {
	out := &codeGeneratorResponse{unknown: r.unknown.Clone()}
	if r.Error != nil {
		e := *r.Error
		out.Error = &e
	}
	out.File = make(proto.Repeated[*generatedFile], len(r.File))
	for i, f := range r.File {
		out.File[i] = f.Clone().(*generatedFile)
	}
	return out
}
