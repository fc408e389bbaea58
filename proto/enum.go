package proto

// EnumValue is a sum type: either a declared variant of T, or an integer
// the schema did not declare (preserved so a parse→serialize round trip
// doesn't silently rewrite a value the program doesn't understand yet —
// forward compatibility for enum fields). T is the generated Go type for
// the enum (conventionally an int32-based named type with a String
// method and an IsValid-style predicate); EnumValue never calls into T's
// methods itself, it only carries the raw wire integer plus a validity
// flag.
//
// The zero value of EnumValue[T] is Defined(T(0)) — correct whenever the
// schema declares a variant with tag 0, which is the convention every
// proto3 enum is required to follow (some generated code instead
// defaults to the first *declared* variant regardless of its tag; this
// package never does that). The "not defined" flag is stored inverted
// (notDefined, rather than defined) specifically so the Go zero value
// lands on the common case; a schema whose variant 0 doesn't exist must
// construct its field's default with Undefined(0) explicitly rather than
// relying on a zero-initialized EnumValue.
type EnumValue[T ~int32] struct {
	raw        int32
	notDefined bool
}

// Defined constructs an EnumValue holding a known schema variant.
func Defined[T ~int32](v T) EnumValue[T] {
	return EnumValue[T]{raw: int32(v)}
}

// Undefined constructs an EnumValue holding a raw integer the schema does
// not recognize.
func Undefined[T ~int32](raw int32) EnumValue[T] {
	return EnumValue[T]{raw: raw, notDefined: true}
}

// DecodeEnum builds an EnumValue from a wire-decoded int32, classifying
// it with isValid (typically a switch over the schema's declared
// variants, generated alongside T).
func DecodeEnum[T ~int32](raw int32, isValid func(int32) bool) EnumValue[T] {
	if isValid(raw) {
		return EnumValue[T]{raw: raw}
	}
	return EnumValue[T]{raw: raw, notDefined: true}
}

// Raw returns the underlying wire integer regardless of whether it is a
// declared variant — this is what gets written back out, and what
// equality uses.
func (e EnumValue[T]) Raw() int32 {
	return e.raw
}

// Value returns the declared variant and true if e holds one, or the
// zero value and false if e holds an undefined integer.
func (e EnumValue[T]) Value() (T, bool) {
	if e.notDefined {
		return 0, false
	}
	return T(e.raw), true
}

// IsDefined reports whether e holds a schema-declared variant.
func (e EnumValue[T]) IsDefined() bool {
	return !e.notDefined
}

// Equal compares two EnumValues by their underlying wire integer: two
// Undefined values with the same raw integer compare equal, and a
// Defined(0) compares equal to an Undefined(0) that some other, older
// build of the schema would have produced for the same wire bytes.
func (e EnumValue[T]) Equal(o EnumValue[T]) bool {
	return e.raw == o.raw
}

// IsZero reports whether e is the default enum value (raw == 0). Per the
// proto3 "zero is absent" rule, a singular enum field holding IsZero()
// is not emitted.
func (e EnumValue[T]) IsZero() bool {
	return e.raw == 0
}
