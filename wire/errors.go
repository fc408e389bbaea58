package wire

import "errors"

// Sentinel errors for the wire-format error taxonomy. Callers should use
// errors.Is against these, since the concrete errors returned by this
// package and by package codec are frequently wrapped with additional
// context via fmt.Errorf("...: %w", ...).
var (
	// ErrMalformedVarint is returned when a varint occupies more than the
	// 10 bytes needed to represent a 64-bit value, or is truncated by EOF
	// before its terminal byte (high bit clear).
	ErrMalformedVarint = errors.New("protocodec: malformed varint")

	// ErrInvalidTag is returned for a tag with field number 0 or a wire
	// type of 6 or 7 (both reserved, neither ever assigned a meaning).
	ErrInvalidTag = errors.New("protocodec: invalid wire tag")

	// ErrTruncatedMessage is returned when the input ends (or a
	// length-delimited budget is exhausted) in the middle of a field, or
	// when a sub-message's budget is not fully consumed when its limit is
	// popped.
	ErrTruncatedMessage = errors.New("protocodec: truncated message")

	// ErrNegativeSize is returned when a length-delimited prefix decodes
	// to a negative value, or to a value that would overflow int32 or
	// exceed the enclosing limit.
	ErrNegativeSize = errors.New("protocodec: negative or out-of-range length")

	// ErrInvalidUTF8 is returned when a string field's bytes are not
	// well-formed UTF-8.
	ErrInvalidUTF8 = errors.New("protocodec: string field is not valid UTF-8")

	// ErrValueTooLarge is returned on write when a length prefix would
	// exceed the signed 32-bit maximum (2^31 - 1).
	ErrValueTooLarge = errors.New("protocodec: value too large to represent")
)
