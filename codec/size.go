package codec

import (
	"math"

	"github.com/jhump/protocodec/wire"
)

// SizeSentinel is returned by CheckedAdd (as the size component of its
// result) when overflow is detected; callers must check the accompanying
// bool before trusting it.
const SizeSentinel = -1

// SizeTag returns the number of bytes EncodeTag's varint form occupies
// for the given field number and wire type.
func SizeTag(fieldNumber int32, wt wire.Type) int {
	return wire.SizeVarint(wire.EncodeTag(fieldNumber, wt))
}

// SizeVarint returns the size, in bytes, of v encoded as a varint.
func SizeVarint(v uint64) int {
	return wire.SizeVarint(v)
}

// SizeBytes returns the size of a length-delimited field's payload,
// including its own length-prefix varint (but not the field's tag).
func SizeBytes(n int) int {
	return wire.SizeVarint(uint64(n)) + n
}

// CheckedAdd adds a and b, reporting ok = false if the result would
// exceed math.MaxInt32. Every container and message Size() implementation
// in package proto threads its running total through CheckedAdd rather
// than plain '+', since a message's encoded length can legitimately
// approach that ceiling.
func CheckedAdd(a, b int) (sum int, ok bool) {
	if a < 0 || b < 0 {
		return SizeSentinel, false
	}
	sum = a + b
	if sum < a || sum > math.MaxInt32 {
		return SizeSentinel, false
	}
	return sum, true
}

// UncheckedAdd is the unchecked sizing fast path: ordinary addition, with
// no overflow detection. It exists as an explicitly-named function so
// that a caller who has already bounded its inputs some other way can
// skip CheckedAdd's branch. Do not mix the two flavors within one size
// computation — combining checked and unchecked totals produces
// inconsistent results the moment overflow is actually hit.
func UncheckedAdd(a, b int) int {
	return a + b
}
