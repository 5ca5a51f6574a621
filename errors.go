package baco

import (
	"gopkg.in/src-d/go-errors.v1"
)

// Error kinds returned by the package.
// Use Kind.Is to test an error against a kind:
//
//	if baco.ErrNegativeNotAllowed.Is(err) { ... }
var (
	// ErrSameEncoding is returned when source and destination are identical.
	ErrSameEncoding = errors.NewKind("source and destination are the same encoding (%v)")

	// ErrMalformedNumber is returned for multiple signs, multiple decimal
	// points, a sign that is not the first character, or no digits at all.
	ErrMalformedNumber = errors.NewKind("malformed number %q: %s")

	// ErrFractionNotAllowed is returned when a value with a fractional part
	// meets an encoding that only accepts integers.
	ErrFractionNotAllowed = errors.NewKind("%s accepts only integers")

	// ErrNegativeNotAllowed is returned when a negative value meets an
	// encoding that only accepts non-negative numbers.
	ErrNegativeNotAllowed = errors.NewKind("%s accepts only positive numbers")

	// ErrDigitOutOfRange is returned when a character is not a digit of the base.
	ErrDigitOutOfRange = errors.NewKind("%q is not a digit in base %d")

	// ErrMalformedBCD is returned for a BCD literal whose length is not a
	// multiple of 4 or that contains a group outside 0000-1001.
	ErrMalformedBCD = errors.NewKind("malformed BCD %q: %s")

	// ErrMalformedRoman is returned for a character outside IVXLCDM,
	// an empty literal, or subtractive prefixes that outweigh the total.
	ErrMalformedRoman = errors.NewKind("malformed Roman numeral %q: %s")

	// ErrMalformedFloat is returned for a floating-point literal that is not
	// a 64-bit pattern of a finite IEEE-754 number.
	ErrMalformedFloat = errors.NewKind("malformed floating point %q: %s")

	// ErrRomanRange is returned when a value cannot be written in classical
	// Roman notation.
	ErrRomanRange = errors.NewKind("%v is out of the Roman numeral range [0, %d]")

	// ErrWidthTooSmall is returned when the requested width cannot hold the
	// natural encoding of a value.
	ErrWidthTooSmall = errors.NewKind("too few digits: %d requested, at least %d required")

	// ErrOverflow is returned when a value exceeds the fixed range of [Value]
	// or an output size limit.
	ErrOverflow = errors.NewKind("%s: %s")

	// ErrUnknownEncoding is returned for an encoding outside the closed set.
	ErrUnknownEncoding = errors.NewKind("unknown encoding %v")
)
