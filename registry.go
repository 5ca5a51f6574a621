package baco

import "fmt"

// kind identifies an encoding family.
type kind uint8

const (
	kindInvalid kind = iota
	kindBCD
	kindBinary
	kindOnes
	kindTwos
	kindDecimal
	kindFloat
	kindSignMagnitude
	kindRoman
	kindUnary
	kindRadix
)

// Encoding identifies a numeral encoding.
// It is a comparable value type: two encodings are the same if and only if
// they are equal.
// The zero value is not a valid encoding.
//
// [Hex] and [Octal] are aliases of Radix(16) and Radix(8), while [Binary]
// and [Decimal] are encodings of their own, distinct from Radix(2) and
// Radix(10).
type Encoding struct {
	kind kind
	base uint8 // the radix, used only by the positional family
}

const (
	MinBase = 2  // smallest radix of a positional encoding
	MaxBase = 36 // largest radix of a positional encoding, digits 0-9 then A-Z
)

// The closed set of encodings.
var (
	BCD            = Encoding{kind: kindBCD}
	Binary         = Encoding{kind: kindBinary}
	OnesComplement = Encoding{kind: kindOnes}
	TwosComplement = Encoding{kind: kindTwos}
	Decimal        = Encoding{kind: kindDecimal}
	Float          = Encoding{kind: kindFloat}
	SignMagnitude  = Encoding{kind: kindSignMagnitude}
	Roman          = Encoding{kind: kindRoman}
	Unary          = Encoding{kind: kindUnary}
	Hex            = Encoding{kind: kindRadix, base: 16}
	Octal          = Encoding{kind: kindRadix, base: 8}
)

// Radix returns the positional encoding with the given base.
// Radix returns an error if base is less than [MinBase] or greater than [MaxBase].
func Radix(base int) (Encoding, error) {
	if base < MinBase || base > MaxBase {
		return Encoding{}, ErrUnknownEncoding.New(fmt.Sprintf("base%d", base))
	}
	return Encoding{kind: kindRadix, base: uint8(base)}, nil
}

// Meta describes the capabilities of an encoding.
type Meta struct {
	Name           string // human readable name used in messages
	NegativeSource bool   // literal in this encoding may carry a minus sign
	NegativeDest   bool   // negative values may be rendered in this encoding
	Fraction       bool   // literal and values may have a fractional part
	Base           int    // digit alphabet enforced on source literals, 0 if none
	Width          bool   // a width hint applies to rendered literals
}

// registry holds the metadata of every non-positional encoding.
// Positional encodings are described by radixMeta.
var registry = [...]Meta{
	kindBCD: {
		Name: "Binary Coded Decimal",
	},
	kindBinary: {
		Name:           "Binary Base",
		NegativeSource: true,
		NegativeDest:   true,
		Fraction:       true,
		Base:           2,
		Width:          true,
	},
	kindOnes: {
		Name:         "Ones' Complement",
		NegativeDest: true,
		Base:         2,
		Width:        true,
	},
	kindTwos: {
		Name:         "Two's Complement",
		NegativeDest: true,
		Base:         2,
		Width:        true,
	},
	kindDecimal: {
		Name:           "Decimal Base",
		NegativeSource: true,
		NegativeDest:   true,
		Fraction:       true,
		Base:           10,
		Width:          true,
	},
	kindFloat: {
		Name:         "Floating Point",
		NegativeDest: true,
		Fraction:     true,
		Base:         2,
	},
	kindSignMagnitude: {
		Name:         "Signed Magnitude Representation",
		NegativeDest: true,
		Base:         2,
		Width:        true,
	},
	kindRoman: {
		Name: "Roman Numerals",
	},
	kindUnary: {
		Name: "Unary Base",
		Base: 1,
	},
}

func radixMeta(base int) Meta {
	m := Meta{
		NegativeSource: true,
		NegativeDest:   true,
		Fraction:       true,
		Base:           base,
		Width:          true,
	}
	switch base {
	case 16:
		m.Name = "Hexadecimal Base"
	case 8:
		m.Name = "Octal Base"
	default:
		m.Name = fmt.Sprintf("Base %d", base)
	}
	return m
}

// Lookup returns the metadata of an encoding.
// Lookup returns an error if e is not one of the package encodings.
func Lookup(e Encoding) (Meta, error) {
	switch {
	case e.kind == kindRadix:
		if int(e.base) < MinBase || int(e.base) > MaxBase {
			return Meta{}, ErrUnknownEncoding.New(e.raw())
		}
		return radixMeta(int(e.base)), nil
	case e.kind == kindInvalid || int(e.kind) >= len(registry):
		return Meta{}, ErrUnknownEncoding.New(e.raw())
	}
	return registry[e.kind], nil
}

// Base returns the radix of a positional encoding, or 0 for other encodings.
func (e Encoding) Base() int {
	switch e.kind {
	case kindBinary:
		return 2
	case kindDecimal:
		return 10
	case kindRadix:
		return int(e.base)
	}
	return 0
}

// String implements the [fmt.Stringer] interface and returns the
// human readable name of the encoding.
func (e Encoding) String() string {
	m, err := Lookup(e)
	if err != nil {
		return e.raw()
	}
	return m.Name
}

// raw formats e without consulting the registry.
func (e Encoding) raw() string {
	return fmt.Sprintf("Encoding(%d, %d)", e.kind, e.base)
}
