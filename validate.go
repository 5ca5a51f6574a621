package baco

import "fmt"

// MaxLiteral is the maximum length of a literal accepted by [Validate].
const MaxLiteral = 1 << 12

// Validate checks a literal against the grammar of the source encoding and
// the capabilities of both encodings.
// The rules are applied in order and the first failure is returned:
//
//  1. Source and destination must differ.
//  2. Both encodings must be known and the literal at most [MaxLiteral] long.
//  3. At most one decimal point, and only if both encodings accept fractions.
//  4. At most one minus sign, only as the first character, and only if both
//     encodings accept negative numbers.
//  5. At least one digit.
//  6. Every other character must be a digit of the source alphabet, if the
//     source has one (see [Meta].Base).
//
// Validate does not check grammars that are not character based, such as
// BCD groups or Roman numerals; their parsers report those errors.
func Validate(literal string, src, dst Encoding) error {
	if src == dst {
		return ErrSameEncoding.New(src)
	}
	sm, err := Lookup(src)
	if err != nil {
		return err
	}
	dm, err := Lookup(dst)
	if err != nil {
		return err
	}
	if len(literal) > MaxLiteral {
		return ErrOverflow.New(fmt.Sprintf("literal of %v characters", len(literal)), fmt.Sprintf("at most %v characters are supported", MaxLiteral))
	}

	var (
		signs  int
		sign   int
		points int
		digits int
	)
	for i := 0; i < len(literal); i++ {
		switch literal[i] {
		case '-':
			signs++
			sign = i
		case '.':
			points++
		default:
			digits++
		}
	}

	// Decimal point
	switch {
	case points > 1:
		return ErrMalformedNumber.New(literal, "multiple decimal points")
	case points == 1 && !sm.Fraction:
		return ErrFractionNotAllowed.New(sm.Name)
	case points == 1 && !dm.Fraction:
		return ErrFractionNotAllowed.New(dm.Name)
	}

	// Sign
	switch {
	case signs > 1:
		return ErrMalformedNumber.New(literal, "multiple signs")
	case signs == 1 && sign != 0:
		return ErrMalformedNumber.New(literal, "sign is not the first character")
	case signs == 1 && !sm.NegativeSource:
		return ErrNegativeNotAllowed.New(sm.Name)
	case signs == 1 && !dm.NegativeDest:
		return ErrNegativeNotAllowed.New(dm.Name)
	}

	if digits == 0 {
		return ErrMalformedNumber.New(literal, "no digits")
	}

	if sm.Base != 0 {
		return checkBase(literal, sm.Base)
	}
	return nil
}

// checkBase verifies that every character except a leading sign and the
// decimal point is a digit below base.
// Base 1 only admits the digit 0.
func checkBase(literal string, base int) error {
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		if c == '.' || (c == '-' && i == 0) {
			continue
		}
		if d := digitValue(c); d < 0 || d >= base {
			return ErrDigitOutOfRange.New(string(c), base)
		}
	}
	return nil
}
