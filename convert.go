package baco

import "strings"

// Convert translates a literal from the source encoding to the destination
// encoding through the canonical [Value].
// It is equivalent to [ConvertWidth] with no width hint.
func Convert(literal string, src, dst Encoding) (string, error) {
	return ConvertWidth(literal, src, dst, 0)
}

// ConvertWidth is like [Convert], but pads the rendered literal to width
// digits when the destination supports a width hint (see [Meta].Width):
//
//   - positional encodings are zero-padded in the integer part, after the sign;
//   - ones' and two's complement literals are sign-extended;
//   - sign-magnitude literals get zeros between the sign bit and the magnitude.
//
// For positional encodings width counts integer digits, for binary signed
// encodings it counts all bits including the sign bit.
// Width 0 means the natural width. Other encodings ignore the hint.
//
// ConvertWidth returns an error:
//   - if the literal fails [Validate];
//   - if the literal is not a valid literal of the source encoding;
//   - if the value is negative or has a fractional part and the destination
//     does not accept it;
//   - if the value cannot be rendered in the destination encoding;
//   - if width is negative or smaller than the natural width.
func ConvertWidth(literal string, src, dst Encoding, width int) (string, error) {
	if err := Validate(literal, src, dst); err != nil {
		return "", err
	}
	if width < 0 {
		return "", ErrWidthTooSmall.New(width, 0)
	}
	v, err := decode(literal, src)
	if err != nil {
		return "", err
	}
	s, err := encode(v, dst)
	if err != nil {
		return "", err
	}
	if width == 0 {
		return s, nil
	}
	return pad(s, dst, width)
}

// decode parses a literal of encoding e.
func decode(literal string, e Encoding) (Value, error) {
	switch e.kind {
	case kindBinary, kindDecimal, kindRadix:
		return ParseRadix(literal, e.Base())
	case kindBCD:
		return ParseBCD(literal)
	case kindOnes:
		return ParseOnesComplement(literal)
	case kindTwos:
		return ParseTwosComplement(literal)
	case kindSignMagnitude:
		return ParseSignMagnitude(literal)
	case kindFloat:
		return ParseFloat(literal)
	case kindRoman:
		return ParseRoman(literal)
	case kindUnary:
		return ParseUnary(literal)
	}
	return Value{}, ErrUnknownEncoding.New(e.raw())
}

// encode renders v in encoding e, after checking that e can hold its sign
// and fractional part.
func encode(v Value, e Encoding) (string, error) {
	m, err := Lookup(e)
	if err != nil {
		return "", err
	}
	switch {
	case v.IsNeg() && !m.NegativeDest:
		return "", ErrNegativeNotAllowed.New(m.Name)
	case !v.IsInt() && !m.Fraction:
		return "", ErrFractionNotAllowed.New(m.Name)
	}
	switch e.kind {
	case kindBinary, kindDecimal, kindRadix:
		return v.Radix(e.Base()), nil
	case kindBCD:
		return v.BCD()
	case kindOnes:
		return v.OnesComplement()
	case kindTwos:
		return v.TwosComplement()
	case kindSignMagnitude:
		return v.SignMagnitude()
	case kindFloat:
		return v.Float(), nil
	case kindRoman:
		return v.Roman()
	case kindUnary:
		return v.Unary()
	}
	return "", ErrUnknownEncoding.New(e.raw())
}

// pad widens a rendered literal of encoding e to width digits.
func pad(s string, e Encoding, width int) (string, error) {
	switch e.kind {
	case kindOnes, kindTwos:
		if len(s) > width {
			return "", ErrWidthTooSmall.New(width, len(s))
		}
		return strings.Repeat(s[:1], width-len(s)) + s, nil
	case kindSignMagnitude:
		if len(s) > width {
			return "", ErrWidthTooSmall.New(width, len(s))
		}
		return s[:1] + strings.Repeat("0", width-len(s)) + s[1:], nil
	case kindBinary, kindDecimal, kindRadix:
		sign, digits := "", s
		if strings.HasPrefix(digits, "-") {
			sign, digits = "-", digits[1:]
		}
		n := strings.IndexByte(digits, '.')
		if n < 0 {
			n = len(digits)
		}
		if n > width {
			return "", ErrWidthTooSmall.New(width, n)
		}
		return sign + strings.Repeat("0", width-n) + digits, nil
	}
	return s, nil
}
