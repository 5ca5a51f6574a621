package baco

import "fmt"

// digitValue returns the value of an alphanumeric digit, case-insensitive,
// or -1 if c is not alphanumeric.
func digitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	}
	return -1
}

// digitChar returns the upper case digit for values 0 to 35.
func digitChar(d fint) byte {
	if d < 10 {
		return byte(d) + '0'
	}
	return byte(d-10) + 'A'
}

// ParseRadix converts a positional literal in the given base to a value.
// The input string must follow the grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0'-'9' | 'A'-'Z' | 'a'-'z' }
//	significand    ::= digits '.' digits | '.' digits | digits '.' | digits
//	numeric-string ::= [sign] significand
//
// Letters are case-insensitive and stand for the digits 10 to 35.
// The fractional part is truncated towards zero to [Precision] decimal digits.
//
// ParseRadix returns an error:
//   - if base is less than [MinBase] or greater than [MaxBase];
//   - if a character is not a digit of the base;
//   - if the string has no digits;
//   - if the integer part of the result has more than [MaxIntDigits] digits.
func ParseRadix(s string, base int) (Value, error) {
	if base < MinBase || base > MaxBase {
		return Value{}, ErrUnknownEncoding.New(fmt.Sprintf("base%d", base))
	}

	var (
		pos    int
		width  int
		neg    bool
		intg   fint
		fhi    fint
		flo    fint
		hasdig bool
		ok     bool
	)

	width = len(s)

	// Sign
	if pos < width && s[pos] == '-' {
		neg = true
		pos++
	}

	// Integer
	for pos < width && s[pos] != '.' {
		d := digitValue(s[pos])
		if d < 0 || d >= base {
			return Value{}, ErrDigitOutOfRange.New(string(s[pos]), base)
		}
		intg, ok = intg.fma(fint(base), fint(d))
		if !ok {
			return Value{}, overflowError(s)
		}
		hasdig = true
		pos++
	}

	// Fraction
	if pos < width && s[pos] == '.' {
		pos++
		start := pos
		for pos < width {
			d := digitValue(s[pos])
			if d < 0 || d >= base {
				return Value{}, ErrDigitOutOfRange.New(string(s[pos]), base)
			}
			hasdig = true
			pos++
		}
		fhi, flo = parseFraction(s[start:pos], base)
	}

	if !hasdig {
		return Value{}, ErrMalformedNumber.New(s, "no digits")
	}

	return newValue(neg, intg, fhi, flo), nil
}

// parseFraction computes floor(0.frac * 10^Precision) for digits frac in the
// given base and splits the result into its two halves.
// The digits must have been validated.
func parseFraction(frac string, base int) (hi, lo fint) {
	if len(frac) == 0 {
		return 0, 0
	}

	num := getBint()
	defer putBint(num)
	num.setFint(0)
	for i := 0; i < len(frac); i++ {
		num.fma(num, fint(base), fint(digitValue(frac[i])))
	}

	// num / base^len(frac) is the exact fraction
	den := getBint()
	defer putBint(den)
	den.pow(fint(base), len(frac))
	scale := getBint()
	defer putBint(scale)
	scale.pow(10, Precision)
	num.mul(num, scale)

	rem := getBint()
	defer putBint(rem)
	num.quoRem(num, den, rem)
	num.quoRem(num, bhalf, rem)
	return num.fint(), rem.fint()
}

// Radix returns the literal of v in the given base.
// The integer part is produced by repeated division, the fractional part,
// if not zero, by exactly [Precision] multiplications by the base.
// Fractions that do not terminate in the base are truncated.
// Digits above 9 are written as upper case letters.
//
// Radix panics if base is less than [MinBase] or greater than [MaxBase].
func (v Value) Radix(base int) string {
	if base < MinBase || base > MaxBase {
		panic(fmt.Sprintf("%q.Radix(%v) failed: %v", v, base, ErrUnknownEncoding.New(fmt.Sprintf("base%d", base))))
	}
	return string(v.appendRadix(nil, base))
}

func (v Value) appendRadix(buf []byte, base int) []byte {
	var (
		tmp  [1 + 64]byte // sign and 64 binary digits hold any integer part
		pos  int
		b    fint
		coef fint
		dig  fint
	)

	pos = len(tmp) - 1
	b = fint(base)
	coef = v.intg

	// Integer
	for {
		coef, dig = coef.quoRem(b)
		tmp[pos] = digitChar(dig)
		pos--
		if coef == 0 {
			break
		}
	}

	// Sign
	if v.neg {
		tmp[pos] = '-'
		pos--
	}

	buf = append(buf, tmp[pos+1:]...)
	if v.IsInt() {
		return buf
	}

	// Fraction
	buf = append(buf, '.')
	unit := pow10[halfPrec]
	hi, lo := v.fhi, v.flo
	for i := 0; i < Precision; i++ {
		var carry fint
		carry, lo = (lo * b).quoRem(unit)
		dig, hi = (hi*b + carry).quoRem(unit)
		buf = append(buf, digitChar(dig))
	}
	return buf
}
