package baco

import (
	"fmt"
)

// Value is the canonical signed decimal number every conversion passes through.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A value has three parts:
//
//   - Sign: a boolean indicating whether the value is negative.
//   - Integer part: up to [MaxIntDigits] decimal digits.
//   - Fractional part: exactly [Precision] decimal digits, obtained by
//     truncation towards zero.
//
// Unlike a floating-point number, a value never carries rounding error in
// its integer part, and its fractional part is exact up to [Precision] digits.
// Negative zero is not representable: a value with zero magnitude is never negative.
type Value struct {
	neg  bool // indicates whether the value is negative
	intg fint // the integer part of the magnitude
	fhi  fint // fractional digits 1 to halfPrec, below 10^halfPrec
	flo  fint // fractional digits halfPrec+1 to Precision, below 10^halfPrec
}

const (
	Precision    = 20 // number of fractional digits kept by a value
	MaxIntDigits = 19 // maximum number of digits in the integer part of a value
	halfPrec     = Precision / 2
)

func newValue(neg bool, intg, fhi, flo fint) Value {
	if intg == 0 && fhi == 0 && flo == 0 {
		neg = false
	}
	return Value{neg: neg, intg: intg, fhi: fhi, flo: flo}
}

// NewValue returns a value equal to n.
func NewValue(n int64) Value {
	neg := n < 0
	mag := uint64(n)
	if neg {
		mag = -mag
	}
	return newValue(neg, fint(mag), 0, 0)
}

// Parse converts a decimal string to a value.
// It is equivalent to ParseRadix(s, 10).
func Parse(s string) (Value, error) {
	return ParseRadix(s, 10)
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return v
}

// String method implements the [fmt.Stringer] interface and returns
// the decimal representation of a value.
// Trailing zeros of the fractional part are omitted, and the decimal
// point is omitted for integers.
// The returned string follows the grammar:
//
//	sign           ::= '-'
//	digits         ::= { '0' | '1' | '2' | '3' | '4' | '5' | '6' | '7' | '8' | '9' }
//	significand    ::= digits '.' digits | digits
//	numeric-string ::= [sign] significand
func (v Value) String() string {
	var (
		buf [1 + MaxIntDigits + 1 + Precision]byte
		pos int
		dig fint
	)

	pos = len(buf) - 1

	// Fraction
	if !v.IsInt() {
		lo, hi := v.flo, v.fhi
		trailing := true
		for i := 0; i < Precision; i++ {
			if i < halfPrec {
				lo, dig = lo.quoRem(10)
			} else {
				hi, dig = hi.quoRem(10)
			}
			if trailing && dig == 0 {
				continue
			}
			trailing = false
			buf[pos] = byte(dig) + '0'
			pos--
		}
		buf[pos] = '.'
		pos--
	}

	// Integer
	coef := v.intg
	for {
		coef, dig = coef.quoRem(10)
		buf[pos] = byte(dig) + '0'
		pos--
		if coef == 0 {
			break
		}
	}

	// Sign
	if v.neg {
		buf[pos] = '-'
		pos--
	}

	return string(buf[pos+1:])
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	var err error
	*v, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Also see method [Value.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// IsInt returns true if the fractional part of v is zero.
func (v Value) IsInt() bool {
	return v.fhi == 0 && v.flo == 0
}

// IsZero returns true if v == 0.
func (v Value) IsZero() bool {
	return v.intg == 0 && v.IsInt()
}

// IsNeg returns true if v < 0.
func (v Value) IsNeg() bool {
	return v.neg
}

// IsPos returns true if v > 0.
func (v Value) IsPos() bool {
	return !v.neg && !v.IsZero()
}

// Sign returns:
//
//	-1 if v < 0
//	 0 if v == 0
//	+1 if v > 0
func (v Value) Sign() int {
	switch {
	case v.neg:
		return -1
	case v.IsZero():
		return 0
	}
	return 1
}

// Neg returns a value with the opposite sign.
func (v Value) Neg() Value {
	return newValue(!v.neg, v.intg, v.fhi, v.flo)
}

// Abs returns the absolute value of v.
func (v Value) Abs() Value {
	return newValue(false, v.intg, v.fhi, v.flo)
}

// Cmp compares v and w numerically and returns:
//
//	-1 if v < w
//	 0 if v == w
//	+1 if v > w
func (v Value) Cmp(w Value) int {
	switch {
	case v.Sign() < w.Sign():
		return -1
	case v.Sign() > w.Sign():
		return 1
	}
	c := v.cmpAbs(w)
	if v.neg {
		return -c
	}
	return c
}

// cmpAbs compares |v| and |w|.
func (v Value) cmpAbs(w Value) int {
	for _, p := range [...][2]fint{{v.intg, w.intg}, {v.fhi, w.fhi}, {v.flo, w.flo}} {
		switch {
		case p[0] < p[1]:
			return -1
		case p[0] > p[1]:
			return 1
		}
	}
	return 0
}

// Int64 returns the value as int64.
// The second result is false if v has a fractional part or does not fit into int64.
func (v Value) Int64() (int64, bool) {
	if !v.IsInt() {
		return 0, false
	}
	if v.neg {
		if v.intg > 1<<63 {
			return 0, false
		}
		return -int64(v.intg-1) - 1, true
	}
	if v.intg > 1<<63-1 {
		return 0, false
	}
	return int64(v.intg), true
}

// incAbs returns a value whose magnitude is |v| + 1 and whose sign is the sign of v.
// incAbs is only used for integers.
func (v Value) incAbs() (Value, error) {
	intg, ok := v.intg.add(1)
	if !ok {
		return Value{}, overflowError(v)
	}
	return newValue(v.neg, intg, v.fhi, v.flo), nil
}

// overflowError reports an integer part wider than MaxIntDigits.
func overflowError(what any) error {
	return ErrOverflow.New(what, fmt.Sprintf("the integer part of a %T can have at most %v digit(s)", Value{}, MaxIntDigits))
}
