package baco

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// floatBits is the width of a floating-point literal.
const floatBits = 64

// ParseFloat converts the bit pattern of an IEEE-754 binary64 number to a value.
// The literal holds exactly 64 binary digits: the sign bit, 11 bits of biased
// exponent and 52 bits of fraction.
// The number is read as the shortest decimal that rounds back to the same
// float64, truncated to [Precision] fractional digits.
//
// ParseFloat returns an error:
//   - if the literal is not 64 binary digits long or contains a decimal point;
//   - if the pattern is a NaN or an infinity;
//   - if the integer part of the number has more than [MaxIntDigits] digits.
func ParseFloat(bits string) (Value, error) {
	if len(bits) != floatBits {
		return Value{}, ErrMalformedFloat.New(bits, fmt.Sprintf("%v bit(s), want %v", len(bits), floatBits))
	}
	var u uint64
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		switch {
		case c == '.':
			return Value{}, ErrMalformedFloat.New(bits, "a bit pattern has no decimal point")
		case c != '0' && c != '1':
			return Value{}, ErrDigitOutOfRange.New(string(c), 2)
		}
		u = u<<1 | uint64(c-'0')
	}
	f := math.Float64frombits(u)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrMalformedFloat.New(bits, "not a finite number")
	}
	return NewValueFromFloat64(f)
}

// NewValueFromFloat64 converts a float to a value, using the shortest decimal
// that rounds back to f and truncating it to [Precision] fractional digits.
//
// NewValueFromFloat64 returns an error:
//   - if f is a NaN or an infinity;
//   - if the integer part of f has more than [MaxIntDigits] digits.
func NewValueFromFloat64(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, ErrMalformedFloat.New(f, "not a finite number")
	}
	d := decimal.NewFromFloat(f).Truncate(Precision)
	return Parse(d.String())
}

// Float64 returns the nearest float64 to v.
func (v Value) Float64() float64 {
	f, _ := decimal.RequireFromString(v.String()).Float64()
	return f
}

// Float returns the IEEE-754 binary64 bit pattern of the float64 nearest to v,
// as 64 binary digits, most significant first.
func (v Value) Float() string {
	u := math.Float64bits(v.Float64())
	var buf [floatBits]byte
	for i := range buf {
		buf[len(buf)-1-i] = byte(u>>i&1) + '0'
	}
	return string(buf[:])
}
