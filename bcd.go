package baco

import "fmt"

// ParseBCD converts a Binary-Coded Decimal literal to a value.
// Every group of 4 bits encodes one decimal digit, most significant first.
// BCD carries neither sign nor fraction.
//
// ParseBCD returns an error:
//   - if the length of the string is 0 or not a multiple of 4;
//   - if a group is not one of the ten patterns 0000 to 1001;
//   - if the result has more than [MaxIntDigits] digits.
func ParseBCD(s string) (Value, error) {
	switch {
	case len(s) == 0:
		return Value{}, ErrMalformedBCD.New(s, "no digits")
	case len(s)%4 != 0:
		return Value{}, ErrMalformedBCD.New(s, fmt.Sprintf("length %d is not a multiple of 4", len(s)))
	}

	var (
		dec fint
		ok  bool
	)
	for i := 0; i < len(s); i += 4 {
		var d fint
		for _, c := range []byte(s[i : i+4]) {
			if c != '0' && c != '1' {
				return Value{}, ErrMalformedBCD.New(s, fmt.Sprintf("%q is not a bit", c))
			}
			d = d<<1 | fint(c-'0')
		}
		if d > 9 {
			return Value{}, ErrMalformedBCD.New(s, fmt.Sprintf("group %v is not a decimal digit", s[i:i+4]))
		}
		dec, ok = dec.fma(10, d)
		if !ok {
			return Value{}, overflowError(s)
		}
	}
	return newValue(false, dec, 0, 0), nil
}

// BCD returns the Binary-Coded Decimal literal of v, 4 bits per decimal digit.
//
// BCD returns an error if v is negative or has a fractional part.
func (v Value) BCD() (string, error) {
	switch {
	case v.neg:
		return "", ErrNegativeNotAllowed.New(BCD)
	case !v.IsInt():
		return "", ErrFractionNotAllowed.New(BCD)
	}
	n := max(v.intg.prec(), 1)
	buf := make([]byte, 0, 4*n)
	for i := n - 1; i >= 0; i-- {
		_, d := (v.intg / pow10[i]).quoRem(10)
		buf = append(buf, '0'+byte(d>>3&1), '0'+byte(d>>2&1), '0'+byte(d>>1&1), '0'+byte(d&1))
	}
	return string(buf), nil
}
