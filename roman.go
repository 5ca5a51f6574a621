package baco

import (
	"fmt"
	"strings"
)

// MaxRoman is the largest value written in classical Roman notation.
const MaxRoman = 3999

// romanZero is the token for 0, from the Latin "nulla".
const romanZero = "NULL"

// romanSymbol returns the priority and the value of a Roman symbol,
// case-insensitive.
// Priorities increase with value, from 1 for I to 7 for M.
// Zero priority means c is not a Roman symbol.
func romanSymbol(c byte) (priority int, value fint) {
	switch c {
	case 'I', 'i':
		return 1, 1
	case 'V', 'v':
		return 2, 5
	case 'X', 'x':
		return 3, 10
	case 'L', 'l':
		return 4, 50
	case 'C', 'c':
		return 5, 100
	case 'D', 'd':
		return 6, 500
	case 'M', 'm':
		return 7, 1000
	}
	return 0, 0
}

// romanTable lists the symbols and subtractive pairs used for rendering,
// largest value first.
var romanTable = [...]struct {
	value  fint
	symbol string
}{
	{1000, "M"},
	{900, "CM"},
	{500, "D"},
	{400, "CD"},
	{100, "C"},
	{90, "XC"},
	{50, "L"},
	{40, "XL"},
	{10, "X"},
	{9, "IX"},
	{5, "V"},
	{4, "IV"},
	{1, "I"},
}

// ParseRoman converts a Roman numeral to a value.
// The literal is scanned right to left. A symbol is added if its priority is
// at least the highest priority seen so far, which it then becomes;
// otherwise it is a subtractive prefix and is subtracted.
// Symbols are case-insensitive and the token "NULL" stands for 0.
// No upper bound is enforced, so "MMMM" is 4000.
//
// ParseRoman returns an error:
//   - if the string is empty or contains a character outside IVXLCDM;
//   - if the subtractive prefixes outweigh the rest of the numeral;
//   - if the result has more than [MaxIntDigits] digits.
func ParseRoman(s string) (Value, error) {
	if strings.EqualFold(s, romanZero) {
		return Value{}, nil
	}
	if s == "" {
		return Value{}, ErrMalformedRoman.New(s, "no symbols")
	}

	var (
		highest int
		added   fint
		taken   fint
		ok      bool
	)
	for i := len(s) - 1; i >= 0; i-- {
		priority, value := romanSymbol(s[i])
		if priority == 0 {
			return Value{}, ErrMalformedRoman.New(s, fmt.Sprintf("unexpected %q", s[i]))
		}
		if priority >= highest {
			highest = priority
			added, ok = added.add(value)
		} else {
			taken, ok = taken.add(value)
		}
		if !ok {
			return Value{}, overflowError(s)
		}
	}
	if taken > added {
		return Value{}, ErrMalformedRoman.New(s, "subtractive prefixes outweigh the numeral")
	}
	return newValue(false, added-taken, 0, 0), nil
}

// Roman returns the Roman numeral of v using the greedy subtractive
// algorithm: 4 is IV, 9 is IX, 40 is XL, 90 is XC, 400 is CD, 900 is CM.
// Zero is written as "NULL".
//
// Roman returns an error if v is negative, has a fractional part,
// or is greater than [MaxRoman].
func (v Value) Roman() (string, error) {
	switch {
	case v.neg:
		return "", ErrNegativeNotAllowed.New(Roman)
	case !v.IsInt():
		return "", ErrFractionNotAllowed.New(Roman)
	case v.IsZero():
		return romanZero, nil
	case v.intg > MaxRoman:
		return "", ErrRomanRange.New(v, MaxRoman)
	}
	var sb strings.Builder
	n := v.intg
	for _, r := range romanTable {
		for n >= r.value {
			sb.WriteString(r.symbol)
			n -= r.value
		}
	}
	return sb.String(), nil
}
