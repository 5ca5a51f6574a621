package baco

import (
	"fmt"
	"strings"
)

// MaxUnary is the largest value rendered in unary notation.
const MaxUnary = 1 << 16

// unaryMark is the single symbol of the unary notation.
const unaryMark = '0'

// ParseUnary converts a unary literal, a run of 0 marks, to a value
// equal to the number of marks.
// An empty literal is 0.
func ParseUnary(s string) (Value, error) {
	for i := 0; i < len(s); i++ {
		if s[i] != unaryMark {
			return Value{}, ErrDigitOutOfRange.New(string(s[i]), 1)
		}
	}
	return newValue(false, fint(len(s)), 0, 0), nil
}

// Unary returns a run of v marks.
// Zero is the empty string.
//
// Unary returns an error if v is negative, has a fractional part,
// or is greater than [MaxUnary].
func (v Value) Unary() (string, error) {
	switch {
	case v.neg:
		return "", ErrNegativeNotAllowed.New(Unary)
	case !v.IsInt():
		return "", ErrFractionNotAllowed.New(Unary)
	case v.intg > MaxUnary:
		return "", ErrOverflow.New(v, fmt.Sprintf("at most %v unary marks are rendered", MaxUnary))
	}
	return strings.Repeat(string(unaryMark), int(v.intg)), nil
}
