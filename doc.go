/*
Package baco converts numerals between encodings: positional bases from 2 to 36,
Binary-Coded Decimal, ones' and two's complement, sign-magnitude, IEEE-754
floating point, unary and Roman numerals.

Every conversion passes through a single canonical number, [Value],
so that any pair of encodings can be converted with one decoder and one encoder.

# Representation

[Value] is a struct with three parts:

  - Sign: a boolean indicating whether the value is negative.
  - Integer part: an unsigned integer of up to 19 decimal digits.
  - Fractional part: exactly 20 decimal digits, stored as two halves of 10 digits.

The numerical value is calculated as:

  - -(Integer + Fraction / 10^20), if Sign is true.
  - Integer + Fraction / 10^20, if Sign is false.

Fractions are truncated towards zero, never rounded.
For example, 1/3 is 0.33333333333333333333 and 0.1 in base 3 is
0.33333333333333333333 as well.

Negative zero is not supported: a value with zero magnitude is always positive.

# Encodings

The closed set of encodings and their capabilities:

	| Encoding        | Negative source | Negative destination | Fraction | Alphabet | Width |
	| --------------- | --------------- | -------------------- | -------- | -------- | ----- |
	| [BCD]           | no              | no                   | no       | -        | no    |
	| [Binary]        | yes             | yes                  | yes      | base 2   | yes   |
	| [OnesComplement]| no              | yes                  | no       | base 2   | yes   |
	| [TwosComplement]| no              | yes                  | no       | base 2   | yes   |
	| [Decimal]       | yes             | yes                  | yes      | base 10  | yes   |
	| [Float]         | no              | yes                  | yes      | base 2   | no    |
	| [SignMagnitude] | no              | yes                  | no       | base 2   | yes   |
	| [Roman]         | no              | no                   | no       | -        | no    |
	| [Unary]         | no              | no                   | no       | base 1   | no    |
	| [Radix] (2..36) | yes             | yes                  | yes      | base N   | yes   |

Encodings that carry the sign in the bit pattern itself, such as two's complement,
accept only unsigned literals as a source: the leading bit is the sign.
See [Lookup] for the metadata of an encoding.

# Conversions

The package provides functions for converting literals:

  - between any two encodings:
    [Convert], [ConvertWidth], [MustConvert].
  - from/to a positional base:
    [ParseRadix], [Value.Radix].
  - from/to BCD:
    [ParseBCD], [Value.BCD].
  - from/to signed binary:
    [ParseOnesComplement], [Value.OnesComplement],
    [ParseTwosComplement], [Value.TwosComplement],
    [ParseSignMagnitude], [Value.SignMagnitude].
  - from/to floating point:
    [ParseFloat], [Value.Float], [NewValueFromFloat64], [Value.Float64].
  - from/to Roman and unary numerals:
    [ParseRoman], [Value.Roman], [ParseUnary], [Value.Unary].
  - from/to string and int64:
    [Parse], [Value.String], [NewValue], [Value.Int64].

A conversion is carried out in three steps:

 1. The literal is checked by [Validate] against the grammar of the source
    and the capabilities of both encodings.
 2. The literal is decoded to a [Value].
 3. The value is checked against the capabilities of the destination and
    rendered.

# Errors

All functions except the Must variants are panic-free and pure.
Errors are values of the kinds declared by the package, such as
[ErrNegativeNotAllowed] or [ErrOverflow], and can be tested with Kind.Is:

	_, err := baco.Convert("-5", baco.Decimal, baco.Unary)
	if baco.ErrNegativeNotAllowed.Is(err) {
		...
	}

Overflow is returned when the integer part of a value exceeds 19 digits,
when a literal is longer than [MaxLiteral], or when a unary numeral would
exceed [MaxUnary] marks.
Unlike standard integers, there is no "wrap around".
*/
package baco
