package baco

import "fmt"

// MustConvert is like [Convert] but panics if the literal cannot be converted.
func MustConvert(literal string, src, dst Encoding) string {
	s, err := Convert(literal, src, dst)
	if err != nil {
		panic(fmt.Sprintf("MustConvert(%q, %v, %v) failed: %v", literal, src, dst, err))
	}
	return s
}

// MustRadix is like [Radix] but panics if the base is out of range.
// It simplifies safe initialization of global variables holding encodings.
func MustRadix(base int) Encoding {
	e, err := Radix(base)
	if err != nil {
		panic(fmt.Sprintf("MustRadix(%v) failed: %v", base, err))
	}
	return e
}
