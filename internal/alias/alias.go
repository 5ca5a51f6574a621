// Package alias resolves the encoding names accepted on the command line,
// such as "bin", "CO2" or "base15", to [baco.Encoding] values.
package alias

import (
	"sort"
	"strconv"
	"strings"

	"github.com/govalues/baco"
)

// radixPrefix introduces a generic base, as in "base15" or "BASE15".
const radixPrefix = "base"

// Codify is an encoding together with every name it answers to.
// The first name is the one listed in help messages.
type Codify struct {
	Encoding baco.Encoding
	Names    []string
}

// codifies lists the named encodings in the order of the help message.
var codifies = []Codify{
	{baco.BCD, []string{"BCD", "bcd", "Binary Coded Decimal"}},
	{baco.Binary, []string{"BIN", "bin", "binary", "BINARY", "2", "Binary Base"}},
	{baco.OnesComplement, []string{"CO1", "co1", "c1", "C1", "Ones' Complement"}},
	{baco.TwosComplement, []string{"CO2", "co2", "c2", "C2", "Two's Complement"}},
	{baco.Decimal, []string{"DEC", "dec", "decimal", "DECIMAL", "10", "Decimal Base"}},
	{baco.Float, []string{"FLT", "flt", "Floating Point"}},
	{baco.Hex, []string{"HEX", "hex", "hexadecimal", "HEXADECIMAL", "16", "Hexadecimal Base"}},
	{baco.SignMagnitude, []string{"MES", "mes", "ms", "MS", "Signed Magnitude Representation"}},
	{baco.Octal, []string{"OCT", "oct", "octal", "OCTAL", "8", "Octal Base"}},
	{baco.Roman, []string{"ROM", "rom", "roman", "ROMAN", "Roman Numerals"}},
	{baco.Unary, []string{"UNARY", "unary", "Unary Base"}},
}

var byName = func() map[string]baco.Encoding {
	m := make(map[string]baco.Encoding)
	for _, c := range codifies {
		for _, n := range c.Names {
			m[n] = c.Encoding
		}
	}
	return m
}()

// Resolve returns the encoding with the given name.
// Besides the names listed by [Codifies], it accepts "baseN" and "BASEN"
// for N from 1 to 36, where base1 is the unary encoding.
//
// Resolve returns [baco.ErrUnknownEncoding] for any other name.
func Resolve(name string) (baco.Encoding, error) {
	if e, ok := byName[name]; ok {
		return e, nil
	}
	if strings.HasPrefix(name, radixPrefix) || strings.HasPrefix(name, strings.ToUpper(radixPrefix)) {
		return resolveBase(name, name[len(radixPrefix):])
	}
	return baco.Encoding{}, baco.ErrUnknownEncoding.New(name)
}

// resolveBase reads the decimal suffix of a "baseN" name.
// The suffix must be plain digits without a leading zero.
func resolveBase(name, digits string) (baco.Encoding, error) {
	if digits == "" || digits[0] == '0' || strings.Trim(digits, "0123456789") != "" {
		return baco.Encoding{}, baco.ErrUnknownEncoding.New(name)
	}
	base, err := strconv.Atoi(digits)
	if err != nil {
		return baco.Encoding{}, baco.ErrUnknownEncoding.New(name)
	}
	if base == 1 {
		return baco.Unary, nil
	}
	e, err := baco.Radix(base)
	if err != nil {
		return baco.Encoding{}, baco.ErrUnknownEncoding.New(name)
	}
	return e, nil
}

// Codifies returns the named encodings in help order.
func Codifies() []Codify {
	out := make([]Codify, len(codifies))
	copy(out, codifies)
	return out
}

// Names returns every accepted fixed name, sorted.
func Names() []string {
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
