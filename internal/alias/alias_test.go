package alias

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govalues/baco"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := map[string]baco.Encoding{
		"BCD":                             baco.BCD,
		"bcd":                             baco.BCD,
		"BIN":                             baco.Binary,
		"binary":                          baco.Binary,
		"2":                               baco.Binary,
		"co1":                             baco.OnesComplement,
		"C2":                              baco.TwosComplement,
		"Two's Complement":                baco.TwosComplement,
		"DEC":                             baco.Decimal,
		"10":                              baco.Decimal,
		"flt":                             baco.Float,
		"hexadecimal":                     baco.Hex,
		"16":                              baco.Hex,
		"MS":                              baco.SignMagnitude,
		"Signed Magnitude Representation": baco.SignMagnitude,
		"oct":                             baco.Octal,
		"ROMAN":                           baco.Roman,
		"unary":                           baco.Unary,
		"base1":                           baco.Unary,
		"BASE1":                           baco.Unary,
		"base16":                          baco.Hex,
		"BASE8":                           baco.Octal,
		"base15":                          baco.MustRadix(15),
		"base36":                          baco.MustRadix(36),
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := Resolve(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestResolve_GenericBases(t *testing.T) {
	t.Parallel()

	for base := baco.MinBase; base <= baco.MaxBase; base++ {
		got, err := Resolve(fmt.Sprintf("base%d", base))
		require.NoError(t, err)
		assert.Equal(t, base, got.Base())
	}
}

func TestResolve_Errors(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "base", "base0", "base37", "basex", "Base15", "base-2", "base+5", "base05", "BASE010", "base 5", "base5 ", "hexa", "co3", "DEC "} {
		t.Run(name, func(t *testing.T) {
			_, err := Resolve(name)
			require.Error(t, err)
			assert.True(t, baco.ErrUnknownEncoding.Is(err), "unexpected error: %v", err)
		})
	}
}

func TestCodifies(t *testing.T) {
	t.Parallel()

	codifies := Codifies()
	require.Len(t, codifies, 11)

	seen := make(map[baco.Encoding]bool)
	for _, c := range codifies {
		require.NotEmpty(t, c.Names)
		assert.False(t, seen[c.Encoding], "%v listed twice", c.Encoding)
		seen[c.Encoding] = true

		// Every name resolves back to its encoding.
		for _, n := range c.Names {
			got, err := Resolve(n)
			require.NoError(t, err)
			assert.Equal(t, c.Encoding, got, n)
		}
	}

	// Codifies returns a copy.
	codifies[0].Encoding = baco.Roman
	assert.Equal(t, baco.BCD, Codifies()[0].Encoding)
}

func TestNames(t *testing.T) {
	t.Parallel()

	names := Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "CO2")
	assert.Contains(t, names, "unary")
	assert.NotContains(t, names, "base15")
}
