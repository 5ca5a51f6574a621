package baco

import (
	"encoding"
	"fmt"
	"math"
	"testing"
	"unsafe"
)

func TestValue_ZeroValue(t *testing.T) {
	got := Value{}
	want := MustParse("0")
	if got != want {
		t.Errorf("Value{} = %q, want %q", got, want)
	}
}

func TestValue_Size(t *testing.T) {
	v := Value{}
	got := unsafe.Sizeof(v)
	want := uintptr(32)
	if got != want {
		t.Errorf("unsafe.Sizeof(%q) = %v, want %v", v, got, want)
	}
}

func TestValue_Interfaces(t *testing.T) {
	var v any

	v = Value{}
	_, ok := v.(fmt.Stringer)
	if !ok {
		t.Errorf("%T does not implement fmt.Stringer", v)
	}
	_, ok = v.(encoding.TextMarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextMarshaler", v)
	}

	v = &Value{}
	_, ok = v.(encoding.TextUnmarshaler)
	if !ok {
		t.Errorf("%T does not implement encoding.TextUnmarshaler", v)
	}
}

func TestNewValue(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{math.MinInt64, "-9223372036854775808"},
		{-1, "-1"},
		{0, "0"},
		{1, "1"},
		{math.MaxInt64, "9223372036854775807"},
	}
	for _, tt := range tests {
		got := NewValue(tt.n)
		if got.String() != tt.want {
			t.Errorf("NewValue(%v) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			neg  bool
			intg fint
			fhi  fint
			flo  fint
		}{
			{"0", false, 0, 0, 0},
			{"-0", false, 0, 0, 0},
			{"-0.000", false, 0, 0, 0},
			{"1", false, 1, 0, 0},
			{"-1", true, 1, 0, 0},
			{"0.5", false, 0, 5_000_000_000, 0},
			{".5", false, 0, 5_000_000_000, 0},
			{"5.", false, 5, 0, 0},
			{"18.05", false, 18, 500_000_000, 0},
			{"0.00000000000000000001", false, 0, 0, 1},
			{"0.000000000000000000009", false, 0, 0, 0},
			{"-0.000000000000000000009", false, 0, 0, 0},
			{"0.12345678901234567890", false, 0, 1_234_567_890, 1_234_567_890},
			{"0.123456789012345678909", false, 0, 1_234_567_890, 1_234_567_890},
			{"9999999999999999999", false, maxFint, 0, 0},
			{"-9999999999999999999.99999999999999999999", true, maxFint, 9_999_999_999, 9_999_999_999},
			{"00000000000000000000000001", false, 1, 0, 0},
		}
		for _, tt := range tests {
			got, err := Parse(tt.s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", tt.s, err)
				continue
			}
			want := Value{neg: tt.neg, intg: tt.intg, fhi: tt.fhi, flo: tt.flo}
			if got != want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.s, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"empty":         "",
			"sign only":     "-",
			"point only":    ".",
			"sign point":    "-.",
			"plus sign":     "+1",
			"double sign":   "--1",
			"inner sign":    "1-1",
			"double point":  "1.2.3",
			"letter":        "1a",
			"space":         " 1",
			"exponent":      "1e5",
			"overflow 1":    "10000000000000000000",
			"overflow 2":    "-10000000000000000000.5",
			"overflow 3":    "99999999999999999999",
			"unicode digit": "١",
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Parse(tt)
				if err == nil {
					t.Errorf("Parse(%q) did not fail", tt)
				}
			})
		}
	})

	t.Run("error kind", func(t *testing.T) {
		_, err := Parse("10000000000000000000")
		if !ErrOverflow.Is(err) {
			t.Errorf("Parse(%q) = %v, want %v", "10000000000000000000", err, ErrOverflow)
		}
		_, err = Parse("")
		if !ErrMalformedNumber.Is(err) {
			t.Errorf("Parse(%q) = %v, want %v", "", err, ErrMalformedNumber)
		}
		_, err = Parse("1a")
		if !ErrDigitOutOfRange.Is(err) {
			t.Errorf("Parse(%q) = %v, want %v", "1a", err, ErrDigitOutOfRange)
		}
	})
}

func TestMustParse(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParse(\".\") did not panic")
			}
		}()
		MustParse(".")
	})
}

func TestValue_String(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{Value{}, "0"},
		{Value{intg: 1}, "1"},
		{Value{neg: true, intg: 1}, "-1"},
		{Value{fhi: 5_000_000_000}, "0.5"},
		{Value{neg: true, fhi: 5_000_000_000}, "-0.5"},
		{Value{flo: 1}, "0.00000000000000000001"},
		{Value{fhi: 1}, "0.0000000001"},
		{Value{intg: 18, fhi: 500_000_000}, "18.05"},
		{Value{intg: 12, fhi: 3_400_000_000, flo: 5_600_000_000}, "12.340000000056"},
		{Value{neg: true, intg: maxFint, fhi: 9_999_999_999, flo: 9_999_999_999}, "-9999999999999999999.99999999999999999999"},
	}
	for _, tt := range tests {
		got := tt.v.String()
		if got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestValue_UnmarshalText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		var got Value
		err := got.UnmarshalText([]byte("-12.5"))
		if err != nil {
			t.Fatalf("UnmarshalText(%q) failed: %v", "-12.5", err)
		}
		want := MustParse("-12.5")
		if got != want {
			t.Errorf("UnmarshalText(%q) = %q, want %q", "-12.5", got, want)
		}
		text, err := got.MarshalText()
		if err != nil {
			t.Fatalf("%q.MarshalText() failed: %v", got, err)
		}
		if string(text) != "-12.5" {
			t.Errorf("%q.MarshalText() = %q, want %q", got, text, "-12.5")
		}
	})

	t.Run("error", func(t *testing.T) {
		var got Value
		err := got.UnmarshalText([]byte("1..2"))
		if err == nil {
			t.Errorf("UnmarshalText(%q) did not fail", "1..2")
		}
	})
}

func TestValue_Int64(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    string
			want int64
		}{
			{"-9223372036854775808", math.MinInt64},
			{"-1", -1},
			{"0", 0},
			{"1", 1},
			{"9223372036854775807", math.MaxInt64},
		}
		for _, tt := range tests {
			v := MustParse(tt.v)
			got, ok := v.Int64()
			if !ok {
				t.Errorf("%q.Int64() failed", v)
				continue
			}
			if got != tt.want {
				t.Errorf("%q.Int64() = %v, want %v", v, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]string{
			"fraction":    "0.5",
			"overflow 1":  "9223372036854775808",
			"overflow 2":  "-9223372036854775809",
			"overflow 3":  "9999999999999999999",
			"tiny digits": "1.00000000000000000001",
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				v := MustParse(tt)
				_, ok := v.Int64()
				if ok {
					t.Errorf("%q.Int64() did not fail", v)
				}
			})
		}
	})
}

func TestValue_Sign(t *testing.T) {
	tests := []struct {
		v    string
		want int
	}{
		{"-1", -1},
		{"-0.00000000000000000001", -1},
		{"0", 0},
		{"-0", 0},
		{"0.00000000000000000001", 1},
		{"1", 1},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		got := v.Sign()
		if got != tt.want {
			t.Errorf("%q.Sign() = %v, want %v", v, got, tt.want)
		}
		if v.IsNeg() != (tt.want < 0) {
			t.Errorf("%q.IsNeg() = %v, want %v", v, v.IsNeg(), tt.want < 0)
		}
		if v.IsPos() != (tt.want > 0) {
			t.Errorf("%q.IsPos() = %v, want %v", v, v.IsPos(), tt.want > 0)
		}
		if v.IsZero() != (tt.want == 0) {
			t.Errorf("%q.IsZero() = %v, want %v", v, v.IsZero(), tt.want == 0)
		}
	}
}

func TestValue_IsInt(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"0", true},
		{"-12", true},
		{"12.0", true},
		{"0.5", false},
		{"1.00000000000000000001", false},
		{"1.000000000000000000001", true},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		got := v.IsInt()
		if got != tt.want {
			t.Errorf("%q.IsInt() = %v, want %v", v, got, tt.want)
		}
	}
}

func TestValue_Neg(t *testing.T) {
	tests := []struct {
		v, want string
	}{
		{"0", "0"},
		{"1", "-1"},
		{"-1", "1"},
		{"-0.5", "0.5"},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		got := v.Neg()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Neg() = %q, want %q", v, got, want)
		}
	}
}

func TestValue_Abs(t *testing.T) {
	tests := []struct {
		v, want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"-1", "1"},
		{"-0.5", "0.5"},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		got := v.Abs()
		want := MustParse(tt.want)
		if got != want {
			t.Errorf("%q.Abs() = %q, want %q", v, got, want)
		}
	}
}

func TestValue_Cmp(t *testing.T) {
	tests := []struct {
		v, w string
		want int
	}{
		{"-2", "-1", -1},
		{"-1", "-2", 1},
		{"-1", "0", -1},
		{"0", "0", 0},
		{"0", "-0", 0},
		{"1", "1.0", 0},
		{"1", "1.00000000000000000001", -1},
		{"0.00000000000000000002", "0.00000000000000000001", 1},
		{"-0.5", "-0.50000000000000000001", 1},
		{"0.1", "0.09999999999999999999", 1},
		{"2", "1.99999999999999999999", 1},
	}
	for _, tt := range tests {
		v := MustParse(tt.v)
		w := MustParse(tt.w)
		got := v.Cmp(w)
		if got != tt.want {
			t.Errorf("%q.Cmp(%q) = %v, want %v", v, w, got, tt.want)
		}
	}
}

func TestValue_incAbs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v, want string
		}{
			{"0", "1"},
			{"-1", "-2"},
			{"9999999999999999998", "9999999999999999999"},
		}
		for _, tt := range tests {
			v := MustParse(tt.v)
			got, err := v.incAbs()
			if err != nil {
				t.Errorf("%q.incAbs() failed: %v", v, err)
				continue
			}
			want := MustParse(tt.want)
			if got != want {
				t.Errorf("%q.incAbs() = %q, want %q", v, got, want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		v := MustParse("-9999999999999999999")
		_, err := v.incAbs()
		if !ErrOverflow.Is(err) {
			t.Errorf("%q.incAbs() = %v, want %v", v, err, ErrOverflow)
		}
	})
}

func FuzzValue_String(f *testing.F) {
	f.Add(false, uint64(0), uint64(0), uint64(0))
	f.Add(true, uint64(18), uint64(500_000_000), uint64(0))
	f.Add(true, uint64(maxFint), uint64(9_999_999_999), uint64(9_999_999_999))

	f.Fuzz(
		func(t *testing.T, neg bool, intg, fhi, flo uint64) {
			if intg > maxFint || fhi >= uint64(pow10[halfPrec]) || flo >= uint64(pow10[halfPrec]) {
				t.Skip()
				return
			}
			want := newValue(neg, fint(intg), fint(fhi), fint(flo))
			s := want.String()
			got, err := Parse(s)
			if err != nil {
				t.Errorf("Parse(%q) failed: %v", s, err)
				return
			}
			if got != want {
				t.Errorf("Parse(%q) = %+v, want %+v", s, got, want)
			}
		},
	)
}
