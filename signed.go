package baco

// parseBits converts an unsigned binary integer to its magnitude.
// An empty string is 0.
func parseBits(bits string) (fint, error) {
	var (
		mag fint
		ok  bool
	)
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if c != '0' && c != '1' {
			return 0, ErrDigitOutOfRange.New(string(c), 2)
		}
		mag, ok = mag.fma(2, fint(c-'0'))
		if !ok {
			return 0, overflowError(bits)
		}
	}
	return mag, nil
}

// parseComplemented is like parseBits, but reads every bit inverted.
func parseComplemented(bits string) (fint, error) {
	var (
		mag fint
		ok  bool
	)
	for i := 0; i < len(bits); i++ {
		c := bits[i]
		if c != '0' && c != '1' {
			return 0, ErrDigitOutOfRange.New(string(c), 2)
		}
		mag, ok = mag.fma(2, fint('1'-c))
		if !ok {
			return 0, overflowError(bits)
		}
	}
	return mag, nil
}

// ParseOnesComplement converts a ones' complement bit string to a value.
// A leading 1 marks a negative number whose magnitude is the complement of
// the bits, a leading 0 a non-negative number.
// There is no fixed width: the leading bit is the sign bit.
func ParseOnesComplement(bits string) (Value, error) {
	if bits == "" {
		return Value{}, ErrMalformedNumber.New(bits, "no digits")
	}
	if bits[0] == '1' {
		mag, err := parseComplemented(bits)
		if err != nil {
			return Value{}, err
		}
		return newValue(true, mag, 0, 0), nil
	}
	mag, err := parseBits(bits)
	if err != nil {
		return Value{}, err
	}
	return newValue(false, mag, 0, 0), nil
}

// ParseTwosComplement converts a two's complement bit string to a value.
// A leading 1 marks a negative number equal to its ones' complement
// reading minus one.
func ParseTwosComplement(bits string) (Value, error) {
	v, err := ParseOnesComplement(bits)
	if err != nil {
		return Value{}, err
	}
	if bits[0] != '1' {
		return v, nil
	}
	// Ones' complement of all ones is zero, so the sign is restored
	// after the magnitude is incremented.
	v, err = v.incAbs()
	if err != nil {
		return Value{}, err
	}
	return newValue(true, v.intg, 0, 0), nil
}

// ParseSignMagnitude converts a sign-magnitude bit string to a value.
// The first bit is the sign, the remaining bits are the binary magnitude.
func ParseSignMagnitude(bits string) (Value, error) {
	if bits == "" {
		return Value{}, ErrMalformedNumber.New(bits, "no digits")
	}
	if bits[0] != '0' && bits[0] != '1' {
		return Value{}, ErrDigitOutOfRange.New(string(bits[0]), 2)
	}
	mag, err := parseBits(bits[1:])
	if err != nil {
		return Value{}, err
	}
	return newValue(bits[0] == '1', mag, 0, 0), nil
}

// OnesComplement returns the ones' complement literal of v: the binary
// magnitude prefixed with a 0 for non-negative values, or the complemented
// magnitude prefixed with a 1 for negative values.
// The literal is only as wide as the magnitude plus the sign bit.
//
// OnesComplement returns an error if v has a fractional part.
func (v Value) OnesComplement() (string, error) {
	if !v.IsInt() {
		return "", ErrFractionNotAllowed.New(OnesComplement)
	}
	return string(v.appendOnes(nil)), nil
}

func (v Value) appendOnes(buf []byte) []byte {
	if v.neg {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '0')
	}
	start := len(buf)
	buf = v.Abs().appendRadix(buf, 2)
	if v.neg {
		for i := start; i < len(buf); i++ {
			buf[i] = '0' + '1' - buf[i]
		}
	}
	return buf
}

// TwosComplement returns the two's complement literal of v: the ones'
// complement literal, incremented by one for negative values.
//
// TwosComplement returns an error if v has a fractional part.
func (v Value) TwosComplement() (string, error) {
	if !v.IsInt() {
		return "", ErrFractionNotAllowed.New(TwosComplement)
	}
	bits := v.appendOnes(nil)
	if v.neg {
		bits = increment(bits)
	}
	return string(bits), nil
}

// increment adds 1 to a binary number with a ripple carry: trailing ones
// become zeros and the first zero becomes a one.
// If all bits are ones, the number grows by a leading one.
func increment(bits []byte) []byte {
	for i := len(bits) - 1; i >= 0; i-- {
		if bits[i] == '0' {
			bits[i] = '1'
			return bits
		}
		bits[i] = '0'
	}
	return append([]byte{'1'}, bits...)
}

// SignMagnitude returns the sign-magnitude literal of v: the binary
// magnitude prefixed with 1 for negative values and 0 otherwise.
//
// SignMagnitude returns an error if v has a fractional part.
func (v Value) SignMagnitude() (string, error) {
	if !v.IsInt() {
		return "", ErrFractionNotAllowed.New(SignMagnitude)
	}
	buf := make([]byte, 0, 1+64)
	if v.neg {
		buf = append(buf, '1')
	} else {
		buf = append(buf, '0')
	}
	return string(v.Abs().appendRadix(buf, 2)), nil
}
