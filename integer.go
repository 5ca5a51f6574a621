package baco

import (
	"math/big"
	"sync"
)

// fint (Fast INTeger) is a wrapper around uint64.
type fint uint64

// maxFint is a maximum value of fint.
// It bounds the integer part of a [Value] to [MaxIntDigits] decimal digits.
const maxFint = 9_999_999_999_999_999_999

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]fint{
	1,                          // 10^0
	10,                         // 10^1
	100,                        // 10^2
	1_000,                      // 10^3
	10_000,                     // 10^4
	100_000,                    // 10^5
	1_000_000,                  // 10^6
	10_000_000,                 // 10^7
	100_000_000,                // 10^8
	1_000_000_000,              // 10^9
	10_000_000_000,             // 10^10
	100_000_000_000,            // 10^11
	1_000_000_000_000,          // 10^12
	10_000_000_000_000,         // 10^13
	100_000_000_000_000,        // 10^14
	1_000_000_000_000_000,      // 10^15
	10_000_000_000_000_000,     // 10^16
	100_000_000_000_000_000,    // 10^17
	1_000_000_000_000_000_000,  // 10^18
	10_000_000_000_000_000_000, // 10^19
}

// add calculates x + y and checks overflow.
func (x fint) add(y fint) (z fint, ok bool) {
	if x > maxFint || y > maxFint || maxFint-x < y {
		return 0, false
	}
	z = x + y
	return z, true
}

// mul calculates x * y and checks overflow.
func (x fint) mul(y fint) (z fint, ok bool) {
	if y == 0 {
		return 0, true
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	if z > maxFint {
		return 0, false
	}
	return z, true
}

// fma (Fused Multiply and Addition) calculates x * base + d and checks overflow.
// It appends digit d to x written in the given base.
func (x fint) fma(base, d fint) (z fint, ok bool) {
	z, ok = x.mul(base)
	if !ok {
		return 0, false
	}
	z, ok = z.add(d)
	if !ok {
		return 0, false
	}
	return z, true
}

// quoRem calculates x div y and x mod y.
// y must not be zero.
func (x fint) quoRem(y fint) (q, r fint) {
	q = x / y
	r = x - q*y
	return q, r
}

// prec returns length of x in decimal digits.
// prec assumes that 0 has no digits.
func (x fint) prec() int {
	left, right := 0, len(pow10)
	for left < right {
		mid := (left + right) / 2
		if x < pow10[mid] {
			right = mid
		} else {
			left = mid + 1
		}
	}
	return left
}

// bint (Big INTeger) is a wrapper around big.Int.
// It is only used as a wide scratch register for fractional digits,
// never as the storage of a [Value].
type bint big.Int

// bhalf is 10^halfPrec, the radix of the two fractional halves of a Value.
var bhalf = newBintFromFint(pow10[halfPrec])

// newBintFromFint creates a *big.Int equal to x.
func newBintFromFint(x fint) *bint {
	z := (*bint)(new(big.Int))
	z.setFint(x)
	return z
}

func (z *bint) setFint(x fint) {
	(*big.Int)(z).SetUint64(uint64(x))
}

// fint converts *big.Int to uint64.
// If z cannot be represented as uint64, the result is undefined.
func (z *bint) fint() fint {
	f := (*big.Int)(z).Uint64()
	return fint(f)
}

// mul calculates z = x * y.
func (z *bint) mul(x, y *bint) {
	(*big.Int)(z).Mul((*big.Int)(x), (*big.Int)(y))
}

// fma (Fused Multiply and Addition) calculates z = x * base + d.
func (z *bint) fma(x *bint, base, d fint) {
	y := getBint()
	defer putBint(y)
	y.setFint(base)
	z.mul(x, y)
	y.setFint(d)
	(*big.Int)(z).Add((*big.Int)(z), (*big.Int)(y))
}

// pow calculates z = base^power.
// If power is negative, the result is unpredictable.
func (z *bint) pow(base fint, power int) {
	x := getBint()
	defer putBint(x)
	x.setFint(base)
	y := getBint()
	defer putBint(y)
	y.setFint(fint(power))
	(*big.Int)(z).Exp((*big.Int)(x), (*big.Int)(y), nil)
}

// quoRem calculates z and r such that x = z * y + r.
func (z *bint) quoRem(x, y, r *bint) {
	(*big.Int)(z).QuoRem((*big.Int)(x), (*big.Int)(y), (*big.Int)(r))
}

// pool is a cache of reusable *big.Int instances.
var pool = sync.Pool{
	New: func() any {
		return (*bint)(new(big.Int))
	},
}

// getBint obtains a *big.Int from the pool.
func getBint() *bint {
	return pool.Get().(*bint)
}

// putBint returns the *big.Int into the pool.
func putBint(b *bint) {
	pool.Put(b)
}
