package f2x

import (
	"errors"
	"slices"

	"github.com/xuganyu96/shamir-secret-sharing/debug"
)

// ErrNotInvertible is returned by ModInv for the zero polynomial, the only
// element of a binary extension field without a multiplicative inverse.
var ErrNotInvertible = errors.New("f2x: element has no multiplicative inverse")

// Wide is a double-width polynomial on 2L limbs. It holds the exact products
// of WideningMul and the irreducible moduli of the concrete fields, whose
// degree exceeds the capacity of a single Poly.
//
// Like Poly, Wide values are immutable and keep the big-endian limb order.
type Wide struct {
	limbs []Word
}

// FromHalves assembles a double-width polynomial from two single-width
// halves of equal limb count. hi contributes the terms of degree >=
// L*WordBits: bit 0 of hi is the term x^(L*WordBits).
func FromHalves(hi, lo Poly) Wide {
	checkSameLen(len(hi.limbs), len(lo.limbs))
	limbs := make([]Word, 0, 2*len(hi.limbs))
	limbs = append(limbs, hi.limbs...)
	limbs = append(limbs, lo.limbs...)
	return Wide{limbs: limbs}
}

// Widen lifts p into a double-width polynomial with a zero high half.
func Widen(p Poly) Wide {
	return FromHalves(Zero(len(p.limbs)), p)
}

// High returns the half of w holding the terms of degree >= L*WordBits.
func (w Wide) High() Poly {
	return FromLimbs(w.limbs[:len(w.limbs)/2])
}

// Low returns the half of w holding the terms of degree < L*WordBits,
// truncating the high half.
func (w Wide) Low() Poly {
	return FromLimbs(w.limbs[len(w.limbs)/2:])
}

// NbLimbs returns the limb count of w, twice that of its halves.
func (w Wide) NbLimbs() int {
	return len(w.limbs)
}

// IsZero reports whether w is the zero polynomial.
func (w Wide) IsZero() bool {
	for _, limb := range w.limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether w and v have identical limbs.
func (w Wide) Equal(v Wide) bool {
	return slices.Equal(w.limbs, v.limbs)
}

// Degree returns the degree of w, or -1 for the zero polynomial.
func (w Wide) Degree() int {
	return degree(w.limbs)
}

// Add returns w + v, the limb-wise XOR. Panics if the limb counts differ.
func (w Wide) Add(v Wide) Wide {
	checkSameLen(len(w.limbs), len(v.limbs))
	limbs := make([]Word, len(w.limbs))
	for i := range limbs {
		limbs[i] = w.limbs[i] ^ v.limbs[i]
	}
	return Wide{limbs: limbs}
}

// Terms returns the exponents of the non-zero terms of w in descending
// order.
func (w Wide) Terms() []uint {
	return terms(w.limbs)
}

// PolynomialString renders w as a sum of monomials.
func (w Wide) PolynomialString() string {
	return polynomialString(w.limbs)
}

// String returns the hex rendering of the limb array.
func (w Wide) String() string {
	return hexString(w.limbs)
}

// shl returns w shifted left by k bit positions. Bits shifted past the top
// of the limb array are discarded, vacated positions are zero-filled. k may
// be anything in [0, NbLimbs*WordBits); k = 0 returns an identical value.
func (w Wide) shl(k int) Wide {
	debug.Assert(k >= 0 && k < len(w.limbs)*WordBits, "f2x: shift amount out of range")
	n := len(w.limbs)
	limbShift, bitShift := k/WordBits, k%WordBits
	limbs := make([]Word, n)
	for i := range limbs {
		src := i + limbShift
		if src >= n {
			break
		}
		limbs[i] = w.limbs[src] << bitShift
		if bitShift > 0 && src+1 < n {
			limbs[i] |= w.limbs[src+1] >> (WordBits - bitShift)
		}
	}
	return Wide{limbs: limbs}
}

// setBit returns a copy of w with the term x^k added in.
func (w Wide) setBit(k int) Wide {
	debug.Assert(k >= 0 && k < len(w.limbs)*WordBits, "f2x: bit index out of range")
	limbs := slices.Clone(w.limbs)
	limbs[len(limbs)-1-k/WordBits] |= 1 << (k % WordBits)
	return Wide{limbs: limbs}
}

// mulLow returns the carryless product of w and v truncated to the limb
// count of the operands. The extended Euclidean loop multiplies quotients
// into Bezout coefficients with it; there the true product never exceeds the
// double width, so no information is lost.
func (w Wide) mulLow(v Wide) Wide {
	checkSameLen(len(w.limbs), len(v.limbs))
	n := len(w.limbs)
	limbs := make([]Word, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n-i; j++ {
			hi, lo := WideningClmul(w.limbs[n-i-1], v.limbs[n-j-1])
			limbs[n-(i+j)-1] ^= lo
			if i+j+1 < n {
				limbs[n-(i+j+1)-1] ^= hi
			}
		}
	}
	return Wide{limbs: limbs}
}

// DivRem performs Euclidean division of w by divisor, returning a quotient
// and remainder with w = quotient*divisor + remainder and
// degree(remainder) < degree(divisor). Classic long division: while the
// remainder's degree reaches the divisor's, XOR in the divisor shifted up to
// the remainder's leading term. Panics on a zero divisor.
func (w Wide) DivRem(divisor Wide) (quotient, remainder Wide) {
	if divisor.IsZero() {
		panic("f2x: division by zero polynomial")
	}
	d := divisor.Degree()
	quotient = Wide{limbs: make([]Word, len(w.limbs))}
	remainder = Wide{limbs: slices.Clone(w.limbs)}
	for deg := remainder.Degree(); deg >= d; deg = remainder.Degree() {
		shift := deg - d
		quotient = quotient.setBit(shift)
		remainder = remainder.Add(divisor.shl(shift))
	}
	return quotient, remainder
}

// ModInv computes the multiplicative inverse of p modulo the given
// irreducible polynomial using the extended Euclidean algorithm over
// GF(2)[x]. It returns ErrNotInvertible for the zero polynomial; any other
// input is coprime to an irreducible modulus, so the algorithm always
// succeeds.
//
// The modulus being irreducible and of degree NbLimbs*WordBits is a caller
// contract that is not checked here; violating it silently produces wrong
// results.
func (p Poly) ModInv(modulus Wide) (Poly, error) {
	if p.IsZero() {
		return Poly{}, ErrNotInvertible
	}
	// Invariant: p*s0 = r0 and p*s1 = r1 (mod modulus). The loop reduces
	// (r0, r1) by Euclidean division until r1 vanishes, at which point
	// r0 = gcd(p, modulus) = 1 and s0 is the Bezout coefficient of p.
	r0, r1 := modulus, Widen(p)
	s0, s1 := Widen(Zero(len(p.limbs))), Widen(One(len(p.limbs)))
	for !r1.IsZero() {
		q, r := r0.DivRem(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Add(q.mulLow(s1))
	}
	debug.Assert(r0.Degree() == 0, "f2x: gcd with an irreducible modulus must be 1")
	_, inv := s0.DivRem(modulus)
	return inv.Low(), nil
}
