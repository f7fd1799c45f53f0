// Package f2x implements fixed-width polynomial arithmetic over GF(2).
//
// A polynomial is stored as a sequence of limbs in big-endian order: the limb
// at index 0 encodes the highest-degree terms. The package provides the
// carryless word multiplication, the widening schoolbook multiplication,
// Euclidean division and modular inversion that the gf2 package composes into
// binary extension fields.
package f2x

import (
	"fmt"
	"math/bits"
	"slices"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/xuganyu96/shamir-secret-sharing/debug"
)

// Word is the base limb unit of a polynomial.
type Word = uint16

// WordBits is the number of bits per limb.
const WordBits = 16

// WideningClmul returns the carryless product of a and b: bit k of the
// 2*WordBits-wide value (hi:lo) is the XOR over all i+j = k of
// bit i of a AND bit j of b. This is polynomial multiplication over GF(2)
// with no carry propagation.
//
// The loop branches on each bit of b, so this is not constant time.
func WideningClmul(a, b Word) (hi, lo Word) {
	for i := 0; i < WordBits; i++ {
		if b&(1<<i) == 0 {
			continue
		}
		// Widening left shift of a by i positions. The bits that overflow
		// WordBits land in hi, the rest stay in lo. For i == 0 the shift
		// count below is the full word width, which Go defines to yield 0,
		// so hi picks up nothing and lo picks up a unchanged.
		hi ^= a >> (WordBits - i)
		lo ^= a << i
	}
	return hi, lo
}

// Poly is a fixed-length GF(2) polynomial of degree < NbLimbs*WordBits.
// Limbs are in big-endian order: the limb at index 0 encodes the
// highest-degree terms, and the lowest-order bit of the last limb is the
// constant term.
//
// Poly values are immutable. Every operation returns a fresh value and the
// limb count never changes after construction. Binary operations require both
// operands to have the same limb count and panic otherwise.
type Poly struct {
	limbs []Word
}

// FromLimbs constructs a polynomial from a big-endian limb array. The slice
// is copied.
func FromLimbs(limbs []Word) Poly {
	return Poly{limbs: slices.Clone(limbs)}
}

// Zero returns the all-zero polynomial on nbLimbs limbs, the additive
// identity.
func Zero(nbLimbs int) Poly {
	return Poly{limbs: make([]Word, nbLimbs)}
}

// One returns the constant polynomial 1 on nbLimbs limbs, the multiplicative
// identity.
func One(nbLimbs int) Poly {
	limbs := make([]Word, nbLimbs)
	limbs[nbLimbs-1] = 1
	return Poly{limbs: limbs}
}

// NbLimbs returns the limb count of p.
func (p Poly) NbLimbs() int {
	return len(p.limbs)
}

// Limbs returns a copy of the big-endian limb array of p.
func (p Poly) Limbs() []Word {
	return slices.Clone(p.limbs)
}

// IsZero reports whether p is the additive identity.
func (p Poly) IsZero() bool {
	for _, limb := range p.limbs {
		if limb != 0 {
			return false
		}
	}
	return true
}

// IsOne reports whether p is the multiplicative identity.
func (p Poly) IsOne() bool {
	n := len(p.limbs)
	if n == 0 || p.limbs[n-1] != 1 {
		return false
	}
	for _, limb := range p.limbs[:n-1] {
		if limb != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether p and q have identical limbs.
func (p Poly) Equal(q Poly) bool {
	return slices.Equal(p.limbs, q.limbs)
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return degree(p.limbs)
}

// Not returns the bitwise complement of p.
func (p Poly) Not() Poly {
	limbs := make([]Word, len(p.limbs))
	for i, limb := range p.limbs {
		limbs[i] = ^limb
	}
	return Poly{limbs: limbs}
}

// Add returns p + q. Addition over GF(2) is limb-wise XOR and never
// overflows. Panics if the limb counts differ.
func (p Poly) Add(q Poly) Poly {
	checkSameLen(len(p.limbs), len(q.limbs))
	limbs := make([]Word, len(p.limbs))
	for i := range limbs {
		limbs[i] = p.limbs[i] ^ q.limbs[i]
	}
	return Poly{limbs: limbs}
}

// Sub returns p - q, which is identical to Add because every element is its
// own additive inverse in characteristic 2.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q)
}

// WideningMul returns the exact product of p and q as a double-width
// polynomial. Schoolbook multiplication: L^2 word multiplications, with limb
// pairs counted from the least-significant limb inward.
func (p Poly) WideningMul(q Poly) Wide {
	checkSameLen(len(p.limbs), len(q.limbs))
	n := len(p.limbs)
	limbs := make([]Word, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			hi, lo := WideningClmul(p.limbs[n-i-1], q.limbs[n-j-1])
			// The low word of the product lands at word position i+j, the
			// high word one position above. Positions count from the least
			// significant limb, so position k lives at index 2n-k-1.
			limbs[2*n-(i+j)-1] ^= lo
			limbs[2*n-(i+j+1)-1] ^= hi
		}
	}
	return Wide{limbs: limbs}
}

// Terms returns the exponents of the non-zero terms of p in descending
// order. The zero polynomial has no terms.
func (p Poly) Terms() []uint {
	return terms(p.limbs)
}

// PolynomialString renders p as a sum of monomials, e.g.
// "x^128 + x^77 + x^35 + x^11 + 1". The zero polynomial renders as "0".
func (p Poly) PolynomialString() string {
	return polynomialString(p.limbs)
}

// String returns the hex rendering of the limb array, most significant limb
// first.
func (p Poly) String() string {
	return hexString(p.limbs)
}

func degree(limbs []Word) int {
	n := len(limbs)
	for i, limb := range limbs {
		if limb != 0 {
			return (n-i-1)*WordBits + bits.Len16(limb) - 1
		}
	}
	return -1
}

func terms(limbs []Word) []uint {
	n := len(limbs)
	b := bitset.New(uint(n * WordBits))
	for i, limb := range limbs {
		base := uint((n - i - 1) * WordBits)
		for k := uint(0); k < WordBits; k++ {
			if limb&(1<<k) != 0 {
				b.Set(base + k)
			}
		}
	}
	out := make([]uint, 0, b.Count())
	for i, ok := b.NextSet(0); ok; i, ok = b.NextSet(i + 1) {
		out = append(out, i)
	}
	slices.Reverse(out)
	return out
}

func polynomialString(limbs []Word) string {
	ts := terms(limbs)
	if len(ts) == 0 {
		return "0"
	}
	monomials := make([]string, len(ts))
	for i, e := range ts {
		switch e {
		case 0:
			monomials[i] = "1"
		case 1:
			monomials[i] = "x"
		default:
			monomials[i] = "x^" + strconv.FormatUint(uint64(e), 10)
		}
	}
	return strings.Join(monomials, " + ")
}

func hexString(limbs []Word) string {
	var sb strings.Builder
	sb.WriteString("0x")
	for _, limb := range limbs {
		fmt.Fprintf(&sb, "%04x", limb)
	}
	return sb.String()
}

func checkSameLen(a, b int) {
	debug.Assert(a > 0, "f2x: empty polynomial")
	if a != b {
		panic("f2x: mismatched limb counts")
	}
}
