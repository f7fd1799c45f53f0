package gf2

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/xuganyu96/shamir-secret-sharing/f2x"
)

// ErrNotInvertible is returned by [Element.Inv] for the zero element. It is
// the only failure mode of inversion: every non-zero element of a field with
// an irreducible modulus has an inverse.
var ErrNotInvertible = f2x.ErrNotInvertible

// Element is an element of the binary extension field selected by the type
// parameter. It wraps a single reduced polynomial of degree < m; every
// representable bit pattern is already canonical, so equality is bitwise
// equality of the limbs.
//
// The zero value of Element is the additive identity of its field.
type Element[T FieldParams] struct {
	poly f2x.Poly
}

// Zero returns the additive identity of the field.
func Zero[T FieldParams]() Element[T] {
	var fp T
	return Element[T]{poly: f2x.Zero(int(fp.NbLimbs()))}
}

// One returns the multiplicative identity of the field.
func One[T FieldParams]() Element[T] {
	var fp T
	return Element[T]{poly: f2x.One(int(fp.NbLimbs()))}
}

// FromLimbs constructs an element from a big-endian limb array. The limb
// count must match the field parameters.
func FromLimbs[T FieldParams](limbs []f2x.Word) (Element[T], error) {
	var fp T
	if uint(len(limbs)) != fp.NbLimbs() {
		return Element[T]{}, fmt.Errorf("gf2: expected %d limbs, got %d", fp.NbLimbs(), len(limbs))
	}
	return Element[T]{poly: f2x.FromLimbs(limbs)}, nil
}

// FromBytes constructs an element from its big-endian byte encoding, the
// inverse of [Element.Bytes]. The input must be exactly 2*NbLimbs bytes.
func FromBytes[T FieldParams](data []byte) (Element[T], error) {
	var fp T
	if uint(len(data)) != 2*fp.NbLimbs() {
		return Element[T]{}, fmt.Errorf("gf2: expected %d bytes, got %d", 2*fp.NbLimbs(), len(data))
	}
	limbs := make([]f2x.Word, fp.NbLimbs())
	for i := range limbs {
		limbs[i] = binary.BigEndian.Uint16(data[2*i:])
	}
	return Element[T]{poly: f2x.FromLimbs(limbs)}, nil
}

// Random samples a uniform field element from the given randomness source.
// Every m-bit pattern is a valid, already-reduced element, so the words read
// from rng become limbs directly with no rejection step. The source is
// trusted to be uniform; nothing is validated or whitened here.
func Random[T FieldParams](rng io.Reader) (Element[T], error) {
	var fp T
	buf := make([]byte, 2*fp.NbLimbs())
	if _, err := io.ReadFull(rng, buf); err != nil {
		return Element[T]{}, fmt.Errorf("gf2: sampling random element: %w", err)
	}
	e, err := FromBytes[T](buf)
	if err != nil {
		return Element[T]{}, err
	}
	return e, nil
}

// norm returns the polynomial of e, substituting the field's zero for the
// uninitialized zero value so that `var e Element[T]` behaves as zero.
func (e Element[T]) norm() f2x.Poly {
	if e.poly.NbLimbs() == 0 {
		var fp T
		return f2x.Zero(int(fp.NbLimbs()))
	}
	return e.poly
}

// IsZero reports whether e is the additive identity.
func (e Element[T]) IsZero() bool {
	return e.norm().IsZero()
}

// IsOne reports whether e is the multiplicative identity.
func (e Element[T]) IsOne() bool {
	return e.norm().IsOne()
}

// Equal reports whether e and rhs are the same field element.
func (e Element[T]) Equal(rhs Element[T]) bool {
	return e.norm().Equal(rhs.norm())
}

// Add returns e + rhs, the limb-wise XOR of the two elements.
func (e Element[T]) Add(rhs Element[T]) Element[T] {
	return Element[T]{poly: e.norm().Add(rhs.norm())}
}

// Sub returns e - rhs. Subtraction coincides with addition in
// characteristic 2.
func (e Element[T]) Sub(rhs Element[T]) Element[T] {
	return e.Add(rhs)
}

// Mul returns e * rhs: the exact double-width carryless product reduced
// modulo the field's irreducible polynomial.
func (e Element[T]) Mul(rhs Element[T]) Element[T] {
	var fp T
	prod := e.norm().WideningMul(rhs.norm())
	_, rem := prod.DivRem(fp.Modulus())
	return Element[T]{poly: rem.Low()}
}

// Inv returns the multiplicative inverse of e, or [ErrNotInvertible] if e is
// zero.
func (e Element[T]) Inv() (Element[T], error) {
	var fp T
	inv, err := e.norm().ModInv(fp.Modulus())
	if err != nil {
		return Element[T]{}, err
	}
	return Element[T]{poly: inv}, nil
}

// Limbs returns a copy of the big-endian limb array of e.
func (e Element[T]) Limbs() []f2x.Word {
	return e.norm().Limbs()
}

// Bytes returns the big-endian byte encoding of e, 2*NbLimbs bytes.
func (e Element[T]) Bytes() []byte {
	limbs := e.norm().Limbs()
	out := make([]byte, 2*len(limbs))
	for i, limb := range limbs {
		binary.BigEndian.PutUint16(out[2*i:], limb)
	}
	return out
}

// String returns the hex rendering of e, most significant limb first.
func (e Element[T]) String() string {
	return e.norm().String()
}
