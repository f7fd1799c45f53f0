/*
Package gf2 implements exact arithmetic over binary extension fields GF(2^m).

Elements of GF(2^m) are polynomials over GF(2) of degree less than m, with
arithmetic taken modulo a fixed irreducible polynomial of degree m. Addition
is limb-wise XOR, multiplication is a widening carryless product followed by
Euclidean reduction, and inversion runs the extended Euclidean algorithm over
GF(2)[x]. All operations are exact and deterministic; none of them is
constant time, so the package is unsuitable where timing side channels are
part of the threat model.

A field is selected by a type parameter implementing [FieldParams]. The
package ships parameters for GF(2^128), GF(2^192) and GF(2^256):

	a, _ := gf2.Random[gf2.GF2p128](rand.Reader)
	b, _ := gf2.Random[gf2.GF2p128](rand.Reader)
	c := a.Mul(b)
	inv, err := c.Inv()

Elements are immutable values: every operation returns a fresh element and
the result never aliases its inputs, so values can be shared freely across
goroutines.

The only fallible operation is [Element.Inv], which returns
[ErrNotInvertible] for the zero element. There is no runtime check that a
custom [FieldParams] modulus is irreducible or of the right degree; that is a
construction-time contract, and violating it silently produces wrong results.
*/
package gf2
