// Package sss provides the exact finite-field arithmetic underlying
// polynomial-based secret sharing and coding schemes.
//
// The arithmetic lives in two layers:
//   - f2x: fixed-width polynomials over GF(2), with carryless
//     multiplication, Euclidean division and modular inversion;
//   - gf2: binary extension fields GF(2^128), GF(2^192) and GF(2^256)
//     composed from f2x and parametrized by an irreducible modulus.
//
// The library commits to no higher-level protocol: its entire surface is the
// field contract exposed by the gf2 package.
package sss

import "github.com/blang/semver/v4"

// Version of the library.
var Version = semver.MustParse("0.1.0")

// Degrees returns the extension degrees m for which the gf2 package ships
// field parameters.
func Degrees() []int {
	return []int{128, 192, 256}
}
