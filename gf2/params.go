package gf2

import (
	"github.com/xuganyu96/shamir-secret-sharing/f2x"
)

// FieldParams describes a binary extension field GF(2^m): the limb count of
// an element and the irreducible modulus polynomial of degree exactly
// m = NbLimbs * f2x.WordBits.
//
// When using parameters not defined in this package it is sufficient to
// define a new empty struct type implementing the interface. The modulus
// must be irreducible over GF(2); this is never verified at runtime.
type FieldParams interface {
	NbLimbs() uint
	Modulus() f2x.Wide
}

var (
	modGF2p128 f2x.Wide
	modGF2p192 f2x.Wide
	modGF2p256 f2x.Wide
)

func init() {
	modGF2p128 = f2x.FromHalves(f2x.One(8), f2x.FromLimbs([]f2x.Word{
		0x0000, 0x0000, 0x0000, 0x2000, 0x0000, 0x0008, 0x0000, 0x0801,
	}))
	modGF2p192 = f2x.FromHalves(f2x.One(12), f2x.FromLimbs([]f2x.Word{
		0x0000, 0x0000, 0x0000, 0x4000, 0x0000, 0x0080, 0x0000, 0x0000,
		0x0000, 0x0000, 0x0002, 0x0001,
	}))
	modGF2p256 = f2x.FromHalves(f2x.One(16), f2x.FromLimbs([]f2x.Word{
		0x0002, 0x0000, 0x0000, 0x0000, 0x0004, 0x0000, 0x0000, 0x0000,
		0x0200, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0001,
	}))
}

// GF2p128 provides type parametrization for the binary extension field
// GF(2^128):
//   - limbs: 8
//   - limb width: 16 bits
//
// The irreducible modulus is
//
//	x^128 + x^77 + x^35 + x^11 + 1
type GF2p128 struct{}

func (GF2p128) NbLimbs() uint     { return 8 }
func (GF2p128) Modulus() f2x.Wide { return modGF2p128 }

// GF2p192 provides type parametrization for the binary extension field
// GF(2^192):
//   - limbs: 12
//   - limb width: 16 bits
//
// The irreducible modulus is
//
//	x^192 + x^142 + x^103 + x^17 + 1
type GF2p192 struct{}

func (GF2p192) NbLimbs() uint     { return 12 }
func (GF2p192) Modulus() f2x.Wide { return modGF2p192 }

// GF2p256 provides type parametrization for the binary extension field
// GF(2^256):
//   - limbs: 16
//   - limb width: 16 bits
//
// The irreducible modulus is
//
//	x^256 + x^241 + x^178 + x^121 + 1
type GF2p256 struct{}

func (GF2p256) NbLimbs() uint     { return 16 }
func (GF2p256) Modulus() f2x.Wide { return modGF2p256 }
