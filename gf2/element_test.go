package gf2

import (
	"crypto/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/xuganyu96/shamir-secret-sharing/f2x"
	"github.com/xuganyu96/shamir-secret-sharing/internal/testrand"
)

func mustFromLimbs[T FieldParams](t *testing.T, limbs []f2x.Word) Element[T] {
	t.Helper()
	e, err := FromLimbs[T](limbs)
	require.NoError(t, err)
	return e
}

// Known-answer vectors for GF(2^128) multiplication, cross-checked against
// SymPy. These pin down the exact limb alignment of the widening product and
// the reduction.
func TestGF2p128MulVectors(t *testing.T) {
	cases := []struct {
		lhs, rhs, prod []f2x.Word
	}{
		{
			lhs:  []f2x.Word{0x1254, 0x4198, 0x8DA7, 0x29BD, 0xECF1, 0x64DE, 0xFBA7, 0xB692},
			rhs:  []f2x.Word{0x7D89, 0xD76A, 0x644E, 0x3A1C, 0x047C, 0xB60A, 0x1B98, 0x30F0},
			prod: []f2x.Word{0x38B8, 0xB93F, 0xE30A, 0xE55E, 0xFC24, 0x2F4D, 0x5A16, 0xBD14},
		},
		{
			lhs:  []f2x.Word{0x5E17, 0xA183, 0x0FB7, 0xC7A9, 0xD3D3, 0xD1A4, 0x8962, 0xC3F5},
			rhs:  []f2x.Word{0x6ECC, 0x895B, 0x76CC, 0x855E, 0x9C14, 0xEF6F, 0x587A, 0x4A04},
			prod: []f2x.Word{0xC42C, 0xBD01, 0xE0B0, 0x693D, 0x5E49, 0x6D28, 0xA69F, 0x701A},
		},
		{
			lhs:  []f2x.Word{0x6C70, 0x49B5, 0x97A4, 0x65D1, 0x2370, 0x8DBE, 0x127F, 0x5EFB},
			rhs:  []f2x.Word{0x3387, 0xF3D0, 0xBD53, 0xADF3, 0x2994, 0x3B7A, 0xB2A8, 0x974A},
			prod: []f2x.Word{0x4402, 0xF342, 0x347A, 0xA630, 0x0B5D, 0x31BB, 0xBED8, 0x76A2},
		},
		{
			lhs:  []f2x.Word{0x98AA, 0xD35C, 0x02F5, 0x612C, 0x67A1, 0x9B5C, 0xF1FE, 0x98C7},
			rhs:  []f2x.Word{0x4F13, 0x9428, 0x6D75, 0x61C6, 0x2CE7, 0xA102, 0xB546, 0xC183},
			prod: []f2x.Word{0x09D9, 0x9D26, 0x5665, 0x2DAE, 0x2A22, 0x9928, 0xC29C, 0xD153},
		},
		{
			lhs:  []f2x.Word{0x1EA8, 0xE4CA, 0x33E9, 0x7C78, 0xD1E4, 0x903F, 0x6F70, 0x20F8},
			rhs:  []f2x.Word{0xEA22, 0x6D4C, 0xC5D4, 0x0C82, 0xF584, 0x3185, 0x36F4, 0x12B2},
			prod: []f2x.Word{0x8AF2, 0x5D11, 0xB56A, 0x68C0, 0xC3DD, 0xD9A1, 0xAC6E, 0x930B},
		},
	}
	for _, tc := range cases {
		lhs := mustFromLimbs[GF2p128](t, tc.lhs)
		rhs := mustFromLimbs[GF2p128](t, tc.rhs)
		prod := mustFromLimbs[GF2p128](t, tc.prod)
		assert.True(t, prod.Equal(lhs.Mul(rhs)), "%s * %s", lhs, rhs)
	}
}

func testInvRoundTrip[T FieldParams](t *testing.T, seed string) {
	rng := testrand.New(seed)
	one := One[T]()
	for i := 0; i < 1000; i++ {
		e, err := Random[T](rng)
		require.NoError(t, err)
		if e.IsZero() {
			_, err := e.Inv()
			assert.ErrorIs(t, err, ErrNotInvertible)
			continue
		}
		inv, err := e.Inv()
		require.NoError(t, err)
		assert.True(t, one.Equal(e.Mul(inv)), "e*inv(e) != 1 for e = %s", e)
	}
}

func TestInvRoundTrip(t *testing.T) {
	t.Run("GF2p128", func(t *testing.T) { testInvRoundTrip[GF2p128](t, "gf2p128 inversion") })
	t.Run("GF2p192", func(t *testing.T) { testInvRoundTrip[GF2p192](t, "gf2p192 inversion") })
	t.Run("GF2p256", func(t *testing.T) { testInvRoundTrip[GF2p256](t, "gf2p256 inversion") })
}

func genElement[T FieldParams]() gopter.Gen {
	var fp T
	return gen.SliceOfN(int(fp.NbLimbs()), gen.UInt16()).Map(func(limbs []uint16) Element[T] {
		return Element[T]{poly: f2x.FromLimbs(limbs)}
	})
}

func testFieldAxioms[T FieldParams](t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("a+b == b+a", prop.ForAll(
		func(a, b Element[T]) bool { return a.Add(b).Equal(b.Add(a)) },
		genElement[T](), genElement[T](),
	))
	properties.Property("a+a == 0 and a+0 == a", prop.ForAll(
		func(a Element[T]) bool { return a.Add(a).IsZero() && a.Add(Zero[T]()).Equal(a) },
		genElement[T](),
	))
	properties.Property("(a+b)+c == a+(b+c)", prop.ForAll(
		func(a, b, c Element[T]) bool { return a.Add(b).Add(c).Equal(a.Add(b.Add(c))) },
		genElement[T](), genElement[T](), genElement[T](),
	))
	properties.Property("a*b == b*a", prop.ForAll(
		func(a, b Element[T]) bool { return a.Mul(b).Equal(b.Mul(a)) },
		genElement[T](), genElement[T](),
	))
	properties.Property("a*(b+c) == a*b + a*c", prop.ForAll(
		func(a, b, c Element[T]) bool { return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c))) },
		genElement[T](), genElement[T](), genElement[T](),
	))
	properties.Property("a*1 == a", prop.ForAll(
		func(a Element[T]) bool { return a.Mul(One[T]()).Equal(a) },
		genElement[T](),
	))
	properties.Property("a*inv(a) == 1 for non-zero a", prop.ForAll(
		func(a Element[T]) bool {
			if a.IsZero() {
				return true
			}
			inv, err := a.Inv()
			return err == nil && a.Mul(inv).IsOne()
		},
		genElement[T](),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestFieldAxioms(t *testing.T) {
	t.Run("GF2p128", testFieldAxioms[GF2p128])
	t.Run("GF2p192", testFieldAxioms[GF2p192])
	t.Run("GF2p256", testFieldAxioms[GF2p256])
}

func TestInvZero(t *testing.T) {
	_, err := Zero[GF2p192]().Inv()
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestIdentities(t *testing.T) {
	assert.True(t, Zero[GF2p256]().IsZero())
	assert.True(t, One[GF2p256]().IsOne())
	assert.False(t, One[GF2p256]().IsZero())
	assert.False(t, Zero[GF2p256]().IsOne())
	assert.True(t, One[GF2p128]().Sub(One[GF2p128]()).IsZero())
}

// The zero value of Element must behave as the additive identity without
// going through a constructor.
func TestZeroValue(t *testing.T) {
	var e Element[GF2p128]
	assert.True(t, e.IsZero())
	assert.True(t, e.Equal(Zero[GF2p128]()))
	assert.True(t, e.Add(One[GF2p128]()).IsOne())
	assert.True(t, e.Mul(One[GF2p128]()).IsZero())
	_, err := e.Inv()
	assert.ErrorIs(t, err, ErrNotInvertible)
}

func TestFromLimbsLength(t *testing.T) {
	_, err := FromLimbs[GF2p128](make([]f2x.Word, 12))
	assert.Error(t, err)
	_, err = FromLimbs[GF2p192](make([]f2x.Word, 12))
	assert.NoError(t, err)
}

func TestBytesRoundTrip(t *testing.T) {
	e := mustFromLimbs[GF2p128](t, []f2x.Word{0x1254, 0x4198, 0x8DA7, 0x29BD, 0xECF1, 0x64DE, 0xFBA7, 0xB692})
	data := e.Bytes()
	assert.Equal(t, []byte{0x12, 0x54, 0x41, 0x98}, data[:4])

	back, err := FromBytes[GF2p128](data)
	require.NoError(t, err)
	assert.True(t, e.Equal(back))

	_, err = FromBytes[GF2p128](data[:15])
	assert.Error(t, err)
}

func TestRandomUsesAllBits(t *testing.T) {
	// with crypto/rand every limb should be populated eventually
	seen := make([]f2x.Word, 8)
	for i := 0; i < 64; i++ {
		e, err := Random[GF2p128](rand.Reader)
		require.NoError(t, err)
		for j, limb := range e.Limbs() {
			seen[j] |= limb
		}
	}
	for j, limb := range seen {
		assert.NotZero(t, limb, "limb %d never populated", j)
	}
}

// All operations are pure functions on immutable values, so unsynchronized
// concurrent use must produce identical results.
func TestConcurrentUse(t *testing.T) {
	a := mustFromLimbs[GF2p128](t, []f2x.Word{0x1254, 0x4198, 0x8DA7, 0x29BD, 0xECF1, 0x64DE, 0xFBA7, 0xB692})
	b := mustFromLimbs[GF2p128](t, []f2x.Word{0x7D89, 0xD76A, 0x644E, 0x3A1C, 0x047C, 0xB60A, 0x1B98, 0x30F0})
	wantProd := a.Mul(b)
	wantInv, err := a.Inv()
	require.NoError(t, err)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 200; j++ {
				if !a.Mul(b).Equal(wantProd) {
					return assert.AnError
				}
				inv, err := a.Inv()
				if err != nil || !inv.Equal(wantInv) {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
