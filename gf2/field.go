package gf2

// Field is the capability set shared by every binary extension field
// element type. Generic algorithms written against Field do not depend on a
// concrete extension degree:
//
//	func double[E gf2.Field[E]](e E) E { return e.Add(e) }
//
// Construction of fresh values (zero, one, random sampling) is provided by
// the package-level [Zero], [One] and [Random] functions, parametrized by
// [FieldParams].
//
// Modular exponentiation is deliberately not part of the contract.
type Field[E any] interface {
	IsZero() bool
	IsOne() bool
	Equal(E) bool
	Add(E) E
	Sub(E) E
	Mul(E) E
	Inv() (E, error)
}

var (
	_ Field[Element[GF2p128]] = Element[GF2p128]{}
	_ Field[Element[GF2p192]] = Element[GF2p192]{}
	_ Field[Element[GF2p256]] = Element[GF2p256]{}
)
