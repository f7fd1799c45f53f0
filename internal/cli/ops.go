package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/xuganyu96/shamir-secret-sharing/gf2"
	"github.com/xuganyu96/shamir-secret-sharing/logger"
)

type binaryOp int

const (
	opMul binaryOp = iota
	opAdd
)

// The field is chosen by a runtime flag while gf2 selects it by type
// parameter, so every operation carries a small degree switch into the
// generic implementation.

func runBinary(degree int, op binaryOp, aHex, bHex string) (string, error) {
	switch degree {
	case 128:
		return evalBinary[gf2.GF2p128](op, aHex, bHex)
	case 192:
		return evalBinary[gf2.GF2p192](op, aHex, bHex)
	case 256:
		return evalBinary[gf2.GF2p256](op, aHex, bHex)
	}
	return "", errUnsupportedDegree(degree)
}

func runInv(degree int, aHex string) (string, error) {
	switch degree {
	case 128:
		return evalInv[gf2.GF2p128](aHex)
	case 192:
		return evalInv[gf2.GF2p192](aHex)
	case 256:
		return evalInv[gf2.GF2p256](aHex)
	}
	return "", errUnsupportedDegree(degree)
}

func runSample(degree, n int) ([]string, error) {
	switch degree {
	case 128:
		return sample[gf2.GF2p128](n)
	case 192:
		return sample[gf2.GF2p192](n)
	case 256:
		return sample[gf2.GF2p256](n)
	}
	return nil, errUnsupportedDegree(degree)
}

func errUnsupportedDegree(degree int) error {
	return fmt.Errorf("unsupported extension degree %d (supported: 128, 192, 256)", degree)
}

func evalBinary[T gf2.FieldParams](op binaryOp, aHex, bHex string) (string, error) {
	a, err := parseElement[T](aHex)
	if err != nil {
		return "", err
	}
	b, err := parseElement[T](bHex)
	if err != nil {
		return "", err
	}
	var c gf2.Element[T]
	switch op {
	case opMul:
		c = a.Mul(b)
	case opAdd:
		c = a.Add(b)
	}
	log := logger.Logger()
	log.Debug().Stringer("lhs", a).Stringer("rhs", b).Stringer("out", c).Msg("evaluated")
	return hex.EncodeToString(c.Bytes()), nil
}

func evalInv[T gf2.FieldParams](aHex string) (string, error) {
	a, err := parseElement[T](aHex)
	if err != nil {
		return "", err
	}
	inv, err := a.Inv()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(inv.Bytes()), nil
}

func sample[T gf2.FieldParams](n int) ([]string, error) {
	out := make([]string, n)
	for i := range out {
		e, err := gf2.Random[T](rand.Reader)
		if err != nil {
			return nil, err
		}
		out[i] = hex.EncodeToString(e.Bytes())
	}
	return out, nil
}

func parseElement[T gf2.FieldParams](s string) (gf2.Element[T], error) {
	data, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return gf2.Element[T]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	e, err := gf2.FromBytes[T](data)
	if err != nil {
		return gf2.Element[T]{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return e, nil
}
