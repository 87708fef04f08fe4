package blsfield

import (
	"fmt"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// BytesPerG2 is the compressed serialization size of a G2 point.
const BytesPerG2 = 96

// G2 is a point in the BLS12-381 G2 subgroup.
type G2 struct {
	p bls12381.G2Jac
}

func G2Generator() G2 {
	_, _, _, g2 := bls12381.Generators()
	var out G2
	out.p.FromAffine(&g2)
	return out
}

// G2FromCompressed decodes and validates a 96-byte compressed G2 point.
func G2FromCompressed(data []byte) (G2, error) {
	if len(data) != BytesPerG2 {
		return G2{}, fmt.Errorf("blsfield: G2 encoding must be %d bytes, got %d", BytesPerG2, len(data))
	}
	var aff bls12381.G2Affine
	if _, err := aff.SetBytes(data); err != nil {
		return G2{}, fmt.Errorf("blsfield: invalid G2 encoding: %w", err)
	}
	if !aff.IsInSubGroup() {
		return G2{}, fmt.Errorf("blsfield: G2 point not in prime-order subgroup")
	}
	var out G2
	out.p.FromAffine(&aff)
	return out, nil
}

// Bytes returns the 96-byte compressed encoding.
func (g G2) Bytes() [BytesPerG2]byte {
	var aff bls12381.G2Affine
	aff.FromJacobian(&g.p)
	return aff.Bytes()
}

func (g G2) Affine() bls12381.G2Affine {
	var aff bls12381.G2Affine
	aff.FromJacobian(&g.p)
	return aff
}

func (a G1) Affine() bls12381.G1Affine {
	var aff bls12381.G1Affine
	aff.FromJacobian(&a.p)
	return aff
}

func G2Add(a, b G2) G2 {
	var out G2
	out.p.Set(&a.p)
	out.p.AddAssign(&b.p)
	return out
}

func G2Neg(a G2) G2 {
	var out G2
	out.p.Neg(&a.p)
	return out
}

func G2Sub(a, b G2) G2 {
	var out G2
	out.p.Set(&a.p)
	out.p.SubAssign(&b.p)
	return out
}

// G2ScalarMul computes [s]p, used by proof verification to form [z]G2 and
// by tests exercising the pairing equation directly.
func G2ScalarMul(p G2, s Fr) G2 {
	if s.IsZero() {
		var out G2
		return out
	}
	if s.IsOne() {
		return p
	}
	var sInt big.Int
	s.el.BigInt(&sInt)
	var out G2
	out.p.ScalarMultiplication(&p.p, &sInt)
	return out
}
