package blsfield

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// BytesPerG1 is the compressed serialization size of a G1 point.
const BytesPerG1 = 48

// G1 is a point in the BLS12-381 G1 subgroup, held in Jacobian form so
// repeated accumulation (FFT butterflies, MSM) avoids affine normalization.
type G1 struct {
	p bls12381.G1Jac
}

// G1Identity returns the point at infinity.
func G1Identity() G1 {
	var out G1
	out.p.Set(&bls12381.G1Jac{})
	return out
}

// G1Generator returns the standard generator of G1.
func G1Generator() G1 {
	_, _, g1, _ := bls12381.Generators()
	var out G1
	out.p.FromAffine(&g1)
	return out
}

// G1FromCompressed decodes and validates a 48-byte compressed G1 point,
// rejecting points not on the curve or outside the prime-order subgroup.
func G1FromCompressed(data []byte) (G1, error) {
	if len(data) != BytesPerG1 {
		return G1{}, fmt.Errorf("blsfield: G1 encoding must be %d bytes, got %d", BytesPerG1, len(data))
	}
	var aff bls12381.G1Affine
	if _, err := aff.SetBytes(data); err != nil {
		return G1{}, fmt.Errorf("blsfield: invalid G1 encoding: %w", err)
	}
	if !aff.IsInSubGroup() {
		return G1{}, fmt.Errorf("blsfield: G1 point not in prime-order subgroup")
	}
	var out G1
	out.p.FromAffine(&aff)
	return out, nil
}

// Bytes returns the 48-byte compressed encoding.
func (g G1) Bytes() [BytesPerG1]byte {
	var aff bls12381.G1Affine
	aff.FromJacobian(&g.p)
	return aff.Bytes()
}

func (g G1) IsIdentity() bool {
	var aff bls12381.G1Affine
	aff.FromJacobian(&g.p)
	return aff.IsInfinity()
}

func (g G1) Equal(h G1) bool {
	var a, b bls12381.G1Affine
	a.FromJacobian(&g.p)
	b.FromJacobian(&h.p)
	return a.Equal(&b)
}

func G1Add(a, b G1) G1 {
	var out G1
	out.p.Set(&a.p)
	out.p.AddAssign(&b.p)
	return out
}

func G1Sub(a, b G1) G1 {
	var out G1
	out.p.Set(&a.p)
	out.p.SubAssign(&b.p)
	return out
}

func G1Neg(a G1) G1 {
	var out G1
	out.p.Neg(&a.p)
	return out
}

// G1ScalarMul computes [s]p, with fast paths for s == 0 and s == 1 as the
// common case in commitment/proof construction.
func G1ScalarMul(p G1, s Fr) G1 {
	if s.IsZero() {
		return G1Identity()
	}
	if s.IsOne() {
		return p
	}
	var sInt big.Int
	s.el.BigInt(&sInt)
	var out G1
	out.p.ScalarMultiplication(&p.p, &sInt)
	return out
}

// G1Lincomb computes the multi-scalar multiplication sum(scalars[i] * points[i]).
// For small inputs it accumulates directly; for larger inputs it defers to
// gnark-crypto's windowed Pippenger implementation via MultiExp.
func G1Lincomb(points []G1, scalars []Fr) (G1, error) {
	if len(points) != len(scalars) {
		return G1{}, fmt.Errorf("blsfield: G1Lincomb length mismatch: %d points, %d scalars", len(points), len(scalars))
	}
	if len(points) == 0 {
		return G1Identity(), nil
	}
	if len(points) <= 8 {
		acc := G1Identity()
		for i := range points {
			acc = G1Add(acc, G1ScalarMul(points[i], scalars[i]))
		}
		return acc, nil
	}
	affPoints := make([]bls12381.G1Affine, len(points))
	for i := range points {
		affPoints[i].FromJacobian(&points[i].p)
	}
	frScalars := make([]fr.Element, len(scalars))
	for i := range scalars {
		frScalars[i] = scalars[i].el
	}
	var resAff bls12381.G1Affine
	if _, err := resAff.MultiExp(affPoints, frScalars, ecc.MultiExpConfig{}); err != nil {
		return G1{}, fmt.Errorf("blsfield: MSM failed: %w", err)
	}
	var out G1
	out.p.FromAffine(&resAff)
	return out, nil
}
