//go:build blst

package blsfield

import (
	"fmt"

	blst "github.com/supranational/blst/bindings/go"
)

// blstBackend implements Backend on top of supranational/blst, the C-backed
// library the real c-kzg-4844/go-kzg-4844 implementations use. Adapted from
// the sister BLS-signature adapter's decompression/pairing plumbing, here
// applied to KZG commitment/proof points instead of signatures and pubkeys.
type blstBackend struct{}

// BlstBackend is the blst-backed Backend, selected with
// blsfield.SetBackend(blsfield.BlstBackend).
var BlstBackend Backend = blstBackend{}

func (blstBackend) Name() string { return "blst" }

func (blstBackend) DecompressG1(data []byte) (G1, error) {
	if len(data) != BytesPerG1 {
		return G1{}, fmt.Errorf("blsfield: G1 encoding must be %d bytes, got %d", BytesPerG1, len(data))
	}
	p := new(blst.P1Affine).Uncompress(data)
	if p == nil {
		return G1{}, fmt.Errorf("blsfield: invalid G1 encoding")
	}
	if !p.InG1() {
		return G1{}, fmt.Errorf("blsfield: G1 point not in prime-order subgroup")
	}
	// blst validates against the same curve parameters gnark-crypto does;
	// re-decode through the default path so G1's internal representation
	// stays uniform regardless of which Backend validated the bytes.
	return G1FromCompressed(p.Compress())
}

func (blstBackend) DecompressG2(data []byte) (G2, error) {
	if len(data) != BytesPerG2 {
		return G2{}, fmt.Errorf("blsfield: G2 encoding must be %d bytes, got %d", BytesPerG2, len(data))
	}
	p := new(blst.P2Affine).Uncompress(data)
	if p == nil {
		return G2{}, fmt.Errorf("blsfield: invalid G2 encoding")
	}
	if !p.InG2() {
		return G2{}, fmt.Errorf("blsfield: G2 point not in prime-order subgroup")
	}
	return G2FromCompressed(p.Compress())
}

func (blstBackend) PairingCheck(a1 G1, a2 G2, b1 G1, b2 G2) (bool, error) {
	a1b, a2b, b1b, b2b := a1.Bytes(), a2.Bytes(), b1.Bytes(), b2.Bytes()
	pa1 := new(blst.P1Affine).Uncompress(a1b[:])
	pa2 := new(blst.P2Affine).Uncompress(a2b[:])
	pb1 := new(blst.P1Affine).Uncompress(b1b[:])
	pb2 := new(blst.P2Affine).Uncompress(b2b[:])
	if pa1 == nil || pa2 == nil || pb1 == nil || pb2 == nil {
		return false, fmt.Errorf("blsfield: pairing check on malformed point")
	}
	left := blst.Fp12MillerLoop(pa2, pa1)
	right := blst.Fp12MillerLoop(pb2, pb1)
	left.Mul(right)
	return left.FinalVerify(blst.Fp12One()), nil
}
