package blsfield

import (
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
)

// Backend is the capability trait the KZG verification equation is
// expressed against: decompressing points and checking the pairing
// equation e(a1,a2)*e(b1,b2) == 1. The default Backend is backed by
// gnark-crypto; an alternate implementation backed by blst is available
// behind the "blst" build tag (see backend_blst.go). Fr/G1/G2 group
// arithmetic itself is not behind this interface: both backends agree on
// the same field and curve definitions, so there is nothing to swap there.
type Backend interface {
	Name() string
	DecompressG1(data []byte) (G1, error)
	DecompressG2(data []byte) (G2, error)
	// PairingCheck reports whether e(a1,a2) * e(b1,b2) == 1.
	PairingCheck(a1 G1, a2 G2, b1 G1, b2 G2) (bool, error)
}

type gnarkBackend struct{}

func (gnarkBackend) Name() string { return "gnark-crypto" }

func (gnarkBackend) DecompressG1(data []byte) (G1, error) { return G1FromCompressed(data) }

func (gnarkBackend) DecompressG2(data []byte) (G2, error) { return G2FromCompressed(data) }

func (gnarkBackend) PairingCheck(a1 G1, a2 G2, b1 G1, b2 G2) (bool, error) {
	return bls12381.PairingCheck(
		[]bls12381.G1Affine{a1.Affine(), b1.Affine()},
		[]bls12381.G2Affine{a2.Affine(), b2.Affine()},
	)
}

// defaultBackend is the process-wide Backend used by PairingCheck below.
// It is not guarded by a lock: SetBackend writes it directly.
var defaultBackend Backend = gnarkBackend{}

// SetBackend swaps the process-wide Backend, e.g. to the blst-backed one
// built with the "blst" tag. Intended to be called once at program start.
func SetBackend(b Backend) { defaultBackend = b }

func ActiveBackend() Backend { return defaultBackend }

// PairingCheck reports whether e(a1,a2) * e(b1,b2) == 1 using the active
// Backend.
func PairingCheck(a1 G1, a2 G2, b1 G1, b2 G2) (bool, error) {
	return defaultBackend.PairingCheck(a1, a2, b1, b2)
}
