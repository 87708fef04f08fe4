package fft

import (
	"fmt"
	"math/big"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// primitiveRootOfUnity is a generator of the multiplicative group of the
// BLS12-381 scalar field; the same value (7) the consensus-layer reference
// and c-kzg-4844 use to derive every root of unity the setup needs.
const primitiveRootOfUnity = 7

// maxScale is the 2-adicity of the BLS12-381 scalar field: q-1 = 2^32 * m
// for odd m, so 2^32 is the largest power-of-two subgroup order available.
const maxScale = 32

// rootOfUnity returns a primitive root of unity of order 2^scale, computed
// as primitiveRootOfUnity^((q-1)/2^scale). Deriving it on demand rather
// than transcribing a fixed SCALE2_ROOT_OF_UNITY table removes any risk of
// a copy error in a 33-entry constant table that could silently corrupt
// every commitment built against it.
func rootOfUnity(scale uint) (blsfield.Fr, error) {
	if scale > maxScale {
		return blsfield.Fr{}, fmt.Errorf("fft: scale %d exceeds max scale %d", scale, maxScale)
	}
	exponent := new(big.Int).Sub(blsfield.Modulus(), big.NewInt(1))
	exponent.Rsh(exponent, scale)
	return blsfield.FrPowBig(blsfield.FrFromUint64(primitiveRootOfUnity), exponent), nil
}
