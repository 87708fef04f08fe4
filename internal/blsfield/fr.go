// Package blsfield wraps the BLS12-381 scalar field and the G1/G2 groups
// behind a small set of concrete types (Fr, G1, G2) plus a swappable
// Backend used for point decompression and pairing checks. Fr/G1/G2
// arithmetic always goes through gnark-crypto; Backend only abstracts the
// two operations where a second production library (blst) is worth having
// on hand: compressed-point validation and the final pairing check.
package blsfield

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/holiman/uint256"
)

// BytesPerFieldElement is the canonical encoded size of an Fr element.
const BytesPerFieldElement = 32

// Fr is a scalar in the BLS12-381 scalar field, little-endian canonical
// encoding on the wire (see FrFromBytes/Bytes).
type Fr struct {
	el fr.Element
}

// modulus is the BLS12-381 scalar field order, big-endian, used only to
// reject non-canonical encodings before handing bytes to gnark-crypto.
var modulus = uint256.MustFromHex("0x73eda753299d7d483339d80809a1d80553bda402fffe5bfeffffffff00000001")

// FrFromBytes decodes a 32-byte little-endian scalar, rejecting values that
// are not strictly less than the field modulus.
func FrFromBytes(b [BytesPerFieldElement]byte) (Fr, error) {
	var be [BytesPerFieldElement]byte
	for i := range b {
		be[i] = b[BytesPerFieldElement-1-i]
	}
	v := new(uint256.Int).SetBytes(be[:])
	if v.Cmp(modulus) >= 0 {
		return Fr{}, fmt.Errorf("blsfield: scalar exceeds field modulus")
	}
	var out Fr
	out.el.SetBytes(be[:])
	return out, nil
}

// Bytes encodes the scalar canonically, little-endian.
func (f Fr) Bytes() [BytesPerFieldElement]byte {
	be := f.el.Bytes()
	var out [BytesPerFieldElement]byte
	for i := range be {
		out[i] = be[BytesPerFieldElement-1-i]
	}
	return out
}

// FrFromUint64 builds a scalar from a small integer, used for constants
// such as 0, 1 and the domain size.
func FrFromUint64(v uint64) Fr {
	var out Fr
	out.el.SetUint64(v)
	return out
}

// FrFromDigest reduces a 32-byte hash digest (big-endian, as produced by
// sha256.Sum256) into a field element. The reduction itself is done with
// uint256, the same fast fixed-width arithmetic used for the canonical
// range check in FrFromBytes, rather than relying on the field library's
// own (slower, allocation-heavy) big.Int-based Mod path.
func FrFromDigest(digest [32]byte) Fr {
	v := new(uint256.Int).SetBytes(digest[:])
	var reduced uint256.Int
	reduced.Mod(v, modulus)
	be := reduced.Bytes32()
	var out Fr
	out.el.SetBytes(be[:])
	return out
}

func (f Fr) IsZero() bool { return f.el.IsZero() }

func (f Fr) IsOne() bool { return f.el.IsOne() }

func (f Fr) Equal(g Fr) bool { return f.el.Equal(&g.el) }

func FrAdd(a, b Fr) Fr {
	var out Fr
	out.el.Add(&a.el, &b.el)
	return out
}

func FrSub(a, b Fr) Fr {
	var out Fr
	out.el.Sub(&a.el, &b.el)
	return out
}

func FrMul(a, b Fr) Fr {
	var out Fr
	out.el.Mul(&a.el, &b.el)
	return out
}

func FrNeg(a Fr) Fr {
	var out Fr
	out.el.Neg(&a.el)
	return out
}

// FrInv returns a^-1, erroring on a zero input rather than returning zero.
func FrInv(a Fr) (Fr, error) {
	if a.el.IsZero() {
		return Fr{}, fmt.Errorf("blsfield: inverse of zero")
	}
	var out Fr
	out.el.Inverse(&a.el)
	return out, nil
}

// FrDiv returns a/b.
func FrDiv(a, b Fr) (Fr, error) {
	inv, err := FrInv(b)
	if err != nil {
		return Fr{}, err
	}
	return FrMul(a, inv), nil
}

// FrPow returns base^exp using the field's own square-and-multiply.
func FrPow(base Fr, exp uint64) Fr {
	var out Fr
	out.el.Exp(base.el, new(uint256.Int).SetUint64(exp).ToBig())
	return out
}

// Modulus returns the BLS12-381 scalar field order as a big.Int.
func Modulus() *big.Int { return modulus.ToBig() }

// FrPowBig returns base^exp for an arbitrary-size exponent, used to derive
// roots of unity (exponents on the order of the field modulus).
func FrPowBig(base Fr, exp *big.Int) Fr {
	var out Fr
	out.el.Exp(base.el, exp)
	return out
}

// ComputePowers returns [1, x, x^2, ..., x^(n-1)].
func ComputePowers(x Fr, n int) []Fr {
	out := make([]Fr, n)
	if n == 0 {
		return out
	}
	out[0] = FrFromUint64(1)
	for i := 1; i < n; i++ {
		out[i] = FrMul(out[i-1], x)
	}
	return out
}
