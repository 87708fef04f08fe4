package kzg4844

import (
	"fmt"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// evalPolyInEvalForm evaluates, via the barycentric formula, the
// polynomial given by evals on domain at the point z. If z coincides with
// a domain point, the second return value is that index; otherwise it is
// -1.
func evalPolyInEvalForm(domain []blsfield.Fr, evals []blsfield.Fr, z blsfield.Fr) (blsfield.Fr, int, error) {
	n := len(domain)
	for i, d := range domain {
		if d.Equal(z) {
			return evals[i], i, nil
		}
	}

	// y = ((z^n - 1) / n) * sum_i evals[i] * D_i / (z - D_i)
	zPow := blsfield.FrPow(z, uint64(n))
	numerator := blsfield.FrSub(zPow, blsfield.FrFromUint64(1))
	factor, err := blsfield.FrDiv(numerator, blsfield.FrFromUint64(uint64(n)))
	if err != nil {
		return blsfield.Fr{}, -1, fmt.Errorf("evalPolyInEvalForm: %w", err)
	}

	sum := blsfield.FrFromUint64(0)
	for i := 0; i < n; i++ {
		denom := blsfield.FrSub(z, domain[i])
		term, err := blsfield.FrDiv(blsfield.FrMul(evals[i], domain[i]), denom)
		if err != nil {
			return blsfield.Fr{}, -1, fmt.Errorf("evalPolyInEvalForm: %w", err)
		}
		sum = blsfield.FrAdd(sum, term)
	}
	return blsfield.FrMul(factor, sum), -1, nil
}

// computeQuotient builds, in evaluation form on domain, the quotient
// polynomial q(X) = (p(X) - y) / (X - z), where p is given by evals and y
// = p(z). domainIndex is the index of z in domain, or -1 if z is not a
// domain point.
func computeQuotient(domain, evals []blsfield.Fr, z, y blsfield.Fr, domainIndex int) ([]blsfield.Fr, error) {
	n := len(domain)
	q := make([]blsfield.Fr, n)
	for i := 0; i < n; i++ {
		if i == domainIndex {
			continue
		}
		numerator := blsfield.FrSub(evals[i], y)
		denom := blsfield.FrSub(domain[i], z)
		v, err := blsfield.FrDiv(numerator, denom)
		if err != nil {
			return nil, fmt.Errorf("computeQuotient: %w", err)
		}
		q[i] = v
	}
	if domainIndex < 0 {
		return q, nil
	}

	m := domainIndex
	sum := blsfield.FrFromUint64(0)
	for i := 0; i < n; i++ {
		if i == m {
			continue
		}
		numerator := blsfield.FrMul(blsfield.FrSub(evals[i], y), domain[i])
		denom := blsfield.FrMul(domain[m], blsfield.FrSub(domain[m], domain[i]))
		term, err := blsfield.FrDiv(numerator, denom)
		if err != nil {
			return nil, fmt.Errorf("computeQuotient: %w", err)
		}
		sum = blsfield.FrAdd(sum, term)
	}
	q[m] = sum
	return q, nil
}

// ComputeKZGProof produces an opening proof that the polynomial committed
// to by blob evaluates to y at z, and returns y alongside the proof since
// verification needs it.
func ComputeKZGProof(blob *Blob, z [BytesPerFieldElement]byte, s *Settings) (Proof, [BytesPerFieldElement]byte, error) {
	evals, err := ValidateBlob(blob)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	zFr, err := blsfield.FrFromBytes(z)
	if err != nil {
		return Proof{}, [32]byte{}, newError(BadArgs, "ComputeKZGProof", err)
	}
	proofPoint, y, err := computeProofFromEvals(evals, zFr, s)
	if err != nil {
		return Proof{}, [32]byte{}, err
	}
	return Proof(proofPoint.Bytes()), y.Bytes(), nil
}

// computeProofFromEvals is the shared core of ComputeKZGProof and the
// aggregation path in aggregate.go, operating directly on evaluation-form
// scalars so the aggregated polynomial never has to round-trip through a
// Blob's byte encoding.
func computeProofFromEvals(evals []blsfield.Fr, zFr blsfield.Fr, s *Settings) (blsfield.G1, blsfield.Fr, error) {
	domain := s.srs.FFTSettings.RootsOfUnity
	y, idx, err := evalPolyInEvalForm(domain, evals, zFr)
	if err != nil {
		return blsfield.G1{}, blsfield.Fr{}, newError(Internal, "computeProofFromEvals", err)
	}
	q, err := computeQuotient(domain, evals, zFr, y, idx)
	if err != nil {
		return blsfield.G1{}, blsfield.Fr{}, newError(Internal, "computeProofFromEvals", err)
	}
	proofPoint, err := blsfield.G1Lincomb(s.srs.G1Lagrange, q)
	if err != nil {
		return blsfield.G1{}, blsfield.Fr{}, newError(Internal, "computeProofFromEvals", err)
	}
	return proofPoint, y, nil
}

// VerifyKZGProof checks the pairing identity
// e(proof, [tau]G2 - [z]G2) == e(commitment - [y]G1, G2).
// The returned error is non-nil only when an input could not be decoded;
// a decodable-but-invalid proof returns (false, nil).
func VerifyKZGProof(commitment Commitment, z, y [BytesPerFieldElement]byte, proof Proof, s *Settings) (bool, error) {
	cPoint, err := blsfield.G1FromCompressed(commitment[:])
	if err != nil {
		return false, newError(BadArgs, "VerifyKZGProof", err)
	}
	proofPoint, err := blsfield.G1FromCompressed(proof[:])
	if err != nil {
		return false, newError(BadArgs, "VerifyKZGProof", err)
	}
	zFr, err := blsfield.FrFromBytes(z)
	if err != nil {
		return false, newError(BadArgs, "VerifyKZGProof", err)
	}
	yFr, err := blsfield.FrFromBytes(y)
	if err != nil {
		return false, newError(BadArgs, "VerifyKZGProof", err)
	}

	g2Gen := s.srs.G2Monomial[0]
	g2Tau := s.srs.G2Monomial[1]

	xMinusZ := blsfield.G2Sub(g2Tau, blsfield.G2ScalarMul(g2Gen, zFr))
	pMinusY := blsfield.G1Sub(cPoint, blsfield.G1ScalarMul(blsfield.G1Generator(), yFr))

	ok, err := blsfield.PairingCheck(pMinusY, g2Gen, blsfield.G1Neg(proofPoint), xMinusZ)
	if err != nil {
		return false, newError(Internal, "VerifyKZGProof", err)
	}
	return ok, nil
}
