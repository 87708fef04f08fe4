package kzg4844

import (
	"fmt"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// ComputeAggregateKZGProof folds k blobs into a single polynomial using
// Fiat-Shamir randomness and returns one proof attesting to that folded
// polynomial's evaluation at a second Fiat-Shamir-derived point,
// verifiable with VerifyAggregateKZGProof against the same blobs and
// their commitments.
func ComputeAggregateKZGProof(blobs []*Blob, s *Settings) (Proof, error) {
	if len(blobs) == 0 {
		return Proof{}, newError(BadArgs, "ComputeAggregateKZGProof", fmt.Errorf("no blobs supplied"))
	}
	commitments := make([]Commitment, len(blobs))
	evalsPerBlob := make([][]blsfield.Fr, len(blobs))
	for j, b := range blobs {
		evals, err := ValidateBlob(b)
		if err != nil {
			return Proof{}, err
		}
		evalsPerBlob[j] = evals
		c, err := BlobToKZGCommitment(b, s)
		if err != nil {
			return Proof{}, err
		}
		commitments[j] = c
	}

	r, z := computeChallenges(blobs, commitments)
	aggregatedEvals := aggregatePolynomial(evalsPerBlob, r)

	proofPoint, _, err := computeProofFromEvals(aggregatedEvals, z, s)
	if err != nil {
		return Proof{}, err
	}
	return Proof(proofPoint.Bytes()), nil
}

// VerifyAggregateKZGProof recomputes the Fiat-Shamir challenges, folds the
// blobs and commitments the same way ComputeAggregateKZGProof did, and
// delegates to the single-proof verification equation.
func VerifyAggregateKZGProof(blobs []*Blob, commitments []Commitment, proof Proof, s *Settings) (bool, error) {
	if len(blobs) != len(commitments) {
		return false, newError(BadArgs, "VerifyAggregateKZGProof", fmt.Errorf("got %d blobs and %d commitments", len(blobs), len(commitments)))
	}
	if len(blobs) == 0 {
		return false, newError(BadArgs, "VerifyAggregateKZGProof", fmt.Errorf("no blobs supplied"))
	}

	evalsPerBlob := make([][]blsfield.Fr, len(blobs))
	for j, b := range blobs {
		evals, err := ValidateBlob(b)
		if err != nil {
			return false, err
		}
		evalsPerBlob[j] = evals
	}
	for _, c := range commitments {
		if err := ValidateCommitmentFormat(c[:]); err != nil {
			return false, err
		}
	}

	r, z := computeChallenges(blobs, commitments)
	aggregatedEvals := aggregatePolynomial(evalsPerBlob, r)

	yFr, _, err := evalPolyInEvalForm(s.srs.FFTSettings.RootsOfUnity, aggregatedEvals, z)
	if err != nil {
		return false, newError(Internal, "VerifyAggregateKZGProof", err)
	}

	commitmentPoints := make([]blsfield.G1, len(commitments))
	for j, c := range commitments {
		p, err := blsfield.G1FromCompressed(c[:])
		if err != nil {
			return false, newError(BadArgs, "VerifyAggregateKZGProof", err)
		}
		commitmentPoints[j] = p
	}
	powersOfR := blsfield.ComputePowers(r, len(commitments))
	aggregatedCommitment, err := blsfield.G1Lincomb(commitmentPoints, powersOfR)
	if err != nil {
		return false, newError(Internal, "VerifyAggregateKZGProof", err)
	}

	return VerifyKZGProof(Commitment(aggregatedCommitment.Bytes()), z.Bytes(), yFr.Bytes(), proof, s)
}

// aggregatePolynomial combines per-blob evaluation-form coefficients with
// powers of the Fiat-Shamir randomness r: aggregated[i] = sum_j r^j *
// evals[j][i]. Prover and verifier call this with the same evalsPerBlob
// and r, so they fold identically.
func aggregatePolynomial(evalsPerBlob [][]blsfield.Fr, r blsfield.Fr) []blsfield.Fr {
	n := len(evalsPerBlob[0])
	powersOfR := blsfield.ComputePowers(r, len(evalsPerBlob))
	out := make([]blsfield.Fr, n)
	for i := 0; i < n; i++ {
		out[i] = blsfield.FrFromUint64(0)
	}
	for j, evals := range evalsPerBlob {
		for i := 0; i < n; i++ {
			out[i] = blsfield.FrAdd(out[i], blsfield.FrMul(powersOfR[j], evals[i]))
		}
	}
	return out
}
