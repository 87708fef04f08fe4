package kzg4844

import (
	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// BlobToKZGCommitment commits to blob as a single MSM against the
// Lagrange-basis setup: the blob scalars are already evaluations of the
// committed polynomial on the setup's domain, so no FFT is needed here.
func BlobToKZGCommitment(blob *Blob, s *Settings) (Commitment, error) {
	scalars, err := ValidateBlob(blob)
	if err != nil {
		return Commitment{}, err
	}
	sum, err := blsfield.G1Lincomb(s.srs.G1Lagrange, scalars)
	if err != nil {
		return Commitment{}, newError(Internal, "BlobToKZGCommitment", err)
	}
	return Commitment(sum.Bytes()), nil
}
