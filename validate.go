package kzg4844

import (
	"fmt"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// ValidateBlob checks that b decodes as FieldElementsPerBlob canonical
// scalars and returns them, or a BadArgs error naming the first
// non-canonical chunk.
func ValidateBlob(b *Blob) ([]blsfield.Fr, error) {
	out := make([]blsfield.Fr, FieldElementsPerBlob)
	for i := 0; i < FieldElementsPerBlob; i++ {
		var chunk [BytesPerFieldElement]byte
		copy(chunk[:], b[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement])
		f, err := blsfield.FrFromBytes(chunk)
		if err != nil {
			return nil, newError(BadArgs, "ValidateBlob", fmt.Errorf("field element %d: %w", i, err))
		}
		out[i] = f
	}
	return out, nil
}

// ValidateCommitmentFormat checks the byte length of a commitment. The
// curve/subgroup check happens at decompression time in the functions
// that actually consume the point.
func ValidateCommitmentFormat(c []byte) error {
	if len(c) != BytesPerCommitment {
		return newError(BadArgs, "ValidateCommitmentFormat", fmt.Errorf("commitment must be %d bytes, got %d", BytesPerCommitment, len(c)))
	}
	return nil
}

// ValidateProofFormat checks the byte length of a proof.
func ValidateProofFormat(p []byte) error {
	if len(p) != BytesPerProof {
		return newError(BadArgs, "ValidateProofFormat", fmt.Errorf("proof must be %d bytes, got %d", BytesPerProof, len(p)))
	}
	return nil
}
