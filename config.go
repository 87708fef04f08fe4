package kzg4844

// BytesPerFieldElement is the canonical encoded size of a scalar.
const BytesPerFieldElement = 32

// BytesPerCommitment is the compressed G1 encoding size of a commitment.
const BytesPerCommitment = 48

// BytesPerProof is the compressed G1 encoding size of a proof.
const BytesPerProof = 48

// BytesPerBlob is the wire size of a blob: one field element per scalar.
const BytesPerBlob = FieldElementsPerBlob * BytesPerFieldElement

// BLSModulus is the BLS12-381 scalar field order, decimal.
const BLSModulus = "52435875175126190479447740508185965837690552500527637822603658699938581184513"

// GetFieldElementsPerBlob returns the compile-time blob width.
func GetFieldElementsPerBlob() int { return FieldElementsPerBlob }
