package kzg4844

import (
	"github.com/eth-kzg/kzg4844/internal/fft"
	"github.com/eth-kzg/kzg4844/internal/trustedsetup"
)

// Blob is a fixed-size vector of FieldElementsPerBlob canonical scalars,
// each 32 bytes little-endian, concatenated in order.
type Blob [BytesPerBlob]byte

// Commitment is a compressed G1 point.
type Commitment [BytesPerCommitment]byte

// Proof is a compressed G1 point.
type Proof [BytesPerProof]byte

// Settings is the immutable, caller-owned derivation of a trusted setup:
// the Lagrange-basis commitment key, the two G2 points verification
// needs, and the FFT tables both were built from. Safe for concurrent
// read-only use once constructed; there is no way to mutate one in place.
type Settings struct {
	srs *trustedsetup.SRS
}

// Length is the number of Lagrange-basis G1 points, equal to
// FieldElementsPerBlob for a correctly sized setup.
func (s *Settings) Length() int { return len(s.srs.G1Lagrange) }

func (s *Settings) fftSettings() *fft.Settings { return s.srs.FFTSettings }
