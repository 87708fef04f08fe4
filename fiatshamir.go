package kzg4844

import (
	"crypto/sha256"
	"encoding/binary"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// fiatShamirTag is the 16-byte domain separator prefixed to every
// transcript this package hashes. The exact byte layout here is
// consensus-critical: any change produces challenges no other
// implementation of this scheme will reproduce.
const fiatShamirTag = "FSBLOBVERIFY_V1_"

// computeChallenges derives the two Fiat-Shamir scalars the aggregation
// path needs from a transcript of k blobs and their k commitments:
//
//	digest = SHA256(tag || DEGREE_POLY le64 || k le64 || blobs || commitments)
//	r      = Fr(digest)
//	z      = Fr(SHA256(0x00 || digest))
//
// r folds the blobs/commitments together; z is the evaluation point the
// folded polynomial is opened at. Deriving z from a second hash of r's
// digest (rather than reusing r itself) keeps the two challenges
// independent even though both come from the same transcript.
func computeChallenges(blobs []*Blob, commitments []Commitment) (blsfield.Fr, blsfield.Fr) {
	h := sha256.New()
	h.Write([]byte(fiatShamirTag))

	var degreePoly, k [8]byte
	binary.LittleEndian.PutUint64(degreePoly[:], uint64(FieldElementsPerBlob))
	binary.LittleEndian.PutUint64(k[:], uint64(len(blobs)))
	h.Write(degreePoly[:])
	h.Write(k[:])

	for _, b := range blobs {
		h.Write(b[:])
	}
	for _, c := range commitments {
		h.Write(c[:])
	}

	var digest [32]byte
	copy(digest[:], h.Sum(nil))

	r := blsfield.FrFromDigest(digest)

	zh := sha256.New()
	zh.Write([]byte{0x00})
	zh.Write(digest[:])
	var zDigest [32]byte
	copy(zDigest[:], zh.Sum(nil))
	z := blsfield.FrFromDigest(zDigest)

	return r, z
}
