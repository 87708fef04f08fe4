package kzg4844

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// These tests build a small toy setup rather than loading a real ceremony
// file, but still size it to FieldElementsPerBlob; run with -tags minimal
// for a fast 4-point domain instead of the mainnet 4096-point one.

// buildToySetup renders a trusted-setup file for a small toy secret
// entirely in Go, matching the byte layout LoadTrustedSetup expects.
func buildToySetup(t *testing.T, tau uint64) *Settings {
	t.Helper()
	var b strings.Builder
	n1 := FieldElementsPerBlob
	n2 := 2
	b.WriteString(itoa(n1))
	b.WriteByte('\n')
	b.WriteString(itoa(n2))
	b.WriteByte('\n')

	g1 := blsfield.G1Generator()
	power := blsfield.FrFromUint64(1)
	tauFr := blsfield.FrFromUint64(tau)
	for i := 0; i < n1; i++ {
		p := blsfield.G1ScalarMul(g1, power)
		pb := p.Bytes()
		b.WriteString(hex.EncodeToString(pb[:]))
		b.WriteByte('\n')
		power = blsfield.FrMul(power, tauFr)
	}

	g2 := blsfield.G2Generator()
	power = blsfield.FrFromUint64(1)
	for i := 0; i < n2; i++ {
		p := blsfield.G2ScalarMul(g2, power)
		pb := p.Bytes()
		b.WriteString(hex.EncodeToString(pb[:]))
		b.WriteByte('\n')
		power = blsfield.FrMul(power, tauFr)
	}

	s, err := LoadTrustedSetup(writeTempFile(t, b.String()))
	if err != nil {
		t.Fatalf("buildToySetup: %v", err)
	}
	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "setup.txt")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestZeroBlobCommitmentIsIdentity(t *testing.T) {
	s := buildToySetup(t, 5)
	var blob Blob
	c, err := BlobToKZGCommitment(&blob, s)
	if err != nil {
		t.Fatal(err)
	}
	if !blsfield.G1Identity().Equal(mustDecompressG1(t, c)) {
		t.Fatal("zero blob must commit to the G1 identity")
	}
}

func TestConstantPolynomialProofVerifies(t *testing.T) {
	s := buildToySetup(t, 7)
	var blob Blob
	one := blsfield.FrFromUint64(1).Bytes()
	for i := 0; i < FieldElementsPerBlob; i++ {
		copy(blob[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement], one[:])
	}

	commitment, err := BlobToKZGCommitment(&blob, s)
	if err != nil {
		t.Fatal(err)
	}

	var z [BytesPerFieldElement]byte
	z[0] = 0x11
	proof, y, err := ComputeKZGProof(&blob, z, s)
	if err != nil {
		t.Fatal(err)
	}
	if !blsfield.FrFromUint64(1).Equal(mustFr(t, y)) {
		t.Fatalf("constant-1 polynomial must evaluate to 1 everywhere")
	}

	ok, err := VerifyKZGProof(commitment, z, y, proof, s)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("proof must verify")
	}

	wrongY := blsfield.FrFromUint64(2).Bytes()
	ok, err = VerifyKZGProof(commitment, z, wrongY, proof, s)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("proof must not verify against a wrong y")
	}
}

func TestVerifyKZGProofRejectsIdentityProof(t *testing.T) {
	s := buildToySetup(t, 11)
	// A non-constant polynomial: for a constant one the quotient is zero and
	// the identity really is the correct proof.
	var blob Blob
	for i := 0; i < FieldElementsPerBlob; i++ {
		v := blsfield.FrFromUint64(uint64(i + 1)).Bytes()
		copy(blob[i*BytesPerFieldElement:(i+1)*BytesPerFieldElement], v[:])
	}
	commitment, err := BlobToKZGCommitment(&blob, s)
	if err != nil {
		t.Fatal(err)
	}
	var z [BytesPerFieldElement]byte
	z[0] = 0x22
	_, y, err := ComputeKZGProof(&blob, z, s)
	if err != nil {
		t.Fatal(err)
	}
	identityProof := Proof(blsfield.G1Identity().Bytes())
	ok, err := VerifyKZGProof(commitment, z, y, identityProof, s)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("substituting the identity for the proof must not verify")
	}
}

func TestAggregateProofSingleBlob(t *testing.T) {
	s := buildToySetup(t, 13)
	var blob Blob
	blob[0] = 0x42
	commitment, err := BlobToKZGCommitment(&blob, s)
	if err != nil {
		t.Fatal(err)
	}
	proof, err := ComputeAggregateKZGProof([]*Blob{&blob}, s)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := VerifyAggregateKZGProof([]*Blob{&blob}, []Commitment{commitment}, proof, s)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("aggregate proof of a single blob must verify")
	}

	blob[0] ^= 0xff
	corruptedCommitment, err := BlobToKZGCommitment(&blob, s)
	if err != nil {
		t.Fatal(err)
	}
	ok, err = VerifyAggregateKZGProof([]*Blob{&blob}, []Commitment{corruptedCommitment}, proof, s)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("corrupting the blob must flip the verdict to false")
	}
}

func TestFiatShamirEmptyInputVector(t *testing.T) {
	r1, z1 := computeChallenges(nil, nil)
	r2, z2 := computeChallenges(nil, nil)
	if !r1.Equal(r2) || !z1.Equal(z2) {
		t.Fatal("Fiat-Shamir challenges must be deterministic for identical input")
	}
}

func mustDecompressG1(t *testing.T, c Commitment) blsfield.G1 {
	t.Helper()
	p, err := blsfield.G1FromCompressed(c[:])
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func mustFr(t *testing.T, b [BytesPerFieldElement]byte) blsfield.Fr {
	t.Helper()
	f, err := blsfield.FrFromBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	return f
}
