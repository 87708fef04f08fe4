package blsfield

import "testing"

func TestFrRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 12345, 1 << 40} {
		f := FrFromUint64(v)
		b := f.Bytes()
		back, err := FrFromBytes(b)
		if err != nil {
			t.Fatalf("value %d: %v", v, err)
		}
		if !back.Equal(f) {
			t.Fatalf("value %d: round trip mismatch", v)
		}
	}
}

func TestFrFromBytesRejectsOutOfRange(t *testing.T) {
	var b [32]byte
	for i := range b {
		b[i] = 0xff
	}
	if _, err := FrFromBytes(b); err == nil {
		t.Fatal("expected error for scalar >= modulus")
	}
}

func TestFrInvZeroErrors(t *testing.T) {
	if _, err := FrInv(FrFromUint64(0)); err == nil {
		t.Fatal("expected error inverting zero")
	}
}

func TestFrArithmetic(t *testing.T) {
	a := FrFromUint64(7)
	b := FrFromUint64(5)
	if !FrAdd(a, b).Equal(FrFromUint64(12)) {
		t.Fatal("add mismatch")
	}
	if !FrMul(a, b).Equal(FrFromUint64(35)) {
		t.Fatal("mul mismatch")
	}
	inv, err := FrInv(a)
	if err != nil {
		t.Fatal(err)
	}
	if !FrMul(a, inv).IsOne() {
		t.Fatal("a * a^-1 != 1")
	}
}

func TestG1CompressedRoundTrip(t *testing.T) {
	g := G1Generator()
	b := g.Bytes()
	back, err := G1FromCompressed(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if !g.Equal(back) {
		t.Fatal("G1 round trip mismatch")
	}
}

func TestG1IdentityIsIdentity(t *testing.T) {
	if !G1Identity().IsIdentity() {
		t.Fatal("G1Identity() is not the identity")
	}
}

func TestG1ScalarMulFastPaths(t *testing.T) {
	g := G1Generator()
	if !G1ScalarMul(g, FrFromUint64(0)).IsIdentity() {
		t.Fatal("scalar 0 must yield identity")
	}
	if !G1ScalarMul(g, FrFromUint64(1)).Equal(g) {
		t.Fatal("scalar 1 must yield the same point")
	}
	doubled := G1Add(g, g)
	if !G1ScalarMul(g, FrFromUint64(2)).Equal(doubled) {
		t.Fatal("scalar 2 must equal g+g")
	}
}

func TestG1LincombMatchesManualSum(t *testing.T) {
	g := G1Generator()
	points := make([]G1, 10)
	scalars := make([]Fr, 10)
	expect := G1Identity()
	for i := range points {
		points[i] = G1ScalarMul(g, FrFromUint64(uint64(i+1)))
		scalars[i] = FrFromUint64(uint64(2*i + 1))
		expect = G1Add(expect, G1ScalarMul(points[i], scalars[i]))
	}
	got, err := G1Lincomb(points, scalars)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(expect) {
		t.Fatal("G1Lincomb mismatch with manual accumulation")
	}
}

func TestG2CompressedRoundTrip(t *testing.T) {
	g := G2Generator()
	b := g.Bytes()
	back, err := G2FromCompressed(b[:])
	if err != nil {
		t.Fatal(err)
	}
	if back.Affine() != g.Affine() {
		t.Fatal("G2 round trip mismatch")
	}
}

func TestPairingCheckConsistentCombination(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	s := FrFromUint64(42)
	// e([s]g1, g2) * e(-g1, [s]g2) == 1, since e([s]g1,g2) == e(g1,[s]g2).
	sg1 := G1ScalarMul(g1, s)
	sg2 := G2ScalarMul(g2, s)
	ok, err := PairingCheck(sg1, g2, G1Neg(g1), sg2)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected pairing check to hold for e([s]g1,g2) == e(g1,[s]g2)")
	}
}

func TestPairingCheckDetectsMismatch(t *testing.T) {
	g1 := G1Generator()
	g2 := G2Generator()
	s := FrFromUint64(42)
	wrong := FrFromUint64(43)
	sg1 := G1ScalarMul(g1, s)
	wrongG2 := G2ScalarMul(g2, wrong)
	ok, err := PairingCheck(sg1, g2, G1Neg(g1), wrongG2)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("pairing check should fail for mismatched scalars")
	}
}
