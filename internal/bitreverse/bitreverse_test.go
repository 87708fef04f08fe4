package bitreverse

import "testing"

func TestReverse(t *testing.T) {
	cases := []struct {
		x     uint32
		width uint
		want  uint32
	}{
		{0b001, 3, 0b100},
		{0b110, 3, 0b011},
		{0, 4, 0},
		{1, 1, 1},
	}
	for _, c := range cases {
		if got := Reverse(c.x, c.width); got != c.want {
			t.Errorf("Reverse(%b, %d) = %b, want %b", c.x, c.width, got, c.want)
		}
	}
}

func TestPermuteRejectsNonPowerOfTwo(t *testing.T) {
	arr := make([]int, 3)
	if err := Permute(arr); err == nil {
		t.Fatal("expected error for non-power-of-two length")
	}
}

func TestPermuteIsInvolution(t *testing.T) {
	n := 16
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}
	orig := append([]int(nil), arr...)
	if err := Permute(arr); err != nil {
		t.Fatal(err)
	}
	if err := Permute(arr); err != nil {
		t.Fatal(err)
	}
	for i := range arr {
		if arr[i] != orig[i] {
			t.Errorf("index %d: got %d, want %d after double permutation", i, arr[i], orig[i])
		}
	}
}

func TestPermuteKnownPattern(t *testing.T) {
	arr := []int{0, 1, 2, 3, 4, 5, 6, 7}
	if err := Permute(arr); err != nil {
		t.Fatal(err)
	}
	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range arr {
		if arr[i] != want[i] {
			t.Fatalf("got %v, want %v", arr, want)
		}
	}
}
