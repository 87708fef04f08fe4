package fft

import (
	"fmt"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

func isPowerOfTwo(n uint64) bool { return n != 0 && n&(n-1) == 0 }

// simpleFT is the O(n^2) base case the recursive split bottoms out to once
// the remaining width is small enough that the overhead of another split
// outweighs the quadratic blow-up.
func simpleFT(vals []blsfield.G1, valsOffset, valsStride uint64, roots []blsfield.Fr, rootsStride uint64, out []blsfield.G1) {
	l := uint64(len(out))
	for i := uint64(0); i < l; i++ {
		last := blsfield.G1Identity()
		for j := uint64(0); j < l; j++ {
			jv := vals[valsOffset+j*valsStride]
			r := roots[((i*j)%l)*rootsStride]
			last = blsfield.G1Add(last, blsfield.G1ScalarMul(jv, r))
		}
		out[i] = last
	}
}

// fftInner is the recursive radix-2 split: the left half is the transform
// of the stride-2 subsequence starting at valsOffset, the right half the
// transform of the subsequence starting at valsOffset+valsStride; the two
// are then combined with a single butterfly pass using the roots at the
// current stride.
func fftInner(vals []blsfield.G1, valsOffset, valsStride uint64, roots []blsfield.Fr, rootsStride uint64, out []blsfield.G1) {
	if len(out) <= 4 {
		simpleFT(vals, valsOffset, valsStride, roots, rootsStride, out)
		return
	}
	half := uint64(len(out)) >> 1
	fftInner(vals, valsOffset, valsStride<<1, roots, rootsStride<<1, out[:half])
	fftInner(vals, valsOffset+valsStride, valsStride<<1, roots, rootsStride<<1, out[half:])
	for i := uint64(0); i < half; i++ {
		x := out[i]
		y := out[i+half]
		yTimesRoot := blsfield.G1ScalarMul(y, roots[i*rootsStride])
		out[i] = blsfield.G1Add(x, yTimesRoot)
		out[i+half] = blsfield.G1Sub(x, yTimesRoot)
	}
}

// FFTG1 computes the forward (inverse=false) or inverse (inverse=true)
// Fourier transform of vals over G1 using the roots of unity precomputed
// in s. len(vals) must be a power of two no larger than s.MaxWidth.
func FFTG1(vals []blsfield.G1, inverse bool, s *Settings) ([]blsfield.G1, error) {
	n := uint64(len(vals))
	if n == 0 {
		return nil, fmt.Errorf("fft: empty input")
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("fft: input length %d is not a power of two", n)
	}
	if n > s.MaxWidth {
		return nil, fmt.Errorf("fft: input length %d exceeds max width %d", n, s.MaxWidth)
	}
	stride := s.MaxWidth / n

	out := make([]blsfield.G1, n)
	if inverse {
		fftInner(vals, 0, 1, s.ReverseRootsOfUnity, stride, out)
		nInv, err := blsfield.FrInv(blsfield.FrFromUint64(n))
		if err != nil {
			return nil, fmt.Errorf("fft: %w", err)
		}
		for i := range out {
			out[i] = blsfield.G1ScalarMul(out[i], nInv)
		}
		return out, nil
	}
	fftInner(vals, 0, 1, s.ExpandedRootsOfUnity, stride, out)
	return out, nil
}
