package fft

import (
	"fmt"

	"github.com/eth-kzg/kzg4844/internal/bitreverse"
	"github.com/eth-kzg/kzg4844/internal/blsfield"
)

// Settings holds the precomputed roots of unity an FFT over G1 of a given
// width needs, plus the bit-reversed domain the commitment/proof routines
// index blobs against.
type Settings struct {
	MaxWidth             uint64
	ExpandedRootsOfUnity []blsfield.Fr // length MaxWidth+1, index i holds root^i
	ReverseRootsOfUnity  []blsfield.Fr // length MaxWidth+1, index i holds root^-i
	RootsOfUnity         []blsfield.Fr // length MaxWidth, expanded[0..MaxWidth) bit-reversal permuted
}

// NewSettings builds the roots-of-unity tables for an evaluation domain of
// size 2^scale.
//
//  1. derive a primitive root of unity of the requested order,
//  2. expand it into every power 0..2^scale,
//  3. check the termination invariant: the last power must wrap back to 1,
//  4. derive the reciprocal table the inverse transform needs,
//  5. bit-reverse permute a trimmed copy into the domain blobs are indexed
//     against.
func NewSettings(scale uint) (*Settings, error) {
	root, err := rootOfUnity(scale)
	if err != nil {
		return nil, err
	}
	width := uint64(1) << scale
	expanded := make([]blsfield.Fr, width+1)
	expanded[0] = blsfield.FrFromUint64(1)
	for i := uint64(1); i <= width; i++ {
		expanded[i] = blsfield.FrMul(expanded[i-1], root)
	}
	if !expanded[width].Equal(expanded[0]) {
		return nil, fmt.Errorf("fft: root of unity of order %d does not terminate at 1", width)
	}
	for i := uint64(1); i < width; i++ {
		if expanded[i].IsOne() {
			return nil, fmt.Errorf("fft: root of unity of order %d cycles early at index %d", width, i)
		}
	}

	reverse := make([]blsfield.Fr, width+1)
	reverse[0] = expanded[0]
	for i := uint64(1); i <= width; i++ {
		reverse[i] = expanded[width-i]
	}

	domain := make([]blsfield.Fr, width)
	copy(domain, expanded[:width])
	if err := bitreverse.Permute(domain); err != nil {
		return nil, fmt.Errorf("fft: %w", err)
	}

	return &Settings{
		MaxWidth:             width,
		ExpandedRootsOfUnity: expanded,
		ReverseRootsOfUnity:  reverse,
		RootsOfUnity:         domain,
	}, nil
}
