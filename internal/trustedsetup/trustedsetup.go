// Package trustedsetup parses the text-format "powers of tau" ceremony
// output and derives the Lagrange-basis commitment key the commitment and
// proof routines need, by inverse-FFT-ing the monomial-basis G1 powers the
// file stores.
package trustedsetup

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/eth-kzg/kzg4844/internal/bitreverse"
	"github.com/eth-kzg/kzg4844/internal/blsfield"
	"github.com/eth-kzg/kzg4844/internal/fft"
)

// SRS is the derived structured reference string: the monomial-basis
// powers as read from the file, and the Lagrange-basis G1 points the
// single-MSM blob commitment is computed against.
type SRS struct {
	G1Monomial []blsfield.G1
	G1Lagrange []blsfield.G1
	G2Monomial []blsfield.G2
	FFTSettings *fft.Settings
}

// Parse reads the text trusted-setup format: a line holding n1 (the number
// of G1 points, one per supported field element per blob), a line holding
// n2 (the number of G2 points), then n1 hex-encoded compressed G1 points
// and n2 hex-encoded compressed G2 points, one per line.
func Parse(r io.Reader) (*SRS, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1024*1024)

	n1, err := readCount(scanner, "n1")
	if err != nil {
		return nil, err
	}
	n2, err := readCount(scanner, "n2")
	if err != nil {
		return nil, err
	}
	if n1 == 0 || !isPowerOfTwo(uint64(n1)) {
		return nil, fmt.Errorf("trustedsetup: n1 (%d) must be a nonzero power of two", n1)
	}
	if n2 == 0 {
		return nil, fmt.Errorf("trustedsetup: n2 must be nonzero")
	}

	g1Monomial := make([]blsfield.G1, n1)
	for i := 0; i < n1; i++ {
		b, err := readHexLine(scanner, blsfield.BytesPerG1)
		if err != nil {
			return nil, fmt.Errorf("trustedsetup: G1 point %d: %w", i, err)
		}
		p, err := blsfield.G1FromCompressed(b)
		if err != nil {
			return nil, fmt.Errorf("trustedsetup: G1 point %d: %w", i, err)
		}
		g1Monomial[i] = p
	}

	g2Monomial := make([]blsfield.G2, n2)
	for i := 0; i < n2; i++ {
		b, err := readHexLine(scanner, blsfield.BytesPerG2)
		if err != nil {
			return nil, fmt.Errorf("trustedsetup: G2 point %d: %w", i, err)
		}
		p, err := blsfield.G2FromCompressed(b)
		if err != nil {
			return nil, fmt.Errorf("trustedsetup: G2 point %d: %w", i, err)
		}
		g2Monomial[i] = p
	}

	scale := uint(0)
	for (uint64(1) << scale) < uint64(n1) {
		scale++
	}
	settings, err := fft.NewSettings(scale)
	if err != nil {
		return nil, fmt.Errorf("trustedsetup: %w", err)
	}

	lagrange, err := fft.FFTG1(g1Monomial, true, settings)
	if err != nil {
		return nil, fmt.Errorf("trustedsetup: deriving Lagrange basis: %w", err)
	}
	if err := bitreverse.Permute(lagrange); err != nil {
		return nil, fmt.Errorf("trustedsetup: %w", err)
	}

	return &SRS{
		G1Monomial:  g1Monomial,
		G1Lagrange:  lagrange,
		G2Monomial:  g2Monomial,
		FFTSettings: settings,
	}, nil
}

func isPowerOfTwo(n uint64) bool { return n != 0 && n&(n-1) == 0 }

func readCount(scanner *bufio.Scanner, field string) (int, error) {
	if !scanner.Scan() {
		return 0, fmt.Errorf("trustedsetup: missing %s: %w", field, scanner.Err())
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return 0, fmt.Errorf("trustedsetup: invalid %s: %w", field, err)
	}
	return n, nil
}

func readHexLine(scanner *bufio.Scanner, wantLen int) ([]byte, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("unexpected end of input")
	}
	b, err := hex.DecodeString(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	if len(b) != wantLen {
		return nil, fmt.Errorf("expected %d bytes, got %d", wantLen, len(b))
	}
	return b, nil
}
