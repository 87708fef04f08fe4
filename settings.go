package kzg4844

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/eth-kzg/kzg4844/internal/blsfield"
	"github.com/eth-kzg/kzg4844/internal/trustedsetup"
)

// LoadTrustedSetup parses the text trusted-setup file at path and derives
// the Lagrange-basis commitment key. The returned Settings is owned by
// the caller; discard it by letting it go out of scope (there is no
// native-side allocation to release in this port, but FreeTrustedSetup
// documents the ownership boundary the same way the original destructor
// did).
func LoadTrustedSetup(path string) (*Settings, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newError(Io, "LoadTrustedSetup", err)
	}
	defer f.Close()

	srs, err := trustedsetup.Parse(f)
	if err != nil {
		return nil, newError(BadArgs, "LoadTrustedSetup", err)
	}
	if err := checkSetupShape(srs); err != nil {
		return nil, err
	}
	return &Settings{srs: srs}, nil
}

// LoadTrustedSetupFromBytes derives a Settings directly from concatenated
// compressed G1 points (48 bytes each) and G2 points (96 bytes each). It
// renders the points into the text format and runs the same parser
// LoadTrustedSetup uses.
func LoadTrustedSetupFromBytes(g1 []byte, g2 []byte) (*Settings, error) {
	if len(g1)%blsfield.BytesPerG1 != 0 {
		return nil, newError(BadArgs, "LoadTrustedSetupFromBytes", fmt.Errorf("g1 byte length %d is not a multiple of %d", len(g1), blsfield.BytesPerG1))
	}
	if len(g2)%blsfield.BytesPerG2 != 0 {
		return nil, newError(BadArgs, "LoadTrustedSetupFromBytes", fmt.Errorf("g2 byte length %d is not a multiple of %d", len(g2), blsfield.BytesPerG2))
	}
	n1 := len(g1) / blsfield.BytesPerG1
	n2 := len(g2) / blsfield.BytesPerG2

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n%d\n", n1, n2)
	for i := 0; i < n1; i++ {
		fmt.Fprintf(&buf, "%x\n", g1[i*blsfield.BytesPerG1:(i+1)*blsfield.BytesPerG1])
	}
	for i := 0; i < n2; i++ {
		fmt.Fprintf(&buf, "%x\n", g2[i*blsfield.BytesPerG2:(i+1)*blsfield.BytesPerG2])
	}

	srs, err := trustedsetup.Parse(&buf)
	if err != nil {
		return nil, newError(BadArgs, "LoadTrustedSetupFromBytes", err)
	}
	if err := checkSetupShape(srs); err != nil {
		return nil, err
	}
	return &Settings{srs: srs}, nil
}

func checkSetupShape(srs *trustedsetup.SRS) error {
	if len(srs.G1Monomial) != FieldElementsPerBlob {
		return newError(BadArgs, "LoadTrustedSetup", fmt.Errorf("setup has %d G1 points, want %d", len(srs.G1Monomial), FieldElementsPerBlob))
	}
	if len(srs.G2Monomial) < 2 {
		return newError(BadArgs, "LoadTrustedSetup", fmt.Errorf("setup has %d G2 points, want at least 2", len(srs.G2Monomial)))
	}
	return nil
}

// process-wide settings slot, mirroring the mutex-guarded global backend
// slot the binding layer conventionally exposes (see DESIGN.md): the core
// above never touches this state itself.
var (
	activeMu       sync.RWMutex
	activeSettings *Settings
)

// LoadTrustedSetupFile loads path into the process-wide settings slot.
// It fails if a setup is already loaded; call FreeTrustedSetup first to
// replace it.
func LoadTrustedSetupFile(path string) error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if activeSettings != nil {
		return newError(BadArgs, "LoadTrustedSetupFile", ErrSetupAlreadyLoaded)
	}
	s, err := LoadTrustedSetup(path)
	if err != nil {
		return err
	}
	activeSettings = s
	return nil
}

// FreeTrustedSetup clears the process-wide settings slot.
func FreeTrustedSetup() error {
	activeMu.Lock()
	defer activeMu.Unlock()
	if activeSettings == nil {
		return newError(BadArgs, "FreeTrustedSetup", ErrSetupNotLoaded)
	}
	activeSettings = nil
	return nil
}

// DefaultSettings returns the process-wide settings slot's contents.
func DefaultSettings() (*Settings, error) {
	activeMu.RLock()
	defer activeMu.RUnlock()
	if activeSettings == nil {
		return nil, newError(BadArgs, "DefaultSettings", ErrSetupNotLoaded)
	}
	return activeSettings, nil
}
