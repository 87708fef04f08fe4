//go:build !minimal

package kzg4844

// FieldElementsPerBlob is the mainnet preset: one blob carries 4096 scalars.
const FieldElementsPerBlob = 4096
