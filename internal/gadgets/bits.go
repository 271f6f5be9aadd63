package gadgets

import (
	"errors"

	"github.com/consensys/gnark/frontend"
)

// ErrUnsatisfiable reports a violated circuit-shape invariant, e.g. a byte
// slice whose length does not match its declared byte count. It signals a
// programming defect in the enclosing circuit, never bad witness data, so
// callers must treat it as fatal and abort circuit construction.
var ErrUnsatisfiable = errors.New("gadgets: unsatisfiable constraint system")

// BytesToBitsLE decomposes each byte into 8 boolean wires, least significant
// bit first, bytes kept in input order. The result holds exactly byteLength*8
// wires regardless of witness values; the decomposition also range-checks
// every byte to [0, 256). Witness optionality comes from gnark itself:
// during compilation the wires carry no values (verifier shape pass), during
// witness solving they carry the assigned bytes.
func BytesToBitsLE(api frontend.API, bytes []frontend.Variable, byteLength int) ([]frontend.Variable, error) {
	if len(bytes) != byteLength {
		return nil, ErrUnsatisfiable
	}

	bits := make([]frontend.Variable, 0, byteLength*8)
	for _, b := range bytes {
		bits = append(bits, api.ToBinary(b, 8)...)
	}

	if len(bits) != byteLength*8 {
		return nil, ErrUnsatisfiable
	}
	return bits, nil
}

// U64ToBitsLE decomposes a 64-bit value into its little-endian bits,
// constraining the value to [0, 2^64).
func U64ToBitsLE(api frontend.API, v frontend.Variable) []frontend.Variable {
	return api.ToBinary(v, 64)
}
