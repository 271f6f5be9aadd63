package gadgets

import (
	"math/big"

	jubjub "github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/dmi3yK/ironfish/pkg/generators"
)

// ValueCommitmentWitness pairs a 64-bit note value with the blinding factor
// used to commit to it. Both are consumed exactly once per circuit
// construction.
type ValueCommitmentWitness struct {
	Value      frontend.Variable
	Randomness frontend.Variable
}

// ExposeValueCommitment constrains commitment, a public input of the
// enclosing circuit, to equal the Pedersen commitment
// value·G_value + randomness·G_randomness. The value's 64 little-endian bits
// are returned so callers can reuse them, e.g. for range constraints in a
// wider spend circuit.
//
// The blinding factor is folded in through its little-endian bit
// decomposition; beyond the decomposition itself no constraint is placed on
// the scalar — in particular it is not reduced modulo the subgroup order,
// which does not affect the commitment's hiding or binding.
func ExposeValueCommitment(
	api frontend.API,
	curve twistededwards.Curve,
	vc ValueCommitmentWitness,
	commitment twistededwards.Point,
) ([]frontend.Variable, error) {
	valueBits := U64ToBitsLE(api, vc.Value)
	if len(valueBits) != 64 {
		return nil, ErrUnsatisfiable
	}
	randomnessBits := api.ToBinary(vc.Randomness, api.Compiler().FieldBitLen())

	valuePoint := fixedBaseMul(api, curve, generators.ValueCommitmentValue(), valueBits)
	randomnessPoint := fixedBaseMul(api, curve, generators.ValueCommitmentRandomness(), randomnessBits)
	cv := curve.Add(valuePoint, randomnessPoint)

	api.AssertIsEqual(cv.X, commitment.X)
	api.AssertIsEqual(cv.Y, commitment.Y)

	return valueBits, nil
}

// constPoint lifts a native Jubjub point into the circuit as a constant.
func constPoint(p jubjub.PointAffine) twistededwards.Point {
	return twistededwards.Point{
		X: p.X.BigInt(new(big.Int)),
		Y: p.Y.BigInt(new(big.Int)),
	}
}
