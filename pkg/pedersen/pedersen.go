// Package pedersen implements the native (out-of-circuit) mirror of the
// in-circuit commitment gadgets. Witness builders use it to compute the
// public points a proof commits to; tests use it as the reference the
// circuit must agree with.
package pedersen

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"

	"github.com/dmi3yK/ironfish/pkg/generators"
)

// Order returns the order of the prime-order Jubjub subgroup. Scalars
// handed to Commit and RandomizePublicKey are expected in [0, Order).
func Order() *big.Int {
	params := twistededwards.GetEdwardsCurve()
	return new(big.Int).Set(&params.Order)
}

// Commit computes the Pedersen commitment
// value·G_value + randomness·G_randomness on Jubjub.
func Commit(value uint64, randomness *big.Int) twistededwards.PointAffine {
	gv := generators.ValueCommitmentValue()
	gr := generators.ValueCommitmentRandomness()

	var valuePoint, randomnessPoint, out twistededwards.PointAffine
	valuePoint.ScalarMultiplication(&gv, new(big.Int).SetUint64(value))
	randomnessPoint.ScalarMultiplication(&gr, reduce(randomness))
	out.Add(&valuePoint, &randomnessPoint)
	return out
}

// RandomizePublicKey computes publicKey + randomness·G_asset.
func RandomizePublicKey(publicKey twistededwards.PointAffine, randomness *big.Int) twistededwards.PointAffine {
	ga := generators.AssetKey()

	var offset, out twistededwards.PointAffine
	offset.ScalarMultiplication(&ga, reduce(randomness))
	out.Add(&publicKey, &offset)
	return out
}

// RandomScalar draws a uniform scalar in [0, Order) from r, which is
// typically crypto/rand.Reader.
func RandomScalar(r io.Reader) (*big.Int, error) {
	if r == nil {
		r = rand.Reader
	}
	return rand.Int(r, Order())
}

func reduce(s *big.Int) *big.Int {
	return new(big.Int).Mod(s, Order())
}
