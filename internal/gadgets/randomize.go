package gadgets

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/dmi3yK/ironfish/pkg/generators"
)

// ExposeRandomizedPublicKey constrains randomizedKey, a public input of the
// enclosing circuit, to equal assetPublicKey + randomness·G_asset. Like the
// value commitment's blinding factor, the randomizer is folded in through
// its little-endian bit decomposition and is not reduced modulo the
// subgroup order.
func ExposeRandomizedPublicKey(
	api frontend.API,
	curve twistededwards.Curve,
	randomness frontend.Variable,
	assetPublicKey twistededwards.Point,
	randomizedKey twistededwards.Point,
) error {
	randomnessBits := api.ToBinary(randomness, api.Compiler().FieldBitLen())
	offset := fixedBaseMul(api, curve, generators.AssetKey(), randomnessBits)
	randomized := curve.Add(assetPublicKey, offset)

	api.AssertIsEqual(randomized.X, randomizedKey.X)
	api.AssertIsEqual(randomized.Y, randomizedKey.Y)
	return nil
}
