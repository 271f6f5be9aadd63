package circuits

import (
	"github.com/consensys/gnark-crypto/ecc"
	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"

	"github.com/dmi3yK/ironfish/internal/gadgets"
)

// Curve returns the proving curve. The circuit works over BLS12-381 so the
// in-circuit Edwards curve is Jubjub.
func Curve() ecc.ID { return ecc.BLS12_381 }

// The 1128-bit identity preimage is packed into little-endian words of at
// most 248 bits each so it can cross the public-input boundary as field
// elements. 248 keeps every word strictly below the 255-bit field size.
const (
	PreimageWordBits  = 248
	PreimageWordCount = (gadgets.PreimageBitLength + PreimageWordBits - 1) / PreimageWordBits
)

// AssetCircuit proves that an asset creation is well-formed: the public
// value commitment is a Pedersen commitment to the secret value, the public
// randomized key was derived from the asset public key with the secret
// randomizer, and the public preimage words are the packed identity preimage
// of the secret asset fields. The downstream identifier hash over the
// preimage stays outside the circuit.
type AssetCircuit struct {
	ValueCommitment     twistededwards.Point                 `gnark:",public"`
	RandomizedPublicKey twistededwards.Point                 `gnark:",public"`
	PreimageWords       [PreimageWordCount]frontend.Variable `gnark:",public"`

	AssetPublicKey      twistededwards.Point
	Name                [gadgets.NameLength]frontend.Variable
	Metadata            [gadgets.MetadataLength]frontend.Variable
	Nonce               frontend.Variable
	Value               frontend.Variable
	ValueRandomness     frontend.Variable
	PublicKeyRandomness frontend.Variable
}

func (c *AssetCircuit) Define(api frontend.API) error {
	curve, err := twistededwards.NewEdCurve(api, tedwards.BLS12_381)
	if err != nil {
		return err
	}
	curve.AssertIsOnCurve(c.AssetPublicKey)

	preimage, err := gadgets.AssetInfoPreimage(api, c.AssetPublicKey, c.Name[:], c.Metadata[:], c.Nonce)
	if err != nil {
		return err
	}
	for i := 0; i < PreimageWordCount; i++ {
		lo := i * PreimageWordBits
		hi := lo + PreimageWordBits
		if hi > len(preimage) {
			hi = len(preimage)
		}
		api.AssertIsEqual(api.FromBinary(preimage[lo:hi]...), c.PreimageWords[i])
	}

	// The returned value bits are for reuse by wider spend/output circuits;
	// this circuit has no further constraints on them.
	if _, err := gadgets.ExposeValueCommitment(api, curve, gadgets.ValueCommitmentWitness{
		Value:      c.Value,
		Randomness: c.ValueRandomness,
	}, c.ValueCommitment); err != nil {
		return err
	}

	return gadgets.ExposeRandomizedPublicKey(api, curve, c.PublicKeyRandomness, c.AssetPublicKey, c.RandomizedPublicKey)
}
