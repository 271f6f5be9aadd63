package witness

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark/frontend"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/pkg/asset"
	"github.com/dmi3yK/ironfish/pkg/pedersen"
)

// Build computes the public points and preimage words for one asset creation
// and assembles the full gnark witness. valueRandomness and keyRandomness
// are Jubjub scalars in [0, pedersen.Order()), normally drawn with
// pedersen.RandomScalar.
func Build(info asset.AssetInfo, value uint64, valueRandomness, keyRandomness *big.Int) (*Bundle, error) {
	if valueRandomness == nil || keyRandomness == nil {
		return nil, fmt.Errorf("witness: randomness scalars must not be nil")
	}

	commitment := pedersen.Commit(value, valueRandomness)
	randomizedKey := pedersen.RandomizePublicKey(info.PublicKey, keyRandomness)
	words := PreimageWords(info)

	assignment := &circuits.AssetCircuit{
		Nonce:               info.Nonce,
		Value:               value,
		ValueRandomness:     valueRandomness,
		PublicKeyRandomness: keyRandomness,
	}
	assignment.ValueCommitment.X = commitment.X.BigInt(new(big.Int))
	assignment.ValueCommitment.Y = commitment.Y.BigInt(new(big.Int))
	assignment.RandomizedPublicKey.X = randomizedKey.X.BigInt(new(big.Int))
	assignment.RandomizedPublicKey.Y = randomizedKey.Y.BigInt(new(big.Int))
	assignment.AssetPublicKey.X = info.PublicKey.X.BigInt(new(big.Int))
	assignment.AssetPublicKey.Y = info.PublicKey.Y.BigInt(new(big.Int))
	for i, b := range info.Name {
		assignment.Name[i] = b
	}
	for i, b := range info.Metadata {
		assignment.Metadata[i] = b
	}
	for i, w := range words {
		assignment.PreimageWords[i] = w
	}

	full, err := frontend.NewWitness(assignment, circuits.Curve().ScalarField())
	if err != nil {
		return nil, fmt.Errorf("witness: %w", err)
	}

	pub := PublicInputs{
		ValueCommitmentX:     commitment.X.BigInt(new(big.Int)).String(),
		ValueCommitmentY:     commitment.Y.BigInt(new(big.Int)).String(),
		RandomizedPublicKeyX: randomizedKey.X.BigInt(new(big.Int)).String(),
		RandomizedPublicKeyY: randomizedKey.Y.BigInt(new(big.Int)).String(),
	}
	for i, w := range words {
		pub.PreimageWords[i] = w.String()
	}

	return &Bundle{Full: full, Public: pub, Assignment: assignment}, nil
}

// PreimageWords packs the native identity preimage into the same
// little-endian words the circuit exposes publicly. Bit k of the preimage
// sequence is bit k%8 of byte k/8, so the whole sequence reads as one
// little-endian integer split into 248-bit words.
func PreimageWords(info asset.AssetInfo) [circuits.PreimageWordCount]*big.Int {
	preimage := info.Preimage()

	le := make([]byte, len(preimage))
	for i, b := range preimage {
		le[len(preimage)-1-i] = b
	}
	acc := new(big.Int).SetBytes(le)

	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), circuits.PreimageWordBits), big.NewInt(1))
	var words [circuits.PreimageWordCount]*big.Int
	for i := range words {
		w := new(big.Int).Rsh(acc, uint(i*circuits.PreimageWordBits))
		words[i] = w.And(w, mask)
	}
	return words
}
