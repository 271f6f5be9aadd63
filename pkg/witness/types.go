package witness

import (
	"fmt"
	"math/big"

	backendwitness "github.com/consensys/gnark/backend/witness"

	"github.com/dmi3yK/ironfish/circuits"
)

// PublicInputs is the JSON-serializable verifier view of one asset proof.
// Coordinates and preimage words are decimal field elements.
type PublicInputs struct {
	ValueCommitmentX     string                             `json:"valueCommitmentX"`
	ValueCommitmentY     string                             `json:"valueCommitmentY"`
	RandomizedPublicKeyX string                             `json:"randomizedPublicKeyX"`
	RandomizedPublicKeyY string                             `json:"randomizedPublicKeyY"`
	PreimageWords        [circuits.PreimageWordCount]string `json:"preimageWords"`
}

// Bundle pairs the full prover witness with its public view and the raw
// assignment it was built from.
type Bundle struct {
	Full       backendwitness.Witness
	Public     PublicInputs
	Assignment *circuits.AssetCircuit
}

// Assignment rebuilds the public-only circuit assignment the verifier needs
// to reconstruct the public witness.
func (p PublicInputs) Assignment() (*circuits.AssetCircuit, error) {
	cvX, err := parseField("valueCommitmentX", p.ValueCommitmentX)
	if err != nil {
		return nil, err
	}
	cvY, err := parseField("valueCommitmentY", p.ValueCommitmentY)
	if err != nil {
		return nil, err
	}
	rkX, err := parseField("randomizedPublicKeyX", p.RandomizedPublicKeyX)
	if err != nil {
		return nil, err
	}
	rkY, err := parseField("randomizedPublicKeyY", p.RandomizedPublicKeyY)
	if err != nil {
		return nil, err
	}

	out := &circuits.AssetCircuit{}
	out.ValueCommitment.X = cvX
	out.ValueCommitment.Y = cvY
	out.RandomizedPublicKey.X = rkX
	out.RandomizedPublicKey.Y = rkY
	for i, w := range p.PreimageWords {
		word, err := parseField(fmt.Sprintf("preimageWords[%d]", i), w)
		if err != nil {
			return nil, err
		}
		out.PreimageWords[i] = word
	}
	return out, nil
}

func parseField(name, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("witness: %s is not a decimal field element: %q", name, s)
	}
	return v, nil
}
