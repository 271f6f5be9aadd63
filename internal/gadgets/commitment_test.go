package gadgets_test

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
	"testing"

	tedwards "github.com/consensys/gnark-crypto/ecc/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/internal/gadgets"
	"github.com/dmi3yK/ironfish/pkg/pedersen"
)

/* ---------------- circuit ---------------- */

type valueCommitmentCircuit struct {
	Commitment twistededwards.Point `gnark:",public"`

	Value      frontend.Variable
	Randomness frontend.Variable
}

func (c *valueCommitmentCircuit) Define(api frontend.API) error {
	curve, err := twistededwards.NewEdCurve(api, tedwards.BLS12_381)
	if err != nil {
		return err
	}

	bits, err := gadgets.ExposeValueCommitment(api, curve, gadgets.ValueCommitmentWitness{
		Value:      c.Value,
		Randomness: c.Randomness,
	}, c.Commitment)
	if err != nil {
		return err
	}

	// the returned bits must decode back to the committed value
	api.AssertIsEqual(api.FromBinary(bits...), c.Value)
	return nil
}

/* ---------------- tests ------------------- */

func randomValue(t *testing.T) uint64 {
	t.Helper()
	var buf [8]byte
	_, err := rand.Read(buf[:])
	require.NoError(t, err)
	return binary.LittleEndian.Uint64(buf[:])
}

func commitmentAssignment(value uint64, randomness *big.Int) *valueCommitmentCircuit {
	cv := pedersen.Commit(value, randomness)
	w := &valueCommitmentCircuit{
		Value:      value,
		Randomness: randomness,
	}
	w.Commitment.X = cv.X.BigInt(new(big.Int))
	w.Commitment.Y = cv.Y.BigInt(new(big.Int))
	return w
}

func TestValueCommitmentMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	value := randomValue(t)
	randomness, err := pedersen.RandomScalar(nil)
	require.NoError(t, err)

	assert.ProverSucceeded(
		new(valueCommitmentCircuit),
		commitmentAssignment(value, randomness),
		test.WithCurves(circuits.Curve()),
	)
}

func TestValueCommitmentZeroIsIdentity(t *testing.T) {
	assert := test.NewAssert(t)

	// value 0 with blinding 0 commits to the Edwards identity (0, 1)
	w := &valueCommitmentCircuit{Value: 0, Randomness: 0}
	w.Commitment.X = 0
	w.Commitment.Y = 1

	assert.ProverSucceeded(new(valueCommitmentCircuit), w, test.WithCurves(circuits.Curve()))
}

func TestValueCommitmentRejectsWrongPoint(t *testing.T) {
	assert := test.NewAssert(t)

	randomness, err := pedersen.RandomScalar(nil)
	require.NoError(t, err)

	w := commitmentAssignment(randomValue(t), randomness)
	w.Commitment.X = new(big.Int).Add(w.Commitment.X.(*big.Int), big.NewInt(1))

	assert.ProverFailed(new(valueCommitmentCircuit), w, test.WithCurves(circuits.Curve()))
}

func TestValueCommitmentDeterministic(t *testing.T) {
	value := randomValue(t)
	randomness, err := pedersen.RandomScalar(nil)
	require.NoError(t, err)

	first := pedersen.Commit(value, randomness)
	second := pedersen.Commit(value, randomness)
	require.True(t, first.Equal(&second), "same (value, randomness) must commit to the same point")

	// two independently constructed circuits must both accept that point as
	// the registered commitment for the same (value, randomness)
	field := circuits.Curve().ScalarField()
	require.NoError(t, test.IsSolved(new(valueCommitmentCircuit), commitmentAssignment(value, randomness), field))
	require.NoError(t, test.IsSolved(new(valueCommitmentCircuit), commitmentAssignment(value, randomness), field))
}
