package circuits_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/pkg/asset"
	"github.com/dmi3yK/ironfish/pkg/generators"
	"github.com/dmi3yK/ironfish/pkg/pedersen"
	"github.com/dmi3yK/ironfish/pkg/witness"
)

func testBundle(t *testing.T, value uint64) *witness.Bundle {
	t.Helper()

	name := make([]byte, asset.NameLength)
	copy(name, "circuit test asset")
	metadata := make([]byte, asset.MetadataLength)
	copy(metadata, "created by circuits test")

	info, err := asset.NewAssetInfo(name, metadata, 5, generators.AssetKey())
	require.NoError(t, err)

	rcv, err := pedersen.RandomScalar(nil)
	require.NoError(t, err)
	rpk, err := pedersen.RandomScalar(nil)
	require.NoError(t, err)

	bundle, err := witness.Build(info, value, rcv, rpk)
	require.NoError(t, err)
	return bundle
}

func TestAssetCircuitProves(t *testing.T) {
	assert := test.NewAssert(t)
	bundle := testBundle(t, 1_000_000)
	assert.ProverSucceeded(new(circuits.AssetCircuit), bundle.Assignment, test.WithCurves(circuits.Curve()))
}

func TestAssetCircuitRejectsTamperedCommitment(t *testing.T) {
	assert := test.NewAssert(t)

	bundle := testBundle(t, 500)
	bundle.Assignment.ValueCommitment.X = new(big.Int).Add(
		bundle.Assignment.ValueCommitment.X.(*big.Int), big.NewInt(1),
	)

	assert.ProverFailed(new(circuits.AssetCircuit), bundle.Assignment, test.WithCurves(circuits.Curve()))
}

func TestAssetCircuitRejectsTamperedPreimageWord(t *testing.T) {
	assert := test.NewAssert(t)

	bundle := testBundle(t, 500)
	bundle.Assignment.PreimageWords[0] = new(big.Int).Add(
		bundle.Assignment.PreimageWords[0].(*big.Int), big.NewInt(1),
	)

	assert.ProverFailed(new(circuits.AssetCircuit), bundle.Assignment, test.WithCurves(circuits.Curve()))
}
