package gadgets_test

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
	"github.com/consensys/gnark/test"

	"github.com/dmi3yK/ironfish/circuits"
	"github.com/dmi3yK/ironfish/internal/gadgets"
	"github.com/dmi3yK/ironfish/pkg/asset"
	"github.com/dmi3yK/ironfish/pkg/generators"
)

/* ---------------- circuits ---------------- */

// asserts the preimage has its fixed total length and that everything after
// the public key representation is zero when name, metadata and nonce are
// all zero
type zeroTailCircuit struct {
	PK       twistededwards.Point
	Name     [gadgets.NameLength]frontend.Variable
	Metadata [gadgets.MetadataLength]frontend.Variable
	Nonce    frontend.Variable
}

func (c *zeroTailCircuit) Define(api frontend.API) error {
	preimage, err := gadgets.AssetInfoPreimage(api, c.PK, c.Name[:], c.Metadata[:], c.Nonce)
	if err != nil {
		return err
	}
	if len(preimage) != gadgets.PreimageBitLength {
		return gadgets.ErrUnsatisfiable
	}
	for _, bit := range preimage[gadgets.ReprBitLength:] {
		api.AssertIsEqual(bit, 0)
	}
	return nil
}

// asserts the in-circuit point representation agrees byte for byte with the
// native asset.PointRepr encoding
type pointReprCircuit struct {
	PK   twistededwards.Point
	Repr [asset.ReprLength]frontend.Variable `gnark:",public"`
}

func (c *pointReprCircuit) Define(api frontend.API) error {
	bits := gadgets.PointRepr(api, c.PK)
	if len(bits) != gadgets.ReprBitLength {
		return gadgets.ErrUnsatisfiable
	}
	for i := 0; i < asset.ReprLength; i++ {
		api.AssertIsEqual(api.FromBinary(bits[8*i:8*i+8]...), c.Repr[i])
	}
	return nil
}

/* ---------------- tests ------------------- */

func testPoint() (x, y *big.Int) {
	p := generators.AssetKey()
	return p.X.BigInt(new(big.Int)), p.Y.BigInt(new(big.Int))
}

func TestPreimageZeroTail(t *testing.T) {
	assert := test.NewAssert(t)

	var w zeroTailCircuit
	w.PK.X, w.PK.Y = testPoint()
	for i := range w.Name {
		w.Name[i] = 0
	}
	for i := range w.Metadata {
		w.Metadata[i] = 0
	}
	w.Nonce = 0

	assert.ProverSucceeded(new(zeroTailCircuit), &w, test.WithCurves(circuits.Curve()))
}

func TestPreimageNonZeroNonceBreaksZeroTail(t *testing.T) {
	assert := test.NewAssert(t)

	var w zeroTailCircuit
	w.PK.X, w.PK.Y = testPoint()
	for i := range w.Name {
		w.Name[i] = 0
	}
	for i := range w.Metadata {
		w.Metadata[i] = 0
	}
	w.Nonce = 1

	assert.ProverFailed(new(zeroTailCircuit), &w, test.WithCurves(circuits.Curve()))
}

func TestPointReprMatchesNative(t *testing.T) {
	assert := test.NewAssert(t)

	p := generators.ValueCommitmentValue()
	repr := asset.PointRepr(p)

	var w pointReprCircuit
	w.PK.X = p.X.BigInt(new(big.Int))
	w.PK.Y = p.Y.BigInt(new(big.Int))
	for i, b := range repr {
		w.Repr[i] = b
	}

	assert.ProverSucceeded(new(pointReprCircuit), &w, test.WithCurves(circuits.Curve()))
}
