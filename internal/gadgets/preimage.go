package gadgets

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
)

// Fixed byte lengths of the asset identity fields. The circuit shape depends
// on them, so they are compile-time constants rather than parameters.
const (
	NameLength     = 32
	MetadataLength = 76
)

// ReprBitLength is the size of a point's canonical bit representation:
// 255 bits of the y-coordinate plus the parity bit of x.
const ReprBitLength = 256

// PreimageBitLength is the total size of the asset identity preimage:
// public key representation, name, metadata and nonce, in that order.
const PreimageBitLength = ReprBitLength + NameLength*8 + MetadataLength*8 + 8

// PointRepr returns the canonical 256-bit representation of a Jubjub point:
// the y-coordinate decomposed into 255 little-endian bits, followed by the
// parity bit of the x-coordinate. The length is fixed for every point.
func PointRepr(api frontend.API, p twistededwards.Point) []frontend.Variable {
	yBits := api.ToBinary(p.Y, api.Compiler().FieldBitLen())
	xBits := api.ToBinary(p.X, api.Compiler().FieldBitLen())

	repr := make([]frontend.Variable, 0, len(yBits)+1)
	repr = append(repr, yBits...)
	repr = append(repr, xBits[0])
	return repr
}

// AssetInfoPreimage concatenates the bit encodings of an asset public key,
// a 32-byte name, a 76-byte metadata blob and a one-byte nonce into the
// asset identity preimage. The output is always PreimageBitLength bits; the
// order matches what the downstream identifier hash expects. Any encoding
// failure aborts the call with no partial output.
func AssetInfoPreimage(
	api frontend.API,
	assetPublicKey twistededwards.Point,
	name []frontend.Variable,
	metadata []frontend.Variable,
	nonce frontend.Variable,
) ([]frontend.Variable, error) {
	preimage := make([]frontend.Variable, 0, PreimageBitLength)
	preimage = append(preimage, PointRepr(api, assetPublicKey)...)

	nameBits, err := BytesToBitsLE(api, name, NameLength)
	if err != nil {
		return nil, err
	}
	preimage = append(preimage, nameBits...)

	metadataBits, err := BytesToBitsLE(api, metadata, MetadataLength)
	if err != nil {
		return nil, err
	}
	preimage = append(preimage, metadataBits...)

	nonceBits, err := BytesToBitsLE(api, []frontend.Variable{nonce}, 1)
	if err != nil {
		return nil, err
	}
	preimage = append(preimage, nonceBits...)

	if len(preimage) != PreimageBitLength {
		return nil, ErrUnsatisfiable
	}
	return preimage, nil
}
