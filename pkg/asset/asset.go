// Package asset holds the native representation of an asset identity: the
// fixed-length name and metadata fields, the creation nonce and the asset
// public key. Its preimage serialization is bit-compatible with the circuit
// gadgets, so the bytes hashed off-circuit and the bits constrained
// in-circuit always agree.
package asset

import (
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"golang.org/x/crypto/blake2s"
)

const (
	// NameLength is the exact byte length of an asset name.
	NameLength = 32
	// MetadataLength is the exact byte length of the asset metadata blob.
	MetadataLength = 76
	// ReprLength is the byte length of a compressed point representation.
	ReprLength = 32
	// PreimageLength is the byte length of the full identity preimage:
	// public key representation, name, metadata, nonce.
	PreimageLength = ReprLength + NameLength + MetadataLength + 1
)

// identifierPrefix domain-separates the asset identifier hash from other
// BLAKE2s uses in the protocol.
var identifierPrefix = []byte("ironfish.zk.asset.identifier")

// AssetInfo is an asset identity. Field sizes are enforced by the array
// types; NewAssetInfo is the length-checked entry point for callers holding
// raw slices.
type AssetInfo struct {
	Name      [NameLength]byte
	Metadata  [MetadataLength]byte
	Nonce     byte
	PublicKey twistededwards.PointAffine
}

// NewAssetInfo builds an AssetInfo from raw slices, rejecting any length
// other than the exact field sizes. Downstream code relies on these lengths
// to guarantee a fixed preimage shape, so there is no padding here.
func NewAssetInfo(name, metadata []byte, nonce byte, publicKey twistededwards.PointAffine) (AssetInfo, error) {
	var info AssetInfo
	if len(name) != NameLength {
		return info, fmt.Errorf("asset: name must be %d bytes, got %d", NameLength, len(name))
	}
	if len(metadata) != MetadataLength {
		return info, fmt.Errorf("asset: metadata must be %d bytes, got %d", MetadataLength, len(metadata))
	}
	if !publicKey.IsOnCurve() {
		return info, fmt.Errorf("asset: public key is not on the curve")
	}

	copy(info.Name[:], name)
	copy(info.Metadata[:], metadata)
	info.Nonce = nonce
	info.PublicKey = publicKey
	return info, nil
}

// PointRepr returns the canonical 32-byte representation of a Jubjub point:
// the y-coordinate in little-endian byte order with the parity bit of the
// x-coordinate stored in the top bit of the final byte. Bit i of byte j here
// is bit 8j+i of the in-circuit representation.
func PointRepr(p twistededwards.PointAffine) [ReprLength]byte {
	var out [ReprLength]byte

	yBytes := p.Y.BigInt(new(big.Int)).Bytes()
	for i, b := range yBytes {
		out[len(yBytes)-1-i] = b
	}

	if p.X.BigInt(new(big.Int)).Bit(0) == 1 {
		out[ReprLength-1] |= 0x80
	}
	return out
}

// Preimage serializes the identity fields in the order the circuit
// assembles them: public key representation, name, metadata, nonce.
func (a AssetInfo) Preimage() [PreimageLength]byte {
	var out [PreimageLength]byte
	repr := PointRepr(a.PublicKey)

	n := copy(out[:], repr[:])
	n += copy(out[n:], a.Name[:])
	n += copy(out[n:], a.Metadata[:])
	out[n] = a.Nonce
	return out
}

// Identifier derives the asset identifier: BLAKE2s-256 over the
// domain-separated preimage. This hash lives outside the circuit; proofs
// constrain the preimage bits and verifiers hash them independently.
func (a AssetInfo) Identifier() [32]byte {
	h, err := blake2s.New256(nil)
	if err != nil {
		panic(err) // only fails for an invalid key, and we pass none
	}
	h.Write(identifierPrefix)
	preimage := a.Preimage()
	h.Write(preimage[:])

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}
