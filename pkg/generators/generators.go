// Package generators defines the three fixed Jubjub base points the asset
// circuits multiply against: the value-commitment value generator, the
// value-commitment randomness generator and the asset-key generator. They are
// process-wide constants derived once at init by a deterministic group hash,
// so no party knows a discrete-log relation between any two of them.
package generators

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
)

const (
	valueTag      = "ironfish.zk.generator.value.commitment.value"
	randomnessTag = "ironfish.zk.generator.value.commitment.randomness"
	assetKeyTag   = "ironfish.zk.generator.asset.key"
)

var (
	valueCommitmentValue      twistededwards.PointAffine
	valueCommitmentRandomness twistededwards.PointAffine
	assetKey                  twistededwards.PointAffine
)

func init() {
	valueCommitmentValue = mustGroupHash(valueTag)
	valueCommitmentRandomness = mustGroupHash(randomnessTag)
	assetKey = mustGroupHash(assetKeyTag)
}

// ValueCommitmentValue is the base point the note value is multiplied
// against inside a value commitment.
func ValueCommitmentValue() twistededwards.PointAffine { return valueCommitmentValue }

// ValueCommitmentRandomness is the base point the blinding factor is
// multiplied against inside a value commitment.
func ValueCommitmentRandomness() twistededwards.PointAffine { return valueCommitmentRandomness }

// AssetKey is the base point used to re-randomize asset public keys.
func AssetKey() twistededwards.PointAffine { return assetKey }

func mustGroupHash(tag string) twistededwards.PointAffine {
	p, err := groupHash(tag)
	if err != nil {
		panic(err)
	}
	return p
}

// groupHash maps a domain tag to a prime-order Jubjub point: hash the tag
// with an incrementing counter, try to decode the digest as a compressed
// point, clear the cofactor, and reject low-order results. The counter loop
// terminates quickly in practice since roughly half of all field elements
// are valid y-coordinates.
func groupHash(tag string) (twistededwards.PointAffine, error) {
	cofactor := big.NewInt(8)

	for counter := uint32(0); counter < 256; counter++ {
		var suffix [4]byte
		binary.LittleEndian.PutUint32(suffix[:], counter)
		digest := sha256.Sum256(append([]byte(tag), suffix[:]...))

		var p twistededwards.PointAffine
		if _, err := p.SetBytes(digest[:]); err != nil {
			continue
		}

		var q twistededwards.PointAffine
		q.ScalarMultiplication(&p, cofactor)
		if !q.IsOnCurve() || isIdentity(&q) {
			continue
		}
		return q, nil
	}

	var zero twistededwards.PointAffine
	return zero, fmt.Errorf("generators: no valid point found for tag %q", tag)
}

func isIdentity(p *twistededwards.PointAffine) bool {
	return p.X.IsZero() && p.Y.IsOne()
}
