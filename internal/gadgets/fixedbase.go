package gadgets

import (
	jubjub "github.com/consensys/gnark-crypto/ecc/bls12-381/twistededwards"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/algebra/native/twistededwards"
)

// identityPoint is the Edwards neutral element (0, 1).
func identityPoint() twistededwards.Point {
	return twistededwards.Point{X: 0, Y: 1}
}

// fixedBaseMul computes scalar·base for a fixed base point from the scalar's
// little-endian bits. The doublings 2^i·base are precomputed natively and
// folded into the accumulator one bit at a time, each bit selecting whether
// its table entry contributes. The Edwards addition formula is complete, so
// the same constraints cover every scalar, including zero, which yields the
// identity.
func fixedBaseMul(api frontend.API, curve twistededwards.Curve, base jubjub.PointAffine, bits []frontend.Variable) twistededwards.Point {
	table := make([]jubjub.PointAffine, len(bits))
	d := base
	for i := range table {
		table[i] = d
		d.Double(&d)
	}

	acc := identityPoint()
	for i, bit := range bits {
		sum := curve.Add(acc, constPoint(table[i]))
		acc = twistededwards.Point{
			X: api.Select(bit, sum.X, acc.X),
			Y: api.Select(bit, sum.Y, acc.Y),
		}
	}
	return acc
}
