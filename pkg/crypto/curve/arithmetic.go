package curve

import (
	"math/big"

	"github.com/Caqil/ecckit/internal/math"
)

// Add computes the group operation P + Q in affine coordinates.
//
// The degenerate cases are handled explicitly, in order, before any
// slope is computed:
//   - P + O = P and O + Q = Q (identity elimination)
//   - P + (-P) = O (same x, different y)
//   - 2P = O when the tangent at P is vertical (y = 0)
//
// Only then is the slope formed — (3x₁²+a)/(2y₁) when doubling,
// (y₂-y₁)/(x₂-x₁) otherwise — so a zero denominator can never reach
// the modular inverse. Subtractions go through math.ModSub to stay
// non-negative. Inputs are never mutated.
//
// Operands must be affine or the identity; a point carrying exactly
// one nil coordinate violates the representation contract and panics.
func Add(p, q Point, c Curve) Point {
	if p.IsInfinity() {
		return q.Clone()
	}
	if q.IsInfinity() {
		return p.Clone()
	}

	x1, y1 := affineCoords(p)
	x2, y2 := affineCoords(q)

	prime := c.PrimeModulus()

	// P + (-P) = O
	if x1.Cmp(x2) == 0 && y1.Cmp(y2) != 0 {
		return Infinity()
	}

	var lambda *big.Int
	if x1.Cmp(x2) == 0 && y1.Cmp(y2) == 0 {
		// Doubling: the tangent is vertical when y = 0
		if y1.Sign() == 0 {
			return Infinity()
		}

		// λ = (3·x1² + a) / (2·y1)
		numerator := new(big.Int).Mul(x1, x1)
		numerator.Mod(numerator, prime)
		numerator.Mul(numerator, big.NewInt(3))
		numerator.Add(numerator, c.A())

		denominator := new(big.Int).Lsh(y1, 1)
		denominator.Mod(denominator, prime)

		lambda = new(big.Int).Mul(numerator, math.ModInv(denominator, prime))
	} else {
		// λ = (y2 - y1) / (x2 - x1); x1 = x2 was eliminated above
		numerator := math.ModSub(y2, y1, prime)
		denominator := math.ModSub(x2, x1, prime)

		lambda = new(big.Int).Mul(numerator, math.ModInv(denominator, prime))
	}
	lambda.Mod(lambda, prime)

	// x3 = λ² - x1 - x2
	x3 := new(big.Int).Mul(lambda, lambda)
	x3.Mod(x3, prime)
	x3 = math.ModSub(x3, x1, prime)
	x3 = math.ModSub(x3, x2, prime)

	// y3 = λ·(x1 - x3) - y1
	y3 := new(big.Int).Mul(lambda, math.ModSub(x1, x3, prime))
	y3.Mod(y3, prime)
	y3 = math.ModSub(y3, y1, prime)

	return Point{X: x3, Y: y3}
}

// Double computes 2*P
func Double(p Point, c Curve) Point {
	return Add(p, p, c)
}

// affineCoords extracts the coordinates of an affine point. Operands
// reaching this have already passed the identity checks, so a nil
// coordinate means a malformed point that was never constructed
// through NewPoint or Infinity.
func affineCoords(p Point) (x, y *big.Int) {
	if p.X == nil || p.Y == nil {
		panic("curve: point is neither affine nor the identity")
	}
	return p.X, p.Y
}
