package curve

import "math/big"

// Point represents a point on a short-Weierstrass curve in affine
// coordinates, or the point at infinity. The identity carries nil for
// both coordinates; it is never encoded as a sentinel pair like (0, 0),
// which collides with legitimate points on some curves.
type Point struct {
	X *big.Int
	Y *big.Int
}

// NewPoint creates an affine point from the given coordinates.
// The coordinates are copied; the caller keeps ownership of its values.
func NewPoint(x, y *big.Int) Point {
	return Point{
		X: new(big.Int).Set(x),
		Y: new(big.Int).Set(y),
	}
}

// Infinity returns the point at infinity, the group identity
func Infinity() Point {
	return Point{}
}

// IsInfinity checks if the point is the point at infinity
func (p Point) IsInfinity() bool {
	return p.X == nil && p.Y == nil
}

// Equal checks structural equality: affine points are equal iff both
// coordinates match, and Infinity equals only Infinity
func (p Point) Equal(other Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.X.Cmp(other.X) == 0 && p.Y.Cmp(other.Y) == 0
}

// Clone creates a deep copy of the point
func (p Point) Clone() Point {
	if p.IsInfinity() {
		return Infinity()
	}
	return NewPoint(p.X, p.Y)
}

// Negate returns -P on the given curve: (x, y) -> (x, p-y mod p).
// The identity negates to itself.
func (p Point) Negate(c Curve) Point {
	if p.IsInfinity() {
		return Infinity()
	}

	negY := new(big.Int).Sub(c.PrimeModulus(), p.Y)
	negY.Mod(negY, c.PrimeModulus())

	return Point{
		X: new(big.Int).Set(p.X),
		Y: negY,
	}
}
