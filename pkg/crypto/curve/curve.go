// Package curve implements affine short-Weierstrass elliptic curve
// arithmetic over prime fields: point addition with all degenerate
// cases, double-and-add scalar multiplication, and secret key
// generation. It is the kernel beneath signature schemes built on the
// same curve abstraction; hashing, signing, and point encoding live
// with the callers.
package curve

import (
	"math/big"

	"github.com/Caqil/ecckit/pkg/crypto/rand"
)

// CurveType represents the type of elliptic curve
type CurveType int

const (
	// Secp256k1 is the Bitcoin/Ethereum curve
	Secp256k1 CurveType = iota
)

// Curve defines the capability any concrete curve must provide:
// the constants of y² = x³ + ax + b over F_p together with the
// generator and its group order. All accessors are pure queries over
// fixed values; implementations return copies so callers cannot
// corrupt the parameters.
type Curve interface {
	// Name returns the curve name
	Name() string

	// PrimeModulus returns the field prime p
	PrimeModulus() *big.Int

	// A returns the curve coefficient a
	A() *big.Int

	// B returns the curve coefficient b
	B() *big.Int

	// Generator returns the generator point G
	Generator() Point

	// Order returns the prime order n of the group generated by G
	Order() *big.Int

	// Identity returns the group identity, the point at infinity
	Identity() Point
}

// NewCurve creates a new curve instance based on the curve type
func NewCurve(curveType CurveType) (Curve, error) {
	switch curveType {
	case Secp256k1:
		return newSecp256k1(), nil
	default:
		return nil, ErrUnsupportedCurve
	}
}

// GenerateSecretKey produces a uniformly random secret scalar in
// [1, order). Zero is excluded: a zero scalar maps the generator to
// the identity, which is unusable as a public key.
func GenerateSecretKey(c Curve) (*big.Int, error) {
	return rand.GenerateRandomScalar(c.Order())
}

// CalculatePublicKey computes secret*G via double-and-add, walking the
// scalar's bits from least to most significant. This costs O(log secret)
// point operations and is the hot path when keys are generated at scale.
//
// Any non-negative scalar is accepted; values outside [1, order) still
// produce a well-defined point but a cryptographically unsound key, so
// range validity is the caller's responsibility.
func CalculatePublicKey(c Curve, secret *big.Int) (Point, error) {
	if secret == nil || secret.Sign() < 0 {
		return Point{}, ErrInvalidScalar
	}

	result := c.Identity()
	current := c.Generator()

	for i := 0; i < secret.BitLen(); i++ {
		if secret.Bit(i) == 1 {
			result = Add(result, current, c)
		}
		current = Add(current, current, c)
	}

	return result, nil
}

// IsOnCurve reports whether p satisfies y² = x³ + ax + b mod p.
// The identity is on every curve.
func IsOnCurve(p Point, c Curve) bool {
	if p.IsInfinity() {
		return true
	}
	if p.X == nil || p.Y == nil {
		return false
	}

	prime := c.PrimeModulus()

	lhs := new(big.Int).Mul(p.Y, p.Y)
	lhs.Mod(lhs, prime)

	rhs := new(big.Int).Mul(p.X, p.X)
	rhs.Mul(rhs, p.X)
	rhs.Add(rhs, new(big.Int).Mul(c.A(), p.X))
	rhs.Add(rhs, c.B())
	rhs.Mod(rhs, prime)

	return lhs.Cmp(rhs) == 0
}
