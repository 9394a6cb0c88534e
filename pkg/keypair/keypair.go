// Package keypair binds a curve instance to a secret scalar and the
// public point derived from it
package keypair

import (
	"math/big"

	"github.com/Caqil/ecckit/internal/security"
	"github.com/Caqil/ecckit/pkg/crypto/curve"
)

// Keypair holds one curve instance together with a secret scalar in
// [1, order) and the public point secret*G. The secret and public
// fields are only ever assigned together, so a holder is either
// ungenerated or carries a complete, consistent pair; "secret set but
// no public key" cannot be observed.
type Keypair struct {
	curve  curve.Curve
	secret *big.Int
	public curve.Point
}

// New binds a curve to a fresh, ungenerated holder
func New(c curve.Curve) (*Keypair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}
	return &Keypair{curve: c}, nil
}

// FromSecret imports an existing secret scalar and derives its public
// key immediately. The scalar must lie in [1, order).
func FromSecret(c curve.Curve, secret *big.Int) (*Keypair, error) {
	if c == nil {
		return nil, ErrNilCurve
	}

	if err := security.ValidateScalarRange(secret, c.Order()); err != nil {
		return nil, err
	}

	s := new(big.Int).Set(secret)
	public, err := curve.CalculatePublicKey(c, s)
	if err != nil {
		return nil, err
	}

	return &Keypair{curve: c, secret: s, public: public}, nil
}

// Generate populates the holder with a fresh keypair. Generation is
// lazy: an already-present secret is never overwritten, and nothing is
// stored until the matching public key has been derived.
func (kp *Keypair) Generate() error {
	if kp.secret != nil {
		return nil
	}

	secret, err := curve.GenerateSecretKey(kp.curve)
	if err != nil {
		return err
	}

	public, err := curve.CalculatePublicKey(kp.curve, secret)
	if err != nil {
		return err
	}

	kp.secret = secret
	kp.public = public
	return nil
}

// Curve returns the bound curve instance
func (kp *Keypair) Curve() curve.Curve {
	return kp.curve
}

// SecretKey returns a copy of the secret scalar
func (kp *Keypair) SecretKey() (*big.Int, error) {
	if kp.secret == nil {
		return nil, ErrNotGenerated
	}
	return new(big.Int).Set(kp.secret), nil
}

// PublicKey returns a copy of the public point
func (kp *Keypair) PublicKey() (curve.Point, error) {
	if kp.secret == nil {
		return curve.Point{}, ErrNotGenerated
	}
	return kp.public.Clone(), nil
}

// Destroy wipes the secret scalar and returns the holder to its
// ungenerated state. A later Generate draws a fresh keypair.
func (kp *Keypair) Destroy() {
	if kp.secret == nil {
		return
	}

	security.SecureZeroBigInt(kp.secret)
	kp.secret = nil
	kp.public = curve.Point{}
}
