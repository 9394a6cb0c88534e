// Package security provides validation and hygiene utilities for secret scalars
package security

import (
	"errors"
	"math/big"
)

var (
	// ErrNilScalar is returned when a nil scalar is provided
	ErrNilScalar = errors.New("scalar cannot be nil")

	// ErrScalarOutOfRange is returned when a scalar is outside [1, order)
	ErrScalarOutOfRange = errors.New("scalar out of range: must be in [1, order)")

	// ErrInvalidOrder is returned when the group order is missing or not positive
	ErrInvalidOrder = errors.New("order must be positive")
)

// ValidateScalarRange checks that k is a usable secret scalar for a group
// of the given order, i.e. k is in [1, order). A zero scalar maps the
// generator to the identity and is rejected along with negative and
// over-range values.
func ValidateScalarRange(k, order *big.Int) error {
	if k == nil {
		return ErrNilScalar
	}
	if order == nil || order.Sign() <= 0 {
		return ErrInvalidOrder
	}

	if k.Sign() <= 0 || k.Cmp(order) >= 0 {
		return ErrScalarOutOfRange
	}

	return nil
}
