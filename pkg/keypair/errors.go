package keypair

import "errors"

var (
	// ErrNilCurve is returned when no curve instance is provided
	ErrNilCurve = errors.New("curve cannot be nil")

	// ErrNotGenerated is returned when keys are read before generation
	ErrNotGenerated = errors.New("keypair has not been generated")
)
