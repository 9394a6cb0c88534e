package curve

import "errors"

var (
	// ErrUnsupportedCurve is returned when an unsupported curve is requested
	ErrUnsupportedCurve = errors.New("unsupported curve type")

	// ErrInvalidScalar is returned when a scalar is nil or negative
	ErrInvalidScalar = errors.New("invalid scalar value")
)
