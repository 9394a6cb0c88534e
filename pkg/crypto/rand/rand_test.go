package rand

import (
	"math/big"
	"testing"
)

// TestGenerateRandomBytes tests random byte generation
func TestGenerateRandomBytes(t *testing.T) {
	bytes, err := GenerateRandomBytes(32)
	if err != nil {
		t.Fatalf("Failed to generate random bytes: %v", err)
	}

	if len(bytes) != 32 {
		t.Errorf("Expected 32 bytes, got %d", len(bytes))
	}

	// Two draws colliding on 32 bytes would indicate a broken source
	other, err := GenerateRandomBytes(32)
	if err != nil {
		t.Fatalf("Failed to generate random bytes: %v", err)
	}

	same := true
	for i := range bytes {
		if bytes[i] != other[i] {
			same = false
			break
		}
	}
	if same {
		t.Error("Two independent 32-byte draws are identical")
	}
}

// TestGenerateRandomBytesInvalidLength tests error handling
func TestGenerateRandomBytesInvalidLength(t *testing.T) {
	if _, err := GenerateRandomBytes(0); err != ErrInvalidLength {
		t.Errorf("Expected ErrInvalidLength, got %v", err)
	}

	if _, err := GenerateRandomBytes(-1); err != ErrInvalidLength {
		t.Errorf("Expected ErrInvalidLength, got %v", err)
	}
}

// TestGenerateRandomScalarRange verifies every draw lies in [1, max)
func TestGenerateRandomScalarRange(t *testing.T) {
	// Small max makes zero rejection and the upper bound easy to exercise
	max := big.NewInt(19)

	for i := 0; i < 1000; i++ {
		scalar, err := GenerateRandomScalar(max)
		if err != nil {
			t.Fatalf("Failed to generate scalar: %v", err)
		}

		if scalar.Sign() <= 0 {
			t.Fatalf("Generated scalar %v is not positive", scalar)
		}

		if scalar.Cmp(max) >= 0 {
			t.Fatalf("Generated scalar %v is not below max %v", scalar, max)
		}
	}
}

// TestGenerateRandomScalarInvalidMax tests error handling
func TestGenerateRandomScalarInvalidMax(t *testing.T) {
	if _, err := GenerateRandomScalar(nil); err != ErrNilMax {
		t.Errorf("Expected ErrNilMax, got %v", err)
	}

	if _, err := GenerateRandomScalar(big.NewInt(0)); err != ErrInvalidMax {
		t.Errorf("Expected ErrInvalidMax, got %v", err)
	}

	if _, err := GenerateRandomScalar(big.NewInt(-5)); err != ErrInvalidMax {
		t.Errorf("Expected ErrInvalidMax, got %v", err)
	}
}
