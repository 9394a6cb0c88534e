package curve

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
)

// TestSecp256k1ParamsMatchBtcec checks our literal constants against
// the btcec reference implementation
func TestSecp256k1ParamsMatchBtcec(t *testing.T) {
	c, err := NewCurve(Secp256k1)
	if err != nil {
		t.Fatalf("Failed to create curve: %v", err)
	}

	ref := btcec.S256().Params()

	if c.PrimeModulus().Cmp(ref.P) != 0 {
		t.Errorf("Prime modulus mismatch: %x vs %x", c.PrimeModulus(), ref.P)
	}
	if c.Order().Cmp(ref.N) != 0 {
		t.Errorf("Order mismatch: %x vs %x", c.Order(), ref.N)
	}
	if c.B().Cmp(ref.B) != 0 {
		t.Errorf("Coefficient b mismatch: %v vs %v", c.B(), ref.B)
	}
	if c.A().Sign() != 0 {
		t.Errorf("Coefficient a = %v, want 0", c.A())
	}

	g := c.Generator()
	if g.X.Cmp(ref.Gx) != 0 || g.Y.Cmp(ref.Gy) != 0 {
		t.Errorf("Generator mismatch: (%x,%x) vs (%x,%x)", g.X, g.Y, ref.Gx, ref.Gy)
	}
}

// TestSecp256k1GeneratorOnCurve checks G satisfies y² = x³ + 7
func TestSecp256k1GeneratorOnCurve(t *testing.T) {
	c, err := NewCurve(Secp256k1)
	if err != nil {
		t.Fatalf("Failed to create curve: %v", err)
	}

	if !IsOnCurve(c.Generator(), c) {
		t.Error("Generator is not on the curve")
	}
}

// TestCalculatePublicKeyMatchesBtcec cross-checks double-and-add
// against btcec's scalar base multiplication
func TestCalculatePublicKeyMatchesBtcec(t *testing.T) {
	c, err := NewCurve(Secp256k1)
	if err != nil {
		t.Fatalf("Failed to create curve: %v", err)
	}

	scalars := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		mustParseHex("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"),
		new(big.Int).Sub(c.Order(), big.NewInt(1)),
	}

	for _, k := range scalars {
		got, err := CalculatePublicKey(c, k)
		if err != nil {
			t.Fatalf("CalculatePublicKey(%x) failed: %v", k, err)
		}

		wantX, wantY := btcec.S256().ScalarBaseMult(k.Bytes())

		if got.X.Cmp(wantX) != 0 || got.Y.Cmp(wantY) != 0 {
			t.Errorf("k=%x: got (%x,%x), want (%x,%x)", k, got.X, got.Y, wantX, wantY)
		}
	}
}

// TestAddMatchesBtcec cross-checks the affine addition engine on
// full-size coordinates
func TestAddMatchesBtcec(t *testing.T) {
	c, err := NewCurve(Secp256k1)
	if err != nil {
		t.Fatalf("Failed to create curve: %v", err)
	}

	g := c.Generator()
	g2 := Double(g, c)

	wantX, wantY := btcec.S256().Double(g.X, g.Y)
	if g2.X.Cmp(wantX) != 0 || g2.Y.Cmp(wantY) != 0 {
		t.Errorf("2G: got (%x,%x), want (%x,%x)", g2.X, g2.Y, wantX, wantY)
	}

	g3 := Add(g, g2, c)
	wantX, wantY = btcec.S256().Add(g.X, g.Y, g2.X, g2.Y)
	if g3.X.Cmp(wantX) != 0 || g3.Y.Cmp(wantY) != 0 {
		t.Errorf("G+2G: got (%x,%x), want (%x,%x)", g3.X, g3.Y, wantX, wantY)
	}
}

// TestSecp256k1AccessorsReturnCopies ensures callers cannot corrupt
// the shared parameters
func TestSecp256k1AccessorsReturnCopies(t *testing.T) {
	c, err := NewCurve(Secp256k1)
	if err != nil {
		t.Fatalf("Failed to create curve: %v", err)
	}

	p := c.PrimeModulus()
	p.SetInt64(0)

	if c.PrimeModulus().Sign() == 0 {
		t.Error("Mutating a returned modulus corrupted the curve parameters")
	}

	g := c.Generator()
	g.X.SetInt64(0)

	if c.Generator().X.Sign() == 0 {
		t.Error("Mutating a returned generator corrupted the curve parameters")
	}
}
