package curve

import "math/big"

// secp256k1 parameters from SEC 2: y² = x³ + 7 over F_p
const (
	secp256k1P  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	secp256k1N  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	secp256k1Gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	secp256k1Gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

// secp256k1Curve implements the Curve interface for secp256k1
type secp256k1Curve struct {
	p  *big.Int
	a  *big.Int
	b  *big.Int
	n  *big.Int
	gx *big.Int
	gy *big.Int
}

// newSecp256k1 creates a new secp256k1 curve instance
func newSecp256k1() Curve {
	return &secp256k1Curve{
		p:  mustParseHex(secp256k1P),
		a:  big.NewInt(0),
		b:  big.NewInt(7),
		n:  mustParseHex(secp256k1N),
		gx: mustParseHex(secp256k1Gx),
		gy: mustParseHex(secp256k1Gy),
	}
}

func (c *secp256k1Curve) Name() string {
	return "secp256k1"
}

func (c *secp256k1Curve) PrimeModulus() *big.Int {
	return new(big.Int).Set(c.p)
}

func (c *secp256k1Curve) A() *big.Int {
	return new(big.Int).Set(c.a)
}

func (c *secp256k1Curve) B() *big.Int {
	return new(big.Int).Set(c.b)
}

func (c *secp256k1Curve) Generator() Point {
	return NewPoint(c.gx, c.gy)
}

func (c *secp256k1Curve) Order() *big.Int {
	return new(big.Int).Set(c.n)
}

func (c *secp256k1Curve) Identity() Point {
	return Infinity()
}

// mustParseHex parses a hex curve constant, panicking on malformed
// input since the constants are fixed at compile time
func mustParseHex(s string) *big.Int {
	value, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("curve: invalid hex constant: " + s)
	}
	return value
}
