// Package math provides modular arithmetic over prime fields
package math

import "math/big"

var two = big.NewInt(2)

// ModSub computes (a - b) mod p as a non-negative residue.
// Inputs need not be reduced; the result is always in [0, p).
func ModSub(a, b, p *big.Int) *big.Int {
	result := new(big.Int).Mod(a, p)
	result.Add(result, p)
	result.Sub(result, new(big.Int).Mod(b, p))
	return result.Mod(result, p)
}

// ModInv computes the modular inverse of value modulo a prime, using
// Fermat's little theorem: value^(modulus-2) mod modulus.
//
// The modulus must be prime and value must be non-zero mod modulus.
// A zero residue has no inverse; callers are required to rule it out
// before calling (the point addition engine does this through its
// degenerate-case checks), so a zero here is a programming error and
// panics rather than silently returning 0.
func ModInv(value, modulus *big.Int) *big.Int {
	if new(big.Int).Mod(value, modulus).Sign() == 0 {
		panic("math: modular inverse of zero residue")
	}

	exponent := new(big.Int).Sub(modulus, two)
	return new(big.Int).Exp(value, exponent, modulus)
}
