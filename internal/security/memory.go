package security

import (
	"math/big"
	"runtime"
)

// SecureZeroBigInt clears a big.Int holding secret material.
// Go's big.Int does not expose its internal buffer, so the practical
// approach is to overwrite the value and let the old limbs be collected.
func SecureZeroBigInt(b *big.Int) {
	if b == nil {
		return
	}

	b.SetInt64(0)

	// Memory barrier so the write is not optimized away
	runtime.KeepAlive(b)
}
