package bitsig

import (
	"crypto/rand"
	"log"
	"math/big"
)

// secureRandomBytes returns n bytes from the OS entropy source. The source
// may block while the kernel gathers entropy, and a failed read is logged and
// retried without bound. Callers that need bounded latency must wrap key or
// nonce generation externally.
func secureRandomBytes(n int) []byte {
	buf := make([]byte, n)
	for {
		_, err := rand.Read(buf)
		if err == nil {
			return buf
		}
		log.Printf("entropy source not available (%v), trying again", err)
	}
}

// randomScalar draws a uniform random scalar in (0, max), retrying until the
// draw lands in range.
func randomScalar(max *big.Int) *big.Int {
	for {
		k := new(big.Int).SetBytes(secureRandomBytes(32))
		if k.Sign() > 0 && k.Cmp(max) < 0 {
			return k
		}
	}
}
