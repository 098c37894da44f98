package types

import "math/bits"

func xorshift(n uint64, i int) uint64 {
	return n ^ (n >> i)
}

// distribute spreads the bits of n over the whole word.
func distribute(n uint64) uint64 {
	const (
		p = 0x5555555555555555
		c = 17316035218449499591
	)
	return c * xorshift(p*xorshift(n, 32), 32)
}

// hashCombine folds v into seed. The result depends on the order of calls.
func hashCombine(seed, v uint64) uint64 {
	return bits.RotateLeft64(seed, 64/3) ^ distribute(v)
}
