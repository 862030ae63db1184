package qnum

// RandSource is satisfied by anything that can produce uniformly distributed
// 64-bit values, such as math/rand.Rand or pgregory.net/rand.Rand.
type RandSource interface {
	Uint64() uint64
}

// DifferenceU256 subtracts the smaller of a and b from the larger.
func DifferenceU256(a, b U256) U256 {
	if a.Cmp(b) >= 0 {
		diff, _ := a.Sub(b)
		return diff
	}
	diff, _ := b.Sub(a)
	return diff
}

// LargerQ128 returns the larger of a and b.
func LargerQ128(a, b Q128) Q128 {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// SmallerQ128 returns the smaller of a and b.
func SmallerQ128(a, b Q128) Q128 {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}
