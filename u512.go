package qnum

import (
	"math/bits"
)

// u512 is the 512-bit accumulator for a 256x256-bit product, 8 limbs in base
// 2^64, least significant first. It only ever exists as the output of mul512
// and is consumed immediately; it is not part of the public API.
type u512 struct {
	n [8]uint64
}

// mul512 computes the exact 512-bit product of x and y. A 256x256-bit product
// always fits in 512 bits, so this cannot fail.
func mul512(x, y U256) (p u512) {
	for i, xl := range x.n {
		if xl == 0 {
			continue
		}
		for j, yl := range y.n {
			if yl == 0 {
				continue
			}
			hi, lo := bits.Mul64(xl, yl)

			var c uint64
			p.n[i+j], c = bits.Add64(p.n[i+j], lo, 0)
			p.n[i+j+1], c = bits.Add64(p.n[i+j+1], hi, c)

			// Accumulating the partial product can ripple a carry well past
			// limb i+j+1; keep propagating until it dies out.
			for k := i + j + 2; c != 0 && k < len(p.n); k++ {
				p.n[k], c = bits.Add64(p.n[k], 0, c)
			}
		}
	}
	return p
}

// hi128Nonzero reports whether the top 128 bits of the product are set, i.e.
// whether the value no longer fits in 256 bits once shifted right by 128.
func (p u512) hi128Nonzero() bool {
	return p.n[6] != 0 || p.n[7] != 0
}

// lo128Nonzero reports whether the low 128 bits of the product are set; these
// are the bits discarded by rsh128, so this decides whether rounding applies.
func (p u512) lo128Nonzero() bool {
	return p.n[0] != 0 || p.n[1] != 0
}

// rsh128 returns the middle 256 bits of the product, realizing a truncating
// division by 2^128.
func (p u512) rsh128() U256 {
	return U256{n: [4]uint64{p.n[2], p.n[3], p.n[4], p.n[5]}}
}
