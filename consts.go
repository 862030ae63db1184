package qnum

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	// signBit marks the most significant bit of the top limb; a magnitude of
	// exactly {0, 0, 0, signBit} is 2^255, the largest negative magnitude.
	signBit = 0x8000000000000000

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MaxU256 = U256{n: [4]uint64{maxUint64, maxUint64, maxUint64, maxUint64}}

	// MaxI256 is 2^255 - 1, the largest positive I256. MinI256 is -(2^255),
	// the most negative; its magnitude has no positive counterpart.
	MaxI256 = I256{mag: maxI256Mag}
	MinI256 = I256{mag: minI256Mag, neg: true}

	// Frozen Q128 values. ULP is the smallest positive step, 2^-128.
	ZeroQ128   = Q128{}
	OneQ128    = Q128{raw: I256{mag: oneQ128Mag}}
	NegOneQ128 = Q128{raw: I256{mag: oneQ128Mag, neg: true}}
	UlpQ128    = Q128{raw: I256{mag: U256{n: [4]uint64{1, 0, 0, 0}}}}
	MinQ128    = Q128{raw: I256{mag: minI256Mag, neg: true}}
	MaxQ128    = Q128{raw: I256{mag: maxI256Mag}}

	maxI256Mag = U256{n: [4]uint64{maxUint64, maxUint64, maxUint64, maxInt64}}
	minI256Mag = U256{n: [4]uint64{0, 0, 0, signBit}}
	oneQ128Mag = U256{n: [4]uint64{0, 0, 1, 0}}

	zeroU256 U256
	zeroI256 I256

	big1 = new(big.Int).SetInt64(1)

	// bigQ128Scale is 2^128, the Q128.128 scale factor.
	bigQ128Scale = new(big.Int).Lsh(big.NewInt(1), 128)
)
