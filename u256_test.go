package qnum

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shabbyrobe/golib/assert"
)

var u64 = U256From64

func TestU256Add(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c U256
		carry   bool
	}{
		{u64(1), u64(2), u64(3), false},
		{u64(10), u64(3), u64(13), false},
		{u64(maxUint64), u64(1), u256s("18446744073709551616"), false}, // limb 0 carries to limb 1
		{U256{n: [4]uint64{maxUint64, maxUint64, maxUint64, 0}}, u64(1), U256{n: [4]uint64{0, 0, 0, 1}}, false}, // carry chain across three limbs
		{MaxU256, u64(1), U256{}, true},
		{MaxU256, MaxU256, U256{n: [4]uint64{maxUint64 - 1, maxUint64, maxUint64, maxUint64}}, true},
		{MaxU256, u64(0), MaxU256, false},
	} {
		t.Run(fmt.Sprintf("%d/%s+%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, carry := tc.a.Add(tc.b)
			tt.MustAssert(tc.c.Equal(c), "found: %s", c)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestU256Add64(t *testing.T) {
	for idx, tc := range []struct {
		a     U256
		b     uint64
		c     U256
		carry bool
	}{
		{u64(1), 2, u64(3), false},
		{u64(maxUint64), 1, u256s("18446744073709551616"), false},
		{U256{n: [4]uint64{maxUint64, maxUint64, maxUint64, maxUint64 - 1}}, 1, U256{n: [4]uint64{0, 0, 0, maxUint64}}, false},
		{MaxU256, 1, U256{}, true},
		{MaxU256, 0, MaxU256, false},
	} {
		t.Run(fmt.Sprintf("%d/%s+%d", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, carry := tc.a.Add64(tc.b)
			tt.MustAssert(tc.c.Equal(c), "found: %s", c)
			tt.MustEqual(tc.carry, carry)
		})
	}
}

func TestU256Sub(t *testing.T) {
	for idx, tc := range []struct {
		a, b, c U256
		borrow  bool
	}{
		{u64(3), u64(2), u64(1), false},
		{u64(0), u64(0), u64(0), false},
		{u256s("18446744073709551616"), u64(1), u64(maxUint64), false}, // borrow from limb 1
		{U256{n: [4]uint64{0, 0, 0, 1}}, u64(1), U256{n: [4]uint64{maxUint64, maxUint64, maxUint64, 0}}, false},
		{u64(1), u64(2), MaxU256, true}, // underflow wraps
		{u64(0), MaxU256, u64(1), true},
	} {
		t.Run(fmt.Sprintf("%d/%s-%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			c, borrow := tc.a.Sub(tc.b)
			tt.MustAssert(tc.c.Equal(c), "found: %s", c)
			tt.MustEqual(tc.borrow, borrow)
		})
	}
}

func TestU256Cmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b U256
		cmp  int
	}{
		{u64(0), u64(0), 0},
		{u64(1), u64(0), 1},
		{u64(0), u64(1), -1},
		{U256{n: [4]uint64{0, 0, 0, 1}}, MaxU256, -1},
		{U256{n: [4]uint64{0, 1, 0, 0}}, u64(maxUint64), 1}, // higher limb dominates
		{MaxU256, MaxU256, 0},
	} {
		t.Run(fmt.Sprintf("%d/%s<>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(tc.cmp > 0, tc.a.GreaterThan(tc.b))
			tt.MustEqual(tc.cmp >= 0, tc.a.GreaterOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp < 0, tc.a.LessThan(tc.b))
			tt.MustEqual(tc.cmp <= 0, tc.a.LessOrEqualTo(tc.b))
			tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestU256IsZero(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustAssert(U256{}.IsZero())
	tt.MustAssert(!u64(1).IsZero())
	tt.MustAssert(!U256{n: [4]uint64{0, 0, 0, 1}}.IsZero())
}

func TestU256BigIntRoundTrip(t *testing.T) {
	for idx, tc := range []U256{
		u64(0),
		u64(1),
		u64(maxUint64),
		u256s("18446744073709551616"),
		U256{n: [4]uint64{1, 2, 3, 4}},
		MaxU256,
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)
			back := accU256FromBigInt(tc.AsBigInt())
			tt.MustAssert(tc.Equal(back), "found: %s", back)
		})
	}
}

func TestU256FromBigIntOutOfRange(t *testing.T) {
	tt := assert.WrapTB(t)

	_, inRange := U256FromBigInt(big.NewInt(-1))
	tt.MustAssert(!inRange)

	v, inRange := U256FromBigInt(wrapBigU256)
	tt.MustAssert(!inRange)
	tt.MustAssert(v.Equal(MaxU256))
}

func TestU256String(t *testing.T) {
	for idx, tc := range []struct {
		a   U256
		out string
	}{
		{u64(0), "0"},
		{u64(12345), "12345"},
		{u256s("18446744073709551616"), "18446744073709551616"},
		{MaxU256, "115792089237316195423570985008687907853269984665640564039457584007913129639935"},
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.a.String())
		})
	}
}

func TestU256AddSubRandomVsOracle(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		a, b := RandU256(globalRNG), RandU256(globalRNG)
		ua, ub := uint256.Int(a.Raw()), uint256.Int(b.Raw())

		sum, carry := a.Add(b)
		var usum uint256.Int
		_, ucarry := usum.AddOverflow(&ua, &ub)
		tt.MustEqual(ucarry, carry, "%s + %s", a, b)
		tt.MustEqual(usum, uint256.Int(sum.Raw()), "%s + %s", a, b)

		diff, borrow := a.Sub(b)
		var udiff uint256.Int
		_, uborrow := udiff.SubOverflow(&ua, &ub)
		tt.MustEqual(uborrow, borrow, "%s - %s", a, b)
		tt.MustEqual(udiff, uint256.Int(diff.Raw()), "%s - %s", a, b)

		tt.MustEqual(ua.Cmp(&ub), a.Cmp(b), "%s <> %s", a, b)
	}
}

func TestU256AddRandomVsBig(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		a, b := RandU256(globalRNG), RandU256(globalRNG)

		sum, carry := a.Add(b)
		ref := new(big.Int).Add(a.AsBigInt(), b.AsBigInt())
		tt.MustEqual(ref.Cmp(maxBigU256) > 0, carry, "%s + %s", a, b)
		ref.Mod(ref, wrapBigU256)
		tt.MustAssert(sum.Equal(accU256FromBigInt(ref)), "%s + %s", a, b)
	}
}

func BenchmarkU256Add(b *testing.B) {
	x, y := RandU256(globalRNG), RandU256(globalRNG)
	for i := 0; i < b.N; i++ {
		BenchU256Result, BenchBoolResult = x.Add(y)
	}
}

func BenchmarkU256Cmp(b *testing.B) {
	x, y := RandU256(globalRNG), RandU256(globalRNG)
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Cmp(y)
	}
}
