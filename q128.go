package qnum

import (
	"fmt"
	"math/big"
)

// Q128 is a signed Q128.128 fixed-point number: an I256 interpreted as
// value * 2^-128, giving 128 integer bits and 128 fractional bits.
//
// Addition and subtraction are exact. Multiplication computes the exact
// 512-bit product of the magnitudes and rounds the discarded low 128 bits
// toward negative infinity (MulFloor) or positive infinity (MulCeil).
type Q128 struct {
	raw I256
}

// Q128FromRaw wraps raw as a fixed-point value without range validation; the
// caller asserts the value is in range. A negative zero is still normalized
// away.
func Q128FromRaw(raw I256) Q128 { return Q128{raw: raw.norm()} }

// Q128FromRawChecked wraps raw as a fixed-point value, with ok set to 'false'
// if the magnitude exceeds the signed range for its sign.
func Q128FromRawChecked(raw I256) (out Q128, ok bool) {
	raw = raw.norm()
	if !inI256Range(raw.mag, raw.neg) {
		return out, false
	}
	return Q128{raw: raw}, true
}

// Q128From64 converts an integer to its fixed-point representation. Any int64
// scaled by 2^128 fits the representable range, so this cannot fail.
func Q128From64(v int64) Q128 {
	i := I256From64(v)
	return Q128{raw: I256FromRaw(U256{n: [4]uint64{0, 0, i.mag.n[0], i.mag.n[1]}}, i.neg)}
}

// Q128FromBigInt converts an integer to its fixed-point representation.
// Overflow truncates to MaxQ128/MinQ128 and sets accurate to 'false'.
func Q128FromBigInt(v *big.Int) (out Q128, accurate bool) {
	raw, accurate := I256FromBigInt(new(big.Int).Lsh(v, 128))
	return Q128{raw: raw}, accurate
}

// Q128FromBigRat converts a rational to fixed point, rounding toward negative
// infinity. accurate is set to 'false' if rounding occurred or the value was
// truncated to MaxQ128/MinQ128.
func Q128FromBigRat(r *big.Rat) (out Q128, accurate bool) {
	num := new(big.Int).Lsh(r.Num(), 128)
	q, m := new(big.Int).QuoRem(num, r.Denom(), new(big.Int))

	// QuoRem truncates toward zero; step negative values down so the
	// conversion rounds toward negative infinity like MulFloor.
	if m.Sign() < 0 {
		q.Sub(q, big1)
	}

	raw, inRange := I256FromBigInt(q)
	return Q128{raw: raw}, inRange && m.Sign() == 0
}

// Q128FromString creates a Q128 from a string holding anything big.Rat can
// parse (decimals and fractions included). accurate is set to 'false' if the
// value needed rounding or clamping; see Q128FromBigRat.
func Q128FromString(s string) (out Q128, accurate bool, err error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return out, false, fmt.Errorf("qnum: q128 string %q invalid", s)
	}
	out, accurate = Q128FromBigRat(r)
	return out, accurate, nil
}

// RandQ128 generates a random fixed-point value from an external source,
// uniform over [-(MaxQ128), MaxQ128].
func RandQ128(source RandSource) Q128 {
	return Q128{raw: RandI256(source)}
}

// Raw returns the underlying signed 256-bit representation, valued at
// raw * 2^-128.
func (q Q128) Raw() I256 { return q.raw }

func (q Q128) IsZero() bool { return q.raw.IsZero() }

func (q Q128) Sign() int { return q.raw.Sign() }

// Add returns q + n, with ok set to 'false' on overflow. The sum of two
// fixed-point values of the same scale is exact; no rounding applies.
func (q Q128) Add(n Q128) (v Q128, ok bool) {
	raw, ok := q.raw.Add(n.raw)
	return Q128{raw: raw}, ok
}

// Sub returns q - n, with ok set to 'false' on overflow. Exact, like Add.
func (q Q128) Sub(n Q128) (v Q128, ok bool) {
	raw, ok := q.raw.Sub(n.raw)
	return Q128{raw: raw}, ok
}

// Delta returns the step from q to n, i.e. n - q, so that q plus the delta
// yields n whenever no overflow occurs.
func (q Q128) Delta(n Q128) (v Q128, ok bool) {
	return n.Sub(q)
}

// Neg returns -q, with ok set to 'false' for MinQ128, whose positive
// counterpart is not representable.
func (q Q128) Neg() (v Q128, ok bool) {
	raw, ok := q.raw.Neg()
	return Q128{raw: raw}, ok
}

// MulFloor returns q * n rounded toward negative infinity, with ok set to
// 'false' if the result exceeds the representable range.
func (q Q128) MulFloor(n Q128) (v Q128, ok bool) {
	return q.mulRound(n, false)
}

// MulCeil returns q * n rounded toward positive infinity, with ok set to
// 'false' if the result exceeds the representable range.
//
// For any pair of operands, MulCeil(a, b) - MulFloor(a, b) is either zero or
// exactly one ULP.
func (q Q128) MulCeil(n Q128) (v Q128, ok bool) {
	return q.mulRound(n, true)
}

func (q Q128) mulRound(n Q128, ceil bool) (out Q128, ok bool) {
	if q.IsZero() || n.IsZero() {
		return out, true
	}

	neg := q.raw.neg != n.raw.neg
	p := mul512(q.raw.mag, n.raw.mag)
	if p.hi128Nonzero() {
		return out, false
	}
	mag := p.rsh128()

	// Truncation drops the magnitude toward zero. When the discarded bits are
	// nonzero, rounding toward -inf must grow a negative magnitude and
	// rounding toward +inf a positive one; the other two sign combinations
	// keep the truncated value.
	if p.lo128Nonzero() && neg != ceil {
		var carry bool
		mag, carry = mag.Add64(1)
		if carry {
			return out, false
		}
	}

	// The ULP adjustment can push the magnitude out of the signed range, so
	// the range check comes after it.
	if !inI256Range(mag, neg) {
		return out, false
	}
	return Q128{raw: I256FromRaw(mag, neg)}, true
}

// MustAdd returns q + n, panicking on overflow.
func (q Q128) MustAdd(n Q128) Q128 {
	v, ok := q.Add(n)
	if !ok {
		panic("qnum: q128 add overflow")
	}
	return v
}

// MustSub returns q - n, panicking on overflow.
func (q Q128) MustSub(n Q128) Q128 {
	v, ok := q.Sub(n)
	if !ok {
		panic("qnum: q128 sub overflow")
	}
	return v
}

// MustDelta returns n - q, panicking on overflow.
func (q Q128) MustDelta(n Q128) Q128 {
	v, ok := q.Delta(n)
	if !ok {
		panic("qnum: q128 delta overflow")
	}
	return v
}

// MustNeg returns -q, panicking if q is MinQ128.
func (q Q128) MustNeg() Q128 {
	v, ok := q.Neg()
	if !ok {
		panic("qnum: q128 negate overflow")
	}
	return v
}

// MustMulFloor returns q * n rounded toward negative infinity, panicking on
// overflow.
func (q Q128) MustMulFloor(n Q128) Q128 {
	v, ok := q.MulFloor(n)
	if !ok {
		panic("qnum: q128 multiply overflow")
	}
	return v
}

// MustMulCeil returns q * n rounded toward positive infinity, panicking on
// overflow.
func (q Q128) MustMulCeil(n Q128) Q128 {
	v, ok := q.MulCeil(n)
	if !ok {
		panic("qnum: q128 multiply overflow")
	}
	return v
}

// Cmp compares q to n and returns:
//
//	< 0 if q <  n
//	  0 if q == n
//	> 0 if q >  n
func (q Q128) Cmp(n Q128) int { return q.raw.Cmp(n.raw) }

func (q Q128) Equal(n Q128) bool { return q.raw.Equal(n.raw) }

func (q Q128) GreaterThan(n Q128) bool      { return q.Cmp(n) > 0 }
func (q Q128) GreaterOrEqualTo(n Q128) bool { return q.Cmp(n) >= 0 }
func (q Q128) LessThan(n Q128) bool         { return q.Cmp(n) < 0 }
func (q Q128) LessOrEqualTo(n Q128) bool    { return q.Cmp(n) <= 0 }

// AsBigRat returns the exact value of q as a rational.
func (q Q128) AsBigRat() *big.Rat {
	return new(big.Rat).SetFrac(q.raw.AsBigInt(), bigQ128Scale)
}

// AsBigFloat returns the value of q as a big.Float at the default precision.
func (q Q128) AsBigFloat() *big.Float {
	return new(big.Float).SetRat(q.AsBigRat())
}

// String formats q as an exact decimal integer or reduced fraction. The exact
// textual form is for debugging and carries no stability guarantee.
func (q Q128) String() string {
	r := q.AsBigRat()
	if r.IsInt() {
		return r.Num().String()
	}
	return r.RatString()
}

func (q Q128) MarshalText() ([]byte, error) {
	return []byte(q.AsBigRat().RatString()), nil
}

func (q *Q128) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := Q128FromString(string(bts))
	if err != nil {
		return err
	}
	if !accurate {
		return fmt.Errorf("qnum: q128 string %q not representable", string(bts))
	}
	*q = v
	return nil
}

func (q Q128) MarshalJSON() ([]byte, error) {
	bts, _ := q.MarshalText()
	return []byte(`"` + string(bts) + `"`), nil
}

func (q *Q128) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("qnum: q128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return q.UnmarshalText(bts)
}
