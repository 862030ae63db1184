package qnum

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U256 is an unsigned 256-bit integer represented as 4 unsigned 64-bit limbs
// in base 2^64, least significant limb first. Operations that can wrap return
// an explicit carry/borrow flag instead of wrapping silently.
type U256 struct {
	n [4]uint64
}

// U256FromRaw creates a U256 from 4 limbs, least significant first. See
// U256.Raw() for the counterpart.
func U256FromRaw(limbs [4]uint64) U256 { return U256{n: limbs} }

func U256From64(v uint64) U256 { return U256{n: [4]uint64{v, 0, 0, 0}} }

// U256FromString creates a U256 from a string. Overflow truncates to MaxU256
// and sets inRange to 'false'.
func U256FromString(s string) (out U256, inRange bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, false, fmt.Errorf("qnum: u256 string %q invalid", s)
	}
	out, inRange = U256FromBigInt(b)
	return out, inRange, nil
}

// U256FromBigInt creates a U256 from a big.Int. Values outside the range
// [0, 2^256) truncate to the nearer bound and set inRange to 'false'.
func U256FromBigInt(v *big.Int) (out U256, inRange bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		if len(words) > 4 {
			return MaxU256, false
		}
		for i, w := range words {
			out.n[i] = uint64(w)
		}
		return out, true

	case 32:
		if len(words) > 8 {
			return MaxU256, false
		}
		for i, w := range words {
			out.n[i/2] |= uint64(w) << (uint(i%2) * 32)
		}
		return out, true

	default:
		panic("qnum: unsupported bit size")
	}
}

// RandU256 generates an unsigned 256-bit random integer from an external
// source.
func RandU256(source RandSource) (out U256) {
	for i := range out.n {
		out.n[i] = source.Uint64()
	}
	return out
}

func (u U256) IsZero() bool { return u == zeroU256 }

// Raw returns access to the U256 as its 4 limbs, least significant first.
// See U256FromRaw() for the counterpart.
func (u U256) Raw() [4]uint64 { return u.n }

// Add returns u + n and a carry flag which is set if the sum exceeds
// MaxU256.
func (u U256) Add(n U256) (v U256, carry bool) {
	var c uint64
	for i := range u.n {
		v.n[i], c = bits.Add64(u.n[i], n.n[i], c)
	}
	return v, c != 0
}

// Add64 returns u + n and a carry flag which is set if the sum exceeds
// MaxU256.
func (u U256) Add64(n uint64) (v U256, carry bool) {
	var c uint64
	v.n[0], c = bits.Add64(u.n[0], n, 0)
	for i := 1; i < len(u.n); i++ {
		v.n[i], c = bits.Add64(u.n[i], 0, c)
	}
	return v, c != 0
}

// Sub returns u - n and a borrow flag which is set if n > u.
func (u U256) Sub(n U256) (v U256, borrow bool) {
	var b uint64
	for i := range u.n {
		v.n[i], b = bits.Sub64(u.n[i], n.n[i], b)
	}
	return v, b != 0
}

// Cmp compares u to n and returns:
//
//	< 0 if u <  n
//	  0 if u == n
//	> 0 if u >  n
func (u U256) Cmp(n U256) int {
	for i := len(u.n) - 1; i >= 0; i-- {
		if u.n[i] != n.n[i] {
			if u.n[i] > n.n[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

func (u U256) Equal(n U256) bool { return u == n }

func (u U256) GreaterThan(n U256) bool      { return u.Cmp(n) > 0 }
func (u U256) GreaterOrEqualTo(n U256) bool { return u.Cmp(n) >= 0 }
func (u U256) LessThan(n U256) bool         { return u.Cmp(n) < 0 }
func (u U256) LessOrEqualTo(n U256) bool    { return u.Cmp(n) <= 0 }

// AsUint64 truncates the U256 to fit in a uint64. Values outside the range
// will overflow. See IsUint64() if you want to check before you convert.
func (u U256) AsUint64() uint64 { return u.n[0] }

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.n[1] == 0 && u.n[2] == 0 && u.n[3] == 0 }

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		words := b.Bits()
		ln := len(words)
		if ln < 4 {
			words = append(words, make([]big.Word, 4-ln)...)
		}
		words = words[:4]
		for i, w := range u.n {
			words[i] = big.Word(w)
		}
		b.SetBits(words)

	default:
		b.SetUint64(0)
		var limb big.Int
		for i := len(u.n) - 1; i >= 0; i-- {
			b.Lsh(b, 64)
			limb.SetUint64(u.n[i])
			b.Add(b, &limb)
		}
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) String() string {
	if u == zeroU256 {
		return "0"
	}
	if u.IsUint64() {
		return strconv.FormatUint(u.n[0], 10)
	}
	return u.AsBigInt().String()
}

func (u U256) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, inRange, err := U256FromString(string(bts))
	if err != nil {
		return err
	}
	if !inRange {
		return fmt.Errorf("qnum: u256 string %q out of range", string(bts))
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.String() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("qnum: u256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return u.UnmarshalText(bts)
}
