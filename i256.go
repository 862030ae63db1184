package qnum

import (
	"fmt"
	"math/big"
)

// I256 is a signed 256-bit integer in sign-magnitude form: an unsigned
// magnitude plus a sign flag (true == negative). A zero magnitude is always
// non-negative; I256FromRaw is the sole enforcement point of that invariant
// and every producing path routes through it.
//
// The range is asymmetric: positive values reach 2^255 - 1 (MaxI256),
// negative values reach -(2^255) (MinI256).
type I256 struct {
	mag U256
	neg bool
}

// I256FromRaw is the complement to I256.Raw(); it creates an I256 from a
// magnitude and a sign flag. A zero magnitude yields a non-negative value
// regardless of the flag. The magnitude is not range-checked; see
// inI256Range for the bound every arithmetic op enforces.
func I256FromRaw(mag U256, neg bool) I256 {
	return I256{mag: mag, neg: neg && !mag.IsZero()}
}

func I256From64(v int64) I256 {
	if v < 0 {
		// -v wraps for MinInt64, but the uint64 conversion of the wrapped
		// value is still the correct magnitude (2^63).
		return I256FromRaw(U256From64(uint64(-v)), true)
	}
	return I256FromRaw(U256From64(uint64(v)), false)
}

// I256FromString creates an I256 from a string. Overflow truncates to
// MaxI256/MinI256 and sets accurate to 'false'.
func I256FromString(s string) (out I256, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return out, false, fmt.Errorf("qnum: i256 string %q invalid", s)
	}
	out, accurate = I256FromBigInt(b)
	return out, accurate, nil
}

// I256FromBigInt creates an I256 from a big.Int. Overflow truncates to
// MaxI256/MinI256 and sets accurate to 'false'.
func I256FromBigInt(v *big.Int) (out I256, accurate bool) {
	neg := v.Sign() < 0
	mag, inRange := U256FromBigInt(new(big.Int).Abs(v))
	if !inRange || !inI256Range(mag, neg) {
		if neg {
			return MinI256, false
		}
		return MaxI256, false
	}
	return I256FromRaw(mag, neg), true
}

// RandI256 generates a signed 256-bit random integer from an external source.
// The result is uniform over [-(2^255 - 1), 2^255 - 1].
func RandI256(source RandSource) (out I256) {
	mag := RandU256(source)
	mag.n[3] &= maxInt64
	return I256FromRaw(mag, source.Uint64()&1 == 1)
}

// inI256Range reports whether mag is a valid magnitude for the given sign:
// up to 2^255 - 1 for positive values, up to 2^255 for negative ones.
func inI256Range(mag U256, neg bool) bool {
	if neg {
		return mag.Cmp(minI256Mag) <= 0
	}
	return mag.Cmp(maxI256Mag) <= 0
}

// norm re-applies the constructor invariant. Equality and ordering use it
// defensively so that a value built in-package with a negative zero still
// compares consistently.
func (i I256) norm() I256 { return I256FromRaw(i.mag, i.neg) }

func (i I256) IsZero() bool { return i.mag.IsZero() }

// Raw returns access to the I256 as its magnitude and sign flag. See
// I256FromRaw() for the counterpart.
func (i I256) Raw() (mag U256, neg bool) { return i.mag, i.neg }

// Abs returns the magnitude of i as an unsigned 256-bit integer.
func (i I256) Abs() U256 { return i.mag }

func (i I256) Sign() int {
	if i.mag.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Add returns i + n, with ok set to 'false' if the result exceeds the signed
// range for its sign. Operands of the same sign sum their magnitudes;
// opposite signs subtract the smaller magnitude from the larger and take the
// sign of the larger, collapsing to (positive) zero when they are equal.
func (i I256) Add(n I256) (v I256, ok bool) {
	if i.neg == n.neg {
		sum, carry := i.mag.Add(n.mag)
		if carry || !inI256Range(sum, i.neg) {
			return v, false
		}
		return I256FromRaw(sum, i.neg), true
	}

	switch i.mag.Cmp(n.mag) {
	case 1:
		diff, _ := i.mag.Sub(n.mag)
		return I256FromRaw(diff, i.neg), true
	case -1:
		diff, _ := n.mag.Sub(i.mag)
		return I256FromRaw(diff, n.neg), true
	}
	return I256{}, true
}

// Sub returns i - n, with ok set to 'false' if the result exceeds the signed
// range for its sign. The sign cases are split directly rather than negating
// n, which would spuriously fail for n == MinI256.
func (i I256) Sub(n I256) (v I256, ok bool) {
	if i.neg != n.neg {
		sum, carry := i.mag.Add(n.mag)
		if carry || !inI256Range(sum, i.neg) {
			return v, false
		}
		return I256FromRaw(sum, i.neg), true
	}

	switch i.mag.Cmp(n.mag) {
	case 1:
		diff, _ := i.mag.Sub(n.mag)
		return I256FromRaw(diff, i.neg), true
	case -1:
		diff, _ := n.mag.Sub(i.mag)
		return I256FromRaw(diff, !i.neg), true
	}
	return I256{}, true
}

// Neg returns -i, with ok set to 'false' for i == MinI256, whose positive
// counterpart is not representable.
func (i I256) Neg() (v I256, ok bool) {
	if i.neg && i.mag.Equal(minI256Mag) {
		return v, false
	}
	return I256FromRaw(i.mag, !i.neg), true
}

// MustAdd returns i + n, panicking on overflow.
func (i I256) MustAdd(n I256) I256 {
	v, ok := i.Add(n)
	if !ok {
		panic("qnum: i256 add overflow")
	}
	return v
}

// MustSub returns i - n, panicking on overflow.
func (i I256) MustSub(n I256) I256 {
	v, ok := i.Sub(n)
	if !ok {
		panic("qnum: i256 sub overflow")
	}
	return v
}

// MustNeg returns -i, panicking if i is MinI256.
func (i I256) MustNeg() I256 {
	v, ok := i.Neg()
	if !ok {
		panic("qnum: i256 negate overflow")
	}
	return v
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
func (i I256) Cmp(n I256) int {
	in, nn := i.norm(), n.norm()
	if in.neg != nn.neg {
		if in.neg {
			return -1
		}
		return 1
	}
	if in.neg {
		return nn.mag.Cmp(in.mag)
	}
	return in.mag.Cmp(nn.mag)
}

func (i I256) Equal(n I256) bool {
	return i.norm() == n.norm()
}

func (i I256) IntoBigInt(b *big.Int) {
	i.mag.IntoBigInt(b)
	if i.neg {
		b.Neg(b)
	}
}

func (i I256) AsBigInt() (b *big.Int) {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i I256) String() string {
	if i.neg && !i.mag.IsZero() {
		return "-" + i.mag.String()
	}
	return i.mag.String()
}

func (i I256) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i I256) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I256) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := I256FromString(string(bts))
	if err != nil {
		return err
	}
	if !accurate {
		return fmt.Errorf("qnum: i256 string %q out of range", string(bts))
	}
	*i = v
	return nil
}

func (i I256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I256) UnmarshalJSON(bts []byte) (err error) {
	if bts[0] == '"' {
		ln := len(bts)
		if bts[ln-1] != '"' {
			return fmt.Errorf("qnum: i256 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
