/*
Package qnum provides a signed Q128.128 fixed-point type (Q128) built on a
256-bit sign-magnitude integer (I256), itself built from 64-bit limbs (U256).

All types are immutable values; every operation returns a new value. Fallible
operations come in two forms: a checked form that reports failure with an
explicit bool, and a Must* wrapper that panics on failure.

	a := qnum.Q128From64(3)
	half, _, _ := qnum.Q128FromString("0.5")
	fmt.Println(a.MustMulFloor(half))
	// Output: 3/2

A Q128 interprets its underlying I256 as value * 2^-128, giving 128 integer
bits and 128 fractional bits. Addition and subtraction are exact; products are
computed through an exact 512-bit intermediate and rounded toward negative
infinity (MulFloor) or positive infinity (MulCeil), which differ by at most
one ULP.

Values can be created from a variety of sources:

	Q128FromRaw(raw I256) Q128
	Q128FromRawChecked(raw I256) (out Q128, ok bool)
	Q128From64(v int64) Q128
	Q128FromBigInt(v *big.Int) (out Q128, accurate bool)
	Q128FromBigRat(r *big.Rat) (out Q128, accurate bool)
	Q128FromString(s string) (out Q128, accurate bool, err error)

Q128, I256 and U256 support the following formatting and marshalling
interfaces:

  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
*/
package qnum
