package qnum

import (
	"fmt"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shabbyrobe/golib/assert"
)

func TestU256JSONRoundTrip(t *testing.T) {
	for idx, tc := range []U256{
		u64(0),
		u64(1),
		u64(maxUint64),
		u256s("18446744073709551616"),
		MaxU256,
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)

			bts, err := json.Marshal(tc)
			tt.MustOK(err)
			tt.MustEqual(`"`+tc.String()+`"`, string(bts))

			var back U256
			tt.MustOK(json.Unmarshal(bts, &back))
			tt.MustAssert(tc.Equal(back), "found: %s", back)
		})
	}
}

func TestI256JSONRoundTrip(t *testing.T) {
	for idx, tc := range []I256{
		I256{},
		i64(1),
		i64(-1),
		MinI256,
		MaxI256,
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc), func(t *testing.T) {
			tt := assert.WrapTB(t)

			bts, err := json.Marshal(tc)
			tt.MustOK(err)

			var back I256
			tt.MustOK(json.Unmarshal(bts, &back))
			tt.MustAssert(tc.Equal(back), "found: %s", back)
		})
	}
}

func TestQ128JSONRoundTrip(t *testing.T) {
	for idx, tc := range []struct {
		q   Q128
		out string
	}{
		{ZeroQ128, `"0"`},
		{OneQ128, `"1"`},
		{NegOneQ128, `"-1"`},
		{q128s("0.5"), `"1/2"`},
		{UlpQ128, `"1/340282366920938463463374607431768211456"`},
		{q64(-2), `"-2"`},
		{MinQ128, `"-170141183460469231731687303715884105728"`}, // -(2^255)/2^128 reduces to -(2^127)
	} {
		t.Run(fmt.Sprintf("%d", idx), func(t *testing.T) {
			tt := assert.WrapTB(t)

			bts, err := json.Marshal(tc.q)
			tt.MustOK(err)
			tt.MustEqual(tc.out, string(bts))

			var back Q128
			tt.MustOK(json.Unmarshal(bts, &back))
			tt.MustAssert(tc.q.Equal(back), "found: %s", back)
		})
	}
}

func TestQ128JSONRoundTripRandom(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations/10; i++ {
		q := RandQ128(globalRNG)

		bts, err := json.Marshal(q)
		tt.MustOK(err)

		var back Q128
		tt.MustOK(json.Unmarshal(bts, &back))
		tt.MustAssert(q.Equal(back), "found: %s", back)
	}
}

func TestQ128UnmarshalInvalid(t *testing.T) {
	tt := assert.WrapTB(t)

	var q Q128
	tt.MustAssert(q.UnmarshalText([]byte("wat")) != nil)
	tt.MustAssert(q.UnmarshalText([]byte("1/3")) != nil)                                     // not representable
	tt.MustAssert(q.UnmarshalText([]byte("340282366920938463463374607431768211456")) != nil) // 2^128 out of range
}
