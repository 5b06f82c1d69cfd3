package common

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

func TestNewU256Inputs(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want string
	}{
		{"decimal string", StringInput("255"), "255"},
		{"hex string", StringInput("0x10"), "16"},
		{"upper hex prefix", StringInput("0XfF"), "255"},
		{"int64", Int64Input(42), "42"},
		{"uint64 max", Uint64Input(^uint64(0)), "18446744073709551615"},
		{"big", BigInput{big.NewInt(7)}, "7"},
		{"decimal", DecimalInput{decimal.RequireFromString("1000")}, "1000"},
		{"integral decimal with scale", DecimalInput{decimal.RequireFromString("12.000")}, "12"},
		{"uint256", Uint256Input{new(uint256.Int).SetUint64(9)}, "9"},
		{"existing", NewU256FromUint64(3), "3"},
		{"max hex", StringInput("0x" + repeat("f", 64)), MaxU256.String()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := NewU256(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, u.String())
			assert.True(t, CheckU256(tt.in))
		})
	}
}

func TestNewU256RangeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   Input
	}{
		{"negative int", Int64Input(-1)},
		{"negative string", StringInput("-5")},
		{"fraction string", StringInput("1.5")},
		{"garbage", StringInput("abc")},
		{"bad hex", StringInput("0xzz")},
		{"bare prefix", StringInput("0x")},
		{"empty", StringInput("")},
		{"two to the 256", BigInput{two256}},
		{"two to the 256 string", StringInput(two256.String())},
		{"two to the 256 hex", StringInput("0x1" + repeat("0", 64))},
		{"negative big", BigInput{big.NewInt(-3)}},
		{"nil big", BigInput{}},
		{"fraction decimal", DecimalInput{decimal.RequireFromString("1.5")}},
		{"negative decimal", DecimalInput{decimal.RequireFromString("-2")}},
		{"nil uint256", Uint256Input{}},
		{"nil input", nil},
		{"huge exponent", StringInput("1e5000000")},
		{"huge negative exponent", StringInput("1e-1000000")},
		{"upper exponent", StringInput("1E80")},
		{"plus sign", StringInput("+5")},
		{"negative zero", StringInput("-0")},
		{"signed hex", StringInput("0x+5")},
		{"signed hex zero", StringInput("0x-0")},
		{"whitespace", StringInput(" 5")},
		{"79 digits", StringInput("1" + repeat("0", 78))},
		{"65 hex digits", StringInput("0x1" + repeat("0", 64))},
		{"decimal huge exponent", DecimalInput{decimal.New(1, 1<<30)}},
		{"decimal huge negative exponent", DecimalInput{decimal.New(1, -1000000)}},
		{"decimal negative huge exponent", DecimalInput{decimal.New(-1, 1<<30)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewU256(tt.in)
			require.Error(t, err)
			assert.True(t, IsRangeError(err), "unexpected error type %T", err)
			assert.False(t, CheckU256(tt.in))
		})
	}
}

func TestStringInputReasons(t *testing.T) {
	tests := map[string]string{
		"1.5":           "not an integer",
		"-5":            "negative value",
		"-0":            "negative value",
		"abc":           "invalid integer literal",
		"1e3":           "invalid integer literal",
		"+5":            "invalid integer literal",
		"0x+5":          "invalid hex literal",
		"0xzz":          "invalid hex literal",
		"12.000":        "invalid integer literal",
		two256.String(): "exceeds 2^256-1",
	}
	for in, reason := range tests {
		_, err := NewU256(StringInput(in))
		require.Error(t, err, in)
		assert.Equal(t, reason, err.(*RangeError).Reason, in)
	}
}

func TestStringInputLeadingZeros(t *testing.T) {
	u, err := NewU256(StringInput(repeat("0", 100) + "16"))
	require.NoError(t, err)
	assert.Equal(t, "16", u.String())

	u, err = NewU256(StringInput("0x" + repeat("0", 100) + "10"))
	require.NoError(t, err)
	assert.Equal(t, "16", u.String())

	u, err = NewU256(StringInput("0x000"))
	require.NoError(t, err)
	assert.True(t, u.IsZero())

	u, err = NewU256(StringInput(MaxU256.String()))
	require.NoError(t, err)
	assert.True(t, u.Equal(MaxU256))
}

func TestDecimalInputExponents(t *testing.T) {
	u, err := NewU256(DecimalInput{decimal.New(15, 2)})
	require.NoError(t, err)
	assert.Equal(t, "1500", u.String())

	u, err = NewU256(DecimalInput{decimal.New(1500, -2)})
	require.NoError(t, err)
	assert.Equal(t, "15", u.String())

	_, err = NewU256(DecimalInput{decimal.New(1501, -2)})
	assert.True(t, IsRangeError(err))

	_, err = NewU256(DecimalInput{decimal.New(1, 79)})
	require.Error(t, err)
	assert.Equal(t, "1e79", err.(*RangeError).Input)

	u, err = NewU256(DecimalInput{decimal.New(0, 1<<30)})
	require.NoError(t, err)
	assert.True(t, u.IsZero())
}

func TestEnsureU256(t *testing.T) {
	u := NewU256FromUint64(5)
	got, err := EnsureU256(u)
	require.NoError(t, err)
	assert.Equal(t, u, got)

	got, err = EnsureU256(StringInput("0x05"))
	require.NoError(t, err)
	assert.True(t, got.Equal(u))

	_, err = EnsureU256(Int64Input(-5))
	assert.True(t, IsRangeError(err))
}

func TestIncrease(t *testing.T) {
	u, err := ZeroU256.Increase()
	require.NoError(t, err)
	assert.Equal(t, "1", u.String())

	almost, err := MaxU256.Sub(OneU256)
	require.NoError(t, err)
	u, err = almost.Increase()
	require.NoError(t, err)
	assert.True(t, u.Equal(MaxU256))

	_, err = MaxU256.Increase()
	assert.True(t, IsRangeError(err))
	assert.Equal(t, "0x"+repeat("f", 64), MaxU256.Hex(), "receiver must stay untouched")
}

func TestAddSub(t *testing.T) {
	a := NewU256FromUint64(10)
	b := NewU256FromUint64(3)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "13", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "7", diff.String())

	_, err = b.Sub(a)
	assert.True(t, IsRangeError(err))

	_, err = MaxU256.Add(b)
	assert.True(t, IsRangeError(err))
}

func TestCompare(t *testing.T) {
	a := NewU256FromUint64(1)
	b := NewU256FromUint64(2)
	assert.True(t, a.Lt(b))
	assert.True(t, b.Gt(a))
	assert.Equal(t, -1, a.Cmp(b))
	assert.Equal(t, 0, a.Cmp(MustU256(StringInput("0x1"))))
	assert.True(t, a.Equal(MustU256(Int64Input(1))))
	assert.False(t, a.Equal(b))
	assert.True(t, ZeroU256.IsZero())
	assert.True(t, U256{}.Equal(ZeroU256))
}

func TestText(t *testing.T) {
	u := MustU256(StringInput("0xABCDEF"))
	assert.Equal(t, "11259375", u.String())
	assert.Equal(t, "11259375", u.Text(10))
	assert.Equal(t, "abcdef", u.Text(16))
	assert.Equal(t, "0xabcdef", u.Hex())
	assert.Equal(t, "0", ZeroU256.Text(16))
	assert.Equal(t, "0", ZeroU256.String())
	assert.Equal(t, "f", NewU256FromUint64(15).Text(16))
}

func TestConversions(t *testing.T) {
	u := MustU256(StringInput("123456789012345678901234567890"))
	assert.Equal(t, "123456789012345678901234567890", u.Big().String())
	assert.Equal(t, "123456789012345678901234567890", u.Decimal().String())
	assert.Equal(t, "123456789012345678901234567890", u.Uint256().ToBig().String())
	assert.False(t, u.IsUint64())

	small := NewU256FromUint64(77)
	assert.True(t, small.IsUint64())
	assert.Equal(t, uint64(77), small.Uint64())

	// returned copies must not alias the value
	b := small.Big()
	b.SetInt64(1)
	assert.Equal(t, uint64(77), small.Uint64())
}

func TestTextMarshaling(t *testing.T) {
	type holder struct {
		Amount U256 `json:"amount"`
	}
	out, err := json.Marshal(holder{Amount: NewU256FromUint64(16)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"16"}`, string(out))

	var h holder
	require.NoError(t, json.Unmarshal([]byte(`{"amount":"0x10"}`), &h))
	assert.Equal(t, uint64(16), h.Amount.Uint64())

	err = json.Unmarshal([]byte(`{"amount":"-1"}`), &h)
	assert.Error(t, err)
}

func repeat(s string, n int) string {
	out := ""
	for i := 0; i < n; i++ {
		out += s
	}
	return out
}
