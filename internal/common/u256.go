package common

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// U256 is an immutable unsigned integer bounded to the range 0 .. 2^256-1.
// The zero value is a valid zero.
type U256 struct {
	v uint256.Int
}

var (
	// MaxU256 is 2^256-1
	MaxU256 = mustFromBig(math.MaxBig256)

	ZeroU256 = U256{}
	OneU256  = NewU256FromUint64(1)
)

func mustFromBig(b *big.Int) U256 {
	u, err := fromBig(b, b.String())
	if err != nil {
		panic(err)
	}
	return u
}

// fromBig is the single range check every construction path goes through
func fromBig(b *big.Int, input string) (U256, error) {
	if b == nil {
		return U256{}, rangeErr(input, "nil value")
	}
	if b.Sign() < 0 {
		return U256{}, rangeErr(input, "negative value")
	}
	if b.BitLen() > 256 {
		return U256{}, rangeErr(input, "exceeds 2^256-1")
	}
	v, overflow := uint256.FromBig(b)
	if overflow {
		return U256{}, rangeErr(input, "exceeds 2^256-1")
	}
	return U256{v: *v}, nil
}

// NewU256 validates the input and constructs U256 from it
func NewU256(in Input) (U256, error) {
	if in == nil {
		return U256{}, rangeErr("", "nil input")
	}
	if u, ok := in.(U256); ok {
		return u, nil
	}
	b, err := in.bigValue()
	if err != nil {
		return U256{}, err
	}
	return fromBig(b, in.describe())
}

// MustU256 is NewU256 that panics on invalid input
func MustU256(in Input) U256 {
	u, err := NewU256(in)
	if err != nil {
		panic(err)
	}
	return u
}

// NewU256FromUint64 never fails
func NewU256FromUint64(n uint64) U256 {
	var u U256
	u.v.SetUint64(n)
	return u
}

// NewU256FromString parses a decimal or 0x prefixed hex string
func NewU256FromString(s string) (U256, error) {
	return NewU256(StringInput(s))
}

// CheckU256 reports whether in is a valid U256 input. It never panics.
func CheckU256(in Input) (valid bool) {
	defer func() {
		if recover() != nil {
			valid = false
		}
	}()
	_, err := NewU256(in)
	return err == nil
}

// EnsureU256 returns in unchanged when it already is a U256, otherwise constructs one
func EnsureU256(in Input) (U256, error) {
	if u, ok := in.(U256); ok {
		return u, nil
	}
	return NewU256(in)
}

// Increase returns u+1. Incrementing MaxU256 is a RangeError, it never wraps.
func (u U256) Increase() (U256, error) {
	return u.Add(OneU256)
}

// Add returns u+o or a RangeError on overflow
func (u U256) Add(o U256) (U256, error) {
	var r U256
	r.v.Add(&u.v, &o.v)
	if r.v.Lt(&u.v) {
		return U256{}, rangeErr(u.String()+" + "+o.String(), "exceeds 2^256-1")
	}
	return r, nil
}

// Sub returns u-o or a RangeError when o > u
func (u U256) Sub(o U256) (U256, error) {
	if u.v.Lt(&o.v) {
		return U256{}, rangeErr(u.String()+" - "+o.String(), "negative value")
	}
	var r U256
	r.v.Sub(&u.v, &o.v)
	return r, nil
}

// Equal compares numeric values
func (u U256) Equal(o U256) bool { return u.v.Eq(&o.v) }

// Cmp returns -1, 0 or +1
func (u U256) Cmp(o U256) int { return u.v.Cmp(&o.v) }

func (u U256) Lt(o U256) bool { return u.v.Lt(&o.v) }

func (u U256) Gt(o U256) bool { return u.v.Gt(&o.v) }

func (u U256) IsZero() bool { return u.v.IsZero() }

// IsUint64 reports whether the value fits into uint64
func (u U256) IsUint64() bool { return u.v.IsUint64() }

// Uint64 returns the low 64 bits
func (u U256) Uint64() uint64 { return u.v.Uint64() }

// Big returns a fresh copy as *big.Int
func (u U256) Big() *big.Int { return u.v.ToBig() }

// Uint256 returns a fresh copy as *uint256.Int
func (u U256) Uint256() *uint256.Int { return u.v.Clone() }

// Decimal returns the value as decimal.Decimal
func (u U256) Decimal() decimal.Decimal { return decimal.NewFromBigInt(u.Big(), 0) }

// Text renders the value in base 10 or 16, lowercase and without prefix or padding.
// Other bases fall back to 10.
func (u U256) Text(base int) string {
	if base != 16 {
		base = 10
	}
	return u.Big().Text(base)
}

// String is the decimal form
func (u U256) String() string { return u.Text(10) }

// Hex is the 0x prefixed hexadecimal form
func (u U256) Hex() string { return "0x" + u.Text(16) }
