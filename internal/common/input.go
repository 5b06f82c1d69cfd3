package common

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/holiman/uint256"
	"github.com/shopspring/decimal"
)

// Input is one of the accepted U256 construction shapes:
// StringInput, Int64Input, Uint64Input, BigInput, DecimalInput, Uint256Input or U256.
type Input interface {
	bigValue() (*big.Int, error)
	describe() string
}

// StringInput is a decimal or 0x/0X prefixed hexadecimal literal
type StringInput string

// Int64Input is a native signed integer
type Int64Input int64

// Uint64Input is a native unsigned integer
type Uint64Input uint64

// BigInput wraps an arbitrary-precision integer
type BigInput struct {
	*big.Int
}

// DecimalInput wraps an arbitrary-precision decimal, which must be integral
type DecimalInput struct {
	decimal.Decimal
}

// Uint256Input wraps a fixed 256-bit integer
type Uint256Input struct {
	*uint256.Int
}

const (
	// maxDecDigits is the digit count of 2^256-1
	maxDecDigits = 78
	maxHexDigits = 64
)

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isDigits(s string, hex bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
		case hex && ('a' <= c && c <= 'f' || 'A' <= c && c <= 'F'):
		default:
			return false
		}
	}
	return true
}

// isFraction matches [0-9]+.[0-9]+
func isFraction(s string) bool {
	dot := strings.IndexByte(s, '.')
	return dot > 0 && isDigits(s[:dot], false) && isDigits(s[dot+1:], false)
}

func (in StringInput) bigValue() (*big.Int, error) {
	s := string(in)
	if s == "" {
		return nil, rangeErr(s, "empty string")
	}
	digits, hex := s, false
	if hasHexPrefix(s) {
		digits, hex = s[2:], true
	}
	if !isDigits(digits, hex) {
		switch {
		case hex:
			return nil, rangeErr(s, "invalid hex literal")
		case s[0] == '-' && (isDigits(s[1:], false) || isFraction(s[1:])):
			return nil, rangeErr(s, "negative value")
		case isFraction(s):
			// no exponent can reach here, so the decimal stays as small as the literal
			d, err := decimal.NewFromString(s)
			if err != nil {
				return nil, rangeErr(s, "invalid integer literal")
			}
			if _, err := (DecimalInput{d}).bigValue(); err != nil {
				return nil, rangeErr(s, "not an integer")
			}
		}
		return nil, rangeErr(s, "invalid integer literal")
	}
	limit := maxDecDigits
	if hex {
		limit = maxHexDigits
	}
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > limit {
		return nil, rangeErr(s, "exceeds 2^256-1")
	}
	if digits == "" {
		return new(big.Int), nil
	}
	if hex {
		digits = "0x" + digits
	}
	b, ok := math.ParseBig256(digits)
	if !ok {
		return nil, rangeErr(s, "exceeds 2^256-1")
	}
	return b, nil
}

func (in StringInput) describe() string { return string(in) }

func (in Int64Input) bigValue() (*big.Int, error) { return big.NewInt(int64(in)), nil }

func (in Int64Input) describe() string { return strconv.FormatInt(int64(in), 10) }

func (in Uint64Input) bigValue() (*big.Int, error) { return new(big.Int).SetUint64(uint64(in)), nil }

func (in Uint64Input) describe() string { return strconv.FormatUint(uint64(in), 10) }

func (in BigInput) bigValue() (*big.Int, error) {
	if in.Int == nil {
		return nil, rangeErr("", "nil big integer")
	}
	return new(big.Int).Set(in.Int), nil
}

func (in BigInput) describe() string {
	if in.Int == nil {
		return ""
	}
	return in.Int.String()
}

func (in DecimalInput) bigValue() (*big.Int, error) {
	d := in.Decimal
	if d.Sign() == 0 {
		return new(big.Int), nil
	}
	if d.Sign() < 0 {
		return nil, rangeErr(decimalLabel(d), "negative value")
	}
	coef, exp := d.Coefficient(), int64(d.Exponent())
	if exp >= 0 {
		// 10^78 > 2^256, so any non-zero coefficient overflows
		if exp > maxDecDigits {
			return nil, rangeErr(decimalLabel(d), "exceeds 2^256-1")
		}
		return d.BigInt(), nil
	}
	// coef * 10^exp is integral only when 10^-exp divides coef, which needs -exp <= digits(coef)
	digits := coef.Text(10)
	if -exp > int64(len(digits)) {
		return nil, rangeErr(decimalLabel(d), "not an integer")
	}
	if strings.TrimRight(digits[len(digits)+int(exp):], "0") != "" {
		return nil, rangeErr(decimalLabel(d), "not an integer")
	}
	b, _ := new(big.Int).SetString(digits[:len(digits)+int(exp)], 10)
	if b == nil {
		b = new(big.Int)
	}
	return b, nil
}

func (in DecimalInput) describe() string { return decimalLabel(in.Decimal) }

// decimalLabel prints coefficient and exponent, d.String() would expand the exponent
func decimalLabel(d decimal.Decimal) string {
	return d.Coefficient().String() + "e" + strconv.FormatInt(int64(d.Exponent()), 10)
}

func (in Uint256Input) bigValue() (*big.Int, error) {
	if in.Int == nil {
		return nil, rangeErr("", "nil uint256")
	}
	return in.Int.ToBig(), nil
}

func (in Uint256Input) describe() string {
	if in.Int == nil {
		return ""
	}
	return in.Int.ToBig().String()
}

func (u U256) bigValue() (*big.Int, error) { return u.Big(), nil }

func (u U256) describe() string { return u.String() }
