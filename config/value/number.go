package value

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strconv"
)

// ErrInvalidNumber is returned when number text does not follow the JSON number grammar.
var ErrInvalidNumber = errors.New("invalid number")

// maxExponent bounds the decimal exponent accepted by ParseNumber so a short literal such as
// 1e999999999 cannot expand into an enormous rational.
const maxExponent = 4096

var numberPattern = regexp.MustCompile(`^-?(?:0|[1-9][0-9]*)(?:\.[0-9]+)?(?:[eE]([+-]?[0-9]+))?$`)

// Number is an arbitrary-precision decimal number. The zero Number is 0.
type Number struct {
	rat  *big.Rat
	text string
}

// ParseNumber parses text in the JSON number grammar without losing precision.
func ParseNumber(text string) (Number, error) {
	match := numberPattern.FindStringSubmatch(text)
	if match == nil {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	if match[1] != "" {
		exp, err := strconv.Atoi(match[1])
		if err != nil || exp > maxExponent || exp < -maxExponent {
			return Number{}, fmt.Errorf("%w: exponent of %q out of range", ErrInvalidNumber, text)
		}
	}

	rat, ok := new(big.Rat).SetString(text)
	if !ok {
		return Number{}, fmt.Errorf("%w: %q", ErrInvalidNumber, text)
	}

	return Number{rat: rat, text: text}, nil
}

// NumberFromInt64 returns the Number holding v.
func NumberFromInt64(v int64) Number {
	return Number{rat: new(big.Rat).SetInt64(v), text: strconv.FormatInt(v, 10)}
}

// NumberFromUint64 returns the Number holding v.
func NumberFromUint64(v uint64) Number {
	return Number{rat: new(big.Rat).SetUint64(v), text: strconv.FormatUint(v, 10)}
}

func (n Number) value() *big.Rat {
	if n.rat == nil {
		return new(big.Rat)
	}

	return n.rat
}

// scaled returns n * 10^point as an integer, or false if the product has a fractional part.
func (n Number) scaled(point uint16) (*big.Int, bool) {
	factor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(point)), nil)
	product := new(big.Rat).Mul(n.value(), new(big.Rat).SetInt(factor))

	if !product.IsInt() {
		return nil, false
	}

	return product.Num(), true
}

// FixedPointInt64 returns n * 10^point as an int64. It fails if the result has a fractional
// part or does not fit in an int64. FixedPointInt64(0) therefore accepts exactly the integral
// numbers within the int64 range.
func (n Number) FixedPointInt64(point uint16) (int64, bool) {
	scaled, ok := n.scaled(point)
	if !ok || !scaled.IsInt64() {
		return 0, false
	}

	return scaled.Int64(), true
}

// FixedPointUint64 is the unsigned counterpart of FixedPointInt64. Negative numbers fail.
func (n Number) FixedPointUint64(point uint16) (uint64, bool) {
	scaled, ok := n.scaled(point)
	if !ok || !scaled.IsUint64() {
		return 0, false
	}

	return scaled.Uint64(), true
}

// Float64 returns the nearest float64 to n.
func (n Number) Float64() float64 {
	f, _ := n.value().Float64()

	return f
}

// String returns the number as it was written, or its decimal form for constructed numbers.
func (n Number) String() string {
	if n.text != "" {
		return n.text
	}

	return n.value().RatString()
}
