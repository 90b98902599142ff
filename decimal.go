package money

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// MaxScale is the largest number of digits after the decimal point
// a [Decimal] can carry.
// Literals with an exponent outside [-MaxScale, MaxScale] are rejected.
const MaxScale = 1000

// Decimal is an arbitrary-precision signed decimal number, represented as
// an unscaled integer coefficient and a non-negative scale:
//
//	value = coefficient / 10^scale
//
// Decimal keeps the scale it was created with, so "1.50" and "1.5" are
// numerically equal but print differently.
// Its zero value is 0 with a scale of 0.
// Decimal is immutable and safe for concurrent use by multiple goroutines.
// It is not comparable with ==, use [Decimal.Equal] or [Decimal.Cmp].
type Decimal struct {
	value decimal.Decimal // exponent is never positive
}

// newDecimalUnsafe creates a decimal without checking the scale.
func newDecimalUnsafe(coef *big.Int, scale int) Decimal {
	return Decimal{value: decimal.NewFromBigInt(coef, int32(-scale))} //nolint:gosec
}

// fromShopspring normalises a positive exponent to a scale of 0.
func fromShopspring(v decimal.Decimal) (Decimal, error) {
	exp := int(v.Exponent())
	if exp < -MaxScale || exp > MaxScale {
		return Decimal{}, fmt.Errorf("%w: exponent %v out of range [-%v, %v]", ErrInvalidNumber, exp, MaxScale, MaxScale)
	}
	if exp > 0 {
		coef := v.Coefficient()
		coef.Mul(coef, pow10(exp))
		return newDecimalUnsafe(coef, 0), nil
	}
	return Decimal{value: v}, nil
}

func checkScale(scale int) error {
	if scale < 0 || scale > MaxScale {
		return fmt.Errorf("%w: scale %v out of range [0, %v]", ErrInvalidNumber, scale, MaxScale)
	}
	return nil
}

// NewDecimal returns a decimal equal to coef / 10^scale.
//
// NewDecimal returns an error if the scale is negative or greater than [MaxScale].
func NewDecimal(coef int64, scale int) (Decimal, error) {
	return NewDecimalFromBigInt(big.NewInt(coef), scale)
}

// NewDecimalFromBigInt returns a decimal equal to coef / 10^scale.
// The coefficient is copied.
//
// NewDecimalFromBigInt returns an error if the scale is negative or greater
// than [MaxScale].
func NewDecimalFromBigInt(coef *big.Int, scale int) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	return newDecimalUnsafe(coef, scale), nil
}

// NewDecimalFromInt64 returns an integer decimal with a scale of 0.
func NewDecimalFromInt64(n int64) Decimal {
	return newDecimalUnsafe(big.NewInt(n), 0)
}

// NewDecimalFromRat converts a rational number to a decimal with the smallest
// scale that represents it exactly.
//
// NewDecimalFromRat returns an error if:
//   - the rational number has a non-terminating decimal expansion, such as 1/3
//     ([ErrRoundingRequired]);
//   - the exact expansion needs more than [MaxScale] digits after the decimal
//     point ([ErrInvalidNumber]).
func NewDecimalFromRat(r *big.Rat) (Decimal, error) {
	num, den := r.Num(), r.Denom()

	// A reduced fraction terminates iff its denominator is 2^a * 5^b.
	rest := new(big.Int).Set(den)
	twos := 0
	for rest.Bit(0) == 0 {
		rest.Rsh(rest, 1)
		twos++
	}
	five, rem := big.NewInt(5), new(big.Int)
	fives := 0
	for {
		q, m := new(big.Int).QuoRem(rest, five, rem)
		if m.Sign() != 0 {
			break
		}
		rest = q
		fives++
	}
	if rest.Cmp(bigOne) != 0 {
		return Decimal{}, fmt.Errorf("converting %v: non-terminating expansion: %w", r.RatString(), ErrRoundingRequired)
	}

	scale := max(twos, fives)
	if err := checkScale(scale); err != nil {
		return Decimal{}, fmt.Errorf("converting %v: %w", r.RatString(), err)
	}
	coef := new(big.Int).Mul(num, pow10(scale))
	coef.Quo(coef, den)
	return newDecimalUnsafe(coef, scale), nil
}

// ParseDecimal converts a string to a decimal, keeping every digit and
// the scale of the input.
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//	1.83e5
//	0.22e-9
//
// ParseDecimal returns [ErrInvalidNumber] if the string is not a valid
// decimal literal or its exponent lies outside [-MaxScale, MaxScale].
func ParseDecimal(s string) (Decimal, error) {
	if s == "" {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, ErrInvalidNumber)
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w: %w", s, ErrInvalidNumber, err)
	}
	d, err := fromShopspring(v)
	if err != nil {
		return Decimal{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return d, nil
}

// MustParseDecimal is like [ParseDecimal] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding decimals.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(fmt.Sprintf("ParseDecimal(%q) failed: %v", s, err))
	}
	return d
}

// Scale returns the number of digits after the decimal point.
func (d Decimal) Scale() int {
	return -int(d.value.Exponent())
}

// Unscaled returns a copy of the coefficient of the decimal.
func (d Decimal) Unscaled() *big.Int {
	return d.value.Coefficient()
}

// Sign returns:
//
//	-1 if d < 0
//	 0 if d = 0
//	+1 if d > 0
func (d Decimal) Sign() int {
	return d.value.Sign()
}

// IsZero returns true if d = 0.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// IsNeg returns true if d < 0.
func (d Decimal) IsNeg() bool {
	return d.Sign() < 0
}

// IsPos returns true if d > 0.
func (d Decimal) IsPos() bool {
	return d.Sign() > 0
}

// Neg returns a decimal with the opposite sign and the same scale.
func (d Decimal) Neg() Decimal {
	return Decimal{value: d.value.Neg()}
}

// Abs returns the absolute value of the decimal.
func (d Decimal) Abs() Decimal {
	return Decimal{value: d.value.Abs()}
}

// Add returns the exact sum d + e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Add(e Decimal) Decimal {
	return Decimal{value: d.value.Add(e.value)}
}

// Sub returns the exact difference d - e.
// The scale of the result is the larger of the two scales.
func (d Decimal) Sub(e Decimal) Decimal {
	return Decimal{value: d.value.Sub(e.value)}
}

// Mul returns the exact product d * e.
// The scale of the result is the sum of the two scales.
//
// Mul returns [ErrOverflow] if the scale of the product is greater than [MaxScale].
func (d Decimal) Mul(e Decimal) (Decimal, error) {
	if scale := d.Scale() + e.Scale(); scale > MaxScale {
		return Decimal{}, fmt.Errorf("computing [%v * %v]: scale %v exceeds %v: %w", d, e, scale, MaxScale, ErrOverflow)
	}
	return d.mul(e), nil
}

// mul is like Mul but does not limit the scale of the product.
// Both scales must not exceed a small multiple of [MaxScale].
func (d Decimal) mul(e Decimal) Decimal {
	return Decimal{value: d.value.Mul(e.value)}
}

// Quo returns the quotient d / e with the given number of digits after
// the decimal point, rounded according to the mode.
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the mode is [RoundUnnecessary] and the quotient is not exact at
//     the given scale ([ErrRoundingRequired]);
//   - the scale is negative or greater than [MaxScale].
func (d Decimal) Quo(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	q, err := d.quo(e, scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("computing [%v / %v]: %w", d, e, err)
	}
	return q, nil
}

func (d Decimal) quo(e Decimal, scale int, mode RoundingMode) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	if e.IsZero() {
		return Decimal{}, ErrDivisionByZero
	}
	// d/e * 10^scale = dc * 10^(scale - ds + es) / ec
	num, den := d.Unscaled(), e.Unscaled()
	if k := scale - d.Scale() + e.Scale(); k >= 0 {
		num.Mul(num, pow10(k))
	} else {
		den.Mul(den, pow10(-k))
	}
	q, err := quoRound(num, den, mode)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalUnsafe(q, scale), nil
}

// Rescale returns a decimal with the given number of digits after the decimal point.
// Increasing the scale zero-pads the coefficient and is always exact.
// Decreasing the scale discards digits according to the mode.
//
// Rescale returns an error if:
//   - the mode is [RoundUnnecessary] and a non-zero digit would be discarded
//     ([ErrRoundingRequired]);
//   - the scale is negative or greater than [MaxScale].
func (d Decimal) Rescale(scale int, mode RoundingMode) (Decimal, error) {
	r, err := d.rescale(scale, mode)
	if err != nil {
		return Decimal{}, fmt.Errorf("rescaling %v to scale %v: %w", d, scale, err)
	}
	return r, nil
}

func (d Decimal) rescale(scale int, mode RoundingMode) (Decimal, error) {
	if err := checkScale(scale); err != nil {
		return Decimal{}, err
	}
	cur := d.Scale()
	switch {
	case scale == cur:
		return d, nil
	case scale > cur:
		coef := d.Unscaled()
		coef.Mul(coef, pow10(scale-cur))
		return newDecimalUnsafe(coef, scale), nil
	}
	places := int32(scale) //nolint:gosec
	switch mode {
	case RoundUnnecessary:
		r := d.value.RoundDown(places)
		if !r.Equal(d.value) {
			return Decimal{}, ErrRoundingRequired
		}
		return Decimal{value: r}, nil
	case RoundUp:
		return Decimal{value: d.value.RoundUp(places)}, nil
	case RoundDown:
		return Decimal{value: d.value.RoundDown(places)}, nil
	case RoundCeiling:
		return Decimal{value: d.value.RoundCeil(places)}, nil
	case RoundFloor:
		return Decimal{value: d.value.RoundFloor(places)}, nil
	case RoundHalfUp:
		return Decimal{value: d.value.Round(places)}, nil
	case RoundHalfEven:
		return Decimal{value: d.value.RoundBank(places)}, nil
	}
	q, err := quoRound(d.Unscaled(), pow10(cur-scale), mode)
	if err != nil {
		return Decimal{}, err
	}
	return newDecimalUnsafe(q, scale), nil
}

// MovePointLeft returns d / 10^n.
// A negative n moves the decimal point to the right.
// The result is always exact: moving left increases the scale, moving right
// decreases it down to 0 and multiplies the coefficient beyond that.
//
// MovePointLeft returns [ErrOverflow] if the scale of the result would be
// greater than [MaxScale] or the coefficient would grow by more than
// [MaxScale] digits.
func (d Decimal) MovePointLeft(n int) (Decimal, error) {
	if n < -2*MaxScale || n > MaxScale {
		return Decimal{}, fmt.Errorf("moving the point of %v by %v: %w", d, n, ErrOverflow)
	}
	if scale := d.Scale() + n; scale < -MaxScale || scale > MaxScale {
		return Decimal{}, fmt.Errorf("moving the point of %v by %v: %w", d, n, ErrOverflow)
	}
	return d.movePointLeft(n), nil
}

// movePointLeft is like MovePointLeft but does not limit the result.
func (d Decimal) movePointLeft(n int) Decimal {
	coef, scale := d.Unscaled(), d.Scale()+n
	if scale < 0 {
		coef.Mul(coef, pow10(-scale))
		scale = 0
	}
	return newDecimalUnsafe(coef, scale)
}

// Cmp compares decimals numerically and returns:
//
//	-1 if d < e
//	 0 if d = e
//	+1 if d > e
func (d Decimal) Cmp(e Decimal) int {
	return d.value.Cmp(e.value)
}

// Equal returns true if d and e are numerically equal, regardless of scale.
func (d Decimal) Equal(e Decimal) bool {
	return d.Cmp(e) == 0
}

// Less returns true if d < e.
func (d Decimal) Less(e Decimal) bool {
	return d.Cmp(e) < 0
}

// LessOrEqual returns true if d <= e.
func (d Decimal) LessOrEqual(e Decimal) bool {
	return d.Cmp(e) <= 0
}

// Greater returns true if d > e.
func (d Decimal) Greater(e Decimal) bool {
	return d.Cmp(e) > 0
}

// GreaterOrEqual returns true if d >= e.
func (d Decimal) GreaterOrEqual(e Decimal) bool {
	return d.Cmp(e) >= 0
}

// String implements the [fmt.Stringer] interface and returns the exact
// textual form of the decimal, with as many digits after the decimal point
// as its scale.
func (d Decimal) String() string {
	return d.value.StringFixed(d.value.Exponent() * -1)
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseDecimal].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *Decimal) UnmarshalText(text []byte) error {
	var err error
	*d, err = ParseDecimal(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Decimal{}, err)
	}
	return nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// See also method [Decimal.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
