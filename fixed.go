package money

import (
	"fmt"
	"math/big"

	fixed "github.com/govalues/decimal"
)

// DecimalFromFixed converts a fixed-width [fixed.Decimal] to a decimal
// with the same coefficient and scale. The conversion is always exact.
//
// [fixed.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
func DecimalFromFixed(f fixed.Decimal) Decimal {
	coef := new(big.Int).SetUint64(f.Coef())
	if f.IsNeg() {
		coef.Neg(coef)
	}
	return newDecimalUnsafe(coef, f.Scale())
}

// Fixed converts the decimal to a fixed-width [fixed.Decimal], keeping its scale.
//
// Fixed returns [ErrOverflow] if the coefficient has more than [fixed.MaxPrec]
// digits or the scale is greater than [fixed.MaxScale].
//
// [fixed.Decimal]: https://pkg.go.dev/github.com/govalues/decimal#Decimal
// [fixed.MaxPrec]: https://pkg.go.dev/github.com/govalues/decimal#MaxPrec
// [fixed.MaxScale]: https://pkg.go.dev/github.com/govalues/decimal#MaxScale
func (d Decimal) Fixed() (fixed.Decimal, error) {
	if d.Scale() > fixed.MaxScale {
		return fixed.Decimal{}, fmt.Errorf("converting %v: scale %v exceeds %v: %w", d, d.Scale(), fixed.MaxScale, ErrOverflow)
	}
	coef := d.Unscaled()
	if prec := len(coef.Abs(coef).String()); prec > fixed.MaxPrec {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %v digits exceed %v: %w", d, prec, fixed.MaxPrec, ErrOverflow)
	}
	f, err := fixed.Parse(d.String())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", d, err)
	}
	return f, nil
}
