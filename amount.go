package money

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// Operand is a value that can take part in arithmetic and comparisons with
// an [Amount]. It is implemented only by [Decimal] and [Amount].
//
// A [Decimal] operand is treated as a number in the currency of the receiver.
// An [Amount] operand must be denominated in the currency of the receiver
// for additions, subtractions and comparisons; multiplication and division
// use only its numeric value.
type Operand interface {
	operand() (d Decimal, c Currency, isAmount bool)
}

func (d Decimal) operand() (Decimal, Currency, bool) {
	return d, Currency{}, false
}

func (a Amount) operand() (Decimal, Currency, bool) {
	return a.value, a.curr, true
}

// Amount represents a monetary amount: a [Decimal] paired with a [Currency].
// The scale of the decimal always equals the minor unit of the currency.
// Its zero value corresponds to "XXX 0", where XXX indicates an unknown currency.
// Amount is immutable and safe for concurrent use by multiple goroutines.
type Amount struct {
	curr  Currency // currency and minor unit
	value Decimal  // monetary value, scale == curr.Scale()
}

// newAmountUnsafe creates a new amount without checking the scale.
// Use it only if you are absolutely sure that the arguments are valid.
func newAmountUnsafe(c Currency, d Decimal) Amount {
	return Amount{curr: c, value: d}
}

// NewAmount returns an amount with the specified currency and value.
// The value is rescaled to the minor unit of the currency: padding is exact,
// while reducing the scale discards digits according to the mode.
//
// NewAmount returns [ErrRoundingRequired] if the mode is [RoundUnnecessary]
// and the value has significant digits beyond the minor unit of the currency.
func NewAmount(curr Currency, amount Decimal, mode RoundingMode) (Amount, error) {
	d, err := amount.rescale(curr.Scale(), mode)
	if err != nil {
		return Amount{}, fmt.Errorf("converting %v to %v: %w", amount, curr, err)
	}
	return newAmountUnsafe(curr, d), nil
}

// NewAmountFromMinorUnits converts an integer, representing minor units of
// currency (e.g. cents, pennies, fens), to an amount.
// See also method [Amount.MinorUnits].
func NewAmountFromMinorUnits(curr Currency, units int64) Amount {
	return newAmountUnsafe(curr, newDecimalUnsafe(big.NewInt(units), curr.Scale()))
}

// ParseAmount converts currency and decimal strings to an amount.
// The currency uses its default minor unit.
// If the scale of the amount is less than the scale of the currency, the result
// will be zero-padded to the right.
// See also constructors [ParseCurr], [ParseDecimal] and [NewAmount].
//
// ParseAmount returns an error if either string cannot be parsed or the amount
// has more digits after the decimal point than the currency allows.
func ParseAmount(curr, amount string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := ParseDecimal(amount)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount(c, d, RoundUnnecessary)
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, amount string) Amount {
	a, err := ParseAmount(curr, amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, amount, err))
	}
	return a
}

// ZeroAmount returns an amount of 0 at the minor unit of the currency.
func ZeroAmount(curr Currency) Amount {
	return newAmountUnsafe(curr, newDecimalUnsafe(new(big.Int), curr.Scale()))
}

// MinorUnits returns the amount in minor units of currency
// (e.g. cents, pennies, fens).
// See also constructor [NewAmountFromMinorUnits].
func (a Amount) MinorUnits() *big.Int {
	return a.value.Unscaled()
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the decimal representation of the amount.
func (a Amount) Decimal() Decimal {
	return a.value
}

// Scale returns the number of digits after the decimal point, which is
// always the minor unit of the currency.
func (a Amount) Scale() int {
	return a.curr.Scale()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns true if a = 0.
func (a Amount) IsZero() bool {
	return a.Sign() == 0
}

// IsNeg returns true if a < 0.
func (a Amount) IsNeg() bool {
	return a.Sign() < 0
}

// IsNegOrZero returns true if a <= 0.
func (a Amount) IsNegOrZero() bool {
	return a.Sign() <= 0
}

// IsPos returns true if a > 0.
func (a Amount) IsPos() bool {
	return a.Sign() > 0
}

// IsPosOrZero returns true if a >= 0.
func (a Amount) IsPosOrZero() bool {
	return a.Sign() >= 0
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Abs())
}

// Neg returns an amount with the opposite sign.
func (a Amount) Neg() Amount {
	return newAmountUnsafe(a.Curr(), a.Decimal().Neg())
}

// SameCurr returns true if amounts are denominated in the same currency
// with the same minor unit.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.Curr() == b.Curr()
}

// Equal returns true if amounts have the same currency and the same value.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.Decimal().Equal(b.Decimal())
}

// summand resolves an operand that must be denominated in the currency of a.
func (a Amount) summand(b Operand) (Decimal, error) {
	if b == nil {
		return Decimal{}, fmt.Errorf("nil operand: %w", ErrInvalidNumber)
	}
	d, c, ok := b.operand()
	if ok && c != a.Curr() {
		return Decimal{}, ErrCurrencyMismatch
	}
	return d, nil
}

// factor resolves an operand used only for its numeric value.
func factor(b Operand) (Decimal, error) {
	if b == nil {
		return Decimal{}, fmt.Errorf("nil operand: %w", ErrInvalidNumber)
	}
	d, _, _ := b.operand()
	return d, nil
}

// Add returns the sum a + b.
// An [Amount] operand must have the same currency as a; a [Decimal] operand is
// treated as a value in the currency of a.
//
// Add returns an error if:
//   - b is an amount in a different currency ([ErrCurrencyMismatch]);
//   - b has more digits after the decimal point than the currency allows
//     and the excess digits are not zeros ([ErrRoundingRequired]).
func (a Amount) Add(b Operand) (Amount, error) {
	c, err := a.add(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) add(b Operand) (Amount, error) {
	e, err := a.summand(b)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), a.Decimal().Add(e), RoundUnnecessary)
}

// Sub returns the difference a - b.
// The operand rules are the same as for [Amount.Add].
func (a Amount) Sub(b Operand) (Amount, error) {
	c, err := a.sub(b)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return c, nil
}

func (a Amount) sub(b Operand) (Amount, error) {
	e, err := a.summand(b)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), a.Decimal().Sub(e), RoundUnnecessary)
}

// Mul returns the product a * e, rounded to the minor unit of the currency
// according to the mode.
// If e is an [Amount], only its value is used and its currency is ignored.
//
// Mul returns [ErrRoundingRequired] if the mode is [RoundUnnecessary] and
// the product does not fit the minor unit of the currency.
func (a Amount) Mul(e Operand, mode RoundingMode) (Amount, error) {
	c, err := a.mul(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) mul(e Operand, mode RoundingMode) (Amount, error) {
	f, err := factor(e)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(a.Curr(), a.Decimal().mul(f), mode)
}

// Quo returns the quotient a / e, rounded to the minor unit of the currency
// according to the mode.
// If e is an [Amount], only its value is used and its currency is ignored.
//
// Quo returns an error if:
//   - the divisor is 0 ([ErrDivisionByZero]);
//   - the mode is [RoundUnnecessary] and the quotient does not fit the minor
//     unit of the currency ([ErrRoundingRequired]).
func (a Amount) Quo(e Operand, mode RoundingMode) (Amount, error) {
	c, err := a.quo(e, mode)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return c, nil
}

func (a Amount) quo(e Operand, mode RoundingMode) (Amount, error) {
	f, err := factor(e)
	if err != nil {
		return Amount{}, err
	}
	d, err := a.Decimal().quo(f, a.Scale(), mode)
	if err != nil {
		return Amount{}, err
	}
	return newAmountUnsafe(a.Curr(), d), nil
}

// Cmp compares a with b and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// A [Decimal] operand is compared as a value in the currency of a.
//
// Cmp returns [ErrCurrencyMismatch] if b is an amount in a different currency.
func (a Amount) Cmp(b Operand) (int, error) {
	e, err := a.summand(b)
	if err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	return a.Decimal().Cmp(e), nil
}

// Less returns true if a < b.
// See [Amount.Cmp] for the errors.
func (a Amount) Less(b Operand) (bool, error) {
	c, err := a.Cmp(b)
	return c < 0, err
}

// LessOrEqual returns true if a <= b.
// See [Amount.Cmp] for the errors.
func (a Amount) LessOrEqual(b Operand) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c <= 0, err
}

// Greater returns true if a > b.
// See [Amount.Cmp] for the errors.
func (a Amount) Greater(b Operand) (bool, error) {
	c, err := a.Cmp(b)
	return c > 0, err
}

// GreaterOrEqual returns true if a >= b.
// See [Amount.Cmp] for the errors.
func (a Amount) GreaterOrEqual(b Operand) (bool, error) {
	c, err := a.Cmp(b)
	return err == nil && c >= 0, err
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "USD 23.00".
// See also methods [Currency.String], [Decimal.String], [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.Curr().Code() + " " + a.Decimal().String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.67    | Currency and amount        |
//	| %q     | "USD 5.67"  | Quoted currency and amount |
//	| %f     | 5.67        | Amount                     |
//	| %c     | USD         | Currency                   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		text = a.Decimal().String()
	case 'c', 'C':
		text = a.Curr().Code()
	case 'q', 'Q':
		text = `"` + a.String() + `"`
	default:
		text = a.String()
	}
	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Amount="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// amountJSON is the serialized form of an amount.
// MinorUnit is present only for currencies with a custom minor unit.
type amountJSON struct {
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
	MinorUnit *int   `json:"minorUnit,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as an object with the exact decimal string and
// the currency code:
//
//	{"amount":"23.00","currency":"USD"}
//
// Currencies with a custom minor unit also carry a "minorUnit" field.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	v := amountJSON{
		Amount:   a.Decimal().String(),
		Currency: a.Curr().Code(),
	}
	if !a.Curr().IsDefault() {
		scale := a.Scale()
		v.MinorUnit = &scale
	}
	return json.Marshal(v)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The amount must land exactly on the minor unit of the currency.
// See also method [Amount.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var v amountJSON
	if err := json.Unmarshal(text, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}

	var c Currency
	var err error
	if v.MinorUnit != nil {
		c, err = CustomCurr(v.Currency, *v.MinorUnit)
	} else {
		c, err = ParseCurr(v.Currency)
	}
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	d, err := ParseDecimal(v.Amount)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a, err = NewAmount(c, d, RoundUnnecessary)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}
