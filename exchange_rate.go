package money

import (
	"fmt"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies:
// the number of counter currency units quoted for 1 base currency unit.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX indicates
// an unknown currency.
// This type is designed to be safe for concurrent use by multiple goroutines.
type ExchangeRate struct {
	base    Currency // currency being exchanged
	counter Currency // currency being obtained in exchange for the base currency
	value   Decimal  // how many units of counter currency are quoted for 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and counter currencies.
// The rate keeps its scale as given, it is not rounded.
//
// NewExchRate returns an error if the rate is not positive, or if the currencies
// are the same and the rate is not equal to 1.
func NewExchRate(base, counter Currency, rate Decimal) (ExchangeRate, error) {
	if !rate.IsPos() {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v: %w: rate must be positive", base, counter, rate, ErrInvalidNumber)
	}
	if base == counter && !rate.Equal(NewDecimalFromInt64(1)) {
		return ExchangeRate{}, fmt.Errorf("exchange rate %v/%v %v: %w: rate must be equal to 1", base, counter, rate, ErrInvalidNumber)
	}
	return ExchangeRate{base: base, counter: counter, value: rate}, nil
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [ParseDecimal].
func ParseExchRate(base, counter, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing base currency: %w", err)
	}
	c, err := ParseCurr(counter)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing counter currency: %w", err)
	}
	d, err := ParseDecimal(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("parsing rate: %w", err)
	}
	return NewExchRate(b, c, d)
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, counter, rate string) ExchangeRate {
	r, err := ParseExchRate(base, counter, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, counter, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Counter returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Counter() Currency {
	return r.counter
}

// Decimal returns the decimal representation of the exchange rate.
func (r ExchangeRate) Decimal() Decimal {
	return r.value
}

// Inv returns the inverse of the exchange rate with the given number of digits
// after the decimal point, rounded according to the mode.
//
// Inv returns an error if the rate is zero or the inverse cannot be represented
// at the scale with the given mode.
func (r ExchangeRate) Inv(scale int, mode RoundingMode) (ExchangeRate, error) {
	d, err := NewDecimalFromInt64(1).Quo(r.Decimal(), scale, mode)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("inverting %v: %w", r, err)
	}
	return NewExchRate(r.Counter(), r.Base(), d)
}

// SameCurr returns true if exchange rates are denominated in the same base
// and counter currencies.
// See also methods [ExchangeRate.Base] and [ExchangeRate.Counter].
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.Base() == r.Base() && q.Counter() == r.Counter()
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, such as "USD/JPY 150".
// See also methods [Currency.String] and [Decimal.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r ExchangeRate) String() string {
	return r.pair() + " " + r.Decimal().String()
}

func (r ExchangeRate) pair() string {
	return r.Base().Code() + "/" + r.Counter().Code()
}

// Format implements [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	%s, %v: USD/EUR 1.2345
//	%q:    "USD/EUR 1.2345"
//	%f:     1.2345
//	%c:     USD/EUR
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r ExchangeRate) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'f', 'F':
		text = r.Decimal().String()
	case 'c', 'C':
		text = r.pair()
	case 'q', 'Q':
		text = `"` + r.String() + `"`
	default:
		text = r.String()
	}
	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.ExchangeRate="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}
