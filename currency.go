package money

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

//go:generate go run scripts/currency/codegen.go

// Currency represents a currency together with the number of digits used
// for its minor unit.
// The zero value is [XXX] with a minor unit of 0, which indicates an unknown currency.
//
// Currencies obtained with [ParseCurr] use the minor unit defined by
// [ISO 4217]. Currencies obtained with [CustomCurr] carry their own minor unit,
// which only affects amounts built with that currency value.
// Two currencies are equal (==) if both their codes and minor units are equal.
//
// Currency is immutable and safe for concurrent use by multiple goroutines.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
type Currency struct {
	code  string // empty for XXX
	scale int
}

// XXX is the code of the zero value [Currency].
const XXX = "XXX"

func newCurrencyUnsafe(code string, scale int) Currency {
	if code == XXX {
		code = ""
	}
	return Currency{code: code, scale: scale}
}

// normCode converts alphabetic codes to upper case and numeric codes
// to their alphabetic counterparts.
func normCode(code string) string {
	if alpha, ok := numLookup[code]; ok {
		return alpha
	}
	return strings.ToUpper(code)
}

// MinorUnitFor returns the default minor unit of a currency from the static
// ISO 4217 table.
// The code may be alphabetic (in any case) or numeric.
//
// MinorUnitFor returns [ErrUnknownCurrency] if the table has no entry for the code.
func MinorUnitFor(code string) (int, error) {
	info, ok := currLookup[normCode(code)]
	if !ok {
		return 0, fmt.Errorf("looking up %q: %w", code, ErrUnknownCurrency)
	}
	return info.scale, nil
}

// ParseCurr converts a string to a currency with the default minor unit.
// The input string must be in one of the following formats:
//
//	USD
//	usd
//	840
//
// ParseCurr returns [ErrUnknownCurrency] if the string is not a known currency code.
func ParseCurr(code string) (Currency, error) {
	scale, err := MinorUnitFor(code)
	if err != nil {
		return Currency{}, err
	}
	return newCurrencyUnsafe(normCode(code), scale), nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// CustomCurr returns a currency with a custom minor unit.
// The code does not have to be listed in the ISO 4217 table, but it must
// consist of three ASCII letters; numeric codes of known currencies are
// also accepted.
// The default table is not modified.
//
// CustomCurr returns an error if the code is malformed or the minor unit is
// negative or greater than [MaxScale].
func CustomCurr(code string, minorUnit int) (Currency, error) {
	if minorUnit < 0 || minorUnit > MaxScale {
		return Currency{}, fmt.Errorf("custom currency %q: minor unit %v out of range", code, minorUnit)
	}
	norm := normCode(code)
	if !isAlphaCode(norm) {
		return Currency{}, fmt.Errorf("custom currency %q: %w", code, ErrUnknownCurrency)
	}
	return newCurrencyUnsafe(norm, minorUnit), nil
}

func isAlphaCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := range len(code) {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}

// Code returns the 3-letter code of the currency.
// This method always returns a valid code.
func (c Currency) Code() string {
	if c.code == "" {
		return XXX
	}
	return c.code
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// If the currency does not have such a code, the method will return an empty string.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Currency) Num() string {
	return currLookup[c.Code()].num
}

// Scale returns the minor unit of the currency, that is the number of digits
// after the decimal point used by amounts in this currency.
// The ISO 4217 currencies use scales of 0, 2, 3 or 4:
//   - A scale of 0 indicates currencies without minor units.
//     For example, the [Japanese Yen] does not have minor units.
//   - A scale of 2 indicates currencies that use 2 digits to represent their minor units.
//     For example, the [US Dollar] represents its minor unit, 1 cent, as 0.01 dollars.
//   - A scale of 3 indicates currencies with 3 digits in their minor units.
//     For instance, the minor unit of the [Omani Rial], 1 baisa, is represented as 0.001 rials.
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Currency) Scale() int {
	return c.scale
}

// IsDefault returns true if the currency is listed in the ISO 4217 table
// and uses its default minor unit.
func (c Currency) IsDefault() bool {
	info, ok := currLookup[c.Code()]
	return ok && info.scale == c.scale
}

// String method implements the [fmt.Stringer] interface and returns
// the 3-letter code of the currency.
// See also method [Currency.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// The minor unit is taken from the ISO 4217 table.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Currency{}, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns a 3-letter code.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	return c.UnmarshalText(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a quoted 3-letter code.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 5)
	text = append(text, '"')
	text = append(text, c.Code()...)
	text = append(text, '"')
	return text, nil
}

// Scan implements the [sql.Scanner] interface.
// The minor unit is taken from the ISO 4217 table.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (c *Currency) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*c, err = ParseCurr(value)
	case []byte:
		*c, err = ParseCurr(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values", Currency{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Currency{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c Currency) Value() (driver.Value, error) {
	return c.Code(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// pad applies the width and the '-' flag of the state to the text.
func pad(state fmt.State, text string) string {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		return text
	}
	spaces := strings.Repeat(" ", w-len(text))
	if state.Flag('-') {
		return text + spaces
	}
	return spaces + text
}
