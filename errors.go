package money

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the package, possibly wrapped.
// Use [errors.Is] to test for them.
var (
	ErrInvalidNumber       = errors.New("invalid number")
	ErrUnknownCurrency     = errors.New("unknown currency")
	ErrCurrencyMismatch    = errors.New("currency mismatch")
	ErrRoundingRequired    = errors.New("rounding necessary")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrOverflow            = errors.New("overflow")
	ErrExchangeUnavailable = errors.New("exchange unavailable")
)

// ExchangeError is returned by [Converter.Convert] when the rate source
// could not quote a currency pair.
// The underlying cause is not part of the error, only the pair is.
// ExchangeError matches [ErrExchangeUnavailable] with [errors.Is].
type ExchangeError struct {
	Base    Currency
	Counter Currency
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("cannot exchange a currency pair: %v/%v", e.Base, e.Counter)
}

func (e *ExchangeError) Unwrap() error {
	return ErrExchangeUnavailable
}
