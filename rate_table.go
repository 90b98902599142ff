package money

import (
	"context"
	"fmt"
)

type ratePair struct {
	base, counter string
}

// RateTable is an immutable in-memory [RateSource].
// It quotes exactly the rates it was built with and 1 for identical
// currencies. It does not derive inverse or cross rates.
// Rates are looked up by currency code, so a currency with a custom minor
// unit is quoted the rate of its code.
type RateTable struct {
	rates map[ratePair]Decimal
}

// NewRateTable returns a table holding the given exchange rates.
//
// NewRateTable returns an error if two rates have the same base and
// counter currency codes.
func NewRateTable(rates ...ExchangeRate) (*RateTable, error) {
	t := &RateTable{rates: make(map[ratePair]Decimal, len(rates))}
	for _, r := range rates {
		p := ratePair{base: r.Base().Code(), counter: r.Counter().Code()}
		if _, ok := t.rates[p]; ok {
			return nil, fmt.Errorf("duplicate exchange rate %v/%v", p.base, p.counter)
		}
		t.rates[p] = r.Decimal()
	}
	return t, nil
}

// Len returns the number of rates in the table.
func (t *RateTable) Len() int {
	return len(t.rates)
}

// Quote implements the [RateSource] interface.
func (t *RateTable) Quote(_ context.Context, base, counter Currency) (Decimal, error) {
	if base == counter {
		return NewDecimalFromInt64(1), nil
	}
	d, ok := t.rates[ratePair{base: base.Code(), counter: counter.Code()}]
	if !ok {
		return Decimal{}, fmt.Errorf("no rate for %v/%v: %w", base, counter, ErrExchangeUnavailable)
	}
	return d, nil
}
