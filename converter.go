package money

import (
	"context"
	"log/slog"
)

// RateSource quotes exchange rates between currency pairs.
// Quote returns the number of counter currency units for 1 base currency unit.
// Implementations must be safe for concurrent use if the [Converter] using
// them is shared between goroutines.
type RateSource interface {
	Quote(ctx context.Context, base, counter Currency) (Decimal, error)
}

// RateSourceFunc is an adapter to allow the use of ordinary functions as
// rate sources.
type RateSourceFunc func(ctx context.Context, base, counter Currency) (Decimal, error)

// Quote calls f(ctx, base, counter).
func (f RateSourceFunc) Quote(ctx context.Context, base, counter Currency) (Decimal, error) {
	return f(ctx, base, counter)
}

// Converter converts amounts between currencies using a [RateSource].
// A Converter holds no mutable state and is safe for concurrent use
// as long as its rate source is.
type Converter struct {
	source RateSource
	logger *slog.Logger
}

// ConverterOption configures a [Converter].
type ConverterOption func(*Converter)

// WithLogger sets the logger used to report quote failures.
// By default a converter discards its logs.
func WithLogger(logger *slog.Logger) ConverterOption {
	return func(c *Converter) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewConverter returns a converter that quotes rates from the source.
func NewConverter(source RateSource, opts ...ConverterOption) *Converter {
	c := &Converter{
		source: source,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert returns the amount expressed in the counter currency.
//
// The quoted ratio is adjusted for the difference between the minor units of
// the two currencies: it is divided by 10^(base minor unit - counter minor unit)
// before being applied to the amount.
// The product is rounded to the minor unit of the counter currency according
// to the mode.
//
// Convert returns an error if:
//   - the context is done (the context error);
//   - the rate source fails or quotes a non-positive ratio (an [*ExchangeError]
//     that matches [ErrExchangeUnavailable]); the cause is logged, not returned;
//   - the mode is [RoundUnnecessary] and the product does not fit the minor unit
//     of the counter currency ([ErrRoundingRequired]).
func (c *Converter) Convert(ctx context.Context, a Amount, counter Currency, mode RoundingMode) (Amount, error) {
	if err := ctx.Err(); err != nil {
		return Amount{}, err
	}
	base := a.Curr()
	diff := base.Scale() - counter.Scale()

	ratio, err := c.quote(ctx, base, counter)
	if err != nil {
		return Amount{}, err
	}
	adjusted := ratio.movePointLeft(diff)
	return NewAmount(counter, a.Decimal().mul(adjusted), mode)
}

// quote narrows every rate source failure to an [*ExchangeError].
func (c *Converter) quote(ctx context.Context, base, counter Currency) (Decimal, error) {
	pair := slog.String("pair", base.Code()+"/"+counter.Code())
	ratio, err := c.source.Quote(ctx, base, counter)
	if err != nil {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "quote failed", pair, slog.Any("error", err))
		return Decimal{}, &ExchangeError{Base: base, Counter: counter}
	}
	if !ratio.IsPos() {
		c.logger.LogAttrs(ctx, slog.LevelWarn, "quote rejected", pair, slog.String("ratio", ratio.String()))
		return Decimal{}, &ExchangeError{Base: base, Counter: counter}
	}
	c.logger.LogAttrs(ctx, slog.LevelDebug, "quote received", pair, slog.String("ratio", ratio.String()))
	return ratio, nil
}
