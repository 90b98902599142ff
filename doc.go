/*
Package money implements exact monetary amounts in various currencies and
conversion between them.
It pairs an arbitrary-precision [Decimal] with a [Currency] whose minor unit
fixes the number of digits after the decimal point.

# Features

  - Immutable values, safe for concurrent use by multiple goroutines
  - Arbitrary-precision coefficients with up to [MaxScale] digits after the
    decimal point
  - ISO 4217 currencies with their minor units, plus custom minor units
  - Arithmetic and comparisons that refuse to mix currencies
  - Explicit rounding: nothing is rounded unless a [RoundingMode] says so
  - Conversion through a pluggable [RateSource] that compensates for
    differing minor units

# Representation

An [Amount] consists of a [Currency] and a [Decimal] value whose scale always
equals the minor unit of the currency: "USD 23.00" has a scale of 2,
"JPY 150" has a scale of 0 and "OMR 1.000" has a scale of 3.

A [Currency] is a code together with a minor unit. [ParseCurr] takes the minor
unit from a static ISO 4217 table, [CustomCurr] overrides it. Two currencies
are equal only if both their codes and minor units are equal.

A [Decimal] is an integer coefficient and a scale. It keeps trailing zeros,
so "1.50" and "1.5" are equal numbers with different scales.

# Operations

[Amount.Add] and [Amount.Sub] accept an [Operand]: either an [Amount] in the
same currency or a bare [Decimal], which is treated as a value in the currency
of the receiver. [Amount.Mul] and [Amount.Quo] use only the numeric value of
their operand and round the result to the minor unit of the currency.

# Rounding

Every operation that may discard digits takes a [RoundingMode].
The zero value, [RoundUnnecessary], only allows exact results and returns
[ErrRoundingRequired] otherwise.

# Conversion

A [Converter] quotes a ratio from its [RateSource], divides it by
10^(base minor unit - counter minor unit) and multiplies the amount by the
adjusted ratio. Failures of the rate source are reported as an [*ExchangeError]
that names the currency pair only. [RateTable] is a ready-made in-memory
rate source.

# Errors

Errors of parsing, arithmetic and conversion wrap one of the exported
sentinels, such as [ErrCurrencyMismatch] or [ErrRoundingRequired], and can be
matched with [errors.Is].
Functions with the Must prefix panic instead of returning an error and are
meant for initialization of global variables.
*/
package money
