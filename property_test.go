package money

import (
	"context"
	"encoding/json"
	"testing"

	"pgregory.net/rapid"
)

var propCurrs = []string{"JPY", "USD", "EUR", "OMR", "CLF"}

func drawDecimal(t *rapid.T, label string) Decimal {
	coef := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, label+".coef")
	scale := rapid.IntRange(0, 8).Draw(t, label+".scale")
	d, err := NewDecimal(coef, scale)
	if err != nil {
		t.Fatalf("NewDecimal(%v, %v) failed: %v", coef, scale, err)
	}
	return d
}

func drawCurr(t *rapid.T) Currency {
	return MustParseCurr(rapid.SampledFrom(propCurrs).Draw(t, "curr"))
}

func drawAmount(t *rapid.T, c Currency, label string) Amount {
	units := rapid.Int64Range(-1_000_000_000_000, 1_000_000_000_000).Draw(t, label)
	return NewAmountFromMinorUnits(c, units)
}

func drawMode(t *rapid.T) RoundingMode {
	return rapid.SampledFrom([]RoundingMode{
		RoundUp, RoundDown, RoundCeiling, RoundFloor, RoundHalfUp, RoundHalfDown, RoundHalfEven,
	}).Draw(t, "mode")
}

func TestProperty_DecimalRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := drawDecimal(t, "d")
		got, err := ParseDecimal(d.String())
		if err != nil {
			t.Fatalf("ParseDecimal(%q) failed: %v", d, err)
		}
		if !got.Equal(d) || got.Scale() != d.Scale() {
			t.Fatalf("ParseDecimal(%q) = %v with scale %v, want scale %v", d, got, got.Scale(), d.Scale())
		}
	})
}

func TestProperty_AmountJSONRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawAmount(t, drawCurr(t), "a")
		text, err := json.Marshal(a)
		if err != nil {
			t.Fatalf("json.Marshal(%q) failed: %v", a, err)
		}
		var got Amount
		if err := json.Unmarshal(text, &got); err != nil {
			t.Fatalf("json.Unmarshal(%s) failed: %v", text, err)
		}
		if !got.Equal(a) || got.String() != a.String() {
			t.Fatalf("json.Unmarshal(%s) = %q, want %q", text, got, a)
		}
	})
}

func TestProperty_ScaleInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawCurr(t)
		d := drawDecimal(t, "d")
		mode := drawMode(t)
		a, err := NewAmount(c, d, mode)
		if err != nil {
			t.Fatalf("NewAmount(%v, %v, %v) failed: %v", c, d, mode, err)
		}
		if a.Decimal().Scale() != c.Scale() {
			t.Fatalf("NewAmount(%v, %v, %v) = %q, scale %v, want %v", c, d, mode, a, a.Decimal().Scale(), c.Scale())
		}

		e := drawDecimal(t, "e")
		b := drawAmount(t, c, "b")
		for _, op := range []func() (Amount, error){
			func() (Amount, error) { return a.Add(b) },
			func() (Amount, error) { return a.Sub(b) },
			func() (Amount, error) { return a.Abs(), nil },
			func() (Amount, error) { return a.Neg(), nil },
			func() (Amount, error) { return a.Mul(e, mode) },
			func() (Amount, error) {
				if e.IsZero() {
					return a, nil
				}
				return a.Quo(e, mode)
			},
		} {
			got, err := op()
			if err != nil {
				t.Fatalf("operation on %q with %v failed: %v", a, e, err)
			}
			if got.Decimal().Scale() != c.Scale() {
				t.Fatalf("operation on %q with %v = %q, want scale %v", a, e, got, c.Scale())
			}
		}

		counter := MustParseCurr(rapid.SampledFrom(propCurrs).Draw(t, "counter"))
		coef := rapid.Int64Range(1, 1_000_000_000_000).Draw(t, "ratio.coef")
		scale := rapid.IntRange(0, 8).Draw(t, "ratio.scale")
		ratio, err := NewDecimal(coef, scale)
		if err != nil {
			t.Fatalf("NewDecimal(%v, %v) failed: %v", coef, scale, err)
		}
		conv := NewConverter(RateSourceFunc(func(context.Context, Currency, Currency) (Decimal, error) {
			return ratio, nil
		}))
		got, err := conv.Convert(context.Background(), a, counter, mode)
		if err != nil {
			t.Fatalf("Convert(%q, %v, %v) at %v failed: %v", a, counter, mode, ratio, err)
		}
		if got.Curr() != counter || got.Decimal().Scale() != counter.Scale() {
			t.Fatalf("Convert(%q, %v, %v) at %v = %q, want scale %v", a, counter, mode, ratio, got, counter.Scale())
		}
	})
}

func TestProperty_AddCommutativeAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawCurr(t)
		a, b, x := drawAmount(t, c, "a"), drawAmount(t, c, "b"), drawAmount(t, c, "c")

		ab, err := a.Add(b)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", a, b, err)
		}
		ba, err := b.Add(a)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", b, a, err)
		}
		if !ab.Equal(ba) {
			t.Fatalf("%q + %q = %q, but %q + %q = %q", a, b, ab, b, a, ba)
		}

		left, err := ab.Add(x)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", ab, x, err)
		}
		bx, err := b.Add(x)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", b, x, err)
		}
		right, err := a.Add(bx)
		if err != nil {
			t.Fatalf("%q.Add(%q) failed: %v", a, bx, err)
		}
		if !left.Equal(right) {
			t.Fatalf("(%q + %q) + %q = %q, but %q + (%q + %q) = %q", a, b, x, left, a, b, x, right)
		}
	})
}

func TestProperty_Identities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawCurr(t)
		a := drawAmount(t, c, "a")

		sum, err := a.Add(ZeroAmount(c))
		if err != nil || !sum.Equal(a) {
			t.Fatalf("%q + 0 = %q, %v, want %q", a, sum, err, a)
		}
		diff, err := a.Sub(a)
		if err != nil || !diff.IsZero() || !diff.SameCurr(a) {
			t.Fatalf("%q - %q = %q, %v, want zero", a, a, diff, err)
		}
		prod, err := a.Mul(NewDecimalFromInt64(1), RoundUnnecessary)
		if err != nil || !prod.Equal(a) {
			t.Fatalf("%q * 1 = %q, %v, want %q", a, prod, err, a)
		}
		twice, err := a.Mul(NewDecimalFromInt64(2), RoundUnnecessary)
		if err != nil {
			t.Fatalf("%q * 2 failed: %v", a, err)
		}
		half, err := twice.Quo(NewDecimalFromInt64(2), RoundUnnecessary)
		if err != nil || !half.Equal(a) {
			t.Fatalf("%q * 2 / 2 = %q, %v, want %q", a, half, err, a)
		}
	})
}

func TestProperty_DirectedRounding(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawCurr(t)
		d := drawDecimal(t, "d")

		down, err := NewAmount(c, d, RoundDown)
		if err != nil {
			t.Fatalf("NewAmount(%v, %v, down) failed: %v", c, d, err)
		}
		if down.Decimal().Abs().Greater(d.Abs()) {
			t.Fatalf("NewAmount(%v, %v, down) = %q, magnitude grew", c, d, down)
		}
		up, err := NewAmount(c, d, RoundUp)
		if err != nil {
			t.Fatalf("NewAmount(%v, %v, up) failed: %v", c, d, err)
		}
		if up.Decimal().Abs().Less(d.Abs()) {
			t.Fatalf("NewAmount(%v, %v, up) = %q, magnitude shrank", c, d, up)
		}
		floor, _ := NewAmount(c, d, RoundFloor)
		ceil, _ := NewAmount(c, d, RoundCeiling)
		if floor.Decimal().Greater(d) || ceil.Decimal().Less(d) {
			t.Fatalf("floor %q and ceiling %q do not bracket %v", floor, ceil, d)
		}
	})
}

func TestProperty_ConvertSameCurrency(t *testing.T) {
	table, err := NewRateTable()
	if err != nil {
		t.Fatalf("NewRateTable() failed: %v", err)
	}
	conv := NewConverter(table)
	rapid.Check(t, func(t *rapid.T) {
		c := drawCurr(t)
		a := drawAmount(t, c, "a")
		got, err := conv.Convert(context.Background(), a, c, RoundUnnecessary)
		if err != nil {
			t.Fatalf("Convert(%q, %v) failed: %v", a, c, err)
		}
		if !got.Equal(a) {
			t.Fatalf("Convert(%q, %v) = %q, want %q", a, c, got, a)
		}
	})
}
