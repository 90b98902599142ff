package money_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/decimalfx/money"
)

type LineItem struct {
	Price    money.Amount
	Quantity int64
}

// InvoiceTotal returns the net total, the tax and the gross total of the items.
// Tax is rounded half-even to the minor unit of the currency.
func InvoiceTotal(curr money.Currency, items []LineItem, taxRate money.Decimal) (net, tax, gross money.Amount, err error) {
	net = money.ZeroAmount(curr)
	for _, item := range items {
		line, err := item.Price.Mul(money.NewDecimalFromInt64(item.Quantity), money.RoundUnnecessary)
		if err != nil {
			return net, tax, gross, err
		}
		net, err = net.Add(line)
		if err != nil {
			return net, tax, gross, err
		}
	}
	tax, err = net.Mul(taxRate, money.RoundHalfEven)
	if err != nil {
		return net, tax, gross, err
	}
	gross, err = net.Add(tax)
	return net, tax, gross, err
}

func Example_invoiceTotal() {
	usd := money.MustParseCurr("USD")
	items := []LineItem{
		{Price: money.MustParseAmount("USD", "11.50"), Quantity: 2},
		{Price: money.MustParseAmount("USD", "0.99"), Quantity: 3},
	}
	net, tax, gross, err := InvoiceTotal(usd, items, money.MustParseDecimal("0.20"))
	if err != nil {
		panic(err)
	}
	fmt.Println("Net:  ", net)
	fmt.Println("Tax:  ", tax)
	fmt.Println("Gross:", gross)
	// Output:
	// Net:   USD 25.97
	// Tax:   USD 5.19
	// Gross: USD 31.16
}

func ExampleNewAmount() {
	usd := money.MustParseCurr("USD")
	d := money.MustParseDecimal("1.005")
	fmt.Println(money.NewAmount(usd, d, money.RoundHalfEven))
	fmt.Println(money.NewAmount(usd, d, money.RoundHalfUp))
	fmt.Println(money.NewAmount(usd, d, money.RoundUnnecessary))
	// Output:
	// USD 1.00 <nil>
	// USD 1.01 <nil>
	// XXX 0 converting 1.005 to USD: rounding necessary
}

func ExampleNewAmountFromMinorUnits() {
	jpy := money.MustParseCurr("JPY")
	usd := money.MustParseCurr("USD")
	omr := money.MustParseCurr("OMR")
	fmt.Println(money.NewAmountFromMinorUnits(jpy, 12345))
	fmt.Println(money.NewAmountFromMinorUnits(usd, 12345))
	fmt.Println(money.NewAmountFromMinorUnits(omr, 12345))
	// Output:
	// JPY 12345
	// USD 123.45
	// OMR 12.345
}

func ExampleParseAmount() {
	fmt.Println(money.ParseAmount("USD", "11.5"))
	fmt.Println(money.ParseAmount("JPY", "11.5"))
	// Output:
	// USD 11.50 <nil>
	// XXX 0 converting 11.5 to JPY: rounding necessary
}

func ExampleZeroAmount() {
	fmt.Println(money.ZeroAmount(money.MustParseCurr("OMR")))
	fmt.Println(money.Amount{})
	// Output:
	// OMR 0.000
	// XXX 0
}

func ExampleAmount_MinorUnits() {
	a := money.MustParseAmount("USD", "123.45")
	fmt.Println(a.MinorUnits())
	// Output:
	// 12345
}

func ExampleAmount_Add() {
	a := money.MustParseAmount("USD", "12.30")
	b := money.MustParseAmount("USD", "5.50")
	fmt.Println(a.Add(b))
	fmt.Println(a.Add(money.MustParseDecimal("0.7")))
	fmt.Println(a.Add(money.MustParseAmount("EUR", "1")))
	// Output:
	// USD 17.80 <nil>
	// USD 13.00 <nil>
	// XXX 0 computing [USD 12.30 + EUR 1.00]: currency mismatch
}

func ExampleAmount_Sub() {
	a := money.MustParseAmount("USD", "36")
	b := money.MustParseAmount("USD", "35.99")
	fmt.Println(a.Sub(b))
	// Output:
	// USD 0.01 <nil>
}

func ExampleAmount_Mul() {
	a := money.MustParseAmount("USD", "11.50")
	fmt.Println(a.Mul(money.MustParseDecimal("2"), money.RoundUnnecessary))
	fmt.Println(a.Mul(money.MustParseDecimal("0.125"), money.RoundHalfEven))
	// Output:
	// USD 23.00 <nil>
	// USD 1.44 <nil>
}

func ExampleAmount_Quo() {
	a := money.MustParseAmount("USD", "10")
	fmt.Println(a.Quo(money.MustParseDecimal("3"), money.RoundHalfUp))
	fmt.Println(a.Quo(money.MustParseDecimal("3"), money.RoundCeiling))
	fmt.Println(a.Quo(money.MustParseDecimal("0"), money.RoundHalfUp))
	// Output:
	// USD 3.33 <nil>
	// USD 3.34 <nil>
	// XXX 0 computing [USD 10.00 / 0]: division by zero
}

func ExampleAmount_Cmp() {
	a := money.MustParseAmount("USD", "10")
	fmt.Println(a.Cmp(money.MustParseAmount("USD", "9.99")))
	fmt.Println(a.Cmp(money.MustParseDecimal("10.00")))
	fmt.Println(a.Cmp(money.MustParseAmount("EUR", "10")))
	// Output:
	// 1 <nil>
	// 0 <nil>
	// 0 comparing [USD 10.00] and [EUR 10.00]: currency mismatch
}

func ExampleAmount_Format() {
	a := money.MustParseAmount("USD", "5.67")
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%f\n", a)
	fmt.Printf("%c\n", a)
	fmt.Printf("[%10v]\n", a)
	// Output:
	// USD 5.67
	// "USD 5.67"
	// 5.67
	// USD
	// [  USD 5.67]
}

func ExampleAmount_MarshalJSON() {
	usd3, err := money.CustomCurr("USD", 3)
	if err != nil {
		panic(err)
	}
	a := money.MustParseAmount("USD", "23")
	b := money.NewAmountFromMinorUnits(usd3, 23000)
	for _, v := range []money.Amount{a, b} {
		text, err := json.Marshal(v)
		if err != nil {
			panic(err)
		}
		fmt.Println(string(text))
	}
	// Output:
	// {"amount":"23.00","currency":"USD"}
	// {"amount":"23.000","currency":"USD","minorUnit":3}
}

func ExampleAmount_UnmarshalJSON() {
	var a money.Amount
	err := json.Unmarshal([]byte(`{"amount":"1.500","currency":"USD","minorUnit":3}`), &a)
	fmt.Println(a, a.Scale(), err)
	// Output:
	// USD 1.500 3 <nil>
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("usd"))
	fmt.Println(money.ParseCurr("392"))
	fmt.Println(money.ParseCurr("BTC"))
	// Output:
	// USD <nil>
	// JPY <nil>
	// XXX looking up "BTC": unknown currency
}

func ExampleCustomCurr() {
	btc, err := money.CustomCurr("btc", 8)
	if err != nil {
		panic(err)
	}
	fmt.Println(btc, btc.Scale(), btc.IsDefault())
	fmt.Println(money.NewAmountFromMinorUnits(btc, 1))
	// Output:
	// BTC 8 false
	// BTC 0.00000001
}

func ExampleCurrency_Scale() {
	for _, code := range []string{"JPY", "USD", "OMR", "CLF"} {
		c := money.MustParseCurr(code)
		fmt.Println(c, c.Scale())
	}
	// Output:
	// JPY 0
	// USD 2
	// OMR 3
	// CLF 4
}

func ExampleMinorUnitFor() {
	fmt.Println(money.MinorUnitFor("KWD"))
	// Output:
	// 3 <nil>
}

func ExampleParseDecimal() {
	d := money.MustParseDecimal("1.50")
	fmt.Println(d, d.Scale())
	fmt.Println(money.ParseDecimal("1.83e5"))
	// Output:
	// 1.50 2
	// 183000 <nil>
}

func ExampleNewDecimalFromRat() {
	fmt.Println(money.NewDecimalFromRat(big.NewRat(3, 8)))
	_, err := money.NewDecimalFromRat(big.NewRat(1, 3))
	fmt.Println(errors.Is(err, money.ErrRoundingRequired))
	// Output:
	// 0.375 <nil>
	// true
}

func ExampleDecimal_Quo() {
	d := money.MustParseDecimal("2")
	e := money.MustParseDecimal("3")
	fmt.Println(d.Quo(e, 4, money.RoundHalfEven))
	fmt.Println(d.Quo(e, 4, money.RoundDown))
	// Output:
	// 0.6667 <nil>
	// 0.6666 <nil>
}

func ExampleDecimal_Rescale() {
	d := money.MustParseDecimal("2.345")
	fmt.Println(d.Rescale(2, money.RoundHalfEven))
	fmt.Println(d.Rescale(5, money.RoundUnnecessary))
	// Output:
	// 2.34 <nil>
	// 2.34500 <nil>
}

func ExampleParseRoundingMode() {
	fmt.Println(money.ParseRoundingMode("Half-Even"))
	fmt.Println(money.ParseRoundingMode("truncate"))
	// Output:
	// half-even <nil>
	// down <nil>
}

func ExampleParseExchRate() {
	r, err := money.ParseExchRate("USD", "JPY", "150")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)
	fmt.Println(r.Inv(6, money.RoundHalfEven))
	// Output:
	// USD/JPY 150
	// JPY/USD 0.006667 <nil>
}

func ExampleConverter_Convert() {
	rates, err := money.NewRateTable(
		money.MustParseExchRate("USD", "JPY", "150"),
		money.MustParseExchRate("EUR", "USD", "1.1111"),
	)
	if err != nil {
		panic(err)
	}
	conv := money.NewConverter(rates)
	ctx := context.Background()

	fmt.Println(conv.Convert(ctx, money.MustParseAmount("USD", "100.00"), money.MustParseCurr("JPY"), money.RoundHalfEven))
	fmt.Println(conv.Convert(ctx, money.MustParseAmount("EUR", "10.00"), money.MustParseCurr("USD"), money.RoundHalfUp))
	fmt.Println(conv.Convert(ctx, money.MustParseAmount("JPY", "150"), money.MustParseCurr("USD"), money.RoundHalfUp))
	// Output:
	// JPY 150 <nil>
	// USD 11.11 <nil>
	// XXX 0 cannot exchange a currency pair: JPY/USD
}

func ExampleRateSourceFunc() {
	fixedRate := money.RateSourceFunc(func(_ context.Context, base, counter money.Currency) (money.Decimal, error) {
		if base.Code() == "EUR" && counter.Code() == "GBP" {
			return money.MustParseDecimal("0.85"), nil
		}
		return money.Decimal{}, errors.New("pair not supported")
	})
	conv := money.NewConverter(fixedRate)
	fmt.Println(conv.Convert(context.Background(), money.MustParseAmount("EUR", "20"), money.MustParseCurr("GBP"), money.RoundUnnecessary))
	// Output:
	// GBP 17.00 <nil>
}
