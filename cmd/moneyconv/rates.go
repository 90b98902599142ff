package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decimalfx/money"
)

// readRates parses exchange rates from CSV records of the form
//
//	base,counter,rate
//
// An optional header row and lines starting with '#' are skipped.
func readRates(r io.Reader) (*money.RateTable, error) {
	cr := csv.NewReader(r)
	cr.Comment = '#'
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	var rates []money.ExchangeRate
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading rates: %w", err)
		}
		if len(rates) == 0 && strings.EqualFold(rec[0], "base") {
			continue
		}
		line, _ := cr.FieldPos(0)
		rate, err := money.ParseExchRate(rec[0], rec[1], strings.TrimSpace(rec[2]))
		if err != nil {
			return nil, fmt.Errorf("reading rates: line %d: %w", line, err)
		}
		rates = append(rates, rate)
	}
	return money.NewRateTable(rates...)
}

func loadRates(path string) (*money.RateTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readRates(f)
}
