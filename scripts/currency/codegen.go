package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"text/template"
)

type currency struct {
	Name  string
	Code  string
	Num   string
	Scale string
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %v", err))
	}

	// Convert the CSV records to a list of currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %v", err))
	}

	// Generate Go code from the Currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %v", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %v", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// Sort the CSV records by alphabetic code
	sort.Slice(data, func(i, j int) bool {
		return data[i][1] < data[j][1]
	})

	// Convert the CSV records to currency objects
	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, 2*len(data))
	for _, rec := range data {
		if len(rec) != 4 {
			return nil, fmt.Errorf("record %v: want 4 fields, got %v", rec, len(rec))
		}
		curr := currency{
			Name:  rec[0],
			Code:  rec[1],
			Num:   rec[2],
			Scale: rec[3],
		}
		if seen[curr.Code] || seen[curr.Num] {
			return nil, fmt.Errorf("record %v: duplicate code", rec)
		}
		seen[curr.Code], seen[curr.Num] = true, true
		if _, err := strconv.Atoi(curr.Scale); err != nil {
			return nil, fmt.Errorf("record %v: minor unit: %w", rec, err)
		}
		currs = append(currs, curr)
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	tmpl, err := template.New(filepath.Base(filename)).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	err = writer.Flush()
	if err != nil {
		return err
	}
	return nil
}
