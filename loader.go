package cashflow

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/cashflow/date"
	"github.com/shopspring/decimal"
)

// requiredColumns are the canonical lower-case column names every input file
// must carry, in the order they are reported when missing.
var requiredColumns = []string{"date", "description", "amount", "category"}

// LoadCSV parses the transactions CSV from r into a validated Ledger.
//
// The header row is matched case-insensitively against the required columns
// {date, description, amount, category}; extra columns are ignored. If any
// required column is absent the load fails with a *SchemaError naming the
// missing set. A date or amount cell that cannot be parsed fails the whole
// load with a *ParseError; there is no row-level recovery. Row order is
// preserved from the input.
func LoadCSV(r io.Reader, currency string) (*Ledger, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		// No header at all: every required column is missing.
		return nil, &SchemaError{Missing: requiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read csv header: %w", err)
	}

	// Map canonical lower-case names to column indexes, once, before any row
	// is processed. Duplicate headers resolve to their first occurrence.
	index := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := index[name]; !ok {
			index[name] = i
		}
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	ledger := &Ledger{currency: currency}
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: cannot read csv record: %w", line, err)
		}

		rawDate := record[index["date"]]
		day, err := date.Parse(strings.TrimSpace(rawDate))
		if err != nil {
			return nil, &ParseError{Line: line, Column: "date", Value: rawDate, Err: err}
		}

		rawAmount := record[index["amount"]]
		amount, err := decimal.NewFromString(strings.TrimSpace(rawAmount))
		if err != nil {
			return nil, &ParseError{Line: line, Column: "amount", Value: rawAmount, Err: err}
		}

		ledger.transactions = append(ledger.transactions, Transaction{
			Date:        day,
			Description: record[index["description"]],
			Amount:      M(amount, currency),
			Category:    record[index["category"]],
		})
	}
	return ledger, nil
}

// LoadCSVFile opens path and loads it with LoadCSV.
func LoadCSVFile(path, currency string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open transactions file: %w", err)
	}
	defer f.Close()

	ledger, err := LoadCSV(f, currency)
	if err != nil {
		return nil, fmt.Errorf("cannot load %q: %w", path, err)
	}
	return ledger, nil
}
