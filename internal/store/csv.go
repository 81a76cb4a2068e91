package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// LoadAccounts reads the account-summary CSV at path. The file must have a
// header row; every data row must decode into the full five-field record.
// Callers decide how to degrade: the dashboard warns once at startup and
// continues with an empty set.
func LoadAccounts(path string) ([]AccountSummary, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	accounts := make([]AccountSummary, 0, len(rows))
	for i, row := range rows {
		if len(row) < 5 {
			return nil, fmt.Errorf("%s row %d: expected 5 fields, got %d", path, i+2, len(row))
		}
		var acc AccountSummary
		acc.Name = row[0]
		vals := [4]*float64{&acc.InitialAmount, &acc.CurrentAmount, &acc.Change, &acc.PercentageChange}
		for j, dst := range vals {
			v, err := strconv.ParseFloat(row[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d field %d: %w", path, i+2, j+2, err)
			}
			*dst = v
		}
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// LoadTrades reads the trade-ledger CSV at path. Rows may carry trailing
// extra columns (the simulator writes a per-trade percentage as a fourth
// column); only the first three are decoded. The per-tick caller treats
// any error as an empty ledger.
func LoadTrades(path string) ([]TradeRecord, error) {
	rows, err := readRows(path)
	if err != nil {
		return nil, err
	}

	trades := make([]TradeRecord, 0, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%s row %d: expected at least 3 fields, got %d", path, i+2, len(row))
		}
		tx, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d transaction: %w", path, i+2, err)
		}
		bal, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d new_balance: %w", path, i+2, err)
		}
		trades = append(trades, TradeRecord{Name: row[0], Transaction: tx, NewBalance: bal})
	}
	return trades, nil
}

// readRows opens a CSV file and returns its data rows, skipping the header.
func readRows(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening CSV %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV %s: %w", path, err)
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

// WriteAccounts writes the account-summary CSV with a header row.
func WriteAccounts(path string, accounts []AccountSummary) error {
	rows := make([][]string, 0, len(accounts)+1)
	rows = append(rows, []string{"name", "initial_amount", "current_amount", "change", "percentage_change"})
	for _, acc := range accounts {
		rows = append(rows, []string{
			acc.Name,
			formatFloat(acc.InitialAmount),
			formatFloat(acc.CurrentAmount),
			formatFloat(acc.Change),
			formatFloat(acc.PercentageChange),
		})
	}
	return writeRows(path, rows)
}

// WriteLedger writes the trade-ledger CSV with a header row. The fourth
// column carries the per-trade percentage change against the account's
// initial amount.
func WriteLedger(path string, ledger []LedgerEntry) error {
	rows := make([][]string, 0, len(ledger)+1)
	rows = append(rows, []string{"name", "transaction", "new_balance", "percentage_change"})
	for _, e := range ledger {
		rows = append(rows, []string{
			e.Name,
			formatFloat(e.Transaction),
			formatFloat(e.NewBalance),
			formatFloat(e.PctOfInitial),
		})
	}
	return writeRows(path, rows)
}

func writeRows(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating CSV %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing CSV %s: %w", path, err)
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
