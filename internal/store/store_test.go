package store

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

const tolerance = 1e-9

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadAccounts(t *testing.T) {
	path := writeFile(t, t.TempDir(), "account_summary.csv",
		"name,initial_amount,current_amount,change,percentage_change\n"+
			"Alice,10,15,5,50\n"+
			"Bob,20,17,-3,-15\n")

	accounts, err := LoadAccounts(path)
	if err != nil {
		t.Fatalf("LoadAccounts returned error: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("got %d accounts, want 2", len(accounts))
	}

	for _, acc := range accounts {
		wantChange := acc.CurrentAmount - acc.InitialAmount
		if math.Abs(acc.Change-wantChange) > tolerance {
			t.Errorf("%s: Change = %v, want %v", acc.Name, acc.Change, wantChange)
		}
		wantPct := wantChange / acc.InitialAmount * 100
		if math.Abs(acc.PercentageChange-wantPct) > tolerance {
			t.Errorf("%s: PercentageChange = %v, want %v", acc.Name, acc.PercentageChange, wantPct)
		}
	}
	if accounts[0].Name != "Alice" || accounts[1].Name != "Bob" {
		t.Errorf("unexpected names: %q, %q", accounts[0].Name, accounts[1].Name)
	}
}

func TestLoadAccountsMalformedRow(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{"short row", "name,initial_amount,current_amount,change,percentage_change\nAlice,10,15\n"},
		{"bad number", "name,initial_amount,current_amount,change,percentage_change\nAlice,ten,15,5,50\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, "bad-"+tt.name+".csv", tt.content)
			if _, err := LoadAccounts(path); err == nil {
				t.Error("LoadAccounts accepted a malformed row")
			}
		})
	}
}

func TestLoadAccountsMissingFile(t *testing.T) {
	if _, err := LoadAccounts(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("LoadAccounts returned nil error for missing file")
	}
}

func TestLoadTradesToleratesExtraColumns(t *testing.T) {
	path := writeFile(t, t.TempDir(), "trading_history.csv",
		"name,transaction,new_balance,percentage_change\n"+
			"Alice,5,15,50\n"+
			"Bob,-3,17,-15\n")

	trades, err := LoadTrades(path)
	if err != nil {
		t.Fatalf("LoadTrades returned error: %v", err)
	}
	if len(trades) != 2 {
		t.Fatalf("got %d trades, want 2", len(trades))
	}
	if trades[0].Name != "Alice" || trades[0].Transaction != 5 || trades[0].NewBalance != 15 {
		t.Errorf("unexpected first trade: %+v", trades[0])
	}
	if trades[1].Transaction != -3 {
		t.Errorf("Transaction = %v, want -3", trades[1].Transaction)
	}
}

func TestLoadTradesMissingFile(t *testing.T) {
	if _, err := LoadTrades(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("LoadTrades returned nil error for missing file")
	}
}

func TestApplyTrade(t *testing.T) {
	book := NewBook([]AccountSummary{
		{Name: "Alice", InitialAmount: 10},
	})

	entry, err := book.ApplyTrade("Alice", 5)
	if err != nil {
		t.Fatalf("ApplyTrade returned error: %v", err)
	}

	acc := book.Accounts[0]
	if acc.InitialAmount != 10 || acc.CurrentAmount != 15 {
		t.Errorf("amounts = {%v, %v}, want {10, 15}", acc.InitialAmount, acc.CurrentAmount)
	}
	if math.Abs(acc.Change-5) > tolerance {
		t.Errorf("Change = %v, want 5", acc.Change)
	}
	if math.Abs(acc.PercentageChange-50) > tolerance {
		t.Errorf("PercentageChange = %v, want 50", acc.PercentageChange)
	}

	if entry.Name != "Alice" || entry.Transaction != 5 || entry.NewBalance != 15 {
		t.Errorf("ledger entry = %+v, want {Alice 5 15}", entry.TradeRecord)
	}
	if len(book.Ledger) != 1 {
		t.Fatalf("ledger has %d entries, want 1", len(book.Ledger))
	}
}

func TestApplyTradeUnknownAccount(t *testing.T) {
	book := NewBook([]AccountSummary{{Name: "Alice", InitialAmount: 10}})

	if _, err := book.ApplyTrade("Mallory", 5); err == nil {
		t.Fatal("ApplyTrade accepted an unknown account")
	}
	if len(book.Ledger) != 0 {
		t.Errorf("ledger has %d entries after failed trade, want 0", len(book.Ledger))
	}
	if book.Accounts[0].CurrentAmount != 10 {
		t.Errorf("account mutated by failed trade: %+v", book.Accounts[0])
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	book := NewBook([]AccountSummary{
		{Name: "Alice", InitialAmount: 10},
		{Name: "Bob", InitialAmount: 20},
	})
	for _, trade := range []struct {
		name   string
		amount float64
	}{
		{"Alice", 5}, {"Bob", -3}, {"Alice", 2},
	} {
		if _, err := book.ApplyTrade(trade.name, trade.amount); err != nil {
			t.Fatalf("ApplyTrade(%s, %v): %v", trade.name, trade.amount, err)
		}
	}

	accPath := filepath.Join(dir, "account_summary.csv")
	ledgerPath := filepath.Join(dir, "trading_history.csv")
	if err := WriteAccounts(accPath, book.Accounts); err != nil {
		t.Fatalf("WriteAccounts: %v", err)
	}
	if err := WriteLedger(ledgerPath, book.Ledger); err != nil {
		t.Fatalf("WriteLedger: %v", err)
	}

	accounts, err := LoadAccounts(accPath)
	if err != nil {
		t.Fatalf("LoadAccounts: %v", err)
	}
	if accounts[0].CurrentAmount != 17 || accounts[1].CurrentAmount != 17 {
		t.Errorf("current amounts = {%v, %v}, want {17, 17}",
			accounts[0].CurrentAmount, accounts[1].CurrentAmount)
	}
	if math.Abs(accounts[0].PercentageChange-70) > tolerance {
		t.Errorf("Alice PercentageChange = %v, want 70", accounts[0].PercentageChange)
	}

	trades, err := LoadTrades(ledgerPath)
	if err != nil {
		t.Fatalf("LoadTrades: %v", err)
	}
	if len(trades) != 3 {
		t.Fatalf("got %d trades, want 3", len(trades))
	}
	if trades[0] != (TradeRecord{Name: "Alice", Transaction: 5, NewBalance: 15}) {
		t.Errorf("first trade = %+v, want {Alice 5 15}", trades[0])
	}
}
