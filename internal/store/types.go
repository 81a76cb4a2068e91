// Package store loads and writes the flat CSV files holding simulated
// account state and the trade ledger.
package store

import "fmt"

// AccountSummary is one row of the account-summary file. Change and
// PercentageChange are derived from InitialAmount/CurrentAmount and are
// always recomputed together, never updated independently.
type AccountSummary struct {
	Name             string
	InitialAmount    float64
	CurrentAmount    float64
	Change           float64
	PercentageChange float64
}

// TradeRecord is one row of the trade-ledger file: an append-only entry
// that is immutable once written.
type TradeRecord struct {
	Name        string
	Transaction float64
	NewBalance  float64
}

// LedgerEntry is a TradeRecord plus the per-trade percentage change
// (transaction relative to the account's initial amount) the simulator
// writes as a fourth column. The dashboard reads only the first three.
type LedgerEntry struct {
	TradeRecord
	PctOfInitial float64
}

// ErrUnknownAccount reports a trade against an account that does not exist.
type ErrUnknownAccount struct {
	Name string
}

func (e *ErrUnknownAccount) Error() string {
	return fmt.Sprintf("account %s not found", e.Name)
}

// Book is the in-memory account set plus the trade ledger built by the
// offline simulator.
type Book struct {
	Accounts []AccountSummary
	Ledger   []LedgerEntry
}

// NewBook creates a Book with the given starting accounts. Each account's
// current amount is set to its initial amount with zero change.
func NewBook(accounts []AccountSummary) *Book {
	for i := range accounts {
		accounts[i].CurrentAmount = accounts[i].InitialAmount
		accounts[i].Change = 0
		accounts[i].PercentageChange = 0
	}
	return &Book{Accounts: accounts}
}

// ApplyTrade applies a signed trade amount to the named account: it updates
// the current amount, recomputes change and percentage change together, and
// appends a ledger entry. Returns ErrUnknownAccount if the name does not
// resolve; the book is left unmodified in that case.
func (b *Book) ApplyTrade(name string, amount float64) (LedgerEntry, error) {
	for i := range b.Accounts {
		acc := &b.Accounts[i]
		if acc.Name != name {
			continue
		}
		acc.CurrentAmount += amount
		acc.Change = acc.CurrentAmount - acc.InitialAmount
		acc.PercentageChange = acc.Change / acc.InitialAmount * 100

		entry := LedgerEntry{
			TradeRecord: TradeRecord{
				Name:        name,
				Transaction: amount,
				NewBalance:  acc.CurrentAmount,
			},
			PctOfInitial: amount / acc.InitialAmount * 100,
		}
		b.Ledger = append(b.Ledger, entry)
		return entry, nil
	}
	return LedgerEntry{}, &ErrUnknownAccount{Name: name}
}
