// tickerlab-sim seeds a set of simulated accounts, applies a fixed trade
// sequence, and writes the account-summary and trade-ledger CSV files the
// dashboard reads. It is run offline, once; the dashboard never writes
// these files.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"tickerlab/internal/config"
	"tickerlab/internal/store"
	"tickerlab/internal/util"
)

func main() {
	configPath := flag.String("config", "tickerlab.yaml", "path to the YAML config file")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}
	logger := util.NewLogger(cfg.Logging.Level)

	book := store.NewBook([]store.AccountSummary{
		{Name: "Alice", InitialAmount: 10.0},
		{Name: "Bob", InitialAmount: 20.0},
	})

	trades := []struct {
		name   string
		amount float64
	}{
		{"Alice", 5.0}, // 10 -> 15
		{"Bob", -3.0},  // 20 -> 17
		{"Alice", 2.0}, // 15 -> 17
	}
	for _, t := range trades {
		if _, err := book.ApplyTrade(t.name, t.amount); err != nil {
			// A trade against a missing account is a console notice, never fatal.
			fmt.Printf("Account %s not found.\n", t.name)
		}
	}

	if err := store.WriteAccounts(cfg.Storage.AccountFile, book.Accounts); err != nil {
		logger.Error("writing account summary", "path", cfg.Storage.AccountFile, "error", err)
		os.Exit(1)
	}
	if err := store.WriteLedger(cfg.Storage.TradesFile, book.Ledger); err != nil {
		logger.Error("writing trade ledger", "path", cfg.Storage.TradesFile, "error", err)
		os.Exit(1)
	}

	logger.Info("CSV files written",
		"accounts", cfg.Storage.AccountFile,
		"ledger", cfg.Storage.TradesFile,
		"trades", len(book.Ledger))
}
