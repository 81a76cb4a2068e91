package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"tickerlab/internal/config"
	"tickerlab/internal/script"
	"tickerlab/internal/store"
	"tickerlab/internal/ui"
	"tickerlab/internal/util"
)

func main() {
	configPath := flag.String("config", "tickerlab.yaml", "path to the YAML config file")
	flag.Parse()

	// Best-effort .env for local development.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	// The UI owns stdout, so diagnostics go to a log file.
	logPath := cfg.Logging.File
	if logPath == "" {
		logPath = fmt.Sprintf("/tmp/tickerlab-%s.log", time.Now().Format("2006-01-02"))
	}
	logger, logFile, err := util.NewFileLogger(logPath, cfg.Logging.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	// Accounts are loaded once at startup. A missing or unreadable file is
	// not fatal, but unlike the per-tick ledger reload it is diagnosed.
	accounts, err := store.LoadAccounts(cfg.Storage.AccountFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not read %s: %v\n", cfg.Storage.AccountFile, err)
		logger.Warn("account summary unavailable", "path", cfg.Storage.AccountFile, "error", err)
		accounts = nil
	}
	logger.Info("dashboard starting",
		"accounts", len(accounts),
		"cache_dir", cfg.Storage.CacheDir,
		"interpreter", cfg.Scripts.Interpreter)

	runner := script.NewRunner(cfg.Scripts, logger)

	p := tea.NewProgram(
		ui.NewModel(cfg, accounts, runner, logger),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
