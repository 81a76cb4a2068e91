// Package config loads the tickerlab YAML configuration and applies
// environment variable overrides.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Configuration structs
// ---------------------------------------------------------------------------

// Config is the top-level configuration for the tickerlab dashboard.
type Config struct {
	Storage Storage `yaml:"storage"`
	Scripts Scripts `yaml:"scripts"`
	UI      UI      `yaml:"ui"`
	Logging Logging `yaml:"logging"`
}

// Storage holds paths for the flat data files the dashboard reads.
type Storage struct {
	AccountFile string `yaml:"account_file"`
	TradesFile  string `yaml:"trades_file"`
	CacheDir    string `yaml:"cache_dir"`
}

// Scripts holds the external interpreter and the script paths the
// dashboard invokes for download, preprocess, and prediction.
type Scripts struct {
	Interpreter string `yaml:"interpreter"`
	Download    string `yaml:"download"`
	Preprocess  string `yaml:"preprocess"`
	Predict     string `yaml:"predict"`
}

// UI holds session-loop tuning parameters.
type UI struct {
	PollIntervalMS int `yaml:"poll_interval_ms"`
}

// Logging configures the application logger.
type Logging struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no config file is present.
// The paths match the conventional project layout: CSV data files in the
// working directory and per-ticker series files under pre_stock/.
func Default() *Config {
	return &Config{
		Storage: Storage{
			AccountFile: "account_summary.csv",
			TradesFile:  "trading_history.csv",
			CacheDir:    "pre_stock",
		},
		Scripts: Scripts{
			Interpreter: "python3",
			Download:    "download_stock.py",
			Preprocess:  "ml/preprocess.py",
			Predict:     "ml/model.py",
		},
		UI: UI{
			PollIntervalMS: 300,
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// ---------------------------------------------------------------------------
// Loading
// ---------------------------------------------------------------------------

// Load reads the YAML configuration file at the given path, parses it on
// top of the defaults, and then applies environment variable overrides.
// A missing config file is not an error: the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides checks well-known environment variables and overrides
// the corresponding configuration fields when they are set.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("ACCOUNT_FILE"); v != "" {
		cfg.Storage.AccountFile = v
	}
	if v := os.Getenv("TRADES_FILE"); v != "" {
		cfg.Storage.TradesFile = v
	}
	if v := os.Getenv("CACHE_DIR"); v != "" {
		cfg.Storage.CacheDir = v
	}
	if v := os.Getenv("TICKERLAB_INTERPRETER"); v != "" {
		cfg.Scripts.Interpreter = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
