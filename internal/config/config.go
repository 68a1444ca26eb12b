package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the configuration for the report engine. All paths have
// defaults matching the web application's instance layout, so the tool runs
// next to a deployed instance with no configuration at all.
type Config struct {
	// LedgerPath is the orders.json file written by the web application.
	LedgerPath string
	// SchoolDBPath is the SQLite database owned by the web application.
	SchoolDBPath string
	// ReportsDir is where generated documents are written.
	ReportsDir string
	// PricesPath optionally points at a JSON price table; when empty,
	// prices come from the menu_item table, falling back to the built-in
	// demo table.
	PricesPath string
}

// NewFromEnv creates a Config from environment variables, loading a .env
// file first when one is present.
func NewFromEnv() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		LedgerPath:   "orders.json",
		SchoolDBPath: "school_food.db",
		ReportsDir:   "reports",
	}
	if v := os.Getenv("LEDGER_PATH"); v != "" {
		cfg.LedgerPath = v
	}
	if v := os.Getenv("SCHOOL_DB_PATH"); v != "" {
		cfg.SchoolDBPath = v
	}
	if v := os.Getenv("REPORTS_DIR"); v != "" {
		cfg.ReportsDir = v
	}
	cfg.PricesPath = os.Getenv("PRICES_PATH")
	return cfg
}
