package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress       string
	CatalogDir       string
	OrdersFile       string
	DatabaseURI      string
	SearchLimit      int
	ReminderInterval time.Duration
	ReminderAge      time.Duration
	ShutdownTimeout  time.Duration
}

const (
	defaultRunAddress       = ":8080"
	defaultCatalogDir       = "."
	defaultOrdersFile       = "orders.json"
	defaultSearchLimit      = 25
	defaultReminderInterval = time.Hour
	defaultReminderAge      = 48 * time.Hour
	defaultShutdownTimeout  = 10 * time.Second
)

// Load parses configuration from a .env file (when present), environment
// variables and flags, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:       getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		CatalogDir:       getString(lookup, "CATALOG_DIR", defaultCatalogDir),
		OrdersFile:       getString(lookup, "ORDERS_FILE", defaultOrdersFile),
		DatabaseURI:      getString(lookup, "DATABASE_URI", ""),
		SearchLimit:      getInt(lookup, "SEARCH_LIMIT", defaultSearchLimit),
		ReminderInterval: getDuration(lookup, "REMINDER_INTERVAL", defaultReminderInterval),
		ReminderAge:      getDuration(lookup, "REMINDER_AGE", defaultReminderAge),
		ShutdownTimeout:  getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("ordertrack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		reminderIntervalStr = cfg.ReminderInterval.String()
		reminderAgeStr      = cfg.ReminderAge.String()
		shutdownTimeoutStr  = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.CatalogDir, "catalog", cfg.CatalogDir, "Directory scanned for the catalog CSV")
	fs.StringVar(&cfg.OrdersFile, "orders", cfg.OrdersFile, "Path of the JSON orders document")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN (enables the database-backed store)")
	fs.IntVar(&cfg.SearchLimit, "search-limit", cfg.SearchLimit, "Maximum results per catalog search")
	fs.StringVar(&reminderIntervalStr, "reminder-interval", reminderIntervalStr, "Interval between pending-order sweeps")
	fs.StringVar(&reminderAgeStr, "reminder-age", reminderAgeStr, "Age after which a pending order is flagged")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.ReminderInterval, err = time.ParseDuration(reminderIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid reminder interval: %w", err)
	}

	if cfg.ReminderAge, err = time.ParseDuration(reminderAgeStr); err != nil {
		return nil, fmt.Errorf("invalid reminder age: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if cfg.SearchLimit <= 0 {
		cfg.SearchLimit = defaultSearchLimit
	}

	if cfg.ReminderInterval <= 0 {
		cfg.ReminderInterval = defaultReminderInterval
	}

	if cfg.ReminderAge <= 0 {
		cfg.ReminderAge = defaultReminderAge
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.OrdersFile == "" {
		return nil, fmt.Errorf("orders file path must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
