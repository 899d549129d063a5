// Command seed loads reference data (statuses, countries with states,
// categories, currencies and plans) into the database. Reruns are no-ops.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mantra-gor/BillSane-Admin/internal/config"
	"github.com/mantra-gor/BillSane-Admin/internal/database"
	"github.com/mantra-gor/BillSane-Admin/internal/logger"
)

type seedConfig struct {
	DatabasePath string `env:"DATABASE_PATH" envDefault:"data/billsane.db"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	var cfg seedConfig
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.DatabasePath, "db", cfg.DatabasePath, "sqlite database path")
	verbose := flag.Bool("v", false, "development logging")
	flag.Parse()

	if err := run(cfg, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg seedConfig, verbose bool) error {
	log, err := logger.New(cfg.LogLevel, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	db, err := database.Open(cfg.DatabasePath, log, verbose)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	return database.Seed(db, log)
}
