package main

import (
	"os"

	"student-bank/internal/bank"
	"student-bank/internal/config"
	"student-bank/internal/storage"
	"student-bank/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "student-bank"})
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	store, err := storage.New(cfg.DataDir)
	if err != nil {
		logger.Fatal("failed to open data directory", "err", err)
	}

	customers, accounts, transactions, err := store.Load()
	if err != nil {
		logger.Fatal("failed to load ledger state", "err", err)
	}

	b := bank.New(store, logger.WithPrefix("ledger"))
	if err := b.Restore(customers, accounts, transactions); err != nil {
		logger.Fatal("refusing to start on inconsistent data", "err", err)
	}
	logger.Info("ledger loaded",
		"customers", len(customers),
		"accounts", len(accounts),
		"transactions", len(transactions),
		"dir", store.Dir())

	app := ui.New(b, cfg.Theme, logger.WithPrefix("ui"))
	if err := app.Run(); err != nil {
		logger.Fatal("session ended with error", "err", err)
	}
	logger.Info("goodbye")
}
