// Package storage persists the ledger as three JSON documents in a
// single data directory. Every save rewrites all three files
// wholesale; there is no partial update.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"student-bank/internal/domain"
)

const (
	customersFile    = "customers.json"
	accountsFile     = "accounts.json"
	transactionsFile = "transactions.json"
)

// Store reads and writes the three ledger documents.
type Store struct {
	dir string
}

// New creates the data directory if needed and returns a store bound
// to it.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the directory the store persists into.
func (s *Store) Dir() string {
	return s.dir
}

// Load reads all three documents. A missing file is a first run and
// yields empty state; a malformed file is an error.
func (s *Store) Load() ([]domain.Customer, []domain.Account, []domain.Transaction, error) {
	var customers []domain.Customer
	if err := s.read(customersFile, &customers); err != nil {
		return nil, nil, nil, err
	}
	var accounts []domain.Account
	if err := s.read(accountsFile, &accounts); err != nil {
		return nil, nil, nil, err
	}
	var transactions []domain.Transaction
	if err := s.read(transactionsFile, &transactions); err != nil {
		return nil, nil, nil, err
	}
	return customers, accounts, transactions, nil
}

// SaveAll overwrites the three documents with the given state.
func (s *Store) SaveAll(customers []domain.Customer, accounts []domain.Account, transactions []domain.Transaction) error {
	if err := s.write(customersFile, customers); err != nil {
		return err
	}
	if err := s.write(accountsFile, accounts); err != nil {
		return err
	}
	return s.write(transactionsFile, transactions)
}

func (s *Store) read(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *Store) write(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
