package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"student-bank/internal/domain"
	"student-bank/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyDirectory(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	customers, accounts, transactions, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, customers)
	require.Empty(t, accounts)
	require.Empty(t, transactions)
}

func TestSaveAllRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)

	now := time.Now().UTC()
	customers := []domain.Customer{
		{ID: "123456789", Name: "Alice", Address: "12 Hill Road", AccountNumbers: []string{"aa11bb22"}},
	}
	accounts := []domain.Account{
		{Number: "aa11bb22", HolderID: "123456789", Type: domain.Savings, Balance: decimal.RequireFromString("150.25"), InterestRate: decimal.RequireFromString("0.05")},
	}
	transactions := []domain.Transaction{
		{Account: "aa11bb22", Kind: domain.TxDeposit, Amount: decimal.RequireFromString("150.25"), Timestamp: now, Balance: decimal.RequireFromString("150.25")},
	}
	require.NoError(t, store.SaveAll(customers, accounts, transactions))

	for _, name := range []string{"customers.json", "accounts.json", "transactions.json"} {
		_, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, "expected %s to exist", name)
	}

	gotCustomers, gotAccounts, gotTransactions, err := store.Load()
	require.NoError(t, err)

	require.Equal(t, customers, gotCustomers)

	require.Len(t, gotAccounts, 1)
	got := gotAccounts[0]
	want := accounts[0]
	require.Equal(t, want.Number, got.Number)
	require.Equal(t, want.HolderID, got.HolderID)
	require.Equal(t, want.Type, got.Type)
	require.Equal(t, want.Closed, got.Closed)
	require.True(t, want.Balance.Equal(got.Balance), "balance %s != %s", want.Balance, got.Balance)
	require.True(t, want.InterestRate.Equal(got.InterestRate))

	require.Len(t, gotTransactions, 1)
	gotTx := gotTransactions[0]
	wantTx := transactions[0]
	require.Equal(t, wantTx.Account, gotTx.Account)
	require.Equal(t, wantTx.Kind, gotTx.Kind)
	require.Equal(t, wantTx.CounterAccount, gotTx.CounterAccount)
	require.True(t, wantTx.Amount.Equal(gotTx.Amount))
	require.True(t, wantTx.Balance.Equal(gotTx.Balance))
	require.True(t, wantTx.Timestamp.Equal(gotTx.Timestamp))
}

func TestSaveAllOverwritesPreviousState(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	first := []domain.Customer{
		{ID: "111111111", Name: "Alice", Address: "12 Hill Road"},
		{ID: "222222222", Name: "Bob", Address: "3 Dock Street"},
	}
	require.NoError(t, store.SaveAll(first, nil, nil))
	require.NoError(t, store.SaveAll(first[:1], nil, nil))

	customers, _, _, err := store.Load()
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, "111111111", customers[0].ID)
}

func TestLoadRejectsMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "accounts.json"), []byte("{not json"), 0644))

	_, _, _, err = store.Load()
	require.ErrorContains(t, err, "accounts.json")
}
