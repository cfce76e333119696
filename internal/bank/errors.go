// Package bank holds the ledger: customers, accounts and the
// append-only transaction log, plus every balance-affecting operation.
package bank

import "errors"

// Domain errors. The UI layer shows these to the user; none of them
// are fatal to the process.
var (
	ErrCustomerNotFound    = errors.New("customer not found")
	ErrCustomerHasAccounts = errors.New("customer still has open accounts")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountClosed       = errors.New("account is closed")
	ErrUnknownAccountType  = errors.New("unknown account type")
	ErrInvalidAmount       = errors.New("amount must be > 0")
	ErrInvalidRate         = errors.New("interest rate must be >= 0")
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrSameAccount         = errors.New("from and to accounts are the same")
	ErrNotSavings          = errors.New("interest applies to savings accounts only")
	ErrBalanceRemaining    = errors.New("account balance must be zero to close")
	ErrIDSpaceExhausted    = errors.New("could not generate a unique id")
)
