package domain

import "github.com/shopspring/decimal"

type AccountType string

const (
	Savings AccountType = "savings"
	Current AccountType = "current"
)

// Account is a single bank account owned by one customer. The interest
// rate is a fraction (0.01 = 1%) and only meaningful for savings
// accounts. Closed accounts keep their history but refuse mutations.
type Account struct {
	Number       string          `json:"account_number"`
	HolderID     string          `json:"account_holder_id"`
	Type         AccountType     `json:"type"`
	Balance      decimal.Decimal `json:"balance"`
	InterestRate decimal.Decimal `json:"interest_rate"`
	Closed       bool            `json:"closed,omitempty"`
}
