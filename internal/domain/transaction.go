package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TxKind string

const (
	TxDeposit     TxKind = "deposit"
	TxWithdraw    TxKind = "withdraw"
	TxTransferIn  TxKind = "transfer-in"
	TxTransferOut TxKind = "transfer-out"
	TxInterest    TxKind = "interest"
)

// Transaction is an immutable record of one balance-affecting event.
// Amount is always non-negative; the direction comes from Kind.
// CounterAccount is set on the two legs of a transfer.
type Transaction struct {
	Account        string          `json:"account"`
	Kind           TxKind          `json:"kind"`
	Amount         decimal.Decimal `json:"amount"`
	CounterAccount string          `json:"counter_account,omitempty"`
	Timestamp      time.Time       `json:"timestamp"`
	Balance        decimal.Decimal `json:"resulting_balance"`
}

// Delta returns the signed effect of the transaction on its account:
// credits positive, debits negative.
func (t Transaction) Delta() decimal.Decimal {
	switch t.Kind {
	case TxWithdraw, TxTransferOut:
		return t.Amount.Neg()
	default:
		return t.Amount
	}
}
