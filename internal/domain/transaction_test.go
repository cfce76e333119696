package domain_test

import (
	"testing"

	"student-bank/internal/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestDeltaSign(t *testing.T) {
	amount := decimal.RequireFromString("42.50")
	cases := []struct {
		kind domain.TxKind
		want decimal.Decimal
	}{
		{domain.TxDeposit, amount},
		{domain.TxTransferIn, amount},
		{domain.TxInterest, amount},
		{domain.TxWithdraw, amount.Neg()},
		{domain.TxTransferOut, amount.Neg()},
	}
	for _, tc := range cases {
		tx := domain.Transaction{Kind: tc.kind, Amount: amount}
		require.True(t, tc.want.Equal(tx.Delta()), "%s: want %s, got %s", tc.kind, tc.want, tx.Delta())
	}
}
