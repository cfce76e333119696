package ui

import (
	"fmt"

	"student-bank/internal/domain"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func (a *App) reportsMenu() error {
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Reports").
				Options(
					huh.NewOption("Full transaction log", "all"),
					huh.NewOption("Account statement", "statement"),
					huh.NewOption("Back", "back"),
				).
				Value(&choice),
		))
		ok, err := a.runForm(form)
		if err != nil {
			return err
		}
		if !ok || choice == "back" {
			return nil
		}

		switch choice {
		case "all":
			a.renderTransactions(a.bank.Transactions())
		case "statement":
			err = a.accountStatement()
		}
		if err != nil {
			return err
		}
	}
}

// accountStatement prints one account's history and whether its
// balance reconciles against it.
func (a *App) accountStatement() error {
	number, ok, err := a.selectAccount("Statement for", true)
	if err != nil || !ok {
		return err
	}

	history, err := a.bank.History(number)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.renderTransactions(history)

	if err := a.bank.Reconcile(number); err != nil {
		a.failure(err)
		return nil
	}
	acc, err := a.bank.Account(number)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.success("Balance %s reconciles with the recorded activity.", money(acc.Balance))
	return nil
}

func (a *App) renderTransactions(txs []domain.Transaction) {
	if len(txs) == 0 {
		a.note("No transactions recorded yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Time", "Account", "Kind", "Amount", "Counterparty", "Balance")
	for _, tx := range txs {
		t.Row(
			tx.Timestamp.Format("2006-01-02 15:04:05"),
			tx.Account,
			string(tx.Kind),
			money(tx.Amount),
			tx.CounterAccount,
			money(tx.Balance),
		)
	}
	fmt.Fprintln(a.out, t)
}
