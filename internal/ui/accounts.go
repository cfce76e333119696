package ui

import (
	"fmt"

	"student-bank/internal/domain"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/shopspring/decimal"
)

var percent = decimal.NewFromInt(100)

func (a *App) accountsMenu() error {
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Account management").
				Options(
					huh.NewOption("List accounts", "list"),
					huh.NewOption("Open account", "open"),
					huh.NewOption("Deposit", "deposit"),
					huh.NewOption("Withdraw", "withdraw"),
					huh.NewOption("Close account", "close"),
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
		case "list":
			a.listAccounts()
		case "open":
			err = a.openAccount()
		case "deposit":
			err = a.deposit()
		case "withdraw":
			err = a.withdraw()
		case "close":
			err = a.closeAccount()
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) listAccounts() {
	accounts := a.bank.Accounts()
	if len(accounts) == 0 {
		a.note("No accounts opened yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Number", "Type", "Holder", "Balance", "Rate", "Status")
	for _, acc := range accounts {
		rate := ""
		if acc.Type == domain.Savings {
			rate = acc.InterestRate.Mul(percent).StringFixed(2) + "%"
		}
		status := "open"
		if acc.Closed {
			status = "closed"
		}
		t.Row(acc.Number, string(acc.Type), acc.HolderID, money(acc.Balance), rate, status)
	}
	fmt.Fprintln(a.out, t)
}

func (a *App) openAccount() error {
	customers := a.bank.Customers()
	if len(customers) == 0 {
		a.note("Register a customer before opening an account.")
		return nil
	}

	customerOptions := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		customerOptions = append(customerOptions, huh.NewOption(fmt.Sprintf("%s — %s", c.ID, c.Name), c.ID))
	}

	var (
		customerID string
		accType    domain.AccountType
		balanceStr string
		rateStr    string
	)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Customer").
				Options(customerOptions...).
				Value(&customerID),
			huh.NewSelect[domain.AccountType]().
				Title("Account type").
				Options(
					huh.NewOption("Savings", domain.Savings),
					huh.NewOption("Current", domain.Current),
				).
				Value(&accType),
			huh.NewInput().
				Title("Initial deposit (Rs)").
				Placeholder("0.00").
				Validate(validateNonNegativeAmount).
				Value(&balanceStr),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Interest rate (%)").
				Placeholder("1.00").
				Validate(validateNonNegativeAmount).
				Value(&rateStr),
		).WithHideFunc(func() bool { return accType != domain.Savings }),
	)
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return err
	}

	initial := decimal.Zero
	if balanceStr != "" {
		if initial, err = parseAmount(balanceStr); err != nil {
			a.failure(err)
			return nil
		}
	}
	rate := decimal.Zero
	if accType == domain.Savings && rateStr != "" {
		pct, err := parseAmount(rateStr)
		if err != nil {
			a.failure(err)
			return nil
		}
		rate = pct.Div(percent)
	}

	acc, err := a.bank.OpenAccount(customerID, accType, initial, rate)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.success("%s account %s opened for customer %s with %s.", acc.Type, acc.Number, acc.HolderID, money(acc.Balance))
	return nil
}

func (a *App) deposit() error {
	number, amount, ok, err := a.amountForm("Deposit into", "Amount to deposit (Rs)")
	if err != nil || !ok {
		return err
	}
	acc, err := a.bank.Deposit(number, amount)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.success("Deposited %s into %s. New balance %s.", money(amount), acc.Number, money(acc.Balance))
	return nil
}

func (a *App) withdraw() error {
	number, amount, ok, err := a.amountForm("Withdraw from", "Amount to withdraw (Rs)")
	if err != nil || !ok {
		return err
	}
	acc, err := a.bank.Withdraw(number, amount)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.success("Withdrew %s from %s. New balance %s.", money(amount), acc.Number, money(acc.Balance))
	return nil
}

func (a *App) closeAccount() error {
	number, ok, err := a.selectAccount("Close which account?", false)
	if err != nil || !ok {
		return err
	}
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Close account %s?", number)).
			Affirmative("Close").
			Negative("Cancel").
			Value(&confirmed),
	))
	if ok, err = a.runForm(form); err != nil || !ok || !confirmed {
		return err
	}

	if err := a.bank.CloseAccount(number); err != nil {
		a.failure(err)
		return nil
	}
	a.success("Account %s closed.", number)
	return nil
}

// amountForm is the shared deposit/withdraw flow: pick an open
// account, then enter a positive amount.
func (a *App) amountForm(selectTitle, amountTitle string) (string, decimal.Decimal, bool, error) {
	number, ok, err := a.selectAccount(selectTitle, false)
	if err != nil || !ok {
		return "", decimal.Zero, false, err
	}
	var amountStr string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title(amountTitle).
			Validate(validatePositiveAmount).
			Value(&amountStr),
	))
	if ok, err = a.runForm(form); err != nil || !ok {
		return "", decimal.Zero, false, err
	}
	amount, err := parseAmount(amountStr)
	if err != nil {
		a.failure(err)
		return "", decimal.Zero, false, nil
	}
	return number, amount, true, nil
}

// selectAccount offers accounts as a select list, filtered to open
// ones unless includeClosed is set. ok is false when there is nothing
// to pick or the user backed out.
func (a *App) selectAccount(title string, includeClosed bool) (string, bool, error) {
	var options []huh.Option[string]
	for _, acc := range a.bank.Accounts() {
		if acc.Closed && !includeClosed {
			continue
		}
		label := fmt.Sprintf("%s (%s, %s) — %s", acc.Number, acc.Type, acc.HolderID, money(acc.Balance))
		options = append(options, huh.NewOption(label, acc.Number))
	}
	if len(options) == 0 {
		a.note("No matching accounts.")
		return "", false, nil
	}

	var number string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&number),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return "", false, err
	}
	return number, true, nil
}
