package ui

import (
	"fmt"

	"student-bank/internal/domain"

	"github.com/charmbracelet/huh"
)

func (a *App) transfer() error {
	from, ok, err := a.selectAccount("Transfer from", false)
	if err != nil || !ok {
		return err
	}

	var toOptions []huh.Option[string]
	for _, acc := range a.bank.Accounts() {
		if acc.Closed || acc.Number == from {
			continue
		}
		label := fmt.Sprintf("%s (%s, %s) — %s", acc.Number, acc.Type, acc.HolderID, money(acc.Balance))
		toOptions = append(toOptions, huh.NewOption(label, acc.Number))
	}
	if len(toOptions) == 0 {
		a.note("Transfers need a second open account.")
		return nil
	}

	var (
		to        string
		amountStr string
	)
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Transfer to").
			Options(toOptions...).
			Value(&to),
		huh.NewInput().
			Title("Amount (Rs)").
			Validate(validatePositiveAmount).
			Value(&amountStr),
	))
	if ok, err = a.runForm(form); err != nil || !ok {
		return err
	}
	amount, err := parseAmount(amountStr)
	if err != nil {
		a.failure(err)
		return nil
	}

	if err := a.bank.Transfer(from, to, amount); err != nil {
		a.failure(err)
		return nil
	}
	a.success("Transferred %s from %s to %s.", money(amount), from, to)
	return nil
}

func (a *App) interestMenu() error {
	var choice string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Apply interest").
			Options(
				huh.NewOption("One savings account", "one"),
				huh.NewOption("All savings accounts", "all"),
				huh.NewOption("Back", "back"),
			).
			Value(&choice),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok || choice == "back" {
		return err
	}

	switch choice {
	case "one":
		return a.applyInterestOne()
	case "all":
		return a.applyInterestAll()
	}
	return nil
}

func (a *App) applyInterestOne() error {
	var options []huh.Option[string]
	for _, acc := range a.bank.Accounts() {
		if acc.Closed || acc.Type != domain.Savings {
			continue
		}
		rate := acc.InterestRate.Mul(percent).StringFixed(2)
		label := fmt.Sprintf("%s (%s%%) — %s", acc.Number, rate, money(acc.Balance))
		options = append(options, huh.NewOption(label, acc.Number))
	}
	if len(options) == 0 {
		a.note("No open savings accounts.")
		return nil
	}

	var number string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Credit interest to").
			Options(options...).
			Value(&number),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return err
	}

	before, err := a.bank.Account(number)
	if err != nil {
		a.failure(err)
		return nil
	}
	acc, err := a.bank.ApplyInterest(number)
	if err != nil {
		a.failure(err)
		return nil
	}
	earned := acc.Balance.Sub(before.Balance)
	a.success("Interest of %s credited to %s. New balance %s.", money(earned), acc.Number, money(acc.Balance))
	return nil
}

func (a *App) applyInterestAll() error {
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Apply interest to every open savings account?").
			Affirmative("Apply").
			Negative("Cancel").
			Value(&confirmed),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok || !confirmed {
		return err
	}

	credited := a.bank.ApplyAllInterest()
	if credited == 0 {
		a.note("No open savings accounts.")
		return nil
	}
	a.success("Interest applied to %d savings account(s).", credited)
	return nil
}
