// Package ui is the interactive front end: a menu loop, huh forms for
// every ledger operation and lipgloss tables for listings and reports.
// It holds no business rules; every action calls straight into the
// bank and shows the outcome.
package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"student-bank/internal/bank"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

var (
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noteStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
)

// App drives the terminal session. The bank is exclusively owned by
// this loop; every operation runs synchronously off a form submission.
type App struct {
	bank  *bank.Bank
	log   *log.Logger
	out   io.Writer
	theme string
}

func New(b *bank.Bank, theme string, logger *log.Logger) *App {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &App{bank: b, log: logger, out: os.Stdout, theme: theme}
}

// Run shows the main menu until the user quits or aborts.
func (a *App) Run() error {
	fmt.Fprintln(a.out, titleStyle.Render("Student Bank"))
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Main menu").
				Options(
					huh.NewOption("Customer management", "customers"),
					huh.NewOption("Account management", "accounts"),
					huh.NewOption("Transfer funds", "transfer"),
					huh.NewOption("Apply interest", "interest"),
					huh.NewOption("Reports", "reports"),
					huh.NewOption("Settings", "settings"),
					huh.NewOption("Quit", "quit"),
				).
				Value(&choice),
		))
		ok, err := a.runForm(form)
		if err != nil {
			return err
		}
		if !ok || choice == "quit" {
			return nil
		}

		switch choice {
		case "customers":
			err = a.customersMenu()
		case "accounts":
			err = a.accountsMenu()
		case "transfer":
			err = a.transfer()
		case "interest":
			err = a.interestMenu()
		case "reports":
			err = a.reportsMenu()
		case "settings":
			err = a.settingsMenu()
		}
		if err != nil {
			return err
		}
	}
}

// runForm runs a form with the active theme. Returns false when the
// user aborted, which callers treat as "back", never as an error.
func (a *App) runForm(form *huh.Form) (bool, error) {
	err := form.WithTheme(a.formTheme()).Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.out, okStyle.Render("✓ "+fmt.Sprintf(format, args...)))
}

// failure surfaces a rejected operation. The session always survives.
func (a *App) failure(err error) {
	a.log.Debug("operation rejected", "err", err)
	fmt.Fprintln(a.out, errStyle.Render("✗ "+err.Error()))
}

func (a *App) note(msg string) {
	fmt.Fprintln(a.out, noteStyle.Render(msg))
}

func money(d decimal.Decimal) string {
	return "Rs. " + d.StringFixed(2)
}

func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(s))
}

func validatePositiveAmount(s string) error {
	d, err := parseAmount(s)
	if err != nil {
		return errors.New("enter a numeric amount")
	}
	if !d.IsPositive() {
		return errors.New("amount must be > 0")
	}
	return nil
}

// validateNonNegativeAmount accepts an empty field, which callers
// treat as zero.
func validateNonNegativeAmount(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	d, err := parseAmount(s)
	if err != nil {
		return errors.New("enter a numeric amount")
	}
	if d.IsNegative() {
		return errors.New("amount must not be negative")
	}
	return nil
}

func validateRequired(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}
