package ui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

func (a *App) customersMenu() error {
	for {
		var choice string
		form := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title("Customer management").
				Options(
					huh.NewOption("List customers", "list"),
					huh.NewOption("Add customer", "add"),
					huh.NewOption("Remove customer", "remove"),
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
			a.listCustomers()
		case "add":
			err = a.addCustomer()
		case "remove":
			err = a.removeCustomer()
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) listCustomers() {
	customers := a.bank.Customers()
	if len(customers) == 0 {
		a.note("No customers registered yet.")
		return
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Name", "Address", "Accounts")
	for _, c := range customers {
		t.Row(c.ID, c.Name, c.Address, strconv.Itoa(len(c.AccountNumbers)))
	}
	fmt.Fprintln(a.out, t)
}

func (a *App) addCustomer() error {
	var name, address string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Name").
			Validate(validateRequired("name")).
			Value(&name),
		huh.NewInput().
			Title("Address").
			Validate(validateRequired("address")).
			Value(&address),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return err
	}

	c, err := a.bank.AddCustomer(name, address)
	if err != nil {
		a.failure(err)
		return nil
	}
	a.success("Customer %q registered with ID %s.", c.Name, c.ID)
	return nil
}

func (a *App) removeCustomer() error {
	customers := a.bank.Customers()
	if len(customers) == 0 {
		a.note("No customers to remove.")
		return nil
	}

	options := make([]huh.Option[string], 0, len(customers))
	for _, c := range customers {
		options = append(options, huh.NewOption(fmt.Sprintf("%s — %s", c.ID, c.Name), c.ID))
	}
	var id string
	var confirmed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Remove which customer?").
			Options(options...).
			Value(&id),
		huh.NewConfirm().
			Title("Remove this customer?").
			Affirmative("Remove").
			Negative("Cancel").
			Value(&confirmed),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return err
	}
	if !confirmed {
		return nil
	}

	if err := a.bank.RemoveCustomer(id); err != nil {
		a.failure(err)
		return nil
	}
	a.success("Customer %s removed.", id)
	return nil
}
