package ui

import "github.com/charmbracelet/huh"

// Theme names accepted by the settings menu and the BANK_THEME env
// var, mapped onto huh's built-in form themes.
var themeNames = []string{"charm", "dracula", "base16", "catppuccin"}

func (a *App) formTheme() *huh.Theme {
	switch a.theme {
	case "dracula":
		return huh.ThemeDracula()
	case "base16":
		return huh.ThemeBase16()
	case "catppuccin":
		return huh.ThemeCatppuccin()
	default:
		return huh.ThemeCharm()
	}
}

func (a *App) settingsMenu() error {
	options := make([]huh.Option[string], 0, len(themeNames))
	for _, name := range themeNames {
		options = append(options, huh.NewOption(name, name))
	}

	theme := a.theme
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(options...).
			Value(&theme),
	))
	ok, err := a.runForm(form)
	if err != nil || !ok {
		return err
	}
	a.theme = theme
	a.success("Theme set to %s.", theme)
	return nil
}
