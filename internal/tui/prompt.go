package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/mrz1836/opsdeck/internal/domain"
	opserrors "github.com/mrz1836/opsdeck/internal/errors"
)

// promptWidth keeps interactive prompts readable on wide terminals.
const promptWidth = 60

// runPromptField runs a single-field form with the shared theme.
// The errorContext parameter wraps failures with descriptive context.
func runPromptField(field huh.Field, errorContext string) error {
	// Bail out when there is no terminal so tests and piped invocations
	// never hang waiting for input.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return opserrors.ErrPromptCanceled
	}

	CheckNoColor()

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(PromptTheme()).
		WithWidth(promptWidth)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return opserrors.ErrPromptCanceled
		}
		return fmt.Errorf("%s: %w", errorContext, err)
	}

	return nil
}

// PromptTheme returns the huh theme matching the board colors.
// Uses AdaptiveColor for light and dark terminals.
func PromptTheme() *huh.Theme {
	CheckNoColor()

	t := huh.ThemeBase()

	t.Focused.Base = t.Focused.Base.BorderForeground(ColorPrimary)
	t.Focused.Title = t.Focused.Title.Foreground(ColorPrimary)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorPrimary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorPrimary)

	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(ColorSuccess)

	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorError)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(ColorError)

	t.Blurred.Base = t.Blurred.Base.BorderForeground(ColorMuted)
	t.Blurred.Title = t.Blurred.Title.Foreground(ColorMuted)
	t.Focused.Description = t.Focused.Description.Foreground(ColorMuted)
	t.Help.Ellipsis = t.Help.Ellipsis.Foreground(ColorMuted)

	return t
}

// SelectUser presents the user directory as a selection prompt and returns
// the chosen user ID. An empty string selects "unassigned".
func SelectUser(title string, users []*domain.User) (string, error) {
	if len(users) == 0 {
		return "", opserrors.ErrNoPromptOptions
	}

	options := make([]huh.Option[string], 0, len(users)+1)
	options = append(options, huh.NewOption("Unassigned", ""))
	for _, u := range users {
		label := u.FullName
		if u.Department != "" {
			label = u.FullName + " - " + u.Department
		}
		options = append(options, huh.NewOption(label, u.ID))
	}

	var selected string

	field := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected)

	if err := runPromptField(field, "user selection failed"); err != nil {
		return "", err
	}

	return selected, nil
}

// ConfirmAction presents a yes/no prompt and returns the choice.
func ConfirmAction(message string, defaultYes bool) (bool, error) {
	confirmed := defaultYes

	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	if err := runPromptField(field, "confirm prompt failed"); err != nil {
		return false, err
	}

	return confirmed, nil
}
