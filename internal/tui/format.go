package tui

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mrz1836/opsdeck/internal/constants"
)

// titleCaser is reused across label calls; cases.Title allocates.
var titleCaser = cases.Title(language.English) //nolint:gochecknoglobals // cached caser

// TabLabel humanizes a tab value for headers and footers, e.g.
// "under_review" becomes "Under Review".
func TabLabel(tab constants.Tab) string {
	return titleCaser.String(strings.ReplaceAll(tab.String(), "_", " "))
}

// SortLabel humanizes a sort field for the footer, e.g. "due_date"
// becomes "Due Date".
func SortLabel(field constants.SortField) string {
	return titleCaser.String(strings.ReplaceAll(field.String(), "_", " "))
}

// GroupLabel humanizes a group key for the footer.
func GroupLabel(key constants.GroupKey) string {
	return titleCaser.String(key.String())
}

// RelativeDue renders a short human description of a due date relative to
// now: "today", "in 3d", or "3d overdue". An undated task gets a dash.
func RelativeDue(due *time.Time, now time.Time) string {
	if due == nil {
		return "—"
	}
	dayOf := func(t time.Time) time.Time {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
	days := int(dayOf(*due).Sub(dayOf(now)).Hours() / 24)
	switch {
	case days == 0:
		return "today"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd overdue", -days)
	}
}
