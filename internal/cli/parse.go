package cli

import (
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// dateLayout is the flag format for due dates.
const dateLayout = "2006-01-02"

// parseStatus validates a status flag value.
func parseStatus(value string) (constants.TaskStatus, error) {
	s := constants.TaskStatus(value)
	if !s.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidStatus, "%q must be one of %v", value, constants.ValidTaskStatuses())
	}
	return s, nil
}

// parseStatuses validates a repeatable status flag.
func parseStatuses(values []string) ([]constants.TaskStatus, error) {
	out := make([]constants.TaskStatus, 0, len(values))
	for _, v := range values {
		s, err := parseStatus(v)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// parsePriority validates a priority flag value.
func parsePriority(value string) (constants.TaskPriority, error) {
	p := constants.TaskPriority(value)
	if !p.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidPriority, "%q must be one of %v", value, constants.ValidTaskPriorities())
	}
	return p, nil
}

// parseTab validates a tab flag value.
func parseTab(value string) (constants.Tab, error) {
	tab := constants.Tab(value)
	if !tab.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidTab, "%q must be one of %v", value, constants.ValidTabs())
	}
	return tab, nil
}

// parseSortField validates a sort flag value.
func parseSortField(value string) (constants.SortField, error) {
	f := constants.SortField(value)
	if !f.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidSortField, "%q must be one of %v", value, constants.ValidSortFields())
	}
	return f, nil
}

// parseSortDirection validates a direction flag value.
func parseSortDirection(value string) (constants.SortDirection, error) {
	d := constants.SortDirection(value)
	if !d.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidArgument, "direction %q must be asc or desc", value)
	}
	return d, nil
}

// parseGroupKey validates a group flag value.
func parseGroupKey(value string) (constants.GroupKey, error) {
	g := constants.GroupKey(value)
	if !g.IsValid() {
		return "", errors.Wrapf(errors.ErrInvalidGroupKey, "%q must be one of %v", value, constants.ValidGroupKeys())
	}
	return g, nil
}

// parseDate parses a YYYY-MM-DD flag value into a local-midnight time.
func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil //nolint:nilnil // absent flag means no filter
	}
	t, err := time.ParseInLocation(dateLayout, value, time.Local)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidDateRange, "%q is not a YYYY-MM-DD date", value)
	}
	return &t, nil
}
