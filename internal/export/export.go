// Package export renders grouped task views to portable formats.
// CSV targets spreadsheets; markdown targets documents and, through the
// terminal renderer, rich on-screen output.
package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/taskview"
)

// Format identifies a supported export format.
type Format string

// Supported export formats.
const (
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// IsValid checks whether the format is supported.
func (f Format) IsValid() bool {
	return f == FormatCSV || f == FormatMarkdown
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// Write renders buckets to w in the requested format.
func Write(w io.Writer, f Format, buckets []taskview.Bucket, dir *taskview.Directory) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, buckets, dir)
	case FormatMarkdown:
		return WriteMarkdown(w, buckets, dir)
	default:
		return errors.Wrapf(errors.ErrInvalidExportFormat, "format %q", string(f))
	}
}

var csvHeader = []string{
	"group", "display_id", "title", "status", "priority", "type",
	"assignee", "due_date", "completion",
}

// WriteCSV renders buckets as flat CSV rows. Subtask titles are indented
// two spaces per level so hierarchy survives the flattening.
func WriteCSV(w io.Writer, buckets []taskview.Bucket, dir *taskview.Directory) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(append([]string{}, csvHeader...)); err != nil {
		return errors.Wrap(err, "failed to write csv header")
	}

	var writeNode func(group string, n *taskview.Node, depth int) error
	writeNode = func(group string, n *taskview.Node, depth int) error {
		row := []string{
			group,
			displayID(n),
			indent(depth) + n.Title,
			n.Status.Label(),
			n.Priority.Label(),
			string(n.Type),
			assigneeName(n, dir),
			dueDate(n.DueDate),
			percent(n.CompletionPercentage),
		}
		if err := cw.Write(row); err != nil {
			return errors.Wrap(err, "failed to write csv row")
		}
		for _, sub := range n.Subtasks {
			if err := writeNode(group, sub, depth+1); err != nil {
				return err
			}
		}
		return nil
	}

	for _, b := range buckets {
		for _, n := range b.Tasks {
			if err := writeNode(b.Label, n, 0); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush csv")
}

func indent(depth int) string {
	return strings.Repeat("  ", depth)
}

func displayID(n *taskview.Node) string {
	if n.DisplayID == 0 {
		return ""
	}
	return strconv.Itoa(n.DisplayID)
}

func assigneeName(n *taskview.Node, dir *taskview.Directory) string {
	if n.AssignedTo == "" {
		return constants.LabelUnassigned
	}
	if name := dir.DisplayName(n.AssignedTo); name != "" {
		return name
	}
	return n.AssignedTo
}

func dueDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func percent(p int) string {
	return strconv.Itoa(p) + "%"
}
