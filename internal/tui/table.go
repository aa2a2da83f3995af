package tui

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/taskview"
)

// Tree drawing characters used for subtask rows.
const (
	treeBranch     = "├─ "
	treeLastBranch = "└─ "
)

// Group header markers show collapse state.
const (
	markerExpanded  = "▾"
	markerCollapsed = "▸"
)

// DefaultTerminalWidth is used when terminal width cannot be determined.
const DefaultTerminalWidth = 80

// minTitleWidth keeps the title column readable when the terminal is
// narrow; other columns shrink before the title does.
const minTitleWidth = 16

// BoardTable renders grouped task buckets as a bordered-free text table
// with one header line per group. Collapsed groups render as a single
// summary line.
type BoardTable struct {
	buckets   []taskview.Bucket
	dir       *taskview.Directory
	styles    *TableStyles
	collapsed func(label string) bool
	width     int
	now       time.Time
}

// BoardTableOption is a functional option for BoardTable configuration.
type BoardTableOption func(*BoardTable)

// WithWidth forces a rendering width instead of detecting the terminal.
func WithWidth(width int) BoardTableOption {
	return func(t *BoardTable) {
		if width > 0 {
			t.width = width
		}
	}
}

// WithCollapsed supplies the collapse predicate for group labels.
func WithCollapsed(isCollapsed func(label string) bool) BoardTableOption {
	return func(t *BoardTable) { t.collapsed = isCollapsed }
}

// WithNow sets the reference time used for overdue highlighting.
func WithNow(now time.Time) BoardTableOption {
	return func(t *BoardTable) { t.now = now }
}

// NewBoardTable creates a board table for the buckets. Terminal width is
// detected unless WithWidth overrides it.
func NewBoardTable(buckets []taskview.Bucket, dir *taskview.Directory, opts ...BoardTableOption) *BoardTable {
	t := &BoardTable{
		buckets:   buckets,
		dir:       dir,
		styles:    NewTableStyles(),
		collapsed: func(string) bool { return false },
		width:     detectTerminalWidth(),
		now:       time.Now(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// detectTerminalWidth returns the current terminal width, or the default
// when detection fails.
func detectTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultTerminalWidth
	}
	return width
}

// columnWidths holds the resolved width for each board column.
type columnWidths struct {
	id       int
	title    int
	status   int
	priority int
	assignee int
	due      int
	done     int
}

// Render writes the board to w.
func (t *BoardTable) Render(w io.Writer) error {
	widths := t.calculateColumnWidths()

	header := strings.Join([]string{
		padCell("ID", widths.id),
		padCell("TITLE", widths.title),
		padCell("STATUS", widths.status),
		padCell("PRIORITY", widths.priority),
		padCell("ASSIGNEE", widths.assignee),
		padCell("DUE", widths.due),
		padCell("DONE", widths.done),
	}, "  ")
	if _, err := fmt.Fprintln(w, t.styles.Header.Render(header)); err != nil {
		return err
	}

	for _, bucket := range t.buckets {
		if err := t.renderBucket(w, bucket, widths); err != nil {
			return err
		}
	}
	return nil
}

// renderBucket writes one group header plus its rows, or just the summary
// line when the group is collapsed.
func (t *BoardTable) renderBucket(w io.Writer, bucket taskview.Bucket, widths columnWidths) error {
	count := countTasks(bucket.Tasks)

	if t.collapsed(bucket.Label) {
		line := fmt.Sprintf("%s %s (%d)", markerCollapsed, bucket.Label, count)
		_, err := fmt.Fprintln(w, t.styles.Group.Render(line))
		return err
	}

	line := fmt.Sprintf("%s %s (%d)", markerExpanded, bucket.Label, count)
	if _, err := fmt.Fprintln(w, t.styles.Group.Render(line)); err != nil {
		return err
	}

	for _, n := range bucket.Tasks {
		if err := t.renderNode(w, n, "", widths); err != nil {
			return err
		}
	}
	return nil
}

// renderNode writes one task row and recurses into its subtasks with tree
// prefixes.
func (t *BoardTable) renderNode(w io.Writer, n *taskview.Node, prefix string, widths columnWidths) error {
	title := prefix + n.Title
	if len(prefix) > 0 {
		title = t.styles.Dim.Render(prefix) + n.Title
	}

	statusPlain := FormatStatus(n.Status)
	statusCell := styledCell(StatusStyle(n.Status).Render(statusPlain), statusPlain, widths.status)

	priorityPlain := priorityText(n.Priority)
	priorityCell := styledCell(PriorityStyle(n.Priority).Render(priorityPlain), priorityPlain, widths.priority)

	dueCellPlain := t.dueText(n)
	dueCell := padCell(dueCellPlain, widths.due)
	if n.IsOverdue(t.now) && HasColorSupport() {
		styled := StyleBold.Foreground(ColorWarning).Render(dueCellPlain)
		dueCell = styledCell(styled, dueCellPlain, widths.due)
	}

	titlePlainWidth := runewidth.StringWidth(prefix + n.Title)
	titleCell := title
	if titlePlainWidth > widths.title {
		titleCell = runewidth.Truncate(prefix+n.Title, widths.title, "…")
		titlePlainWidth = runewidth.StringWidth(titleCell)
	}
	if titlePlainWidth < widths.title {
		titleCell += strings.Repeat(" ", widths.title-titlePlainWidth)
	}

	row := strings.Join([]string{
		padCell(displayIDText(n), widths.id),
		titleCell,
		statusCell,
		priorityCell,
		padCell(truncate(t.assigneeText(n), widths.assignee), widths.assignee),
		dueCell,
		padCell(strconv.Itoa(n.CompletionPercentage)+"%", widths.done),
	}, "  ")
	if _, err := fmt.Fprintln(w, row); err != nil {
		return err
	}

	for i, sub := range n.Subtasks {
		subPrefix := treeBranch
		if i == len(n.Subtasks)-1 {
			subPrefix = treeLastBranch
		}
		if err := t.renderNode(w, sub, subPrefix, widths); err != nil {
			return err
		}
	}
	return nil
}

// calculateColumnWidths sizes fixed columns by content and gives the title
// the remaining terminal width.
func (t *BoardTable) calculateColumnWidths() columnWidths {
	widths := columnWidths{
		id:       runewidth.StringWidth("ID"),
		title:    runewidth.StringWidth("TITLE"),
		status:   runewidth.StringWidth("STATUS"),
		priority: runewidth.StringWidth("PRIORITY"),
		assignee: runewidth.StringWidth("ASSIGNEE"),
		due:      runewidth.StringWidth("2006-01-02"),
		done:     runewidth.StringWidth("100%"),
	}

	var walk func(ns []*taskview.Node, depth int)
	walk = func(ns []*taskview.Node, depth int) {
		for _, n := range ns {
			grow(&widths.id, displayIDText(n))
			grow(&widths.status, FormatStatus(n.Status))
			grow(&widths.priority, priorityText(n.Priority))
			grow(&widths.assignee, t.assigneeText(n))
			grow(&widths.title, strings.Repeat("   ", depth)+n.Title)
			walk(n.Subtasks, depth+1)
		}
	}
	for _, b := range t.buckets {
		walk(b.Tasks, 0)
	}

	// Six separators of two spaces each.
	const separators = 12
	fixed := widths.id + widths.status + widths.priority + widths.assignee + widths.due + widths.done + separators
	available := t.width - fixed
	switch {
	case available < minTitleWidth:
		widths.title = minTitleWidth
	case widths.title > available:
		widths.title = available
	}

	// Assignee shrinks on narrow terminals before the title floor kicks in.
	if overflow := fixed + widths.title - t.width; overflow > 0 && widths.assignee > 10 {
		reduction := min(overflow, widths.assignee-10)
		widths.assignee -= reduction
	}

	return widths
}

func (t *BoardTable) assigneeText(n *taskview.Node) string {
	if n.AssignedTo == "" {
		return constants.LabelUnassigned
	}
	if name := t.dir.DisplayName(n.AssignedTo); name != "" {
		return name
	}
	return n.AssignedTo
}

func (t *BoardTable) dueText(n *taskview.Node) string {
	if n.DueDate == nil {
		return "—"
	}
	return n.DueDate.Format("2006-01-02")
}

func displayIDText(n *taskview.Node) string {
	if n.DisplayID == 0 {
		return "—"
	}
	return "#" + strconv.Itoa(n.DisplayID)
}

func priorityText(p constants.TaskPriority) string {
	if p == "" {
		return "—"
	}
	return p.Label()
}

func countTasks(ns []*taskview.Node) int {
	total := 0
	for _, n := range ns {
		total += 1 + countTasks(n.Subtasks)
	}
	return total
}

// grow widens *w to fit s if needed.
func grow(w *int, s string) {
	if width := runewidth.StringWidth(s); width > *w {
		*w = width
	}
}

// truncate shortens s to the given display width with an ellipsis.
func truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "…")
}

// padCell pads s to the given display width, truncating when necessary.
func padCell(s string, width int) string {
	s = runewidth.Truncate(s, width, "…")
	if gap := width - runewidth.StringWidth(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// styledCell pads a styled string using the plain text for width math so
// ANSI escape codes never skew alignment.
func styledCell(styled, plain string, width int) string {
	plainWidth := runewidth.StringWidth(plain)
	if plainWidth >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-plainWidth)
}
