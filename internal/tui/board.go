package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrz1836/opsdeck/internal/clock"
	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/taskview"
	"github.com/mrz1836/opsdeck/internal/viewstate"
)

// BoardLoader fetches the task collection and the user directory for a
// board refresh.
type BoardLoader func(ctx context.Context) ([]*domain.Task, []*domain.User, error)

// boardDataMsg carries refreshed data into the model.
type boardDataMsg struct {
	tasks []*domain.Task
	users []*domain.User
	err   error
}

// BoardModel is the Bubble Tea model for the interactive board.
// It implements tea.Model (Init, Update, View).
type BoardModel struct {
	load     BoardLoader
	collapse *viewstate.CollapseStore
	prefs    *viewstate.PrefsStore
	clk      clock.Clock

	state   viewstate.ViewState
	tasks   []*domain.Task
	dir     *taskview.Directory
	buckets []taskview.Bucket

	cursor   int
	spinner  spinner.Model
	loading  bool
	quitting bool
	err      error
	width    int

	// baseCtx is stored for use in async Bubble Tea commands.
	baseCtx context.Context //nolint:containedctx // Required for Bubble Tea async commands
}

// NewBoardModel creates the board model. The initial view state should come
// from the prefs store so the board reopens the way the user left it.
func NewBoardModel(ctx context.Context, load BoardLoader, collapse *viewstate.CollapseStore, prefs *viewstate.PrefsStore, initial viewstate.ViewState, clk clock.Clock) *BoardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &BoardModel{
		load:     load,
		collapse: collapse,
		prefs:    prefs,
		clk:      clk,
		state:    initial.Normalize(),
		spinner:  s,
		loading:  true,
		width:    DefaultTerminalWidth,
		baseCtx:  ctx,
	}
}

// Init starts the spinner and the initial data load.
func (m *BoardModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.refresh())
}

// refresh loads tasks and users asynchronously.
func (m *BoardModel) refresh() tea.Cmd {
	return func() tea.Msg {
		tasks, users, err := m.load(m.baseCtx)
		return boardDataMsg{tasks: tasks, users: users, err: err}
	}
}

// Update handles messages and returns the updated model and any commands.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case boardDataMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.tasks
		m.dir = taskview.NewDirectory(msg.users)
		m.rebuild()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey processes a key press.
func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "r":
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.refresh())

	case "tab", "right":
		m.state.ActiveTab = nextTab(m.state.ActiveTab, 1)
		m.savePrefs()
		m.rebuild()
		return m, nil

	case "shift+tab", "left":
		m.state.ActiveTab = nextTab(m.state.ActiveTab, -1)
		m.savePrefs()
		m.rebuild()
		return m, nil

	case "s":
		m.state.SortField = nextSortField(m.state.SortField)
		m.savePrefs()
		m.rebuild()
		return m, nil

	case "d":
		if m.state.SortDirection == constants.SortAsc {
			m.state.SortDirection = constants.SortDesc
		} else {
			m.state.SortDirection = constants.SortAsc
		}
		m.savePrefs()
		m.rebuild()
		return m, nil

	case "g":
		m.state.GroupBy = nextGroupKey(m.state.GroupBy)
		m.savePrefs()
		m.rebuild()
		return m, nil

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.buckets)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", " ":
		if m.cursor < len(m.buckets) {
			label := m.buckets[m.cursor].Label
			// Persisted write-through; a failed write still flips the
			// in-memory state so the UI stays responsive.
			_, _ = m.collapse.Toggle(m.baseCtx, label)
		}
		return m, nil
	}

	return m, nil
}

// rebuild reruns the view pipeline against the current tasks and state.
func (m *BoardModel) rebuild() {
	m.buckets = taskview.Pipeline(m.tasks, taskview.Options{
		Tab:           m.state.ActiveTab,
		SortField:     m.state.SortField,
		SortDirection: m.state.SortDirection,
		GroupBy:       m.state.GroupBy,
	}, taskview.Criteria{}, m.dir, m.clk.Now())
	if m.cursor >= len(m.buckets) {
		m.cursor = 0
	}
}

// savePrefs writes the view state through; persistence failures never
// block interaction.
func (m *BoardModel) savePrefs() {
	_ = m.prefs.Save(m.baseCtx, m.state)
}

// View renders the current state to a string.
func (m *BoardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(m.spinner.View() + " Loading tasks...\n")
	case m.err != nil:
		b.WriteString(fmt.Sprintf("Error: %v\n", m.err))
	case len(m.buckets) == 0:
		b.WriteString("No tasks match this view.\n")
	default:
		table := NewBoardTable(m.buckets, m.dir,
			WithWidth(m.width),
			WithCollapsed(m.collapse.IsCollapsed),
			WithNow(m.clk.Now()))
		_ = table.Render(&b)
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderTabs draws the tab bar with the active tab highlighted.
func (m *BoardModel) renderTabs() string {
	parts := make([]string, 0, len(constants.ValidTabs()))
	for _, tab := range constants.ValidTabs() {
		label := TabLabel(tab)
		if tab == m.state.ActiveTab {
			parts = append(parts, StyleBold.Foreground(ColorPrimary).Render("["+label+"]"))
		} else {
			parts = append(parts, StyleDim.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

// renderFooter shows the active sort and grouping plus key help.
func (m *BoardModel) renderFooter() string {
	info := fmt.Sprintf("sort: %s %s  group: %s",
		SortLabel(m.state.SortField), m.state.SortDirection, GroupLabel(m.state.GroupBy))
	help := "tab: switch  s: sort  d: direction  g: group  enter: collapse  r: refresh  q: quit"
	return StyleDim.Render(info + "\n" + help)
}

// nextTab cycles through the tabs in declaration order.
func nextTab(current constants.Tab, step int) constants.Tab {
	tabs := constants.ValidTabs()
	for i, tab := range tabs {
		if tab == current {
			return tabs[(i+step+len(tabs))%len(tabs)]
		}
	}
	return tabs[0]
}

// nextSortField cycles through the sort fields in declaration order.
func nextSortField(current constants.SortField) constants.SortField {
	fields := constants.ValidSortFields()
	for i, f := range fields {
		if f == current {
			return fields[(i+1)%len(fields)]
		}
	}
	return fields[0]
}

// nextGroupKey cycles through the group keys in declaration order.
func nextGroupKey(current constants.GroupKey) constants.GroupKey {
	keys := constants.ValidGroupKeys()
	for i, k := range keys {
		if k == current {
			return keys[(i+1)%len(keys)]
		}
	}
	return keys[0]
}

// Buckets exposes the current buckets for tests.
func (m *BoardModel) Buckets() []taskview.Bucket {
	return m.buckets
}

// State exposes the current view state for tests.
func (m *BoardModel) State() viewstate.ViewState {
	return m.state
}

// Ensure BoardModel implements tea.Model.
var _ tea.Model = (*BoardModel)(nil)

// RunBoard starts the interactive board program and blocks until exit.
func RunBoard(ctx context.Context, load BoardLoader, collapse *viewstate.CollapseStore, prefs *viewstate.PrefsStore, initial viewstate.ViewState, clk clock.Clock) error {
	model := NewBoardModel(ctx, load, collapse, prefs, initial, clk)
	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
