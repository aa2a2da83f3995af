package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/clock"
	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/viewstate"
)

// boardNow anchors the board tests in fixed time.
var boardNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC) //nolint:gochecknoglobals // test fixture

func boardTasks() []*domain.Task {
	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	return []*domain.Task{
		{
			ID:        "t-1",
			DisplayID: 1,
			Title:     "Reconcile invoices",
			Status:    constants.TaskStatusInProgress,
			Priority:  constants.TaskPriorityHigh,
			DueDate:   &due,
		},
		{
			ID:        "t-2",
			DisplayID: 2,
			Title:     "Sweep loading dock",
			Status:    constants.TaskStatusPending,
			Priority:  constants.TaskPriorityLow,
		},
	}
}

// newTestBoard builds a loaded board model over an in-memory KV.
func newTestBoard(t *testing.T) (*BoardModel, viewstate.KV) {
	t.Helper()

	kv := viewstate.NewMemoryKV()
	collapse := viewstate.NewCollapseStore(kv, zerolog.Nop())
	require.NoError(t, collapse.Load(context.Background()))
	prefs := viewstate.NewPrefsStore(kv, zerolog.Nop())

	load := func(_ context.Context) ([]*domain.Task, []*domain.User, error) {
		return boardTasks(), []*domain.User{{ID: "u-amy", FullName: "Amy Okafor"}}, nil
	}

	m := NewBoardModel(context.Background(), load, collapse, prefs, viewstate.Default(), clock.FixedClock{Time: boardNow})

	// Deliver the initial load directly instead of running the program.
	updated, _ := m.Update(m.refresh()())
	board, ok := updated.(*BoardModel)
	require.True(t, ok)

	// Widen the window so full titles fit in the TITLE column.
	updated, _ = board.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	board, ok = updated.(*BoardModel)
	require.True(t, ok)
	return board, kv
}

func pressKey(t *testing.T, m *BoardModel, key string) *BoardModel {
	t.Helper()

	var msg tea.KeyMsg
	switch key {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}

	updated, _ := m.Update(msg)
	board, ok := updated.(*BoardModel)
	require.True(t, ok)
	return board
}

// TestBoardModel_InitialLoad verifies the pipeline runs after the data
// message arrives.
func TestBoardModel_InitialLoad(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)

	require.Len(t, m.Buckets(), 1)
	assert.Equal(t, constants.LabelAllTasks, m.Buckets()[0].Label)

	view := m.View()
	assert.Contains(t, view, "Reconcile invoices")
	assert.Contains(t, view, "Sweep loading dock")
	assert.Contains(t, view, "[Todo]")
}

// TestBoardModel_TabCycling verifies tab keys move through the tab ring
// and persist the choice.
func TestBoardModel_TabCycling(t *testing.T) {
	t.Parallel()

	m, kv := newTestBoard(t)

	m = pressKey(t, m, "tab")
	assert.Equal(t, constants.TabUnderReview, m.State().ActiveTab)

	m = pressKey(t, m, "shift+tab")
	assert.Equal(t, constants.TabTodo, m.State().ActiveTab)

	m = pressKey(t, m, "tab")

	// A fresh prefs store sees the persisted tab.
	reloaded, err := viewstate.NewPrefsStore(kv, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constants.TabUnderReview, reloaded.ActiveTab)
}

// TestBoardModel_SortAndGroupCycling verifies the sort, direction, and
// group keys advance and persist.
func TestBoardModel_SortAndGroupCycling(t *testing.T) {
	t.Parallel()

	m, kv := newTestBoard(t)
	require.Equal(t, constants.SortFieldDueDate, m.State().SortField)

	m = pressKey(t, m, "s")
	assert.Equal(t, constants.SortFieldTaskID, m.State().SortField)

	m = pressKey(t, m, "d")
	assert.Equal(t, constants.SortDesc, m.State().SortDirection)
	m = pressKey(t, m, "d")
	assert.Equal(t, constants.SortAsc, m.State().SortDirection)

	m = pressKey(t, m, "g")
	assert.Equal(t, constants.GroupPriority, m.State().GroupBy)

	reloaded, err := viewstate.NewPrefsStore(kv, zerolog.Nop()).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, constants.SortFieldTaskID, reloaded.SortField)
	assert.Equal(t, constants.GroupPriority, reloaded.GroupBy)
}

// TestBoardModel_GroupingRebuildsBuckets verifies the g key regroups the
// visible tasks.
func TestBoardModel_GroupingRebuildsBuckets(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)
	m = pressKey(t, m, "g")

	labels := make([]string, 0, len(m.Buckets()))
	for _, b := range m.Buckets() {
		labels = append(labels, b.Label)
	}
	assert.Equal(t, []string{"High Priority", "Low Priority"}, labels)
}

// TestBoardModel_CollapseToggle verifies enter collapses the selected
// group and the state persists across stores.
func TestBoardModel_CollapseToggle(t *testing.T) {
	t.Parallel()

	m, kv := newTestBoard(t)
	m = pressKey(t, m, "enter")

	view := m.View()
	assert.Contains(t, view, "▸ "+constants.LabelAllTasks)
	assert.NotContains(t, view, "Reconcile invoices")

	fresh := viewstate.NewCollapseStore(kv, zerolog.Nop())
	require.NoError(t, fresh.Load(context.Background()))
	assert.True(t, fresh.IsCollapsed(constants.LabelAllTasks))
}

// TestBoardModel_Quit verifies q issues a quit command.
func TestBoardModel_Quit(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())

	board, ok := updated.(*BoardModel)
	require.True(t, ok)
	assert.Empty(t, board.View())
}

// TestBoardModel_LoadError verifies a failed load surfaces in the view.
func TestBoardModel_LoadError(t *testing.T) {
	t.Parallel()

	kv := viewstate.NewMemoryKV()
	collapse := viewstate.NewCollapseStore(kv, zerolog.Nop())
	prefs := viewstate.NewPrefsStore(kv, zerolog.Nop())
	load := func(_ context.Context) ([]*domain.Task, []*domain.User, error) {
		return nil, nil, assert.AnError
	}

	m := NewBoardModel(context.Background(), load, collapse, prefs, viewstate.Default(), clock.FixedClock{Time: boardNow})
	updated, _ := m.Update(m.refresh()())
	board, ok := updated.(*BoardModel)
	require.True(t, ok)
	assert.Contains(t, board.View(), "Error:")
}

// TestBoardModel_WindowResize verifies width updates flow into rendering.
func TestBoardModel_WindowResize(t *testing.T) {
	t.Parallel()

	m, _ := newTestBoard(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	board, ok := updated.(*BoardModel)
	require.True(t, ok)
	assert.Equal(t, 120, board.width)
}
