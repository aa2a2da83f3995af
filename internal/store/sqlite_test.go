package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/opsdeck/internal/clock"
	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/errors"
)

var storeNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "tasks.db"), clock.FixedClock{Time: storeNow})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func mustCreate(t *testing.T, s *SQLiteStore, task *domain.Task) string {
	t.Helper()
	id, err := s.Create(context.Background(), task)
	require.NoError(t, err)
	return id
}

func TestSQLiteStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	due := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	id := mustCreate(t, s, &domain.Task{
		Title:       "Reconcile courier invoices",
		Description: "March batch",
		Status:      constants.TaskStatusInProgress,
		Priority:    constants.TaskPriorityHigh,
		Type:        constants.TaskTypeOneOff,
		AssignedTo:  "u-amy",
		DueDate:     &due,
	})
	require.NotEmpty(t, id)

	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Reconcile courier invoices", got.Title)
	assert.Equal(t, constants.TaskStatusInProgress, got.Status)
	assert.Equal(t, constants.TaskPriorityHigh, got.Priority)
	assert.Equal(t, "u-amy", got.AssignedTo)
	require.NotNil(t, got.DueDate)
	assert.True(t, got.DueDate.Equal(due))
	assert.Equal(t, storeNow, got.CreatedAt.UTC())
}

func TestSQLiteStore_AssignsSequentialDisplayIDs(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	first := mustCreate(t, s, &domain.Task{Title: "first", Status: constants.TaskStatusPending})
	second := mustCreate(t, s, &domain.Task{Title: "second", Status: constants.TaskStatusPending})

	a, err := s.Get(ctx, first)
	require.NoError(t, err)
	b, err := s.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 1, a.DisplayID)
	assert.Equal(t, 2, b.DisplayID)
}

func TestSQLiteStore_GetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "no-such-task")
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)
}

func TestSQLiteStore_CreateRequiresTitle(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Create(context.Background(), &domain.Task{Status: constants.TaskStatusPending})
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrEmptyValue)
}

func TestSQLiteStore_Update(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustCreate(t, s, &domain.Task{Title: "before", Status: constants.TaskStatusPending})

	t.Run("patches only named fields", func(t *testing.T) {
		title := "after"
		status := constants.TaskStatusApproved
		require.NoError(t, s.Update(ctx, id, Patch{Title: &title, Status: &status}))

		got, err := s.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Title)
		assert.Equal(t, constants.TaskStatusApproved, got.Status)
	})

	t.Run("empty patch rejected", func(t *testing.T) {
		err := s.Update(ctx, id, Patch{})
		assert.ErrorIs(t, err, errors.ErrNoFieldsToUpdate)
	})

	t.Run("missing task", func(t *testing.T) {
		title := "x"
		err := s.Update(ctx, "no-such-task", Patch{Title: &title})
		assert.ErrorIs(t, err, errors.ErrTaskNotFound)
	})
}

func TestSQLiteStore_ClearDueDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	id := mustCreate(t, s, &domain.Task{Title: "dated", Status: constants.TaskStatusPending, DueDate: &due})

	require.NoError(t, s.Update(ctx, id, Patch{ClearDueDate: true}))
	got, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, got.DueDate)
}

func TestSQLiteStore_BulkUpdate(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	a := mustCreate(t, s, &domain.Task{Title: "a", Status: constants.TaskStatusPending})
	b := mustCreate(t, s, &domain.Task{Title: "b", Status: constants.TaskStatusPending})

	t.Run("applies patch to all ids", func(t *testing.T) {
		status := constants.TaskStatusDoneAutoApproved
		require.NoError(t, s.BulkUpdate(ctx, []string{a, b}, Patch{Status: &status}))

		for _, id := range []string{a, b} {
			got, err := s.Get(ctx, id)
			require.NoError(t, err)
			assert.Equal(t, constants.TaskStatusDoneAutoApproved, got.Status)
		}
	})

	t.Run("missing id rolls back the batch", func(t *testing.T) {
		status := constants.TaskStatusPending
		err := s.BulkUpdate(ctx, []string{a, "no-such-task"}, Patch{Status: &status})
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrTaskNotFound)

		got, err := s.Get(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, constants.TaskStatusDoneAutoApproved, got.Status)
	})
}

func TestSQLiteStore_Delete(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	id := mustCreate(t, s, &domain.Task{Title: "doomed", Status: constants.TaskStatusPending})

	require.NoError(t, s.Delete(ctx, id))
	_, err := s.Get(ctx, id)
	assert.ErrorIs(t, err, errors.ErrTaskNotFound)

	assert.ErrorIs(t, s.Delete(ctx, id), errors.ErrTaskNotFound)
}

func TestSQLiteStore_List(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.PutUser(ctx, &domain.User{ID: "u-amy", FullName: "Amy Okafor"}))

	march := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC)
	mustCreate(t, s, &domain.Task{Title: "Reconcile invoices", Status: constants.TaskStatusPending, AssignedTo: "u-amy", DueDate: &march, TaskOrder: 1})
	mustCreate(t, s, &domain.Task{Title: "Ship fixtures", Status: constants.TaskStatusInProgress, DueDate: &april, TaskOrder: 2})
	mustCreate(t, s, &domain.Task{Title: "Archive logs", Status: constants.TaskStatusDoneAutoApproved, TaskOrder: 3})

	t.Run("zero query matches everything in task order", func(t *testing.T) {
		tasks, err := s.List(ctx, Query{})
		require.NoError(t, err)
		require.Len(t, tasks, 3)
		assert.Equal(t, "Reconcile invoices", tasks[0].Title)
		assert.Equal(t, "Archive logs", tasks[2].Title)
	})

	t.Run("search matches title", func(t *testing.T) {
		tasks, err := s.List(ctx, Query{Search: "fixtures"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Ship fixtures", tasks[0].Title)
	})

	t.Run("search matches assignee full name", func(t *testing.T) {
		tasks, err := s.List(ctx, Query{Search: "Okafor"})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Reconcile invoices", tasks[0].Title)
	})

	t.Run("status narrowing", func(t *testing.T) {
		tasks, err := s.List(ctx, Query{Statuses: []constants.TaskStatus{
			constants.TaskStatusPending, constants.TaskStatusInProgress,
		}})
		require.NoError(t, err)
		assert.Len(t, tasks, 2)
	})

	t.Run("due date range excludes undated", func(t *testing.T) {
		from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		tasks, err := s.List(ctx, Query{DueFrom: &from, DueTo: &to})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Reconcile invoices", tasks[0].Title)
	})

	t.Run("limit and offset", func(t *testing.T) {
		tasks, err := s.List(ctx, Query{Limit: 1, Offset: 1})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, "Ship fixtures", tasks[0].Title)
	})
}

func TestSQLiteStore_Users(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	require.NoError(t, s.PutUser(ctx, &domain.User{ID: "u-bob", FullName: "Bob Tran", Role: "courier"}))
	require.NoError(t, s.PutUser(ctx, &domain.User{ID: "u-amy", FullName: "Amy Okafor", Role: "ops"}))

	t.Run("list ordered by full name", func(t *testing.T) {
		users, err := s.ListUsers(ctx)
		require.NoError(t, err)
		require.Len(t, users, 2)
		assert.Equal(t, "Amy Okafor", users[0].FullName)
		assert.Equal(t, "Bob Tran", users[1].FullName)
	})

	t.Run("put replaces existing", func(t *testing.T) {
		require.NoError(t, s.PutUser(ctx, &domain.User{ID: "u-bob", FullName: "Bob Tran", Role: "dispatch"}))
		u, err := s.GetUser(ctx, "u-bob")
		require.NoError(t, err)
		assert.Equal(t, "dispatch", u.Role)
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := s.GetUser(ctx, "no-such-user")
		assert.ErrorIs(t, err, errors.ErrUserNotFound)
	})
}

func TestSQLiteStore_CanceledContext(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.List(ctx, Query{})
	assert.ErrorIs(t, err, context.Canceled)
}
