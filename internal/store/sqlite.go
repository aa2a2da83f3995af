package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/mrz1836/opsdeck/internal/clock"
	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id                    TEXT PRIMARY KEY,
	display_id            INTEGER NOT NULL DEFAULT 0,
	parent_task_id        TEXT NOT NULL DEFAULT '',
	title                 TEXT NOT NULL,
	description           TEXT NOT NULL DEFAULT '',
	status                TEXT NOT NULL,
	priority              TEXT NOT NULL DEFAULT '',
	task_type             TEXT NOT NULL DEFAULT '',
	assigned_to           TEXT NOT NULL DEFAULT '',
	due_date              DATETIME,
	task_order            INTEGER NOT NULL DEFAULT 0,
	completion_percentage INTEGER NOT NULL DEFAULT 0,
	created_at            DATETIME NOT NULL,
	updated_at            DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id         TEXT PRIMARY KEY,
	full_name  TEXT NOT NULL,
	role       TEXT NOT NULL DEFAULT '',
	department TEXT NOT NULL DEFAULT ''
);
`

// taskColumns is the column list shared by every task SELECT so scanTask
// stays in sync with the queries.
const taskColumns = `t.id, t.display_id, t.parent_task_id, t.title, t.description,
	t.status, t.priority, t.task_type, t.assigned_to, t.due_date,
	t.task_order, t.completion_percentage, t.created_at, t.updated_at`

// SQLiteStore persists tasks and users in a single SQLite database.
// It implements both TaskStore and DirectoryStore.
type SQLiteStore struct {
	db  *sql.DB
	clk clock.Clock
}

var (
	_ TaskStore      = (*SQLiteStore)(nil)
	_ DirectoryStore = (*SQLiteStore)(nil)
)

// NewSQLiteStore opens (or creates) a SQLite database at dbPath and ensures
// the schema exists. The caller is responsible for calling Close.
func NewSQLiteStore(dbPath string, clk clock.Clock) (*SQLiteStore, error) {
	if dbPath == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "database path")
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database %s", dbPath)
	}
	db.SetMaxOpenConns(1) // prevent SQLITE_BUSY
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}
	return &SQLiteStore{db: db, clk: clk}, nil
}

// Close releases the underlying database connection.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Create persists a new task and sets its ID, DisplayID, CreatedAt, and
// UpdatedAt. A zero DisplayID is replaced with the next free one.
func (s *SQLiteStore) Create(ctx context.Context, task *domain.Task) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if task == nil {
		return "", errors.Wrap(errors.ErrEmptyValue, "failed to create task: task")
	}
	if task.Title == "" {
		return "", errors.Wrap(errors.ErrEmptyValue, "failed to create task: title")
	}

	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := s.clk.Now().UTC()
	task.CreatedAt = now
	task.UpdatedAt = now

	if task.DisplayID == 0 {
		var maxID sql.NullInt64
		if err := s.db.QueryRowContext(ctx, `SELECT MAX(display_id) FROM tasks`).Scan(&maxID); err != nil {
			return "", errors.Wrap(err, "failed to assign display id")
		}
		task.DisplayID = int(maxID.Int64) + 1
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO tasks
			(id, display_id, parent_task_id, title, description, status, priority,
			 task_type, assigned_to, due_date, task_order, completion_percentage,
			 created_at, updated_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		task.ID, task.DisplayID, task.ParentTaskID, task.Title, task.Description,
		string(task.Status), string(task.Priority), string(task.Type),
		task.AssignedTo, nullTime(task.DueDate), task.TaskOrder,
		task.CompletionPercentage, task.CreatedAt, task.UpdatedAt,
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to insert task")
	}
	return task.ID, nil
}

// Get retrieves a task by ID.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.Task, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if id == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "failed to get task: id")
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks t WHERE t.id = ?`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get task")
	}
	return task, nil
}

// List returns tasks matching the query, ordered by task order then
// creation time. Search matching joins the users table so a person's name
// finds their tasks even though tasks only store the user ID.
func (s *SQLiteStore) List(ctx context.Context, q Query) ([]*domain.Task, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + taskColumns + `
		FROM tasks t LEFT JOIN users u ON u.id = t.assigned_to WHERE 1=1`)
	args := []any{}

	if q.Search != "" {
		b.WriteString(" AND (t.title LIKE ? OR t.description LIKE ? OR u.full_name LIKE ?)")
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern, pattern)
	}
	if len(q.Statuses) > 0 {
		b.WriteString(" AND t.status IN (?" + strings.Repeat(",?", len(q.Statuses)-1) + ")")
		for _, st := range q.Statuses {
			args = append(args, string(st))
		}
	}
	if q.DueFrom != nil {
		b.WriteString(" AND t.due_date >= ?")
		args = append(args, *q.DueFrom)
	}
	if q.DueTo != nil {
		b.WriteString(" AND t.due_date <= ?")
		args = append(args, *q.DueTo)
	}
	b.WriteString(" ORDER BY t.task_order ASC, t.created_at ASC")
	if q.Limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.Limit)
		if q.Offset > 0 {
			fmt.Fprintf(&b, " OFFSET %d", q.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tasks")
	}
	defer func() { _ = rows.Close() }()

	var tasks []*domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan task")
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// Update applies a patch to one task, bumping UpdatedAt.
func (s *SQLiteStore) Update(ctx context.Context, id string, p Patch) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if id == "" {
		return errors.Wrap(errors.ErrEmptyValue, "failed to update task: id")
	}
	if p.IsEmpty() {
		return errors.Wrapf(errors.ErrNoFieldsToUpdate, "task %s", id)
	}

	set, args := patchClauses(p, s.clk.Now().UTC())
	args = append(args, id)
	res, err := s.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(set, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return errors.Wrap(err, "failed to update task")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to update task")
	}
	if rows == 0 {
		return errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
	}
	return nil
}

// BulkUpdate applies the same patch to every listed task in a single
// transaction. A missing ID rolls back the whole batch so a partial bulk
// edit is never persisted.
func (s *SQLiteStore) BulkUpdate(ctx context.Context, ids []string, p Patch) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if len(ids) == 0 {
		return errors.Wrap(errors.ErrEmptyValue, "failed to bulk update: ids")
	}
	if p.IsEmpty() {
		return errors.Wrap(errors.ErrNoFieldsToUpdate, "bulk update")
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin bulk update")
	}
	defer func() { _ = tx.Rollback() }()

	set, baseArgs := patchClauses(p, s.clk.Now().UTC())
	stmt := "UPDATE tasks SET " + strings.Join(set, ", ") + " WHERE id = ?"
	for _, id := range ids {
		args := append(append([]any{}, baseArgs...), id)
		res, err := tx.ExecContext(ctx, stmt, args...)
		if err != nil {
			return errors.Wrapf(err, "failed to bulk update task %s", id)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return errors.Wrapf(err, "failed to bulk update task %s", id)
		}
		if rows == 0 {
			return errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
		}
	}
	return errors.Wrap(tx.Commit(), "failed to commit bulk update")
}

// Delete removes a task by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if id == "" {
		return errors.Wrap(errors.ErrEmptyValue, "failed to delete task: id")
	}
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "failed to delete task")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to delete task")
	}
	if rows == 0 {
		return errors.Wrapf(errors.ErrTaskNotFound, "task %s", id)
	}
	return nil
}

// ListUsers returns all known users, ordered by full name.
func (s *SQLiteStore) ListUsers(ctx context.Context) ([]*domain.User, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, full_name, role, department FROM users ORDER BY full_name ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	defer func() { _ = rows.Close() }()

	var users []*domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.FullName, &u.Role, &u.Department); err != nil {
			return nil, errors.Wrap(err, "failed to scan user")
		}
		users = append(users, &u)
	}
	return users, rows.Err()
}

// GetUser retrieves a user by ID.
func (s *SQLiteStore) GetUser(ctx context.Context, id string) (*domain.User, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if id == "" {
		return nil, errors.Wrap(errors.ErrEmptyValue, "failed to get user: id")
	}
	var u domain.User
	err := s.db.QueryRowContext(ctx,
		`SELECT id, full_name, role, department FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.FullName, &u.Role, &u.Department)
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(errors.ErrUserNotFound, "user %s", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user")
	}
	return &u, nil
}

// PutUser inserts or replaces a user record.
func (s *SQLiteStore) PutUser(ctx context.Context, user *domain.User) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if user == nil || user.ID == "" {
		return errors.Wrap(errors.ErrEmptyValue, "failed to put user: id")
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, full_name, role, department) VALUES (?,?,?,?)
		ON CONFLICT(id) DO UPDATE SET
			full_name=excluded.full_name, role=excluded.role, department=excluded.department`,
		user.ID, user.FullName, user.Role, user.Department)
	return errors.Wrap(err, "failed to put user")
}

// patchClauses renders the SET clauses and arguments for the non-nil
// fields of a patch. updated_at is always bumped.
func patchClauses(p Patch, now time.Time) ([]string, []any) {
	var set []string
	var args []any
	add := func(clause string, v any) {
		set = append(set, clause)
		args = append(args, v)
	}

	if p.Title != nil {
		add("title=?", *p.Title)
	}
	if p.Description != nil {
		add("description=?", *p.Description)
	}
	if p.Status != nil {
		add("status=?", string(*p.Status))
	}
	if p.Priority != nil {
		add("priority=?", string(*p.Priority))
	}
	if p.Type != nil {
		add("task_type=?", string(*p.Type))
	}
	if p.AssignedTo != nil {
		add("assigned_to=?", *p.AssignedTo)
	}
	switch {
	case p.ClearDueDate:
		set = append(set, "due_date=NULL")
	case p.DueDate != nil:
		add("due_date=?", *p.DueDate)
	}
	if p.TaskOrder != nil {
		add("task_order=?", *p.TaskOrder)
	}
	if p.CompletionPercentage != nil {
		add("completion_percentage=?", *p.CompletionPercentage)
	}
	if p.ParentTaskID != nil {
		add("parent_task_id=?", *p.ParentTaskID)
	}
	add("updated_at=?", now)
	return set, args
}

// scanner abstracts sql.Row and sql.Rows for scanTask.
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (*domain.Task, error) {
	var t domain.Task
	var status, priority, taskType string
	var dueDate sql.NullTime

	err := s.Scan(
		&t.ID, &t.DisplayID, &t.ParentTaskID, &t.Title, &t.Description,
		&status, &priority, &taskType, &t.AssignedTo, &dueDate,
		&t.TaskOrder, &t.CompletionPercentage, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Status = constants.TaskStatus(status)
	t.Priority = constants.TaskPriority(priority)
	t.Type = constants.TaskType(taskType)
	if dueDate.Valid {
		d := dueDate.Time
		t.DueDate = &d
	}
	return &t, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
