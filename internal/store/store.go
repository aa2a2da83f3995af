// Package store provides task and user persistence for the opsdeck console.
// The canonical implementation is SQLite-backed; the view engine only ever
// sees the flat task collection a store returns.
package store

import (
	"context"
	"time"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

// Query narrows a List call before the view pipeline runs. All fields are
// optional; the zero value matches every task. Search matches title,
// description, and the assignee's full name, case-insensitively.
type Query struct {
	Search   string
	Statuses []constants.TaskStatus
	DueFrom  *time.Time
	DueTo    *time.Time
	Limit    int
	Offset   int
}

// Patch describes a partial task update. Nil fields are left untouched.
// ClearDueDate removes an existing due date; it wins over DueDate when
// both are set.
type Patch struct {
	Title                *string
	Description          *string
	Status               *constants.TaskStatus
	Priority             *constants.TaskPriority
	Type                 *constants.TaskType
	AssignedTo           *string
	DueDate              *time.Time
	ClearDueDate         bool
	TaskOrder            *int
	CompletionPercentage *int
	ParentTaskID         *string
}

// IsEmpty reports whether the patch would change nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Type == nil && p.AssignedTo == nil &&
		p.DueDate == nil && !p.ClearDueDate && p.TaskOrder == nil &&
		p.CompletionPercentage == nil && p.ParentTaskID == nil
}

// TaskStore defines the interface for task persistence operations.
type TaskStore interface {
	// Create persists a new task, assigning its ID, display ID, and
	// timestamps. Returns the assigned ID.
	Create(ctx context.Context, task *domain.Task) (string, error)

	// Get retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Get(ctx context.Context, id string) (*domain.Task, error)

	// List returns tasks matching the query, ordered by task order then
	// creation time.
	List(ctx context.Context, q Query) ([]*domain.Task, error)

	// Update applies a patch to one task, bumping UpdatedAt.
	// Returns ErrNoFieldsToUpdate for an empty patch and ErrTaskNotFound
	// if the task does not exist.
	Update(ctx context.Context, id string, p Patch) error

	// BulkUpdate applies the same patch to every listed task in a single
	// transaction. Any missing ID aborts the whole batch.
	BulkUpdate(ctx context.Context, ids []string, p Patch) error

	// Delete removes a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id string) error
}

// DirectoryStore defines the interface for user lookup operations.
type DirectoryStore interface {
	// ListUsers returns all known users, ordered by full name.
	ListUsers(ctx context.Context) ([]*domain.User, error)

	// GetUser retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetUser(ctx context.Context, id string) (*domain.User, error)

	// PutUser inserts or replaces a user record.
	PutUser(ctx context.Context, user *domain.User) error
}
