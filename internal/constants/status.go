package constants

// TaskStatus represents the lifecycle state of a task as reported by the
// task store. Status values use snake_case for JSON serialization
// compatibility with the hosted backend.
type TaskStatus string

// Task status constants define the valid states a task can be in.
const (
	// TaskStatusPending indicates a task has been created but not started.
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusInProgress indicates a task is actively being worked on.
	TaskStatusInProgress TaskStatus = "in_progress"

	// TaskStatusSubmittedForReview indicates the assignee submitted the task
	// and it is waiting for a reviewer.
	TaskStatusSubmittedForReview TaskStatus = "submitted_for_review"

	// TaskStatusApproved indicates a reviewer accepted the submitted work.
	TaskStatusApproved TaskStatus = "approved"

	// TaskStatusRejected indicates a reviewer sent the task back.
	TaskStatusRejected TaskStatus = "rejected"

	// TaskStatusDoneAutoApproved indicates the task completed without review
	// and has been archived.
	TaskStatusDoneAutoApproved TaskStatus = "done_auto_approved"

	// TaskStatusIncomplete indicates the task passed its due date without
	// being finished.
	TaskStatusIncomplete TaskStatus = "incomplete"
)

// ValidTaskStatuses returns all valid task status values.
func ValidTaskStatuses() []TaskStatus {
	return []TaskStatus{
		TaskStatusPending,
		TaskStatusInProgress,
		TaskStatusSubmittedForReview,
		TaskStatusApproved,
		TaskStatusRejected,
		TaskStatusDoneAutoApproved,
		TaskStatusIncomplete,
	}
}

// IsValid checks if the status is a known value. Unknown values are still
// carried through the view pipeline and rendered in an "Unknown" bucket
// rather than rejected, so new backend statuses degrade gracefully.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusSubmittedForReview,
		TaskStatusApproved, TaskStatusRejected, TaskStatusDoneAutoApproved,
		TaskStatusIncomplete:
		return true
	default:
		return false
	}
}

// String returns the string representation of the TaskStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s TaskStatus) String() string {
	return string(s)
}

// Label returns the human-readable display label for the status.
// Unknown statuses map to "Unknown Status".
func (s TaskStatus) Label() string {
	switch s {
	case TaskStatusPending:
		return "Pending"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusSubmittedForReview:
		return "Under Review"
	case TaskStatusApproved:
		return "Completed"
	case TaskStatusRejected:
		return "Rejected"
	case TaskStatusDoneAutoApproved:
		return "Done"
	case TaskStatusIncomplete:
		return "Incomplete"
	default:
		return "Unknown Status"
	}
}

// TaskPriority represents the priority level of a task.
type TaskPriority string

// Task priority constants define the valid priority levels.
const (
	// TaskPriorityLow is the lowest priority level.
	TaskPriorityLow TaskPriority = "low"

	// TaskPriorityMedium is the default priority level.
	TaskPriorityMedium TaskPriority = "medium"

	// TaskPriorityHigh is the highest priority level.
	TaskPriorityHigh TaskPriority = "high"
)

// ValidTaskPriorities returns all valid priority values.
func ValidTaskPriorities() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh}
}

// IsValid checks if the priority is a known value.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the TaskPriority.
func (p TaskPriority) String() string {
	return string(p)
}

// Ordinal returns the sort weight for the priority: high sorts above medium,
// medium above low. Unrecognized priorities get weight 0 so they sort first
// in ascending order instead of breaking the sort.
func (p TaskPriority) Ordinal() int {
	switch p {
	case TaskPriorityHigh:
		return 3
	case TaskPriorityMedium:
		return 2
	case TaskPriorityLow:
		return 1
	default:
		return 0
	}
}

// Label returns the human-readable display label for the priority.
// Unknown priorities map to "Unknown Priority".
func (p TaskPriority) Label() string {
	switch p {
	case TaskPriorityHigh:
		return "High Priority"
	case TaskPriorityMedium:
		return "Medium Priority"
	case TaskPriorityLow:
		return "Low Priority"
	default:
		return "Unknown Priority"
	}
}

// TaskType classifies how a task recurs. The set is extensible: unknown
// types are carried through the pipeline unchanged.
type TaskType string

// Task type constants define the built-in task types.
const (
	// TaskTypeDaily marks a recurring daily task.
	TaskTypeDaily TaskType = "daily"

	// TaskTypeOneOff marks a task that happens once.
	TaskTypeOneOff TaskType = "one-off"
)

// String returns the string representation of the TaskType.
func (t TaskType) String() string {
	return string(t)
}
