package constants

// Tab is the coarse status-based view filter shown as tabs in the console.
// It applies in conjunction with any advanced filter criteria.
type Tab string

// Tab constants define the available task board tabs.
const (
	// TabTodo shows pending and in-progress tasks.
	TabTodo Tab = "todo"

	// TabUnderReview shows tasks submitted for review.
	TabUnderReview Tab = "under_review"

	// TabIncomplete shows tasks that lapsed past their due date.
	TabIncomplete Tab = "incomplete"

	// TabCompleted shows approved tasks.
	TabCompleted Tab = "completed"

	// TabArchived shows auto-approved (archived) tasks.
	TabArchived Tab = "archived"

	// TabAll shows every task except archived ones, unless the
	// show-archived filter is set.
	TabAll Tab = "all"
)

// ValidTabs returns all valid tab values.
func ValidTabs() []Tab {
	return []Tab{TabTodo, TabUnderReview, TabIncomplete, TabCompleted, TabArchived, TabAll}
}

// IsValid checks if the tab is a valid value.
func (t Tab) IsValid() bool {
	switch t {
	case TabTodo, TabUnderReview, TabIncomplete, TabCompleted, TabArchived, TabAll:
		return true
	default:
		return false
	}
}

// String returns the string representation of the Tab.
func (t Tab) String() string {
	return string(t)
}

// SortField identifies the task attribute used to order the view.
type SortField string

// Sort field constants define the sortable task attributes.
const (
	SortFieldTitle    SortField = "title"
	SortFieldAssignee SortField = "assignee"
	SortFieldType     SortField = "type"
	SortFieldPriority SortField = "priority"
	SortFieldStatus   SortField = "status"
	SortFieldDueDate  SortField = "due_date"
	SortFieldTaskID   SortField = "task_id"
)

// ValidSortFields returns all valid sort field values.
func ValidSortFields() []SortField {
	return []SortField{
		SortFieldTitle,
		SortFieldAssignee,
		SortFieldType,
		SortFieldPriority,
		SortFieldStatus,
		SortFieldDueDate,
		SortFieldTaskID,
	}
}

// IsValid checks if the sort field is a valid value.
func (f SortField) IsValid() bool {
	switch f {
	case SortFieldTitle, SortFieldAssignee, SortFieldType, SortFieldPriority,
		SortFieldStatus, SortFieldDueDate, SortFieldTaskID:
		return true
	default:
		return false
	}
}

// String returns the string representation of the SortField.
func (f SortField) String() string {
	return string(f)
}

// SortDirection orders a sorted view ascending or descending.
type SortDirection string

// Sort direction constants.
const (
	// SortAsc orders the view ascending by the active sort field.
	SortAsc SortDirection = "asc"

	// SortDesc orders the view descending by the active sort field.
	SortDesc SortDirection = "desc"
)

// IsValid checks if the sort direction is a valid value.
func (d SortDirection) IsValid() bool {
	return d == SortAsc || d == SortDesc
}

// String returns the string representation of the SortDirection.
func (d SortDirection) String() string {
	return string(d)
}

// GroupKey identifies the attribute top-level tasks are bucketed by.
type GroupKey string

// Group key constants define the available grouping modes.
const (
	// GroupNone puts every task in a single "All Tasks" bucket.
	GroupNone GroupKey = "none"

	// GroupPriority buckets tasks by priority, high first.
	GroupPriority GroupKey = "priority"

	// GroupAssignee buckets tasks by assignee display name, alphabetical
	// with "Unassigned" forced last.
	GroupAssignee GroupKey = "assignee"

	// GroupStatus buckets tasks by status label, alphabetical.
	GroupStatus GroupKey = "status"
)

// ValidGroupKeys returns all valid group key values.
func ValidGroupKeys() []GroupKey {
	return []GroupKey{GroupNone, GroupPriority, GroupAssignee, GroupStatus}
}

// IsValid checks if the group key is a valid value.
func (g GroupKey) IsValid() bool {
	switch g {
	case GroupNone, GroupPriority, GroupAssignee, GroupStatus:
		return true
	default:
		return false
	}
}

// String returns the string representation of the GroupKey.
func (g GroupKey) String() string {
	return string(g)
}

// Display labels used by the grouping stage.
const (
	// LabelAllTasks is the single bucket label when grouping is off.
	LabelAllTasks = "All Tasks"

	// LabelUnassigned is the bucket label for tasks without an assignee.
	LabelUnassigned = "Unassigned"
)
