package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
	"github.com/mrz1836/opsdeck/internal/errors"
)

// seedFile is the YAML document accepted by the import command.
type seedFile struct {
	Users []seedUser `yaml:"users"`
	Tasks []seedTask `yaml:"tasks"`
}

// seedUser is a directory entry in a seed file.
type seedUser struct {
	ID         string `yaml:"id"`
	FullName   string `yaml:"full_name"`
	Role       string `yaml:"role"`
	Department string `yaml:"department"`
}

// seedTask is a task entry in a seed file. IDs are optional; tasks that
// declare one can be referenced by later entries via parent_task_id.
type seedTask struct {
	ID                   string `yaml:"id"`
	ParentTaskID         string `yaml:"parent_task_id"`
	Title                string `yaml:"title"`
	Description          string `yaml:"description"`
	Status               string `yaml:"status"`
	Priority             string `yaml:"priority"`
	Type                 string `yaml:"type"`
	AssignedTo           string `yaml:"assigned_to"`
	DueDate              string `yaml:"due_date"`
	TaskOrder            int    `yaml:"task_order"`
	CompletionPercentage int    `yaml:"completion_percentage"`
}

// AddImportCommand adds the import command to the parent command.
func AddImportCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import tasks and users from a YAML seed file",
		Long: `Import loads a YAML document of users and tasks into the store.
Users are upserted by ID. Tasks are created in file order; a task with
an explicit id can be referenced by a later task's parent_task_id.

Example seed file:

  users:
    - id: u-amy
      full_name: Amy Okafor
      department: logistics
  tasks:
    - id: t-recon
      title: Reconcile courier invoices
      status: in_progress
      priority: high
      assigned_to: u-amy
      due_date: 2026-03-15
    - title: Pull courier statements
      parent_task_id: t-recon`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, flags, args[0])
		},
	}

	parent.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, flags *GlobalFlags, path string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied seed file path
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	var seed seedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return errors.Wrapf(err, "failed to parse %s", path)
	}

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	for _, u := range seed.Users {
		if err := d.store.PutUser(ctx, &domain.User{
			ID:         u.ID,
			FullName:   u.FullName,
			Role:       u.Role,
			Department: u.Department,
		}); err != nil {
			return errors.Wrapf(err, "failed to import user %s", u.ID)
		}
	}

	for i, st := range seed.Tasks {
		task, err := seedToTask(st)
		if err != nil {
			return errors.Wrapf(err, "task %d (%s)", i+1, st.Title)
		}
		if _, err := d.store.Create(ctx, task); err != nil {
			return errors.Wrapf(err, "failed to import task %d (%s)", i+1, st.Title)
		}
	}

	logger := GetLogger()
	logger.Info().
		Int("users", len(seed.Users)).
		Int("tasks", len(seed.Tasks)).
		Str("path", path).
		Msg("seed file imported")

	if flags.Output == OutputJSON {
		return d.out.JSON(map[string]int{"users": len(seed.Users), "tasks": len(seed.Tasks)})
	}
	d.out.Success(fmt.Sprintf("Imported %d users and %d tasks from %s", len(seed.Users), len(seed.Tasks), path))
	return nil
}

// seedToTask converts a seed entry into a task, validating closed enums.
func seedToTask(st seedTask) (*domain.Task, error) {
	task := &domain.Task{
		ID:                   st.ID,
		ParentTaskID:         st.ParentTaskID,
		Title:                st.Title,
		Description:          st.Description,
		Status:               constants.TaskStatusPending,
		Type:                 constants.TaskType(st.Type),
		AssignedTo:           st.AssignedTo,
		TaskOrder:            st.TaskOrder,
		CompletionPercentage: st.CompletionPercentage,
	}

	if st.Status != "" {
		status, err := parseStatus(st.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if st.Priority != "" {
		priority, err := parsePriority(st.Priority)
		if err != nil {
			return nil, err
		}
		task.Priority = priority
	}
	if st.DueDate != "" {
		due, err := parseDate(st.DueDate)
		if err != nil {
			return nil, err
		}
		task.DueDate = due
	}

	return task, nil
}
