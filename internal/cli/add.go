package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/domain"
)

// addFlags holds the flag values for the add command.
type addFlags struct {
	description string
	priority    string
	taskType    string
	assignee    string
	due         string
	parent      string
	order       int
}

// AddAddCommand adds the add command to the parent command.
func AddAddCommand(parent *cobra.Command, flags *GlobalFlags) {
	af := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Long: `Add creates a task in the local store. The store assigns the opaque
task ID and the next free display number.

A task created with --parent renders as a subtask beneath that parent
on the board.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, flags, af, args[0])
		},
	}

	cmd.Flags().StringVarP(&af.description, "description", "d", "", "longer markdown body")
	cmd.Flags().StringVarP(&af.priority, "priority", "p", string(constants.TaskPriorityMedium), "priority (low|medium|high)")
	cmd.Flags().StringVarP(&af.taskType, "type", "t", string(constants.TaskTypeOneOff), "task type (daily|one-off)")
	cmd.Flags().StringVarP(&af.assignee, "assign", "a", "", "assignee user ID")
	cmd.Flags().StringVar(&af.due, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&af.parent, "parent", "", "parent task reference (#N, display ID, or task ID)")
	cmd.Flags().IntVar(&af.order, "order", 0, "position among siblings")

	parent.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, flags *GlobalFlags, af *addFlags, title string) error {
	ctx := cmd.Context()

	priority, err := parsePriority(af.priority)
	if err != nil {
		return err
	}
	due, err := parseDate(af.due)
	if err != nil {
		return err
	}

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	task := &domain.Task{
		Title:       title,
		Description: af.description,
		Status:      constants.TaskStatusPending,
		Priority:    priority,
		Type:        constants.TaskType(af.taskType),
		AssignedTo:  af.assignee,
		DueDate:     due,
		TaskOrder:   af.order,
	}

	if af.parent != "" {
		parentTask, err := d.resolveTask(ctx, af.parent)
		if err != nil {
			return err
		}
		task.ParentTaskID = parentTask.ID
	}

	id, err := d.store.Create(ctx, task)
	if err != nil {
		return err
	}

	created, err := d.store.Get(ctx, id)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("task_id", id).Int("display_id", created.DisplayID).Msg("task created")

	if flags.Output == OutputJSON {
		return d.out.JSON(created)
	}
	d.out.Success(fmt.Sprintf("Created task #%d: %s", created.DisplayID, created.Title))
	return nil
}
