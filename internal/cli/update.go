package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/store"
)

// updateFlags holds the flag values for the update command.
type updateFlags struct {
	title       string
	description string
	status      string
	priority    string
	taskType    string
	due         string
	clearDue    bool
	order       int
	completion  int
	parent      string
	clearParent bool
}

// AddUpdateCommand adds the update command to the parent command.
func AddUpdateCommand(parent *cobra.Command, flags *GlobalFlags) {
	uf := &updateFlags{}

	cmd := &cobra.Command{
		Use:   "update <task>",
		Short: "Update fields on a task",
		Long: `Update applies the given flags to one task. Flags that are not set
leave their field untouched. The task can be referenced by #N, plain
display ID, or the opaque task ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, flags, uf, args[0])
		},
	}

	cmd.Flags().StringVar(&uf.title, "title", "", "new title")
	cmd.Flags().StringVarP(&uf.description, "description", "d", "", "new description")
	cmd.Flags().StringVarP(&uf.status, "status", "s", "", "new status")
	cmd.Flags().StringVarP(&uf.priority, "priority", "p", "", "new priority (low|medium|high)")
	cmd.Flags().StringVarP(&uf.taskType, "type", "t", "", "new task type")
	cmd.Flags().StringVar(&uf.due, "due", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&uf.clearDue, "clear-due", false, "remove the due date")
	cmd.Flags().IntVar(&uf.order, "order", -1, "new position among siblings")
	cmd.Flags().IntVar(&uf.completion, "done-percent", -1, "new completion percentage (0-100)")
	cmd.Flags().StringVar(&uf.parent, "parent", "", "new parent task reference")
	cmd.Flags().BoolVar(&uf.clearParent, "clear-parent", false, "promote the task to top level")
	cmd.MarkFlagsMutuallyExclusive("due", "clear-due")
	cmd.MarkFlagsMutuallyExclusive("parent", "clear-parent")

	parent.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, flags *GlobalFlags, uf *updateFlags, ref string) error {
	ctx := cmd.Context()

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	task, err := d.resolveTask(ctx, ref)
	if err != nil {
		return err
	}

	patch, err := buildPatch(cmd, d, uf)
	if err != nil {
		return err
	}

	if err := d.store.Update(ctx, task.ID, patch); err != nil {
		return err
	}

	updated, err := d.store.Get(ctx, task.ID)
	if err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("task_id", task.ID).Msg("task updated")

	if flags.Output == OutputJSON {
		return d.out.JSON(updated)
	}
	d.out.Success(fmt.Sprintf("Updated task #%d: %s", updated.DisplayID, updated.Title))
	return nil
}

// buildPatch converts set flags into a store patch.
func buildPatch(cmd *cobra.Command, d *deps, uf *updateFlags) (store.Patch, error) {
	var patch store.Patch

	if cmd.Flags().Changed("title") {
		patch.Title = &uf.title
	}
	if cmd.Flags().Changed("description") {
		patch.Description = &uf.description
	}
	if uf.status != "" {
		status, err := parseStatus(uf.status)
		if err != nil {
			return patch, err
		}
		patch.Status = &status
	}
	if uf.priority != "" {
		priority, err := parsePriority(uf.priority)
		if err != nil {
			return patch, err
		}
		patch.Priority = &priority
	}
	if cmd.Flags().Changed("type") {
		// Task types are an open set; unknown values pass through.
		taskType := constants.TaskType(uf.taskType)
		patch.Type = &taskType
	}
	if uf.clearDue {
		patch.ClearDueDate = true
	} else if uf.due != "" {
		due, err := parseDate(uf.due)
		if err != nil {
			return patch, err
		}
		patch.DueDate = due
	}
	if uf.order >= 0 {
		patch.TaskOrder = &uf.order
	}
	if uf.completion >= 0 {
		patch.CompletionPercentage = &uf.completion
	}
	if uf.clearParent {
		empty := ""
		patch.ParentTaskID = &empty
	} else if uf.parent != "" {
		parentTask, err := d.resolveTask(cmd.Context(), uf.parent)
		if err != nil {
			return patch, err
		}
		patch.ParentTaskID = &parentTask.ID
	}

	return patch, nil
}
