package cli

import (
	stderrors "errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/store"
	"github.com/mrz1836/opsdeck/internal/tui"
)

// AddAssignCommand adds the assign command to the parent command.
func AddAssignCommand(parent *cobra.Command, flags *GlobalFlags) {
	var unassign bool

	cmd := &cobra.Command{
		Use:   "assign <task> [user-id]",
		Short: "Assign a task to a user",
		Long: `Assign sets the assignee of a task. With a user ID argument the
assignment is applied directly; without one an interactive picker over
the user directory opens. --unassign clears the assignee.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := ""
			if len(args) == 2 {
				userID = args[1]
			}
			return runAssign(cmd, flags, args[0], userID, unassign)
		},
	}

	cmd.Flags().BoolVar(&unassign, "unassign", false, "clear the assignee")

	parent.AddCommand(cmd)
}

func runAssign(cmd *cobra.Command, flags *GlobalFlags, ref, userID string, unassign bool) error {
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

	switch {
	case unassign:
		userID = ""
	case userID != "":
		// Validate the ID against the directory before writing it.
		if _, err := d.store.GetUser(ctx, userID); err != nil {
			return err
		}
	default:
		users, err := d.store.ListUsers(ctx)
		if err != nil {
			return err
		}
		userID, err = tui.SelectUser(fmt.Sprintf("Assign #%d: %s", task.DisplayID, task.Title), users)
		if err != nil {
			if stderrors.Is(err, errors.ErrPromptCanceled) {
				d.out.Info("Assignment canceled")
				return nil
			}
			return err
		}
	}

	if err := d.store.Update(ctx, task.ID, store.Patch{AssignedTo: &userID}); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Str("task_id", task.ID).Str("assigned_to", userID).Msg("task assigned")

	if flags.Output == OutputJSON {
		updated, err := d.store.Get(ctx, task.ID)
		if err != nil {
			return err
		}
		return d.out.JSON(updated)
	}
	if userID == "" {
		d.out.Success(fmt.Sprintf("Unassigned task #%d", task.DisplayID))
	} else {
		d.out.Success(fmt.Sprintf("Assigned task #%d to %s", task.DisplayID, userID))
	}
	return nil
}
