package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mrz1836/opsdeck/internal/constants"
	"github.com/mrz1836/opsdeck/internal/store"
)

// AddDoneCommand adds the done command to the parent command.
func AddDoneCommand(parent *cobra.Command, flags *GlobalFlags) {
	var submit bool

	cmd := &cobra.Command{
		Use:   "done <task>...",
		Short: "Mark tasks as completed",
		Long: `Done marks one or more tasks approved with 100% completion in a
single transaction. With --submit the tasks are submitted for review
instead of approved directly.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDone(cmd, flags, args, submit)
		},
	}

	cmd.Flags().BoolVar(&submit, "submit", false, "submit for review instead of approving")

	parent.AddCommand(cmd)
}

func runDone(cmd *cobra.Command, flags *GlobalFlags, refs []string, submit bool) error {
	ctx := cmd.Context()

	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	tasks, err := d.resolveTasks(ctx, refs)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}

	status := constants.TaskStatusApproved
	if submit {
		status = constants.TaskStatusSubmittedForReview
	}
	patch := store.Patch{Status: &status}
	if !submit {
		complete := 100
		patch.CompletionPercentage = &complete
	}

	if err := d.store.BulkUpdate(ctx, ids, patch); err != nil {
		return err
	}

	logger := GetLogger()
	logger.Info().Int("count", len(ids)).Str("status", status.String()).Msg("tasks completed")

	if flags.Output == OutputJSON {
		updated, err := d.resolveTasks(ctx, ids)
		if err != nil {
			return err
		}
		return d.out.JSON(updated)
	}

	verb := "Completed"
	if submit {
		verb = "Submitted"
	}
	if len(ids) == 1 {
		d.out.Success(fmt.Sprintf("%s task #%d: %s", verb, tasks[0].DisplayID, tasks[0].Title))
	} else {
		d.out.Success(fmt.Sprintf("%s %d tasks", verb, len(ids)))
	}
	return nil
}
