package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// AddUsersCommand adds the users command to the parent command.
func AddUsersCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "List the assignee directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runUsers(cmd, flags)
		},
	}

	parent.AddCommand(cmd)
}

func runUsers(cmd *cobra.Command, flags *GlobalFlags) error {
	d, err := openDeps(cmd, flags)
	if err != nil {
		return err
	}
	defer d.Close()

	users, err := d.store.ListUsers(cmd.Context())
	if err != nil {
		return err
	}

	if flags.Output == OutputJSON {
		return d.out.JSON(users)
	}

	if len(users) == 0 {
		d.out.Info("No users in the directory. Add some with opsdeck import.")
		return nil
	}
	for _, u := range users {
		line := fmt.Sprintf("%-12s %s", u.ID, u.FullName)
		if u.Department != "" {
			line += " (" + u.Department + ")"
		}
		d.out.Info(line)
	}
	return nil
}
