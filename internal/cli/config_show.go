package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mrz1836/opsdeck/internal/config"
	"github.com/mrz1836/opsdeck/internal/errors"
	"github.com/mrz1836/opsdeck/internal/tui"
)

// AddConfigCommand adds the config command group to the parent command.
func AddConfigCommand(parent *cobra.Command, flags *GlobalFlags) {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect opsdeck configuration",
	}

	cmd.AddCommand(newConfigShowCmd(flags))
	cmd.AddCommand(newConfigPathCmd(flags))

	parent.AddCommand(cmd)
}

// newConfigShowCmd creates the config show subcommand.
func newConfigShowCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Long: `Show prints the merged configuration after defaults, the global
config file, the project config file, and OPSDECK_* environment
variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := GetLogger()

			cfg, err := config.Load(logger.WithContext(cmd.Context()))
			if err != nil {
				return err
			}

			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
			if flags.Output == OutputJSON {
				return out.JSON(cfg)
			}

			data, err := yaml.Marshal(cfg)
			if err != nil {
				return errors.Wrap(err, "failed to render configuration")
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(data))
			return err
		},
	}
}

// newConfigPathCmd creates the config path subcommand.
func newConfigPathCmd(flags *GlobalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show configuration and data file locations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			globalPath, err := config.GlobalConfigPath()
			if err != nil {
				return err
			}
			logPath, err := LogFilePath()
			if err != nil {
				return err
			}

			cfg, err := config.Load(GetLogger().WithContext(cmd.Context()))
			if err != nil {
				return err
			}
			dbPath, err := cfg.DatabasePath()
			if err != nil {
				return err
			}

			paths := map[string]string{
				"global_config":  globalPath,
				"project_config": config.ProjectConfigPath(),
				"database":       dbPath,
				"log_file":       logPath,
			}

			out := tui.NewOutput(cmd.OutOrStdout(), flags.Output)
			if flags.Output == OutputJSON {
				return out.JSON(paths)
			}
			for _, key := range []string{"global_config", "project_config", "database", "log_file"} {
				out.Info(fmt.Sprintf("%-15s %s", key, paths[key]))
			}
			return nil
		},
	}
}
