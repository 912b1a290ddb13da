package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"bundlesize/pkg/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configCmd groups configuration file helpers.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bundlesize config file",
}

// configInitCmd writes the default configuration to a YAML file.
var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to " + config.DefaultPath,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.DefaultPath
		if len(args) > 0 {
			path = args[0]
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("error reading flags: %w", err)
		}
		if !force {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("cannot stat config file %s: %w", path, err)
			}
		}

		if err := config.DefaultConfig().Save(path); err != nil {
			logger.Error("Failed to write config file", zap.String("path", path), zap.Error(err))
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
	RootCmd.AddCommand(configCmd)
}
