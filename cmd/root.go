package cmd

import (
	"context"
	"fmt"

	"bundlesize/pkg/config"
	"bundlesize/pkg/logging"
	"bundlesize/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	configPath string
	debug      bool

	// cfg and logger are populated before any subcommand runs.
	cfg    *config.Config
	logger = zap.NewNop()
)

// RootCmd is the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "bundlesize",
	Short: "Bundlesize reports how much each directory contributes to a bundle",
	Long: `Bundlesize parses bundle size reports, where every bundled source file is
introduced by a block of '/' marker lines naming its path, and prints the
cumulative size of every directory prefix.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("debug") {
			loaded.Debug = debug
		}
		cfg = loaded

		if cfg.Debug {
			l, err := logging.Setup(true, version.AppName, version.Get().Version)
			if err != nil {
				return fmt.Errorf("failed to initialize debug logger: %w", err)
			}
			logger = l
		}
		logger.Debug("Loaded configuration", zap.String("config", configPath), zap.Any("settings", cfg))
		return nil
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default "+config.DefaultPath+" if present)")
	RootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable development logging at debug level")
}

// Execute adds all child commands to the root command and runs it with the given logger.
func Execute(l *zap.Logger) error {
	if l != nil {
		logger = l
	}
	return RootCmd.ExecuteContext(context.Background())
}
