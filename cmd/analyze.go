package cmd

import (
	"fmt"

	"bundlesize/pkg/bundle"
	"bundlesize/pkg/config"
	"bundlesize/pkg/report"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// analyzeFlags holds the command-line values of the analyze command.
type analyzeFlags struct {
	dir         string
	format      string
	output      string
	workers     int
	malformed   string
	ignoreFiles []string
	ignorePaths []string
	ignoreFrom  string
	human       bool
	verbose     bool
}

var analyzeOpts analyzeFlags

// analyzeCmd parses a directory of bundle reports and prints per-directory sizes.
var analyzeCmd = &cobra.Command{
	Use:   "analyze [dir]",
	Short: "Print cumulative block sizes per directory prefix",
	Long: `Parse every report file in the bundle report directory, measure each
named block, and print the cumulative size of every path prefix.

The directory defaults to tmp/bundleSizeDownloads and can be set in the
config file, with BUNDLESIZE_DIR, with --dir, or as the first argument.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		applyAnalyzeFlags(cmd, cfg, analyzeOpts, args)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		return runAnalyze(cmd, cfg)
	},
}

func init() {
	flags := analyzeCmd.Flags()
	flags.StringVar(&analyzeOpts.dir, "dir", "", "Directory holding the bundle report files")
	flags.StringVarP(&analyzeOpts.format, "format", "f", "", "Report format: text, tree, json or yaml")
	flags.StringVarP(&analyzeOpts.output, "output", "o", "", "Write the report to this file instead of stdout")
	flags.IntVarP(&analyzeOpts.workers, "workers", "w", 1, "Number of report files parsed concurrently (0 = one per CPU)")
	flags.StringVar(&analyzeOpts.malformed, "malformed", "", "Malformed header policy: fail or skip")
	flags.StringArrayVar(&analyzeOpts.ignoreFiles, "ignore-file", nil, "Skip report files whose names match this pattern (repeatable)")
	flags.StringArrayVar(&analyzeOpts.ignorePaths, "ignore-path", nil, "Drop blocks whose paths match this pattern (repeatable)")
	flags.StringVar(&analyzeOpts.ignoreFrom, "ignore-from", "", "Read block path patterns from this file (default "+config.DefaultIgnoreFile+")")
	flags.BoolVar(&analyzeOpts.human, "human", false, "Print human-readable sizes in the tree format")
	flags.BoolVarP(&analyzeOpts.verbose, "verbose", "v", false, "Log every skipped file and block path")

	RootCmd.AddCommand(analyzeCmd)
}

// applyAnalyzeFlags overlays explicitly set flags and the positional directory onto c.
func applyAnalyzeFlags(cmd *cobra.Command, c *config.Config, f analyzeFlags, args []string) {
	flags := cmd.Flags()
	if flags.Changed("dir") {
		c.BundleFilesDir = f.dir
	}
	if len(args) > 0 {
		c.BundleFilesDir = args[0]
	}
	if flags.Changed("format") {
		c.Format = f.format
	}
	if flags.Changed("output") {
		c.Output = f.output
	}
	if flags.Changed("workers") {
		c.Workers = f.workers
	}
	if flags.Changed("malformed") {
		c.MalformedHeaders = f.malformed
	}
	if flags.Changed("ignore-from") {
		c.IgnoreFrom = f.ignoreFrom
	}
	if flags.Changed("human") {
		c.HumanSizes = f.human
	}
	c.IgnoreFiles = append(c.IgnoreFiles, f.ignoreFiles...)
	c.IgnorePaths = append(c.IgnorePaths, f.ignorePaths...)
}

func runAnalyze(cmd *cobra.Command, c *config.Config) error {
	policy, err := bundle.ParseMalformedPolicy(c.MalformedHeaders)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	result, err := bundle.Analyze(cmd.Context(), bundle.Options{
		Dir:            c.BundleFilesDir,
		Workers:        c.Workers,
		Malformed:      policy,
		IgnoreFiles:    c.IgnoreFiles,
		IgnorePaths:    c.IgnorePaths,
		IgnoreFrom:     c.IgnoreFrom,
		VerboseSkipped: analyzeOpts.verbose,
	}, logger)
	if err != nil {
		return err
	}

	if c.Output != "" {
		return report.WriteFile(c.Output, format, result, c.HumanSizes, logger)
	}

	if err := report.Write(cmd.OutOrStdout(), format, result, c.HumanSizes); err != nil {
		logger.Error("Failed to write report", zap.Error(err))
		return err
	}
	return nil
}
