package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"metamv/internal/config"
	"metamv/internal/logging"
	"metamv/internal/preflight"
	"metamv/internal/renamer"
)

type renameFlags struct {
	template string
	dir      string
	file     string
	datetime string
	execute  bool
}

func newRootCommand() *cobra.Command {
	var (
		configFlag    string
		logLevelFlag  string
		logFormatFlag string

		flags renameFlags
	)

	cmdCtx := newCommandContext(&configFlag, &logLevelFlag, &logFormatFlag)

	rootCmd := &cobra.Command{
		Use:   "metamv",
		Short: "Rename media files from their container metadata",
		Long: `metamv probes media files for container and stream metadata, renders a
filename template against that metadata, and renames the files in place.
Without --run it only prints the rename plan.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, cmdCtx, flags)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")

	rootCmd.Flags().StringVarP(&flags.template, "template", "t", "", "Filename template rendered against the metadata context")
	rootCmd.Flags().StringVar(&flags.dir, "dir", "", "Directory to process recursively")
	rootCmd.Flags().StringVar(&flags.file, "file", "", "Single file to process")
	rootCmd.Flags().StringVar(&flags.datetime, "datetime-format", "", "strftime pattern applied to creation_time (default %Y%m%d%H%M%S)")
	rootCmd.Flags().BoolVar(&flags.execute, "run", false, "Execute renames instead of printing the plan")
	rootCmd.MarkFlagsMutuallyExclusive("dir", "file")
	rootCmd.MarkFlagsOneRequired("dir", "file")

	rootCmd.AddCommand(newInspectCommand(cmdCtx))
	rootCmd.AddCommand(newConfigCommand(cmdCtx))

	return rootCmd
}

func runRename(cmd *cobra.Command, cmdCtx *commandContext, flags renameFlags) error {
	cfg, err := cmdCtx.ensureConfig()
	if err != nil {
		return err
	}
	logger, err := cmdCtx.buildLogger(cfg)
	if err != nil {
		return err
	}

	runCtx := logging.WithRunID(cmd.Context(), logging.NewRunID())
	logger = logging.WithContext(runCtx, logger)

	rawPath := flags.dir
	isDir := rawPath != ""
	if !isDir {
		rawPath = flags.file
	}
	path, err := config.ExpandPath(rawPath)
	if err != nil {
		return err
	}

	target := preflight.Target{Path: path, Dir: isDir, Write: flags.execute}
	if failure := preflight.FirstFailure(preflight.RunAll(cfg, target)); failure != nil {
		return fmt.Errorf("preflight %s: %s", failure.Name, failure.Detail)
	}

	r, err := renamer.New(cfg, logger, renamer.Options{
		Template:       flags.template,
		DatetimeFormat: flags.datetime,
		Execute:        flags.execute,
	})
	if err != nil {
		return err
	}

	mode := "dry-run"
	if r.Execute() {
		mode = "execute"
	}
	logger.Info("starting rename run",
		logging.String("mode", mode),
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldTemplate, r.Template()))

	out := cmd.OutOrStdout()

	if !isDir {
		decision, err := r.ProcessFile(runCtx, path)
		if err != nil {
			return err
		}
		switch {
		case decision.Skipped:
			// Not a media container; a quiet no-op even when named explicitly.
		case decision.Executed:
			fmt.Fprintf(out, "renamed %s -> %s\n", decision.Source, decision.Destination)
		default:
			fmt.Fprintf(out, "would rename %s -> %s\n", decision.Source, decision.Destination)
		}
		return nil
	}

	decisions, stats, walkErr := r.ProcessDir(runCtx, path)
	if !r.Execute() && len(decisions) > 0 {
		fmt.Fprintln(out, renderPlanTable(path, decisions))
	}
	fmt.Fprintln(out, stats.String())
	return walkErr
}
