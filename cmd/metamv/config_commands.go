package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"metamv/internal/config"
	"metamv/internal/nametpl"
	"metamv/internal/preflight"
)

func newConfigCommand(cmdCtx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigValidateCommand(cmdCtx))

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var targetPath string
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(targetPath)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return fmt.Errorf("determine default config path: %w", err)
				}
				target = defaultPath
			} else {
				expanded, err := config.ExpandPath(target)
				if err != nil {
					return fmt.Errorf("resolve config path: %w", err)
				}
				target = expanded
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit the file to set the default rename template before running metamv.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&targetPath, "path", "p", "", "Destination for the configuration file")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigValidateCommand(cmdCtx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file and its template",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)

			cfg, err := cmdCtx.ensureConfig()
			if err != nil {
				fmt.Fprintln(out, renderStatusLine("Config file", statusError, err.Error(), colorize))
				return err
			}

			detail := cmdCtx.configPath
			if detail == "" {
				detail = "defaults"
			}
			fmt.Fprintln(out, renderStatusLine("Config file", statusOK, detail, colorize))

			var failure error
			if text := cfg.Rename.Template; strings.TrimSpace(text) == "" {
				fmt.Fprintln(out, renderStatusLine("Template", statusWarn, "not set; --template required on every run", colorize))
			} else if _, err := nametpl.Compile(text); err != nil {
				fmt.Fprintln(out, renderStatusLine("Template", statusError, err.Error(), colorize))
				failure = fmt.Errorf("template does not compile: %w", err)
			} else {
				fmt.Fprintln(out, renderStatusLine("Template", statusOK, "compiles", colorize))
			}

			if check := preflight.CheckFFprobe(cfg.FFprobeBinary()); check.Passed {
				fmt.Fprintln(out, renderStatusLine("FFprobe", statusOK, check.Detail, colorize))
			} else {
				fmt.Fprintln(out, renderStatusLine("FFprobe", statusError, check.Detail, colorize))
				failure = errors.Join(failure, fmt.Errorf("ffprobe unavailable: %s", check.Detail))
			}

			if failure != nil {
				return failure
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}
