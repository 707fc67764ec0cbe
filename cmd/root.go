package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/gvko/minigrep/internal/config"
	"github.com/gvko/minigrep/internal/logging"
	"github.com/gvko/minigrep/internal/runner"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the minigrep command. The search is the root command
// itself. Flag parsing is off: every argument, including one that starts
// with a dash, is a query or a filename.
func NewRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "minigrep <query> <filename>",
		Short: "Print the lines of a file that contain a query",
		Long: "Print the lines of a file that contain a query.\n\n" +
			"Environment:\n" +
			"  " + config.CaseSensitiveEnv + "   match case exactly when set, to any value\n" +
			"  " + config.ConfigEnv + "  path to a YAML settings file (colors, diagnostic log file)\n" +
			"  " + config.VerboseEnv + " print diagnostics to stderr when non-empty",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := runner.ParseArgs(args, config.Get())
			if err != nil {
				return err
			}
			return runner.New(cmd.OutOrStdout()).Run(in)
		},
	}
}

func Execute() error { return execute(NewRootCmd()) }

func execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil {
		report(err)
	}
	return err
}

func initConfig() error {
	cfg, err := config.Load(os.LookupEnv)
	if errors.Is(err, config.ErrSchema) {
		return fmt.Errorf("schema error: %w", err)
	}
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logging.SetVerbose(cfg.Verbose)
	logging.SetColor(cfg.Color)
	if err := logging.Init(logging.Options{
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}); err != nil {
		return fmt.Errorf("log file: %w", err)
	}
	if p, ok := os.LookupEnv(config.ConfigEnv); ok && p != "" {
		logging.Debug("settings loaded from " + p)
	}
	return nil
}

func report(err error) {
	var argErr *runner.ArgumentError
	var ioErr *runner.IOError
	switch {
	case errors.As(err, &argErr):
		logging.Error("Problem parsing input args: " + argErr.Error())
	case errors.As(err, &ioErr):
		logging.Error("Application error: " + ioErr.Error())
	default:
		logging.Error(err.Error())
	}
}
