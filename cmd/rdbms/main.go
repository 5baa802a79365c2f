// Package main contains the cli implementation of the engine. It uses
// the cobra package for cli tool implementation, the same library the
// teacher's cmd/smf uses. This is a thin, one-shot wrapper around
// executor.Executor — the interactive shell and the HTTP/REST facade
// are out-of-scope external collaborators (spec.md §1).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rdbms/internal/config"
	"rdbms/internal/executor"
	"rdbms/internal/output"
	"rdbms/internal/rdlog"
	"rdbms/internal/storage"
)

type rootFlags struct {
	configPath string
	dataDir    string
	logLevel   string
	format     string
}

func main() {
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:   "rdbms",
		Short: "A small relational database engine",
	}
	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "engine.toml", "Path to engine.toml")
	rootCmd.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "Override engine.toml's data_dir")
	rootCmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", "human", "Output format: human or json")

	rootCmd.AddCommand(execCmd(flags))
	rootCmd.AddCommand(showTablesCmd(flags))
	rootCmd.AddCommand(describeCmd(flags))
	rootCmd.AddCommand(dropTableCmd(flags))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func execCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "exec <sql>",
		Short: "Execute a single SQL statement",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := newExecutor(flags)
			if err != nil {
				return err
			}
			return printResult(x.Execute(strings.Join(args, " ")), flags.format)
		},
	}
}

func showTablesCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "show-tables",
		Short: "List every table",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			x, err := newExecutor(flags)
			if err != nil {
				return err
			}
			return printResult(x.ShowTables(), flags.format)
		},
	}
}

func describeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <table>",
		Short: "Describe a table's columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := newExecutor(flags)
			if err != nil {
				return err
			}
			return printResult(x.Describe(args[0]), flags.format)
		},
	}
}

func dropTableCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "drop-table <table>",
		Short: "Drop a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			x, err := newExecutor(flags)
			if err != nil {
				return err
			}
			return printResult(x.Execute("DROP TABLE "+args[0]), flags.format)
		},
	}
}

func newExecutor(flags *rootFlags) (*executor.Executor, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flags.dataDir != "" {
		cfg.DataDir = flags.dataDir
	}

	log := rdlog.New(flags.logLevel)

	engine, err := storage.NewEngine(storage.Options{
		DataDir:    cfg.DataDir,
		StrictMode: cfg.StrictMode,
		Log:        log,
	})
	if err != nil {
		return nil, fmt.Errorf("opening storage engine: %w", err)
	}

	return executor.New(engine, cfg.DefaultVarcharLimit), nil
}

func printResult(res executor.Result, format string) error {
	f, err := output.NewFormat(format)
	if err != nil {
		return err
	}
	s, err := output.Render(res, f)
	if err != nil {
		return err
	}
	fmt.Fprint(os.Stdout, s)
	if !res.Success {
		return fmt.Errorf("%s", res.Error)
	}
	return nil
}
