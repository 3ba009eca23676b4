package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Touka01/holbertonschool-back-end/pkg/config"
	"github.com/Touka01/holbertonschool-back-end/pkg/reporter"
	"github.com/Touka01/holbertonschool-back-end/pkg/todoapi"
)

type options struct {
	baseURL   string
	timeout   time.Duration
	outputDir string
	verbose   bool

	cfg *config.Config
	log *logrus.Entry
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "taskreport <employee_id>",
		Short: "Report an employee's to-do list progress",
		Long: `taskreport looks up an employee and their to-do list on a REST API.

By default it prints how many tasks the employee has completed, followed by
the titles of the completed tasks. The export subcommand writes the whole
list to <employee_id>.csv instead.`,
		Args:          employeeIDArg,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd, stderr)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args, reporter.ModeSummary)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.baseURL, "base-url", "", "Base URL of the REST API (overrides config)")
	flags.DurationVar(&opts.timeout, "timeout", 0, "HTTP request timeout (overrides config)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")

	exportCmd := &cobra.Command{
		Use:   "export <employee_id>",
		Short: "Export all of an employee's tasks to <employee_id>.csv",
		Args:  employeeIDArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args, reporter.ModeCSV)
		},
	}
	exportCmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", ".", "Directory to write the CSV file to")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(newConfigCmd(opts))
	return rootCmd
}

// resolve applies flag > environment > config file > default.
func (o *options) resolve(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("base-url") {
		cfg.BaseURL = o.baseURL
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = o.timeout
	}
	o.cfg = cfg
	o.log = setupLogger(cfg.LogLevel, o.verbose, stderr)
	return nil
}

func employeeIDArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s <employee_id>", cmd.CommandPath())
	}
	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return fmt.Errorf("employee ID must be a positive integer, got %q", args[0])
	}
	return nil
}

func runReport(cmd *cobra.Command, opts *options, args []string, mode reporter.Mode) error {
	id, _ := strconv.Atoi(args[0]) // validated by employeeIDArg

	r := &reporter.Reporter{
		API: todoapi.NewClient(opts.cfg.BaseURL, opts.cfg.Timeout, opts.log),
		Out: cmd.OutOrStdout(),
		Dir: opts.outputDir,
		Log: opts.log,
	}
	if r.Dir == "" {
		r.Dir = "."
	}

	err := r.Run(cmd.Context(), id, mode)
	var rf *todoapi.RequestFailure
	if errors.As(err, &rf) {
		// Upstream failures are reported but are not a usage error.
		opts.log.WithError(err).Debug("report aborted")
		fmt.Fprintf(cmd.OutOrStdout(), "An error occurred: %v\n", err)
		return nil
	}
	return err
}
