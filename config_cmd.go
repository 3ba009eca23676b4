package main

import (
	"fmt"
	"net/url"

	"github.com/spf13/cobra"

	"github.com/Touka01/holbertonschool-back-end/pkg/config"
)

func newConfigCmd(opts *options) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage taskreport configuration",
	}

	setBaseURLCmd := &cobra.Command{
		Use:   "set-base-url <url>",
		Short: "Set the default REST API base URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := url.Parse(args[0])
			if err != nil || u.Scheme == "" || u.Host == "" {
				return fmt.Errorf("invalid base URL %q", args[0])
			}
			opts.cfg.BaseURL = args[0]
			if err := config.Save(opts.cfg); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default base URL set to: %s\n", args[0])
			return nil
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := config.GetConfigPath()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "config file: %s\n", path)
			fmt.Fprintf(out, "base_url:    %s\n", opts.cfg.BaseURL)
			fmt.Fprintf(out, "timeout:     %s\n", opts.cfg.Timeout)
			fmt.Fprintf(out, "log_level:   %s\n", opts.cfg.LogLevel)
			return nil
		},
	}

	configCmd.AddCommand(setBaseURLCmd)
	configCmd.AddCommand(showCmd)
	return configCmd
}
