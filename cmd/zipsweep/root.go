// Package main provides the entry point for the zipsweep CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for zipsweep.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipsweep",
		Short: "Sweep a provider-locator widget by postal-code seeds",
		Long: `Zipsweep drives a clinic/provider locator web widget through a browser,
submitting postal-code seeds at a fixed sampling interval and collecting
the street addresses the results panel reveals. Addresses are
deduplicated into an append-only text log that survives interrupted runs.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewSweepCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
