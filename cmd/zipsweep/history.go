package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zipsweep/zipsweep/internal/config"
	"github.com/zipsweep/zipsweep/internal/database"
)

// NewHistoryCmd creates the history command.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show past sweep runs",
		Long: `History lists sweep runs recorded in the run-history database,
most recent first. Use --run to drill into the per-seed results of one
run.

Examples:
  # List the last 20 runs
  zipsweep history

  # List the last 5 runs
  zipsweep history --limit 5

  # Show per-seed results for run 3
  zipsweep history --run 3`,
		RunE: runHistoryCmd,
	}

	cmd.Flags().IntP("limit", "l", 20,
		"Maximum number of runs to list")
	cmd.Flags().Int64("run", 0,
		"Show per-seed results for the given run ID")
	cmd.Flags().String("db-dir", "",
		"History database directory (default: XDG data directory)")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	dbDir, err := cmd.Flags().GetString("db-dir")
	if err != nil {
		return err
	}
	if dbDir == "" {
		dbDir = config.XDGDataDir()
	}

	// Listing history must never create an empty database.
	db, err := database.Open(dbDir, database.Options{
		CreateIfNotExists: false,
		EnableWAL:         true,
	})
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	runID, err := cmd.Flags().GetInt64("run")
	if err != nil {
		return err
	}
	if runID > 0 {
		return printSeedResults(cmd, db, runID)
	}

	limit, err := cmd.Flags().GetInt("limit")
	if err != nil {
		return err
	}
	return printRuns(cmd, db, limit)
}

// printRuns lists stored runs in a table, most recent first.
func printRuns(cmd *cobra.Command, db *database.SweepDB, limit int) error {
	runs, err := db.ListRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPROFILE\tREGION\tSTARTED\tSEEDS\tFAILED\tNEW\tUNIQUE")
	for _, run := range runs {
		profile := run.Profile
		if profile == "" {
			profile = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			profile,
			run.Region,
			run.StartedAt.Format("2006-01-02 15:04"),
			run.SeedsProcessed,
			run.FailedSeeds,
			run.NewAddresses,
			run.UniqueTotal,
		)
	}
	return w.Flush()
}

// printSeedResults lists one run's per-seed records in seed order.
func printSeedResults(cmd *cobra.Command, db *database.SweepDB, runID int64) error {
	results, err := db.SeedResults(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("load seed results for run %d: %w", runID, err)
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No seed results recorded for run %d.\n", runID)
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "IDX\tSEED\tMODE\tFOUND\tNEW")
	for _, res := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n",
			res.Index, res.Seed, res.Mode, res.Found, res.New)
	}
	return w.Flush()
}
