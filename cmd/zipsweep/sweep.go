package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/zipsweep/zipsweep/internal/config"
	"github.com/zipsweep/zipsweep/internal/database"
	"github.com/zipsweep/zipsweep/internal/driver"
	"github.com/zipsweep/zipsweep/internal/extract"
	"github.com/zipsweep/zipsweep/internal/log"
	"github.com/zipsweep/zipsweep/internal/model"
	"github.com/zipsweep/zipsweep/internal/report"
	"github.com/zipsweep/zipsweep/internal/seed"
	"github.com/zipsweep/zipsweep/internal/session"
	"github.com/zipsweep/zipsweep/internal/store"
	"github.com/zipsweep/zipsweep/internal/surface"
)

// NewSweepCmd creates the sweep command.
func NewSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sweep the locator widget over a postal-code seed range",
		Long: `Sweep drives the locator widget through a browser, submitting one
postal-code seed at a time and collecting the street addresses the
results panel reveals.

Each seed is queried bare first ("94012"); if the panel does not react,
the qualified form ("94012, CA") is retried once. Extracted addresses
are merged into the append-only output log before the next seed starts,
so an interrupted run loses nothing.

Examples:
  # Full default sweep of the California ZIP range
  zipsweep sweep

  # Smoke test with a visible browser and a handful of seeds
  zipsweep sweep --headful --max-seeds 5

  # Denser sampling into a custom log
  zipsweep sweep --step 10 -o dense_addresses.csv

  # Run two saved profiles back to back
  zipsweep sweep --profile south,north

  # Machine-readable summary
  zipsweep sweep --json --report run.json`,
		RunE: runSweepCmd,
	}

	// Widget and range flags
	cmd.Flags().StringP("url", "u", config.DefaultWidgetURL,
		"Locator widget page to drive")
	cmd.Flags().StringP("region", "r", config.DefaultRegion,
		"Two-letter region code for matching and the qualified fallback")
	cmd.Flags().Int("zip-min", config.DefaultZipMin,
		"Lowest postal code in the seed range (inclusive)")
	cmd.Flags().Int("zip-max", config.DefaultZipMax,
		"Highest postal code in the seed range (inclusive)")
	cmd.Flags().Int("step", config.DefaultStep,
		"Seed sampling interval")
	cmd.Flags().Bool("jitter", config.DefaultJitter,
		"Shift the first seed to the center of each step bucket")
	cmd.Flags().String("radius", config.DefaultRadiusValue,
		"Search radius value forced onto the widget before every query")

	// Pacing flags
	cmd.Flags().DurationP("delay", "d", config.DefaultDelay,
		"Fixed delay between seeds")
	cmd.Flags().IntP("max-seeds", "n", config.DefaultMaxSeeds,
		"Process at most this many seeds (0 = unlimited)")
	cmd.Flags().Int("refresh-every", config.DefaultRefreshEvery,
		"Reload the widget page every N seeds (0 = never)")

	// Browser flags
	cmd.Flags().Bool("headful", false,
		"Show the browser window instead of running headless")

	// Output flags
	cmd.Flags().StringP("output", "o", config.DefaultOutputFile,
		"Append-only address log path")

	// Profile flags
	cmd.Flags().StringP("config", "c", "",
		"Profile file path (default: .zipsweep in current or home directory)")
	cmd.Flags().StringP("profile", "p", "",
		"Profile name(s) to run, comma separated")
	cmd.Flags().Int("parallel", 1,
		"Concurrent browser sessions when running multiple profiles")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON run summary (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown run summary (mutually exclusive with --json)")
	cmd.Flags().String("report", "",
		"Write the run summary to the specified file as well as stdout")

	// Logging flags
	cmd.Flags().Bool("log-json", false,
		"Emit logs as JSON lines instead of text")

	// History flags
	cmd.Flags().Bool("no-db", false,
		"Do not record the run in the history database")

	return cmd
}

// runSweepCmd executes the sweep command.
func runSweepCmd(cmd *cobra.Command, _ []string) error {
	logger, err := buildLogger(cmd, os.Stderr)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	file, names, err := loadProfiles(cmd)
	if err != nil {
		return err
	}

	// Graceful shutdown on interrupt: the current seed finishes its
	// merge, then the run stops.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if len(names) <= 1 {
		name := ""
		if len(names) == 1 {
			name = names[0]
		}
		cfg, err := buildConfig(cmd, file, name)
		if err != nil {
			return err
		}
		_, err = runSweep(ctx, cfg, logger)
		return err
	}

	parallel, err := cmd.Flags().GetInt("parallel")
	if err != nil {
		return err
	}
	jobs := make([]session.Job, 0, len(names))
	for _, name := range names {
		cfg, err := buildConfig(cmd, file, name)
		if err != nil {
			return fmt.Errorf("profile %s: %w", name, err)
		}
		jobs = append(jobs, session.Job{
			Name: name,
			Run: func(ctx context.Context) (*model.RunSummary, error) {
				return runSweep(ctx, cfg, logger.With("profile", name))
			},
		})
	}
	_, err = session.NewBatchRunner(parallel).Run(ctx, jobs)
	return err
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildLogger picks the log format from the flags. JSON lines suit log
// shipping; the text handler stays the default for terminals.
func buildLogger(cmd *cobra.Command, w io.Writer) (*slog.Logger, error) {
	jsonLogs, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return nil, err
	}
	verbose := getVerboseFlag(cmd)
	if jsonLogs {
		return log.NewJSONLogger(w, verbose), nil
	}
	return log.NewLogger(w, verbose), nil
}

// loadProfiles resolves the profile file and the requested profile names.
// If the user explicitly specified a file path, a missing file is an
// error; otherwise an absent file just means no profiles.
func loadProfiles(cmd *cobra.Command) (*config.File, []string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	raw, err := cmd.Flags().GetString("profile")
	if err != nil {
		return nil, nil, err
	}
	var names []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}

	found := config.FindProfileFile(path)
	if found == "" {
		if path != "" {
			return nil, nil, fmt.Errorf("profile file not found: %s", path)
		}
		if len(names) > 0 {
			return nil, nil, fmt.Errorf("--profile given but no %s file found", config.DefaultProfileFile)
		}
		return &config.File{}, nil, nil
	}

	file, err := config.LoadProfileFile(found)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load profile file %s: %w", found, err)
	}
	return file, names, nil
}

// buildConfig creates a validated Config for one profile name (which may
// be empty). Precedence is flags > profile > built-in defaults, so
// profile values are applied first and only explicitly set flags
// override them.
func buildConfig(cmd *cobra.Command, file *config.File, name string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.ProfileName = name
	cfg.Apply(file.GetProfile(name))

	flags := cmd.Flags()
	var err error
	if flags.Changed("url") {
		if cfg.WidgetURL, err = flags.GetString("url"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("region") {
		if cfg.Region, err = flags.GetString("region"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("zip-min") {
		if cfg.ZipMin, err = flags.GetInt("zip-min"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("zip-max") {
		if cfg.ZipMax, err = flags.GetInt("zip-max"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("step") {
		if cfg.Step, err = flags.GetInt("step"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jitter") {
		if cfg.Jitter, err = flags.GetBool("jitter"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("radius") {
		if cfg.RadiusValue, err = flags.GetString("radius"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("delay") {
		if cfg.Delay, err = flags.GetDuration("delay"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("max-seeds") {
		if cfg.MaxSeeds, err = flags.GetInt("max-seeds"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("refresh-every") {
		if cfg.RefreshEvery, err = flags.GetInt("refresh-every"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}

	headful, err := flags.GetBool("headful")
	if err != nil {
		return nil, err
	}
	cfg.Headless = !headful

	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.ReportFile, err = flags.GetString("report"); err != nil {
		return nil, err
	}

	noDB, err := flags.GetBool("no-db")
	if err != nil {
		return nil, err
	}
	cfg.SaveHistory = !noDB
	cfg.DBDir = config.XDGDataDir()
	cfg.Verbose = getVerboseFlag(cmd)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration error: %w", err)
	}
	return cfg, nil
}

// runSweep executes one full sweep: seeds, store, browser, session, and
// the closing report.
func runSweep(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*model.RunSummary, error) {
	seeds, err := seed.Generate(cfg.ZipMin, cfg.ZipMax, cfg.Step, cfg.Jitter)
	if err != nil {
		return nil, fmt.Errorf("generate seeds: %w", err)
	}

	st, err := store.Open(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("open address log: %w", err)
	}
	defer st.Close()
	logger.Info("address log opened", "path", st.Path(), "unique", st.Len())

	var (
		db    *database.SweepDB
		runID int64
	)
	if cfg.SaveHistory {
		db, err = database.Open(cfg.DBDir, database.DefaultOptions())
		if err != nil {
			return nil, fmt.Errorf("open history database: %w", err)
		}
		defer db.Close()
		runID, err = db.CreateRun(ctx, cfg.ProfileName, cfg.Region, time.Now())
		if err != nil {
			return nil, fmt.Errorf("create run record: %w", err)
		}
	}

	browser, err := surface.New(ctx, cfg.Headless)
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithProgress(os.Stderr),
	}
	if db != nil {
		opts = append(opts, session.WithHistory(db, runID))
	}
	ctrl := session.NewController(
		browser,
		driver.New(browser, cfg),
		extract.NewExtractor(cfg.Region),
		st,
		cfg,
		opts...,
	)

	if err := ctrl.Bootstrap(ctx); err != nil {
		return nil, err
	}

	summary, runErr := ctrl.Run(ctx, seeds)

	// The summary is valid even when the run was interrupted, so the
	// run record and report still get written.
	if db != nil {
		if err := db.FinishRun(context.WithoutCancel(ctx), runID, summary, time.Now()); err != nil {
			logger.Error("finish run record", "error", err)
		}
	}
	if err := outputReport(cfg, summary, os.Stdout); err != nil {
		logger.Error("write run report", "error", err)
	}
	return summary, runErr
}

// outputReport writes the run summary in the configured format. With
// --report the summary is teed to the file and to stdout, so a scripted
// run still shows its result in the terminal.
func outputReport(cfg *config.Config, summary *model.RunSummary, stdout io.Writer) error {
	outputs := []io.Writer{stdout}
	if cfg.ReportFile != "" {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create report directory: %w", err)
			}
		}
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer f.Close()
		outputs = append(outputs, f)
	}

	writers := make([]report.Writer, 0, len(outputs))
	for _, out := range outputs {
		writers = append(writers, newReportWriter(cfg, out))
	}
	_, err := report.NewMultiWriter(writers...).Write(summary)
	return err
}

// newReportWriter picks the report writer for the configured format.
func newReportWriter(cfg *config.Config, out io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(out, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(out)
	default:
		return report.NewSimpleWriter(out, report.WithVerbose(cfg.Verbose))
	}
}
