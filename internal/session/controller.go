package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/zipsweep/zipsweep/internal/config"
	"github.com/zipsweep/zipsweep/internal/database"
	"github.com/zipsweep/zipsweep/internal/driver"
	"github.com/zipsweep/zipsweep/internal/extract"
	"github.com/zipsweep/zipsweep/internal/model"
	"github.com/zipsweep/zipsweep/internal/store"
	"github.com/zipsweep/zipsweep/internal/surface"
)

// Controller runs one sweep against one widget session. It is not safe
// for concurrent use; every query goes through the same page, so seeds
// are processed strictly in order.
type Controller struct {
	surface   surface.Surface
	driver    *driver.Driver
	extractor *extract.Extractor
	store     *store.Store
	cfg       *config.Config

	logger   *slog.Logger
	progress io.Writer
	db       *database.SweepDB
	runID    int64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the structured logger. The default discards all
// log output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// WithProgress sets the writer per-seed progress lines go to, normally
// standard error. The default discards them.
func WithProgress(w io.Writer) Option {
	return func(c *Controller) { c.progress = w }
}

// WithHistory mirrors per-seed results into the run history database
// under the given run id.
func WithHistory(db *database.SweepDB, runID int64) Option {
	return func(c *Controller) {
		c.db = db
		c.runID = runID
	}
}

// NewController wires a Controller from its collaborators.
func NewController(s surface.Surface, d *driver.Driver, ex *extract.Extractor, st *store.Store, cfg *config.Config, opts ...Option) *Controller {
	c := &Controller{
		surface:   s,
		driver:    d,
		extractor: ex,
		store:     st,
		cfg:       cfg,
		logger:    slog.New(slog.DiscardHandler),
		progress:  io.Discard,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Bootstrap loads the widget page and readies it for queries: navigate,
// dismiss consent overlays, wait for the form, force the radius. Any
// failure here is a setup failure and aborts the run before the first
// seed.
func (c *Controller) Bootstrap(ctx context.Context) error {
	c.logger.Info("loading widget page", "url", c.cfg.WidgetURL)
	if err := c.surface.Navigate(ctx, c.cfg.WidgetURL); err != nil {
		return fmt.Errorf("navigate to widget: %w", err)
	}
	if n, err := surface.DismissBanners(ctx, c.surface); err != nil {
		c.logger.Debug("dismiss banners", "error", err)
	} else if n > 0 {
		c.logger.Debug("dismissed overlay buttons", "count", n)
	}
	if err := c.driver.Prepare(ctx); err != nil {
		return fmt.Errorf("prepare widget: %w", err)
	}
	return nil
}

// Run sweeps the seeds in order and returns the run summary. A failed
// seed never aborts the run; only context cancellation, a failed
// session refresh, or a result store write error does. The summary is
// valid even on error and covers the seeds processed so far.
func (c *Controller) Run(ctx context.Context, seeds []model.Seed) (*model.RunSummary, error) {
	if c.cfg.MaxSeeds > 0 && len(seeds) > c.cfg.MaxSeeds {
		seeds = seeds[:c.cfg.MaxSeeds]
	}
	summary := &model.RunSummary{
		Profile:     c.cfg.ProfileName,
		Region:      c.cfg.Region,
		StartedAt:   time.Now(),
		UniqueTotal: c.store.Len(),
	}
	defer func() { summary.Elapsed = time.Since(summary.StartedAt) }()

	c.logger.Info("starting sweep",
		"seeds", len(seeds),
		"region", c.cfg.Region,
		"output", c.store.Path(),
	)
	for i, seed := range seeds {
		select {
		case <-ctx.Done():
			return summary, ctx.Err()
		default:
		}
		if i > 0 && c.cfg.RefreshEvery > 0 && i%c.cfg.RefreshEvery == 0 {
			if err := c.refresh(ctx); err != nil {
				return summary, fmt.Errorf("refresh session: %w", err)
			}
		}
		rec, err := c.processSeed(ctx, i+1, seed)
		if err != nil {
			return summary, err
		}
		summary.Observe(rec)
		c.emitProgress(rec, len(seeds))
		c.logger.Debug("seed processed",
			"seed", rec.Seed, "mode", rec.Mode, "found", rec.Found, "new", rec.New)
		if c.db != nil {
			if err := c.db.SaveSeedResult(ctx, c.runID, rec); err != nil {
				c.logger.Warn("save seed result", "seed", seed, "error", err)
			}
		}
		if i < len(seeds)-1 && c.cfg.Delay > 0 {
			select {
			case <-ctx.Done():
				return summary, ctx.Err()
			case <-time.After(c.cfg.Delay):
			}
		}
	}
	c.logger.Info("sweep finished",
		"processed", summary.SeedsProcessed,
		"failed", summary.FailedSeeds,
		"new", summary.NewAddresses,
		"unique", summary.UniqueTotal,
	)
	return summary, nil
}

// processSeed runs one seed through the bare query with a qualified
// fallback and merges extracted addresses into the store. The returned
// error is non-nil only for store write failures, which are fatal
// because the store's contents must stay durable between seeds.
func (c *Controller) processSeed(ctx context.Context, index int, seed model.Seed) (model.ProgressRecord, error) {
	panel, mode := c.submitSeed(ctx, seed)
	if mode == model.ModeFailed {
		c.logger.Warn("seed failed", "seed", seed)
		return model.ProgressRecord{
			Index:       index,
			Seed:        seed,
			Mode:        model.ModeFailed,
			UniqueTotal: c.store.Len(),
		}, nil
	}

	addrs := c.extractor.Extract(panel)
	newCount := 0
	for _, addr := range addrs {
		added, aerr := c.store.Add(addr)
		if aerr != nil {
			return model.ProgressRecord{}, fmt.Errorf("store address for seed %s: %w", seed, aerr)
		}
		if added {
			newCount++
		}
	}
	return model.ProgressRecord{
		Index:       index,
		Seed:        seed,
		Mode:        mode,
		Found:       len(addrs),
		New:         newCount,
		UniqueTotal: c.store.Len(),
	}, nil
}

// submitSeed runs the bare form and, on failure, the qualified fallback.
// It returns the panel text of the first successful attempt and the mode
// that succeeded, or ModeFailed when both attempts miss.
func (c *Controller) submitSeed(ctx context.Context, seed model.Seed) (string, model.QueryMode) {
	for _, form := range []model.QueryForm{model.FormBare, model.FormQualified} {
		query := seed.String()
		if form == model.FormQualified {
			query = seed.Qualified(c.cfg.Region)
		}

		panel, err := c.driver.Submit(ctx, query)
		attempt := model.QueryAttempt{Seed: seed, Form: form, Outcome: model.OutcomeOK}
		if err != nil {
			attempt.Outcome = model.OutcomeFailed
			c.logger.Debug("query attempt failed",
				"seed", attempt.Seed, "form", attempt.Form, "error", err)
			continue
		}
		c.logger.Debug("query attempt succeeded",
			"seed", attempt.Seed, "form", attempt.Form)

		if form == model.FormQualified {
			return panel, model.ModeQualified
		}
		return panel, model.ModeBare
	}
	return "", model.ModeFailed
}

// refresh reloads the widget page to shed accumulated page state and
// reprepares the form. Long sweeps leak memory in the widget's own
// scripts, so the controller does this every RefreshEvery seeds.
func (c *Controller) refresh(ctx context.Context) error {
	c.logger.Info("refreshing widget session")
	if err := c.surface.Reload(ctx); err != nil {
		return fmt.Errorf("reload page: %w", err)
	}
	if _, err := surface.DismissBanners(ctx, c.surface); err != nil {
		c.logger.Debug("dismiss banners", "error", err)
	}
	return c.driver.Prepare(ctx)
}

func (c *Controller) emitProgress(rec model.ProgressRecord, total int) {
	fmt.Fprintf(c.progress, "[%d/%d] %s mode=%s found=%d new=%d total=%d\n",
		rec.Index, total, rec.Seed, rec.Mode, rec.Found, rec.New, rec.UniqueTotal)
}
