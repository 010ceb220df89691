package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/zipsweep/zipsweep/internal/config"
	"github.com/zipsweep/zipsweep/internal/extract"
	"github.com/zipsweep/zipsweep/internal/surface"
)

var (
	// ErrCommitTimeout is returned when the query never appears in the
	// input field within the commit window. The widget sometimes clears
	// the field while its own scripts initialize.
	ErrCommitTimeout = errors.New("driver: input value did not commit")

	// ErrPanelUnchanged is returned when the results panel text does
	// not change within the panel window after a search was triggered.
	ErrPanelUnchanged = errors.New("driver: results panel did not change")
)

// Driver runs the query protocol against a Surface. It is not safe for
// concurrent use; the session controller issues queries one at a time.
type Driver struct {
	surface   surface.Surface
	selectors config.Selectors
	radius    string

	bootstrapTimeout time.Duration
	commitTimeout    time.Duration
	panelTimeout     time.Duration
	pollInterval     time.Duration
}

// New creates a Driver bound to s, taking selectors, the radius value,
// and all interaction timeouts from cfg.
func New(s surface.Surface, cfg *config.Config) *Driver {
	return &Driver{
		surface:          s,
		selectors:        cfg.Selectors,
		radius:           cfg.RadiusValue,
		bootstrapTimeout: cfg.BootstrapTimeout,
		commitTimeout:    cfg.CommitTimeout,
		panelTimeout:     cfg.PanelTimeout,
		pollInterval:     cfg.PollInterval,
	}
}

// Prepare waits for the widget's input field to become visible and
// forces the radius control to the configured maximum. A timeout here
// means the widget never loaded and the run cannot proceed.
func (d *Driver) Prepare(ctx context.Context) error {
	wctx, cancel := context.WithTimeout(ctx, d.bootstrapTimeout)
	defer cancel()
	if err := d.surface.WaitVisible(wctx, d.selectors.Input); err != nil {
		return fmt.Errorf("wait for widget input %s: %w", d.selectors.Input, err)
	}
	return d.forceRadius(ctx)
}

// Submit runs one query and returns the results panel text captured
// after the panel changed. The returned text is raw flattened panel
// content; address extraction is the caller's concern. Errors are
// transient from the run's point of view: the caller may retry with a
// different query form or move on to the next seed.
func (d *Driver) Submit(ctx context.Context, query string) (string, error) {
	if err := d.forceRadius(ctx); err != nil {
		return "", fmt.Errorf("force radius: %w", err)
	}
	before, err := d.PanelText(ctx)
	if err != nil {
		return "", fmt.Errorf("read panel: %w", err)
	}
	if err := d.commitInput(ctx, query); err != nil {
		return "", err
	}
	if err := d.triggerSearch(ctx); err != nil {
		return "", err
	}
	return d.waitPanelChange(ctx, before)
}

// PanelText returns the current results panel content flattened to
// plain text with element boundaries preserved as newlines. When the
// panel markup cannot be parsed it falls back to the surface's own text
// extraction, which loses some boundaries but never blocks a query.
func (d *Driver) PanelText(ctx context.Context) (string, error) {
	markup, err := d.surface.HTML(ctx, d.selectors.Panel)
	if err != nil {
		return "", err
	}
	text, err := extract.PanelText(markup)
	if err != nil {
		return d.surface.Text(ctx, d.selectors.Panel)
	}
	return text, nil
}

// forceRadius pins the radius select to the configured maximum. The
// widget resets it on some reloads, so it is reapplied before every
// query.
func (d *Driver) forceRadius(ctx context.Context) error {
	if err := d.surface.SelectOption(ctx, d.selectors.Radius, d.radius); err != nil {
		return fmt.Errorf("select radius %q: %w", d.radius, err)
	}
	return nil
}

// commitInput assigns query to the input field and waits until reading
// the field back yields the same value. The assignment is reissued on
// each poll because widget scripts may clear the field during their own
// initialization.
func (d *Driver) commitInput(ctx context.Context, query string) error {
	cctx, cancel := context.WithTimeout(ctx, d.commitTimeout)
	defer cancel()
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()
	for {
		if err := d.surface.SetValue(cctx, d.selectors.Input, query); err == nil {
			got, verr := d.surface.Value(cctx, d.selectors.Input)
			if verr == nil && got == query {
				return nil
			}
		}
		select {
		case <-cctx.Done():
			return fmt.Errorf("%w: %q", ErrCommitTimeout, query)
		case <-ticker.C:
		}
	}
}

// triggerSearch starts the search. Calling the widget's global search
// function directly is preferred because the button's click handler is
// attached late on slow loads; the button is the fallback. The button
// wait is bounded by the panel window: the caller's context usually has
// no deadline of its own, and a missing submit control must surface as
// a per-seed failure rather than stall the run.
func (d *Driver) triggerSearch(ctx context.Context) error {
	ok, err := d.surface.HasFunction(ctx, d.selectors.SearchFunction)
	if err != nil {
		return fmt.Errorf("probe %s: %w", d.selectors.SearchFunction, err)
	}
	if ok {
		if err := d.surface.CallFunction(ctx, d.selectors.SearchFunction); err != nil {
			return fmt.Errorf("call %s: %w", d.selectors.SearchFunction, err)
		}
		return nil
	}
	wctx, cancel := context.WithTimeout(ctx, d.panelTimeout)
	defer cancel()
	if err := d.surface.WaitVisible(wctx, d.selectors.Button); err != nil {
		return fmt.Errorf("wait for submit button: %w", err)
	}
	if err := d.surface.Click(ctx, d.selectors.Button); err != nil {
		return fmt.Errorf("click submit button: %w", err)
	}
	return nil
}

// waitPanelChange polls the panel until its normalized text is non-empty
// and differs from the pre-submit snapshot. Read errors during the poll
// are tolerated because the panel's nodes detach while the widget
// rerenders.
func (d *Driver) waitPanelChange(ctx context.Context, before string) (string, error) {
	pctx, cancel := context.WithTimeout(ctx, d.panelTimeout)
	defer cancel()
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()
	norm := extract.Normalize(before)
	for {
		text, err := d.PanelText(pctx)
		if err == nil {
			if n := extract.Normalize(text); n != "" && n != norm {
				return text, nil
			}
		}
		select {
		case <-pctx.Done():
			return "", ErrPanelUnchanged
		case <-ticker.C:
		}
	}
}
