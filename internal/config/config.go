package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// Where applicable these mirror the behavior of the one locator widget the
// defaults were tuned against; every value can be overridden per profile.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "zipsweep"

	// DefaultWidgetURL is the embeddable locator widget page. We navigate
	// to the widget directly rather than the page that iframes it, which
	// keeps every selector in the top-level document.
	DefaultWidgetURL = "https://eziz.org/vfc-provider-locations.html"

	// DefaultRegion is the two-letter region code used in the anchor
	// pattern and in the qualified fallback query form.
	DefaultRegion = "CA"

	// DefaultZipMin and DefaultZipMax bound the California ZIP range.
	DefaultZipMin = 90000
	DefaultZipMax = 96199

	// DefaultStep of 25 samples roughly every 25th ZIP code. Combined
	// with the widget's maximum search radius this covers the range
	// without gaps while keeping the query count manageable.
	DefaultStep = 25

	// DefaultJitter centers samples within each step-sized bucket,
	// reducing systematic bias versus always sampling bucket left-edges.
	DefaultJitter = true

	// DefaultOutputFile is the address log written next to the working
	// directory unless overridden.
	DefaultOutputFile = "ca_unique_addresses.csv"

	// DefaultDelay is the fixed inter-seed delay. It bounds the request
	// rate out of politeness; the widget itself imposes no limit we know of.
	DefaultDelay = 450 * time.Millisecond

	// DefaultRefreshEvery forces a full page reload every N seeds.
	// Long sessions accumulate widget-side state (markers, listeners)
	// that eventually slows panel updates past the change timeout.
	DefaultRefreshEvery = 20

	// DefaultMaxSeeds of 0 means process the whole seed sequence.
	DefaultMaxSeeds = 0

	// DefaultRadiusValue is the widest radius the widget offers. A
	// narrower radius risks false negatives near ZIP-code boundaries.
	DefaultRadiusValue = "50"

	// DefaultBootstrapTimeout is the one fatal timeout: how long to wait
	// for the widget's input field on first load and after each refresh.
	DefaultBootstrapTimeout = 30 * time.Second

	// DefaultCommitTimeout bounds the wait for the input field's
	// committed value to equal the query. Guards against async input
	// handling dropping characters.
	DefaultCommitTimeout = 5 * time.Second

	// DefaultPanelTimeout bounds the wait for the results panel to
	// change after a query is triggered.
	DefaultPanelTimeout = 12 * time.Second

	// DefaultPollInterval is how often the panel is re-read while
	// waiting for it to change.
	DefaultPollInterval = 200 * time.Millisecond
)

// Default widget selectors, tuned against the same locator widget as the
// URL above. Profiles override these for differently built widgets.
const (
	DefaultInputSelector  = "#addressInput"
	DefaultRadiusSelector = "#radiusSelect"
	DefaultButtonSelector = `input[type="button"][value="Find Providers"]`
	DefaultPanelSelector  = "#sidebar"

	// DefaultSearchFunction is the in-page function the widget binds its
	// button to. Calling it directly avoids flakiness from overlay or
	// visibility issues on the physical button, so the driver probes for
	// it before falling back to a click.
	DefaultSearchFunction = "searchLocations"
)

// Selectors identifies the widget elements the driver interacts with.
type Selectors struct {
	// Input is the address/ZIP input field.
	Input string

	// Radius is the search-radius <select> element.
	Radius string

	// Button is the submit control, used only when the in-page search
	// function is not detectable.
	Button string

	// Panel is the results panel whose visible text is scraped.
	Panel string

	// SearchFunction is the name of the widget's in-page search function.
	SearchFunction string
}

// Config holds all options for a sweep run.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity, following the same trade-off the rest of the CLI makes:
// the number of options is manageable and nesting would add complexity
// without significant benefit.
type Config struct {
	// WidgetURL is the locator widget page to drive.
	WidgetURL string

	// Region is the two-letter region code for anchor matching and the
	// qualified fallback form.
	Region string

	// ZipMin and ZipMax bound the seed range (inclusive).
	ZipMin int
	ZipMax int

	// Step is the seed sampling interval.
	Step int

	// Jitter shifts the first seed to the center of each step bucket.
	Jitter bool

	// OutputPath is the durable address log location.
	OutputPath string

	// Headless controls whether the browser renders invisibly. Visible
	// rendering is useful when the widget changes and selectors break.
	Headless bool

	// Delay is the fixed inter-seed delay.
	Delay time.Duration

	// MaxSeeds caps the number of seeds processed. 0 means unlimited.
	MaxSeeds int

	// RefreshEvery forces a full session refresh every N seeds.
	// 0 disables refreshing.
	RefreshEvery int

	// RadiusValue is the value forced onto the radius selector before
	// every query.
	RadiusValue string

	// Selectors identifies the widget elements.
	Selectors Selectors

	// BootstrapTimeout is the fatal surface-acquisition timeout.
	BootstrapTimeout time.Duration

	// CommitTimeout bounds the input field commit wait.
	CommitTimeout time.Duration

	// PanelTimeout bounds the panel-change wait.
	PanelTimeout time.Duration

	// PollInterval is the panel polling interval.
	PollInterval time.Duration

	// Verbose enables slog.LevelDebug output.
	Verbose bool

	// ProfilePath is the path to the YAML profile file, if any.
	ProfilePath string

	// ProfileName selects a named profile from the profile file.
	ProfileName string

	// DBDir is the directory for the run-history database. When empty,
	// history is not recorded.
	DBDir string

	// SaveHistory mirrors progress records into the run-history database.
	SaveHistory bool

	// JSONReport outputs the run summary as JSON instead of the
	// human-readable format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport outputs the run summary as Markdown.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile writes the run summary to a file in addition to stdout.
	ReportFile string
}

// NewConfig creates a Config with default values.
//
// Design decision: We use a constructor rather than relying on zero
// values because most defaults are non-zero. The constructor also serves
// as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		WidgetURL:    DefaultWidgetURL,
		Region:       DefaultRegion,
		ZipMin:       DefaultZipMin,
		ZipMax:       DefaultZipMax,
		Step:         DefaultStep,
		Jitter:       DefaultJitter,
		OutputPath:   DefaultOutputFile,
		Headless:     true,
		Delay:        DefaultDelay,
		MaxSeeds:     DefaultMaxSeeds,
		RefreshEvery: DefaultRefreshEvery,
		RadiusValue:  DefaultRadiusValue,
		Selectors: Selectors{
			Input:          DefaultInputSelector,
			Radius:         DefaultRadiusSelector,
			Button:         DefaultButtonSelector,
			Panel:          DefaultPanelSelector,
			SearchFunction: DefaultSearchFunction,
		},
		BootstrapTimeout: DefaultBootstrapTimeout,
		CommitTimeout:    DefaultCommitTimeout,
		PanelTimeout:     DefaultPanelTimeout,
		PollInterval:     DefaultPollInterval,
	}
}

// XDGDataDir returns the XDG data directory for zipsweep, used for the
// run-history database.
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for zipsweep.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks the configuration and returns a sentinel error
// describing the first problem found.
//
// Design decision: We validate once after flag/profile merging rather
// than at each point of use, to fail fast with a clear message before any
// browser is launched.
func (c *Config) Validate() error {
	if c.WidgetURL == "" {
		return ErrNoWidgetURL
	}
	if len(c.Region) != 2 {
		return ErrInvalidRegion
	}
	if c.Step <= 0 {
		return ErrInvalidStep
	}
	if c.ZipMin > c.ZipMax || c.ZipMin < 0 {
		return ErrInvalidZipRange
	}
	if c.OutputPath == "" {
		return ErrNoOutputPath
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.MaxSeeds < 0 {
		return ErrInvalidMaxSeeds
	}
	if c.RefreshEvery < 0 {
		return ErrInvalidRefreshInterval
	}
	if c.PollInterval <= 0 || c.CommitTimeout <= 0 || c.PanelTimeout <= 0 || c.BootstrapTimeout <= 0 {
		return ErrInvalidTimeout
	}
	if c.Selectors.Input == "" || c.Selectors.Panel == "" {
		return ErrMissingSelector
	}
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}
	return nil
}
