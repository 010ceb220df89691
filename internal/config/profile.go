package config

import "time"

// Profile holds sweep settings for a single locator widget. Profiles let
// one installation sweep several widgets (or several regions of one
// widget) without repeating flags.
type Profile struct {
	// URL is the locator widget page.
	URL string `yaml:"url,omitempty"`

	// Region is the two-letter region code.
	Region string `yaml:"region,omitempty"`

	// ZipMin and ZipMax bound the seed range.
	ZipMin int `yaml:"zipMin,omitempty"`
	ZipMax int `yaml:"zipMax,omitempty"`

	// Step overrides the seed sampling interval.
	Step int `yaml:"step,omitempty"`

	// Output is the address log path for this profile.
	Output string `yaml:"output,omitempty"`

	// Radius is the value forced onto the radius selector.
	Radius string `yaml:"radius,omitempty"`

	// RefreshEvery overrides the session refresh interval.
	RefreshEvery int `yaml:"refreshEvery,omitempty"`

	// DelayMS overrides the inter-seed delay, in milliseconds.
	// YAML has no duration type, so the unit is fixed here.
	DelayMS int `yaml:"delayMs,omitempty"`

	// Selectors override the widget element selectors.
	Selectors ProfileSelectors `yaml:"selectors,omitempty"`
}

// ProfileSelectors mirrors Selectors with YAML tags and omitempty
// semantics so profiles only override what they set.
type ProfileSelectors struct {
	Input          string `yaml:"input,omitempty"`
	Radius         string `yaml:"radius,omitempty"`
	Button         string `yaml:"button,omitempty"`
	Panel          string `yaml:"panel,omitempty"`
	SearchFunction string `yaml:"searchFunction,omitempty"`
}

// File represents the structure of the .zipsweep profile file.
type File struct {
	// Profiles maps profile names to their settings.
	Profiles map[string]Profile `yaml:"profiles,omitempty"`

	// Defaults applies to every profile unless overridden.
	Defaults Profile `yaml:"defaults,omitempty"`
}

// GetProfile returns the named profile merged over the file's defaults.
// An unknown name returns the defaults alone, so a file with only a
// defaults block still works with any --profile value.
func (f *File) GetProfile(name string) Profile {
	result := f.Defaults
	p, ok := f.Profiles[name]
	if !ok {
		return result
	}

	if p.URL != "" {
		result.URL = p.URL
	}
	if p.Region != "" {
		result.Region = p.Region
	}
	if p.ZipMin != 0 {
		result.ZipMin = p.ZipMin
	}
	if p.ZipMax != 0 {
		result.ZipMax = p.ZipMax
	}
	if p.Step != 0 {
		result.Step = p.Step
	}
	if p.Output != "" {
		result.Output = p.Output
	}
	if p.Radius != "" {
		result.Radius = p.Radius
	}
	if p.RefreshEvery != 0 {
		result.RefreshEvery = p.RefreshEvery
	}
	if p.DelayMS != 0 {
		result.DelayMS = p.DelayMS
	}
	if p.Selectors.Input != "" {
		result.Selectors.Input = p.Selectors.Input
	}
	if p.Selectors.Radius != "" {
		result.Selectors.Radius = p.Selectors.Radius
	}
	if p.Selectors.Button != "" {
		result.Selectors.Button = p.Selectors.Button
	}
	if p.Selectors.Panel != "" {
		result.Selectors.Panel = p.Selectors.Panel
	}
	if p.Selectors.SearchFunction != "" {
		result.Selectors.SearchFunction = p.Selectors.SearchFunction
	}
	return result
}

// Apply overlays the profile's non-zero settings onto the Config.
// Flag values applied after this still win, so precedence is
// flags > profile > built-in defaults.
func (c *Config) Apply(p Profile) {
	if p.URL != "" {
		c.WidgetURL = p.URL
	}
	if p.Region != "" {
		c.Region = p.Region
	}
	if p.ZipMin != 0 {
		c.ZipMin = p.ZipMin
	}
	if p.ZipMax != 0 {
		c.ZipMax = p.ZipMax
	}
	if p.Step != 0 {
		c.Step = p.Step
	}
	if p.Output != "" {
		c.OutputPath = p.Output
	}
	if p.Radius != "" {
		c.RadiusValue = p.Radius
	}
	if p.RefreshEvery != 0 {
		c.RefreshEvery = p.RefreshEvery
	}
	if p.DelayMS != 0 {
		c.Delay = time.Duration(p.DelayMS) * time.Millisecond
	}
	if p.Selectors.Input != "" {
		c.Selectors.Input = p.Selectors.Input
	}
	if p.Selectors.Radius != "" {
		c.Selectors.Radius = p.Selectors.Radius
	}
	if p.Selectors.Button != "" {
		c.Selectors.Button = p.Selectors.Button
	}
	if p.Selectors.Panel != "" {
		c.Selectors.Panel = p.Selectors.Panel
	}
	if p.Selectors.SearchFunction != "" {
		c.Selectors.SearchFunction = p.Selectors.SearchFunction
	}
}
