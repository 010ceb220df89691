// Package config holds all configuration for zipsweep.
//
// Configuration flows one way: CLI flags and an optional YAML profile file
// populate a single flat Config struct, Validate() rejects degenerate
// values up front, and the struct is passed through the application via
// dependency injection. There is no ambient global state.
package config
