// Package main provides the entry point for the zipsweep CLI.
//
// Zipsweep enumerates a provider-locator widget by sweeping postal-code
// seeds through its search form and collecting the street addresses the
// results panel reveals, deduplicated into a durable text log.
//
// Usage:
//
//	zipsweep sweep
//	zipsweep sweep --zip-min 90000 --zip-max 96199 -o addresses.csv
//
// See --help for all available options.
package main

// main is the entry point for zipsweep.
func main() {
	Execute()
}
