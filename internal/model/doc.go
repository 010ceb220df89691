// Package model defines the core domain types for zipsweep.
//
// The types in this package are plain values shared between the seed
// generator, the query driver, the session controller, and the report
// writers. They carry no behavior beyond validation and formatting so
// that every other package can depend on them without import cycles.
package model
