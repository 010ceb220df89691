// Package store persists the deduplicated set of extracted addresses.
//
// The durable format is a plain text file: a fixed header line, then one
// normalized address per line, newline-terminated and append-only. There
// is no escaping scheme; normalization guarantees addresses contain no
// newlines. On startup every line after the header is loaded into the
// in-memory set, so the set is always the durable log deduplicated by
// normalized string.
package store
