// Package report renders run summaries for humans and tools.
//
// Three formats are supported: plain text for terminals, JSON for
// programmatic consumers, and Markdown for documentation. All writers
// share the Writer interface, and MultiWriter fans one summary out to
// several destinations at once.
package report
