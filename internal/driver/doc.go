// Package driver executes single locator queries against the widget.
//
// A Driver owns the interaction protocol for one query: force the
// radius to its maximum, snapshot the results panel, type the query and
// wait for the input to commit, trigger the search through the page's
// global search function when present (falling back to the submit
// button), then poll the panel until its text changes. It knows nothing
// about seeds, fallback forms, or persistence; the session controller
// layers those on top.
package driver
