package surface

import "context"

// Surface is the minimal capability set the query driver needs from a
// browser-like engine. All selectors are CSS selectors. Methods honor
// cancellation and deadlines carried by ctx.
type Surface interface {
	// Navigate loads url in the active page.
	Navigate(ctx context.Context, url string) error
	// Reload reloads the active page, discarding widget state.
	Reload(ctx context.Context) error
	// WaitVisible blocks until the first element matching selector is
	// visible, or ctx expires.
	WaitVisible(ctx context.Context, selector string) error
	// Text returns the visible text content of the first element
	// matching selector.
	Text(ctx context.Context, selector string) (string, error)
	// HTML returns the outer HTML of the first element matching
	// selector.
	HTML(ctx context.Context, selector string) (string, error)
	// Value returns the current value of the first form element
	// matching selector.
	Value(ctx context.Context, selector string) (string, error)
	// SetValue assigns value to the first form element matching
	// selector.
	SetValue(ctx context.Context, selector, value string) error
	// SelectOption sets value on a select element and fires its change
	// event so widget listeners observe the update.
	SelectOption(ctx context.Context, selector, value string) error
	// Click dispatches a click on the first element matching selector.
	Click(ctx context.Context, selector string) error
	// Evaluate runs a JavaScript expression in the page and, when res
	// is non-nil, unmarshals the result into it.
	Evaluate(ctx context.Context, expression string, res any) error
	// HasFunction reports whether name is bound to a function in the
	// page's global scope.
	HasFunction(ctx context.Context, name string) (bool, error)
	// CallFunction invokes the named zero-argument global function.
	CallFunction(ctx context.Context, name string) error
}
