package surface

import (
	"context"
	"errors"
	"fmt"

	"github.com/chromedp/chromedp"
)

// userAgent is presented to the widget host. A desktop UA avoids the
// mobile layout, which renders the results panel under a different
// selector.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// ErrElementNotFound is returned when a selector matches nothing during
// a scripted interaction such as SelectOption.
var ErrElementNotFound = errors.New("surface: element not found")

// Chrome drives a Chromium instance through the DevTools protocol. It
// owns the browser lifecycle: New starts the process and Close tears it
// down.
type Chrome struct {
	browserCtx  context.Context
	cancel      context.CancelFunc
	allocCancel context.CancelFunc
}

var _ Surface = (*Chrome)(nil)

// New launches a browser. When headless is false the window is shown,
// which is useful for debugging selector changes on the widget page.
func New(ctx context.Context, headless bool) (*Chrome, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, cancel := chromedp.NewContext(allocCtx)

	// Starting the browser eagerly surfaces a missing Chromium binary
	// as a setup failure instead of a mid-run error.
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}
	return &Chrome{
		browserCtx:  browserCtx,
		cancel:      cancel,
		allocCancel: allocCancel,
	}, nil
}

// Close shuts the browser down. Safe to call once; the Chrome value must
// not be used afterwards.
func (c *Chrome) Close() {
	c.cancel()
	c.allocCancel()
}

// run executes actions under the browser context while honoring the
// caller's cancellation and deadline.
func (c *Chrome) run(ctx context.Context, actions ...chromedp.Action) error {
	var (
		runCtx context.Context
		cancel context.CancelFunc
	)
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(c.browserCtx, deadline)
	} else {
		runCtx, cancel = context.WithCancel(c.browserCtx)
	}
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()
	return chromedp.Run(runCtx, actions...)
}

// Navigate implements Surface.
func (c *Chrome) Navigate(ctx context.Context, url string) error {
	return c.run(ctx, chromedp.Navigate(url))
}

// Reload implements Surface.
func (c *Chrome) Reload(ctx context.Context) error {
	return c.run(ctx, chromedp.Reload())
}

// WaitVisible implements Surface.
func (c *Chrome) WaitVisible(ctx context.Context, selector string) error {
	return c.run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

// Text implements Surface.
func (c *Chrome) Text(ctx context.Context, selector string) (string, error) {
	var s string
	err := c.run(ctx, chromedp.Text(selector, &s, chromedp.ByQuery))
	return s, err
}

// HTML implements Surface.
func (c *Chrome) HTML(ctx context.Context, selector string) (string, error) {
	var s string
	err := c.run(ctx, chromedp.OuterHTML(selector, &s, chromedp.ByQuery))
	return s, err
}

// Value implements Surface.
func (c *Chrome) Value(ctx context.Context, selector string) (string, error) {
	var s string
	err := c.run(ctx, chromedp.Value(selector, &s, chromedp.ByQuery))
	return s, err
}

// SetValue implements Surface.
func (c *Chrome) SetValue(ctx context.Context, selector, value string) error {
	return c.run(ctx, chromedp.SetValue(selector, value, chromedp.ByQuery))
}

// SelectOption implements Surface. chromedp's SetValue does not fire a
// change event, and the locator widget only reads the radius when one
// fires, so the assignment happens in page script.
func (c *Chrome) SelectOption(ctx context.Context, selector, value string) error {
	var ok bool
	if err := c.Evaluate(ctx, selectOptionJS(selector, value), &ok); err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrElementNotFound, selector)
	}
	return nil
}

// Click implements Surface.
func (c *Chrome) Click(ctx context.Context, selector string) error {
	return c.run(ctx, chromedp.Click(selector, chromedp.ByQuery))
}

// Evaluate implements Surface.
func (c *Chrome) Evaluate(ctx context.Context, expression string, res any) error {
	return c.run(ctx, chromedp.Evaluate(expression, res))
}

// HasFunction implements Surface.
func (c *Chrome) HasFunction(ctx context.Context, name string) (bool, error) {
	var ok bool
	if err := c.Evaluate(ctx, fmt.Sprintf("typeof %s === 'function'", name), &ok); err != nil {
		return false, err
	}
	return ok, nil
}

// CallFunction implements Surface.
func (c *Chrome) CallFunction(ctx context.Context, name string) error {
	return c.Evaluate(ctx, fmt.Sprintf("%s(); true", name), nil)
}

func selectOptionJS(selector, value string) string {
	return fmt.Sprintf(`(() => {
	const el = document.querySelector(%q);
	if (!el) { return false; }
	el.value = %q;
	el.dispatchEvent(new Event('change', { bubbles: true }));
	return true;
})()`, selector, value)
}
