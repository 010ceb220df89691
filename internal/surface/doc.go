// Package surface abstracts the UI-automation engine that hosts the
// locator widget.
//
// The query driver and session controller depend only on the Surface
// interface: navigate, locate, read, write, click, evaluate, reload. The
// Chrome implementation drives a headless (or visible) Chromium via
// chromedp; tests substitute a scripted fake. Nothing above this package
// knows which engine is in use.
package surface
