// Package page drives the portfolio page: theme, heartbeat pulse, page
// switching, lightbox, scroll-reveal, anchor scrolling and the patron form.
//
// The DOM is reached only through Document and Element so the controller runs
// unchanged in the browser (see package dom) and in tests.
package page

import "time"

type Element interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
	// RestartAnimation removes and re-adds class so a CSS animation bound to
	// it plays again from the start.
	RestartAnimation(class string)
	SetText(text string)
	Attr(name string) string
	SetAttr(name, value string)
	RemoveAttr(name string)
	ScrollIntoView(smooth bool)
	Query(selector string) Element
	QueryAll(selector string) []Element
}

type Document interface {
	Body() Element
	// ByID returns nil when no element has the id.
	ByID(id string) Element
	Query(selector string) Element
	QueryAll(selector string) []Element
	ScrollTo(x, y int)
	Navigate(url string)
	Alert(message string)
}

// Scheduler runs callbacks later. Both methods return a function that
// cancels further runs.
type Scheduler interface {
	After(d time.Duration, f func()) (stop func())
	Every(d time.Duration, f func()) (stop func())
}
