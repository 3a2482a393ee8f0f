package page

import "strings"

// HandleAnchorClick smooth-scrolls to the element an in-page link points at.
// It reports whether a target was found; the caller suppresses the default
// jump either way.
func (c *Controller) HandleAnchorClick(href string) bool {
	id := strings.TrimPrefix(href, "#")
	if id == "" || id == href {
		return false
	}

	target := c.doc.ByID(id)
	if target == nil {
		return false
	}
	target.ScrollIntoView(true)
	return true
}
