package page

import "time"

const (
	PageExitDelay     = 300 * time.Millisecond
	SectionScrollWait = 100 * time.Millisecond

	hiddenClass = "hidden"
)

// ShowPage hides every page, then reveals pageID once the exit transition
// has run. A non-empty section is scrolled into view shortly after.
func (c *Controller) ShowPage(pageID, section string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range c.doc.QueryAll(".page") {
		p.AddClass(hiddenClass)
	}

	c.later(PageExitDelay, func() {
		target := c.doc.ByID(pageID)
		if target == nil {
			return
		}
		target.RemoveClass(hiddenClass)
		c.doc.ScrollTo(0, 0)

		if section == "" {
			return
		}
		c.later(SectionScrollWait, func() {
			if el := c.doc.ByID(section); el != nil {
				el.ScrollIntoView(true)
			}
		})
	})
}
