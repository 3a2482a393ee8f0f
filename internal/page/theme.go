package page

type Theme string

const (
	ThemeDefault  Theme = ""
	ThemeInverted Theme = "inverted"

	themeAttr = "data-theme"
)

// ToggleTheme flips the body between the default and inverted themes. The
// label names the theme the button switches to next.
func (c *Controller) ToggleTheme() {
	c.mu.Lock()
	defer c.mu.Unlock()

	label := "Light"
	if c.state.Theme == ThemeInverted {
		c.state.Theme = ThemeDefault
		label = "Dark"
	} else {
		c.state.Theme = ThemeInverted
	}

	if body := c.doc.Body(); body != nil {
		body.SetAttr(themeAttr, string(c.state.Theme))
	}
	if text := c.doc.Query(".toggle-text"); text != nil {
		text.SetText(label)
	}
}
