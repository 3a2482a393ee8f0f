package page

const activeClass = "active"

// OpenLightbox shows item index of gallery, e.g. ("works", 2) for the third
// item of #works-gallery.
func (c *Controller) OpenLightbox(gallery string, index int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.Gallery = gallery
	c.state.Index = index
	c.state.LightboxOpen = true

	if lb := c.doc.ByID("lightbox"); lb != nil {
		lb.AddClass(activeClass)
	}
	c.showLightboxImage(c.galleryItems())
}

func (c *Controller) CloseLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.LightboxOpen = false
	if lb := c.doc.ByID("lightbox"); lb != nil {
		lb.RemoveClass(activeClass)
	}
}

func (c *Controller) PrevLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLightbox(-1)
}

func (c *Controller) NextLightbox() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stepLightbox(1)
}

// HandleKey applies the lightbox shortcuts. They are bound globally and act
// whether or not the lightbox is open.
func (c *Controller) HandleKey(key string) {
	switch key {
	case "Escape":
		c.CloseLightbox()
	case "ArrowLeft":
		c.PrevLightbox()
	case "ArrowRight":
		c.NextLightbox()
	}
}

// stepLightbox moves the index by delta with wrap-around. Callers hold mu.
func (c *Controller) stepLightbox(delta int) {
	items := c.galleryItems()
	n := len(items)
	if n == 0 {
		return
	}
	c.state.Index = ((c.state.Index+delta)%n + n) % n
	c.showLightboxImage(items)
}

func (c *Controller) galleryItems() []Element {
	if c.state.Gallery == "" {
		return nil
	}
	gallery := c.doc.ByID(c.state.Gallery + "-gallery")
	if gallery == nil {
		return nil
	}
	return gallery.QueryAll(".masonry-item")
}

// showLightboxImage points #lightbox-img at the current item's image, taken
// from its data-src or its first img.
func (c *Controller) showLightboxImage(items []Element) {
	if c.state.Index < 0 || c.state.Index >= len(items) {
		return
	}
	img := c.doc.ByID("lightbox-img")
	if img == nil {
		return
	}

	item := items[c.state.Index]
	src := item.Attr("data-src")
	if src == "" {
		if inner := item.Query("img"); inner != nil {
			src = inner.Attr("src")
		}
	}
	if src != "" {
		img.SetAttr("src", src)
	}
}
