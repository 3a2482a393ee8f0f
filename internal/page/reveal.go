package page

// RevealThreshold is the visible fraction at which an element is revealed.
const RevealThreshold = 0.1

const visibleClass = "visible"

// Intersection is one observer entry.
type Intersection struct {
	Target       Element
	Intersecting bool
}

// RevealTargets are the elements to hand to the intersection observer.
func (c *Controller) RevealTargets() []Element {
	return c.doc.QueryAll(".reveal")
}

// Reveal marks intersecting targets visible. Revealed elements stay visible.
func (c *Controller) Reveal(entries []Intersection) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, entry := range entries {
		if !entry.Intersecting || entry.Target == nil || entry.Target.HasClass(visibleClass) {
			continue
		}
		entry.Target.AddClass(visibleClass)
		c.state.RevealedCount++
	}
}
