package page

import (
	"context"
	"sync"
	"time"

	"github.com/mamonis/studio-backend/pkg/patron"
)

// CheckoutClient creates a hosted checkout session and returns its URL.
type CheckoutClient interface {
	CreateCheckoutSession(ctx context.Context, req patron.CheckoutRequest) (string, error)
}

// State is every piece of mutable UI state on the page.
type State struct {
	Theme Theme
	// WaveIndex is the next pulse element to animate.
	WaveIndex int

	Gallery       string
	Index         int
	LightboxOpen  bool
	PatronType    patron.Type
	Submitting    bool
	RevealedCount int
}

// Controller owns State. Timer callbacks run on their own goroutines, so
// every handler takes mu.
type Controller struct {
	doc    Document
	sched  Scheduler
	client CheckoutClient

	mu            sync.Mutex
	state         State
	stopHeartbeat func()
	stopped       bool
}

func NewController(doc Document, sched Scheduler, client CheckoutClient) *Controller {
	theme := ThemeDefault
	if body := doc.Body(); body != nil && Theme(body.Attr(themeAttr)) == ThemeInverted {
		theme = ThemeInverted
	}

	return &Controller{
		doc:    doc,
		sched:  sched,
		client: client,
		state: State{
			Theme:      theme,
			PatronType: patron.TypeOneTime,
		},
	}
}

// Start begins the heartbeat loop.
func (c *Controller) Start() {
	c.startHeartbeat()
}

// Stop cancels the heartbeat. Delayed callbacks already scheduled become
// no-ops.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	if c.stopHeartbeat != nil {
		c.stopHeartbeat()
		c.stopHeartbeat = nil
	}
}

// State returns a copy of the current UI state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// later runs f under mu after d unless the controller was stopped.
func (c *Controller) later(d time.Duration, f func()) {
	c.sched.After(d, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.stopped {
			return
		}
		f()
	})
}
