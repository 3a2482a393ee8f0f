package page

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mamonis/studio-backend/pkg/patron"
)

const (
	MsgAmountTooSmall = "金額は100円以上を入力してください"
	MsgCheckoutFailed = "エラーが発生しました。もう一度お試しください。"

	patronSubmitID = "patron-submit"
)

var (
	ErrInvalidAmount    = errors.New("amount must be an integer of at least 100")
	ErrSubmitInProgress = errors.New("patron form already submitting")
)

// SelectPatronType records the chosen type and moves the active styling to
// its button.
func (c *Controller) SelectPatronType(t patron.Type) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state.PatronType = t
	for _, btn := range c.doc.QueryAll(".patron-type-btn") {
		if patron.Type(btn.Attr("data-type")) == t {
			btn.AddClass(activeClass)
		} else {
			btn.RemoveClass(activeClass)
		}
	}
}

// SubmitPatron checks the amount, asks the checkout endpoint for a session
// and redirects to it. Every failure is shown to the user as an alert and
// also returned. A submit while another is in flight is ignored.
//
// SubmitPatron blocks on the network; the browser binding calls it from its
// own goroutine.
func (c *Controller) SubmitPatron(ctx context.Context, amountText string) error {
	amount, err := strconv.ParseInt(strings.TrimSpace(amountText), 10, 64)
	if err != nil || amount < patron.MinAmount {
		c.doc.Alert(MsgAmountTooSmall)
		return ErrInvalidAmount
	}

	c.mu.Lock()
	if c.state.Submitting {
		c.mu.Unlock()
		return ErrSubmitInProgress
	}
	c.state.Submitting = true
	req := patron.CheckoutRequest{Amount: amount, Type: c.state.PatronType}
	c.setSubmitDisabled(true)
	c.mu.Unlock()

	url, err := c.client.CreateCheckoutSession(ctx, req)

	c.mu.Lock()
	c.state.Submitting = false
	c.setSubmitDisabled(false)
	c.mu.Unlock()

	if err != nil {
		c.doc.Alert(MsgCheckoutFailed)
		return fmt.Errorf("creating checkout session: %w", err)
	}

	c.doc.Navigate(url)
	return nil
}

func (c *Controller) setSubmitDisabled(disabled bool) {
	btn := c.doc.ByID(patronSubmitID)
	if btn == nil {
		return
	}
	if disabled {
		btn.SetAttr("disabled", "")
	} else {
		btn.RemoveAttr("disabled")
	}
}
