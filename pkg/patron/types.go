// Package patron holds the wire types shared by the checkout endpoint and the
// browser-side patron form.
package patron

// Type is the kind of patronage a supporter picks on the patron page.
type Type string

const (
	TypeOneTime Type = "one-time"
	TypeMonthly Type = "monthly"
)

// MinAmount is the smallest accepted contribution in yen.
const MinAmount = 100

func (t Type) Valid() bool {
	return t == TypeOneTime || t == TypeMonthly
}

// Recurring reports whether the type is billed every month.
func (t Type) Recurring() bool {
	return t == TypeMonthly
}

type CheckoutRequest struct {
	Amount int64 `json:"amount"`
	Type   Type  `json:"type"`
}

type CheckoutResponse struct {
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}
