package patron

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultEndpoint is where the deployed patron form sends checkout requests.
const DefaultEndpoint = "https://mamonis-patron.xxxmoaomxxx.workers.dev/create-checkout-session"

var ErrNoCheckoutURL = errors.New("checkout response has no url")

// Client posts checkout requests to the checkout endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
	}
}

// CreateCheckoutSession returns the hosted checkout URL for req.
// The response body decides the outcome, not the status code: any body
// without a url is a failure.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("encoding checkout request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("building checkout request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("sending checkout request: %w", err)
	}
	defer resp.Body.Close()

	var data CheckoutResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("decoding checkout response (status %d): %w", resp.StatusCode, err)
	}

	if data.URL == "" {
		if data.Error != "" {
			return "", fmt.Errorf("%w: %s", ErrNoCheckoutURL, data.Error)
		}
		return "", ErrNoCheckoutURL
	}

	return data.URL, nil
}
