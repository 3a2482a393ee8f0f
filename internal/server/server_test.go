package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/mamonis/studio-backend/internal/handler"
	"github.com/mamonis/studio-backend/internal/service"
	"github.com/mamonis/studio-backend/pkg/payment"
	"github.com/mamonis/studio-backend/pkg/qrcode"
	"github.com/mamonis/studio-backend/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stripeMock struct {
	calls  int32
	status int
	body   string
}

func (m *stripeMock) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&m.calls, 1)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(m.status)
	io.WriteString(w, m.body)
}

func newTestApp(t *testing.T, mock *stripeMock, site bool) *fiber.App {
	t.Helper()
	srv := httptest.NewServer(mock)
	t.Cleanup(srv.Close)

	log := zap.NewNop()
	stripeService := payment.NewStripeService("sk_test_123", srv.URL,
		"https://mamonis.studio/success", "https://mamonis.studio/cancel", log)
	paymentService := service.NewPaymentService(stripeService, utils.NewValidator(), log)

	h := Handlers{Payment: handler.NewPaymentHandler(paymentService, log)}
	if site {
		h.Site = handler.NewSiteHandler(qrcode.NewQRService("https://mamonis.studio"), log)
	}
	return New(h, Options{}, log)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func assertCORS(t *testing.T, resp *http.Response) {
	t.Helper()
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", resp.Header.Get("Access-Control-Allow-Headers"))
}

func decode(t *testing.T, body string) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &m))
	return m
}

func TestCheckout_OneTimeSuccess(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{"id":"cs_1","object":"checkout.session","url":"https://pay.example/sess_1"}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"amount":500,"type":"one-time"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"url": "https://pay.example/sess_1"}, decode(t, body))
	assertCORS(t, resp)
	assert.Equal(t, int32(1), atomic.LoadInt32(&mock.calls))
}

func TestCheckout_AmountTooSmall(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"amount":50,"type":"one-time"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "金額は100円以上を指定してください"}, decode(t, body))
	assertCORS(t, resp)
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestCheckout_MissingAmount(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"type":"yearly"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "金額は100円以上を指定してください", decode(t, body)["error"])
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestCheckout_UnknownType(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"amount":1000,"type":"yearly"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "支援タイプが不正です", decode(t, body)["error"])
	assertCORS(t, resp)
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestCheckout_UpstreamErrorNotLeaked(t *testing.T) {
	mock := &stripeMock{
		status: http.StatusPaymentRequired,
		body:   `{"error":{"type":"invalid_request_error","message":"secret upstream detail"}}`,
	}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"amount":1000,"type":"monthly"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "Stripe APIエラーが発生しました"}, decode(t, body))
	assert.NotContains(t, body, "secret upstream detail")
	assertCORS(t, resp)
}

func TestCheckout_MalformedBody(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `{"amount":`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "内部エラーが発生しました", decode(t, body)["error"])
	assertCORS(t, resp)
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestCheckout_NullBody(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{}`}
	app := newTestApp(t, mock, false)

	resp, body := do(t, app, http.MethodPost, "/create-checkout-session", `null`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, map[string]interface{}{"error": "内部エラーが発生しました"}, decode(t, body))
	assertCORS(t, resp)
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestPreflight(t *testing.T) {
	app := newTestApp(t, &stripeMock{status: http.StatusOK}, false)

	for _, path := range []string{"/create-checkout-session", "/anything"} {
		resp, body := do(t, app, http.MethodOptions, path, "")

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Empty(t, body)
		assertCORS(t, resp)
	}
}

func TestNotFound(t *testing.T) {
	mock := &stripeMock{status: http.StatusOK, body: `{"id":"cs_test_1","url":"https://pay.example/sess_1"}`}
	app := newTestApp(t, mock, false)

	cases := []struct{ method, path string }{
		{http.MethodGet, "/create-checkout-session"},
		{http.MethodPost, "/checkout"},
		{http.MethodGet, "/galleries"},
		{http.MethodPut, "/"},
		{http.MethodPost, "/create-checkout-session/"},
		{http.MethodPost, "/CREATE-checkout-session"},
	}
	for _, tc := range cases {
		resp, body := do(t, app, tc.method, tc.path, `{"amount":500,"type":"one-time"}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode, "%s %s", tc.method, tc.path)
		assert.Equal(t, "Not Found", body)
		assertCORS(t, resp)
	}
	assert.Zero(t, atomic.LoadInt32(&mock.calls))
}

func TestPatronQRCodeRoute(t *testing.T) {
	app := newTestApp(t, &stripeMock{status: http.StatusOK}, true)

	resp, body := do(t, app, http.MethodGet, "/patron/qrcode.png?size=200", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.True(t, strings.HasPrefix(body, "\x89PNG"))
}
