package patron

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCheckoutSession_ReturnsURL(t *testing.T) {
	var got CheckoutRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"url":"https://pay.example/sess_1"}`))
	}))
	defer srv.Close()

	url, err := NewClient(srv.URL, srv.Client()).CreateCheckoutSession(context.Background(), CheckoutRequest{Amount: 500, Type: TypeMonthly})

	require.NoError(t, err)
	assert.Equal(t, "https://pay.example/sess_1", url)
	assert.Equal(t, CheckoutRequest{Amount: 500, Type: TypeMonthly}, got)
}

func TestCreateCheckoutSession_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"支援タイプが不正です"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).CreateCheckoutSession(context.Background(), CheckoutRequest{Amount: 500, Type: "yearly"})

	assert.ErrorIs(t, err, ErrNoCheckoutURL)
	assert.Contains(t, err.Error(), "支援タイプが不正です")
}

func TestCreateCheckoutSession_NonJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("Not Found"))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).CreateCheckoutSession(context.Background(), CheckoutRequest{Amount: 500, Type: TypeOneTime})

	assert.Error(t, err)
}

func TestTypeValid(t *testing.T) {
	assert.True(t, TypeOneTime.Valid())
	assert.True(t, TypeMonthly.Valid())
	assert.False(t, Type("yearly").Valid())
	assert.False(t, Type("").Valid())
	assert.True(t, TypeMonthly.Recurring())
	assert.False(t, TypeOneTime.Recurring())
}
