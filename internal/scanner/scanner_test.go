package scanner

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Scan(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var req scanRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "https://storage.googleapis.com/b/images/x.jpg", req.ImageURL)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"classification":"ripe"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	result, err := c.Scan(context.Background(), "https://storage.googleapis.com/b/images/x.jpg")
	require.NoError(t, err)
	assert.JSONEq(t, `{"classification":"ripe"}`, string(result))
}

func TestClient_Scan_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Scan(context.Background(), "https://example.com/x.jpg")
	assert.ErrorContains(t, err, "unexpected status 500")
}

func TestClient_Scan_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Scan(context.Background(), "https://example.com/x.jpg")
	assert.ErrorContains(t, err, "not valid JSON")
}

func TestClient_Scan_ContextCanceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewClient(srv.URL, 5*time.Second)
	_, err := c.Scan(ctx, "https://example.com/x.jpg")
	assert.Error(t, err)
}
