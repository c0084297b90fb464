package adapter_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soundclave/sc-broker/internal/adapter"
	"github.com/soundclave/sc-broker/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestPost_RetriesWithFullBody(t *testing.T) {
	payload := []byte(`{"method":"submit","params":[{"tx_json":{}}]}`)

	var mu sync.Mutex
	var received [][]byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		mu.Lock()
		received = append(received, body)
		attempt := len(received)
		mu.Unlock()

		if attempt == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`{"result":{"status":"success"}}`))
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(10 * time.Second)
	resp, err := client.Post(context.Background(), server.URL, "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	assert.Equal(t, `{"result":{"status":"success"}}`, string(resp))

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	// The rate-limited first attempt consumed the body; the retry must
	// resubmit the same payload, not an empty one
	assert.Equal(t, payload, received[0])
	assert.Equal(t, payload, received[1])
}

func TestPost_NonRetryableStatusFailsFast(t *testing.T) {
	var mu sync.Mutex
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		requests++
		mu.Unlock()
		http.Error(w, "no such method", http.StatusBadRequest)
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(10 * time.Second)
	_, err := client.Post(context.Background(), server.URL, "application/json", bytes.NewReader([]byte(`{}`)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status code 400")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, requests)
}

func TestGet_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	}))
	defer server.Close()

	client := adapter.NewHTTPClient(10 * time.Second)

	var result struct {
		Status string `json:"status"`
	}
	require.NoError(t, client.Get(context.Background(), server.URL, &result))
	assert.Equal(t, "ok", result.Status)
}
