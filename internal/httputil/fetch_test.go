// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Success(t *testing.T) {
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<ok/>")
	}))
	defer ts.Close()

	body, err := Get(context.Background(), ts.Client(), ts.URL+"?term=x", "test/0.1")
	require.NoError(t, err)
	assert.Equal(t, "<ok/>", string(body))
	assert.Equal(t, "test/0.1", gotUA)
}

func TestGet_NonSuccessStatusIsUpstreamError(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":"API rate limit exceeded"}`)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL+"?api_key=secret", "")
	require.Error(t, err)

	var upErr *UpstreamError
	require.True(t, errors.As(err, &upErr))
	assert.Equal(t, http.StatusTooManyRequests, upErr.StatusCode)
	assert.Contains(t, upErr.Message, "rate limit")
	assert.NotContains(t, err.Error(), "secret")
	// No retry on 429.
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGet_ServerErrorIsUpstreamError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := Get(context.Background(), ts.Client(), ts.URL, "")
	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, http.StatusInternalServerError, upErr.StatusCode)
	assert.Empty(t, upErr.Message)
}

func TestGet_ConnectionFailureIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	_, err := Get(context.Background(), http.DefaultClient, url, "")
	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, url, trErr.URL)
}

func TestGet_CancelledContextIsTransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	defer ts.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Get(ctx, ts.Client(), ts.URL, "")
	var trErr *TransportError
	require.ErrorAs(t, err, &trErr)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "https://x/efetch.fcgi", redact("https://x/efetch.fcgi?id=1&api_key=k"))
	assert.Equal(t, "https://x/esearch.fcgi", redact("https://x/esearch.fcgi"))
}
