// httpclient/request_test.go
package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
	"github.com/harborsec/go-jamf-classic-adapter/response"
)

func testClient(t *testing.T, serverURL string, mutate func(*Config)) *Client {
	t.Helper()
	cfg := Config{
		ServerURL:          serverURL,
		Username:           "api-reader",
		Password:           "hunter2",
		MaxRetryAttempts:   2,
		TotalRetryDuration: 5 * time.Second,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	client, err := BuildClientWithLogger(cfg, logger.BuildNopLogger())
	require.NoError(t, err)
	return client
}

func TestDoSendsBasicAuthAndAcceptHeaders(t *testing.T) {
	var gotAuth, gotAccept string
	router := mux.NewRouter()
	router.HandleFunc("/JSSResource/computers/id/{id}", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"computer":{"general":{"id":138}}}`))
	})
	server := httptest.NewServer(router)
	defer server.Close()

	client := testClient(t, server.URL, nil)

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/computers/id/138", nil, &out))
	assert.Contains(t, gotAuth, "Basic ")
	assert.Equal(t, "application/json", gotAccept)
	assert.Contains(t, out, "computer")
}

func TestDoRetriesTransientErrorsOnGET(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"size":0}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/computers/subset/basic", nil, &out))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDoDoesNotRetryNonTransientErrorOnGET(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotImplemented)
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	err := client.Get(context.Background(), "/computers/subset/basic", nil, nil)
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDoRetriesRateLimitWithoutHeaders(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// No Retry-After or X-RateLimit headers; the client falls back to
		// its own backoff.
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"size":0}`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	var out map[string]any
	require.NoError(t, client.Get(context.Background(), "/computers/subset/basic", nil, &out))
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestDoNeverRetriesPOST(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	err := client.Do(context.Background(), Request{
		Method:   http.MethodPost,
		Endpoint: "/computercommands/command/DeviceLock/passcode/123456/id/138",
	}, nil)
	require.Error(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))
}

func TestDoSurfacesAPIErrorWithBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`<html><body><p>Error: resource not found</p></body></html>`))
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	err := client.Get(context.Background(), "/computers/id/9999", nil, nil)
	require.Error(t, err)
	require.True(t, response.IsNotFound(err))

	apiErr, ok := err.(*response.APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, apiErr.RawResponse, "resource not found")
}

func TestDoStopsRetryingAfterMaxAttempts(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := testClient(t, server.URL, func(c *Config) { c.MaxRetryAttempts = 2 })

	err := client.Get(context.Background(), "/computers/subset/basic", nil, nil)
	require.Error(t, err)
	// Initial attempt plus two retries.
	assert.EqualValues(t, 3, atomic.LoadInt32(&calls))
}

func TestDoRespectsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := testClient(t, server.URL, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := client.Get(ctx, "/computers/subset/basic", nil, nil)
	assert.Error(t, err)
}

func TestDoRequiresMethodAndEndpoint(t *testing.T) {
	client := testClient(t, "https://example.jamfcloud.com", nil)
	assert.Error(t, client.Do(context.Background(), Request{}, nil))
}

func TestIsIdempotentHTTPMethod(t *testing.T) {
	assert.True(t, IsIdempotentHTTPMethod(http.MethodGet))
	assert.True(t, IsIdempotentHTTPMethod(http.MethodDelete))
	assert.False(t, IsIdempotentHTTPMethod(http.MethodPost))
	assert.False(t, IsIdempotentHTTPMethod(http.MethodPatch))
	assert.False(t, IsIdempotentHTTPMethod(""))
}
