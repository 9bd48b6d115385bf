// redirecthandler/redirecthandler_test.go
package redirecthandler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

func TestRedirectsDisabledReturnsOriginalResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/target", http.StatusMovedPermanently)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := server.Client()
	require.NoError(t, SetupRedirectHandler(client, false, 0, logger.BuildNopLogger()))

	resp, err := client.Get(server.URL + "/moved")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMovedPermanently, resp.StatusCode)
	assert.Equal(t, "/target", resp.Header.Get("Location"))
}

func TestRedirectsFollowedWithinLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/moved" {
			http.Redirect(w, r, "/target", http.StatusFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := server.Client()
	require.NoError(t, SetupRedirectHandler(client, true, 5, logger.BuildNopLogger()))

	resp, err := client.Get(server.URL + "/moved")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRedirectLimitEnforced(t *testing.T) {
	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, server.URL+r.URL.Path+"x", http.StatusFound)
	}))
	defer server.Close()

	client := server.Client()
	require.NoError(t, SetupRedirectHandler(client, true, 2, logger.BuildNopLogger()))

	resp, err := client.Get(server.URL + "/loop")
	if resp != nil {
		defer resp.Body.Close()
	}
	assert.Error(t, err)
}

func TestInvalidMaxRedirects(t *testing.T) {
	err := SetupRedirectHandler(&http.Client{}, true, 0, logger.BuildNopLogger())
	assert.Error(t, err)
}
