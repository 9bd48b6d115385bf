// status/status_test.go
package status

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func respWithStatus(code int) *http.Response {
	return &http.Response{StatusCode: code}
}

func TestIsTransientError(t *testing.T) {
	assert.True(t, IsTransientError(respWithStatus(http.StatusServiceUnavailable)))
	assert.True(t, IsTransientError(respWithStatus(http.StatusBadGateway)))
	assert.False(t, IsTransientError(respWithStatus(http.StatusNotFound)))
	assert.False(t, IsTransientError(nil))
}

func TestIsNonRetryableStatusCode(t *testing.T) {
	assert.True(t, IsNonRetryableStatusCode(respWithStatus(http.StatusUnauthorized)))
	assert.True(t, IsNonRetryableStatusCode(respWithStatus(http.StatusNotFound)))
	assert.False(t, IsNonRetryableStatusCode(respWithStatus(http.StatusInternalServerError)))
	assert.False(t, IsNonRetryableStatusCode(nil))
}

func TestIsRateLimitError(t *testing.T) {
	assert.True(t, IsRateLimitError(respWithStatus(http.StatusTooManyRequests)))
	assert.False(t, IsRateLimitError(respWithStatus(http.StatusOK)))
}

func TestTranslateStatusCode(t *testing.T) {
	assert.Equal(t, "authentication failed, check username and password", TranslateStatusCode(respWithStatus(http.StatusUnauthorized)))
	assert.Equal(t, "the server cannot find the requested resource", TranslateStatusCode(respWithStatus(http.StatusNotFound)))
	assert.Equal(t, "no response received", TranslateStatusCode(nil))
	assert.Contains(t, TranslateStatusCode(respWithStatus(http.StatusTeapot)), "unexpected status")
}
