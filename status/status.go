// status/status.go
// This package classifies HTTP status codes for the request layer: which
// responses are worth retrying with idempotent methods, and how to phrase the
// common JAMF Classic API failures for the caller.
package status

import (
	"fmt"
	"net/http"
)

// IsNonRetryableStatusCode checks if the provided response indicates a non-retryable error.
func IsNonRetryableStatusCode(resp *http.Response) bool {
	nonRetryableStatusCodes := map[int]bool{
		http.StatusBadRequest:                  true,
		http.StatusUnauthorized:                true,
		http.StatusPaymentRequired:             true,
		http.StatusForbidden:                   true,
		http.StatusNotFound:                    true,
		http.StatusMethodNotAllowed:            true,
		http.StatusNotAcceptable:               true,
		http.StatusConflict:                    true,
		http.StatusGone:                        true,
		http.StatusUnsupportedMediaType:        true,
		http.StatusUnprocessableEntity:         true,
		http.StatusLocked:                      true,
		http.StatusRequestHeaderFieldsTooLarge: true,
	}

	return resp != nil && nonRetryableStatusCodes[resp.StatusCode]
}

// IsTransientError checks if an HTTP response indicates a transient error.
func IsTransientError(resp *http.Response) bool {
	transientStatusCodes := map[int]bool{
		http.StatusRequestTimeout:      true,
		http.StatusInternalServerError: true,
		http.StatusBadGateway:          true,
		http.StatusServiceUnavailable:  true,
		http.StatusGatewayTimeout:      true,
	}
	return resp != nil && transientStatusCodes[resp.StatusCode]
}

// IsRateLimitError checks whether the response is a 429.
func IsRateLimitError(resp *http.Response) bool {
	return resp != nil && resp.StatusCode == http.StatusTooManyRequests
}

// TranslateStatusCode provides a human-readable message for status codes the
// Classic API commonly returns.
func TranslateStatusCode(resp *http.Response) string {
	if resp == nil {
		return "no response received"
	}

	messages := map[int]string{
		http.StatusUnauthorized:        "authentication failed, check username and password",
		http.StatusForbidden:           "the account lacks privileges for this resource",
		http.StatusNotFound:            "the server cannot find the requested resource",
		http.StatusConflict:            "the request conflicts with the server state, often a duplicate resource",
		http.StatusTooManyRequests:     "rate limit exceeded",
		http.StatusInternalServerError: "the server encountered an unexpected condition",
		http.StatusBadGateway:          "received an invalid response from the upstream server",
		http.StatusServiceUnavailable:  "the server is currently unable to handle the request",
	}

	if msg, ok := messages[resp.StatusCode]; ok {
		return msg
	}
	return fmt.Sprintf("unexpected status: %s", http.StatusText(resp.StatusCode))
}
