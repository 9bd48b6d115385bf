// httpclient/headers.go
package httpclient

import (
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
	"github.com/harborsec/go-jamf-classic-adapter/redact"
	"github.com/harborsec/go-jamf-classic-adapter/version"
)

// setRequestHeaders applies basic authentication and the standard headers to a
// request. The Classic API defaults to XML responses unless JSON is requested.
func (c *Client) setRequestHeaders(req *http.Request, contentType, requestID string) {
	req.SetBasicAuth(c.config.Username, c.config.Password)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
}

// logHeaders prints the request headers at debug level, redacting credentials
// when the configuration asks for it.
func (c *Client) logHeaders(req *http.Request) {
	if c.Logger.GetLogLevel() > logger.LogLevelDebug {
		return
	}

	redactedHeaders := http.Header{}
	for name, values := range req.Header {
		if len(values) > 0 {
			redactedHeaders.Set(name, redact.RedactSensitiveHeaderData(c.config.HideSensitiveData, name, values[0]))
		}
	}

	c.Logger.Debug("HTTP request headers", zap.String("headers", HeadersToString(redactedHeaders)))
}

// HeadersToString converts a http.Header to a string for logging,
// with each header on a new line for readability.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	return strings.Join(headerStrings, "\n")
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	if deprecationHeader := resp.Header.Get("Deprecation"); deprecationHeader != "" {
		log.Warn("API endpoint is deprecated",
			zap.String("date", deprecationHeader),
			zap.String("endpoint", resp.Request.URL.String()),
		)
	}
}
