// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/ratehandler"
	"github.com/harborsec/go-jamf-classic-adapter/response"
	"github.com/harborsec/go-jamf-classic-adapter/status"
)

// Request describes one call to a Classic API endpoint. Endpoint is the path
// below /JSSResource with its segments already escaped; Body, when non-nil, is
// marshaled according to ContentType (JSON unless an XML content type is set).
type Request struct {
	Method      string
	Endpoint    string
	Query       url.Values
	Body        any
	ContentType string
}

// Do executes the request and decodes a successful response into out (out may
// be nil when the payload does not matter). Idempotent methods retry transient
// failures with exponential backoff; everything else executes exactly once.
// A non-2xx response is returned as a *response.APIError carrying the status
// code and raw body.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if req.Method == "" || req.Endpoint == "" {
		return fmt.Errorf("request requires a method and an endpoint")
	}

	if IsIdempotentHTTPMethod(req.Method) {
		return c.executeWithRetries(ctx, req, out)
	}
	return c.execute(ctx, req, out)
}

// Get is shorthand for a GET request.
func (c *Client) Get(ctx context.Context, endpoint string, query url.Values, out any) error {
	return c.Do(ctx, Request{Method: http.MethodGet, Endpoint: endpoint, Query: query}, out)
}

// executeWithRetries runs an idempotent request, retrying transient errors
// (408, 429, and the retryable 5xx codes) with exponential backoff and
// jitter, bounded by MaxRetryAttempts and TotalRetryDuration. 429 waits honor
// the server's rate-limit headers when present.
func (c *Client) executeWithRetries(ctx context.Context, req Request, out any) error {
	policy := ratehandler.NewExponentialBackOff(c.config.TotalRetryDuration)
	retryCount := 0

	for {
		resp, err := c.doRequest(ctx, req)
		if err != nil {
			return err
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			err = response.HandleAPISuccessResponse(resp, out, c.Logger)
			resp.Body.Close()
			return err
		}

		apiErr := response.HandleAPIErrorResponse(resp)
		resp.Body.Close()

		if status.IsNonRetryableStatusCode(resp) ||
			!(status.IsTransientError(resp) || status.IsRateLimitError(resp)) {
			c.Logger.Warn("Non-retryable error received",
				zap.Int("status_code", resp.StatusCode),
				zap.String("status_message", status.TranslateStatusCode(resp)))
			return apiErr
		}

		retryCount++
		if retryCount > c.config.MaxRetryAttempts {
			c.Logger.Warn("Max retry attempts reached",
				zap.String("method", req.Method), zap.String("endpoint", req.Endpoint))
			return apiErr
		}

		var waitDuration time.Duration
		if status.IsRateLimitError(resp) {
			waitDuration = ratehandler.ParseRateLimitHeaders(resp, c.Logger)
			if waitDuration <= 0 {
				// 429 without usable headers: back off by attempt count.
				waitDuration = ratehandler.CalculateBackoff(retryCount)
			}
		}
		if waitDuration <= 0 {
			waitDuration = policy.NextBackOff()
			if waitDuration == backoff.Stop {
				c.Logger.Warn("Total retry duration exhausted",
					zap.String("method", req.Method), zap.String("endpoint", req.Endpoint))
				return apiErr
			}
		}

		c.Logger.Warn("Retrying request",
			zap.String("method", req.Method),
			zap.String("endpoint", req.Endpoint),
			zap.Int("retry_count", retryCount),
			zap.Duration("wait", waitDuration))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitDuration):
		}
	}
}

// execute runs a non-idempotent request exactly once.
func (c *Client) execute(ctx context.Context, req Request, out any) error {
	resp, err := c.doRequest(ctx, req)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		err = response.HandleAPISuccessResponse(resp, out, c.Logger)
		resp.Body.Close()
		return err
	}

	apiErr := response.HandleAPIErrorResponse(resp)
	resp.Body.Close()
	return apiErr
}

// doRequest builds and sends the HTTP request.
func (c *Client) doRequest(ctx context.Context, req Request) (*http.Response, error) {
	fullURL := c.config.ServerURL + classicAPIPrefix + req.Endpoint
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	bodyBytes, contentType, err := marshalRequestBody(req.Body, req.ContentType)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	c.setRequestHeaders(httpReq, contentType, requestID)
	c.logHeaders(httpReq)

	startTime := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.Logger.Warn("Failed to send request",
			zap.String("method", req.Method),
			zap.String("endpoint", req.Endpoint),
			zap.String("request_id", requestID),
			zap.Error(err))
		return nil, err
	}

	CheckDeprecationHeader(resp, c.Logger)

	c.Logger.Debug("Request sent",
		zap.String("method", req.Method),
		zap.String("endpoint", req.Endpoint),
		zap.String("request_id", requestID),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", time.Since(startTime)))

	return resp, nil
}

// marshalRequestBody serializes body per the content type. A nil body yields
// an empty payload; []byte passes through untouched.
func marshalRequestBody(body any, contentType string) ([]byte, string, error) {
	if body == nil {
		return nil, "", nil
	}

	if raw, ok := body.([]byte); ok {
		if contentType == "" {
			contentType = "application/json"
		}
		return raw, contentType, nil
	}

	switch contentType {
	case "application/xml", "text/xml":
		data, err := xml.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshal xml request body: %w", err)
		}
		return data, contentType, nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", fmt.Errorf("marshal json request body: %w", err)
		}
		return data, "application/json", nil
	}
}
