// ratehandler/ratehandler.go
// Parses rate-limiting response headers and computes retry backoff for the
// request layer. Only idempotent requests ever consult this package.
package ratehandler

import (
	"math/rand"
	"net/http"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

const (
	baseDelay    = 500 * time.Millisecond
	maxDelay     = 30 * time.Second
	jitterFactor = 0.5
	// skewBuffer pads X-RateLimit-Reset waits against clock skew.
	skewBuffer = 5 * time.Second
)

// NewExponentialBackOff returns the backoff policy applied to transient
// failures of idempotent requests.
func NewExponentialBackOff(maxElapsed time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = baseDelay
	b.MaxInterval = maxDelay
	b.MaxElapsedTime = maxElapsed
	b.RandomizationFactor = jitterFactor
	b.Reset()
	return b
}

// ParseRateLimitHeaders inspects a 429 response for Retry-After and
// X-RateLimit-Reset headers and returns how long to wait before retrying.
// Returns zero when no usable header is present.
func ParseRateLimitHeaders(resp *http.Response, log logger.Logger) time.Duration {
	if retryAfter := resp.Header.Get("Retry-After"); retryAfter != "" {
		if waitSeconds, err := strconv.Atoi(retryAfter); err == nil {
			return time.Duration(waitSeconds) * time.Second
		}
		if retryAfterDate, err := time.Parse(time.RFC1123, retryAfter); err == nil {
			return time.Until(retryAfterDate)
		}
		log.Warn("Unrecognized Retry-After format", zap.String("retry_after", retryAfter))
	}

	if resp.Header.Get("X-RateLimit-Remaining") == "0" {
		if resetTimeStr := resp.Header.Get("X-RateLimit-Reset"); resetTimeStr != "" {
			if resetTimeEpoch, err := strconv.ParseInt(resetTimeStr, 10, 64); err == nil {
				resetTime := time.Unix(resetTimeEpoch, 0)
				return time.Until(resetTime) + skewBuffer
			}
			log.Warn("Unrecognized X-RateLimit-Reset format", zap.String("reset", resetTimeStr))
		}
	}

	return 0
}

// CalculateBackoff computes an exponential backoff with jitter for the given
// retry attempt, capped at maxDelay.
func CalculateBackoff(retry int) time.Duration {
	delay := float64(baseDelay) * float64(uint(1)<<uint(retry))
	if delay > float64(maxDelay) {
		delay = float64(maxDelay)
	}

	jitter := (rand.Float64()*2 - 1) * jitterFactor * delay
	delay += jitter
	if delay > float64(maxDelay) {
		return maxDelay
	}
	return time.Duration(delay)
}
