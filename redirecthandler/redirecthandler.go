// redirecthandler/redirecthandler.go
package redirecthandler

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// sensitiveHeaders are stripped when a redirect leaves the original host.
var sensitiveHeaders = []string{"Authorization", "Cookie"}

// SetupRedirectHandler applies the redirect policy to an http.Client. When
// followRedirects is false the client returns the redirect response as-is so
// the caller sees the original status code and Location header.
func SetupRedirectHandler(client *http.Client, followRedirects bool, maxRedirects int, log logger.Logger) error {
	if !followRedirects {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
		return nil
	}

	if maxRedirects < 1 {
		return fmt.Errorf("max redirects must be at least 1, got %d", maxRedirects)
	}

	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		// Never follow redirects for non-idempotent methods; re-submitting a
		// device command to a new location is not safe.
		if req.Method == http.MethodPost || req.Method == http.MethodPatch {
			log.Warn("Redirect attempted on non-idempotent method, not following", zap.String("method", req.Method))
			return http.ErrUseLastResponse
		}

		if len(via) >= maxRedirects {
			log.Warn("Maximum redirects reached", zap.Int("max_redirects", maxRedirects))
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}

		if req.URL.Host != via[0].URL.Host {
			for _, header := range sensitiveHeaders {
				req.Header.Del(header)
			}
			log.Debug("Stripped credentials for cross-host redirect",
				zap.String("from", via[0].URL.Host), zap.String("to", req.URL.Host))
		}

		log.Debug("Following redirect", zap.String("url", req.URL.String()), zap.Int("redirect_count", len(via)))
		return nil
	}
	return nil
}
