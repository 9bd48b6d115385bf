// httpclient/client.go
/* The httpclient package provides the HTTP client the adapter uses to talk to
the JAMF Classic API. It wires basic authentication, TLS trust and proxy
settings, an optional sticky-session cookie jar, redirect policy, and a
retry strategy restricted to idempotent methods. The main Client structure
encapsulates the immutable configuration, the logger, and an embedded
standard HTTP client. */
package httpclient

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/cookiejar"
	"github.com/harborsec/go-jamf-classic-adapter/logger"
	"github.com/harborsec/go-jamf-classic-adapter/proxy"
	"github.com/harborsec/go-jamf-classic-adapter/redact"
	"github.com/harborsec/go-jamf-classic-adapter/redirecthandler"
)

// classicAPIPrefix is the root path of every Classic API resource.
const classicAPIPrefix = "/JSSResource"

// Client executes authenticated requests against one JAMF server instance.
type Client struct {
	config Config
	http   *http.Client
	Logger logger.Logger
}

// BuildClient creates a new HTTP client with the provided configuration. The
// configuration is validated (and defaulted) before anything is constructed.
func BuildClient(config Config) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log := logger.BuildLogger(logger.ParseLogLevelFromString(config.LogLevel), config.LogFormat)

	return buildClientWithLogger(config, log)
}

// BuildClientWithLogger is BuildClient with a caller-supplied logger. Used by
// tests and by hosts that already own a logger.
func BuildClientWithLogger(config Config, log logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return buildClientWithLogger(config, log)
}

func buildClientWithLogger(config Config, log logger.Logger) (*Client, error) {
	httpClient := &http.Client{
		Timeout: config.Timeout,
	}

	if err := proxy.ConfigureTransport(httpClient, config.UseProxy, config.ProxyURL,
		config.ProxyUsername, config.ProxyPassword, config.TLSVerificationEnabled(), log); err != nil {
		return nil, err
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		return nil, err
	}

	if err := cookiejar.SetupCookieJar(httpClient, config.EnableCookieJar, config.CustomCookies, config.ServerURL, log); err != nil {
		return nil, err
	}

	client := &Client{
		config: config,
		http:   httpClient,
		Logger: log,
	}

	log.Debug("New API client initialized",
		zap.String("server_url", config.ServerURL),
		zap.String("username", config.Username),
		zap.String("password", redact.RedactSensitiveValue(config.Password)),
		zap.Bool("verify_tls", config.TLSVerificationEnabled()),
		zap.Bool("use_proxy", config.UseProxy),
		zap.Bool("cookie_jar", config.EnableCookieJar),
		zap.Int("max_retry_attempts", config.MaxRetryAttempts),
		zap.Duration("timeout", config.Timeout),
	)

	return client, nil
}

// ServerURL returns the configured base URL.
func (c *Client) ServerURL() string {
	return c.config.ServerURL
}
