// httpclient/config.go
// Loads and validates the adapter configuration from a YAML file or
// environment variables. The configuration is built once at startup and is
// immutable afterwards.
package httpclient

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultLogLevel           = "info"
	DefaultLogFormat          = "json"
	DefaultTimeout            = 30 * time.Second
	DefaultMaxRetryAttempts   = 3
	DefaultTotalRetryDuration = 1 * time.Minute
	DefaultMaxRedirects       = 5
)

// Config holds every setting for the adapter. Recognized options mirror the
// integration's configuration surface: server URL, basic credentials, TLS
// trust, proxy use.
type Config struct {
	// Connection
	ServerURL string `yaml:"server_url"`
	Username  string `yaml:"username"`
	Password  string `yaml:"password"`

	// Transport
	VerifyTLS     *bool         `yaml:"verify_tls"` // nil means true
	UseProxy      bool          `yaml:"use_proxy"`
	ProxyURL      string        `yaml:"proxy_url"`
	ProxyUsername string        `yaml:"proxy_username"`
	ProxyPassword string        `yaml:"proxy_password"`
	Timeout       time.Duration `yaml:"timeout"`

	// Retries (idempotent methods only)
	MaxRetryAttempts   int           `yaml:"max_retry_attempts"`
	TotalRetryDuration time.Duration `yaml:"total_retry_duration"`

	// Redirects
	FollowRedirects bool `yaml:"follow_redirects"`
	MaxRedirects    int  `yaml:"max_redirects"`

	// Cookies
	EnableCookieJar bool              `yaml:"enable_cookie_jar"`
	CustomCookies   map[string]string `yaml:"custom_cookies"`

	// Log
	LogLevel          string `yaml:"log_level"`
	LogFormat         string `yaml:"log_format"`
	HideSensitiveData bool   `yaml:"hide_sensitive_data"`
}

// TLSVerificationEnabled reports whether server certificates are verified.
func (c *Config) TLSVerificationEnabled() bool {
	return c.VerifyTLS == nil || *c.VerifyTLS
}

// LoadConfigFromFile reads a YAML configuration file into a Config. Values are
// validated and defaulted by Validate, not here.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// LoadConfigFromEnv populates a Config from JAMF_* environment variables,
// overriding any values already present in cfg. Passing nil starts from an
// empty Config.
func LoadConfigFromEnv(cfg *Config) *Config {
	if cfg == nil {
		cfg = &Config{}
	}

	setString := func(target *string, key string) {
		if v, ok := os.LookupEnv(key); ok {
			*target = v
		}
	}
	setBool := func(target *bool, key string) {
		if v, ok := os.LookupEnv(key); ok {
			if parsed, err := strconv.ParseBool(v); err == nil {
				*target = parsed
			}
		}
	}

	setString(&cfg.ServerURL, "JAMF_SERVER_URL")
	setString(&cfg.Username, "JAMF_USERNAME")
	setString(&cfg.Password, "JAMF_PASSWORD")
	setString(&cfg.ProxyURL, "JAMF_PROXY_URL")
	setString(&cfg.LogLevel, "JAMF_LOG_LEVEL")
	setString(&cfg.LogFormat, "JAMF_LOG_FORMAT")
	setBool(&cfg.UseProxy, "JAMF_USE_PROXY")
	setBool(&cfg.HideSensitiveData, "JAMF_HIDE_SENSITIVE_DATA")

	if v, ok := os.LookupEnv("JAMF_VERIFY_TLS"); ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			cfg.VerifyTLS = &parsed
		}
	}
	if v, ok := os.LookupEnv("JAMF_TIMEOUT"); ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = parsed
		}
	}

	return cfg
}

// Validate applies defaults and rejects malformed configuration before any
// client is built.
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url is required")
	}

	c.ServerURL = strings.TrimRight(c.ServerURL, "/")
	u, err := url.Parse(c.ServerURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("server_url %q must be an absolute http(s) URL", c.ServerURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("server_url scheme %q is not supported", u.Scheme)
	}

	if c.Username == "" || c.Password == "" {
		return errors.New("username and password are required")
	}

	if c.Timeout < 0 {
		return errors.New("timeout cannot be negative")
	}
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}

	if c.MaxRetryAttempts < 0 {
		return errors.New("max_retry_attempts cannot be negative")
	}
	if c.MaxRetryAttempts == 0 {
		c.MaxRetryAttempts = DefaultMaxRetryAttempts
	}

	if c.TotalRetryDuration < 0 {
		return errors.New("total_retry_duration cannot be negative")
	}
	if c.TotalRetryDuration == 0 {
		c.TotalRetryDuration = DefaultTotalRetryDuration
	}

	if c.FollowRedirects && c.MaxRedirects == 0 {
		c.MaxRedirects = DefaultMaxRedirects
	}

	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.LogFormat == "" {
		c.LogFormat = DefaultLogFormat
	}

	return nil
}
