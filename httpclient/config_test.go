// httpclient/config_test.go
package httpclient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ServerURL: "https://example.jamfcloud.com",
		Username:  "api-reader",
		Password:  "hunter2",
	}
}

func TestConfigValidateDefaults(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, DefaultMaxRetryAttempts, cfg.MaxRetryAttempts)
	assert.Equal(t, DefaultTotalRetryDuration, cfg.TotalRetryDuration)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogFormat, cfg.LogFormat)
	assert.True(t, cfg.TLSVerificationEnabled())
}

func TestConfigValidateTrimsTrailingSlash(t *testing.T) {
	cfg := validConfig()
	cfg.ServerURL = "https://example.jamfcloud.com/"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://example.jamfcloud.com", cfg.ServerURL)
}

func TestConfigValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "MissingServerURL", mutate: func(c *Config) { c.ServerURL = "" }},
		{name: "RelativeServerURL", mutate: func(c *Config) { c.ServerURL = "example.jamfcloud.com" }},
		{name: "BadScheme", mutate: func(c *Config) { c.ServerURL = "ftp://example.com" }},
		{name: "MissingUsername", mutate: func(c *Config) { c.Username = "" }},
		{name: "MissingPassword", mutate: func(c *Config) { c.Password = "" }},
		{name: "NegativeTimeout", mutate: func(c *Config) { c.Timeout = -time.Second }},
		{name: "NegativeRetries", mutate: func(c *Config) { c.MaxRetryAttempts = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server_url: https://example.jamfcloud.com
username: api-reader
password: hunter2
verify_tls: false
use_proxy: true
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "https://example.jamfcloud.com", cfg.ServerURL)
	assert.Equal(t, "api-reader", cfg.Username)
	assert.False(t, cfg.TLSVerificationEnabled())
	assert.True(t, cfg.UseProxy)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfigFromFileMissing(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("JAMF_SERVER_URL", "https://env.jamfcloud.com")
	t.Setenv("JAMF_USERNAME", "env-user")
	t.Setenv("JAMF_PASSWORD", "env-pass")
	t.Setenv("JAMF_VERIFY_TLS", "false")
	t.Setenv("JAMF_TIMEOUT", "45s")

	cfg := LoadConfigFromEnv(nil)
	assert.Equal(t, "https://env.jamfcloud.com", cfg.ServerURL)
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, "env-pass", cfg.Password)
	assert.False(t, cfg.TLSVerificationEnabled())
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestLoadConfigFromEnvOverridesFileValues(t *testing.T) {
	t.Setenv("JAMF_PASSWORD", "from-env")

	cfg := validConfig()
	out := LoadConfigFromEnv(&cfg)
	assert.Equal(t, "from-env", out.Password)
	assert.Equal(t, "api-reader", out.Username)
}
