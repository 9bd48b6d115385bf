// cookiejar/cookiejar.go

/* The cookiejar package manages cookies for the adapter's HTTP client.
Clustered JAMF Pro instances sit behind sticky-session load balancers
(APBALANCEID), so keeping the session cookie between calls pins the adapter to
one node. The package also supports injecting custom cookies from
configuration. */

package cookiejar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// sensitiveCookieNames are cookie values redacted before logging.
var sensitiveCookieNames = map[string]bool{
	"APBALANCEID": true,
	"JSESSIONID":  true,
}

// SetupCookieJar initializes the HTTP client with a cookie jar if enabled in
// the configuration, seeding it with any custom cookies for the server URL.
func SetupCookieJar(client *http.Client, enabled bool, customCookies map[string]string, serverURL string, log logger.Logger) error {
	if !enabled {
		return nil
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return fmt.Errorf("setup cookie jar: %w", err)
	}

	if len(customCookies) > 0 {
		u, err := url.Parse(serverURL)
		if err != nil {
			return fmt.Errorf("setup cookie jar: invalid server url: %w", err)
		}
		cookies := make([]*http.Cookie, 0, len(customCookies))
		for name, value := range customCookies {
			cookies = append(cookies, &http.Cookie{Name: name, Value: value})
		}
		jar.SetCookies(u, cookies)
		// The jar holds its own copies, so the log view can be redacted
		// in place.
		for _, cookie := range RedactSensitiveCookies(cookies) {
			log.Debug("Seeded custom cookie",
				zap.String("name", cookie.Name), zap.String("value", cookie.Value))
		}
	}

	client.Jar = jar
	return nil
}

// RedactSensitiveCookies redacts session-identifying cookie values in place and
// returns the slice for logging.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	for _, cookie := range cookies {
		if sensitiveCookieNames[cookie.Name] {
			cookie.Value = "REDACTED"
		}
	}
	return cookies
}
