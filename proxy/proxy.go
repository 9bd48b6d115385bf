// proxy/proxy.go

package proxy

import (
	"crypto/tls"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/harborsec/go-jamf-classic-adapter/logger"
)

// ConfigureTransport builds the client transport from the proxy and TLS
// settings. useProxy enables the system proxy environment (HTTP_PROXY et al);
// an explicit proxyURL, with optional embedded credentials, overrides it.
// When verifyTLS is false the transport accepts any server certificate.
func ConfigureTransport(httpClient *http.Client, useProxy bool, proxyURL, proxyUsername, proxyPassword string, verifyTLS bool, log logger.Logger) error {
	transport := &http.Transport{}

	if !verifyTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
		log.Warn("TLS certificate verification disabled")
	}

	switch {
	case proxyURL != "":
		parsedProxyURL, err := url.Parse(proxyURL)
		if err != nil {
			log.Warn("Failed to parse proxy URL", zap.Error(err))
			return err
		}

		if proxyUsername != "" && proxyPassword != "" {
			proxyAuth := url.UserPassword(proxyUsername, proxyPassword)
			parsedProxyURL.User = proxyAuth
			transport.ProxyConnectHeader = http.Header{
				"Proxy-Authorization": []string{proxyAuth.String()},
			}
		}

		transport.Proxy = http.ProxyURL(parsedProxyURL)
		log.Info("Proxy configured", zap.String("proxy_url", parsedProxyURL.Redacted()))

	case useProxy:
		transport.Proxy = http.ProxyFromEnvironment
		log.Info("Using system proxy environment")
	}

	httpClient.Transport = transport
	return nil
}
