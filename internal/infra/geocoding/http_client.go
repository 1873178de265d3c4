package geocoding

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient builds the client used for resolver calls. The default
// client has no timeout, so the transport is configured explicitly.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}

	return &http.Client{Timeout: timeout, Transport: t}
}
