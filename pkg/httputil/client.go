// Package httputil builds the outbound HTTP client used for provider calls.
package httputil

import (
	"net/http"
	"time"
)

const (
	defaultTimeout = 10 * time.Second

	maxIdleConns        = 20
	maxIdleConnsPerHost = 10
	idleConnTimeout     = 90 * time.Second
)

// DefaultUserAgent identifies the catalog to the provider.
const DefaultUserAgent = "gocatalog/1.0"

// NewHTTPClient returns a pooled client with the given overall timeout;
// zero or negative means the default.
// Every request carries a JSON Accept header and DefaultUserAgent unless
// the caller already set them.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			base: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        maxIdleConns,
				MaxIdleConnsPerHost: maxIdleConnsPerHost,
				IdleConnTimeout:     idleConnTimeout,
			},
			userAgent: DefaultUserAgent,
		},
	}
}

type headerTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" && req.Header.Get("Accept") != "" {
		return t.base.RoundTrip(req)
	}

	// RoundTrippers must not modify the caller's request.
	clone := req.Clone(req.Context())
	if clone.Header.Get("User-Agent") == "" {
		clone.Header.Set("User-Agent", t.userAgent)
	}
	if clone.Header.Get("Accept") == "" {
		clone.Header.Set("Accept", "application/json")
	}
	return t.base.RoundTrip(clone)
}
