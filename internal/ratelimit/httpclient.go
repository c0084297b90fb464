package ratelimit

import (
	"context"
	"io"

	"github.com/soundclave/sc-broker/internal/adapter"
)

// limitedHTTPClient routes every request of an adapter.HTTPClient through
// the rate limit proxy under a fixed provider name
type limitedHTTPClient struct {
	proxy    Proxy
	inner    adapter.HTTPClient
	provider string
}

// WrapHTTPClient returns an HTTP client throttled by the proxy. A nil proxy
// returns the inner client unchanged.
func WrapHTTPClient(p Proxy, inner adapter.HTTPClient, provider string) adapter.HTTPClient {
	if p == nil {
		return inner
	}
	return &limitedHTTPClient{
		proxy:    p,
		inner:    inner,
		provider: provider,
	}
}

// Get performs a rate-limited GET request
func (c *limitedHTTPClient) Get(ctx context.Context, url string, result interface{}) error {
	_, err := c.proxy.Request(ctx, c.provider, func(ctx context.Context) (interface{}, error) {
		return nil, c.inner.Get(ctx, url, result)
	})
	return err
}

// Post performs a rate-limited POST request
func (c *limitedHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader) ([]byte, error) {
	return Request(ctx, c.proxy, c.provider, func(ctx context.Context) ([]byte, error) {
		return c.inner.Post(ctx, url, contentType, body)
	})
}
