package solidgate

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// client is the signing and transport machinery shared by the façades.
type client struct {
	creds   Credentials
	baseURL string
	doer    Doer
	logger  *zap.Logger
	builder RequestBuilder
	clock   func() time.Time
}

func newClient(defaultBaseURL string, creds Credentials, opts []Option) client {
	if creds.PublicKey == "" || creds.SecretKey == "" {
		panic("solidgate: public and secret keys are required")
	}
	cfg := newConfig(defaultBaseURL, opts)
	return client{
		creds:   creds,
		baseURL: cfg.baseURL,
		doer:    cfg.client,
		logger:  cfg.logger,
		builder: NewRequestBuilder(creds, cfg.encoding),
		clock:   cfg.clock,
	}
}

// PublicKey returns the merchant public key sent in the Merchant header.
func (c *client) PublicKey() string {
	return c.creds.PublicKey
}

// BaseURL returns the API origin requests are sent to.
func (c *client) BaseURL() string {
	return c.baseURL
}

// Execute signs payload, POSTs it to path and returns the raw response body.
// Response status codes are not interpreted: a 4xx or 5xx body is returned
// like any other. When the request cannot be sent or its body cannot be read
// the body is empty and the error is a *[TransportFault].
func (c *client) Execute(ctx context.Context, path string, payload any) (string, error) {
	return c.execute(ctx, http.MethodPost, path, payload)
}

func (c *client) execute(ctx context.Context, method, path string, payload any) (string, error) {
	out, err := c.builder.Build(path, payload, method)
	if err != nil {
		return "", err
	}
	req, err := out.HTTPRequest(ctx, c.baseURL)
	if err != nil {
		return "", c.fault(method, path, err)
	}

	start := c.clock()
	resp, err := c.doer.Do(req)
	if err != nil {
		return "", c.fault(method, req.URL.String(), err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", c.fault(method, req.URL.String(), fmt.Errorf("read response body: %w", err))
	}

	c.logger.Debug("solidgate request completed",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Int("response_size", len(body)),
		zap.Duration("duration", c.clock().Sub(start)))

	return string(body), nil
}

func (c *client) fault(method, url string, err error) error {
	c.logger.Warn("solidgate request failed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Error(err))
	return &TransportFault{Method: method, URL: url, Err: err}
}
