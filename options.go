package solidgate

import (
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/sumup/solidgate-go/signature"
)

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type config struct {
	baseURL  string
	client   Doer
	logger   *zap.Logger
	encoding signature.Encoding
	clock    func() time.Time
}

// Option customizes an API client.
type Option func(*config)

// WithBaseURL overrides the façade's default API origin, e.g. for a sandbox or
// a test server. The path prefix (such as /api/v1/) must be included.
func WithBaseURL(baseURL string) Option {
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		panic("solidgate: base URL must be absolute")
	}
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithHTTPClient sets the transport used to send requests. Defaults to
// http.DefaultClient.
func WithHTTPClient(client Doer) Option {
	return func(cfg *config) {
		if client != nil {
			cfg.client = client
		}
	}
}

// WithLogger enables request logging. Keys, signatures and bodies are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WithSignatureEncoding selects how request and form signatures encode the
// HMAC digest. Defaults to [signature.DigestRaw].
func WithSignatureEncoding(encoding signature.Encoding) Option {
	return func(cfg *config) {
		cfg.encoding = encoding
	}
}

// withClock provides deterministic time in tests.
func withClock(fn func() time.Time) Option {
	return func(cfg *config) {
		cfg.clock = fn
	}
}

func newConfig(baseURL string, opts []Option) config {
	cfg := config{
		baseURL: baseURL,
		client:  http.DefaultClient,
		logger:  zap.NewNop(),
		clock:   time.Now,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	return cfg
}

// Middleware wraps webhook handlers.
type Middleware func(http.HandlerFunc) http.HandlerFunc

func applyMiddleware(h http.HandlerFunc, middleware ...Middleware) http.HandlerFunc {
	for _, m := range middleware {
		h = m(h)
	}
	return h
}
