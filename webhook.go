package solidgate

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sumup/solidgate-go/signature"
)

// WebhookEvent is a verified callback.
type WebhookEvent struct {
	// Type is the Solidgate-Event-Type header, empty when absent.
	Type string
	// Body is the callback body exactly as it was signed.
	Body json.RawMessage
}

// Decode unmarshals the event body into v.
func (e WebhookEvent) Decode(v any) error {
	return json.Unmarshal(e.Body, v)
}

// WebhookReceiver handles verified callbacks. Returning an *[Error] controls
// the response; any other error answers 500.
type WebhookReceiver interface {
	HandleWebhook(ctx context.Context, event WebhookEvent) error
}

// WebhookReceiverFunc lifts bare functions into [WebhookReceiver].
type WebhookReceiverFunc func(ctx context.Context, event WebhookEvent) error

// HandleWebhook calls f.
func (f WebhookReceiverFunc) HandleWebhook(ctx context.Context, event WebhookEvent) error {
	return f(ctx, event)
}

type webhookConfig struct {
	middleware []Middleware
	logger     *zap.Logger
}

// WebhookOption customizes a [WebhookHandler].
type WebhookOption func(*webhookConfig)

// WithWebhookMiddleware appends middleware that runs after verification.
func WithWebhookMiddleware(middleware ...Middleware) WebhookOption {
	return func(cfg *webhookConfig) {
		cfg.middleware = append(cfg.middleware, middleware...)
	}
}

// WithWebhookLogger logs rejected callbacks and receiver failures.
func WithWebhookLogger(logger *zap.Logger) WebhookOption {
	return func(cfg *webhookConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}

// WebhookHandler verifies Solidgate callbacks and hands them to a [WebhookReceiver].
type WebhookHandler struct {
	receiver WebhookReceiver
	mux      *http.ServeMux
	cfg      webhookConfig
}

// NewWebhookHandler verifies callbacks with keys, the webhook key pair from the
// merchant dashboard, which is distinct from the API key pair. The handler
// accepts POST on any path so it can be mounted under a prefix.
func NewWebhookHandler(receiver WebhookReceiver, keys signature.Signer, opts ...WebhookOption) *WebhookHandler {
	if receiver == nil {
		panic("webhook: receiver is required")
	}
	if keys.PublicKey == "" || keys.SecretKey == "" {
		panic("webhook: public and secret keys are required")
	}
	cfg := webhookConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	h := &WebhookHandler{
		receiver: receiver,
		mux:      http.NewServeMux(),
		cfg:      cfg,
	}
	// The last middleware wraps outermost: the merchant check runs first.
	middleware := append([]Middleware{}, cfg.middleware...)
	middleware = append(middleware,
		newSignatureMiddleware(keys, cfg.logger),
		newMerchantMiddleware(keys.PublicKey, cfg.logger),
	)
	h.mux.HandleFunc("POST /", applyMiddleware(h.handleWebhook, middleware...))
	return h
}

// ServeHTTP satisfies http.Handler.
func (h *WebhookHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestCtx := requestContextFromRequest(r)
	ctx := contextWithRequestContext(r.Context(), requestCtx)
	h.mux.ServeHTTP(w, r.WithContext(ctx))
}

func (h *WebhookHandler) handleWebhook(w http.ResponseWriter, r *http.Request) {
	var body json.RawMessage
	if err := decodeJSON(r.Body, &body); err != nil {
		writeJSONError(w, NewInvalidRequestError(err.Error()))
		return
	}
	event := WebhookEvent{Body: body}
	if requestCtx := RequestContextFromContext(r.Context()); requestCtx != nil {
		event.Type = requestCtx.EventType
	}
	if err := h.receiver.HandleWebhook(r.Context(), event); err != nil {
		h.cfg.logger.Warn("solidgate webhook receiver failed",
			zap.String("event_type", event.Type),
			zap.Error(err))
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, struct{}{})
}
