package solidgate

import (
	"context"
	"net/http"
	"strings"
)

// RequestContext carries the headers of an inbound webhook call.
type RequestContext struct {
	// Webhook public key the callback was sent for
	//
	// Example: wh_pk_7b197...
	Merchant string
	// Base64 encoded signature of the request body
	Signature string
	// Unique key for each callback for tracing purposes
	RequestID string
	// Event name
	//
	// Example: order.updated
	EventType string
}

func requestContextFromRequest(r *http.Request) *RequestContext {
	return &RequestContext{
		Merchant:  strings.TrimSpace(r.Header.Get(headerMerchant)),
		Signature: strings.TrimSpace(r.Header.Get(headerSignature)),
		RequestID: strings.TrimSpace(r.Header.Get(headerRequestID)),
		EventType: strings.TrimSpace(r.Header.Get(headerEventType)),
	}
}

type requestContextKey struct{}

func contextWithRequestContext(ctx context.Context, requestCtx *RequestContext) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if requestCtx == nil {
		return ctx
	}
	return context.WithValue(ctx, requestContextKey{}, requestCtx)
}

// RequestContextFromContext extracts the webhook metadata stored by [WebhookHandler].
func RequestContextFromContext(ctx context.Context) *RequestContext {
	if ctx == nil {
		return nil
	}
	if requestCtx, ok := ctx.Value(requestContextKey{}).(*RequestContext); ok {
		return requestCtx
	}
	return nil
}
