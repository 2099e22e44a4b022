package solidgate

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sumup/solidgate-go/signature"
)

const (
	headerMerchant  = "Merchant"
	headerSignature = "Signature"
	headerRequestID = "Request-Id"
	headerEventType = "Solidgate-Event-Type"
)

// Credentials is the merchant key pair. The full secret signs requests; its
// first 32 bytes encrypt payment form data.
type Credentials struct {
	PublicKey string
	SecretKey string
}

// OutboundRequest is a signed request that has not been sent yet.
type OutboundRequest struct {
	Method string
	Path   string
	Header http.Header
	// Body is nil when the payload is empty.
	Body []byte
}

// RequestBuilder assembles signed requests. It performs no I/O.
type RequestBuilder struct {
	signer signature.Signer
}

// NewRequestBuilder returns a builder signing with creds.
func NewRequestBuilder(creds Credentials, encoding signature.Encoding) RequestBuilder {
	return RequestBuilder{signer: signature.Signer{
		PublicKey: creds.PublicKey,
		SecretKey: creds.SecretKey,
		Encoding:  encoding,
	}}
}

// Build signs payload for path. The body and the signature are derived from
// the same canonical bytes. method defaults to POST.
func (b RequestBuilder) Build(path string, payload any, method string) (*OutboundRequest, error) {
	if method == "" {
		method = http.MethodPost
	}
	canonical, err := signature.Canonicalize(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}

	header := make(http.Header, 4)
	header.Set("Content-Type", "application/json")
	header.Set("Accept", "application/json")
	header.Set(headerMerchant, b.signer.PublicKey)
	header.Set(headerSignature, b.signer.Sign(canonical))

	req := &OutboundRequest{
		Method: method,
		Path:   path,
		Header: header,
	}
	if len(canonical) > 0 {
		req.Body = canonical
	}
	return req, nil
}

// HTTPRequest resolves the request path against baseURL.
func (r *OutboundRequest) HTTPRequest(ctx context.Context, baseURL string) (*http.Request, error) {
	endpoint, err := url.JoinPath(baseURL, r.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", r.Path, err)
	}
	var req *http.Request
	if r.Body == nil {
		req, err = http.NewRequestWithContext(ctx, r.Method, endpoint, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, r.Method, endpoint, bytes.NewReader(r.Body))
	}
	if err != nil {
		return nil, err
	}
	req.Header = r.Header.Clone()
	return req, nil
}
