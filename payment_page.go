package solidgate

import (
	"context"
	"net/http"
)

// DefaultPaymentPageBaseURL is the origin of the hosted payment page API.
const DefaultPaymentPageBaseURL = "https://payment-page.solidgate.com/api/v1/"

const initPagePath = "init"

// PaymentPageAPI initializes hosted payment pages.
type PaymentPageAPI struct {
	client
}

// NewPaymentPageAPI builds a payment page client. It panics when either key is empty.
func NewPaymentPageAPI(creds Credentials, opts ...Option) *PaymentPageAPI {
	return &PaymentPageAPI{client: newClient(DefaultPaymentPageBaseURL, creds, opts)}
}

// InitPage creates a payment page for req and returns the raw response body,
// which carries the page URL on success.
func (a *PaymentPageAPI) InitPage(ctx context.Context, req *InitRequest) (string, error) {
	if req == nil {
		return "", &ValidationError{Message: "init request is required"}
	}
	return a.execute(ctx, http.MethodPost, initPagePath, req)
}
