package solidgate

import (
	"context"
	"net/http"
)

// DefaultPaymentsBaseURL is the origin of the card payments API.
const DefaultPaymentsBaseURL = "https://pay.solidgate.com/api/v1/"

// PaymentsAPI covers card and wallet payment operations. Every method signs the
// attributes, sends them and returns the raw response body.
type PaymentsAPI struct {
	client
}

// NewPaymentsAPI builds a payments client. It panics when either key is empty.
func NewPaymentsAPI(creds Credentials, opts ...Option) *PaymentsAPI {
	return &PaymentsAPI{client: newClient(DefaultPaymentsBaseURL, creds, opts)}
}

// Charge makes a one-step card payment.
func (a *PaymentsAPI) Charge(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "charge", attrs)
}

// Recurring charges a stored card token.
func (a *PaymentsAPI) Recurring(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "recurring", attrs)
}

// Status fetches the current state of an order.
func (a *PaymentsAPI) Status(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "status", attrs)
}

// Refund returns funds of a settled order.
func (a *PaymentsAPI) Refund(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "refund", attrs)
}

// Resign makes a payment that needs the card CVV with a stored token.
func (a *PaymentsAPI) Resign(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "resign", attrs)
}

// Auth places a hold on the card without charging it.
func (a *PaymentsAPI) Auth(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "auth", attrs)
}

// Void cancels an authorization before settlement.
func (a *PaymentsAPI) Void(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "void", attrs)
}

// Settle captures a previously authorized amount.
func (a *PaymentsAPI) Settle(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "settle", attrs)
}

// ArnCode fetches the acquirer reference number of a refund.
func (a *PaymentsAPI) ArnCode(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "arn-code", attrs)
}

// ApplePay pays with an Apple Pay token.
func (a *PaymentsAPI) ApplePay(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "apple-pay", attrs)
}

// GooglePay pays with a Google Pay token.
func (a *PaymentsAPI) GooglePay(ctx context.Context, attrs Attributes) (string, error) {
	return a.execute(ctx, http.MethodPost, "google-pay", attrs)
}
