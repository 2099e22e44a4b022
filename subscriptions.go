package solidgate

import (
	"context"
	"net/http"
	"time"
)

// DefaultSubscriptionsBaseURL is the origin of the subscriptions API.
const DefaultSubscriptionsBaseURL = "https://subscriptions.solidgate.com/api/v1/"

const (
	productsPath                     = "products"
	subscriptionSwitchProductPath    = "subscription/switch-subscription-product"
	subscriptionUpdateTokenPath      = "subscription/update-token"
	subscriptionCancelPath           = "subscription/cancel"
	subscriptionCancelByCustomerPath = "subscription/cancel-by-customer"
	subscriptionRestorePath          = "subscription/restore"
)

// SubscriptionAPI manages products and subscriptions.
type SubscriptionAPI struct {
	client
}

// NewSubscriptionAPI builds a subscriptions client. It panics when either key is empty.
func NewSubscriptionAPI(creds Credentials, opts ...Option) *SubscriptionAPI {
	return &SubscriptionAPI{client: newClient(DefaultSubscriptionsBaseURL, creds, opts)}
}

// GetProductList lists the merchant's products. The request has no body and
// is signed over an empty payload.
func (a *SubscriptionAPI) GetProductList(ctx context.Context) (string, error) {
	return a.execute(ctx, http.MethodGet, productsPath, nil)
}

// SwitchSubscriptionProduct moves a subscription to another product.
//
// The result is true whenever the request went through; the response body is
// not inspected, so a rejected switch also reports true.
func (a *SubscriptionAPI) SwitchSubscriptionProduct(ctx context.Context, subscriptionID, productID string) (bool, error) {
	_, err := a.execute(ctx, http.MethodPost, subscriptionSwitchProductPath, NewAttributes(
		Attr("subscription_id", subscriptionID),
		Attr("new_product_id", productID),
	))
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateSubscriptionToken replaces the card token used for renewals. Like
// [SubscriptionAPI.SwitchSubscriptionProduct] it reports true without
// inspecting the response.
func (a *SubscriptionAPI) UpdateSubscriptionToken(ctx context.Context, subscriptionID, token string) (bool, error) {
	_, err := a.execute(ctx, http.MethodPost, subscriptionUpdateTokenPath, NewAttributes(
		Attr("subscription_id", subscriptionID),
		Attr("token", token),
	))
	if err != nil {
		return false, err
	}
	return true, nil
}

type cancelParams struct {
	force bool
	code  CancelCode
}

// CancelOption customizes a cancellation.
type CancelOption func(*cancelParams)

// WithForceCancel cancels immediately instead of at the end of the paid period.
func WithForceCancel(force bool) CancelOption {
	return func(p *cancelParams) { p.force = force }
}

// WithCancelCode sets the cancellation reason. Defaults to
// [CancelCodeCancellationByCustomer].
func WithCancelCode(code CancelCode) CancelOption {
	return func(p *cancelParams) { p.code = code }
}

func newCancelParams(opts []CancelOption) cancelParams {
	p := cancelParams{code: CancelCodeCancellationByCustomer}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&p)
	}
	return p
}

// CancelSubscription cancels one subscription.
func (a *SubscriptionAPI) CancelSubscription(ctx context.Context, subscriptionID string, opts ...CancelOption) (string, error) {
	p := newCancelParams(opts)
	return a.execute(ctx, http.MethodPost, subscriptionCancelPath, NewAttributes(
		Attr("subscription_id", subscriptionID),
		Attr("force", p.force),
		Attr("cancel_code", p.code),
	))
}

// CancelSubscriptionByCustomer cancels every subscription of a customer.
func (a *SubscriptionAPI) CancelSubscriptionByCustomer(ctx context.Context, customerAccountID string, opts ...CancelOption) (string, error) {
	p := newCancelParams(opts)
	return a.execute(ctx, http.MethodPost, subscriptionCancelByCustomerPath, NewAttributes(
		Attr("customer_account_id", customerAccountID),
		Attr("force", p.force),
		Attr("cancel_code", p.code),
	))
}

// RestoreSubscription restores a cancelled subscription. A nil expiredAt
// leaves the expiry to the API; otherwise it is sent as YYYY-MM-DD HH:MM:SS
// in the location of the given time.
func (a *SubscriptionAPI) RestoreSubscription(ctx context.Context, subscriptionID string, expiredAt *time.Time) (string, error) {
	attrs := NewAttributes(Attr("subscription_id", subscriptionID))
	if expiredAt != nil {
		attrs = attrs.Set("expired_at", expiredAt.Format(dateTimeLayout))
	}
	return a.execute(ctx, http.MethodPost, subscriptionRestorePath, attrs)
}
