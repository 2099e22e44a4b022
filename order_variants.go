package solidgate

// OneTimePaymentOrder is an order for a single payment of a fixed amount.
type OneTimePaymentOrder struct {
	fields  orderFields
	oneTime oneTimeFields
}

type oneTimeFields struct {
	// Smallest currency unit, e.g. 1020 is 10.20 EUR. Zero is only valid for
	// zero-amount authorization.
	Amount   int64  `json:"amount" validate:"gte=0"`
	Currency string `json:"currency" validate:"required,currency"`
}

// NewOneTimePaymentOrder validates and builds a one-time order. amount is in
// the currency's smallest unit (see [MinorUnits]).
func NewOneTimePaymentOrder(amount int64, currency, orderID, orderDescription string, opts ...OrderOption) (*OneTimePaymentOrder, error) {
	o := &OneTimePaymentOrder{
		fields:  newOrderFields(orderID, orderDescription, opts),
		oneTime: oneTimeFields{Amount: amount, Currency: currency},
	}
	if err := validateOrder(o.fields, o.oneTime); err != nil {
		return nil, err
	}
	return o, nil
}

// OrderID, OrderDescription, Amount and Currency return the order attributes.
func (o *OneTimePaymentOrder) OrderID() string          { return o.fields.OrderID }
func (o *OneTimePaymentOrder) OrderDescription() string { return o.fields.OrderDescription }
func (o *OneTimePaymentOrder) Amount() int64            { return o.oneTime.Amount }
func (o *OneTimePaymentOrder) Currency() string         { return o.oneTime.Currency }

func (o *OneTimePaymentOrder) variant() any { return o.oneTime }

// MarshalJSON renders the order with unset optional fields omitted.
func (o *OneTimePaymentOrder) MarshalJSON() ([]byte, error) {
	return marshalOrder(o.fields, o.variant())
}

// SubscriptionOrder is an order that starts a subscription to a product.
type SubscriptionOrder struct {
	fields       orderFields
	subscription subscriptionFields
}

type subscriptionFields struct {
	ProductID         string `json:"product_id,omitempty"`
	ProductPriceID    string `json:"product_price_id,omitempty"`
	CustomerAccountID string `json:"customer_account_id,omitempty" validate:"omitempty,max=255"`
}

// ProductRef names the subscribed product by product id, price id or both.
// At least one must be set.
type ProductRef struct {
	ProductID      string
	ProductPriceID string
}

// NewSubscriptionOrder validates and builds a subscription order.
func NewSubscriptionOrder(product ProductRef, customerAccountID, orderID, orderDescription string, opts ...OrderOption) (*SubscriptionOrder, error) {
	if product.ProductID == "" && product.ProductPriceID == "" {
		return nil, &ValidationError{Message: "product_id or product_price_id is required"}
	}
	o := &SubscriptionOrder{
		fields: newOrderFields(orderID, orderDescription, opts),
		subscription: subscriptionFields{
			ProductID:         product.ProductID,
			ProductPriceID:    product.ProductPriceID,
			CustomerAccountID: customerAccountID,
		},
	}
	if err := validateOrder(o.fields, o.subscription); err != nil {
		return nil, err
	}
	return o, nil
}

// OrderID, OrderDescription, ProductID, ProductPriceID and CustomerAccountID
// return the order attributes.
func (o *SubscriptionOrder) OrderID() string           { return o.fields.OrderID }
func (o *SubscriptionOrder) OrderDescription() string  { return o.fields.OrderDescription }
func (o *SubscriptionOrder) ProductID() string         { return o.subscription.ProductID }
func (o *SubscriptionOrder) ProductPriceID() string    { return o.subscription.ProductPriceID }
func (o *SubscriptionOrder) CustomerAccountID() string { return o.subscription.CustomerAccountID }

func (o *SubscriptionOrder) variant() any { return o.subscription }

// MarshalJSON renders the order with unset optional fields omitted.
func (o *SubscriptionOrder) MarshalJSON() ([]byte, error) {
	return marshalOrder(o.fields, o.variant())
}
