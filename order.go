package solidgate

import (
	"encoding/json"
	"maps"
	"slices"
	"time"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"
	dateLayout     = "2006-01-02"
)

// PaymentType selects the payment processing flow of an order.
type PaymentType string

const (
	// PaymentTypeAuth authorizes first; settle later or via settle_interval.
	PaymentTypeAuth PaymentType = "auth"
	// PaymentTypeSale charges in a single step.
	PaymentTypeSale PaymentType = "sale"
)

// GooglePayAuthMethod is an allowed Google Pay authorization method.
type GooglePayAuthMethod string

const (
	GooglePayPANOnly       GooglePayAuthMethod = "PAN_ONLY"
	GooglePayCryptogram3DS GooglePayAuthMethod = "CRYPTOGRAM_3DS"
)

// Order is the order part of a payment page [InitRequest]. It is implemented
// by *OneTimePaymentOrder and *SubscriptionOrder only.
type Order interface {
	json.Marshaler
	OrderID() string
	OrderDescription() string
	variant() any
}

// orderFields holds the attributes shared by every order variant in wire
// order. Unset optional fields are nil and left out of the JSON.
type orderFields struct {
	OrderID                     string                `json:"order_id" validate:"required,max=255"`
	OrderDescription            string                `json:"order_description" validate:"required"`
	OrderItems                  *string               `json:"order_items,omitempty"`
	OrderDate                   *string               `json:"order_date,omitempty"`
	OrderNumber                 *int                  `json:"order_number,omitempty" validate:"omitempty,gt=0"`
	Type                        *PaymentType          `json:"type,omitempty" validate:"omitempty,oneof=auth sale"`
	SettleInterval              *int                  `json:"settle_interval,omitempty" validate:"omitempty,gt=0"`
	RetryAttempt                *int                  `json:"retry_attempt,omitempty" validate:"omitempty,gte=0"`
	Force3DS                    *bool                 `json:"force3ds,omitempty"`
	GooglePayAllowedAuthMethods []GooglePayAuthMethod `json:"google_pay_allowed_auth_methods,omitempty" validate:"omitempty,min=1,dive,oneof=PAN_ONLY CRYPTOGRAM_3DS"`
	CustomerDateOfBirth         *string               `json:"customer_date_of_birth,omitempty"`
	CustomerEmail               *string               `json:"customer_email,omitempty" validate:"omitempty,email"`
	CustomerFirstName           *string               `json:"customer_first_name,omitempty"`
	CustomerLastName            *string               `json:"customer_last_name,omitempty"`
	CustomerPhone               *string               `json:"customer_phone,omitempty"`
	TrafficSource               *string               `json:"traffic_source,omitempty"`
	TransactionSource           *string               `json:"transaction_source,omitempty"`
	PurchaseCountry             *string               `json:"purchase_country,omitempty" validate:"omitempty,country3"`
	GeoCountry                  *string               `json:"geo_country,omitempty" validate:"omitempty,country3"`
	GeoCity                     *string               `json:"geo_city,omitempty"`
	Language                    *string               `json:"language,omitempty" validate:"omitempty,language"`
	Website                     *string               `json:"website,omitempty" validate:"omitempty,url"`
	OrderMetadata               map[string]string     `json:"order_metadata,omitempty" validate:"omitempty,max=10"`
	SuccessURL                  *string               `json:"success_url,omitempty" validate:"omitempty,url"`
	FailURL                     *string               `json:"fail_url,omitempty" validate:"omitempty,url"`
}

func newOrderFields(orderID, orderDescription string, opts []OrderOption) orderFields {
	fields := orderFields{
		OrderID:          orderID,
		OrderDescription: orderDescription,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&fields)
	}
	return fields
}

// marshalOrder renders the shared fields followed by the variant specific
// fields, each in declaration order and without HTML escaping.
func marshalOrder(fields orderFields, variant any) ([]byte, error) {
	base, err := marshalNoEscape(fields)
	if err != nil {
		return nil, err
	}
	extra, err := marshalNoEscape(variant)
	if err != nil {
		return nil, err
	}
	if len(extra) <= len("{}") {
		return base, nil
	}
	out := make([]byte, 0, len(base)+len(extra))
	out = append(out, base[:len(base)-1]...)
	out = append(out, ',')
	return append(out, extra[1:]...), nil
}

// OrderOption sets an optional order attribute.
type OrderOption func(*orderFields)

// WithOrderItems sets the list and description of the items in the order.
func WithOrderItems(items string) OrderOption {
	return func(f *orderFields) { f.OrderItems = &items }
}

// WithOrderDate sets the merchant-side order creation date. It is sent as
// YYYY-MM-DD HH:MM:SS in the location of t.
func WithOrderDate(t time.Time) OrderOption {
	formatted := t.Format(dateTimeLayout)
	return func(f *orderFields) { f.OrderDate = &formatted }
}

// WithOrderNumber sets the index number of the order per customer.
func WithOrderNumber(n int) OrderOption {
	return func(f *orderFields) { f.OrderNumber = &n }
}

// WithPaymentType selects auth or sale processing.
func WithPaymentType(t PaymentType) OrderOption {
	return func(f *orderFields) { f.Type = &t }
}

// WithSettleInterval sets the delay, in hours, before an authorized payment settles.
func WithSettleInterval(hours int) OrderOption {
	return func(f *orderFields) { f.SettleInterval = &hours }
}

// WithRetryAttempt sets the retry attempt number of a subscription payment.
func WithRetryAttempt(n int) OrderOption {
	return func(f *orderFields) { f.RetryAttempt = &n }
}

// WithForce3DS forces or disables 3D Secure authentication.
func WithForce3DS(force bool) OrderOption {
	return func(f *orderFields) { f.Force3DS = &force }
}

// WithGooglePayAllowedAuthMethods restricts the Google Pay authorization methods.
func WithGooglePayAllowedAuthMethods(methods ...GooglePayAuthMethod) OrderOption {
	methods = slices.Clone(methods)
	return func(f *orderFields) { f.GooglePayAllowedAuthMethods = methods }
}

// WithCustomerDateOfBirth sets the customer's date of birth, sent as YYYY-MM-DD.
func WithCustomerDateOfBirth(t time.Time) OrderOption {
	formatted := t.Format(dateLayout)
	return func(f *orderFields) { f.CustomerDateOfBirth = &formatted }
}

// WithCustomerEmail sets the customer's email address.
func WithCustomerEmail(email string) OrderOption {
	return func(f *orderFields) { f.CustomerEmail = &email }
}

// WithCustomerFirstName sets the customer's first name.
func WithCustomerFirstName(name string) OrderOption {
	return func(f *orderFields) { f.CustomerFirstName = &name }
}

// WithCustomerLastName sets the customer's last name.
func WithCustomerLastName(name string) OrderOption {
	return func(f *orderFields) { f.CustomerLastName = &name }
}

// WithCustomerPhone sets the customer's phone number.
func WithCustomerPhone(phone string) OrderOption {
	return func(f *orderFields) { f.CustomerPhone = &phone }
}

// WithTrafficSource sets the origin of the traffic that led to the transaction.
func WithTrafficSource(source string) OrderOption {
	return func(f *orderFields) { f.TrafficSource = &source }
}

// WithTransactionSource adds context about the source of the transaction.
func WithTransactionSource(source string) OrderOption {
	return func(f *orderFields) { f.TransactionSource = &source }
}

// WithPurchaseCountry sets the ISO-3166 alpha-3 country of the purchase.
// Required for marketplaces.
func WithPurchaseCountry(country string) OrderOption {
	return func(f *orderFields) { f.PurchaseCountry = &country }
}

// WithGeoCountry sets the customer's ISO-3166 alpha-3 registration country.
func WithGeoCountry(country string) OrderOption {
	return func(f *orderFields) { f.GeoCountry = &country }
}

// WithGeoCity sets the customer's registration city.
func WithGeoCity(city string) OrderOption {
	return func(f *orderFields) { f.GeoCity = &city }
}

// WithLanguage sets the payment page language.
func WithLanguage(language string) OrderOption {
	return func(f *orderFields) { f.Language = &language }
}

// WithWebsite sets the website the transaction originates from.
func WithWebsite(website string) OrderOption {
	return func(f *orderFields) { f.Website = &website }
}

// WithOrderMetadata attaches up to 10 key/value pairs to the order.
func WithOrderMetadata(metadata map[string]string) OrderOption {
	metadata = maps.Clone(metadata)
	return func(f *orderFields) { f.OrderMetadata = metadata }
}

// WithSuccessURL sets the browser redirect after a successful payment.
func WithSuccessURL(u string) OrderOption {
	return func(f *orderFields) { f.SuccessURL = &u }
}

// WithFailURL sets the browser redirect after a failed payment.
func WithFailURL(u string) OrderOption {
	return func(f *orderFields) { f.FailURL = &u }
}
