package solidgate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/sumup/solidgate-go/signature"
)

func decodeObject(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var obj map[string]any
	if err := json.Unmarshal(raw, &obj); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return obj
}

func TestOneTimePaymentOrderMinimal(t *testing.T) {
	t.Parallel()

	order, err := NewOneTimePaymentOrder(1020, "USD", "ord-1", "Premium plan")
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	raw, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"order_id":"ord-1","order_description":"Premium plan","amount":1020,"currency":"USD"}`
	if string(raw) != want {
		t.Fatalf("unexpected json\n got %s\nwant %s", raw, want)
	}
	if order.OrderID() != "ord-1" || order.Amount() != 1020 || order.Currency() != "USD" {
		t.Fatalf("unexpected getters")
	}
}

func TestOneTimePaymentOrderOptions(t *testing.T) {
	t.Parallel()

	dob := time.Date(1990, time.March, 4, 0, 0, 0, 0, time.UTC)
	placed := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.UTC)
	order, err := NewOneTimePaymentOrder(0, "EUR", "ord-2", "Zero auth",
		WithPaymentType(PaymentTypeAuth),
		WithSettleInterval(48),
		WithForce3DS(false),
		WithOrderDate(placed),
		WithCustomerDateOfBirth(dob),
		WithCustomerEmail("buyer@example.com"),
		WithGeoCountry("DEU"),
		WithLanguage("de"),
		WithGooglePayAllowedAuthMethods(GooglePayPANOnly),
		WithOrderMetadata(map[string]string{"coupon": "WELCOME"}),
		WithSuccessURL("https://merchant.example/ok"),
	)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	raw, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	obj := decodeObject(t, raw)
	checks := map[string]any{
		"type":                   "auth",
		"settle_interval":        float64(48),
		"force3ds":               false,
		"order_date":             "2024-01-02 03:04:05",
		"customer_date_of_birth": "1990-03-04",
		"customer_email":         "buyer@example.com",
		"geo_country":            "DEU",
		"language":               "de",
		"success_url":            "https://merchant.example/ok",
		"amount":                 float64(0),
	}
	for key, want := range checks {
		if obj[key] != want {
			t.Fatalf("expected %s=%v got %v", key, want, obj[key])
		}
	}
	if methods, ok := obj["google_pay_allowed_auth_methods"].([]any); !ok || len(methods) != 1 || methods[0] != "PAN_ONLY" {
		t.Fatalf("unexpected google pay methods %v", obj["google_pay_allowed_auth_methods"])
	}
	if _, ok := obj["fail_url"]; ok {
		t.Fatalf("unset fail_url should be omitted")
	}
}

func TestOneTimePaymentOrderValidation(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		amount   int64
		currency string
		orderID  string
		desc     string
		opts     []OrderOption
		field    string
	}{
		"negative amount":  {amount: -1, currency: "USD", orderID: "o", desc: "d", field: "amount"},
		"lower currency":   {amount: 1, currency: "usd", orderID: "o", desc: "d", field: "currency"},
		"missing currency": {amount: 1, currency: "", orderID: "o", desc: "d", field: "currency"},
		"missing order id": {amount: 1, currency: "USD", orderID: "", desc: "d", field: "order_id"},
		"long order id":    {amount: 1, currency: "USD", orderID: strings.Repeat("x", 256), desc: "d", field: "order_id"},
		"missing desc":     {amount: 1, currency: "USD", orderID: "o", desc: "", field: "order_description"},
		"bad country":      {amount: 1, currency: "USD", orderID: "o", desc: "d", opts: []OrderOption{WithGeoCountry("DE")}, field: "geo_country"},
		"bad email":        {amount: 1, currency: "USD", orderID: "o", desc: "d", opts: []OrderOption{WithCustomerEmail("nope")}, field: "customer_email"},
		"bad language":     {amount: 1, currency: "USD", orderID: "o", desc: "d", opts: []OrderOption{WithLanguage("xx")}, field: "language"},
		"bad type":         {amount: 1, currency: "USD", orderID: "o", desc: "d", opts: []OrderOption{WithPaymentType("capture")}, field: "type"},
		"too much metadata": {amount: 1, currency: "USD", orderID: "o", desc: "d", opts: []OrderOption{WithOrderMetadata(map[string]string{
			"1": "", "2": "", "3": "", "4": "", "5": "", "6": "", "7": "", "8": "", "9": "", "10": "", "11": "",
		})}, field: "order_metadata"},
	}
	for name, tc := range cases {
		_, err := NewOneTimePaymentOrder(tc.amount, tc.currency, tc.orderID, tc.desc, tc.opts...)
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("%s: expected validation error got %v", name, err)
		}
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("%s: expected *ValidationError got %T", name, err)
		}
		if vErr.Field != tc.field {
			t.Fatalf("%s: expected field %s got %s (%v)", name, tc.field, vErr.Field, err)
		}
	}
}

func TestSubscriptionOrder(t *testing.T) {
	t.Parallel()

	order, err := NewSubscriptionOrder(ProductRef{ProductID: "prod-1"}, "cust-1", "ord-3", "Monthly")
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	raw, err := json.Marshal(order)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"order_id":"ord-3","order_description":"Monthly","product_id":"prod-1","customer_account_id":"cust-1"}`
	if string(raw) != want {
		t.Fatalf("unexpected json\n got %s\nwant %s", raw, want)
	}
	if order.ProductID() != "prod-1" || order.CustomerAccountID() != "cust-1" {
		t.Fatalf("unexpected getters")
	}
}

func TestSubscriptionOrderProductRef(t *testing.T) {
	t.Parallel()

	if _, err := NewSubscriptionOrder(ProductRef{}, "cust-1", "ord", "d"); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without product, got %v", err)
	}
	order, err := NewSubscriptionOrder(ProductRef{ProductPriceID: "price-1"}, "", "ord", "d")
	if err != nil {
		t.Fatalf("price id only: %v", err)
	}
	raw, _ := json.Marshal(order)
	obj := decodeObject(t, raw)
	if obj["product_price_id"] != "price-1" {
		t.Fatalf("expected product_price_id in %s", raw)
	}
	if _, ok := obj["customer_account_id"]; ok {
		t.Fatalf("empty customer_account_id should be omitted: %s", raw)
	}
}

func TestPageCustomization(t *testing.T) {
	t.Parallel()

	if _, err := NewPageCustomization(""); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error for empty public name, got %v", err)
	}
	page, err := NewPageCustomization("Acme", WithOrderTitle("Plan"), WithButtonColor("#000"), WithCardholderVisible(true))
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	raw, err := json.Marshal(page)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(raw) != `{"public_name":"Acme"}` {
		t.Fatalf("unexpected json %s", raw)
	}
	if page.OrderTitle() != "Plan" || page.ButtonColor() != "#000" {
		t.Fatalf("options not applied")
	}
	if visible, ok := page.CardholderVisible(); !visible || !ok {
		t.Fatalf("expected cardholder visible")
	}
}

func TestInitRequest(t *testing.T) {
	t.Parallel()

	order, err := NewOneTimePaymentOrder(1020, "USD", "ord-1", "Premium")
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	page, err := NewPageCustomization("Acme")
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	if _, err := NewInitRequest(nil, page); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without order, got %v", err)
	}
	if _, err := NewInitRequest(order, nil); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected validation error without page, got %v", err)
	}
	req, err := NewInitRequest(order, page)
	if err != nil {
		t.Fatalf("build init request: %v", err)
	}
	raw, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"order":{"order_id":"ord-1","order_description":"Premium","amount":1020,"currency":"USD"},"page_customization":{"public_name":"Acme"}}`
	if string(raw) != want {
		t.Fatalf("unexpected json\n got %s\nwant %s", raw, want)
	}
}

func TestOrderJSONKeepsFieldOrderAndURLs(t *testing.T) {
	t.Parallel()

	order, err := NewOneTimePaymentOrder(1020, "EUR", "ord-1", "desc",
		WithPaymentType(PaymentTypeSale),
		WithSuccessURL("https://x.test/ok?a=1&b=2"),
		WithFailURL("https://x.test/fail?a=<1>"),
	)
	if err != nil {
		t.Fatalf("build order: %v", err)
	}
	page, err := NewPageCustomization("Acme & Co")
	if err != nil {
		t.Fatalf("build page: %v", err)
	}
	req, err := NewInitRequest(order, page)
	if err != nil {
		t.Fatalf("build init request: %v", err)
	}
	got, err := signature.Canonicalize(req)
	if err != nil {
		t.Fatalf("canonicalize: %v", err)
	}
	want := `{"order":{"order_id":"ord-1","order_description":"desc","type":"sale",` +
		`"success_url":"https://x.test/ok?a=1&b=2","fail_url":"https://x.test/fail?a=<1>",` +
		`"amount":1020,"currency":"EUR"},"page_customization":{"public_name":"Acme & Co"}}`
	if string(got) != want {
		t.Fatalf("unexpected canonical body\n got %s\nwant %s", got, want)
	}
}
