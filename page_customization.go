package solidgate

import "slices"

// PageCustomization configures the look of the hosted payment page.
//
// Only PublicName is sent today. The remaining attributes are accepted and
// readable but are not serialized; the payment page takes them from the
// merchant's HUB settings instead.
type PageCustomization struct {
	publicName          string
	orderTitle          string
	orderDescription    string
	paymentMethods      []string
	buttonFontColor     string
	buttonColor         string
	fontName            string
	isCardholderVisible *bool
	termsURL            string
	backURL             string
}

// PageCustomizationOption sets an optional page customization attribute.
type PageCustomizationOption func(*PageCustomization)

// NewPageCustomization builds a page customization for the given shop name.
func NewPageCustomization(publicName string, opts ...PageCustomizationOption) (*PageCustomization, error) {
	if publicName == "" {
		return nil, &ValidationError{Field: "public_name", Message: "is required"}
	}
	p := &PageCustomization{publicName: publicName}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(p)
	}
	return p, nil
}

// WithOrderTitle sets the title shown above the order summary.
func WithOrderTitle(title string) PageCustomizationOption {
	return func(p *PageCustomization) { p.orderTitle = title }
}

// WithPageOrderDescription sets the order description shown on the page.
func WithPageOrderDescription(description string) PageCustomizationOption {
	return func(p *PageCustomization) { p.orderDescription = description }
}

// WithPaymentMethods limits the payment methods offered on the page.
func WithPaymentMethods(methods ...string) PageCustomizationOption {
	methods = slices.Clone(methods)
	return func(p *PageCustomization) { p.paymentMethods = methods }
}

// WithButtonFontColor sets the pay button text color.
func WithButtonFontColor(color string) PageCustomizationOption {
	return func(p *PageCustomization) { p.buttonFontColor = color }
}

// WithButtonColor sets the pay button color.
func WithButtonColor(color string) PageCustomizationOption {
	return func(p *PageCustomization) { p.buttonColor = color }
}

// WithFontName sets the page font.
func WithFontName(name string) PageCustomizationOption {
	return func(p *PageCustomization) { p.fontName = name }
}

// WithCardholderVisible shows or hides the cardholder name field.
func WithCardholderVisible(visible bool) PageCustomizationOption {
	return func(p *PageCustomization) { p.isCardholderVisible = &visible }
}

// WithTermsURL links the merchant terms.
func WithTermsURL(u string) PageCustomizationOption {
	return func(p *PageCustomization) { p.termsURL = u }
}

// WithBackURL sets where the page's back button leads.
func WithBackURL(u string) PageCustomizationOption {
	return func(p *PageCustomization) { p.backURL = u }
}

// Getters return the configured attributes.
func (p *PageCustomization) PublicName() string       { return p.publicName }
func (p *PageCustomization) OrderTitle() string       { return p.orderTitle }
func (p *PageCustomization) OrderDescription() string { return p.orderDescription }
func (p *PageCustomization) PaymentMethods() []string { return slices.Clone(p.paymentMethods) }
func (p *PageCustomization) ButtonFontColor() string  { return p.buttonFontColor }
func (p *PageCustomization) ButtonColor() string      { return p.buttonColor }
func (p *PageCustomization) FontName() string         { return p.fontName }
func (p *PageCustomization) TermsURL() string         { return p.termsURL }
func (p *PageCustomization) BackURL() string          { return p.backURL }

// CardholderVisible reports the cardholder field visibility and whether it was set.
func (p *PageCustomization) CardholderVisible() (visible, ok bool) {
	if p.isCardholderVisible == nil {
		return false, false
	}
	return *p.isCardholderVisible, true
}

// MarshalJSON emits public_name only.
func (p *PageCustomization) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(struct {
		PublicName string `json:"public_name"`
	}{PublicName: p.publicName})
}
