package solidgate

// InitRequest is the payload of [PaymentPageAPI.InitPage].
type InitRequest struct {
	order             Order
	pageCustomization *PageCustomization
}

// NewInitRequest pairs an order with its page customization.
func NewInitRequest(order Order, page *PageCustomization) (*InitRequest, error) {
	if order == nil {
		return nil, &ValidationError{Field: "order", Message: "is required"}
	}
	if page == nil {
		return nil, &ValidationError{Field: "page_customization", Message: "is required"}
	}
	return &InitRequest{order: order, pageCustomization: page}, nil
}

// Order returns the paid order.
func (r *InitRequest) Order() Order                          { return r.order }
// PageCustomization returns the page settings.
func (r *InitRequest) PageCustomization() *PageCustomization { return r.pageCustomization }

// MarshalJSON renders {"order": ..., "page_customization": ...}.
func (r *InitRequest) MarshalJSON() ([]byte, error) {
	return marshalNoEscape(struct {
		Order             Order              `json:"order"`
		PageCustomization *PageCustomization `json:"page_customization"`
	}{
		Order:             r.order,
		PageCustomization: r.pageCustomization,
	})
}
