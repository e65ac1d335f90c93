package domain

import "time"

// CheckoutSnapshot is the priced cart state captured at the Pricing
// step of an online checkout. It is stored server-side keyed by the
// gateway order id and is the only source the finalized order is built
// from; anything re-submitted in the verification callback is ignored.
type CheckoutSnapshot struct {
	UserID          string          `json:"user_id"`
	Items           []OrderItem     `json:"items"`
	ItemsPrice      float64         `json:"items_price"`
	ShippingPrice   float64         `json:"shipping_price"`
	TaxPrice        float64         `json:"tax_price"`
	TotalAmount     float64         `json:"total_amount"`
	ShippingAddress ShippingAddress `json:"shipping_address"`
	CapturedAt      time.Time       `json:"captured_at"`
}
