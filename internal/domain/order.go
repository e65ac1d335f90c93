package domain

import "time"

type OrderStatus string

const (
	// OrderStatusPending is a cash-on-delivery order awaiting fulfilment.
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// CanTransitionTo reports whether next is a legal successor state.
// Cancellation is a transition, never a deletion.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next {
	case OrderStatusDelivered, OrderStatusCanceled:
		return s == OrderStatusPending || s == OrderStatusPaid
	default:
		return false
	}
}

func (s OrderStatus) String() string {
	return string(s)
}

// OrderItem is a frozen copy of the product at order time, decoupled
// from the live catalog so historical orders survive price changes.
type OrderItem struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Name      string  `bson:"name" json:"name"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image" json:"image"`
	Quantity  int     `bson:"quantity" json:"quantity"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
}

// Order is immutable once created except for status transitions.
// Totals are computed server-side, never accepted from a client.
type Order struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"user_id"`
	Items           []OrderItem     `bson:"items" json:"items"`
	ItemsPrice      float64         `bson:"items_price" json:"items_price"`
	ShippingPrice   float64         `bson:"shipping_price" json:"shipping_price"`
	TaxPrice        float64         `bson:"tax_price" json:"tax_price"`
	TotalAmount     float64         `bson:"total_amount" json:"total_amount"`
	PaymentID       string          `bson:"payment_id,omitempty" json:"payment_id,omitempty"`
	GatewayOrderID  string          `bson:"gateway_order_id,omitempty" json:"gateway_order_id,omitempty"`
	Status          OrderStatus     `bson:"status" json:"status"`
	ShippingAddress ShippingAddress `bson:"shipping_address" json:"shipping_address"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `bson:"updated_at" json:"updated_at"`
}
