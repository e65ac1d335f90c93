package checkout

import (
	"math"

	"github.com/itsihsaney/BaeBy-ecommerce-project/internal/domain"
)

// PricingRules are the deterministic surcharge rules applied to the
// server-side re-priced line items.
type PricingRules struct {
	// ShippingFee is added when the items total is below
	// FreeShippingThreshold and waived at or above it.
	ShippingFee           float64
	FreeShippingThreshold float64
	// TaxRate is applied to the items total, e.g. 0.15 for 15%.
	TaxRate float64
}

func DefaultPricingRules() PricingRules {
	return PricingRules{
		ShippingFee:           10,
		FreeShippingThreshold: 100,
		TaxRate:               0.15,
	}
}

type Totals struct {
	ItemsPrice    float64
	ShippingPrice float64
	TaxPrice      float64
	TotalAmount   float64
}

// Price computes totals from frozen line items.
func (r PricingRules) Price(items []domain.OrderItem) Totals {
	var itemsPrice float64
	for _, item := range items {
		itemsPrice += item.Price * float64(item.Quantity)
	}
	itemsPrice = round2(itemsPrice)

	var shipping float64
	if itemsPrice < r.FreeShippingThreshold {
		shipping = r.ShippingFee
	}

	tax := round2(r.TaxRate * itemsPrice)

	return Totals{
		ItemsPrice:    itemsPrice,
		ShippingPrice: shipping,
		TaxPrice:      tax,
		TotalAmount:   round2(itemsPrice + shipping + tax),
	}
}

// MinorUnits converts a major-unit amount to the gateway's minor-unit
// representation (e.g. rupees to paise).
func MinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
