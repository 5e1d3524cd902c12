package cart

import (
	"github.com/shopspring/decimal"

	"github.com/shopkartlabs/shopkart-backend/pkg/types"
)

var taxRate = decimal.NewFromFloat(0.18)

const (
	// FreeShippingThreshold is the subtotal at which delivery becomes free.
	FreeShippingThreshold int64 = 1000
	// ShippingFee is charged below the free-shipping threshold.
	ShippingFee int64 = 99
)

// Totals holds the derived amounts for a cart, all in whole rupees.
type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// ComputeTotals derives subtotal, tax, shipping, and total from the lines.
// Tax is 18% of the subtotal rounded to the nearest rupee. Shipping is zero
// for an empty cart or a subtotal at or above the free threshold, else flat.
func ComputeTotals(items []Item) Totals {
	var subtotal int64
	for _, item := range items {
		subtotal += item.Product.DiscountPrice * int64(item.Quantity)
	}

	tax := types.RoundToRupee(types.Rupees(subtotal).Mul(taxRate))

	var shipping int64
	if subtotal > 0 && subtotal < FreeShippingThreshold {
		shipping = ShippingFee
	}

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
