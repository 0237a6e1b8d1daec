package orders

import (
	"github.com/shopspring/decimal"

	"github.com/coralshopping/coral-backend/pkg/enums"
)

// deliveryFee is the flat door-delivery charge. Pickup orders ship free.
const deliveryFee = 1200

// Totals is the priced summary of an order.
type Totals struct {
	Subtotal    float64
	ShippingFee float64
	Total       float64
}

// ComputeTotals prices an order from its line items. Line math runs on
// decimals so unit prices like 19.99 do not drift across additions.
func ComputeTotals(items []OrderItem, option enums.DeliveryOption) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.UnitPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	fee := decimal.Zero
	if option == enums.DeliveryOptionDelivery {
		fee = decimal.NewFromInt(deliveryFee)
	}

	return Totals{
		Subtotal:    subtotal.InexactFloat64(),
		ShippingFee: fee.InexactFloat64(),
		Total:       subtotal.Add(fee).InexactFloat64(),
	}
}
