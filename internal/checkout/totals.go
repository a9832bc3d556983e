package checkout

import "github.com/shopspring/decimal"

// Free delivery applies strictly above this subtotal; below or at it a
// flat fee is charged.
const (
	freeShippingAbove int64 = 499
	shippingFlatFee   int64 = 50
)

var taxRate = decimal.RequireFromString("0.18") // GST

type Totals struct {
	Subtotal int64 `json:"subtotal"`
	Tax      int64 `json:"tax"`
	Shipping int64 `json:"shipping"`
	Total    int64 `json:"total"`
}

// ComputeTotals reproduces the original bill exactly:
// tax = round(subtotal*0.18), shipping = 0 when subtotal > 499 else 50.
func ComputeTotals(subtotal int64) Totals {
	tax := decimal.NewFromInt(subtotal).Mul(taxRate).Round(0).IntPart()
	shipping := shippingFlatFee
	if subtotal > freeShippingAbove {
		shipping = 0
	}
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal + tax + shipping,
	}
}
