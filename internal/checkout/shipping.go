package checkout

import "github.com/shopspring/decimal"

const (
	MethodStandard = "standard"
	MethodExpress  = "express"
	MethodFree     = "free"
)

// ShippingMethod prices carry no currency of their own; totals are computed
// in the cart's currency.
type ShippingMethod struct {
	ID     string
	Label  string
	Price  decimal.Decimal
	Window string
}

func ShippingMethods() []ShippingMethod {
	return []ShippingMethod{
		{
			ID:     MethodStandard,
			Label:  "Standard Shipping",
			Price:  decimal.RequireFromString("5.99"),
			Window: "5-7 business days",
		},
		{
			ID:     MethodExpress,
			Label:  "Express Shipping",
			Price:  decimal.RequireFromString("12.99"),
			Window: "2-3 business days",
		},
		{
			ID:     MethodFree,
			Label:  "Free Shipping",
			Price:  decimal.Zero,
			Window: "7-10 business days",
		},
	}
}

func MethodByID(id string) (ShippingMethod, bool) {
	for _, m := range ShippingMethods() {
		if m.ID == id {
			return m, true
		}
	}
	return ShippingMethod{}, false
}
