package checkout

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/tradwear/storefront/internal/domain"
)

var (
	taxRate       = decimal.RequireFromString("0.08")
	promoDiscount = decimal.NewFromInt(10)
)

// ComputeTotals derives the order arithmetic from the cart, the chosen
// shipping method and the promo latch:
//
//	total = subtotal + shipping + tax - discount
//
// where tax is 8% of the subtotal and the discount is a flat 10 when the
// promo is applied. An unknown shipping method ships at zero cost, matching
// the storefront's lenient method lookup. All amounts share the cart's
// currency.
func ComputeTotals(cart domain.Cart, methodID string, promoApplied bool) (domain.OrderTotals, error) {
	subtotal, err := cart.Subtotal()
	if err != nil {
		return domain.OrderTotals{}, fmt.Errorf("cart.Subtotal: %w", err)
	}
	unit := subtotal.Currency

	shipping := domain.NewMoney(decimal.Zero, unit)
	if method, ok := MethodByID(methodID); ok {
		shipping.Amount = method.Price
	}

	tax := subtotal.Mul(taxRate)

	discount := domain.NewMoney(decimal.Zero, unit)
	if promoApplied {
		discount.Amount = promoDiscount
	}

	total := subtotal
	for _, add := range []domain.Money{shipping, tax} {
		total, err = total.Add(add)
		if err != nil {
			return domain.OrderTotals{}, fmt.Errorf("total.Add: %w", err)
		}
	}
	total, err = total.Sub(discount)
	if err != nil {
		return domain.OrderTotals{}, fmt.Errorf("total.Sub: %w", err)
	}

	return domain.OrderTotals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Discount: discount,
		Total:    total,
	}, nil
}
