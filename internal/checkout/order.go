package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tradwear/storefront/internal/domain"
	"github.com/tradwear/storefront/internal/port"
)

// PlaceOrder snapshots the session and cart into an order and hands it to
// the submitter. Only the review step may place an order. The session is not
// cleared here; navigation away destroys it.
func PlaceOrder(ctx context.Context, s Session, cart domain.Cart, submitter port.OrderSubmitter) (domain.Order, error) {
	if submitter == nil {
		return domain.Order{}, fmt.Errorf("submitter is nil")
	}
	if s.Step != StepReview {
		return domain.Order{}, fmt.Errorf("order can only be placed from the review step, current step is %s", s.Step.Label())
	}

	totals, err := ComputeTotals(cart, s.Shipping.Method, s.PromoApplied)
	if err != nil {
		return domain.Order{}, fmt.Errorf("ComputeTotals: %w", err)
	}

	items := make([]domain.CartItem, len(cart.Items))
	copy(items, cart.Items)

	order := domain.Order{
		ID:       uuid.New(),
		Customer: s.Customer,
		Shipping: s.Shipping,
		Payment:  s.Payment,
		Items:    items,
		Totals:   totals,
		PlacedAt: time.Now(),
	}

	if err := submitter.Submit(ctx, order); err != nil {
		return domain.Order{}, fmt.Errorf("submitter.Submit: %w", err)
	}

	return order, nil
}
