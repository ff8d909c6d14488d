package port

import (
	"context"

	"github.com/tradwear/storefront/internal/domain"
)

type CartRepository interface {
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	AddItem(ctx context.Context, ownerID string, item domain.CartItem) error

	// UpdateQuantity adjusts a cart line by delta and returns the remaining
	// quantity. A line whose quantity drops to zero or below is removed and
	// the returned quantity is zero.
	UpdateQuantity(ctx context.Context, ownerID string, ref domain.ItemRef, delta int) (int, error)

	DeleteItem(ctx context.Context, ownerID string, ref domain.ItemRef) (bool, error)
}
