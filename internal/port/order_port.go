package port

import (
	"context"

	"github.com/tradwear/storefront/internal/domain"
)

// OrderSubmitter receives a completed order. The storefront core has no
// payment or fulfillment backend; implementations decide what "submitted"
// means.
type OrderSubmitter interface {
	Submit(ctx context.Context, order domain.Order) error
}
