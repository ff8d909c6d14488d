package checkout

import (
	"context"
	"log/slog"

	"github.com/tradwear/storefront/internal/domain"
)

// LogSubmitter is the shipped order sink: it records the order and does
// nothing else. A real fulfillment backend replaces it behind
// port.OrderSubmitter.
type LogSubmitter struct {
	Logger *slog.Logger
}

func (l LogSubmitter) Submit(ctx context.Context, order domain.Order) error {
	logger := l.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger.InfoContext(ctx, "order placed",
		slog.String("order_id", order.ID.String()),
		slog.String("email", order.Customer.Email),
		slog.Int("items", len(order.Items)),
		slog.String("shipping_method", order.Shipping.Method),
		slog.String("total", order.Totals.Total.String()),
	)

	return nil
}
