package domain

import (
	"fmt"
	"time"

	"golang.org/x/text/currency"
)

type Cart struct {
	OwnerID string
	Items   []CartItem
}

// CartItem is a single cart line. Lines are identified by product, color and
// size together: adding the same combination again merges quantities.
type CartItem struct {
	ProductID int
	Name      string
	Image     string
	Color     string
	Size      string
	Quantity  int
	UnitPrice Money

	CreatedAt time.Time
}

// ItemRef identifies a cart line for quantity updates and removal.
type ItemRef struct {
	ProductID int
	Color     string
	Size      string
}

func (i CartItem) Ref() ItemRef {
	return ItemRef{ProductID: i.ProductID, Color: i.Color, Size: i.Size}
}

// LineTotal is the unit price multiplied by the line quantity.
func (i CartItem) LineTotal() Money {
	return i.UnitPrice.MulInt(i.Quantity)
}

// Currency reports the single currency shared by all cart lines.
// An empty cart defaults to USD.
func (c Cart) Currency() (currency.Unit, error) {
	if len(c.Items) == 0 {
		return currency.USD, nil
	}

	unit := c.Items[0].UnitPrice.Currency
	for _, item := range c.Items[1:] {
		if item.UnitPrice.Currency != unit {
			return currency.Unit{}, fmt.Errorf("cart mixes currencies: %s vs %s", unit, item.UnitPrice.Currency)
		}
	}

	return unit, nil
}

// Subtotal sums the line totals of every item in the cart.
func (c Cart) Subtotal() (Money, error) {
	unit, err := c.Currency()
	if err != nil {
		return Money{}, fmt.Errorf("cart.Currency: %w", err)
	}

	sum := Money{Currency: unit}
	for _, item := range c.Items {
		sum, err = sum.Add(item.LineTotal())
		if err != nil {
			return Money{}, fmt.Errorf("sum.Add: %w", err)
		}
	}

	return sum, nil
}
