// Package repository provides the in-memory cart store. Carts live for the
// duration of the process only; nothing here is durable.
package repository

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tradwear/storefront/internal/domain"
	"github.com/tradwear/storefront/internal/port"
)

// ErrItemNotFound is returned when a quantity update targets a cart line
// that does not exist.
var ErrItemNotFound = errors.New("cart item not found")

type cartRepository struct {
	mu    sync.RWMutex
	carts map[string][]domain.CartItem
}

func NewCart() port.CartRepository {
	return &cartRepository{
		carts: make(map[string][]domain.CartItem),
	}
}

func (r *cartRepository) GetCart(_ context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	items := r.carts[ownerID]
	out := make([]domain.CartItem, len(items))
	copy(out, items)

	return domain.Cart{
		OwnerID: ownerID,
		Items:   out,
	}, nil
}

// AddItem appends a line to the owner's cart. A line with the same product,
// color and size already present has its quantity increased instead.
func (r *cartRepository) AddItem(_ context.Context, ownerID string, item domain.CartItem) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}
	if item.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive, got %d", item.Quantity)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	for i := range items {
		if items[i].Ref() == item.Ref() {
			items[i].Quantity += item.Quantity
			return nil
		}
	}

	item.CreatedAt = time.Now()
	r.carts[ownerID] = append(items, item)

	return nil
}

func (r *cartRepository) UpdateQuantity(_ context.Context, ownerID string, ref domain.ItemRef, delta int) (int, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	for i := range items {
		if items[i].Ref() != ref {
			continue
		}

		quantity := items[i].Quantity + delta
		if quantity <= 0 {
			r.carts[ownerID] = append(items[:i], items[i+1:]...)
			return 0, nil
		}

		items[i].Quantity = quantity
		return quantity, nil
	}

	return 0, fmt.Errorf("product %d (%s/%s): %w", ref.ProductID, ref.Color, ref.Size, ErrItemNotFound)
}

func (r *cartRepository) DeleteItem(_ context.Context, ownerID string, ref domain.ItemRef) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[ownerID]
	for i := range items {
		if items[i].Ref() == ref {
			r.carts[ownerID] = append(items[:i], items[i+1:]...)
			return true, nil
		}
	}

	return false, nil
}
