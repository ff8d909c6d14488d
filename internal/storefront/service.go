// Package storefront ties the catalog, the cart store and the order
// submitter together behind one service, the surface a UI or router
// collaborator talks to.
package storefront

import (
	"context"
	"fmt"

	"github.com/tradwear/storefront/internal/catalog"
	"github.com/tradwear/storefront/internal/checkout"
	"github.com/tradwear/storefront/internal/domain"
	"github.com/tradwear/storefront/internal/port"
)

type Service struct {
	catalog *catalog.Catalog
	carts   port.CartRepository
	orders  port.OrderSubmitter
}

func New(c *catalog.Catalog, carts port.CartRepository, orders port.OrderSubmitter) (*Service, error) {
	if c == nil {
		return nil, fmt.Errorf("catalog is nil")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart repository is nil")
	}
	if orders == nil {
		return nil, fmt.Errorf("order submitter is nil")
	}

	return &Service{catalog: c, carts: carts, orders: orders}, nil
}

func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// AddToCart puts a catalog product into the owner's cart at the product's
// listed price.
func (s *Service) AddToCart(ctx context.Context, ownerID string, productID int, color, size string, quantity int) (domain.Cart, error) {
	product, ok := s.catalog.FindByID(productID)
	if !ok {
		return domain.Cart{}, fmt.Errorf("product %d not found", productID)
	}

	item := domain.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Image:     product.Image,
		Color:     color,
		Size:      size,
		Quantity:  quantity,
		UnitPrice: product.Price,
	}

	if err := s.carts.AddItem(ctx, ownerID, item); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.AddItem: %w", err)
	}

	return s.cart(ctx, ownerID)
}

// ChangeQuantity backs the +/- controls on the checkout page.
func (s *Service) ChangeQuantity(ctx context.Context, ownerID string, ref domain.ItemRef, delta int) (domain.Cart, error) {
	if _, err := s.carts.UpdateQuantity(ctx, ownerID, ref, delta); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.UpdateQuantity: %w", err)
	}

	return s.cart(ctx, ownerID)
}

func (s *Service) RemoveItem(ctx context.Context, ownerID string, ref domain.ItemRef) (domain.Cart, error) {
	if _, err := s.carts.DeleteItem(ctx, ownerID, ref); err != nil {
		return domain.Cart{}, fmt.Errorf("carts.DeleteItem: %w", err)
	}

	return s.cart(ctx, ownerID)
}

func (s *Service) Cart(ctx context.Context, ownerID string) (domain.Cart, error) {
	return s.cart(ctx, ownerID)
}

// PlaceOrder completes a checkout session against the owner's current cart.
// The cart is left untouched; clearing it is the fulfillment backend's call.
func (s *Service) PlaceOrder(ctx context.Context, ownerID string, session checkout.Session) (domain.Order, error) {
	cart, err := s.cart(ctx, ownerID)
	if err != nil {
		return domain.Order{}, err
	}
	if len(cart.Items) == 0 {
		return domain.Order{}, fmt.Errorf("cart is empty")
	}

	order, err := checkout.PlaceOrder(ctx, session, cart, s.orders)
	if err != nil {
		return domain.Order{}, fmt.Errorf("checkout.PlaceOrder: %w", err)
	}

	return order, nil
}

func (s *Service) cart(ctx context.Context, ownerID string) (domain.Cart, error) {
	cart, err := s.carts.GetCart(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("carts.GetCart: %w", err)
	}
	return cart, nil
}
