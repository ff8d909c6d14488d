package domain

import (
	"time"

	"github.com/google/uuid"
)

type CustomerInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type ShippingInfo struct {
	Address string
	City    string
	State   string
	ZipCode string
	Method  string
}

type PaymentInfo struct {
	CardNumber    string
	NameOnCard    string
	ExpiryDate    string
	CVV           string
	SameAsBilling bool
}

// OrderTotals is the derived arithmetic of a checkout session:
// total = subtotal + shipping + tax - discount.
type OrderTotals struct {
	Subtotal Money
	Shipping Money
	Tax      Money
	Discount Money
	Total    Money
}

// Order is the snapshot handed to the order-submission collaborator when the
// wizard completes. It is not stored anywhere in this module.
type Order struct {
	ID       uuid.UUID
	Customer CustomerInfo
	Shipping ShippingInfo
	Payment  PaymentInfo
	Items    []CartItem
	Totals   OrderTotals
	PlacedAt time.Time
}
