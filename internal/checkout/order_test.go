package checkout_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradwear/storefront/internal/checkout"
	"github.com/tradwear/storefront/internal/domain"
)

type captureSubmitter struct {
	orders []domain.Order
	err    error
}

func (c *captureSubmitter) Submit(_ context.Context, order domain.Order) error {
	if c.err != nil {
		return c.err
	}
	c.orders = append(c.orders, order)
	return nil
}

func TestPlaceOrder(t *testing.T) {
	session := completedSession(t)
	cart := sampleCart(t)
	submitter := &captureSubmitter{}

	order, err := checkout.PlaceOrder(t.Context(), session, cart, submitter)
	require.NoError(t, err)

	require.Len(t, submitter.orders, 1)
	submitted := submitter.orders[0]

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, order.ID, submitted.ID)
	assert.Equal(t, session.Customer, submitted.Customer)
	assert.Equal(t, session.Shipping, submitted.Shipping)
	assert.Len(t, submitted.Items, 2)
	assertAmount(t, "137.75", submitted.Totals.Total)
	assert.False(t, submitted.PlacedAt.IsZero())
}

func TestPlaceOrderOnlyFromReview(t *testing.T) {
	cart := sampleCart(t)
	submitter := &captureSubmitter{}

	for _, step := range []checkout.Step{checkout.StepInformation, checkout.StepShipping, checkout.StepPayment} {
		session := checkout.Session{Step: step, Shipping: randomShipping()}

		_, err := checkout.PlaceOrder(t.Context(), session, cart, submitter)
		require.ErrorContains(t, err, "order can only be placed from the review step")
	}

	assert.Empty(t, submitter.orders)
}

func TestPlaceOrderNilSubmitter(t *testing.T) {
	_, err := checkout.PlaceOrder(t.Context(), completedSession(t), sampleCart(t), nil)
	require.EqualError(t, err, "submitter is nil")
}

func TestPlaceOrderSubmitterFailure(t *testing.T) {
	submitter := &captureSubmitter{err: fmt.Errorf("backend unavailable")}

	_, err := checkout.PlaceOrder(t.Context(), completedSession(t), sampleCart(t), submitter)
	require.ErrorContains(t, err, "submitter.Submit: backend unavailable")
}

func TestLogSubmitter(t *testing.T) {
	var buf bytes.Buffer
	submitter := checkout.LogSubmitter{
		Logger: slog.New(slog.NewTextHandler(&buf, nil)),
	}

	order, err := checkout.PlaceOrder(t.Context(), completedSession(t), sampleCart(t), submitter)
	require.NoError(t, err)

	logged := buf.String()
	assert.Contains(t, logged, "order placed")
	assert.Contains(t, logged, order.ID.String())
	assert.Contains(t, logged, "items=2")
}
