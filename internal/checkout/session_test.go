package checkout_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tradwear/storefront/internal/checkout"
	"github.com/tradwear/storefront/internal/domain"
)

func randomCustomer() domain.CustomerInfo {
	return domain.CustomerInfo{
		FirstName: gofakeit.FirstName(),
		LastName:  gofakeit.LastName(),
		Email:     gofakeit.Email(),
		Phone:     gofakeit.Phone(),
	}
}

func randomShipping() domain.ShippingInfo {
	return domain.ShippingInfo{
		Address: gofakeit.Street(),
		City:    gofakeit.City(),
		State:   gofakeit.State(),
		ZipCode: gofakeit.Zip(),
		Method:  checkout.MethodStandard,
	}
}

func randomPayment() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber:    gofakeit.CreditCardNumber(nil),
		NameOnCard:    gofakeit.Name(),
		ExpiryDate:    "12/27",
		CVV:           gofakeit.CreditCardCvv(),
		SameAsBilling: true,
	}
}

// completedSession walks a fully filled session to the review step.
func completedSession(t *testing.T) checkout.Session {
	t.Helper()

	s := checkout.NewSession().
		WithCustomer(randomCustomer()).
		WithShipping(randomShipping()).
		WithPayment(randomPayment())

	s = s.Next()
	s = s.Next()
	s = s.Next()
	require.Equal(t, checkout.StepReview, s.Step)

	return s
}

func TestNewSessionDefaults(t *testing.T) {
	s := checkout.NewSession()

	assert.Equal(t, checkout.StepInformation, s.Step)
	assert.Equal(t, checkout.MethodStandard, s.Shipping.Method)
	assert.True(t, s.Payment.SameAsBilling)
	assert.False(t, s.PromoApplied)
}

func TestStepComplete(t *testing.T) {
	tests := []struct {
		name    string
		session checkout.Session
		want    bool
	}{
		{
			name:    "information with all required fields",
			session: checkout.Session{Step: checkout.StepInformation, Customer: randomCustomer()},
			want:    true,
		},
		{
			name: "information without first name",
			session: checkout.Session{
				Step:     checkout.StepInformation,
				Customer: domain.CustomerInfo{LastName: "Nguyen", Email: "linh@example.com"},
			},
			want: false,
		},
		{
			name: "information phone is optional",
			session: checkout.Session{
				Step:     checkout.StepInformation,
				Customer: domain.CustomerInfo{FirstName: "Linh", LastName: "Nguyen", Email: "linh@example.com"},
			},
			want: true,
		},
		{
			name:    "shipping with all required fields",
			session: checkout.Session{Step: checkout.StepShipping, Shipping: randomShipping()},
			want:    true,
		},
		{
			name: "shipping without zip code",
			session: checkout.Session{
				Step:     checkout.StepShipping,
				Shipping: domain.ShippingInfo{Address: "1 Pho St", City: "Hanoi", State: "HN"},
			},
			want: false,
		},
		{
			name:    "payment with all required fields",
			session: checkout.Session{Step: checkout.StepPayment, Payment: randomPayment()},
			want:    true,
		},
		{
			name: "payment without cvv",
			session: checkout.Session{
				Step:    checkout.StepPayment,
				Payment: domain.PaymentInfo{CardNumber: "4111", NameOnCard: "L NGUYEN", ExpiryDate: "12/27"},
			},
			want: false,
		},
		{
			name:    "review has no required fields",
			session: checkout.Session{Step: checkout.StepReview},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.session.StepComplete())
		})
	}
}

func TestNextGatesOnCompleteness(t *testing.T) {
	s := checkout.NewSession()

	// Missing required fields: stays put.
	assert.Equal(t, checkout.StepInformation, s.Next().Step)

	s = s.WithCustomer(randomCustomer())
	assert.Equal(t, checkout.StepShipping, s.Next().Step)
}

func TestNextAtReviewIsNoOp(t *testing.T) {
	s := completedSession(t)
	assert.Equal(t, checkout.StepReview, s.Next().Step)
}

func TestPrev(t *testing.T) {
	s := checkout.NewSession()

	// No-op on the first step.
	assert.Equal(t, checkout.StepInformation, s.Prev().Step)

	s = completedSession(t)
	s = s.Prev()
	assert.Equal(t, checkout.StepPayment, s.Step)

	// Going back never re-validates: clearing the payment fields still
	// allows stepping back further.
	s = s.WithPayment(domain.PaymentInfo{})
	assert.Equal(t, checkout.StepShipping, s.Prev().Step)
}

func TestNoStepSkipping(t *testing.T) {
	s := checkout.NewSession().WithCustomer(randomCustomer())

	// Shipping fields are empty, so two Next calls still end on shipping.
	s = s.Next()
	s = s.Next()
	assert.Equal(t, checkout.StepShipping, s.Step)
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	s := checkout.NewSession().WithCustomer(randomCustomer())

	_ = s.Next()
	assert.Equal(t, checkout.StepInformation, s.Step)

	_ = s.ApplyPromo("WELCOME10")
	assert.False(t, s.PromoApplied)
}

func TestStepsAndLabels(t *testing.T) {
	steps := checkout.Steps()
	require.Len(t, steps, 4)

	wantLabels := []string{"Information", "Shipping", "Payment", "Review"}
	for i, step := range steps {
		assert.Equal(t, i+1, int(step))
		assert.Equal(t, wantLabels[i], step.Label())
	}
}
