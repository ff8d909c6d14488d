// Package checkout implements the four-step checkout wizard and its derived
// order arithmetic. A Session is a value; every transition is a pure function
// from one session to the next, so callers can hold the state wherever the UI
// keeps it. Field checks are presence-only, the wizard never validates
// formats.
package checkout

import "github.com/tradwear/storefront/internal/domain"

type Step int

const (
	StepInformation Step = iota + 1
	StepShipping
	StepPayment
	StepReview
)

func (s Step) Label() string {
	switch s {
	case StepInformation:
		return "Information"
	case StepShipping:
		return "Shipping"
	case StepPayment:
		return "Payment"
	case StepReview:
		return "Review"
	default:
		return "Unknown"
	}
}

// Steps lists the wizard stages in order, for progress indicators.
func Steps() []Step {
	return []Step{StepInformation, StepShipping, StepPayment, StepReview}
}

// Session is the ephemeral checkout state. It lives only as long as the
// checkout flow is on screen and is never persisted.
type Session struct {
	Step     Step
	Customer domain.CustomerInfo
	Shipping domain.ShippingInfo
	Payment  domain.PaymentInfo

	PromoCode    string
	PromoApplied bool
}

func NewSession() Session {
	return Session{
		Step:     StepInformation,
		Shipping: domain.ShippingInfo{Method: MethodStandard},
		Payment:  domain.PaymentInfo{SameAsBilling: true},
	}
}

func (s Session) WithCustomer(info domain.CustomerInfo) Session {
	s.Customer = info
	return s
}

func (s Session) WithShipping(info domain.ShippingInfo) Session {
	s.Shipping = info
	return s
}

func (s Session) WithPayment(info domain.PaymentInfo) Session {
	s.Payment = info
	return s
}

// StepComplete reports whether the active step's required fields are all
// non-empty. The review step has no required fields.
func (s Session) StepComplete() bool {
	switch s.Step {
	case StepInformation:
		return s.Customer.FirstName != "" && s.Customer.LastName != "" && s.Customer.Email != ""
	case StepShipping:
		return s.Shipping.Address != "" && s.Shipping.City != "" &&
			s.Shipping.State != "" && s.Shipping.ZipCode != ""
	case StepPayment:
		return s.Payment.CardNumber != "" && s.Payment.NameOnCard != "" &&
			s.Payment.ExpiryDate != "" && s.Payment.CVV != ""
	case StepReview:
		return true
	default:
		return false
	}
}

// Next advances the wizard by one step. It is a no-op on the review step and
// whenever the active step is incomplete; steps cannot be skipped.
func (s Session) Next() Session {
	if s.Step >= StepReview || !s.StepComplete() {
		return s
	}

	s.Step++
	return s
}

// Prev goes back one step unconditionally; the step being left is not
// re-validated. No-op on the first step.
func (s Session) Prev() Session {
	if s.Step <= StepInformation {
		return s
	}

	s.Step--
	return s
}
