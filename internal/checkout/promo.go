package checkout

import "strings"

// WelcomeCode is the only promo code the storefront accepts. It grants a
// flat discount off the order total.
const WelcomeCode = "welcome10"

// ApplyPromo records the entered code and latches PromoApplied when it
// matches WelcomeCode case-insensitively. The latch is one-way: a later
// non-matching entry never clears it. Non-matching codes no-op silently.
func (s Session) ApplyPromo(code string) Session {
	s.PromoCode = code
	if strings.ToLower(code) == WelcomeCode {
		s.PromoApplied = true
	}
	return s
}
