package checkout

import "errors"

var (
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrPaymentVerificationFailed is a hard rejection: the signature
	// did not match, no order is written and nothing is retried.
	ErrPaymentVerificationFailed = errors.New("payment verification failed")

	// ErrCheckoutExpired means no pending checkout exists for the
	// gateway order id; the priced snapshot is gone (or never was),
	// so even a validly signed callback cannot be finalized.
	ErrCheckoutExpired = errors.New("checkout expired or not found")

	ErrNotAuthorized = errors.New("not authorized")

	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)
