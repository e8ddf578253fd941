package service

import "errors"

var (
	ErrInvalidStatusTransition = errors.New("order status transition not allowed")
	ErrCheckoutInFlight        = errors.New("order submission already in progress")
	ErrCartLocked              = errors.New("cart cannot change during checkout")
	ErrUPINotConfigured        = errors.New("restaurant has no UPI id configured")
	ErrInvalidCredentials      = errors.New("invalid email or password")
	ErrPaymentNotPending       = errors.New("payment has already been reviewed")
)
