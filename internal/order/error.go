package order

import "errors"

var (
	ErrMinimumOrderNotMet = errors.New("order total is below the minimum order amount")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrPhoneRequired      = errors.New("phone number required to look up guest orders")
)
