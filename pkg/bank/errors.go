package bank

import "errors"

// Domain-level error values returned by the account.
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrInvalidDate         = errors.New("invalid date")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
