package transaction

import "errors"

// Service errors
var (
	// ErrInsufficientCredit is returned when a debit would take the
	// balance below zero and the non-negative balance policy is on.
	ErrInsufficientCredit = errors.New("insufficient credit for transaction")
)
