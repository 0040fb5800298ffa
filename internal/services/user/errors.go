package user

import "errors"

// Service errors
var (
	// ErrInsufficientCredit is returned when a debit exceeds the
	// current balance. Unlike the coordinator, this path enforces the
	// floor unconditionally.
	ErrInsufficientCredit = errors.New("insufficient credit for transaction")
)
