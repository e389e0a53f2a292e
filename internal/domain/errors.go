package domain

import "errors"

// Error taxonomy. Services wrap these sentinels with context; handlers
// translate them to status codes with errors.Is. Anything else is treated
// as an infrastructure failure and surfaced as retryable.
var (
	ErrValidation        = errors.New("validation error")
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
	ErrStateConflict     = errors.New("state conflict")
)
