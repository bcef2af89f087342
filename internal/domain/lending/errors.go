package lending

import "errors"

var (
	// ErrNotOwner is never returned from Evaluate; it supplies the rejection reason.
	ErrNotOwner           = errors.New("borrower does not own the collateral")
	ErrExternalRead       = errors.New("external read failed")
	ErrInvalidTimestamp   = errors.New("timestamp is in the future")
	ErrInvalidAmount      = errors.New("amount must not be negative")
	ErrInvalidRate        = errors.New("rate must be within [0,1]")
	ErrPaymentExceedsDebt = errors.New("payment exceeds total debt")
)
