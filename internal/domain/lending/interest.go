package lending

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// AmountScale is the number of fractional digits kept on computed amounts;
// it matches the decimal(36,18) ledger columns.
const AmountScale int32 = 18

// AccruedInterest is linear (non-compounding) interest on principal at an
// annual rate for the whole seconds between since and now.
func AccruedInterest(principal, rate decimal.Decimal, since, now time.Time, secondsPerYear int64) (decimal.Decimal, error) {
	if principal.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Zero, ErrInvalidRate
	}
	if since.After(now) {
		return decimal.Zero, fmt.Errorf("%w: last update %s is after %s", ErrInvalidTimestamp,
			since.UTC().Format(time.RFC3339), now.UTC().Format(time.RFC3339))
	}
	elapsed := now.Unix() - since.Unix()
	if elapsed <= 0 || principal.IsZero() || rate.IsZero() {
		return decimal.Zero, nil
	}
	return principal.Mul(rate).Mul(decimal.NewFromInt(elapsed)).DivRound(decimal.NewFromInt(secondsPerYear), AmountScale), nil
}
