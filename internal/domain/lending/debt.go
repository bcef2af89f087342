package lending

import (
	"time"

	"github.com/shopspring/decimal"
)

// Debt is what a borrower owes at a point in time.
type Debt struct {
	Principal       decimal.Decimal
	AccruedInterest decimal.Decimal
	PlatformFee     decimal.Decimal
}

func (d Debt) Total() decimal.Decimal {
	return d.Principal.Add(d.AccruedInterest).Add(d.PlatformFee)
}

// OutstandingDebt adds interest accrued since the accrual anchor to whatever
// interest and fee earlier partial payments left unpaid. The platform fee is
// the configured share of the newly accrued interest.
func OutstandingDebt(principal, interestCarry, feeCarry decimal.Decimal, since, now time.Time, p Params) (Debt, error) {
	accrued, err := AccruedInterest(principal, p.BorrowerAPR, since, now, p.SecondsPerYear)
	if err != nil {
		return Debt{}, err
	}
	return Debt{
		Principal:       principal,
		AccruedInterest: interestCarry.Add(accrued),
		PlatformFee:     feeCarry.Add(accrued.Mul(p.PlatformFeeShare).Round(AmountScale)),
	}, nil
}
