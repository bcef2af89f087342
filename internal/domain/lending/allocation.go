package lending

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type PaymentBreakdown struct {
	TotalDebt       decimal.Decimal `json:"total_debt"`
	Principal       decimal.Decimal `json:"principal"`
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
	PlatformFee     decimal.Decimal `json:"platform_fee"`
	Payment         decimal.Decimal `json:"payment"`

	ToPlatform  decimal.Decimal `json:"to_platform"`
	ToInterest  decimal.Decimal `json:"to_interest"`
	ToPrincipal decimal.Decimal `json:"to_principal"`
	// Excess is only non-zero under ExcessRefund.
	Excess decimal.Decimal `json:"excess"`
}

// Allocated is the part of the payment applied to the loan.
func (b PaymentBreakdown) Allocated() decimal.Decimal {
	return b.ToPlatform.Add(b.ToInterest).Add(b.ToPrincipal)
}

// SettlesDebt reports whether every component was covered in full.
func (b PaymentBreakdown) SettlesDebt() bool {
	return b.ToPlatform.Equal(b.PlatformFee) &&
		b.ToInterest.Equal(b.AccruedInterest) &&
		b.ToPrincipal.Equal(b.Principal)
}

// Allocate splits a payment greedily: platform fee, then interest, then
// principal. A nil payment means full payoff.
func Allocate(totalDebt, principal, interest, fee decimal.Decimal, payment *decimal.Decimal, policy ExcessPolicy) (PaymentBreakdown, error) {
	actual := totalDebt
	if payment != nil {
		actual = *payment
	}
	if actual.IsNegative() {
		return PaymentBreakdown{}, ErrInvalidAmount
	}

	out := PaymentBreakdown{
		TotalDebt:       totalDebt,
		Principal:       principal,
		AccruedInterest: interest,
		PlatformFee:     fee,
		Payment:         actual,
		Excess:          decimal.Zero,
	}
	if actual.GreaterThan(totalDebt) {
		if policy != ExcessRefund {
			return PaymentBreakdown{}, fmt.Errorf("%w: payment %s, debt %s", ErrPaymentExceedsDebt, actual, totalDebt)
		}
		out.Excess = actual.Sub(totalDebt)
	}

	remaining := actual
	out.ToPlatform = decimal.Min(remaining, fee)
	remaining = remaining.Sub(out.ToPlatform)
	out.ToInterest = decimal.Min(remaining, interest)
	remaining = remaining.Sub(out.ToInterest)
	out.ToPrincipal = decimal.Min(remaining, principal)
	return out, nil
}
