package lending

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExcessPolicy decides what happens to the part of a payment above total debt.
type ExcessPolicy string

const (
	// ExcessReject refuses payments larger than the outstanding debt.
	ExcessReject ExcessPolicy = "reject"
	// ExcessRefund accepts them and reports the surplus as owed back to the payer.
	ExcessRefund ExcessPolicy = "refund"
)

// Params carries every tunable of the servicing math. Components receive it
// explicitly so tests can vary any value per case.
type Params struct {
	BaseLTV                decimal.Decimal
	HighRiskLocationMarker string
	HighRiskLocationFactor decimal.Decimal
	PriorDefaultFactor     decimal.Decimal

	LenderAPY        decimal.Decimal
	BorrowerAPR      decimal.Decimal
	PlatformFeeShare decimal.Decimal // cut of accrued interest
	SecondsPerYear   int64

	RiskBase        int
	RiskPerDefault  int
	RiskPerSuccess  int
	RiskSuccessCap  int
	RiskThreshold   int
	AssumedDefaults decimal.Decimal // reported as the protocol default rate

	Excess ExcessPolicy
}

func DefaultParams() Params {
	return Params{
		BaseLTV:                decimal.RequireFromString("0.65"),
		HighRiskLocationMarker: "high-risk-zone",
		HighRiskLocationFactor: decimal.RequireFromString("0.9"),
		PriorDefaultFactor:     decimal.RequireFromString("0.8"),

		LenderAPY:        decimal.RequireFromString("0.06"),
		BorrowerAPR:      decimal.RequireFromString("0.085"),
		PlatformFeeShare: decimal.RequireFromString("0.15"),
		SecondsPerYear:   365 * 24 * 60 * 60,

		RiskBase:        50,
		RiskPerDefault:  20,
		RiskPerSuccess:  5,
		RiskSuccessCap:  25,
		RiskThreshold:   70,
		AssumedDefaults: decimal.RequireFromString("0.02"),

		Excess: ExcessReject,
	}
}

func (p Params) Validate() error {
	one := decimal.NewFromInt(1)
	fractions := map[string]decimal.Decimal{
		"base_ltv":                  p.BaseLTV,
		"high_risk_location_factor": p.HighRiskLocationFactor,
		"prior_default_factor":      p.PriorDefaultFactor,
		"lender_apy":                p.LenderAPY,
		"borrower_apr":              p.BorrowerAPR,
		"platform_fee_share":        p.PlatformFeeShare,
		"default_rate":              p.AssumedDefaults,
	}
	for name, v := range fractions {
		if v.IsNegative() || v.GreaterThan(one) {
			return fmt.Errorf("%s must be within [0,1], got %s", name, v)
		}
	}
	if p.SecondsPerYear <= 0 {
		return fmt.Errorf("seconds_per_year must be positive, got %d", p.SecondsPerYear)
	}
	if p.RiskThreshold < 0 || p.RiskThreshold > 100 {
		return fmt.Errorf("risk_threshold must be within [0,100], got %d", p.RiskThreshold)
	}
	switch p.Excess {
	case ExcessReject, ExcessRefund:
	default:
		return fmt.Errorf("unknown excess payment policy %q", p.Excess)
	}
	return nil
}
