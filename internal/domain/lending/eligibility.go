package lending

import (
	"context"
	"fmt"
	"strings"

	"realestate-lending/internal/domain/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

const (
	ReasonLTVExceeded       = "requested amount exceeds maximum loan-to-value"
	ReasonInsufficientFunds = "insufficient liquidity in the lending pool"
	ReasonRiskTooHigh       = "borrower risk profile too high"
)

type EligibilityResult struct {
	IsEligible    bool            `json:"is_eligible"`
	MaxLoanAmount decimal.Decimal `json:"max_loan_amount"`
	LTVRatio      decimal.Decimal `json:"ltv_ratio"`
	PropertyValue decimal.Decimal `json:"property_value"`
	RiskScore     int             `json:"risk_score"`
	Reasons       []string        `json:"reasons"`
}

// DynamicLTV applies the location and prior-default haircuts to the base
// ratio. Haircuts compound multiplicatively.
func DynamicLTV(location string, h ledger.BorrowerHistory, p Params) decimal.Decimal {
	ltv := p.BaseLTV
	if p.HighRiskLocationMarker != "" && strings.Contains(location, p.HighRiskLocationMarker) {
		ltv = ltv.Mul(p.HighRiskLocationFactor)
	}
	if h.DefaultCount > 0 {
		ltv = ltv.Mul(p.PriorDefaultFactor)
	}
	return ltv
}

type Evaluator struct {
	ledger ledger.Reader
	params Params
}

func NewEvaluator(r ledger.Reader, p Params) *Evaluator { return &Evaluator{ledger: r, params: p} }

// Evaluate decides whether borrower may take requested against collateralID.
// Only the ownership check short-circuits; every other business rule is
// collected as a reason so callers can show all of them at once.
func (e *Evaluator) Evaluate(ctx context.Context, borrower common.Address, collateralID uint64, requested decimal.Decimal) (EligibilityResult, error) {
	owner, err := e.ledger.OwnerOf(ctx, collateralID)
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("%w: owner of collateral %d: %w", ErrExternalRead, collateralID, err)
	}
	if owner != borrower {
		return EligibilityResult{
			MaxLoanAmount: decimal.Zero,
			LTVRatio:      decimal.Zero,
			PropertyValue: decimal.Zero,
			Reasons:       []string{ErrNotOwner.Error()},
		}, nil
	}

	val, err := e.ledger.Valuation(ctx, collateralID)
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("%w: valuation of collateral %d: %w", ErrExternalRead, collateralID, err)
	}
	history, err := e.ledger.BorrowerHistory(ctx, borrower)
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("%w: history of %s: %w", ErrExternalRead, borrower.Hex(), err)
	}

	ltv := DynamicLTV(val.Location, history, e.params)
	maxLoan := val.Value.Mul(ltv)
	reasons := make([]string, 0, 3)

	if requested.GreaterThan(maxLoan) {
		reasons = append(reasons, fmt.Sprintf("%s (%s%%)", ReasonLTVExceeded, ltv.Shift(2).String()))
	}

	liquidity, err := e.ledger.AvailableLiquidity(ctx)
	if err != nil {
		return EligibilityResult{}, fmt.Errorf("%w: available liquidity: %w", ErrExternalRead, err)
	}
	if requested.GreaterThan(liquidity) {
		reasons = append(reasons, ReasonInsufficientFunds)
	}

	score := RiskScore(history, e.params)
	if score > e.params.RiskThreshold {
		reasons = append(reasons, ReasonRiskTooHigh)
	}

	return EligibilityResult{
		IsEligible:    len(reasons) == 0,
		MaxLoanAmount: maxLoan,
		LTVRatio:      ltv,
		PropertyValue: val.Value,
		RiskScore:     score,
		Reasons:       reasons,
	}, nil
}
