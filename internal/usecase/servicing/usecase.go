package servicing

import (
	"context"
	"fmt"
	"time"

	"realestate-lending/internal/domain/ledger"
	"realestate-lending/internal/domain/lending"
	"realestate-lending/internal/domain/loan"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Usecase answers the read-only servicing questions: what a lender has
// earned, whether a borrower qualifies, what a payment would cover.
type Usecase struct {
	ledger ledger.Reader
	params lending.Params
	eval   *lending.Evaluator
	now    func() time.Time
}

type Option func(*Usecase)

// WithClock overrides time.Now, for tests.
func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }

func NewUsecase(r ledger.Reader, p lending.Params, opts ...Option) *Usecase {
	u := &Usecase{
		ledger: r,
		params: p,
		eval:   lending.NewEvaluator(r, p),
		now:    func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

func (u *Usecase) LenderInterest(ctx context.Context, account common.Address) (*LenderInterestDTO, error) {
	info, err := u.ledger.LenderInfo(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("%w: lender %s: %w", lending.ErrExternalRead, account.Hex(), err)
	}
	now := u.now()
	accrued, err := lending.AccruedInterest(info.Balance, u.params.LenderAPY, info.LastUpdate, now, u.params.SecondsPerYear)
	if err != nil {
		return nil, err
	}
	return &LenderInterestDTO{
		Account:         account.Hex(),
		Principal:       info.Balance,
		AccruedInterest: accrued,
		TotalBalance:    info.Balance.Add(accrued),
		LastUpdate:      info.LastUpdate,
		AsOf:            now,
	}, nil
}

func (u *Usecase) Eligibility(ctx context.Context, borrower common.Address, collateralID uint64, amount decimal.Decimal) (*lending.EligibilityResult, error) {
	if amount.IsNegative() {
		return nil, lending.ErrInvalidAmount
	}
	res, err := u.eval.Evaluate(ctx, borrower, collateralID, amount)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// LoanPayment previews how amount (nil = full payoff) would be split across
// the loan's current debt. Nothing is persisted.
func (u *Usecase) LoanPayment(ctx context.Context, loanID uint64, amount *decimal.Decimal) (*lending.PaymentBreakdown, error) {
	info, err := u.ledger.LoanInfo(ctx, loanID)
	if err != nil {
		return nil, fmt.Errorf("%w: loan %d: %w", lending.ErrExternalRead, loanID, err)
	}
	if info.Closed {
		return nil, fmt.Errorf("loan %d: %w", loanID, loan.ErrClosed)
	}
	debt, err := lending.OutstandingDebt(info.Principal, info.InterestCarry, info.FeeCarry, info.StartTime, u.now(), u.params)
	if err != nil {
		return nil, err
	}
	b, err := lending.Allocate(debt.Total(), debt.Principal, debt.AccruedInterest, debt.PlatformFee, amount, u.params.Excess)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (u *Usecase) ProtocolMetrics(ctx context.Context) (*ProtocolMetricsDTO, error) {
	s, err := u.ledger.PoolStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: pool stats: %w", lending.ErrExternalRead, err)
	}
	util := decimal.Zero
	if s.TotalSupplied.IsPositive() {
		util = s.TotalLent.DivRound(s.TotalSupplied, 18)
	}
	return &ProtocolMetricsDTO{
		TotalValueLocked:      s.TotalSupplied,
		TotalLoansOutstanding: s.TotalLent,
		AverageInterestRate:   u.params.LenderAPY,
		LiquidityUtilization:  util,
		DefaultRate:           u.params.AssumedDefaults,
	}, nil
}
