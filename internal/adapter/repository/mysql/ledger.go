package mysql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"realestate-lending/internal/domain/ledger"
	loanDomain "realestate-lending/internal/domain/loan"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OffchainLedger serves ledger.Reader from the service's own tables. It is
// the read side used when no chain indexer is wired in.
type OffchainLedger struct{ db *gorm.DB }

func NewOffchainLedger(db *gorm.DB) *OffchainLedger { return &OffchainLedger{db: db} }

var _ ledger.Reader = (*OffchainLedger)(nil)

func (l *OffchainLedger) property(ctx context.Context, collateralID uint64) (*ledger.Property, error) {
	var p ledger.Property
	if err := l.db.WithContext(ctx).Where("token_id = ?", collateralID).First(&p).Error; err != nil {
		return nil, notFound(err, "collateral %d", collateralID)
	}
	return &p, nil
}

func (l *OffchainLedger) OwnerOf(ctx context.Context, collateralID uint64) (common.Address, error) {
	p, err := l.property(ctx, collateralID)
	if err != nil {
		return common.Address{}, err
	}
	return common.HexToAddress(p.OwnerAddress), nil
}

func (l *OffchainLedger) Valuation(ctx context.Context, collateralID uint64) (ledger.Valuation, error) {
	p, err := l.property(ctx, collateralID)
	if err != nil {
		return ledger.Valuation{}, err
	}
	return ledger.Valuation{Value: p.Valuation, Location: p.Location}, nil
}

func (l *OffchainLedger) PoolStats(ctx context.Context) (ledger.PoolStats, error) {
	var s ledger.PoolState
	if err := l.db.WithContext(ctx).Where("id = ?", 1).First(&s).Error; err != nil {
		return ledger.PoolStats{}, notFound(err, "pool state")
	}
	return ledger.PoolStats{TotalSupplied: s.TotalSupplied, TotalLent: s.TotalLent}, nil
}

// AvailableLiquidity is what has been supplied and not lent out.
func (l *OffchainLedger) AvailableLiquidity(ctx context.Context) (decimal.Decimal, error) {
	s, err := l.PoolStats(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.Max(s.TotalSupplied.Sub(s.TotalLent), decimal.Zero), nil
}

// BorrowerHistory reports an empty history for addresses that have never
// borrowed; a missing row is an answer, not a failed read.
func (l *OffchainLedger) BorrowerHistory(ctx context.Context, borrower common.Address) (ledger.BorrowerHistory, error) {
	var rec ledger.BorrowerRecord
	err := l.db.WithContext(ctx).Where("LOWER(address) = ?", ledger.AddressKey(borrower)).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ledger.BorrowerHistory{}, nil
	}
	if err != nil {
		return ledger.BorrowerHistory{}, err
	}
	return ledger.BorrowerHistory{
		TotalLoans:         rec.TotalLoans,
		SuccessfulLoans:    rec.SuccessfulLoans,
		DefaultCount:       rec.DefaultCount,
		AveragePaymentTime: time.Duration(rec.AveragePaymentTimeSecs) * time.Second,
	}, nil
}

func (l *OffchainLedger) LoanInfo(ctx context.Context, loanID uint64) (ledger.LoanInfo, error) {
	var ln loanDomain.Loan
	if err := l.db.WithContext(ctx).Where("id = ?", loanID).First(&ln).Error; err != nil {
		return ledger.LoanInfo{}, notFound(err, "loan %d", loanID)
	}
	return ledger.LoanInfo{
		LoanID:        ln.ID,
		Borrower:      common.HexToAddress(ln.BorrowerAddress),
		Principal:     ln.Principal,
		StartTime:     ln.AccrualStart,
		InterestCarry: ln.InterestCarry,
		FeeCarry:      ln.FeeCarry,
		Closed:        ln.State != loanDomain.StateActive,
	}, nil
}

func (l *OffchainLedger) LenderInfo(ctx context.Context, account common.Address) (ledger.LenderInfo, error) {
	var pos ledger.LenderPosition
	if err := l.db.WithContext(ctx).Where("LOWER(address) = ?", ledger.AddressKey(account)).First(&pos).Error; err != nil {
		return ledger.LenderInfo{}, notFound(err, "lender %s", account.Hex())
	}
	return ledger.LenderInfo{Account: account, Balance: pos.Balance, LastUpdate: pos.LastUpdate}, nil
}

func notFound(err error, format string, args ...any) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ledger.ErrNotFound)
	}
	return err
}
