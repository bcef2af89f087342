package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when the ledger holds no such collateral, loan,
// lender or pool.
var ErrNotFound = errors.New("ledger: record not found")

// Valuation is the appraised value of a collateral asset and where it sits.
type Valuation struct {
	Value    decimal.Decimal
	Location string
}

// BorrowerHistory is read-only input to risk scoring.
type BorrowerHistory struct {
	TotalLoans         int
	SuccessfulLoans    int
	DefaultCount       int
	AveragePaymentTime time.Duration
}

type LoanInfo struct {
	LoanID    uint64
	Borrower  common.Address
	Principal decimal.Decimal
	// StartTime anchors accrual; it moves forward each time a payment is applied.
	StartTime time.Time
	// Interest and fee left unpaid by earlier partial payments.
	InterestCarry decimal.Decimal
	FeeCarry      decimal.Decimal
	Closed        bool
}

type LenderInfo struct {
	Account    common.Address
	Balance    decimal.Decimal
	LastUpdate time.Time
}

type PoolStats struct {
	TotalSupplied decimal.Decimal
	TotalLent     decimal.Decimal
}

// Reader is the read boundary to wherever loan state lives (an on-chain
// ledger, an indexer, or the off-chain store). Every call is single-shot:
// implementations must return an error rather than a zero value when the
// lookup fails.
//
//go:generate mockgen -destination=mocks/mock_reader.go -package=mocks -source=reader.go Reader
type Reader interface {
	OwnerOf(ctx context.Context, collateralID uint64) (common.Address, error)
	Valuation(ctx context.Context, collateralID uint64) (Valuation, error)
	AvailableLiquidity(ctx context.Context) (decimal.Decimal, error)
	BorrowerHistory(ctx context.Context, borrower common.Address) (BorrowerHistory, error)
	LoanInfo(ctx context.Context, loanID uint64) (LoanInfo, error)
	PoolStats(ctx context.Context) (PoolStats, error)
	LenderInfo(ctx context.Context, account common.Address) (LenderInfo, error)
}
