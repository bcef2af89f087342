package servicing

import (
	"time"

	"github.com/shopspring/decimal"
)

type LenderInterestDTO struct {
	Account         string          `json:"account"`
	Principal       decimal.Decimal `json:"principal"`
	AccruedInterest decimal.Decimal `json:"accrued_interest"`
	TotalBalance    decimal.Decimal `json:"total_balance"`
	LastUpdate      time.Time       `json:"last_update"`
	AsOf            time.Time       `json:"as_of"`
}

type ProtocolMetricsDTO struct {
	TotalValueLocked      decimal.Decimal `json:"total_value_locked"`
	TotalLoansOutstanding decimal.Decimal `json:"total_loans_outstanding"`
	AverageInterestRate   decimal.Decimal `json:"average_interest_rate"`
	LiquidityUtilization  decimal.Decimal `json:"liquidity_utilization"`
	DefaultRate           decimal.Decimal `json:"default_rate"`
}
