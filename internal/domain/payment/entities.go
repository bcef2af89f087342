package payment

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Table: payments. One row per repayment applied to a loan.
type Payment struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	PaymentID   string          `gorm:"column:payment_id;type:char(32);not null;uniqueIndex"`
	LoanID      uint64          `gorm:"column:loan_id;not null;index"`
	Payer       string          `gorm:"column:payer;size:42;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:decimal(36,18);not null"`
	ToPlatform  decimal.Decimal `gorm:"column:to_platform;type:decimal(36,18);not null"`
	ToInterest  decimal.Decimal `gorm:"column:to_interest;type:decimal(36,18);not null"`
	ToPrincipal decimal.Decimal `gorm:"column:to_principal;type:decimal(36,18);not null"`
	Excess      decimal.Decimal `gorm:"column:excess;type:decimal(36,18);not null"`
	PaidAt      time.Time       `gorm:"column:paid_at;not null"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (Payment) TableName() string { return "payments" }

// Recorded is published once a payment has been committed.
type Recorded struct {
	PaymentID   string          `json:"payment_id"`
	LoanID      uint64          `json:"loan_id"`
	Payer       string          `json:"payer"`
	Amount      decimal.Decimal `json:"amount"`
	ToPlatform  decimal.Decimal `json:"to_platform"`
	ToInterest  decimal.Decimal `json:"to_interest"`
	ToPrincipal decimal.Decimal `json:"to_principal"`
	Excess      decimal.Decimal `json:"excess"`
	LoanClosed  bool            `json:"loan_closed"`
	PaidAt      time.Time       `json:"paid_at"`
}

type Publisher interface {
	PublishRecorded(ctx context.Context, evt Recorded) error
}
