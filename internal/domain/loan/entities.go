package loan

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("loan not found")
	ErrClosed   = errors.New("loan is not active")
)

type State string

const (
	StateActive    State = "active"
	StateRepaid    State = "repaid"
	StateDefaulted State = "defaulted"
)

// Loan is the off-chain ledger's copy of a borrower position. The numeric ID
// is the same loan id the contracts use.
type Loan struct {
	ID              uint64          `gorm:"primaryKey;column:id" json:"loan_id"`
	BorrowerAddress string          `gorm:"size:42;index:idx_loans_borrower" json:"borrower"`
	CollateralID    uint64          `gorm:"index" json:"collateral_id"`
	Principal       decimal.Decimal `gorm:"type:decimal(36,18)" json:"principal"`
	InterestCarry   decimal.Decimal `gorm:"type:decimal(36,18)" json:"interest_carry"`
	FeeCarry        decimal.Decimal `gorm:"type:decimal(36,18)" json:"fee_carry"`
	AccrualStart    time.Time       `json:"accrual_start"`
	State           State           `gorm:"size:16;not null;default:'active';index" json:"state"`
	StateUpdatedAt  time.Time       `gorm:"autoCreateTime" json:"state_updated_at"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }
