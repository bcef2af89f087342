package repayment

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type RecordInput struct {
	LoanID uint64
	Payer  common.Address
	Amount decimal.Decimal
}

type RepaymentDTO struct {
	PaymentID   string          `json:"payment_id"`
	LoanID      uint64          `json:"loan_id"`
	Amount      decimal.Decimal `json:"amount"`
	TotalDebt   decimal.Decimal `json:"total_debt"`
	ToPlatform  decimal.Decimal `json:"to_platform"`
	ToInterest  decimal.Decimal `json:"to_interest"`
	ToPrincipal decimal.Decimal `json:"to_principal"`
	Excess      decimal.Decimal `json:"excess"`
	// Remaining debt right after the payment.
	Outstanding decimal.Decimal `json:"outstanding"`
	LoanState   string          `json:"loan_state"`
	PaidAt      time.Time       `json:"paid_at"`
}
