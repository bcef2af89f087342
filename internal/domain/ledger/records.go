package ledger

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AddressKey is the stored form of an address: lowercase 0x-prefixed hex.
// Lookups compare against LOWER(column) so rows written by other tools in
// checksummed form still match.
func AddressKey(a common.Address) string { return strings.ToLower(a.Hex()) }

func normalizeAddress(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// Tables backing the off-chain ledger. They mirror what the contracts expose
// so the same Reader contract can be served from either side.

type Property struct {
	TokenID      uint64          `gorm:"column:token_id;primaryKey"`
	OwnerAddress string          `gorm:"column:owner_address;size:42;not null;index"`
	Valuation    decimal.Decimal `gorm:"column:valuation;type:decimal(36,18);not null"`
	Location     string          `gorm:"column:location;type:text"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (Property) TableName() string { return "properties" }

func (p *Property) BeforeSave(*gorm.DB) error {
	p.OwnerAddress = normalizeAddress(p.OwnerAddress)
	return nil
}

type LenderPosition struct {
	Address    string          `gorm:"column:address;size:42;primaryKey"`
	Balance    decimal.Decimal `gorm:"column:balance;type:decimal(36,18);not null"`
	LastUpdate time.Time       `gorm:"column:last_update;not null"`
}

func (LenderPosition) TableName() string { return "lender_positions" }

func (p *LenderPosition) BeforeSave(*gorm.DB) error {
	p.Address = normalizeAddress(p.Address)
	return nil
}

type BorrowerRecord struct {
	Address                string `gorm:"column:address;size:42;primaryKey"`
	TotalLoans             int    `gorm:"column:total_loans;not null;default:0"`
	SuccessfulLoans        int    `gorm:"column:successful_loans;not null;default:0"`
	DefaultCount           int    `gorm:"column:default_count;not null;default:0"`
	AveragePaymentTimeSecs int64  `gorm:"column:average_payment_time_secs;not null;default:0"`
}

func (BorrowerRecord) TableName() string { return "borrower_histories" }

func (r *BorrowerRecord) BeforeSave(*gorm.DB) error {
	r.Address = normalizeAddress(r.Address)
	return nil
}

// PoolState is a single-row table (ID 1).
type PoolState struct {
	ID            uint8           `gorm:"column:id;primaryKey"`
	TotalSupplied decimal.Decimal `gorm:"column:total_supplied;type:decimal(36,18);not null"`
	TotalLent     decimal.Decimal `gorm:"column:total_lent;type:decimal(36,18);not null"`
}

func (PoolState) TableName() string { return "pool_state" }
