package mysql

import (
	"realestate-lending/internal/domain/ledger"
	"realestate-lending/internal/domain/loan"
	"realestate-lending/internal/domain/payment"

	"gorm.io/gorm"
)

// AutoMigrate creates the off-chain ledger tables on any of the supported
// drivers; column types avoid dialect-specific ones such as ENUM.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&loan.Loan{},
		&payment.Payment{},
		&ledger.Property{},
		&ledger.LenderPosition{},
		&ledger.BorrowerRecord{},
		&ledger.PoolState{},
	)
}
