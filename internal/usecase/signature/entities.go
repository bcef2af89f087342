package signature

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Amounts are in the token's base units (token amount × 10^decimals, so
// 12.5 USDT is 12500000). Fractional or negative base units, and values
// above uint256, are rejected. A nil Nonce asks the service to allocate the
// next one.

type WithdrawalInput struct {
	Account   common.Address
	Principal decimal.Decimal
	Interest  decimal.Decimal
	Nonce     *uint64
}

type LoanApprovalInput struct {
	Borrower     common.Address
	CollateralID uint64
	Amount       decimal.Decimal
	Nonce        *uint64
}

type RepaymentInput struct {
	Borrower    common.Address
	LoanID      uint64
	Principal   decimal.Decimal
	Interest    decimal.Decimal
	PlatformFee decimal.Decimal
	Nonce       *uint64
}

type SignatureDTO struct {
	Kind      string `json:"kind"`
	Hash      string `json:"hash"`
	Signature string `json:"signature"`
	Signer    string `json:"signer"`
	ChainID   string `json:"chain_id"`
	Nonce     uint64 `json:"nonce"`
}
