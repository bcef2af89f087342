package http

import (
	"net/http"
	"strconv"

	"realestate-lending/internal/usecase/signature"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type SignatureHandler struct{ uc *signature.Usecase }

func NewSignatureHandler(uc *signature.Usecase) *SignatureHandler {
	return &SignatureHandler{uc: uc}
}

// Amounts are decimal strings in base units; nonce is optional.
type withdrawalReq struct {
	Account   string  `json:"account"   validate:"required,ethaddr"`
	Principal string  `json:"principal" validate:"required,decnonneg"`
	Interest  string  `json:"interest"  validate:"required,decnonneg"`
	Nonce     *string `json:"nonce"     validate:"omitempty,u64"`
}

type loanApprovalReq struct {
	Borrower     string  `json:"borrower"      validate:"required,ethaddr"`
	CollateralID string  `json:"collateral_id" validate:"required,u64"`
	Amount       string  `json:"amount"        validate:"required,decnonneg"`
	Nonce        *string `json:"nonce"         validate:"omitempty,u64"`
}

type repaymentSigReq struct {
	Borrower    string  `json:"borrower"     validate:"required,ethaddr"`
	LoanID      string  `json:"loan_id"      validate:"required,u64"`
	Principal   string  `json:"principal"    validate:"required,decnonneg"`
	Interest    string  `json:"interest"     validate:"required,decnonneg"`
	PlatformFee string  `json:"platform_fee" validate:"required,decnonneg"`
	Nonce       *string `json:"nonce"        validate:"omitempty,u64"`
}

func optionalNonce(s *string) *uint64 {
	if s == nil {
		return nil
	}
	n, _ := strconv.ParseUint(*s, 10, 64)
	return &n
}

func mustUint(s string) uint64 {
	n, _ := strconv.ParseUint(s, 10, 64)
	return n
}

// POST /signatures/withdrawal
func (h *SignatureHandler) Withdrawal(c echo.Context) error {
	var req withdrawalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Withdrawal(c.Request().Context(), signature.WithdrawalInput{
		Account:   common.HexToAddress(req.Account),
		Principal: decimal.RequireFromString(req.Principal),
		Interest:  decimal.RequireFromString(req.Interest),
		Nonce:     optionalNonce(req.Nonce),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// POST /signatures/loan-approval
func (h *SignatureHandler) LoanApproval(c echo.Context) error {
	var req loanApprovalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.LoanApproval(c.Request().Context(), signature.LoanApprovalInput{
		Borrower:     common.HexToAddress(req.Borrower),
		CollateralID: mustUint(req.CollateralID),
		Amount:       decimal.RequireFromString(req.Amount),
		Nonce:        optionalNonce(req.Nonce),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// POST /signatures/repayment
func (h *SignatureHandler) Repayment(c echo.Context) error {
	var req repaymentSigReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Repayment(c.Request().Context(), signature.RepaymentInput{
		Borrower:    common.HexToAddress(req.Borrower),
		LoanID:      mustUint(req.LoanID),
		Principal:   decimal.RequireFromString(req.Principal),
		Interest:    decimal.RequireFromString(req.Interest),
		PlatformFee: decimal.RequireFromString(req.PlatformFee),
		Nonce:       optionalNonce(req.Nonce),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
