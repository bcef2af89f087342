package http

import (
	"net/http"
	"strconv"

	"realestate-lending/internal/usecase/repayment"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type RepaymentHandler struct{ uc *repayment.Usecase }

func NewRepaymentHandler(uc *repayment.Usecase) *RepaymentHandler {
	return &RepaymentHandler{uc: uc}
}

type recordPaymentReq struct {
	Payer  string `json:"payer"  validate:"required,ethaddr"`
	Amount string `json:"amount" validate:"required,decpos"`
}

// POST /loans/:loan_id/payments
func (h *RepaymentHandler) RecordPayment(c echo.Context) error {
	loanID, err := strconv.ParseUint(c.Param("loan_id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid loan_id path param"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.Record(c.Request().Context(), repayment.RecordInput{
		LoanID: loanID,
		Payer:  common.HexToAddress(req.Payer),
		Amount: decimal.RequireFromString(req.Amount),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}
