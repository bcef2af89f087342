package http

import (
	"net/http"
	"strconv"

	"realestate-lending/internal/usecase/servicing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ServicingHandler struct{ uc *servicing.Usecase }

func NewServicingHandler(uc *servicing.Usecase) *ServicingHandler {
	return &ServicingHandler{uc: uc}
}

type addressParam struct {
	Address string `param:"address" validate:"required,ethaddr"`
}

type eligibilityReq struct {
	Address      string `param:"address"       validate:"required,ethaddr"`
	CollateralID string `query:"collateral_id" validate:"required,u64"`
	Amount       string `query:"amount"        validate:"required,decnonneg"`
}

// Amount is optional; empty means full payoff.
type loanPaymentReq struct {
	LoanID string `param:"loan_id" validate:"required,u64"`
	Amount string `query:"amount"  validate:"omitempty,decnonneg"`
}

// GET /lenders/:address/interest
func (h *ServicingHandler) LenderInterest(c echo.Context) error {
	var req addressParam
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	dto, err := h.uc.LenderInterest(c.Request().Context(), common.HexToAddress(req.Address))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// GET /borrowers/:address/eligibility?collateral_id=&amount=
func (h *ServicingHandler) Eligibility(c echo.Context) error {
	var req eligibilityReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	collateralID, _ := strconv.ParseUint(req.CollateralID, 10, 64)
	res, err := h.uc.Eligibility(c.Request().Context(),
		common.HexToAddress(req.Address), collateralID, decimal.RequireFromString(req.Amount))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

// GET /loans/:loan_id/payment?amount=
func (h *ServicingHandler) LoanPayment(c echo.Context) error {
	var req loanPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request"})
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}
	loanID, _ := strconv.ParseUint(req.LoanID, 10, 64)
	var amount *decimal.Decimal
	if req.Amount != "" {
		v := decimal.RequireFromString(req.Amount)
		amount = &v
	}
	b, err := h.uc.LoanPayment(c.Request().Context(), loanID, amount)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// GET /protocol/metrics
func (h *ServicingHandler) ProtocolMetrics(c echo.Context) error {
	dto, err := h.uc.ProtocolMetrics(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
