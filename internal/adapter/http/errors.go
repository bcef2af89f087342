package http

import (
	"errors"
	"log/slog"
	"net/http"

	"realestate-lending/internal/domain/ledger"
	"realestate-lending/internal/domain/lending"
	"realestate-lending/internal/domain/loan"
	"realestate-lending/internal/infrastructure/signer"
	"realestate-lending/internal/usecase/signature"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain errors → HTTP codes. Not-found is checked first
// because ledger lookups wrap it inside ErrExternalRead.
func statusFor(err error) int {
	switch {
	case errors.Is(err, ledger.ErrNotFound), errors.Is(err, loan.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, loan.ErrClosed),
		errors.Is(err, lending.ErrPaymentExceedsDebt),
		errors.Is(err, lending.ErrInvalidTimestamp):
		return http.StatusConflict
	case errors.Is(err, lending.ErrInvalidAmount),
		errors.Is(err, lending.ErrInvalidRate),
		errors.Is(err, signature.ErrNonceRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, lending.ErrExternalRead):
		return http.StatusBadGateway
	case errors.Is(err, signer.ErrSigningUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c echo.Context, err error) error {
	code := statusFor(err)
	if code >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "status", code, "err", err)
	}
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	return c.JSON(code, ErrorResponse{Error: msg})
}

func validationFailed(c echo.Context, err error) error {
	return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
		Error:   "validation failed",
		Details: ToFieldErrors(err),
	})
}
