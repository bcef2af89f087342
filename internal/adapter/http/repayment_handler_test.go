package http

import (
	"context"
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realestate-lending/internal/domain/lending"
	"realestate-lending/internal/domain/loan"
	"realestate-lending/internal/domain/payment"
	"realestate-lending/internal/domain/uow"
	"realestate-lending/internal/testutil/loanmock"
	"realestate-lending/internal/testutil/paymentmock"
	"realestate-lending/internal/testutil/uowmock"
	"realestate-lending/internal/usecase/repayment"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

func newRepaymentHandler(l *loan.Loan) (*RepaymentHandler, *paymentmock.Publisher) {
	loans := &loanmock.Repo{
		GetByLoanIDForUpdateFn: func(_ context.Context, id uint64) (*loan.Loan, error) {
			if l == nil || l.ID != id {
				return nil, gorm.ErrRecordNotFound
			}
			return l, nil
		},
	}
	payments := &paymentmock.Repo{
		CreateFn: func(context.Context, *payment.Payment) error { return nil },
	}
	pub := &paymentmock.Publisher{}
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Payments: payments})
	uc := repayment.NewUsecase(tx, pub, lending.DefaultParams(),
		repayment.WithClock(func() time.Time { return fixedNow }))
	return NewRepaymentHandler(uc), pub
}

func openLoan() *loan.Loan {
	year := time.Duration(lending.DefaultParams().SecondsPerYear) * time.Second
	return &loan.Loan{
		ID:              1,
		BorrowerAddress: lenderHex,
		Principal:       dec("1000"),
		AccrualStart:    fixedNow.Add(-year),
		State:           loan.StateActive,
	}
}

func postCtx(e *echo.Echo, loanID string, body any) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(stdhttp.MethodPost, "/loans/"+loanID+"/payments", mustJSON(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("loan_id")
	c.SetParamValues(loanID)
	return c, rec
}

func TestRecordPayment_Success(t *testing.T) {
	e := newEchoWithValidator()
	h, pub := newRepaymentHandler(openLoan())

	c, rec := postCtx(e, "1", map[string]any{"payer": lenderHex, "amount": "500"})
	if err := h.RecordPayment(c); err != nil {
		t.Fatalf("RecordPayment error: %v", err)
	}
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got repayment.RepaymentDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad json: %v", err)
	}
	if !got.ToPlatform.Equal(dec("12.75")) || !got.ToInterest.Equal(dec("85")) || !got.ToPrincipal.Equal(dec("402.25")) {
		t.Fatalf("unexpected split: %+v", got)
	}
	if got.LoanState != string(loan.StateActive) || !got.Outstanding.Equal(dec("597.75")) {
		t.Fatalf("unexpected loan state: %+v", got)
	}
	if len(pub.Events) != 1 || pub.Events[0].PaymentID != got.PaymentID {
		t.Fatalf("expected one published event, got %+v", pub.Events)
	}
}

func TestRecordPayment_PayoffClosesLoan(t *testing.T) {
	e := newEchoWithValidator()
	h, _ := newRepaymentHandler(openLoan())

	c, rec := postCtx(e, "1", map[string]any{"payer": lenderHex, "amount": "1097.75"})
	_ = h.RecordPayment(c)
	if rec.Code != stdhttp.StatusCreated {
		t.Fatalf("status = %d, want 201; body=%s", rec.Code, rec.Body.String())
	}
	var got repayment.RepaymentDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &got)
	if got.LoanState != string(loan.StateRepaid) || !got.Outstanding.IsZero() {
		t.Fatalf("loan should be repaid: %+v", got)
	}
}

func TestRecordPayment_Errors(t *testing.T) {
	closed := openLoan()
	closed.State = loan.StateRepaid

	tests := []struct {
		name   string
		loan   *loan.Loan
		loanID string
		body   any
		want   int
	}{
		{"bad loan id", openLoan(), "x1", map[string]any{"payer": lenderHex, "amount": "1"}, stdhttp.StatusBadRequest},
		{"malformed body", openLoan(), "1", "not-an-object", stdhttp.StatusBadRequest},
		{"missing payer", openLoan(), "1", map[string]any{"amount": "1"}, stdhttp.StatusUnprocessableEntity},
		{"zero amount", openLoan(), "1", map[string]any{"payer": lenderHex, "amount": "0"}, stdhttp.StatusUnprocessableEntity},
		{"unknown loan", openLoan(), "2", map[string]any{"payer": lenderHex, "amount": "1"}, stdhttp.StatusNotFound},
		{"closed loan", closed, "1", map[string]any{"payer": lenderHex, "amount": "1"}, stdhttp.StatusConflict},
		{"over debt", openLoan(), "1", map[string]any{"payer": lenderHex, "amount": "5000"}, stdhttp.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEchoWithValidator()
			h, pub := newRepaymentHandler(tt.loan)
			c, rec := postCtx(e, tt.loanID, tt.body)
			_ = h.RecordPayment(c)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d; body=%s", rec.Code, tt.want, rec.Body.String())
			}
			if len(pub.Events) != 0 {
				t.Fatalf("no event expected on failure, got %d", len(pub.Events))
			}
		})
	}
}
