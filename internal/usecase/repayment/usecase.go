package repayment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"realestate-lending/internal/domain/lending"
	domainLoan "realestate-lending/internal/domain/loan"
	domainPayment "realestate-lending/internal/domain/payment"
	"realestate-lending/internal/domain/uow"
	"realestate-lending/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	uow       uow.UnitOfWork
	publisher domainPayment.Publisher
	params    lending.Params
	log       *slog.Logger
	now       func() time.Time
}

type Option func(*Usecase)

func WithClock(now func() time.Time) Option { return func(u *Usecase) { u.now = now } }
func WithLogger(l *slog.Logger) Option       { return func(u *Usecase) { u.log = l } }

func NewUsecase(tx uow.UnitOfWork, pub domainPayment.Publisher, p lending.Params, opts ...Option) *Usecase {
	u := &Usecase{
		uow:       tx,
		publisher: pub,
		params:    p,
		log:       slog.Default(),
		now:       func() time.Time { return time.Now().UTC() },
	}
	for _, o := range opts {
		o(u)
	}
	return u
}

// Record applies a payment to a loan: the debt is recomputed under the loan
// row lock, split platform → interest → principal, and whatever is left
// unpaid is carried forward with the accrual anchor reset to now.
func (u *Usecase) Record(ctx context.Context, in RecordInput) (*RepaymentDTO, error) {
	if !in.Amount.IsPositive() {
		return nil, lending.ErrInvalidAmount
	}
	var (
		dto *RepaymentDTO
		evt domainPayment.Recorded
	)
	now := u.now()

	err := u.uow.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *domainLoan.Loan) error {
		if l.State != domainLoan.StateActive {
			return domainLoan.ErrClosed
		}
		debt, err := lending.OutstandingDebt(l.Principal, l.InterestCarry, l.FeeCarry, l.AccrualStart, now, u.params)
		if err != nil {
			return err
		}
		amount := in.Amount
		b, err := lending.Allocate(debt.Total(), debt.Principal, debt.AccruedInterest, debt.PlatformFee, &amount, u.params.Excess)
		if err != nil {
			return err
		}

		p := &domainPayment.Payment{
			PaymentID:   id.NewID32(),
			LoanID:      l.ID,
			Payer:       in.Payer.Hex(),
			Amount:      b.Payment,
			ToPlatform:  b.ToPlatform,
			ToInterest:  b.ToInterest,
			ToPrincipal: b.ToPrincipal,
			Excess:      b.Excess,
			PaidAt:      now,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}

		l.Principal = debt.Principal.Sub(b.ToPrincipal)
		l.InterestCarry = debt.AccruedInterest.Sub(b.ToInterest)
		l.FeeCarry = debt.PlatformFee.Sub(b.ToPlatform)
		l.AccrualStart = now
		if b.SettlesDebt() {
			l.State = domainLoan.StateRepaid
			l.StateUpdatedAt = now
		}
		if err := r.Loans.Save(ctx, l); err != nil {
			return err
		}

		dto = &RepaymentDTO{
			PaymentID:   p.PaymentID,
			LoanID:      l.ID,
			Amount:      p.Amount,
			TotalDebt:   b.TotalDebt,
			ToPlatform:  b.ToPlatform,
			ToInterest:  b.ToInterest,
			ToPrincipal: b.ToPrincipal,
			Excess:      b.Excess,
			Outstanding: l.Principal.Add(l.InterestCarry).Add(l.FeeCarry),
			LoanState:   string(l.State),
			PaidAt:      now,
		}
		evt = domainPayment.Recorded{
			PaymentID:   p.PaymentID,
			LoanID:      l.ID,
			Payer:       p.Payer,
			Amount:      p.Amount,
			ToPlatform:  p.ToPlatform,
			ToInterest:  p.ToInterest,
			ToPrincipal: p.ToPrincipal,
			Excess:      p.Excess,
			LoanClosed:  l.State == domainLoan.StateRepaid,
			PaidAt:      now,
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("loan %d: %w", in.LoanID, domainLoan.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	// the payment is committed; a lost event is logged, not surfaced
	if u.publisher != nil {
		if perr := u.publisher.PublishRecorded(ctx, evt); perr != nil {
			u.log.ErrorContext(ctx, "publish payment recorded", "payment_id", evt.PaymentID, "loan_id", evt.LoanID, "err", perr)
		}
	}
	return dto, nil
}
