package paymentmock

import (
	"context"

	domain "realestate-lending/internal/domain/payment"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, p *domain.Payment) error
	ListByLoanIDFn   func(ctx context.Context, loanID uint64) ([]domain.Payment, error)
	GetByPaymentIDFn func(ctx context.Context, paymentID string) (*domain.Payment, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Payment) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}

func (m *Repo) ListByLoanID(ctx context.Context, loanID uint64) ([]domain.Payment, error) {
	if m.ListByLoanIDFn != nil {
		return m.ListByLoanIDFn(ctx, loanID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if m.GetByPaymentIDFn != nil {
		return m.GetByPaymentIDFn(ctx, paymentID)
	}
	return nil, context.Canceled
}

// Publisher captures published events.
type Publisher struct {
	Events []domain.Recorded
	Err    error
}

func (p *Publisher) PublishRecorded(_ context.Context, evt domain.Recorded) error {
	if p.Err != nil {
		return p.Err
	}
	p.Events = append(p.Events, evt)
	return nil
}
