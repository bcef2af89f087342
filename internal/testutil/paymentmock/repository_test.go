package paymentmock

import (
	"context"
	"errors"
	"testing"

	domain "realestate-lending/internal/domain/payment"
)

func TestRepo_Defaults(t *testing.T) {
	ctx := context.Background()
	m := &Repo{}
	if err := m.Create(ctx, &domain.Payment{}); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
	if _, err := m.ListByLoanID(ctx, 1); err != context.Canceled {
		t.Fatalf("ListByLoanID default: want context.Canceled, got %v", err)
	}
	if _, err := m.GetByPaymentID(ctx, "x"); err != context.Canceled {
		t.Fatalf("GetByPaymentID default: want context.Canceled, got %v", err)
	}
}

func TestRepo_UsesProvidedFuncs(t *testing.T) {
	ctx := context.Background()
	want := &domain.Payment{PaymentID: "p-1", LoanID: 4}
	m := &Repo{
		CreateFn: func(_ context.Context, p *domain.Payment) error {
			if p != want {
				t.Fatalf("Create arg mismatch")
			}
			return nil
		},
		ListByLoanIDFn: func(_ context.Context, loanID uint64) ([]domain.Payment, error) {
			return []domain.Payment{*want}, nil
		},
		GetByPaymentIDFn: func(_ context.Context, id string) (*domain.Payment, error) {
			if id != "p-1" {
				t.Fatalf("GetByPaymentID id mismatch: %s", id)
			}
			return want, nil
		},
	}
	if err := m.Create(ctx, want); err != nil {
		t.Fatal(err)
	}
	if got, _ := m.ListByLoanID(ctx, 4); len(got) != 1 || got[0].PaymentID != "p-1" {
		t.Fatalf("ListByLoanID: %+v", got)
	}
	if got, _ := m.GetByPaymentID(ctx, "p-1"); got != want {
		t.Fatalf("GetByPaymentID: %+v", got)
	}
}

func TestPublisher(t *testing.T) {
	p := &Publisher{}
	if err := p.PublishRecorded(context.Background(), domain.Recorded{LoanID: 1}); err != nil {
		t.Fatal(err)
	}
	if len(p.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(p.Events))
	}

	boom := errors.New("down")
	p = &Publisher{Err: boom}
	if err := p.PublishRecorded(context.Background(), domain.Recorded{}); !errors.Is(err, boom) {
		t.Fatalf("want %v, got %v", boom, err)
	}
}
