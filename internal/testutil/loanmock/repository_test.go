package loanmock

import (
	"context"
	"errors"
	"testing"

	domain "realestate-lending/internal/domain/loan"
)

func TestRepo_Create(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 1}

	// Uses provided func
	called := false
	wantErr := errors.New("boom")
	m := &Repo{
		CreateFn: func(gotCtx context.Context, got *domain.Loan) error {
			called = true
			if gotCtx != ctx {
				t.Fatalf("Create ctx mismatch")
			}
			if got != l {
				t.Fatalf("Create arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Create(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Create: want %v, got %v", wantErr, err)
	}
	if !called {
		t.Fatalf("CreateFn not called")
	}

	// Default (nil func) → no-op, nil error
	m = &Repo{}
	if err := m.Create(ctx, l); err != nil {
		t.Fatalf("Create default: want nil, got %v", err)
	}
}

func TestRepo_Reads(t *testing.T) {
	ctx := context.Background()
	want := &domain.Loan{ID: 2}

	reads := map[string]struct {
		set  func(m *Repo, fn func(context.Context, uint64) (*domain.Loan, error))
		call func(m *Repo) (*domain.Loan, error)
	}{
		"GetByLoanID": {
			set:  func(m *Repo, fn func(context.Context, uint64) (*domain.Loan, error)) { m.GetByLoanIDFn = fn },
			call: func(m *Repo) (*domain.Loan, error) { return m.GetByLoanID(ctx, 2) },
		},
		"GetByLoanIDForUpdate": {
			set:  func(m *Repo, fn func(context.Context, uint64) (*domain.Loan, error)) { m.GetByLoanIDForUpdateFn = fn },
			call: func(m *Repo) (*domain.Loan, error) { return m.GetByLoanIDForUpdate(ctx, 2) },
		},
	}
	for name, r := range reads {
		t.Run(name, func(t *testing.T) {
			m := &Repo{}
			r.set(m, func(gotCtx context.Context, loanID uint64) (*domain.Loan, error) {
				if gotCtx != ctx || loanID != 2 {
					t.Fatalf("%s args mismatch: %d", name, loanID)
				}
				return want, nil
			})
			got, err := r.call(m)
			if err != nil || got != want {
				t.Fatalf("%s: got %+v, %v", name, got, err)
			}

			// Default (nil func) → context.Canceled
			got, err = r.call(&Repo{})
			if err != context.Canceled || got != nil {
				t.Fatalf("%s default: want context.Canceled, got %+v, %v", name, got, err)
			}
		})
	}
}

func TestRepo_Save(t *testing.T) {
	ctx := context.Background()
	l := &domain.Loan{ID: 3}

	wantErr := errors.New("save-fail")
	m := &Repo{
		SaveFn: func(gotCtx context.Context, got *domain.Loan) error {
			if got != l {
				t.Fatalf("Save arg mismatch")
			}
			return wantErr
		},
	}
	if err := m.Save(ctx, l); !errors.Is(err, wantErr) {
		t.Fatalf("Save: want %v, got %v", wantErr, err)
	}

	// Default (nil func) → no-op, nil error
	if err := (&Repo{}).Save(ctx, l); err != nil {
		t.Fatalf("Save default: want nil, got %v", err)
	}
}
