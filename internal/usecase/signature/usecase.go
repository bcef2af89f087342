package signature

import (
	"context"
	"fmt"
	"math/big"

	"realestate-lending/internal/domain/lending"
	"realestate-lending/internal/infrastructure/signer"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type Signer interface {
	Available() bool
	Sign(m signer.Message) (signer.Signature, error)
}

type NonceAllocator interface {
	Next(ctx context.Context, kind string, account common.Address) (uint64, error)
}

type Usecase struct {
	signer Signer
	nonces NonceAllocator
}

// NewUsecase: nonces may be nil, in which case every request must carry one.
func NewUsecase(s Signer, n NonceAllocator) *Usecase { return &Usecase{signer: s, nonces: n} }

func (u *Usecase) Withdrawal(ctx context.Context, in WithdrawalInput) (*SignatureDTO, error) {
	principal, err := baseUnits(in.Principal)
	if err != nil {
		return nil, err
	}
	interest, err := baseUnits(in.Interest)
	if err != nil {
		return nil, err
	}
	nonce, err := u.nonce(ctx, signer.KindWithdrawal, in.Account, in.Nonce)
	if err != nil {
		return nil, err
	}
	return u.sign(signer.Withdrawal{Account: in.Account, Principal: principal, Interest: interest, Nonce: nonce}, nonce)
}

func (u *Usecase) LoanApproval(ctx context.Context, in LoanApprovalInput) (*SignatureDTO, error) {
	amount, err := baseUnits(in.Amount)
	if err != nil {
		return nil, err
	}
	nonce, err := u.nonce(ctx, signer.KindLoanApproval, in.Borrower, in.Nonce)
	if err != nil {
		return nil, err
	}
	return u.sign(signer.LoanApproval{Borrower: in.Borrower, CollateralID: in.CollateralID, Amount: amount, Nonce: nonce}, nonce)
}

func (u *Usecase) Repayment(ctx context.Context, in RepaymentInput) (*SignatureDTO, error) {
	var parts [3]*big.Int
	for i, v := range []decimal.Decimal{in.Principal, in.Interest, in.PlatformFee} {
		b, err := baseUnits(v)
		if err != nil {
			return nil, err
		}
		parts[i] = b
	}
	nonce, err := u.nonce(ctx, signer.KindRepayment, in.Borrower, in.Nonce)
	if err != nil {
		return nil, err
	}
	return u.sign(signer.Repayment{
		Borrower:    in.Borrower,
		LoanID:      in.LoanID,
		Principal:   parts[0],
		Interest:    parts[1],
		PlatformFee: parts[2],
		Nonce:       nonce,
	}, nonce)
}

// nonce checks the signer first so a request that cannot be signed never
// consumes a sequence number.
func (u *Usecase) nonce(ctx context.Context, kind string, account common.Address, given *uint64) (uint64, error) {
	if !u.signer.Available() {
		return 0, signer.ErrSigningUnavailable
	}
	if given != nil {
		return *given, nil
	}
	if u.nonces == nil {
		return 0, ErrNonceRequired
	}
	return u.nonces.Next(ctx, kind, account)
}

func (u *Usecase) sign(m signer.Message, nonce uint64) (*SignatureDTO, error) {
	s, err := u.signer.Sign(m)
	if err != nil {
		return nil, err
	}
	return &SignatureDTO{
		Kind:      s.Kind,
		Hash:      s.Hash.Hex(),
		Signature: s.Signature.String(),
		Signer:    s.Signer.Hex(),
		ChainID:   s.ChainID.String(),
		Nonce:     nonce,
	}, nil
}

var maxUint256 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1))

// baseUnits converts an amount that is already in the token's smallest unit.
// Anything the contract could not receive verbatim as a uint256 is rejected.
func baseUnits(v decimal.Decimal) (*big.Int, error) {
	if v.IsNegative() {
		return nil, fmt.Errorf("%w: %s is negative", lending.ErrInvalidAmount, v)
	}
	if !v.Equal(v.Truncate(0)) {
		return nil, fmt.Errorf("%w: %s is not a whole number of base units", lending.ErrInvalidAmount, v)
	}
	b := v.BigInt()
	if b.Cmp(maxUint256) > 0 {
		return nil, fmt.Errorf("%w: %s does not fit in uint256", lending.ErrInvalidAmount, v)
	}
	return b, nil
}
