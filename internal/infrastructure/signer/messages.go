package signer

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	KindWithdrawal   = "withdrawal"
	KindLoanApproval = "loan-approval"
	KindRepayment    = "repayment"
)

// Message is anything the contracts accept a service signature for.
type Message interface {
	Kind() string
	// Packed is the tightly packed encoding without the chain id.
	Packed() []byte
}

type Withdrawal struct {
	Account   common.Address
	Principal *big.Int
	Interest  *big.Int
	Nonce     uint64
}

func (Withdrawal) Kind() string { return KindWithdrawal }

func (m Withdrawal) Packed() []byte {
	return pack(m.Account, m.Principal, m.Interest, new(big.Int).SetUint64(m.Nonce))
}

type LoanApproval struct {
	Borrower     common.Address
	CollateralID uint64
	Amount       *big.Int
	Nonce        uint64
}

func (LoanApproval) Kind() string { return KindLoanApproval }

func (m LoanApproval) Packed() []byte {
	return pack(m.Borrower, new(big.Int).SetUint64(m.CollateralID), m.Amount, new(big.Int).SetUint64(m.Nonce))
}

type Repayment struct {
	Borrower    common.Address
	LoanID      uint64
	Principal   *big.Int
	Interest    *big.Int
	PlatformFee *big.Int
	Nonce       uint64
}

func (Repayment) Kind() string { return KindRepayment }

func (m Repayment) Packed() []byte {
	return pack(m.Borrower, new(big.Int).SetUint64(m.LoanID), m.Principal, m.Interest, m.PlatformFee, new(big.Int).SetUint64(m.Nonce))
}

// Hash is keccak256(packed || uint256(chainID)).
func Hash(m Message, chainID *big.Int) common.Hash {
	return crypto.Keccak256Hash(m.Packed(), word(chainID))
}

// pack lays out a 20-byte address followed by 32-byte big-endian words.
func pack(addr common.Address, words ...*big.Int) []byte {
	out := make([]byte, 0, common.AddressLength+32*len(words))
	out = append(out, addr.Bytes()...)
	for _, w := range words {
		out = append(out, word(w)...)
	}
	return out
}

func word(v *big.Int) []byte {
	if v == nil {
		return make([]byte, 32)
	}
	// U256Bytes mutates its argument
	return math.U256Bytes(new(big.Int).Set(v))
}
