package signer

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrSigningUnavailable = errors.New("signing key not loaded")

type Signature struct {
	Kind      string         `json:"kind"`
	Hash      common.Hash    `json:"hash"`
	Signature hexutil.Bytes  `json:"signature"`
	Signer    common.Address `json:"signer"`
	ChainID   *big.Int       `json:"chain_id"`
}

// Issuer signs authorization messages bound to one chain. A zero Issuer (no
// key) answers every Sign with ErrSigningUnavailable.
type Issuer struct {
	key     *ecdsa.PrivateKey
	chainID *big.Int
}

// NewIssuer loads a hex private key (with or without 0x). An empty key yields
// an issuer that cannot sign, so the read-only endpoints still work.
func NewIssuer(hexKey string, chainID int64) (*Issuer, error) {
	is := &Issuer{chainID: big.NewInt(chainID)}
	hexKey = strings.TrimPrefix(strings.TrimSpace(hexKey), "0x")
	if hexKey == "" {
		return is, nil
	}
	key, err := crypto.HexToECDSA(hexKey)
	if err != nil {
		return nil, fmt.Errorf("load signing key: %w", err)
	}
	is.key = key
	return is, nil
}

func (i *Issuer) Available() bool { return i != nil && i.key != nil }

func (i *Issuer) Address() common.Address {
	if !i.Available() {
		return common.Address{}
	}
	return crypto.PubkeyToAddress(i.key.PublicKey)
}

func (i *Issuer) ChainID() *big.Int { return new(big.Int).Set(i.chainID) }

// Sign returns a 65-byte [R || S || V] signature over the EIP-191 personal
// message digest of the message hash, with V in {27, 28}.
func (i *Issuer) Sign(m Message) (Signature, error) {
	if !i.Available() {
		return Signature{}, ErrSigningUnavailable
	}
	h := Hash(m, i.chainID)
	sig, err := crypto.Sign(accounts.TextHash(h.Bytes()), i.key)
	if err != nil {
		return Signature{}, fmt.Errorf("sign %s: %w", m.Kind(), err)
	}
	sig[crypto.RecoveryIDOffset] += 27
	return Signature{
		Kind:      m.Kind(),
		Hash:      h,
		Signature: sig,
		Signer:    i.Address(),
		ChainID:   i.ChainID(),
	}, nil
}

// Recover returns the address that produced sig over hash.
func Recover(hash common.Hash, sig []byte) (common.Address, error) {
	if len(sig) != crypto.SignatureLength {
		return common.Address{}, fmt.Errorf("signature must be %d bytes, got %d", crypto.SignatureLength, len(sig))
	}
	s := make([]byte, len(sig))
	copy(s, sig)
	if s[crypto.RecoveryIDOffset] >= 27 {
		s[crypto.RecoveryIDOffset] -= 27
	}
	pub, err := crypto.SigToPub(accounts.TextHash(hash.Bytes()), s)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(*pub), nil
}
