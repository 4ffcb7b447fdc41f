package ethereum

import (
	"crypto/ecdsa"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"
)

func GenerateKey() (*ecdsa.PrivateKey, *ecdsa.PublicKey, error) {
	if privateKey, err := crypto.GenerateKey(); err != nil {
		return nil, nil, err
	} else {
		publicKey := privateKey.Public().(*ecdsa.PublicKey)
		return privateKey, publicKey, nil
	}
}

// Account signs transactions with a raw private key.
type Account struct {
	key     *ecdsa.PrivateKey
	address common.Address
}

func NewAccount(key *ecdsa.PrivateKey) *Account {
	return &Account{
		key:     key,
		address: crypto.PubkeyToAddress(key.PublicKey),
	}
}

// NewAccountFromHex parses a hex private key, with or without 0x prefix.
func NewAccountFromHex(hexKey string) (*Account, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
	if err != nil {
		return nil, xerrors.Errorf("invalid private key: %w", err)
	}
	return NewAccount(key), nil
}

func (a *Account) Address() common.Address {
	return a.address
}

func (a *Account) SignTx(tx *types.Transaction, chainId *big.Int) (*types.Transaction, error) {
	opts, err := bind.NewKeyedTransactorWithChainID(a.key, chainId)
	if err != nil {
		return nil, err
	}
	signed, err := opts.Signer(a.address, tx)
	if err != nil {
		return nil, xerrors.Errorf("couldn't sign the tx: %w", err)
	}
	return signed, nil
}
