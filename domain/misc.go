package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int64

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func ToAddress(a common.Address) Address {
	return Address(a.Hex())
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) ToCommon() common.Address {
	return common.HexToAddress(string(a))
}

type BlockNumber uint64

type TxHash string

func ToTxHash(h common.Hash) TxHash {
	return TxHash(h.Hex())
}
