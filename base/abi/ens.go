package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var (
	PublicResolverABI      abi.ABI
	RegistryABI            abi.ABI
	RegistrarControllerABI abi.ABI

	NameRegisteredSig common.Hash

	ErrUnexpectedLog = errors.New("unexpected log")
)

func init() {
	PublicResolverABI = mustParse(publicResolverABIJson)
	RegistryABI = mustParse(registryABIJson)
	RegistrarControllerABI = mustParse(registrarControllerABIJson)
	NameRegisteredSig = RegistrarControllerABI.Events["NameRegistered"].ID
}

func mustParse(json string) abi.ABI {
	_abi, err := abi.JSON(strings.NewReader(json))
	if err != nil {
		panic("Failed to parse ABI")
	}
	return _abi
}

// NameRegisteredLog is the decoded NameRegistered event of the registrar controller.
type NameRegisteredLog struct {
	Name    string
	Label   common.Hash
	Owner   common.Address
	Cost    *big.Int
	Expires *big.Int
}

// ToNameRegisteredLog decodes l, failing unless every argument is present and well typed.
func ToNameRegisteredLog(l *types.Log) (*NameRegisteredLog, error) {
	if len(l.Topics) != 3 || l.Topics[0] != NameRegisteredSig {
		return nil, ErrUnexpectedLog
	}
	values, err := RegistrarControllerABI.Unpack("NameRegistered", l.Data)
	if err != nil {
		return nil, err
	}
	if len(values) != 3 {
		return nil, ErrUnexpectedLog
	}
	name, ok := values[0].(string)
	if !ok {
		return nil, ErrUnexpectedLog
	}
	cost, ok := values[1].(*big.Int)
	if !ok {
		return nil, ErrUnexpectedLog
	}
	expires, ok := values[2].(*big.Int)
	if !ok {
		return nil, ErrUnexpectedLog
	}
	return &NameRegisteredLog{
		Name:    name,
		Label:   l.Topics[1],
		Owner:   common.BytesToAddress(l.Topics[2].Bytes()),
		Cost:    cost,
		Expires: expires,
	}, nil
}

var publicResolverABIJson = `
[
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "string", "name": "key", "type": "string" }
    ],
    "name": "text",
    "outputs": [{ "internalType": "string", "name": "", "type": "string" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "string", "name": "key", "type": "string" },
      { "internalType": "string", "name": "value", "type": "string" }
    ],
    "name": "setText",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "addr",
    "outputs": [{ "internalType": "address payable", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      { "internalType": "bytes32", "name": "node", "type": "bytes32" },
      { "internalType": "address", "name": "a", "type": "address" }
    ],
    "name": "setAddr",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "name",
    "outputs": [{ "internalType": "string", "name": "", "type": "string" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var registryABIJson = `
[
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "resolver",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{ "internalType": "bytes32", "name": "node", "type": "bytes32" }],
    "name": "owner",
    "outputs": [{ "internalType": "address", "name": "", "type": "address" }],
    "stateMutability": "view",
    "type": "function"
  }
]
`

var registrarControllerABIJson = `
[
  {
    "anonymous": false,
    "inputs": [
      { "indexed": false, "internalType": "string", "name": "name", "type": "string" },
      { "indexed": true, "internalType": "bytes32", "name": "label", "type": "bytes32" },
      { "indexed": true, "internalType": "address", "name": "owner", "type": "address" },
      { "indexed": false, "internalType": "uint256", "name": "cost", "type": "uint256" },
      { "indexed": false, "internalType": "uint256", "name": "expires", "type": "uint256" }
    ],
    "name": "NameRegistered",
    "type": "event"
  }
]
`
