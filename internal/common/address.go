package common

import (
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcutil"
	"github.com/btcsuite/btcutil/bech32"
	eth "github.com/ethereum/go-ethereum/common"
)

// Address is a ledger account address
type Address string

var NoAddress Address = Address("")

// NewAddress create a new Address
// Sample: 0x9873d61e6bf850d0b0c2f3c6e075980683f2d9fe, bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4
func NewAddress(address string) (Address, error) {
	if len(address) == 0 {
		return NoAddress, fmt.Errorf("empty address")
	}

	// eth addresses are case insensitive, keep one spelling per account
	if eth.IsHexAddress(address) {
		return Address(strings.ToLower(eth.HexToAddress(address).Hex())), nil
	}

	// Check bech32 addresses, would succeed any string bech32 encoded
	if _, _, err := bech32.Decode(address); err == nil {
		return Address(strings.ToLower(address)), nil
	}

	// Check other BTC address formats with mainnet
	if _, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams); err == nil {
		return Address(address), nil
	}

	// Check BTC address formats with testnet
	if _, err := btcutil.DecodeAddress(address, &chaincfg.TestNet3Params); err == nil {
		return Address(address), nil
	}

	return NoAddress, fmt.Errorf("address format not supported: %s", address)
}

func (addr Address) Equal(addr2 Address) bool {
	return strings.EqualFold(addr.String(), addr2.String())
}

func (addr Address) IsEmpty() bool {
	return strings.TrimSpace(addr.String()) == ""
}

func (addr Address) String() string {
	return string(addr)
}
