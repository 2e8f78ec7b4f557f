package wallet

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/mkrall/satchel/api"
)

// Network identifies which bitcoin chain a node is expected to be on.
// The values match the "chain" field reported by getblockchaininfo.
type Network string

const (
	NetworkBitcoin Network = api.NetworkBitcoin
	NetworkTestnet Network = api.NetworkTestnet
	NetworkRegtest Network = api.NetworkRegtest
)

// ErrNetworkMismatch is returned when the connected node reports a different
// chain than the caller expected. The funds-moving call is never issued.
var ErrNetworkMismatch = errors.New("network mismatch")

// Wallet is the capability contract any backing wallet implementation must
// satisfy (hardware wallet, browser wallet, or the node-backed NodeWallet).
type Wallet interface {
	// GetAddress requests a fresh receiving address from the backing wallet
	GetAddress() (string, error)

	// GetBalance returns the wallet's current spendable balance in BTC
	GetBalance() (float64, error)

	// SendToAddress transfers the given amount of satoshis to address after
	// verifying the backing node is on the expected network
	SendToAddress(address string, satoshis int64, network Network) (string, error)

	// BroadcastTransaction relays a pre-built, pre-signed raw transaction
	// after the same network verification
	BroadcastTransaction(rawHex string, network Network) (string, error)

	// GetFeeRate returns a fee-rate hint for transaction construction
	GetFeeRate() string
}

// ParseNetwork validates a network identifier string
func ParseNetwork(s string) (Network, error) {
	switch Network(s) {
	case NetworkBitcoin, NetworkTestnet, NetworkRegtest:
		return Network(s), nil
	default:
		return "", fmt.Errorf("invalid network: %s. Use 'bitcoin', 'testnet' or 'regtest'", s)
	}
}

// ChainParams maps a network to its btcsuite chain parameters
func (n Network) ChainParams() *chaincfg.Params {
	switch n {
	case NetworkTestnet:
		return &chaincfg.TestNet3Params
	case NetworkRegtest:
		return &chaincfg.RegressionNetParams
	default:
		return &chaincfg.MainNetParams
	}
}
