package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mkrall/satchel/api"
)

// feeRateHint is a fixed sat/vB hint for transaction construction.
// It is not derived from current network conditions.
const feeRateHint = "150"

// NodeWallet is a Wallet backed by a wallet loaded in a Bitcoin Core node.
// It holds no mutable state of its own; every operation is an independent
// remote call, and a failed call leaves the handle reusable.
type NodeWallet struct {
	node   *api.Client // node-level endpoint
	client *api.Client // scoped to /wallet/<name>
	name   string
}

var _ Wallet = (*NodeWallet)(nil)

// Connect provisions the named wallet on the node and returns a handle
// scoped to it. Construction happens in order: the node's loaded wallets
// are queried first, the wallet is created only when absent, and a private
// key (WIF) is imported only after the wallet is available, since the node
// scopes all wallet operations by a URL path segment that must already
// exist. Connecting twice with the same name does not create the wallet a
// second time.
func Connect(client *api.Client, name, importWIF string) (*NodeWallet, error) {
	wallets, err := client.ListWallets()
	if err != nil {
		return nil, fmt.Errorf("failed to query loaded wallets: %w", err)
	}

	loaded := false
	for _, w := range wallets {
		if w == name {
			loaded = true
			break
		}
	}
	if !loaded {
		if err := client.CreateWallet(name); err != nil {
			return nil, err
		}
	}

	nw := &NodeWallet{
		node:   client,
		client: client.WalletClient(name),
		name:   name,
	}

	if importWIF != "" {
		if err := nw.client.ImportPrivKey(importWIF); err != nil {
			return nil, err
		}
	}

	return nw, nil
}

// Name returns the name of the wallet this handle is scoped to
func (w *NodeWallet) Name() string {
	return w.name
}

// GetAddress requests a fresh receiving address from the node wallet
func (w *NodeWallet) GetAddress() (string, error) {
	return w.client.GetNewAddress()
}

// GetBalance returns the wallet's spendable balance in BTC
func (w *NodeWallet) GetBalance() (float64, error) {
	return w.client.GetBalance()
}

// assertNetwork verifies the connected node's chain matches the expected
// network before a funds-moving call is issued. The check and the call
// that follows are not atomic against a concurrent node reconfiguration;
// this is a safety rail, not a correctness guarantee.
func (w *NodeWallet) assertNetwork(network Network) error {
	info, err := w.node.GetBlockchainInfo()
	if err != nil {
		return err
	}
	if info.Chain != string(network) {
		return fmt.Errorf("%w: node is on %q, expected %s network", ErrNetworkMismatch, info.Chain, network)
	}
	return nil
}

// SendToAddress converts the satoshi amount into the BTC amount expected by
// the node, verifies the connected network, then requests a standard
// transfer. The conversion is exact: 1 satoshi -> 0.00000001 BTC.
func (w *NodeWallet) SendToAddress(address string, satoshis int64, network Network) (string, error) {
	if err := w.assertNetwork(network); err != nil {
		return "", err
	}

	amount := decimal.New(satoshis, -8)
	return w.client.SendToAddress(address, json.Number(amount.String()))
}

// BroadcastTransaction submits a pre-signed raw transaction for relay after
// verifying the connected network
func (w *NodeWallet) BroadcastTransaction(rawHex string, network Network) (string, error) {
	if err := w.assertNetwork(network); err != nil {
		return "", err
	}

	return w.client.SendRawTransaction(rawHex)
}

// GetFeeRate returns a fixed fee-rate hint in sat/vB, independent of any
// wallet or network state
func (w *NodeWallet) GetFeeRate() string {
	return feeRateHint
}

// Confirmations returns the number of confirmations the wallet sees for one
// of its own transactions
func (w *NodeWallet) Confirmations(txid string) (int64, error) {
	tx, err := w.client.GetTransaction(txid)
	if err != nil {
		return 0, err
	}
	return tx.Confirmations, nil
}

// Transactions returns up to count recent wallet transactions, skipping the
// first skip entries
func (w *NodeWallet) Transactions(count, skip int) ([]api.ListedTransaction, error) {
	return w.client.ListTransactions(count, skip)
}

// Close unloads the wallet from the node's memory. Not automatic; callers
// should invoke it as part of scoped resource release.
func (w *NodeWallet) Close() error {
	return w.client.UnloadWallet()
}
