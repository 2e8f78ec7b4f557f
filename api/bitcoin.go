package api

import (
	"encoding/json"
	"fmt"
)

// ListWallets returns the names of the wallets currently loaded in the node
func (c *Client) ListWallets() ([]string, error) {
	result, err := c.Call("listwallets")
	if err != nil {
		return nil, fmt.Errorf("failed to list wallets: %w", err)
	}

	var wallets []string
	if err := json.Unmarshal(result, &wallets); err != nil {
		return nil, fmt.Errorf("failed to parse wallet list: %w", err)
	}

	return wallets, nil
}

// CreateWallet creates and loads a new wallet with the given name
func (c *Client) CreateWallet(name string) error {
	if _, err := c.Call("createwallet", name); err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// ImportPrivKey imports a WIF-encoded private key into the wallet.
// Must be invoked on a wallet-scoped client.
func (c *Client) ImportPrivKey(wif string) error {
	if _, err := c.Call("importprivkey", wif); err != nil {
		return fmt.Errorf("failed to import private key: %w", err)
	}
	return nil
}

// GetBalance returns the wallet's spendable balance in BTC
func (c *Client) GetBalance() (float64, error) {
	result, err := c.Call("getbalance")
	if err != nil {
		return 0, fmt.Errorf("failed to fetch balance: %w", err)
	}

	var balance float64
	if err := json.Unmarshal(result, &balance); err != nil {
		return 0, fmt.Errorf("failed to parse balance: %w", err)
	}

	return balance, nil
}

// GetNewAddress requests a fresh receiving address from the wallet
func (c *Client) GetNewAddress() (string, error) {
	result, err := c.Call("getnewaddress")
	if err != nil {
		return "", fmt.Errorf("failed to get new address: %w", err)
	}

	var address string
	if err := json.Unmarshal(result, &address); err != nil {
		return "", fmt.Errorf("failed to parse address: %w", err)
	}

	return address, nil
}

// SendToAddress requests a standard transfer of the given BTC amount.
// The amount must marshal as a bare JSON number (e.g. json.Number).
func (c *Client) SendToAddress(address string, amount json.Number) (string, error) {
	result, err := c.Call("sendtoaddress", address, amount)
	if err != nil {
		return "", fmt.Errorf("failed to send transaction: %w", err)
	}

	var txid string
	if err := json.Unmarshal(result, &txid); err != nil {
		return "", fmt.Errorf("failed to parse transaction id: %w", err)
	}

	return txid, nil
}

// SendRawTransaction submits a pre-built, pre-signed transaction for relay
func (c *Client) SendRawTransaction(rawHex string) (string, error) {
	result, err := c.Call("sendrawtransaction", rawHex)
	if err != nil {
		return "", fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	var txid string
	if err := json.Unmarshal(result, &txid); err != nil {
		return "", fmt.Errorf("failed to parse transaction id: %w", err)
	}

	return txid, nil
}

// GetBlockchainInfo returns the node's view of the chain it is connected to
func (c *Client) GetBlockchainInfo() (*BlockchainInfo, error) {
	result, err := c.Call("getblockchaininfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blockchain info: %w", err)
	}

	var info BlockchainInfo
	if err := json.Unmarshal(result, &info); err != nil {
		return nil, fmt.Errorf("failed to parse blockchain info: %w", err)
	}

	return &info, nil
}

// GetTransaction returns the wallet's view of one of its own transactions
func (c *Client) GetTransaction(txid string) (*WalletTransaction, error) {
	result, err := c.Call("gettransaction", txid)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transaction: %w", err)
	}

	var tx WalletTransaction
	if err := json.Unmarshal(result, &tx); err != nil {
		return nil, fmt.Errorf("failed to parse transaction: %w", err)
	}

	return &tx, nil
}

// ListTransactions returns up to count of the wallet's most recent
// transactions, skipping the first skip entries
func (c *Client) ListTransactions(count, skip int) ([]ListedTransaction, error) {
	result, err := c.Call("listtransactions", "*", count, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	var txs []ListedTransaction
	if err := json.Unmarshal(result, &txs); err != nil {
		return nil, fmt.Errorf("failed to parse transaction list: %w", err)
	}

	return txs, nil
}

// UnloadWallet unloads the wallet from the node's memory.
// Must be invoked on a wallet-scoped client.
func (c *Client) UnloadWallet() error {
	if _, err := c.Call("unloadwallet"); err != nil {
		return fmt.Errorf("failed to unload wallet: %w", err)
	}
	return nil
}
