package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"time"
)

// Client handles JSON-RPC calls to a Bitcoin Core node
type Client struct {
	httpClient *http.Client
	url        string
	user       string
	pass       string
}

// NewClient creates a new RPC client for the given endpoint and credentials
func NewClient(url, user, pass string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		url:  strings.TrimRight(url, "/"),
		user: user,
		pass: pass,
	}
}

// WalletClient returns a client scoped to a loaded wallet's URL sub-path.
// Wallet-level methods (getbalance, getnewaddress, sendtoaddress, ...) must
// go through a scoped client; node-level methods work on either.
func (c *Client) WalletClient(name string) *Client {
	return &Client{
		httpClient: c.httpClient,
		url:        c.url + "/wallet/" + name,
		user:       c.user,
		pass:       c.pass,
	}
}

// rpcRequest is the JSON-RPC 1.0 envelope spoken by bitcoind
type rpcRequest struct {
	JSONRPC string        `json:"jsonrpc"`
	ID      int64         `json:"id"`
	Method  string        `json:"method"`
	Params  []interface{} `json:"params"`
}

// rpcResponse is the response envelope; only the result field is consumed
type rpcResponse struct {
	Result json.RawMessage `json:"result"`
}

// Call invokes a JSON-RPC method on the node and returns the raw result field
func (c *Client) Call(method string, params ...interface{}) (json.RawMessage, error) {
	if params == nil {
		params = []interface{}{}
	}

	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "1.0",
		ID:      rand.Int63(),
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.user, c.pass)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var rpcResp rpcResponse
	if err := json.Unmarshal(body, &rpcResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return rpcResp.Result, nil
}
