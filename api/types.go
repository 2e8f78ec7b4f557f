package api

// BlockchainInfo represents the subset of getblockchaininfo we consume
type BlockchainInfo struct {
	Chain         string `json:"chain"`
	Blocks        int64  `json:"blocks"`
	Headers       int64  `json:"headers"`
	BestBlockHash string `json:"bestblockhash"`
}

// WalletTransaction represents the subset of gettransaction we consume
type WalletTransaction struct {
	TxID          string  `json:"txid"`
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Confirmations int64   `json:"confirmations"`
	BlockHash     string  `json:"blockhash"`
	Time          int64   `json:"time"`
}

// ListedTransaction represents one entry of a listtransactions response
type ListedTransaction struct {
	TxID          string  `json:"txid"`
	Address       string  `json:"address"`
	Category      string  `json:"category"` // "send" or "receive"
	Amount        float64 `json:"amount"`
	Fee           float64 `json:"fee"`
	Confirmations int64   `json:"confirmations"`
	Time          int64   `json:"time"`
}
