package api

// network identifier constants, as reported in the "chain" field of
// getblockchaininfo
const (
	NetworkBitcoin = "bitcoin"
	NetworkTestnet = "testnet"
	NetworkRegtest = "regtest"
)

// Default RPC endpoints
const (
	// standard bitcoind RPC ports per network
	MainnetRPC = "http://127.0.0.1:8332"
	TestnetRPC = "http://127.0.0.1:18332"
	RegtestRPC = "http://127.0.0.1:18443"
)

// DefaultRPC returns the default local RPC endpoint for a network identifier.
func DefaultRPC(network string) string {
	switch network {
	case NetworkTestnet:
		return TestnetRPC
	case NetworkRegtest:
		return RegtestRPC
	default:
		return MainnetRPC
	}
}
