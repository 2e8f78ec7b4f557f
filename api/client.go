package api

// Bitcoin Core RPC Client-
//
// Files:
//   config.go   - Network identifiers and default RPC endpoints
//   types.go    - Struct definitions (blockchain info, wallet transaction, etc.)
//   base.go     - Core client functionality (client struct, NewClient, Call)
//   bitcoin.go  - Typed wrappers for the node RPC methods we use
//
// Usage:
//   client := api.NewClient("http://127.0.0.1:18443", "user", "pass")  // from base.go
//   wallets, err := client.ListWallets()                               // from bitcoin.go
//   wc := client.WalletClient("demo")      // scoped to /wallet/demo (from base.go)
//   balance, err := wc.GetBalance()
