package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	version = "0.3.1"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "satchel",
	Short: "A Bitcoin Core node-backed demo wallet",
	Long: `Satchel is a small command-line wallet that drives a wallet loaded
inside a Bitcoin Core full node over its JSON-RPC interface. It is meant for
development and demo workflows: generate an address on regtest, fund it,
send coins, broadcast a pre-signed transaction.

All heavy lifting (UTXO selection, fee estimation, signing) stays inside the
node; satchel only issues the RPC calls.

Examples:
  satchel network regtest                  # Use the local regression-test node
  satchel address                          # Fresh receiving address
  satchel balance                          # Spendable balance
  satchel send bcrt1q... 50000000          # Send 0.5 BTC (amount in satoshis)
  satchel broadcast 0200000001...          # Relay a pre-signed raw transaction
  satchel keygen --save                    # Generate and store a demo key
  satchel close                            # Unload the wallet from the node`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().String("rpc", "", "node RPC endpoint (default depends on network)")
	rootCmd.PersistentFlags().String("rpcuser", "", "node RPC username")
	rootCmd.PersistentFlags().String("rpcpass", "", "node RPC password (prompted when omitted)")
	rootCmd.PersistentFlags().StringP("wallet", "w", "satchel", "name of the wallet loaded in the node")
	rootCmd.PersistentFlags().StringP("network", "n", "", "expected network: bitcoin, testnet or regtest")
	rootCmd.PersistentFlags().String("import-key", "", "WIF private key to import on connect")
	rootCmd.PersistentFlags().Bool("vault", false, "import the key stored in the encrypted vault on connect")

	// Add subcommands
	rootCmd.AddCommand(addressCmd)
	rootCmd.AddCommand(balanceCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(broadcastCmd)
	rootCmd.AddCommand(feerateCmd)
	rootCmd.AddCommand(transactionsCmd)
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(closeCmd)
	rootCmd.AddCommand(versionCmd)
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Satchel v%s\n", version)
	},
}
