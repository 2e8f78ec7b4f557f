package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addressCmd = &cobra.Command{
	Use:   "address",
	Short: "Get a fresh receiving address",
	Long: `Request a fresh receiving address from the node wallet.

Examples:
  satchel address
  satchel address -w demo -n regtest`,
	RunE: runAddress,
}

func runAddress(cmd *cobra.Command, args []string) error {
	nw, network, err := openWallet(cmd)
	if err != nil {
		return err
	}

	address, err := nw.GetAddress()
	if err != nil {
		return fmt.Errorf("failed to get address: %w", err)
	}

	fmt.Println("🔑 New receiving address")
	fmt.Printf("🌐 Network: %s\n", network)
	fmt.Printf("📍 Address: %s\n", address)

	return nil
}
