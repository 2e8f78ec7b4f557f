package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Check the wallet balance",
	Long: `Check the spendable balance of the node wallet.

Examples:
  satchel balance
  satchel balance -w demo -n regtest`,
	RunE: runBalance,
}

func runBalance(cmd *cobra.Command, args []string) error {
	nw, network, err := openWallet(cmd)
	if err != nil {
		return err
	}

	balance, err := nw.GetBalance()
	if err != nil {
		return fmt.Errorf("failed to fetch balance: %w", err)
	}

	fmt.Println("💰 Wallet balance")
	fmt.Printf("🌐 Network: %s\n", network)
	fmt.Printf("🟠 Balance: %.8f BTC\n", balance)

	return nil
}
