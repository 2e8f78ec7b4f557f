package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	pageFlag  int
	limitFlag int
)

var transactionsCmd = &cobra.Command{
	Use:   "transactions",
	Short: "Show wallet transaction history with pagination",
	Long: `Show the node wallet's recent transaction history with pagination
support.

Examples:
  satchel transactions               # Show recent transactions (page 1)
  satchel transactions --page 2      # Show page 2
  satchel transactions --limit 5     # Show 5 transactions per page`,
	RunE: runTransactions,
}

func init() {
	transactionsCmd.Flags().IntVarP(&pageFlag, "page", "p", 1, "Page number")
	transactionsCmd.Flags().IntVarP(&limitFlag, "limit", "l", 10, "Transactions per page (1-20)")
}

func runTransactions(cmd *cobra.Command, args []string) error {
	// Validate pagination parameters
	if pageFlag < 1 {
		return fmt.Errorf("page must be at least 1")
	}
	if limitFlag < 1 || limitFlag > 20 {
		return fmt.Errorf("limit must be between 1 and 20")
	}

	nw, network, err := openWallet(cmd)
	if err != nil {
		return err
	}

	skip := (pageFlag - 1) * limitFlag
	txs, err := nw.Transactions(limitFlag, skip)
	if err != nil {
		return fmt.Errorf("failed to fetch transactions: %w", err)
	}

	fmt.Println("📜 Wallet transactions")
	fmt.Printf("🌐 Network: %s   Page: %d\n", network, pageFlag)
	fmt.Println()

	if len(txs) == 0 {
		fmt.Println("   No transactions on this page")
		return nil
	}

	// The node returns oldest first; show newest first
	for i := len(txs) - 1; i >= 0; i-- {
		tx := txs[i]

		direction := color.GreenString("⬇ received")
		if tx.Category == "send" {
			direction = color.RedString("⬆ sent")
		}

		fmt.Printf("%s  %.8f BTC\n", direction, tx.Amount)
		fmt.Printf("   📝 %s\n", tx.TxID)
		if tx.Address != "" {
			fmt.Printf("   📍 %s\n", tx.Address)
		}
		fmt.Printf("   ⏱  %s   (%d confirmations)\n", time.Unix(tx.Time, 0).Format("2006-01-02 15:04:05"), tx.Confirmations)
		fmt.Println()
	}

	return nil
}
