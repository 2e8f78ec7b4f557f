package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Unload the wallet from the node",
	Long: `Unload the wallet from the node's memory. Unloading is not automatic;
run this when you are done so the node does not keep the wallet loaded.

Example:
  satchel close -w demo`,
	RunE: runClose,
}

func runClose(cmd *cobra.Command, args []string) error {
	nw, _, err := openWallet(cmd)
	if err != nil {
		return err
	}

	if err := nw.Close(); err != nil {
		return fmt.Errorf("failed to unload wallet: %w", err)
	}

	fmt.Printf("✅ Wallet %q unloaded from the node\n", nw.Name())

	return nil
}
