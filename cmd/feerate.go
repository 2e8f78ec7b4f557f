package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var feerateCmd = &cobra.Command{
	Use:   "feerate",
	Short: "Show the fee-rate hint",
	Long: `Show the fee-rate hint used for transaction construction.

The value is a fixed constant, not derived from current network conditions —
good enough for demo flows on regtest, not a production estimate.

Example:
  satchel feerate`,
	RunE: runFeerate,
}

func runFeerate(cmd *cobra.Command, args []string) error {
	nw, _, err := openWallet(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("⛽ Fee rate: %s sat/vB\n", nw.GetFeeRate())
	fmt.Println("💡 This is a static hint; the node estimates actual fees when sending")

	return nil
}
