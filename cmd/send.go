package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/mkrall/satchel/wallet"
)

var waitFlag int

var sendCmd = &cobra.Command{
	Use:   "send [address] [amount-sats]",
	Short: "Send bitcoin to an address",
	Long: `Send bitcoin to another address. The amount is given in satoshis and
converted exactly to the BTC amount the node expects. The node picks the
inputs, estimates the fee and signs; satchel only issues the transfer.

The connected node's chain is checked against the expected network first, and
the transfer is refused on a mismatch.

Examples:
  satchel send bcrt1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh 50000000
  satchel send tb1q7cyrfmck2ffu2ud3rn5l5a8yv6f0chkp0zpemf 100000 -n testnet --wait 3`,
	Args: cobra.ExactArgs(2),
	RunE: runSend,
}

func init() {
	sendCmd.Flags().IntVar(&waitFlag, "wait", 0, "Wait for this many confirmations after sending")
}

func runSend(cmd *cobra.Command, args []string) error {
	recipient := args[0]

	satoshis, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	if satoshis <= 0 {
		return fmt.Errorf("amount must be a positive number of satoshis")
	}

	nw, network, err := openWallet(cmd)
	if err != nil {
		return err
	}

	// Parse the recipient against the expected network's parameters before
	// anything is sent to the node
	address, err := btcutil.DecodeAddress(recipient, network.ChainParams())
	if err != nil {
		return fmt.Errorf("invalid bitcoin address: %w", err)
	}
	if !address.IsForNet(network.ChainParams()) {
		return fmt.Errorf("address %s is not valid for the %s network", recipient, network)
	}

	fmt.Println("🟠 Sending bitcoin")
	fmt.Printf("   To:      %s\n", address.EncodeAddress())
	fmt.Printf("   Amount:  %.8f BTC (%d sats)\n", float64(satoshis)/1e8, satoshis)
	fmt.Printf("   Network: %s\n", network)
	fmt.Println()

	txid, err := nw.SendToAddress(address.EncodeAddress(), satoshis, network)
	if err != nil {
		if errors.Is(err, wallet.ErrNetworkMismatch) {
			return fmt.Errorf("refusing to send: %w", err)
		}
		return fmt.Errorf("failed to send transaction: %w", err)
	}

	fmt.Println("✅ Transaction sent successfully!")
	fmt.Printf("📝 Transaction ID: %s\n", txid)
	printExplorerLink(network, txid)

	if waitFlag > 0 {
		return waitForConfirmations(nw, txid, waitFlag)
	}

	return nil
}

// waitForConfirmations polls the wallet's view of the transaction until it
// has the requested number of confirmations
func waitForConfirmations(nw *wallet.NodeWallet, txid string, target int) error {
	fmt.Println()
	bar := progressbar.Default(int64(target), "confirmations")

	for {
		confirmations, err := nw.Confirmations(txid)
		if err != nil {
			return fmt.Errorf("failed to check confirmations: %w", err)
		}

		if confirmations > int64(target) {
			confirmations = int64(target)
		}
		bar.Set64(confirmations)

		if confirmations >= int64(target) {
			fmt.Println()
			fmt.Printf("✅ Confirmed %d time(s)\n", target)
			return nil
		}

		time.Sleep(5 * time.Second)
	}
}

// printExplorerLink prints a block-explorer URL where one exists
func printExplorerLink(network wallet.Network, txid string) {
	switch network {
	case wallet.NetworkBitcoin:
		fmt.Printf("🔗 Explorer: https://mempool.space/tx/%s\n", txid)
	case wallet.NetworkTestnet:
		fmt.Printf("🔗 Explorer: https://mempool.space/testnet/tx/%s\n", txid)
	}
	// no explorer for regtest
}
