package cmd

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/spf13/cobra"

	"github.com/mkrall/satchel/wallet"
)

var broadcastCmd = &cobra.Command{
	Use:   "broadcast [raw-tx-hex]",
	Short: "Broadcast a pre-signed raw transaction",
	Long: `Submit a pre-built, pre-signed transaction to the node for relay.
The transaction must already be fully signed; satchel does no signing of its
own. The connected node's chain is checked against the expected network
before the transaction is submitted.

Example:
  satchel broadcast 02000000000101... -n regtest`,
	Args: cobra.ExactArgs(1),
	RunE: runBroadcast,
}

func runBroadcast(cmd *cobra.Command, args []string) error {
	rawHex := args[0]

	// Cheap sanity check before bothering the node
	if _, err := hex.DecodeString(rawHex); err != nil {
		return fmt.Errorf("invalid raw transaction hex: %w", err)
	}

	nw, network, err := openWallet(cmd)
	if err != nil {
		return err
	}

	txid, err := nw.BroadcastTransaction(rawHex, network)
	if err != nil {
		if errors.Is(err, wallet.ErrNetworkMismatch) {
			return fmt.Errorf("refusing to broadcast: %w", err)
		}
		return fmt.Errorf("failed to broadcast transaction: %w", err)
	}

	// The node echoes the transaction id back; make sure it is one
	if _, err := chainhash.NewHashFromStr(txid); err != nil {
		return fmt.Errorf("node returned a malformed transaction id %q: %w", txid, err)
	}

	fmt.Println("✅ Transaction broadcast successfully!")
	fmt.Printf("📝 Transaction ID: %s\n", txid)
	printExplorerLink(network, txid)

	return nil
}
