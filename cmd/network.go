package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkrall/satchel/api"
	"github.com/mkrall/satchel/wallet"
)

var networkCmd = &cobra.Command{
	Use:   "network [bitcoin|testnet|regtest]",
	Short: "Show or change the default network",
	Long: `Show the current default network or switch between bitcoin (mainnet),
testnet and regtest. Funds-moving commands verify that the connected node is
actually on this network before sending anything.

Examples:
  satchel network            # Show current network
  satchel network regtest    # Switch to the local regression-test chain
  satchel network bitcoin    # Switch to mainnet`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNetwork,
}

func runNetwork(cmd *cobra.Command, args []string) error {
	// If no arguments provided, show current network
	if len(args) == 0 {
		return showCurrentNetwork()
	}

	network, err := wallet.ParseNetwork(strings.ToLower(args[0]))
	if err != nil {
		return err
	}

	return setNetwork(network)
}

func showCurrentNetwork() error {
	network := getCurrentNetwork()

	switch network {
	case api.NetworkBitcoin:
		fmt.Printf("🌐 Current network: %s\n", color.RedString("Bitcoin mainnet"))
		fmt.Println()
		fmt.Println("⚠️  Warning: transfers move real coins on mainnet")
	case api.NetworkTestnet:
		fmt.Printf("🌐 Current network: %s\n", color.YellowString("Testnet"))
	case api.NetworkRegtest:
		fmt.Printf("🌐 Current network: %s\n", color.GreenString("Regtest"))
	}

	fmt.Printf("📡 Default node endpoint: %s\n", api.DefaultRPC(network))
	fmt.Println("💡 Override per invocation with --network and --rpc")

	return nil
}

func setNetwork(network wallet.Network) error {
	dir, err := configDir()
	if err != nil {
		return err
	}

	// Write network to network.txt file
	networkPath := filepath.Join(dir, "network.txt")
	if err := os.WriteFile(networkPath, []byte(network), 0600); err != nil {
		return fmt.Errorf("failed to write network file: %w", err)
	}

	fmt.Printf("🌐 Switched to the %s network\n", network)

	if network == wallet.NetworkBitcoin {
		fmt.Println()
		fmt.Println("⚠️  You are now on MAINNET — transfers move real coins")
	}

	return nil
}

// getCurrentNetwork returns the persisted default network identifier,
// falling back to regtest when nothing valid is stored
func getCurrentNetwork() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return api.NetworkRegtest
	}

	networkPath := filepath.Join(homeDir, ".satchel", "network.txt")

	data, err := os.ReadFile(networkPath)
	if err != nil {
		// File doesn't exist, default to regtest
		return api.NetworkRegtest
	}

	network := strings.TrimSpace(string(data))
	if _, err := wallet.ParseNetwork(network); err != nil {
		// Invalid network, default to regtest
		return api.NetworkRegtest
	}

	return network
}

func init() {
	rootCmd.AddCommand(networkCmd)
}
