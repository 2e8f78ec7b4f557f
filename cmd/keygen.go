package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mkrall/satchel/crypto"
	"github.com/mkrall/satchel/wallet"
)

var saveFlag bool

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate a demo private key",
	Long: `Generate a fresh private key for the selected network, printing its
recovery phrase, WIF encoding and native segwit address.

With --save the key is stored in an encrypted vault (~/.satchel/key.vault) so
later commands can import it into the node wallet with --vault.

Examples:
  satchel keygen -n regtest
  satchel keygen -n regtest --save`,
	RunE: runKeygen,
}

func init() {
	keygenCmd.Flags().BoolVar(&saveFlag, "save", false, "Store the key in the encrypted vault")
}

func runKeygen(cmd *cobra.Command, args []string) error {
	network, err := expectedNetwork(cmd)
	if err != nil {
		return err
	}

	fmt.Println("🔐 Generating key...")
	key, err := wallet.GenerateKey(network)
	if err != nil {
		return fmt.Errorf("failed to generate key: %w", err)
	}

	fmt.Println()
	fmt.Printf("🌐 Network:  %s\n", network)
	fmt.Printf("📍 Address:  %s\n", key.Address)
	fmt.Printf("🔑 WIF:      %s\n", key.WIF)
	fmt.Println()
	fmt.Println("📝 Recovery phrase:")
	fmt.Printf("   %s\n", color.YellowString(key.Mnemonic))
	fmt.Println()
	fmt.Println("⚠️  Anyone with the WIF or the phrase can spend the key's coins")

	if !saveFlag {
		fmt.Println("💡 Re-run with --save to store the key in an encrypted vault")
		return nil
	}

	password, err := promptPassword("Enter a password for the vault: ")
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	confirm, err := promptPassword("Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	vault, err := crypto.NewVault(key.WIF, string(network), password)
	if err != nil {
		return fmt.Errorf("failed to create vault: %w", err)
	}

	if err := saveVault(vault); err != nil {
		return err
	}

	fmt.Println("✅ Key stored in the vault")
	fmt.Println("💡 Import it into the node wallet with any command plus --vault")

	return nil
}
