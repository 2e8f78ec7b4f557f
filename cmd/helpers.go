package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkrall/satchel/api"
	"github.com/mkrall/satchel/crypto"
	"github.com/mkrall/satchel/wallet"
)

// configDir returns ~/.satchel, creating it if needed
func configDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	dir := filepath.Join(homeDir, ".satchel")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	return dir, nil
}

// expectedNetwork resolves the network the node is expected to be on:
// the --network flag when given, otherwise the persisted default
func expectedNetwork(cmd *cobra.Command) (wallet.Network, error) {
	flagValue, _ := cmd.Flags().GetString("network")
	if flagValue != "" {
		return wallet.ParseNetwork(flagValue)
	}
	return wallet.ParseNetwork(getCurrentNetwork())
}

// promptPassword reads a password without echoing it
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Println() // New line after password input
	return string(password), nil
}

// importKey resolves the private key to import on connect, if any:
// the --import-key flag, or the encrypted vault when --vault is set
func importKey(cmd *cobra.Command, network wallet.Network) (string, error) {
	wif, _ := cmd.Flags().GetString("import-key")
	useVault, _ := cmd.Flags().GetBool("vault")

	if wif == "" && useVault {
		vault, err := loadVault()
		if err != nil {
			return "", err
		}

		password, err := promptPassword("Enter your vault password: ")
		if err != nil {
			return "", err
		}

		var vaultNet string
		wif, vaultNet, err = vault.Decrypt(password)
		if err != nil {
			return "", fmt.Errorf("failed to open vault: %w", err)
		}
		if vaultNet != string(network) {
			return "", fmt.Errorf("vault key was generated for the %s network, not %s", vaultNet, network)
		}
	}

	if wif != "" {
		if err := wallet.ValidateWIF(wif, network); err != nil {
			return "", err
		}
	}

	return wif, nil
}

// openWallet connects to the node named by the global flags and provisions
// the target wallet, returning a handle scoped to it
func openWallet(cmd *cobra.Command) (*wallet.NodeWallet, wallet.Network, error) {
	network, err := expectedNetwork(cmd)
	if err != nil {
		return nil, "", err
	}

	endpoint, _ := cmd.Flags().GetString("rpc")
	if endpoint == "" {
		endpoint = api.DefaultRPC(string(network))
	}

	user, _ := cmd.Flags().GetString("rpcuser")
	pass, _ := cmd.Flags().GetString("rpcpass")
	if pass == "" {
		pass, err = promptPassword("Enter the node RPC password: ")
		if err != nil {
			return nil, "", err
		}
	}

	wif, err := importKey(cmd, network)
	if err != nil {
		return nil, "", err
	}

	name, _ := cmd.Flags().GetString("wallet")
	nw, err := wallet.Connect(api.NewClient(endpoint, user, pass), name, wif)
	if err != nil {
		return nil, "", fmt.Errorf("failed to connect to node wallet: %w", err)
	}

	return nw, network, nil
}

// vaultPath returns the location of the encrypted key vault
func vaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "key.vault"), nil
}

// saveVault writes the encrypted key vault to disk
func saveVault(vault *crypto.Vault) error {
	path, err := vaultPath()
	if err != nil {
		return err
	}

	data, err := json.Marshal(vault)
	if err != nil {
		return fmt.Errorf("failed to serialize vault: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write vault file: %w", err)
	}

	return nil
}

// loadVault reads the encrypted key vault from disk
func loadVault() (*crypto.Vault, error) {
	path, err := vaultPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no key vault found. Run 'satchel keygen --save' first: %w", err)
	}

	var vault crypto.Vault
	if err := json.Unmarshal(data, &vault); err != nil {
		return nil, fmt.Errorf("failed to parse vault file: %w", err)
	}

	return &vault, nil
}
