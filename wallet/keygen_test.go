package wallet

import (
	"strings"
	"testing"

	"github.com/tyler-smith/go-bip39"
)

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey(NetworkRegtest)
	if err != nil {
		t.Fatal(err)
	}

	if !bip39.IsMnemonicValid(key.Mnemonic) {
		t.Fatal("generated mnemonic is not valid")
	}
	if len(strings.Fields(key.Mnemonic)) != 24 {
		t.Fatalf("expected a 24-word mnemonic, got %d words", len(strings.Fields(key.Mnemonic)))
	}

	if err := ValidateWIF(key.WIF, NetworkRegtest); err != nil {
		t.Fatalf("generated WIF does not validate: %v", err)
	}

	if !strings.HasPrefix(key.Address, "bcrt1") {
		t.Fatalf("expected a regtest bech32 address, got %q", key.Address)
	}
}

func TestKeyFromMnemonicIsDeterministic(t *testing.T) {
	key, err := GenerateKey(NetworkTestnet)
	if err != nil {
		t.Fatal(err)
	}

	again, err := KeyFromMnemonic(key.Mnemonic, NetworkTestnet)
	if err != nil {
		t.Fatal(err)
	}

	if again.WIF != key.WIF {
		t.Fatalf("re-derivation produced a different key: %q vs %q", again.WIF, key.WIF)
	}
	if again.Address != key.Address {
		t.Fatalf("re-derivation produced a different address: %q vs %q", again.Address, key.Address)
	}
}

func TestKeyFromMnemonicRejectsGarbage(t *testing.T) {
	if _, err := KeyFromMnemonic("not a mnemonic", NetworkRegtest); err == nil {
		t.Fatal("expected an error for an invalid mnemonic")
	}
}

func TestValidateWIFNetworkCheck(t *testing.T) {
	key, err := GenerateKey(NetworkBitcoin)
	if err != nil {
		t.Fatal(err)
	}

	// a mainnet-encoded key must not validate for regtest
	if err := ValidateWIF(key.WIF, NetworkRegtest); err == nil {
		t.Fatal("expected a network error for a mainnet WIF on regtest")
	}
	if err := ValidateWIF("garbage", NetworkBitcoin); err == nil {
		t.Fatal("expected an error for a malformed WIF")
	}
}

func TestParseNetwork(t *testing.T) {
	for _, valid := range []string{"bitcoin", "testnet", "regtest"} {
		if _, err := ParseNetwork(valid); err != nil {
			t.Fatalf("%q should parse: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "mainnet", "signet", "Bitcoin"} {
		if _, err := ParseNetwork(invalid); err == nil {
			t.Fatalf("%q should not parse", invalid)
		}
	}
}

func TestChainParams(t *testing.T) {
	if NetworkBitcoin.ChainParams().Name != "mainnet" {
		t.Fatalf("unexpected params for bitcoin: %s", NetworkBitcoin.ChainParams().Name)
	}
	if NetworkTestnet.ChainParams().Name != "testnet3" {
		t.Fatalf("unexpected params for testnet: %s", NetworkTestnet.ChainParams().Name)
	}
	if NetworkRegtest.ChainParams().Name != "regtest" {
		t.Fatalf("unexpected params for regtest: %s", NetworkRegtest.ChainParams().Name)
	}
}
