package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/tyler-smith/go-bip39"
)

// GeneratedKey holds a freshly generated demo key in the forms the rest of
// the tool needs: the recovery phrase it was derived from, the WIF encoding
// accepted by importprivkey, and the key's native segwit address.
type GeneratedKey struct {
	Mnemonic string
	WIF      string
	Address  string
}

// GenerateKey creates a new random key for the given network. The key is
// derived from a 24-word BIP-39 mnemonic at m/44'/coin'/0'/0/0, where coin
// is 0 for mainnet and 1 otherwise.
func GenerateKey(network Network) (*GeneratedKey, error) {
	entropy, err := bip39.NewEntropy(256) // 24 words
	if err != nil {
		return nil, fmt.Errorf("failed to generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, fmt.Errorf("failed to generate mnemonic: %w", err)
	}

	key, err := KeyFromMnemonic(mnemonic, network)
	if err != nil {
		return nil, err
	}

	key.Mnemonic = mnemonic
	return key, nil
}

// KeyFromMnemonic re-derives a generated key from an existing mnemonic
func KeyFromMnemonic(mnemonic string, network Network) (*GeneratedKey, error) {
	if !bip39.IsMnemonicValid(mnemonic) {
		return nil, fmt.Errorf("invalid mnemonic")
	}

	seed := bip39.NewSeed(mnemonic, "")
	params := network.ChainParams()

	master, err := hdkeychain.NewMaster(seed, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	// m/44'/coin'/0'/0/0, coin type 1 for test networks
	coin := uint32(0)
	if network != NetworkBitcoin {
		coin = 1
	}
	path := []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + coin,
		hdkeychain.HardenedKeyStart,
		0,
		0,
	}

	child := master
	for _, index := range path {
		child, err = child.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive child key: %w", err)
		}
	}

	privKey, err := child.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}

	wif, err := btcutil.NewWIF(privKey, params, true)
	if err != nil {
		return nil, fmt.Errorf("failed to encode WIF: %w", err)
	}

	address, err := p2wpkhAddress(privKey.PubKey(), params)
	if err != nil {
		return nil, err
	}

	return &GeneratedKey{
		WIF:     wif.String(),
		Address: address.EncodeAddress(),
	}, nil
}

// ValidateWIF checks that a WIF-encoded private key decodes and was encoded
// for the given network, before it is handed to the node for import
func ValidateWIF(wifStr string, network Network) error {
	wif, err := btcutil.DecodeWIF(wifStr)
	if err != nil {
		return fmt.Errorf("invalid private key: %w", err)
	}
	if !wif.IsForNet(network.ChainParams()) {
		return fmt.Errorf("private key is not encoded for the %s network", network)
	}
	return nil
}

// p2wpkhAddress returns the native segwit (bech32) address for a compressed
// public key
func p2wpkhAddress(pub *btcec.PublicKey, params *chaincfg.Params) (btcutil.Address, error) {
	witnessProg := btcutil.Hash160(pub.SerializeCompressed())
	address, err := btcutil.NewAddressWitnessPubKeyHash(witnessProg, params)
	if err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return address, nil
}
