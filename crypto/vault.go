package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	ScryptN = 32768 // 2^15
	ScryptR = 8
	ScryptP = 1
	KeyLen  = 32 // AES-256 key length
)

// Vault is an encrypted container for a WIF-encoded private key, so a demo
// key can be kept on disk between sessions without storing it in the clear.
type Vault struct {
	Salt  []byte `json:"salt"`
	Nonce []byte `json:"nonce"`
	Data  []byte `json:"data"`
}

type vaultData struct {
	WIF     string `json:"wif"`
	Network string `json:"network"`
	Version int    `json:"version"`
}

// NewVault encrypts a WIF key under a password
func NewVault(wif, network, password string) (*Vault, error) {
	// Generate random salt
	salt := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}

	// Derive key from password
	key, err := deriveKey(password, salt)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	data, err := json.Marshal(vaultData{
		WIF:     wif,
		Network: network,
		Version: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to serialize vault data: %w", err)
	}

	// Generate random nonce
	nonce := make([]byte, 12)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	// Encrypt data
	encryptedData, err := encrypt(key, nonce, data)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt data: %w", err)
	}

	return &Vault{
		Salt:  salt,
		Nonce: nonce,
		Data:  encryptedData,
	}, nil
}

// Decrypt recovers the WIF key and the network it was generated for
func (v *Vault) Decrypt(password string) (wif, network string, err error) {
	// Derive key from password
	key, err := deriveKey(password, v.Salt)
	if err != nil {
		return "", "", fmt.Errorf("failed to derive key: %w", err)
	}
	defer clearBytes(key)

	// Decrypt data
	decryptedData, err := decrypt(key, v.Nonce, v.Data)
	if err != nil {
		return "", "", fmt.Errorf("failed to decrypt data: %w", err)
	}

	var vd vaultData
	if err := json.Unmarshal(decryptedData, &vd); err != nil {
		return "", "", fmt.Errorf("failed to deserialize vault data: %w", err)
	}

	return vd.WIF, vd.Network, nil
}

// ValidatePassword reports whether a password opens the vault
func (v *Vault) ValidatePassword(password string) bool {
	_, _, err := v.Decrypt(password)
	return err == nil
}

func deriveKey(password string, salt []byte) ([]byte, error) {
	key, err := scrypt.Key([]byte(password), salt, ScryptN, ScryptR, ScryptP, KeyLen)
	if err != nil {
		return nil, fmt.Errorf("scrypt key derivation failed: %w", err)
	}
	return key, nil
}

func encrypt(key, nonce, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return aesGCM.Seal(nil, nonce, data, nil), nil
}

func decrypt(key, nonce, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	plaintext, err := aesGCM.Open(nil, nonce, data, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}

	return plaintext, nil
}

func clearBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
