// Package cryptox provides best-effort at-rest protection for the
// credential store. Secrets are sealed with XChaCha20-Poly1305 under a key
// derived from a per-install random master key kept next to the store.
package cryptox

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
	"os"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// MasterKeySize is the size of the per-install master key in bytes.
const MasterKeySize = 32

var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// LoadOrCreateKey returns the master key stored at path, generating and
// persisting a fresh random key (mode 0600) on first use.
func LoadOrCreateKey(path string) ([]byte, error) {
	key, err := os.ReadFile(path)
	if err == nil {
		if len(key) != MasterKeySize {
			return nil, errors.New("master key file has wrong size")
		}
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	key = make([]byte, MasterKeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, key, 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// newAEAD derives a cipher key from the master key via HKDF-SHA256 and
// returns an XChaCha20-Poly1305 AEAD.
func newAEAD(masterKey []byte) (cipher.AEAD, error) {
	h := hkdf.New(sha256.New, masterKey, nil, []byte("dreamcatcher/credstore/v1"))
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(h, key); err != nil {
		return nil, err
	}
	return chacha20poly1305.NewX(key)
}

// Seal encrypts plaintext under the master key. The additional data binds
// the ciphertext to its context (the credential key), so a value copied
// under another key fails to open. The random nonce is prepended to the
// returned blob.
func Seal(masterKey, additional, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, err
	}

	return aead.Seal(nonce, nonce, plaintext, additional), nil
}

// Open decrypts a blob produced by Seal. Returns ErrInvalidCiphertext when
// the blob is truncated, tampered with, or sealed under different
// additional data.
func Open(masterKey, additional, blob []byte) ([]byte, error) {
	aead, err := newAEAD(masterKey)
	if err != nil {
		return nil, err
	}

	if len(blob) < aead.NonceSize() {
		return nil, ErrInvalidCiphertext
	}
	nonce, ciphertext := blob[:aead.NonceSize()], blob[aead.NonceSize():]

	plaintext, err := aead.Open(nil, nonce, ciphertext, additional)
	if err != nil {
		return nil, ErrInvalidCiphertext
	}
	return plaintext, nil
}
