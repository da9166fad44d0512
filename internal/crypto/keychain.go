// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the vault key length: 256 bits for AES-256-GCM.
	KeySize = 32
	// NonceSize is the GCM nonce length prepended to every container.
	NonceSize = 12
)

// derivationSalt domain-separates vault keys from any other Argon2id use of
// the same passphrase. It is a build-time constant, not a per-vault salt:
// derivation stays fully determined by the passphrase, so the same
// passphrase always opens the same container. The flip side is that two
// vaults created with the same passphrase share a key, a known limitation
// of the headerless container format, which has nowhere to store a salt.
var derivationSalt = []byte("rdp-keeper/vault-key/v1")

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target (e.g. mobile vs. desktop).
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewKeyChainService constructs a [KeyChainService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewKeyChainService() KeyChainService {
	return &keyChainService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  KeySize,
	}
}

// DeriveKey implements [KeyChainService]. It derives the 256-bit vault key
// from passphrase using Argon2id with the parameters stored in the receiver
// and the fixed derivationSalt. The result exists only in memory for the
// lifetime of the session and is never persisted.
func (k *keyChainService) DeriveKey(passphrase []byte) []byte {
	return argon2.IDKey(
		passphrase,
		derivationSalt,
		k.argonTime,
		k.argonMemory,
		k.argonThreads,
		k.argonKeyLen,
	)
}

// Seal implements [KeyChainService]. It encrypts plaintext with key using
// AES-256-GCM. A random 12-byte nonce is prepended to the ciphertext so
// that Open can locate it: container = nonce ‖ ciphertext ‖ tag. A fresh
// nonce is read from the OS CSPRNG on every call, so a nonce is never
// reused under the same key. Returns an error only if cipher creation or
// the random nonce read fails.
func (k *keyChainService) Seal(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	// Prepend the nonce so Open can split it out without a side channel.
	sealed := gcm.Seal(nil, nonce, plaintext, nil)
	return append(nonce, sealed...), nil
}

// Open implements [KeyChainService]. It splits the container into nonce and
// ciphertext, decrypts with key via AES-256-GCM and verifies the
// authentication tag. On success the original plaintext is returned
// bit-for-bit. Any failure (container shorter than the nonce, tag
// mismatch, malformed bytes) is reported as [ErrAuthentication]; an error
// here almost always means the user entered the wrong master passphrase.
func (k *keyChainService) Open(container, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	nonceSize := gcm.NonceSize()
	if len(container) < nonceSize {
		return nil, fmt.Errorf("%w: container shorter than nonce", ErrAuthentication)
	}

	nonce, ciphertext := container[:nonceSize], container[nonceSize:]

	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	return plaintext, nil
}

// Wipe implements [KeyChainService]. It overwrites key with zeroes in
// place. Go gives no guarantee about copies the GC may have made, but
// zeroing the canonical slice keeps the key from lingering in an obvious
// place after the session ends.
func (k *keyChainService) Wipe(key []byte) {
	for i := range key {
		key[i] = 0
	}
}
