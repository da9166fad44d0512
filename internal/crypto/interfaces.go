package crypto

// KeyChainService owns all cryptography of the vault. It knows nothing
// about the filesystem, the profile list, or the UI; its only job is to
// turn a master passphrase into a key and to seal/open opaque byte
// payloads under such a key.
//
// Container layout produced by Seal and consumed by Open:
//
//	nonce (12 bytes) ‖ ciphertext ‖ GCM tag (16 bytes)
//
// There is no header, version byte, or magic number. A container is
// either openable under the right key or indistinguishable from noise.
type KeyChainService interface {
	// DeriveKey derives the 256-bit vault key from the master passphrase.
	// Derivation is deterministic and salt-free with respect to the vault:
	// the same passphrase bytes always yield the same key, so the key is
	// fully determined by what the user types. Empty input is valid (a
	// weak but legal passphrase). Never fails.
	DeriveKey(passphrase []byte) []byte

	// Seal encrypts plaintext under key with AES-256-GCM using a fresh
	// random 12-byte nonce and returns nonce ‖ ciphertext ‖ tag.
	// Accepts any plaintext size including empty. The only failure modes
	// are a key of the wrong length or an OS CSPRNG read error.
	Seal(plaintext, key []byte) ([]byte, error)

	// Open decrypts a container produced by Seal. It fails with an error
	// matching [ErrAuthentication] when the container is shorter than the
	// nonce, the tag does not verify, or the bytes are otherwise
	// malformed. A wrong key and a corrupted container are deliberately
	// indistinguishable: Open is the only key check there is.
	Open(container, key []byte) ([]byte, error)

	// Wipe zeroes key in place. Called when a session ends or a rejected
	// key is discarded, so derived key material does not outlive its use.
	Wipe(key []byte)
}
