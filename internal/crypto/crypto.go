package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/argon2"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// Key derivation and envelope geometry. These are fixed for format v1 and
// must not change: every persisted deck depends on them.
const (
	KeySize   = 32
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16

	argonTime    = 2
	argonMemory  = 19 * 1024 // KiB
	argonThreads = 1
)

// kdfSeparator joins the master password and the secret key in the
// derivation transcript. The literal byte is part of the on-disk format.
const kdfSeparator = byte('|')

// DeriveKey derives the 32-byte working key from the master password and the
// canonical secret-key string using Argon2id. The combined input buffer is
// wiped before returning.
func DeriveKey(password, secretKey string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", herrors.ErrInvalidInput, SaltSize, len(salt))
	}

	combined := make([]byte, 0, len(password)+1+len(secretKey))
	combined = append(combined, password...)
	combined = append(combined, kdfSeparator)
	combined = append(combined, secretKey...)

	key := argon2.IDKey(combined, salt, argonTime, argonMemory, argonThreads, KeySize)
	Wipe(combined)

	return key, nil
}

// DerivePasswordKey derives a key from a password alone. Used by the export
// envelope, which must be portable without the machine-bound secret key.
func DerivePasswordKey(password string, salt []byte) ([]byte, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: salt must be %d bytes, got %d", herrors.ErrInvalidInput, SaltSize, len(salt))
	}

	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeySize), nil
}

// Encrypt seals plaintext with AES-256-GCM. The returned slice is the
// ciphertext with the 16-byte tag appended.
func Encrypt(key, nonce, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	return gcm.Seal(nil, nonce, plaintext, nil), nil
}

// Decrypt opens ciphertextAndTag with AES-256-GCM. A tag mismatch is
// reported as ErrAuthenticationFailed regardless of the root cause.
func Decrypt(key, nonce, ciphertextAndTag []byte) ([]byte, error) {
	gcm, err := newGCM(key, nonce)
	if err != nil {
		return nil, err
	}

	plaintext, err := gcm.Open(nil, nonce, ciphertextAndTag, nil)
	if err != nil {
		return nil, herrors.ErrAuthenticationFailed
	}

	return plaintext, nil
}

func newGCM(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", herrors.ErrInvalidInput, KeySize, len(key))
	}
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", herrors.ErrInvalidInput, NonceSize, len(nonce))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}

	return cipher.NewGCM(block)
}

// Random returns n bytes from the platform CSPRNG.
func Random(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("reading from system RNG: %w", err)
	}
	return b, nil
}

// NewSalt samples a fresh 16-byte KDF salt.
func NewSalt() ([]byte, error) {
	return Random(SaltSize)
}

// NewNonce samples a fresh 12-byte AEAD nonce.
func NewNonce() ([]byte, error) {
	return Random(NonceSize)
}

// ConstantTimeEqual compares two byte slices without leaking timing
// information about where they differ.
func ConstantTimeEqual(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}

// Wipe overwrites a buffer holding secret material. Best effort: the runtime
// may have copied the data elsewhere, but every buffer we control is cleared.
func Wipe(b []byte) {
	memguard.WipeBytes(b)
}
