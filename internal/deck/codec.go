package deck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PolarWolf314/holecard/internal/crypto"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// Deck file envelope v1:
//
//	offset  size  field
//	0       4     magic        "HCDK" (export files use "HCEX")
//	4       1     version      0x01
//	5       16    kdf_salt
//	21      12    aead_nonce
//	33      N     ciphertext_and_tag
//
// The header fields are not bound as AEAD associated data in v1.
var (
	magicDeck   = []byte("HCDK")
	magicExport = []byte("HCEX")
)

const (
	envelopeVersion = 0x01
	headerSize      = 4 + 1 + crypto.SaltSize + crypto.NonceSize
	minEnvelopeSize = headerSize + crypto.TagSize
)

// Encode serialises the deck and seals it under a key derived from the
// master password and secret key. Both the KDF salt and the AEAD nonce are
// freshly sampled on every call, so no two envelopes ever share either.
// The derived key is returned so the caller can hand it to the session
// manager; the caller owns wiping it.
func Encode(d *Deck, password, secretKey string) ([]byte, []byte, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, nil, err
	}

	key, err := crypto.DeriveKey(password, secretKey, salt)
	if err != nil {
		return nil, nil, err
	}

	envelope, err := seal(magicDeck, d, key, salt)
	if err != nil {
		crypto.Wipe(key)
		return nil, nil, err
	}

	return envelope, key, nil
}

// Decode verifies the envelope, derives the key from its salt, decrypts, and
// parses the body. The derived key is returned for session caching; the
// caller owns wiping it. A tag mismatch surfaces as ErrAuthenticationFailed
// whether the password, the secret key, or the file is at fault.
func Decode(data []byte, password, secretKey string) (*Deck, []byte, error) {
	salt, nonce, ciphertext, err := parseEnvelope(magicDeck, data)
	if err != nil {
		return nil, nil, err
	}

	key, err := crypto.DeriveKey(password, secretKey, salt)
	if err != nil {
		return nil, nil, err
	}

	d, err := open(key, nonce, ciphertext)
	if err != nil {
		crypto.Wipe(key)
		return nil, nil, err
	}

	return d, key, nil
}

// DecodeWithKey decrypts an envelope with an already-derived key, the
// session-resume read path. The envelope's salt always corresponds to the
// cached key because every write re-derives and re-caches.
func DecodeWithKey(data, key []byte) (*Deck, error) {
	_, nonce, ciphertext, err := parseEnvelope(magicDeck, data)
	if err != nil {
		return nil, err
	}

	return open(key, nonce, ciphertext)
}

// EncodeExport seals the canonical body under a key derived from the export
// password alone, producing the portable "HCEX" envelope.
func EncodeExport(d *Deck, password string) ([]byte, error) {
	salt, err := crypto.NewSalt()
	if err != nil {
		return nil, err
	}

	key, err := crypto.DerivePasswordKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return seal(magicExport, d, key, salt)
}

// DecodeExport opens an "HCEX" envelope with the export password.
func DecodeExport(data []byte, password string) (*Deck, error) {
	salt, nonce, ciphertext, err := parseEnvelope(magicExport, data)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DerivePasswordKey(password, salt)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(key)

	return open(key, nonce, ciphertext)
}

func seal(magic []byte, d *Deck, key, salt []byte) ([]byte, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("serializing deck body: %w", err)
	}
	defer crypto.Wipe(body)

	nonce, err := crypto.NewNonce()
	if err != nil {
		return nil, err
	}

	ciphertext, err := crypto.Encrypt(key, nonce, body)
	if err != nil {
		return nil, err
	}

	envelope := make([]byte, 0, headerSize+len(ciphertext))
	envelope = append(envelope, magic...)
	envelope = append(envelope, envelopeVersion)
	envelope = append(envelope, salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)

	return envelope, nil
}

func open(key, nonce, ciphertext []byte) (*Deck, error) {
	body, err := crypto.Decrypt(key, nonce, ciphertext)
	if err != nil {
		return nil, err
	}
	defer crypto.Wipe(body)

	d := New()
	if err := json.Unmarshal(body, d); err != nil {
		return nil, fmt.Errorf("%w: unparsable body", herrors.ErrCorruptDeck)
	}
	if d.Version != BodyVersion {
		return nil, fmt.Errorf("%w: unsupported body version %d", herrors.ErrCorruptDeck, d.Version)
	}
	if d.Hands == nil {
		d.Hands = make(map[string]*Hand)
	}

	return d, nil
}

func parseEnvelope(magic, data []byte) (salt, nonce, ciphertext []byte, err error) {
	if len(data) < minEnvelopeSize {
		return nil, nil, nil, fmt.Errorf("%w: file too short", herrors.ErrCorruptDeck)
	}
	if !bytes.Equal(data[:4], magic) {
		return nil, nil, nil, fmt.Errorf("%w: bad magic", herrors.ErrCorruptDeck)
	}
	if data[4] != envelopeVersion {
		return nil, nil, nil, fmt.Errorf("%w: unsupported envelope version %d", herrors.ErrCorruptDeck, data[4])
	}

	salt = data[5 : 5+crypto.SaltSize]
	nonce = data[5+crypto.SaltSize : headerSize]
	ciphertext = data[headerSize:]
	return salt, nonce, ciphertext, nil
}
