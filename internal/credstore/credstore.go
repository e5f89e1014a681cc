package credstore

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// ServiceName groups every Holecard item in the platform credential store.
const ServiceName = "holecard"

// Account strings are deterministic per deck.
func SecretKeyAccount(deckName string) string {
	return "holecard.secret-key." + deckName
}

func SessionKeyAccount(deckName string) string {
	return "holecard.session-key." + deckName
}

// BiometricAccount is reserved for the macOS biometric master-password cache.
// Nothing in the core writes it; the schema is fixed here so external
// collaborators agree on the slot.
func BiometricAccount(deckName string) string {
	return "holecard.biometric-master." + deckName
}

// Store presents the platform credential store as a keyed byte-string map.
// Platform "not found" maps to ErrNotFound; every other backend failure maps
// to ErrKeyringDenied so callers can treat the store as an unreliable remote
// service.
type Store struct {
	ring keyring.Keyring
}

// Open connects to the platform credential store (Keychain, Secret Service,
// wincred, ... whichever backend the host provides).
func Open() (*Store, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", herrors.ErrKeyringDenied, err)
	}

	return &Store{ring: ring}, nil
}

// NewWithKeyring wraps an existing keyring backend. Tests pass
// keyring.NewArrayKeyring to run against an in-memory store.
func NewWithKeyring(ring keyring.Keyring) *Store {
	return &Store{ring: ring}
}

func (s *Store) Get(account string) ([]byte, error) {
	item, err := s.ring.Get(account)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return nil, fmt.Errorf("credential %q: %w", account, herrors.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: %v", herrors.ErrKeyringDenied, err)
	}

	return item.Data, nil
}

func (s *Store) Set(account string, data []byte) error {
	err := s.ring.Set(keyring.Item{
		Key:   account,
		Data:  data,
		Label: "holecard: " + account,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", herrors.ErrKeyringDenied, err)
	}

	return nil
}

func (s *Store) Delete(account string) error {
	err := s.ring.Remove(account)
	if err != nil {
		if errors.Is(err, keyring.ErrKeyNotFound) {
			return fmt.Errorf("credential %q: %w", account, herrors.ErrNotFound)
		}
		return fmt.Errorf("%w: %v", herrors.ErrKeyringDenied, err)
	}

	return nil
}

func (s *Store) Exists(account string) (bool, error) {
	_, err := s.Get(account)
	if err != nil {
		if errors.Is(err, herrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
