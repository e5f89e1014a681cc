package workflows

import (
	"errors"
	"fmt"

	"github.com/PolarWolf314/holecard/internal/configs"
	"github.com/PolarWolf314/holecard/internal/credstore"
	"github.com/PolarWolf314/holecard/internal/crypto"
	"github.com/PolarWolf314/holecard/internal/deck"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	logger "github.com/PolarWolf314/holecard/internal/logging"
	"github.com/PolarWolf314/holecard/internal/registry"
	"github.com/PolarWolf314/holecard/internal/session"
	"github.com/PolarWolf314/holecard/internal/storage"
)

// PasswordFunc supplies the master password on demand, typically by
// prompting. Read operations invoke it only when no live session can satisfy
// them, so read paths with a warm session never prompt. Mutating operations
// always invoke it, because every write derives a fresh key under a new salt.
type PasswordFunc func() (string, error)

// StaticPassword wraps an already-known password as a PasswordFunc.
func StaticPassword(password string) PasswordFunc {
	return func() (string, error) { return password, nil }
}

// DeckContext binds together the configuration, the deck registry, the
// credential store, and the session manager. It mediates every operation
// that touches deck contents; nothing else decrypts or persists decks.
type DeckContext struct {
	Dir      string
	Config   *configs.Config
	Registry *registry.Registry
	Store    *credstore.Store
	Sessions *session.Manager
	Logger   logger.Logger
}

// NewDeckContext loads the configuration under dir and wires up the
// collaborating components.
func NewDeckContext(dir string, store *credstore.Store, log logger.Logger) (*DeckContext, error) {
	config, err := configs.Load(dir)
	if err != nil {
		return nil, err
	}

	return &DeckContext{
		Dir:      dir,
		Config:   config,
		Registry: registry.New(dir),
		Store:    store,
		Sessions: session.NewManager(dir, store, config.SessionTimeout()),
		Logger:   log,
	}, nil
}

// secretKey fetches a deck's machine-bound secret key from the credential
// store.
func (dc *DeckContext) secretKey(deckName string) (string, error) {
	data, err := dc.Store.Get(credstore.SecretKeyAccount(deckName))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadActive resolves the active deck and returns its decrypted contents.
// A live session is tried first; otherwise the password function is invoked
// and a successful unlock starts a fresh session.
func (dc *DeckContext) loadActive(password PasswordFunc) (*deck.Deck, registry.DeckInfo, error) {
	info, err := dc.Registry.Active()
	if err != nil {
		return nil, registry.DeckInfo{}, err
	}
	log := dc.Logger.WithDeck(info.Name)

	data, err := storage.Read(info.Path, log)
	if err != nil {
		return nil, info, err
	}

	if key, err := dc.Sessions.Resume(info.Name); err != nil {
		return nil, info, err
	} else if key != nil {
		d, derr := deck.DecodeWithKey(data, key)
		crypto.Wipe(key)
		if derr == nil {
			dc.touch(info.Name)
			return d, info, nil
		}
		if !errors.Is(derr, herrors.ErrAuthenticationFailed) {
			return nil, info, derr
		}
		// The cached key no longer opens the file (the deck was rewritten
		// behind our back); drop the session and fall back to the password.
		log.Debugf("cached session key is stale, re-prompting")
		if lerr := dc.Sessions.Lock(info.Name); lerr != nil {
			return nil, info, lerr
		}
	}

	d, key, err := dc.unlock(info, data, password)
	if err != nil {
		return nil, info, err
	}
	crypto.Wipe(key)

	dc.touch(info.Name)
	return d, info, nil
}

// unlock derives the key from the supplied password, verifies it against the
// deck file, and caches it under a fresh session. The returned key is still
// live; the caller wipes it.
func (dc *DeckContext) unlock(info registry.DeckInfo, data []byte, password PasswordFunc) (*deck.Deck, []byte, error) {
	secret, err := dc.secretKey(info.Name)
	if err != nil {
		return nil, nil, err
	}

	pw, err := password()
	if err != nil {
		return nil, nil, err
	}

	d, key, err := deck.Decode(data, pw, secret)
	if err != nil {
		return nil, nil, err
	}

	if err := dc.Sessions.Unlock(info.Name, key); err != nil {
		dc.Logger.WithDeck(info.Name).Warnf("could not cache session key: %v", err)
	}

	return d, key, nil
}

// mutateActive applies fn to the active deck under the file lock and
// persists the result atomically. Mutations always derive from the master
// password: every write samples a fresh KDF salt, so the working key changes
// with each write and the session is re-unlocked with the new key.
func (dc *DeckContext) mutateActive(password PasswordFunc, fn func(*deck.Deck) error) (registry.DeckInfo, error) {
	info, err := dc.Registry.Active()
	if err != nil {
		return registry.DeckInfo{}, err
	}
	log := dc.Logger.WithDeck(info.Name)

	release, err := storage.Lock(info.Path)
	if err != nil {
		return info, err
	}
	defer release()

	data, err := storage.Read(info.Path, log)
	if err != nil {
		return info, err
	}

	secret, err := dc.secretKey(info.Name)
	if err != nil {
		return info, err
	}

	pw, err := password()
	if err != nil {
		return info, err
	}

	d, oldKey, err := deck.Decode(data, pw, secret)
	if err != nil {
		return info, err
	}
	crypto.Wipe(oldKey)

	if err := fn(d); err != nil {
		return info, err
	}

	d.Revision++
	envelope, newKey, err := deck.Encode(d, pw, secret)
	if err != nil {
		return info, err
	}

	if err := storage.WriteAtomic(info.Path, envelope); err != nil {
		crypto.Wipe(newKey)
		return info, err
	}

	// The write succeeded; a failure to refresh the session cache only costs
	// the next read a prompt.
	if err := dc.Sessions.Unlock(info.Name, newKey); err != nil {
		log.Warnf("could not refresh session key: %v", err)
		_ = dc.Sessions.Lock(info.Name)
	}
	crypto.Wipe(newKey)

	dc.touch(info.Name)
	return info, nil
}

func (dc *DeckContext) touch(deckName string) {
	if err := dc.Registry.Touch(deckName); err != nil {
		dc.Logger.WithDeck(deckName).Debugf("could not update last-access: %v", err)
	}
}

// requireNonEmptyPassword enforces the init-time precondition.
func requireNonEmptyPassword(pw string) error {
	if pw == "" {
		return fmt.Errorf("%w: master password must not be empty", herrors.ErrInvalidInput)
	}
	return nil
}
