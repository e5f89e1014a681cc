package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/holecard/internal/audit"
	"github.com/PolarWolf314/holecard/internal/credstore"
	"github.com/PolarWolf314/holecard/internal/crypto"
	"github.com/PolarWolf314/holecard/internal/deck"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/storage"
)

// InitOptions configures the init workflow.
type InitOptions struct {
	// DeckName is the registry name for the new deck. Defaults to "default".
	DeckName string

	// Path is the deck file location. Defaults to the configured
	// default-deck-path.
	Path string

	// Password supplies the master password.
	Password PasswordFunc

	// Force re-initializes over an existing deck file, destroying its
	// contents and minting a fresh secret key.
	Force bool
}

// InitResult contains the outcome of an init operation.
type InitResult struct {
	// DeckName is the registry name of the new deck.
	DeckName string

	// Path is the deck file location.
	Path string

	// SecretKey is the freshly generated secret key in presentation form.
	// It is shown to the user exactly once; afterwards it lives only in the
	// credential store.
	SecretKey string
}

// Init creates a new encrypted deck, generates its secret key, stores the
// key in the credential store, registers the deck, and opens a session.
//
// The new deck starts with an empty totp hand. Returns ErrAlreadyInitialized
// if the deck file exists and Force is not set.
func Init(ctx context.Context, dc *DeckContext, opts InitOptions) (*InitResult, error) {
	deckName := opts.DeckName
	if deckName == "" {
		deckName = "default"
	}
	path := opts.Path
	if path == "" {
		path = dc.Config.DefaultDeckPath
	}

	exists, err := storage.Exists(path)
	if err != nil {
		return nil, err
	}
	if exists && !opts.Force {
		return nil, herrors.ErrAlreadyInitialized
	}

	pw, err := opts.Password()
	if err != nil {
		return nil, err
	}
	if err := requireNonEmptyPassword(pw); err != nil {
		return nil, err
	}

	secretKey, err := crypto.GenerateSecretKey()
	if err != nil {
		return nil, err
	}

	d := deck.New()
	if err := d.PutHand(deck.TOTPHand, nil); err != nil {
		return nil, err
	}
	d.Revision = 1

	envelope, key, err := deck.Encode(d, pw, secretKey)
	if err != nil {
		return nil, err
	}

	release, err := storage.Lock(path)
	if err != nil {
		crypto.Wipe(key)
		return nil, err
	}
	defer release()

	if err := storage.WriteAtomic(path, envelope); err != nil {
		crypto.Wipe(key)
		return nil, err
	}

	if err := dc.Store.Set(credstore.SecretKeyAccount(deckName), []byte(secretKey)); err != nil {
		crypto.Wipe(key)
		return nil, err
	}

	if err := dc.Registry.Add(deckName, path); err != nil {
		// A forced re-init keeps the existing registry entry.
		if !(opts.Force && errors.Is(err, herrors.ErrInvalidInput)) {
			crypto.Wipe(key)
			return nil, err
		}
	}

	// Any session minted for a previous deck under this name is void.
	if err := dc.Sessions.Rotate(deckName); err != nil {
		crypto.Wipe(key)
		return nil, err
	}
	if err := dc.Sessions.Unlock(deckName, key); err != nil {
		dc.Logger.Warnf("could not cache session key: %v", err)
	}
	crypto.Wipe(key)

	audit.Log(dc.Dir, audit.Entry{Operation: "init", Deck: deckName})

	return &InitResult{
		DeckName:  deckName,
		Path:      path,
		SecretKey: secretKey,
	}, nil
}
