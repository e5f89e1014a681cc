package workflows

import (
	"context"

	"github.com/PolarWolf314/holecard/internal/audit"
	"github.com/PolarWolf314/holecard/internal/crypto"
	"github.com/PolarWolf314/holecard/internal/deck"
	"github.com/PolarWolf314/holecard/internal/storage"
)

// ChangeMasterPasswordOptions configures the password-change workflow.
type ChangeMasterPasswordOptions struct {
	// Old is the current master password; New replaces it.
	Old string
	New string
}

// ChangeMasterPassword re-encrypts the active deck under the new password
// with a fresh KDF salt and rotates the session, so the next operation must
// unlock with the new password. The stored hands are untouched.
func ChangeMasterPassword(ctx context.Context, dc *DeckContext, opts ChangeMasterPasswordOptions) error {
	if err := requireNonEmptyPassword(opts.New); err != nil {
		return err
	}

	info, err := dc.Registry.Active()
	if err != nil {
		return err
	}

	release, err := storage.Lock(info.Path)
	if err != nil {
		return err
	}
	defer release()

	data, err := storage.Read(info.Path, dc.Logger.WithDeck(info.Name))
	if err != nil {
		return err
	}

	secret, err := dc.secretKey(info.Name)
	if err != nil {
		return err
	}

	// Decoding under the old password doubles as its verification.
	d, oldKey, err := deck.Decode(data, opts.Old, secret)
	if err != nil {
		return err
	}
	crypto.Wipe(oldKey)

	d.Revision++
	envelope, newKey, err := deck.Encode(d, opts.New, secret)
	if err != nil {
		return err
	}
	crypto.Wipe(newKey)

	if err := storage.WriteAtomic(info.Path, envelope); err != nil {
		return err
	}

	if err := dc.Sessions.Rotate(info.Name); err != nil {
		return err
	}

	dc.touch(info.Name)
	audit.Log(dc.Dir, audit.Entry{Operation: "passwd", Deck: info.Name})
	return nil
}
