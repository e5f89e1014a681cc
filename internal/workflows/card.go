package workflows

import (
	"context"

	"github.com/PolarWolf314/holecard/internal/audit"
	"github.com/PolarWolf314/holecard/internal/deck"
)

// CardSetOptions configures the card-set workflow.
type CardSetOptions struct {
	// Hand identifies the hand; it is created when absent.
	Hand string

	// Key and Value are the card to set.
	Key   string
	Value string

	// Password supplies the master password.
	Password PasswordFunc
}

// CardSet sets one card on a hand in the active deck, creating the hand if
// needed.
func CardSet(ctx context.Context, dc *DeckContext, opts CardSetOptions) error {
	info, err := dc.mutateActive(opts.Password, func(d *deck.Deck) error {
		return d.SetCard(opts.Hand, opts.Key, opts.Value)
	})
	if err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "card-set", Deck: info.Name, Hand: opts.Hand, Card: opts.Key})
	return nil
}

// CardGetOptions configures the card-get workflow.
type CardGetOptions struct {
	// Hand and Key identify the card.
	Hand string
	Key  string

	// Password supplies the master password when no session is live.
	Password PasswordFunc
}

// CardGet returns one card value from the active deck. The value is secret
// material; the caller owns its further handling.
func CardGet(ctx context.Context, dc *DeckContext, opts CardGetOptions) (string, error) {
	d, _, err := dc.loadActive(opts.Password)
	if err != nil {
		return "", err
	}

	return d.Card(opts.Hand, opts.Key)
}

// CardDeleteOptions configures the card-delete workflow.
type CardDeleteOptions struct {
	// Hand and Key identify the card.
	Hand string
	Key  string

	// Password supplies the master password.
	Password PasswordFunc
}

// CardDelete removes one card from a hand in the active deck.
func CardDelete(ctx context.Context, dc *DeckContext, opts CardDeleteOptions) error {
	info, err := dc.mutateActive(opts.Password, func(d *deck.Deck) error {
		return d.DeleteCard(opts.Hand, opts.Key)
	})
	if err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "card-delete", Deck: info.Name, Hand: opts.Hand, Card: opts.Key})
	return nil
}
