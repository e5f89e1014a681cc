package workflows

import (
	"context"
	"errors"

	"github.com/PolarWolf314/holecard/internal/audit"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/registry"
)

// AddDeckOptions configures deck registration.
type AddDeckOptions struct {
	// Name is the registry name; Path is the deck file location. The file
	// may be an existing deck from another machine.
	Name string
	Path string
}

// AddDeck registers an existing deck file under a name. The first registered
// deck becomes active.
func AddDeck(ctx context.Context, dc *DeckContext, opts AddDeckOptions) error {
	if err := dc.Registry.Add(opts.Name, opts.Path); err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "deck-add", Deck: opts.Name})
	return nil
}

// RemoveDeckOptions configures deck removal.
type RemoveDeckOptions struct {
	// Name is the registry name to forget.
	Name string
}

// RemoveDeck forgets a deck. Only the registry entry goes away: the deck
// file and its credential-store entries survive, so removal is recoverable.
// Any session for the deck is locked.
func RemoveDeck(ctx context.Context, dc *DeckContext, opts RemoveDeckOptions) error {
	if err := dc.Registry.Remove(opts.Name); err != nil {
		return err
	}

	if err := dc.Sessions.Lock(opts.Name); err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "deck-remove", Deck: opts.Name})
	return nil
}

// ListDecks returns every registered deck.
func ListDecks(ctx context.Context, dc *DeckContext) ([]registry.DeckInfo, error) {
	return dc.Registry.List()
}

// UseDeckOptions configures the active-deck switch.
type UseDeckOptions struct {
	// Name is the deck to activate.
	Name string
}

// UseDeck switches the active deck and invalidates the previous deck's
// session, so a later switch back starts locked.
func UseDeck(ctx context.Context, dc *DeckContext, opts UseDeckOptions) error {
	previous, err := dc.Registry.Active()
	if err != nil && !errors.Is(err, herrors.ErrNotFound) {
		return err
	}

	if err := dc.Registry.SetActive(opts.Name); err != nil {
		return err
	}

	if previous.Name != "" && previous.Name != opts.Name {
		if err := dc.Sessions.Lock(previous.Name); err != nil {
			return err
		}
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "deck-use", Deck: opts.Name})
	return nil
}
