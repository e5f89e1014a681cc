package workflows

import (
	"context"

	"github.com/PolarWolf314/holecard/internal/audit"
	"github.com/PolarWolf314/holecard/internal/deck"
)

// HandPutOptions configures the hand-put workflow.
type HandPutOptions struct {
	// Name identifies the hand within the active deck.
	Name string

	// Cards replaces the hand's cards. May be empty.
	Cards map[string]string

	// Password supplies the master password.
	Password PasswordFunc
}

// HandPut creates or replaces a hand in the active deck.
func HandPut(ctx context.Context, dc *DeckContext, opts HandPutOptions) error {
	info, err := dc.mutateActive(opts.Password, func(d *deck.Deck) error {
		return d.PutHand(opts.Name, opts.Cards)
	})
	if err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "hand-put", Deck: info.Name, Hand: opts.Name})
	return nil
}

// HandGetOptions configures the hand-get workflow.
type HandGetOptions struct {
	// Name identifies the hand within the active deck.
	Name string

	// Password supplies the master password when no session is live.
	Password PasswordFunc
}

// HandGetResult is a decrypted hand.
type HandGetResult struct {
	Name string
	Hand *deck.Hand
}

// HandGet returns a hand from the active deck. Returns ErrNotFound when no
// hand carries the name.
func HandGet(ctx context.Context, dc *DeckContext, opts HandGetOptions) (*HandGetResult, error) {
	d, _, err := dc.loadActive(opts.Password)
	if err != nil {
		return nil, err
	}

	hand, err := d.Hand(opts.Name)
	if err != nil {
		return nil, err
	}

	return &HandGetResult{Name: opts.Name, Hand: hand}, nil
}

// HandListOptions configures the hand-list workflow.
type HandListOptions struct {
	// Password supplies the master password when no session is live.
	Password PasswordFunc
}

// HandList returns the active deck's hand names in sorted order.
func HandList(ctx context.Context, dc *DeckContext, opts HandListOptions) ([]string, error) {
	d, _, err := dc.loadActive(opts.Password)
	if err != nil {
		return nil, err
	}

	return d.HandNames(), nil
}

// HandDeleteOptions configures the hand-delete workflow.
type HandDeleteOptions struct {
	// Name identifies the hand within the active deck.
	Name string

	// Password supplies the master password.
	Password PasswordFunc
}

// HandDelete removes a hand from the active deck.
func HandDelete(ctx context.Context, dc *DeckContext, opts HandDeleteOptions) error {
	info, err := dc.mutateActive(opts.Password, func(d *deck.Deck) error {
		return d.DeleteHand(opts.Name)
	})
	if err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "hand-delete", Deck: info.Name, Hand: opts.Name})
	return nil
}
