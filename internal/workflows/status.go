package workflows

import (
	"context"
	"errors"
	"time"

	"github.com/PolarWolf314/holecard/internal/audit"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/storage"
)

// StatusResult describes the active deck and its session.
type StatusResult struct {
	// ActiveDeck is the active deck's registry name; empty when no deck is
	// registered.
	ActiveDeck string

	// Path is the active deck's file location.
	Path string

	// Initialized reports whether the deck file exists.
	Initialized bool

	// Unlocked reports whether a live session exists.
	Unlocked bool

	// Session timing, populated only when Unlocked.
	ExpiresAt    time.Time
	LastAccessAt time.Time
}

// Status reports the active deck and whether its session is live. It never
// prompts and never touches last_access_at.
func Status(ctx context.Context, dc *DeckContext) (*StatusResult, error) {
	info, err := dc.Registry.Active()
	if err != nil {
		if errors.Is(err, herrors.ErrNotFound) {
			return &StatusResult{}, nil
		}
		return nil, err
	}

	result := &StatusResult{ActiveDeck: info.Name, Path: info.Path}

	exists, err := storage.Exists(info.Path)
	if err != nil {
		return nil, err
	}
	result.Initialized = exists

	session := dc.Sessions.Status(info.Name)
	result.Unlocked = session.Unlocked
	if session.Unlocked {
		result.ExpiresAt = session.ExpiresAt
		result.LastAccessAt = session.LastAccessAt
	}

	return result, nil
}

// Lock destroys the active deck's session. Idempotent; locking a deck with
// no session succeeds quietly.
func Lock(ctx context.Context, dc *DeckContext) error {
	info, err := dc.Registry.Active()
	if err != nil {
		if errors.Is(err, herrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := dc.Sessions.Lock(info.Name); err != nil {
		return err
	}

	audit.Log(dc.Dir, audit.Entry{Operation: "lock", Deck: info.Name})
	return nil
}
