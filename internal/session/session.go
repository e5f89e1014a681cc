package session

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/holecard/internal/credstore"
	"github.com/PolarWolf314/holecard/internal/crypto"
)

const sidecarName = "session.json"

// sidecar is the on-disk session metadata. It carries no secret material:
// the derived key lives only in the credential store.
type sidecar struct {
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastAccessAt time.Time `json:"last_access_at"`
	ExpiresAt    time.Time `json:"expires_at"`
	DeckName     string    `json:"deck_name"`
}

// Info is the session state surfaced by status.
type Info struct {
	DeckName     string
	Unlocked     bool
	CreatedAt    time.Time
	LastAccessAt time.Time
	ExpiresAt    time.Time
}

// Manager owns the session lifecycle for cached derived keys: the sidecar
// file and the session-key credential-store slot are written by nothing
// else. A deck is either Locked or Unlocked; there are no other states.
type Manager struct {
	dir     string
	store   *credstore.Store
	timeout time.Duration
	now     func() time.Time
}

// NewManager creates a session manager rooted at the config directory.
func NewManager(dir string, store *credstore.Store, timeout time.Duration) *Manager {
	return &Manager{
		dir:     dir,
		store:   store,
		timeout: timeout,
		now:     time.Now,
	}
}

// SetClock overrides the manager's time source. Tests use it to cross the
// expiry boundary without sleeping.
func (m *Manager) SetClock(now func() time.Time) {
	m.now = now
}

func (m *Manager) sidecarPath() string {
	return filepath.Join(m.dir, sidecarName)
}

// Unlock caches a freshly derived key under a new session. The session gets
// an absolute deadline of now + timeout; reads never extend it.
func (m *Manager) Unlock(deckName string, key []byte) error {
	id := uuid.New()
	sessionID := hex.EncodeToString(id[:])

	value := sessionID + ":" + base64.StdEncoding.EncodeToString(key)
	if err := m.store.Set(credstore.SessionKeyAccount(deckName), []byte(value)); err != nil {
		return err
	}

	now := m.now().UTC()
	sc := sidecar{
		SessionID:    sessionID,
		CreatedAt:    now,
		LastAccessAt: now,
		ExpiresAt:    now.Add(m.timeout),
		DeckName:     deckName,
	}

	return m.writeSidecar(sc)
}

// Resume returns the cached derived key for deckName, or nil when no live
// session exists. A session is live only when the sidecar is present and
// well-formed for this deck, its deadline is in the future, and the
// credential store holds a key under a matching session id. An expired
// session is locked on sight. Credential-store refusal degrades to "no
// session" so the caller falls back to a password prompt.
func (m *Manager) Resume(deckName string) ([]byte, error) {
	sc, ok := m.readSidecar()
	if !ok || sc.DeckName != deckName {
		return nil, nil
	}

	if !m.now().UTC().Before(sc.ExpiresAt) {
		if err := m.Lock(deckName); err != nil {
			return nil, err
		}
		return nil, nil
	}

	value, err := m.store.Get(credstore.SessionKeyAccount(deckName))
	if err != nil {
		// Missing entry and a refusing keyring both force a re-prompt.
		return nil, nil
	}

	sessionID, key, ok := splitSessionValue(value)
	if !ok || !crypto.ConstantTimeEqual([]byte(sessionID), []byte(sc.SessionID)) {
		crypto.Wipe(key)
		if err := m.Lock(deckName); err != nil {
			return nil, err
		}
		return nil, nil
	}

	sc.LastAccessAt = m.now().UTC()
	if err := m.writeSidecar(sc); err != nil {
		crypto.Wipe(key)
		return nil, err
	}

	return key, nil
}

// Lock destroys the session for deckName: the credential-store entry and,
// when it belongs to this deck, the sidecar. Idempotent.
func (m *Manager) Lock(deckName string) error {
	// Best effort on the credential store; a missing entry is already locked.
	_ = m.store.Delete(credstore.SessionKeyAccount(deckName))

	if sc, ok := m.readSidecar(); ok && sc.DeckName != deckName {
		return nil
	}

	if err := os.Remove(m.sidecarPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session sidecar: %w", err)
	}

	return nil
}

// Rotate invalidates the session after the master password changed or the
// deck was re-initialised. The next operation must unlock again.
func (m *Manager) Rotate(deckName string) error {
	return m.Lock(deckName)
}

// Status reports whether a live session exists for deckName without touching
// last_access_at.
func (m *Manager) Status(deckName string) Info {
	info := Info{DeckName: deckName}

	sc, ok := m.readSidecar()
	if !ok || sc.DeckName != deckName {
		return info
	}
	if !m.now().UTC().Before(sc.ExpiresAt) {
		return info
	}

	value, err := m.store.Get(credstore.SessionKeyAccount(deckName))
	if err != nil {
		return info
	}
	sessionID, key, ok := splitSessionValue(value)
	crypto.Wipe(key)
	if !ok || sessionID != sc.SessionID {
		return info
	}

	info.Unlocked = true
	info.CreatedAt = sc.CreatedAt
	info.LastAccessAt = sc.LastAccessAt
	info.ExpiresAt = sc.ExpiresAt
	return info
}

func (m *Manager) writeSidecar(sc sidecar) error {
	data, err := json.Marshal(sc)
	if err != nil {
		return fmt.Errorf("serializing session sidecar: %w", err)
	}

	if err := os.MkdirAll(m.dir, 0o700); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(m.sidecarPath(), data, 0o600); err != nil {
		return fmt.Errorf("writing session sidecar: %w", err)
	}

	return nil
}

// readSidecar returns ok=false for a missing or malformed sidecar; both mean
// "no session" rather than an error.
func (m *Manager) readSidecar() (sidecar, bool) {
	data, err := os.ReadFile(m.sidecarPath())
	if err != nil {
		return sidecar{}, false
	}

	var sc sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return sidecar{}, false
	}
	if sc.SessionID == "" || sc.DeckName == "" || sc.ExpiresAt.IsZero() {
		return sidecar{}, false
	}

	return sc, true
}

func splitSessionValue(value []byte) (sessionID string, key []byte, ok bool) {
	idx := bytes.IndexByte(value, ':')
	if idx < 0 {
		return "", nil, false
	}

	key, err := base64.StdEncoding.DecodeString(string(value[idx+1:]))
	if err != nil || len(key) != crypto.KeySize {
		return "", nil, false
	}

	return string(value[:idx]), key, true
}
