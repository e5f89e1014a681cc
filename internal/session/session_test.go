package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/holecard/internal/credstore"
	"github.com/PolarWolf314/holecard/internal/crypto"
)

func newTestManager(t *testing.T, timeout time.Duration) (*Manager, *credstore.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := credstore.NewWithKeyring(keyring.NewArrayKeyring(nil))
	return NewManager(dir, store, timeout), store, dir
}

func testKey(t *testing.T) []byte {
	t.Helper()
	key, err := crypto.Random(crypto.KeySize)
	require.NoError(t, err)
	return key
}

func TestUnlockResume(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)
	key := testKey(t)

	require.NoError(t, m.Unlock("default", key))

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Equal(t, key, resumed)
}

func TestResume_NoSession(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestResume_OtherDeck(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)
	require.NoError(t, m.Unlock("work", testKey(t)))

	resumed, err := m.Resume("personal")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestResume_ExpiryBoundary(t *testing.T) {
	m, store, _ := newTestManager(t, time.Minute)

	base := time.Now().UTC()
	m.SetClock(func() time.Time { return base })
	require.NoError(t, m.Unlock("default", testKey(t)))

	// Just before the deadline the key is returned.
	m.SetClock(func() time.Time { return base.Add(time.Minute - time.Second) })
	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.NotNil(t, resumed)

	// At and past the deadline the session is gone and the credential-store
	// entry has been removed.
	m.SetClock(func() time.Time { return base.Add(time.Minute + time.Second) })
	resumed, err = m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)

	exists, err := store.Exists(credstore.SessionKeyAccount("default"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestResume_DoesNotExtendExpiry(t *testing.T) {
	m, _, _ := newTestManager(t, time.Minute)

	base := time.Now().UTC()
	m.SetClock(func() time.Time { return base })
	require.NoError(t, m.Unlock("default", testKey(t)))

	// A read at T+30s must not slide the absolute deadline.
	m.SetClock(func() time.Time { return base.Add(30 * time.Second) })
	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.NotNil(t, resumed)

	m.SetClock(func() time.Time { return base.Add(61 * time.Second) })
	resumed, err = m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestResume_TouchesLastAccess(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)

	base := time.Now().UTC()
	m.SetClock(func() time.Time { return base })
	require.NoError(t, m.Unlock("default", testKey(t)))

	m.SetClock(func() time.Time { return base.Add(10 * time.Minute) })
	_, err := m.Resume("default")
	require.NoError(t, err)

	info := m.Status("default")
	assert.True(t, info.Unlocked)
	assert.WithinDuration(t, base.Add(10*time.Minute), info.LastAccessAt, time.Second)
	assert.WithinDuration(t, base.Add(time.Hour), info.ExpiresAt, time.Second)
}

func TestLock_Idempotent(t *testing.T) {
	m, store, _ := newTestManager(t, time.Hour)
	require.NoError(t, m.Unlock("default", testKey(t)))

	require.NoError(t, m.Lock("default"))
	require.NoError(t, m.Lock("default"))

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)

	exists, err := store.Exists(credstore.SessionKeyAccount("default"))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLock_LeavesOtherDecksSidecar(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)
	require.NoError(t, m.Unlock("work", testKey(t)))

	// Locking a deck that never unlocked must not tear down work's session.
	require.NoError(t, m.Lock("personal"))

	resumed, err := m.Resume("work")
	require.NoError(t, err)
	assert.NotNil(t, resumed)
}

func TestRotate(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)
	require.NoError(t, m.Unlock("default", testKey(t)))

	require.NoError(t, m.Rotate("default"))

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestResume_SessionIDMismatch(t *testing.T) {
	m, store, _ := newTestManager(t, time.Hour)
	key := testKey(t)
	require.NoError(t, m.Unlock("default", key))

	// Replace the credential-store entry with one minted under a different
	// session id; the sidecar no longer matches.
	other := NewManager(t.TempDir(), store, time.Hour)
	require.NoError(t, other.Unlock("default", key))
	require.NoError(t, m.writeSidecarForTest(t))

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

// writeSidecarForTest rewrites the sidecar with a fresh session id that can
// never match the credential-store entry.
func (m *Manager) writeSidecarForTest(t *testing.T) error {
	t.Helper()
	sc, ok := m.readSidecar()
	if !ok {
		sc = sidecar{DeckName: "default", CreatedAt: m.now().UTC(), LastAccessAt: m.now().UTC(), ExpiresAt: m.now().UTC().Add(time.Hour)}
	}
	sc.SessionID = "00000000000000000000000000000000"
	return m.writeSidecar(sc)
}

func TestResume_MalformedSidecar(t *testing.T) {
	m, _, dir := newTestManager(t, time.Hour)
	require.NoError(t, m.Unlock("default", testKey(t)))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "session.json"), []byte("{not json"), 0o600))

	resumed, err := m.Resume("default")
	require.NoError(t, err)
	assert.Nil(t, resumed)
}

func TestStatus_Locked(t *testing.T) {
	m, _, _ := newTestManager(t, time.Hour)

	info := m.Status("default")
	assert.False(t, info.Unlocked)
	assert.Equal(t, "default", info.DeckName)
}

func TestSidecar_HoldsNoKeyMaterial(t *testing.T) {
	m, _, dir := newTestManager(t, time.Hour)
	key := testKey(t)
	require.NoError(t, m.Unlock("default", key))

	data, err := os.ReadFile(filepath.Join(dir, "session.json"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), string(key))

	for _, field := range []string{"session_id", "created_at", "last_access_at", "expires_at", "deck_name"} {
		assert.Contains(t, string(data), field)
	}
}
