package credstore

import (
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

func newTestStore() *Store {
	return NewWithKeyring(keyring.NewArrayKeyring(nil))
}

func TestAccounts(t *testing.T) {
	assert.Equal(t, "holecard.secret-key.work", SecretKeyAccount("work"))
	assert.Equal(t, "holecard.session-key.work", SessionKeyAccount("work"))
	assert.Equal(t, "holecard.biometric-master.work", BiometricAccount("work"))
}

func TestSetGetDelete(t *testing.T) {
	store := newTestStore()
	account := SecretKeyAccount("default")

	require.NoError(t, store.Set(account, []byte("A3-TEST")))

	data, err := store.Get(account)
	require.NoError(t, err)
	assert.Equal(t, []byte("A3-TEST"), data)

	require.NoError(t, store.Delete(account))

	_, err = store.Get(account)
	assert.ErrorIs(t, err, herrors.ErrNotFound)
}

func TestGet_Missing(t *testing.T) {
	store := newTestStore()

	_, err := store.Get(SecretKeyAccount("ghost"))
	assert.ErrorIs(t, err, herrors.ErrNotFound)
}

func TestExists(t *testing.T) {
	store := newTestStore()
	account := SessionKeyAccount("default")

	exists, err := store.Exists(account)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, store.Set(account, []byte("key")))

	exists, err = store.Exists(account)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestSet_Overwrite(t *testing.T) {
	store := newTestStore()
	account := SecretKeyAccount("default")

	require.NoError(t, store.Set(account, []byte("old")))
	require.NoError(t, store.Set(account, []byte("new")))

	data, err := store.Get(account)
	require.NoError(t, err)
	assert.Equal(t, []byte("new"), data)
}
