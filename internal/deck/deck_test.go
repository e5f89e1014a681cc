package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

func TestPutHand_And_Hand(t *testing.T) {
	d := New()

	require.NoError(t, d.PutHand("github", map[string]string{"user": "alice"}))

	hand, err := d.Hand("github")
	require.NoError(t, err)
	assert.Equal(t, "alice", hand.Cards["user"])
	assert.False(t, hand.CreatedAt.IsZero())
	assert.False(t, hand.UpdatedAt.IsZero())
}

func TestPutHand_ReplaceKeepsCreatedAt(t *testing.T) {
	d := New()
	require.NoError(t, d.PutHand("github", map[string]string{"user": "alice"}))

	original, err := d.Hand("github")
	require.NoError(t, err)
	createdAt := original.CreatedAt

	require.NoError(t, d.PutHand("github", map[string]string{"user": "bob"}))

	replaced, err := d.Hand("github")
	require.NoError(t, err)
	assert.Equal(t, "bob", replaced.Cards["user"])
	assert.Equal(t, createdAt, replaced.CreatedAt)
}

func TestPutHand_EmptyName(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.PutHand("", nil), herrors.ErrInvalidInput)
}

func TestHand_NotFound(t *testing.T) {
	d := New()
	_, err := d.Hand("missing")
	assert.ErrorIs(t, err, herrors.ErrNotFound)
}

func TestDeleteHand(t *testing.T) {
	d := New()
	require.NoError(t, d.PutHand("github", nil))

	require.NoError(t, d.DeleteHand("github"))
	_, err := d.Hand("github")
	assert.ErrorIs(t, err, herrors.ErrNotFound)

	assert.ErrorIs(t, d.DeleteHand("github"), herrors.ErrNotFound)
}

func TestHandNames_Sorted(t *testing.T) {
	d := New()
	for _, name := range []string{"zulu", "alpha", "mike"} {
		require.NoError(t, d.PutHand(name, nil))
	}

	assert.Equal(t, []string{"alpha", "mike", "zulu"}, d.HandNames())
}

func TestSetCard_CreatesHand(t *testing.T) {
	d := New()

	require.NoError(t, d.SetCard("github", "password", "p@ss"))

	value, err := d.Card("github", "password")
	require.NoError(t, err)
	assert.Equal(t, "p@ss", value)
}

func TestSetCard_EmptyNames(t *testing.T) {
	d := New()
	assert.ErrorIs(t, d.SetCard("", "k", "v"), herrors.ErrInvalidInput)
	assert.ErrorIs(t, d.SetCard("h", "", "v"), herrors.ErrInvalidInput)
}

func TestCard_NotFound(t *testing.T) {
	d := New()
	require.NoError(t, d.PutHand("github", nil))

	_, err := d.Card("github", "missing")
	assert.ErrorIs(t, err, herrors.ErrNotFound)

	_, err = d.Card("missing", "any")
	assert.ErrorIs(t, err, herrors.ErrNotFound)
}

func TestDeleteCard(t *testing.T) {
	d := New()
	require.NoError(t, d.SetCard("github", "password", "p@ss"))

	require.NoError(t, d.DeleteCard("github", "password"))
	_, err := d.Card("github", "password")
	assert.ErrorIs(t, err, herrors.ErrNotFound)

	assert.ErrorIs(t, d.DeleteCard("github", "password"), herrors.ErrNotFound)
}

func TestCardNames_CaseSensitive(t *testing.T) {
	d := New()
	require.NoError(t, d.SetCard("github", "Token", "a"))
	require.NoError(t, d.SetCard("github", "token", "b"))

	hand, err := d.Hand("github")
	require.NoError(t, err)
	assert.Equal(t, []string{"Token", "token"}, hand.CardNames())
}

func TestImportHand(t *testing.T) {
	d := New()
	require.NoError(t, d.PutHand("github", map[string]string{"user": "alice"}))

	incoming := NewHand(map[string]string{"user": "bob"})

	// Collision without overwrite is skipped.
	assert.False(t, d.ImportHand("github", incoming, false))
	value, err := d.Card("github", "user")
	require.NoError(t, err)
	assert.Equal(t, "alice", value)

	// Collision with overwrite replaces.
	assert.True(t, d.ImportHand("github", incoming, true))
	value, err = d.Card("github", "user")
	require.NoError(t, err)
	assert.Equal(t, "bob", value)

	// Fresh name always lands.
	assert.True(t, d.ImportHand("gitlab", NewHand(nil), false))
}
