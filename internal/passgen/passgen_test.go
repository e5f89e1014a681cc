package passgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

func TestPassword_DefaultLength(t *testing.T) {
	password, err := Password(Options{})
	require.NoError(t, err)
	assert.Len(t, password, DefaultLength)
}

func TestPassword_ContainsEnabledClasses(t *testing.T) {
	for i := 0; i < 50; i++ {
		password, err := Password(Options{Length: 12, Digits: true, Symbols: true})
		require.NoError(t, err)

		assert.True(t, strings.ContainsAny(password, lowercaseSet), "missing lowercase in %q", password)
		assert.True(t, strings.ContainsAny(password, uppercaseSet), "missing uppercase in %q", password)
		assert.True(t, strings.ContainsAny(password, digitSet), "missing digit in %q", password)
		assert.True(t, strings.ContainsAny(password, symbolSet), "missing symbol in %q", password)
	}
}

func TestPassword_ExcludesDisabledClasses(t *testing.T) {
	password, err := Password(Options{Length: 64})
	require.NoError(t, err)
	assert.False(t, strings.ContainsAny(password, digitSet))
	assert.False(t, strings.ContainsAny(password, symbolSet))
}

func TestPassword_TooShort(t *testing.T) {
	_, err := Password(Options{Length: 1, Digits: true, Symbols: true})
	assert.ErrorIs(t, err, herrors.ErrInvalidInput)
}

func TestPassword_Distinct(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		password, err := Password(Options{Length: 24, Digits: true})
		require.NoError(t, err)
		seen[password] = true
	}
	assert.Len(t, seen, 100)
}

func TestPassphrase_Shape(t *testing.T) {
	phrase, err := Passphrase(PhraseOptions{Words: 4})
	require.NoError(t, err)

	parts := strings.Split(phrase, "-")
	assert.Len(t, parts, 4)
	for _, word := range parts {
		assert.Contains(t, wordList, word)
	}
}

func TestPassphrase_CapitalizeAndDigit(t *testing.T) {
	phrase, err := Passphrase(PhraseOptions{Words: 4, Separator: ".", Capitalize: true, Digit: true})
	require.NoError(t, err)

	parts := strings.Split(phrase, ".")
	require.Len(t, parts, 5)
	for _, word := range parts[:4] {
		assert.Equal(t, strings.ToUpper(word[:1]), word[:1])
	}
	assert.Contains(t, digitSet, parts[4])
}

func TestPassphrase_TooFewWords(t *testing.T) {
	_, err := Passphrase(PhraseOptions{Words: 2})
	assert.ErrorIs(t, err, herrors.ErrInvalidInput)
}
