package deck

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PolarWolf314/holecard/internal/crypto"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

const (
	testPassword  = "hunter2"
	testSecretKey = "A3-4Q7MZX-9K2DPF-R8TNV-3W5HC-J6B1Y-0GSEA"
)

func testDeck(t *testing.T) *Deck {
	t.Helper()
	d := New()
	require.NoError(t, d.PutHand("github", map[string]string{"password": "p@ss", "user": "alice"}))
	require.NoError(t, d.PutHand(TOTPHand, map[string]string{"github": "JBSWY3DPEHPK3PXP"}))
	return d
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	d := testDeck(t)

	envelope, key, err := Encode(d, testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	decoded, key2, err := Decode(envelope, testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key2)

	assert.Equal(t, d.HandNames(), decoded.HandNames())
	value, err := decoded.Card("github", "password")
	require.NoError(t, err)
	assert.Equal(t, "p@ss", value)
}

func TestEncode_EnvelopeLayout(t *testing.T) {
	d := testDeck(t)

	envelope, key, err := Encode(d, testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	assert.Equal(t, []byte("HCDK"), envelope[:4])
	assert.Equal(t, byte(0x01), envelope[4])
	assert.Greater(t, len(envelope), headerSize+crypto.TagSize)
}

func TestEncode_FreshSaltAndNonce(t *testing.T) {
	d := testDeck(t)

	salts := make(map[string]bool)
	nonces := make(map[string]bool)
	for i := 0; i < 50; i++ {
		envelope, key, err := Encode(d, testPassword, testSecretKey)
		require.NoError(t, err)
		crypto.Wipe(key)

		salts[string(envelope[5:5+crypto.SaltSize])] = true
		nonces[string(envelope[5+crypto.SaltSize:headerSize])] = true
	}

	assert.Len(t, salts, 50)
	assert.Len(t, nonces, 50)
}

func TestDecode_WrongPassword(t *testing.T) {
	envelope, key, err := Encode(testDeck(t), testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	_, _, err = Decode(envelope, "hunter3", testSecretKey)
	assert.ErrorIs(t, err, herrors.ErrAuthenticationFailed)
}

func TestDecode_WrongSecretKey(t *testing.T) {
	envelope, key, err := Encode(testDeck(t), testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	_, _, err = Decode(envelope, testPassword, "A3-AAAAAA-AAAAAA-AAAAA-AAAAA-AAAAA-AAAAA")
	assert.ErrorIs(t, err, herrors.ErrAuthenticationFailed)
}

func TestDecode_BitFlips(t *testing.T) {
	envelope, key, err := Encode(testDeck(t), testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	for i := range envelope {
		tampered := make([]byte, len(envelope))
		copy(tampered, envelope)
		tampered[i] ^= 0x01

		_, _, err := Decode(tampered, testPassword, testSecretKey)
		if i < 5 {
			// Magic and version are checked before any cryptography.
			assert.ErrorIs(t, err, herrors.ErrCorruptDeck, "byte %d", i)
		} else {
			assert.ErrorIs(t, err, herrors.ErrAuthenticationFailed, "byte %d", i)
		}
	}
}

func TestDecode_TruncatedOrWrongMagic(t *testing.T) {
	_, _, err := Decode([]byte("HC"), testPassword, testSecretKey)
	assert.ErrorIs(t, err, herrors.ErrCorruptDeck)

	envelope, key, err := Encode(testDeck(t), testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	bad := append([]byte("XXXX"), envelope[4:]...)
	_, _, err = Decode(bad, testPassword, testSecretKey)
	assert.ErrorIs(t, err, herrors.ErrCorruptDeck)
}

func TestDecodeWithKey(t *testing.T) {
	d := testDeck(t)

	envelope, key, err := Encode(d, testPassword, testSecretKey)
	require.NoError(t, err)
	defer crypto.Wipe(key)

	decoded, err := DecodeWithKey(envelope, key)
	require.NoError(t, err)
	assert.Equal(t, d.HandNames(), decoded.HandNames())

	wrongKey, err := crypto.Random(crypto.KeySize)
	require.NoError(t, err)
	_, err = DecodeWithKey(envelope, wrongKey)
	assert.ErrorIs(t, err, herrors.ErrAuthenticationFailed)
}

func TestExport_RoundTrip(t *testing.T) {
	d := testDeck(t)

	envelope, err := EncodeExport(d, "ex-pw")
	require.NoError(t, err)
	assert.Equal(t, []byte("HCEX"), envelope[:4])
	assert.Equal(t, byte(0x01), envelope[4])

	decoded, err := DecodeExport(envelope, "ex-pw")
	require.NoError(t, err)
	assert.Equal(t, d.HandNames(), decoded.HandNames())

	_, err = DecodeExport(envelope, "wrong")
	assert.ErrorIs(t, err, herrors.ErrAuthenticationFailed)
}

func TestExport_RejectsDeckMagic(t *testing.T) {
	envelope, key, err := Encode(testDeck(t), testPassword, testSecretKey)
	require.NoError(t, err)
	crypto.Wipe(key)

	_, err = DecodeExport(envelope, "ex-pw")
	assert.ErrorIs(t, err, herrors.ErrCorruptDeck)
}

func TestCanonicalBody_SortedAndDeterministic(t *testing.T) {
	d := New()
	require.NoError(t, d.SetCard("zeta", "b", "2"))
	require.NoError(t, d.SetCard("zeta", "a", "1"))
	require.NoError(t, d.SetCard("alpha", "k", "v"))

	body1, err := json.Marshal(d)
	require.NoError(t, err)
	body2, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, body1, body2)

	// Top-level and nested keys serialise in lexicographic order.
	assert.Less(t, bytes.Index(body1, []byte(`"hands"`)), bytes.Index(body1, []byte(`"revision"`)))
	assert.Less(t, bytes.Index(body1, []byte(`"revision"`)), bytes.Index(body1, []byte(`"version"`)))
	assert.Less(t, bytes.Index(body1, []byte(`"alpha"`)), bytes.Index(body1, []byte(`"zeta"`)))
	assert.Less(t, bytes.Index(body1, []byte(`"a"`)), bytes.Index(body1, []byte(`"b"`)))
}

func TestDecode_GarbageBodyIsCorrupt(t *testing.T) {
	salt, err := crypto.NewSalt()
	require.NoError(t, err)
	key, err := crypto.DeriveKey(testPassword, testSecretKey, salt)
	require.NoError(t, err)
	defer crypto.Wipe(key)
	nonce, err := crypto.NewNonce()
	require.NoError(t, err)

	ciphertext, err := crypto.Encrypt(key, nonce, []byte("this is not json"))
	require.NoError(t, err)

	envelope := append([]byte("HCDK\x01"), salt...)
	envelope = append(envelope, nonce...)
	envelope = append(envelope, ciphertext...)

	_, err = DecodeWithKey(envelope, key)
	assert.ErrorIs(t, err, herrors.ErrCorruptDeck)
}
