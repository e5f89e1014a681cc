package crypto

import (
	"encoding/base32"
	"fmt"
	"strings"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// Secret keys are 20 random bytes presented as Crockford base32 with a fixed
// prefix token and dash-grouped digits, e.g.
//
//	A3-4Q7MZX-9K2DPF-R8TNV-3W5HC-J6B1Y-0GSEA
//
// The formatted string, not the raw bytes, is what enters the KDF transcript
// and what lives in the credential store.
const (
	SecretKeySize   = 20
	secretKeyPrefix = "A3"
)

var crockford = base32.NewEncoding("0123456789ABCDEFGHJKMNPQRSTVWXYZ").WithPadding(base32.NoPadding)

// secretKeyGroups is the cosmetic dash grouping of the 32 base32 digits.
var secretKeyGroups = []int{6, 6, 5, 5, 5, 5}

// GenerateSecretKey samples a fresh 20-byte secret key and returns its
// canonical presentation.
func GenerateSecretKey() (string, error) {
	raw, err := Random(SecretKeySize)
	if err != nil {
		return "", err
	}
	defer Wipe(raw)

	return formatSecretKey(crockford.EncodeToString(raw)), nil
}

// ParseSecretKey canonicalises a user-supplied secret key. It tolerates any
// dash placement, lower case, and the Crockford digit confusions (O for 0,
// I and L for 1), and returns the exact presentation form produced by
// GenerateSecretKey. The round trip ParseSecretKey(GenerateSecretKey()) is
// the identity.
func ParseSecretKey(s string) (string, error) {
	cleaned := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(s), "-", ""))
	cleaned = strings.TrimPrefix(cleaned, secretKeyPrefix)

	var digits strings.Builder
	for _, r := range cleaned {
		switch r {
		case 'O':
			digits.WriteRune('0')
		case 'I', 'L':
			digits.WriteRune('1')
		default:
			digits.WriteRune(r)
		}
	}

	encoded := digits.String()
	if len(encoded) != crockford.EncodedLen(SecretKeySize) {
		return "", fmt.Errorf("%w: malformed secret key", herrors.ErrInvalidInput)
	}
	raw, err := crockford.DecodeString(encoded)
	if err != nil || len(raw) != SecretKeySize {
		return "", fmt.Errorf("%w: malformed secret key", herrors.ErrInvalidInput)
	}
	Wipe(raw)

	return formatSecretKey(encoded), nil
}

func formatSecretKey(encoded string) string {
	parts := make([]string, 0, len(secretKeyGroups)+1)
	parts = append(parts, secretKeyPrefix)

	offset := 0
	for _, n := range secretKeyGroups {
		parts = append(parts, encoded[offset:offset+n])
		offset += n
	}

	return strings.Join(parts, "-")
}
