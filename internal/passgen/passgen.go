package passgen

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

const (
	lowercaseSet = "abcdefghijklmnopqrstuvwxyz"
	uppercaseSet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitSet     = "0123456789"
	symbolSet    = "!@#$%^&*()-_=+[]{}|;:,.<>?"
)

// Options configures random password generation. Letters are always
// included; digits and symbols are optional classes.
type Options struct {
	Length  int
	Digits  bool
	Symbols bool
}

// DefaultLength is used when Options.Length is zero.
const DefaultLength = 20

// Password generates a random password. Every enabled character class is
// guaranteed to appear at least once.
func Password(opts Options) (string, error) {
	length := opts.Length
	if length == 0 {
		length = DefaultLength
	}

	classes := []string{lowercaseSet, uppercaseSet}
	if opts.Digits {
		classes = append(classes, digitSet)
	}
	if opts.Symbols {
		classes = append(classes, symbolSet)
	}

	if length < len(classes) {
		return "", fmt.Errorf("%w: length %d cannot cover %d character classes", herrors.ErrInvalidInput, length, len(classes))
	}

	full := strings.Join(classes, "")
	chars := make([]byte, 0, length)

	// One guaranteed pick per class, the rest from the combined set.
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < length {
		c, err := pick(full)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	if err := shuffle(chars); err != nil {
		return "", err
	}

	return string(chars), nil
}

// PhraseOptions configures passphrase generation.
type PhraseOptions struct {
	Words      int
	Separator  string
	Capitalize bool
	Digit      bool
}

// DefaultWords is used when PhraseOptions.Words is zero.
const DefaultWords = 5

// Passphrase generates a word-based passphrase, optionally capitalising each
// word and appending a random digit.
func Passphrase(opts PhraseOptions) (string, error) {
	count := opts.Words
	if count == 0 {
		count = DefaultWords
	}
	if count < 3 {
		return "", fmt.Errorf("%w: a passphrase needs at least 3 words", herrors.ErrInvalidInput)
	}

	separator := opts.Separator
	if separator == "" {
		separator = "-"
	}

	words := make([]string, count)
	for i := range words {
		n, err := intn(len(wordList))
		if err != nil {
			return "", err
		}
		word := wordList[n]
		if opts.Capitalize {
			word = strings.ToUpper(word[:1]) + word[1:]
		}
		words[i] = word
	}

	phrase := strings.Join(words, separator)
	if opts.Digit {
		d, err := pick(digitSet)
		if err != nil {
			return "", err
		}
		phrase += separator + string(d)
	}

	return phrase, nil
}

func pick(set string) (byte, error) {
	n, err := intn(len(set))
	if err != nil {
		return 0, err
	}
	return set[n], nil
}

func shuffle(b []byte) error {
	for i := len(b) - 1; i > 0; i-- {
		j, err := intn(i + 1)
		if err != nil {
			return err
		}
		b[i], b[j] = b[j], b[i]
	}
	return nil
}

// intn returns a uniform random int in [0, max) from the platform CSPRNG.
func intn(max int) (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, fmt.Errorf("reading from system RNG: %w", err)
	}
	return int(n.Int64()), nil
}
