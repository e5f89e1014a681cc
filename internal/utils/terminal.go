package utils

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/PolarWolf314/holecard/internal/crypto"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
)

// ReadPassphrase prompts the user for a passphrase without echoing input.
// Returns an error if stdin is not a terminal.
func ReadPassphrase(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("cannot read passphrase: stdin is not a terminal")
	}

	fmt.Fprint(os.Stderr, prompt)
	passphrase, err := term.ReadPassword(fd)
	fmt.Fprintln(os.Stderr) // Add newline after hidden input

	if err != nil {
		return nil, fmt.Errorf("failed to read passphrase: %w", err)
	}

	return passphrase, nil
}

// ReadPassphraseConfirmed prompts twice and requires both entries to match.
// Both buffers are wiped before returning the surviving copy as a string.
func ReadPassphraseConfirmed(prompt, confirmPrompt string) (string, error) {
	first, err := ReadPassphrase(prompt)
	if err != nil {
		return "", err
	}

	second, err := ReadPassphrase(confirmPrompt)
	if err != nil {
		crypto.Wipe(first)
		return "", err
	}

	match := crypto.ConstantTimeEqual(first, second)
	passphrase := string(first)
	crypto.Wipe(first)
	crypto.Wipe(second)

	if !match {
		return "", fmt.Errorf("%w: passphrases do not match", herrors.ErrInvalidInput)
	}

	return passphrase, nil
}

// IsTerminal returns true if stdin is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
