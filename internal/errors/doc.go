// Package errors provides typed error values for the Holecard application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Deck state errors: Deck file issues (ErrDeckNotInitialized, ErrDeckBusy)
//   - Crypto errors: Authentication failures (ErrAuthenticationFailed)
//   - Lookup errors: Missing hands, cards, or decks (ErrNotFound)
//   - Credential-store errors: Keyring access issues (ErrKeyringDenied)
//
// # Usage
//
// Return errors from internal packages:
//
//	if !deckExists {
//	    return nil, errors.ErrDeckNotInitialized
//	}
//
// Handle errors in the CLI layer:
//
//	value, err := workflows.CardGet(ctx, dc, opts)
//	if errors.Is(err, herrors.ErrAuthenticationFailed) {
//	    // Show user-friendly message
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("loading hand %s: %w", name, errors.ErrNotFound)
//
// ErrAuthenticationFailed deliberately covers a wrong master password, a
// wrong secret key, and a tampered deck file without distinguishing them.
package errors
