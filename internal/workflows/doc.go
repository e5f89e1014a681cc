// Package workflows implements the deck context: the user-facing operations
// over the active deck, each one a straight-line transaction.
//
// Every operation resolves the active deck from the registry, obtains a
// working key (a live session for reads, the master password for anything
// that writes), decrypts through the codec, applies its change, and persists
// atomically. Mutations derive under a freshly sampled KDF salt — so the
// working key changes on every write — and then re-open the session with the
// new key so subsequent reads stay prompt-free.
//
// Workflows return sentinel errors from the internal/errors taxonomy, at most
// wrapped with %w for context, so CLI callers can switch on errors.Is.
package workflows
