package errors

import "errors"

// Deck state errors indicate issues with deck files on disk.
var (
	// ErrAlreadyInitialized indicates init was called on an existing deck file.
	ErrAlreadyInitialized = errors.New("deck has already been initialized")

	// ErrDeckNotInitialized indicates the deck file does not exist.
	ErrDeckNotInitialized = errors.New("deck has not been initialized")

	// ErrDeckBusy indicates another process holds the deck file lock.
	ErrDeckBusy = errors.New("deck is locked by another process")

	// ErrCorruptDeck indicates the envelope or body could not be understood.
	ErrCorruptDeck = errors.New("deck file is corrupt")
)

// Cryptographic errors indicate failures during decryption.
var (
	// ErrAuthenticationFailed indicates the authentication tag did not verify.
	// Wrong master password, wrong secret key, and a tampered file are all
	// reported with this error so callers cannot tell them apart.
	ErrAuthenticationFailed = errors.New("authentication failed: incorrect credentials or corrupted data")
)

// Lookup errors indicate a named object does not exist.
var (
	// ErrNotFound indicates a named hand, card, or deck does not exist.
	ErrNotFound = errors.New("not found")
)

// Credential-store errors indicate issues with the OS keyring.
var (
	// ErrKeyringDenied indicates the credential store refused access or is
	// unavailable.
	ErrKeyringDenied = errors.New("credential store denied access")
)

// Input errors indicate a caller-supplied value failed a precondition.
var (
	// ErrInvalidInput indicates a documented precondition was violated, such
	// as an empty master password or a malformed secret-key string.
	ErrInvalidInput = errors.New("invalid input")
)
