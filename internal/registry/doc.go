// Package registry tracks the named decks known to this machine and which
// one is active.
//
// The registry is a small TOML file (~/.holecard/decks.toml) owned entirely
// by this package. Removing a deck only forgets it: the encrypted file and
// its credential-store entries survive, so an accidental removal loses
// nothing.
package registry
