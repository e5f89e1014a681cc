// Package storage handles deck file I/O with atomic-replace semantics.
//
// Writes go through a randomly-suffixed 0600 temp file that is fsynced and
// renamed over the target, so a crash mid-write never corrupts the previous
// deck. Mutating operations hold a short-lived exclusive file lock; a second
// process fails fast with ErrDeckBusy rather than blocking. Reads take no
// lock.
package storage
