// Package credstore abstracts the operating-system credential store as a
// (service, account) -> bytes map.
//
// Holecard keeps two long-lived items per deck: the machine-bound secret key
// under holecard.secret-key.<deck>, and the cached session key under
// holecard.session-key.<deck>. The service name is always "holecard".
//
// Backend failures are deliberately coarse: anything that is not a clean
// "not found" surfaces as ErrKeyringDenied, and callers decide whether that
// is fatal (secret-key lookup) or degradable (session resume).
package credstore
