// Package deck defines the in-memory deck model and is the only component
// that encodes or decodes deck bytes.
//
// A deck maps hand names to hands; a hand maps card names to opaque card
// values and carries creation/update timestamps. The canonical body is JSON
// with lexicographically sorted keys at every level, so a logically
// unchanged deck always serialises to the same bytes (modulo the revision
// counter) and rewrites never churn on map order.
//
// Two envelope formats wrap the encrypted body: the "HCDK" deck file sealed
// under the two-factor derived key, and the portable "HCEX" export file
// sealed under an export password alone. Both sample a fresh KDF salt and
// AEAD nonce on every encode.
package deck
