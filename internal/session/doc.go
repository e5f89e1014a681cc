// Package session caches a derived working key between operations so
// repeated reads do not re-prompt for the master password.
//
// The key itself lives in the OS credential store under
// holecard.session-key.<deck>; the timing metadata lives in a session.json
// sidecar next to the config. Both must agree (matching session id) for a
// session to count as live. Sessions have an absolute deadline fixed at
// unlock: reads refresh last_access_at for display but never push
// expires_at, so a compromised unattended terminal has a bounded window.
package session
