// Package configs manages Holecard's TOML configuration and filesystem
// settings.
//
// The config file lives at ~/.holecard/config.toml and recognises a closed
// set of keys: session-timeout-minutes, default-deck-path, and
// enable-biometric. Unknown keys are preserved across rewrites so the file
// can be shared with external tooling, but the core never acts on them.
package configs
