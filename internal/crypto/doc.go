// Package crypto provides the cryptographic primitives for Holecard.
//
// Algorithm choices are fixed per format version: Argon2id (19 MiB memory,
// 2 iterations, 1 lane) for key derivation and AES-256-GCM for authenticated
// encryption. Salts, nonces, secret keys, and session identifiers all come
// from the platform CSPRNG.
//
// The two-factor derivation combines the memorised master password with the
// machine-bound secret key:
//
//	key = Argon2id(password || '|' || secretKey, salt)
//
// The secret key participates as its formatted string (the "A3-..." token
// shown to the user at init), so the presentation format is part of the
// derivation transcript and must round-trip exactly through ParseSecretKey.
package crypto
