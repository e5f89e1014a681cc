// Package passgen generates random passwords and word-based passphrases
// backed by the platform CSPRNG.
package passgen
