// Package utils provides terminal helpers shared by the CLI commands,
// primarily masked passphrase prompting.
package utils
