// Package logger provides levelled logging for Holecard CLI commands.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug detail
//
// Warnings and errors are always shown.
//
// # Deck scoping
//
// Loggers are value types; WithDeck derives a copy stamped with a deck name
// so lines from operations that touch several decks stay attributable:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.WithDeck("work").Warnf("deck file is readable by other users")
//
// Commands typically create a logger in their PersistentPreRun and hand it
// to the workflow layer, which scopes it to the active deck.
package logger
