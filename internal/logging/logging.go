package logger

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Logger writes levelled, colourised lines for Holecard commands. A logger
// can be scoped to a deck with WithDeck, which stamps the deck name on every
// line so output stays attributable when an operation walks more than one
// deck (registry switches, import/export).
type Logger struct {
	Verbose bool
	Debug   bool

	deck string
}

// WithDeck returns a copy of the logger scoped to the named deck.
func (l Logger) WithDeck(name string) Logger {
	l.deck = name
	return l
}

func (l Logger) emit(w *os.File, tag, msg string, args ...any) {
	if l.deck != "" {
		tag += color.New(color.Faint).Sprintf("(%s) ", l.deck)
	}
	fmt.Fprintf(w, tag+msg+"\n", args...)
}

// Infof reports progress. Shown only with --verbose.
func (l Logger) Infof(msg string, args ...any) {
	if !l.Verbose {
		return
	}
	l.emit(os.Stdout, color.GreenString("[info] "), msg, args...)
}

// Debugf reports internal detail. Shown only with --debug.
func (l Logger) Debugf(msg string, args ...any) {
	if !l.Debug {
		return
	}
	l.emit(os.Stdout, color.CyanString("[debug] "), msg, args...)
}

// Warnf reports recoverable trouble (loose deck-file permissions, a keyring
// that refuses to cache a session). Always shown.
func (l Logger) Warnf(msg string, args ...any) {
	l.emit(os.Stderr, color.YellowString("[warn] "), msg, args...)
}

// Errorf reports failures. Always shown.
func (l Logger) Errorf(msg string, args ...any) {
	l.emit(os.Stderr, color.RedString("[error] "), msg, args...)
}
