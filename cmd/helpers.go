package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/PolarWolf314/holecard/internal/crypto"
	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/utils"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function appends one when missing so output formatting stays consistent
// across commands.
func startSpinner(message string) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ensureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

func ensureNewline(s string) string {
	if !strings.HasSuffix(s, "\n") {
		return s + "\n"
	}
	return s
}

// printError renders a command failure with a friendly message for the known
// error kinds.
func printError(action string, err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n%s %s\n",
		color.RedString("✗"), action,
		color.CyanString("→"), friendlyError(err))
}

func friendlyError(err error) string {
	switch {
	case errors.Is(err, herrors.ErrAlreadyInitialized):
		return "A deck already exists here. Pass " + color.YellowString("--force") + " to replace it (this destroys its contents)."
	case errors.Is(err, herrors.ErrDeckNotInitialized):
		return "No deck found. Run " + color.YellowString("holecard init") + " first."
	case errors.Is(err, herrors.ErrDeckBusy):
		return "Another holecard process is writing this deck. Try again in a moment."
	case errors.Is(err, herrors.ErrAuthenticationFailed):
		return "Incorrect credentials or a corrupted deck file."
	case errors.Is(err, herrors.ErrCorruptDeck):
		return "The deck file is not a valid holecard deck."
	case errors.Is(err, herrors.ErrKeyringDenied):
		return "The system credential store refused access."
	default:
		return err.Error()
	}
}

// promptMasterPassword is the PasswordFunc handed to workflows: reads run it
// only when no live session can satisfy them; writes always run it.
func promptMasterPassword() workflows.PasswordFunc {
	return func() (string, error) {
		pw, err := utils.ReadPassphrase("Master password: ")
		if err != nil {
			return "", err
		}
		password := string(pw)
		crypto.Wipe(pw)
		return password, nil
	}
}
