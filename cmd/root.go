package cmd

import (
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/configs"
	"github.com/PolarWolf314/holecard/internal/credstore"
	logger "github.com/PolarWolf314/holecard/internal/logging"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	RootCmd = &cobra.Command{
		Use:   "holecard",
		Short: "Holecard - A local two-factor encrypted secret manager",
		Long: `Holecard stores small structured secrets ("cards", grouped into "hands")
inside an encrypted deck file protected by two factors: a master password
you memorise and a secret key bound to this machine's credential store.

Sessions cache the working key in the OS credential store for a bounded
time, so repeated reads don't re-prompt for the password.

Run 'holecard init' to create your first deck.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing holecard command with verbose=%t, debug=%t", verbose, debug)
		},
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	RootCmd.AddCommand(initCmd)
	RootCmd.AddCommand(handCmd)
	RootCmd.AddCommand(cardCmd)
	RootCmd.AddCommand(deckCmd)
	RootCmd.AddCommand(lockCmd)
	RootCmd.AddCommand(statusCmd)
	RootCmd.AddCommand(passwdCmd)
	RootCmd.AddCommand(exportCmd)
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(configCmd)
}

// getDeckContext wires up the workflow context against the user's config
// directory and the platform credential store.
func getDeckContext() (*workflows.DeckContext, error) {
	dir, err := configs.DefaultDir()
	if err != nil {
		return nil, err
	}
	if err := configs.EnsureDir(dir); err != nil {
		return nil, err
	}

	store, err := credstore.Open()
	if err != nil {
		return nil, err
	}

	return workflows.NewDeckContext(dir, store, Logger)
}
