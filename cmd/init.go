package cmd

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/utils"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

var (
	initDeckName string
	initPath     string
	initForce    bool
)

func init() {
	initCmd.Flags().StringVarP(&initDeckName, "name", "n", "", "registry name for the new deck (default \"default\")")
	initCmd.Flags().StringVarP(&initPath, "path", "p", "", "deck file location (default from config)")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "replace an existing deck file")
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initializes a new encrypted deck",
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Holecard", "alligator2", "green", true)
		banner.Print()
		fmt.Println()

		password, err := utils.ReadPassphraseConfirmed("Choose a master password: ", "Confirm master password: ")
		if err != nil {
			printError("Failed to read master password", err)
			return
		}

		spinner, cleanup := startSpinner("Initializing deck...")
		defer cleanup()

		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		result, err := workflows.Init(cmd.Context(), dc, workflows.InitOptions{
			DeckName: initDeckName,
			Path:     initPath,
			Password: workflows.StaticPassword(password),
			Force:    initForce,
		})
		if err != nil {
			spinner.FinalMSG = ""
			cleanup()
			printError("Failed to initialize deck", err)
			return
		}

		spinner.FinalMSG = color.GreenString("✓") + " Deck " + color.CyanString(result.DeckName) + " created at " + result.Path + "\n\n" +
			"Your secret key (written to the system credential store):\n\n" +
			"    " + color.YellowString(result.SecretKey) + "\n\n" +
			color.RedString("!") + " Write it down somewhere safe. It is shown only once, and without\n" +
			"  it (plus your master password) the deck cannot be recovered.\n"
	},
}
