package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/workflows"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Shows the active deck and session state",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		status, err := workflows.Status(cmd.Context(), dc)
		if err != nil {
			printError("Failed to read status", err)
			return
		}

		if status.ActiveDeck == "" {
			fmt.Println("No decks registered. Run " + color.YellowString("holecard init") + " to create one.")
			return
		}

		fmt.Printf("Active deck: %s (%s)\n", color.CyanString(status.ActiveDeck), status.Path)
		if !status.Initialized {
			fmt.Println("State:       " + color.RedString("deck file missing"))
			return
		}

		if status.Unlocked {
			fmt.Println("Session:     " + color.GreenString("unlocked"))
			fmt.Printf("Expires:     %s\n", status.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Last access: %s\n", status.LastAccessAt.Local().Format("2006-01-02 15:04:05"))
		} else {
			fmt.Println("Session:     " + color.YellowString("locked"))
		}
	},
}

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Locks the active deck's session",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		if err := workflows.Lock(cmd.Context(), dc); err != nil {
			printError("Failed to lock session", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Session locked")
	},
}
