package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/workflows"
)

func init() {
	deckCmd.AddCommand(deckAddCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckRmCmd)
	deckCmd.AddCommand(deckUseCmd)
}

var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage the registry of known decks",
}

var deckAddCmd = &cobra.Command{
	Use:   "add <name> <path>",
	Short: "Registers an existing deck file under a name",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.AddDeck(cmd.Context(), dc, workflows.AddDeckOptions{
			Name: args[0],
			Path: args[1],
		})
		if err != nil {
			printError("Failed to register deck", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Registered deck " + color.CyanString(args[0]))
	},
}

var deckListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists registered decks",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		decks, err := workflows.ListDecks(cmd.Context(), dc)
		if err != nil {
			printError("Failed to list decks", err)
			return
		}

		if len(decks) == 0 {
			fmt.Println("No decks registered. Run " + color.YellowString("holecard init") + " to create one.")
			return
		}

		for _, info := range decks {
			marker := "  "
			if info.Active {
				marker = color.GreenString("* ")
			}
			fmt.Printf("%s%s\t%s\tlast used %s\n", marker, info.Name, info.Path,
				info.LastAccessAt.Local().Format("2006-01-02 15:04"))
		}
	},
}

var deckRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Forgets a deck (the file and its keys are kept)",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.RemoveDeck(cmd.Context(), dc, workflows.RemoveDeckOptions{Name: args[0]})
		if err != nil {
			printError("Failed to remove deck", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Forgot deck " + color.CyanString(args[0]) +
			" (the deck file and its credential-store entries were kept)")
	},
}

var deckUseCmd = &cobra.Command{
	Use:   "use <name>",
	Short: "Switches the active deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.UseDeck(cmd.Context(), dc, workflows.UseDeckOptions{Name: args[0]})
		if err != nil {
			printError("Failed to switch deck", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Now using deck " + color.CyanString(args[0]))
	},
}
