package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	herrors "github.com/PolarWolf314/holecard/internal/errors"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

var handAddCards []string

func init() {
	handAddCmd.Flags().StringArrayVarP(&handAddCards, "card", "c", nil, "card as key=value (repeatable)")

	handCmd.AddCommand(handAddCmd)
	handCmd.AddCommand(handGetCmd)
	handCmd.AddCommand(handListCmd)
	handCmd.AddCommand(handRmCmd)
}

var handCmd = &cobra.Command{
	Use:   "hand",
	Short: "Manage hands (named records) in the active deck",
}

var handAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Creates or replaces a hand",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cards := make(map[string]string, len(handAddCards))
		for _, raw := range handAddCards {
			key, value, found := strings.Cut(raw, "=")
			if !found || key == "" {
				printError("Invalid card", fmt.Errorf("%w: card %q is not key=value", herrors.ErrInvalidInput, raw))
				return
			}
			cards[key] = value
		}

		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.HandPut(cmd.Context(), dc, workflows.HandPutOptions{
			Name:     args[0],
			Cards:    cards,
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to save hand", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Saved hand " + color.CyanString(args[0]) + fmt.Sprintf(" (%d cards)", len(cards)))
	},
}

var handGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Shows a hand's cards",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		result, err := workflows.HandGet(cmd.Context(), dc, workflows.HandGetOptions{
			Name:     args[0],
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to read hand", err)
			return
		}

		fmt.Println(color.CyanString(result.Name))
		for _, key := range result.Hand.CardNames() {
			fmt.Printf("  %s = %s\n", key, result.Hand.Cards[key])
		}
		fmt.Printf("  %s created %s, updated %s\n",
			color.New(color.Faint).Sprint("·"),
			result.Hand.CreatedAt.Local().Format("2006-01-02 15:04"),
			result.Hand.UpdatedAt.Local().Format("2006-01-02 15:04"))
	},
}

var handListCmd = &cobra.Command{
	Use:   "list",
	Short: "Lists the hands in the active deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		names, err := workflows.HandList(cmd.Context(), dc, workflows.HandListOptions{
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to list hands", err)
			return
		}

		if len(names) == 0 {
			fmt.Println("No hands yet. Add one with " + color.YellowString("holecard hand add <name>"))
			return
		}
		for _, name := range names {
			fmt.Println(name)
		}
	},
}

var handRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Deletes a hand",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.HandDelete(cmd.Context(), dc, workflows.HandDeleteOptions{
			Name:     args[0],
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to delete hand", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Deleted hand " + color.CyanString(args[0]))
	},
}
