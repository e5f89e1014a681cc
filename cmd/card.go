package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/workflows"
)

var cardGetCopy bool

func init() {
	cardGetCmd.Flags().BoolVarP(&cardGetCopy, "copy", "c", false, "copy the value to the clipboard instead of printing it")

	cardCmd.AddCommand(cardSetCmd)
	cardCmd.AddCommand(cardGetCmd)
	cardCmd.AddCommand(cardRmCmd)
}

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Manage individual cards (key/value pairs) on a hand",
}

var cardSetCmd = &cobra.Command{
	Use:   "set <hand> <key> <value>",
	Short: "Sets a card on a hand, creating the hand if needed",
	Args:  cobra.ExactArgs(3),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.CardSet(cmd.Context(), dc, workflows.CardSetOptions{
			Hand:     args[0],
			Key:      args[1],
			Value:    args[2],
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to set card", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Set " + color.CyanString(args[0]+"/"+args[1]))
	},
}

var cardGetCmd = &cobra.Command{
	Use:   "get <hand> <key>",
	Short: "Prints (or copies) a card value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		value, err := workflows.CardGet(cmd.Context(), dc, workflows.CardGetOptions{
			Hand:     args[0],
			Key:      args[1],
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to read card", err)
			return
		}

		if cardGetCopy {
			if err := clipboard.WriteAll(value); err != nil {
				printError("Failed to copy to clipboard", err)
				return
			}
			fmt.Println(color.GreenString("✓") + " Copied " + color.CyanString(args[0]+"/"+args[1]) + " to clipboard")
			return
		}

		fmt.Println(value)
	},
}

var cardRmCmd = &cobra.Command{
	Use:   "rm <hand> <key>",
	Short: "Deletes a card from a hand",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.CardDelete(cmd.Context(), dc, workflows.CardDeleteOptions{
			Hand:     args[0],
			Key:      args[1],
			Password: promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to delete card", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Deleted " + color.CyanString(args[0]+"/"+args[1]))
	},
}
