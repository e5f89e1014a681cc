package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/crypto"
	"github.com/PolarWolf314/holecard/internal/utils"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

var passwdCmd = &cobra.Command{
	Use:   "passwd",
	Short: "Changes the master password of the active deck",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		old, err := utils.ReadPassphrase("Current master password: ")
		if err != nil {
			printError("Failed to read password", err)
			return
		}
		oldPassword := string(old)
		crypto.Wipe(old)

		newPassword, err := utils.ReadPassphraseConfirmed("New master password: ", "Confirm new master password: ")
		if err != nil {
			printError("Failed to read password", err)
			return
		}

		spinner, cleanup := startSpinner("Re-encrypting deck...")
		defer cleanup()

		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		err = workflows.ChangeMasterPassword(cmd.Context(), dc, workflows.ChangeMasterPasswordOptions{
			Old: oldPassword,
			New: newPassword,
		})
		if err != nil {
			spinner.FinalMSG = ""
			cleanup()
			printError("Failed to change master password", err)
			return
		}

		spinner.FinalMSG = color.GreenString("✓") + " Master password changed\n" +
			color.CyanString("→") + " The session was locked; the next operation asks for the new password\n"
	},
}
