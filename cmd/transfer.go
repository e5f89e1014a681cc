package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/crypto"
	"github.com/PolarWolf314/holecard/internal/utils"
	"github.com/PolarWolf314/holecard/internal/workflows"
)

var importOverwrite bool

func init() {
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "replace colliding hands instead of skipping them")
}

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Writes an encrypted, portable backup of the active deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportPassword, err := utils.ReadPassphraseConfirmed("Export password: ", "Confirm export password: ")
		if err != nil {
			printError("Failed to read export password", err)
			return
		}

		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		result, err := workflows.Export(cmd.Context(), dc, workflows.ExportOptions{
			OutPath:        args[0],
			ExportPassword: exportPassword,
			Password:       promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to export deck", err)
			return
		}

		fmt.Printf("%s Exported %d hands to %s (encrypted)\n",
			color.GreenString("✓"), result.HandsCount, result.OutPath)
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Merges hands from an encrypted export into the active deck",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exportPassword, err := utils.ReadPassphrase("Password for this export file: ")
		if err != nil {
			printError("Failed to read export password", err)
			return
		}

		dc, err := getDeckContext()
		if err != nil {
			printError("Failed to open configuration", err)
			return
		}

		password := string(exportPassword)
		crypto.Wipe(exportPassword)

		result, err := workflows.Import(cmd.Context(), dc, workflows.ImportOptions{
			InPath:         args[0],
			ExportPassword: password,
			Overwrite:      importOverwrite,
			Password:       promptMasterPassword(),
		})
		if err != nil {
			printError("Failed to import deck", err)
			return
		}

		fmt.Printf("%s Import complete: %d hands imported", color.GreenString("✓"), result.Imported)
		if result.Skipped > 0 {
			fmt.Printf(", %d skipped (use %s to replace)", result.Skipped, color.YellowString("--overwrite"))
		}
		fmt.Println()
	},
}
