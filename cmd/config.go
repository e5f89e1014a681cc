package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/configs"
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Shows or updates holecard configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Prints the recognised configuration values",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := configs.DefaultDir()
		if err != nil {
			printError("Failed to resolve config directory", err)
			return
		}

		config, err := configs.Load(dir)
		if err != nil {
			printError("Failed to load config", err)
			return
		}

		fmt.Printf("%s = %d\n", configs.KeySessionTimeoutMinutes, config.SessionTimeoutMinutes)
		fmt.Printf("%s = %s\n", configs.KeyDefaultDeckPath, config.DefaultDeckPath)
		fmt.Printf("%s = %t\n", configs.KeyEnableBiometric, config.EnableBiometric)
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Updates one configuration value",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		dir, err := configs.DefaultDir()
		if err != nil {
			printError("Failed to resolve config directory", err)
			return
		}

		config, err := configs.Load(dir)
		if err != nil {
			printError("Failed to load config", err)
			return
		}

		if err := config.Set(args[0], args[1]); err != nil {
			printError("Failed to update config", err)
			return
		}

		if err := config.Save(dir); err != nil {
			printError("Failed to save config", err)
			return
		}

		fmt.Println(color.GreenString("✓") + " Set " + color.CyanString(args[0]) + " = " + args[1])
	},
}
