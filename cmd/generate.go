package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PolarWolf314/holecard/internal/passgen"
)

var (
	generateLength     int
	generateDigits     bool
	generateSymbols    bool
	generateWords      int
	generatePhrase     bool
	generateSeparator  string
	generateCapitalize bool
)

func init() {
	generateCmd.Flags().IntVarP(&generateLength, "length", "l", passgen.DefaultLength, "password length")
	generateCmd.Flags().BoolVar(&generateDigits, "digits", true, "include digits")
	generateCmd.Flags().BoolVar(&generateSymbols, "symbols", true, "include symbols")
	generateCmd.Flags().BoolVarP(&generatePhrase, "passphrase", "P", false, "generate a word-based passphrase instead")
	generateCmd.Flags().IntVarP(&generateWords, "words", "w", passgen.DefaultWords, "words in the passphrase")
	generateCmd.Flags().StringVar(&generateSeparator, "separator", "-", "passphrase word separator")
	generateCmd.Flags().BoolVar(&generateCapitalize, "capitalize", false, "capitalize passphrase words")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generates a random password or passphrase",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if generatePhrase {
			phrase, err := passgen.Passphrase(passgen.PhraseOptions{
				Words:      generateWords,
				Separator:  generateSeparator,
				Capitalize: generateCapitalize,
				Digit:      generateDigits,
			})
			if err != nil {
				printError("Failed to generate passphrase", err)
				return
			}
			fmt.Println(phrase)
			return
		}

		password, err := passgen.Password(passgen.Options{
			Length:  generateLength,
			Digits:  generateDigits,
			Symbols: generateSymbols,
		})
		if err != nil {
			printError("Failed to generate password", err)
			return
		}
		fmt.Println(password)
	},
}
