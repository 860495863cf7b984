package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "bingosmith",
	Short: "Generate keyword bingo cards from a word list",
	Long: `Bingosmith renders keyword bingo cards: square grids of phrases drawn at
random from a word list, with a star on the free center square. Cards are
reproducible, so the same word list and seed always render the same image
and a whole meeting can play on cards everyone is able to regenerate.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
