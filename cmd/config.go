package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bingoland/bingosmith/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the bingosmith configuration",
	Long:  `Commands for the config file and the word list library locations.`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the config file and word list library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetWordListLibraryPath()

		// Create the word list library directory if it doesn't exist
		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating word list library: %v", err)
		}

		fmt.Println("Word list library initialized at:", libraryPath)
		fmt.Println("You can now add word lists (one phrase per line) to this directory.")

		// Initialize config
		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %v", err)
		}

		configPath := config.GetConfigFilePath()
		fmt.Println("Config file initialized at:", configPath)
		return nil
	},
}

// configPathCmd represents the config path command
var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(config.GetConfigFilePath())
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
