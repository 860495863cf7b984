package cmd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"unicode/utf8"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bingoland/bingosmith/internal/config"
	"github.com/bingoland/bingosmith/internal/wordlist"
)

// wordsCmd represents the words command group
var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage word lists in your library",
	Long:  `Commands for inspecting and managing the word lists cards are generated from.`,
}

// wordsListCmd represents the words ls command
var wordsListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List word lists in your library",
	RunE: func(cmd *cobra.Command, args []string) error {
		libraryPath := config.GetWordListLibraryPath()

		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Printf("Word list library at %s does not exist.\n", libraryPath)
			fmt.Println("Run 'bingosmith config init' to create it.")
			return nil
		}

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading word list library: %v", err)
		}

		listed := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			list, err := wordlist.Load(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a readable list, skip
				continue
			}

			if entry.Name() == cfg.WordsFile {
				fmt.Printf("* %s (%d words) [DEFAULT]\n", entry.Name(), len(list.Words))
			} else {
				fmt.Printf("  %s (%d words)\n", entry.Name(), len(list.Words))
			}
			listed++
		}

		if listed == 0 {
			fmt.Println("No word lists found in your library.")
			fmt.Println("You can add lists (one phrase per line) by copying them to:", libraryPath)
		}

		return nil
	},
}

// wordsUseCmd represents the words use command
var wordsUseCmd = &cobra.Command{
	Use:   "use [word_list]",
	Short: "Set the default word list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		// Check the list exists and is usable before adopting it
		path, err := config.GetWordsPath(name)
		if err != nil {
			return err
		}
		list, err := wordlist.Load(path)
		if err != nil {
			return err
		}
		if len(list.Words) == 0 {
			return fmt.Errorf("word list %s has no entries", path)
		}

		if err := config.SetWordsFile(name); err != nil {
			return fmt.Errorf("error setting default word list: %v", err)
		}

		fmt.Printf("Default word list set to: %s (%d words)\n", name, len(list.Words))
		return nil
	},
}

// wordsStatsCmd represents the words stats command
var wordsStatsCmd = &cobra.Command{
	Use:   "stats [word_list]",
	Short: "Show statistics for a word list",
	Long: `Stats summarizes a word list: how many phrases it holds, how long they
run, and the largest square card it can fill. Without an argument it
inspects the configured default list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := listFromArgs(args)
		if err != nil {
			return err
		}
		if len(list.Words) == 0 {
			return fmt.Errorf("word list %s has no entries", list.Source)
		}

		unique := make(map[string]bool)
		shortest, longest := list.Words[0], list.Words[0]
		total := 0
		for _, w := range list.Words {
			unique[w] = true
			n := utf8.RuneCountInString(w)
			if n < utf8.RuneCountInString(shortest) {
				shortest = w
			}
			if n > utf8.RuneCountInString(longest) {
				longest = w
			}
			total += n
		}

		// Largest square grid the list can fill
		side := int(math.Sqrt(float64(len(list.Words))))

		fmt.Println(colorize.CyanString("Source:   ") + colorize.HiWhiteString(list.Source))
		fmt.Println(colorize.CyanString("Checksum: ") + colorize.HiWhiteString(list.Checksum))
		fmt.Println(colorize.CyanString("Words:    ") + colorize.HiWhiteString("%d (%d unique)", len(list.Words), len(unique)))
		fmt.Println(colorize.CyanString("Shortest: ") + colorize.HiWhiteString("%q (%d chars)", shortest, utf8.RuneCountInString(shortest)))
		fmt.Println(colorize.CyanString("Longest:  ") + colorize.HiWhiteString("%q (%d chars)", longest, utf8.RuneCountInString(longest)))
		fmt.Println(colorize.CyanString("Average:  ") + colorize.HiWhiteString("%.1f chars", float64(total)/float64(len(list.Words))))
		fmt.Println(colorize.CyanString("Card:     ") + colorize.HiWhiteString("up to %dx%d", side, side))

		return nil
	},
}

// wordsValidateCmd represents the words validate command
var wordsValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a word list file",
	Long: `Validate checks whether a word list can produce good bingo cards.
It reports errors (states no card can be generated from) and warnings
(entries that degrade the result, like duplicates or very long phrases).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wordsPath := args[0]

		// Check if path exists
		if _, err := os.Stat(wordsPath); os.IsNotExist(err) {
			return fmt.Errorf("word list not found: %s", wordsPath)
		}

		// Create validator and run validation
		v := wordlist.NewValidator(wordsPath)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %v", err)
		}

		// Display validation results
		fmt.Println("Validation Results:")
		fmt.Println("-------------------")

		if len(results.Errors) == 0 {
			fmt.Printf("✅ Word list '%s' can produce bingo cards.\n", wordsPath)
		} else {
			fmt.Printf("❌ Word list '%s' has %d validation errors:\n", wordsPath, len(results.Errors))
			for i, err := range results.Errors {
				fmt.Printf("%d. %s\n", i+1, err)
			}
			return fmt.Errorf("validation failed")
		}

		if len(results.Warnings) > 0 {
			fmt.Println("\nWarnings:")
			for i, warn := range results.Warnings {
				fmt.Printf("%d. %s\n", i+1, warn)
			}
		}

		return nil
	},
}

// wordsHashCmd represents the words hash command
var wordsHashCmd = &cobra.Command{
	Use:   "hash [word_list]",
	Short: "Print the md5 checksum of a word list",
	Long: `Hash prints the md5 checksum of a word list file, the same value
stamped in a card's footer, so you can check which list a card came from.
Without an argument it hashes the configured default list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		list, err := listFromArgs(args)
		if err != nil {
			return err
		}
		fmt.Println(list.Checksum)
		return nil
	},
}

// listFromArgs loads the word list named by the first argument, or the
// configured default when no argument is given.
func listFromArgs(args []string) (*wordlist.List, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	input := ""
	if len(args) > 0 {
		input = args[0]
	}
	return resolveWords(cfg, input)
}

func init() {
	RootCmd.AddCommand(wordsCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsUseCmd)
	wordsCmd.AddCommand(wordsStatsCmd)
	wordsCmd.AddCommand(wordsValidateCmd)
	wordsCmd.AddCommand(wordsHashCmd)
}
