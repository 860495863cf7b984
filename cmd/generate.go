package cmd

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"
	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bingoland/bingosmith/internal/ansi"
	"github.com/bingoland/bingosmith/internal/card"
	"github.com/bingoland/bingosmith/internal/config"
	"github.com/bingoland/bingosmith/internal/wordlist"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a keyword bingo card image",
	Long: `Generate renders a keyword bingo card and saves it as an image.

Words come from the configured word list, or from --input (a name in your
word list library or a file path). Pass --seed to make the card
reproducible: the same word list and seed always render the same image.
Without a seed one is picked for you and stamped in the card footer, so
any card can be regenerated later.

Examples:
  bingosmith generate
  bingosmith generate --seed 42 --output standup.png
  bingosmith generate --input team.txt --rows 4 --cols 6 --preview`,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, _ := cmd.Flags().GetString("input")
		output, _ := cmd.Flags().GetString("output")
		rows, _ := cmd.Flags().GetInt("rows")
		cols, _ := cmd.Flags().GetInt("cols")
		seed, _ := cmd.Flags().GetString("seed")
		preview, _ := cmd.Flags().GetBool("preview")
		qr, _ := cmd.Flags().GetBool("qr")

		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		list, err := resolveWords(cfg, input)
		if err != nil {
			return err
		}

		opts, err := cfg.CardOptions()
		if err != nil {
			return err
		}
		gen, err := card.NewGenerator(opts)
		if err != nil {
			return err
		}

		res, err := gen.Generate(card.Request{
			Words:    list.Words,
			Rows:     rows,
			Cols:     cols,
			Seed:     seed,
			Checksum: list.Checksum,
			QR:       qr,
		})
		if err != nil {
			return fmt.Errorf("error generating card: %v", err)
		}

		if err := imaging.Save(res.Image, output); err != nil {
			return fmt.Errorf("error saving card: %v", err)
		}

		fmt.Println(colorize.CyanString("Card:  ") + colorize.HiWhiteString(output))
		fmt.Println(colorize.CyanString("Words: ") + colorize.HiWhiteString("%d from %s", len(list.Words), list.Source))
		fmt.Println(colorize.CyanString("Seed:  ") + colorize.HiWhiteString("%d", res.Seed))

		if preview {
			fmt.Println()
			fmt.Print(ansi.Render(res.Image, previewColumns()))
		}

		return nil
	},
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("input", "i", "", "word list to draw from (library name or file path)")
	generateCmd.Flags().StringP("output", "o", "bingo.png", "output image file")
	generateCmd.Flags().IntP("rows", "r", 5, "number of rows")
	generateCmd.Flags().IntP("cols", "c", 5, "number of columns")
	generateCmd.Flags().StringP("seed", "s", "", "random seed (any text; empty picks one)")
	generateCmd.Flags().BoolP("preview", "p", false, "preview the card in the terminal")
	generateCmd.Flags().Bool("qr", false, "stamp a provenance QR code in the bottom-right corner")
}

// resolveWords picks the word list: the --input flag wins, then the
// configured words file, then the embedded default list.
func resolveWords(cfg *config.Config, input string) (*wordlist.List, error) {
	name := input
	if name == "" {
		name = cfg.WordsFile
	}
	if name == "" {
		return wordlist.Default(), nil
	}

	path, err := config.GetWordsPath(name)
	if err != nil {
		return nil, err
	}
	return wordlist.Load(path)
}

// previewColumns sizes the terminal preview: most of the terminal width,
// with a sane fallback when the width is unknown.
func previewColumns() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 80
	}
	cols := width - 4
	if cols < 10 {
		cols = 10
	}
	return cols
}
