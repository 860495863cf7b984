// Package config reads and writes the bingosmith configuration, a TOML
// file in the XDG config directory, and resolves word lists against the
// word list library in the XDG data directory.
package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/opentype"

	"github.com/bingoland/bingosmith/internal/card"
)

// Config represents the application configuration
type Config struct {
	// WordsFile is the word list used when no --input flag is given: a
	// library name or a file path. Empty selects the embedded default list.
	WordsFile string `toml:"words_file"`

	Card   CardSection   `toml:"card"`
	Colors ColorsSection `toml:"colors"`
}

// CardSection holds tile geometry and font settings
type CardSection struct {
	Size           int `toml:"size"`
	Padding        int `toml:"padding"`
	FontSize       int `toml:"font_size"`
	MinFontSize    int `toml:"min_font_size"`
	FooterFontSize int `toml:"footer_font_size"`
	// FontFile is a path to a TTF/OTF file. Empty selects the embedded
	// Go Regular face.
	FontFile string `toml:"font_file"`
}

// ColorsSection holds the card palette as hex strings, e.g. "#ffd700".
// Empty entries keep the default color.
type ColorsSection struct {
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Star       string `toml:"star"`
	Border     string `toml:"border"`
	Footer     string `toml:"footer"`
}

// DefaultConfig returns the configuration written on first use, with every
// knob spelled out so the file documents itself.
func DefaultConfig() *Config {
	return &Config{
		Card: CardSection{
			Size:           card.DefaultSize,
			Padding:        card.DefaultPadding,
			FontSize:       card.DefaultFontSize,
			MinFontSize:    card.DefaultMinFontSize,
			FooterFontSize: card.DefaultFooterFontSize,
		},
		Colors: ColorsSection{
			Background: "#ffffff",
			Text:       "#000000",
			Star:       "#ffd700",
			Border:     "#000000",
			Footer:     "#808080",
		},
	}
}

// GetXDGDataHome returns XDG_DATA_HOME or default path
func GetXDGDataHome() string {
	if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
		return xdgData
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".local", "share")
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetWordListLibraryPath returns the path to the word list library
func GetWordListLibraryPath() string {
	return filepath.Join(GetXDGDataHome(), "bingosmith", "wordlists")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "bingosmith", "config.toml")
}

// LoadConfig loads the config file, creating it with defaults on first use
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	_, err := toml.DecodeFile(configPath, &config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := DefaultConfig()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the config file, creating its directory if needed
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// GetWordsPath returns the path to a word list, either in the word list
// library or a plain file path
func GetWordsPath(name string) (string, error) {
	// First, try to find the list in the word list library
	libraryPath := GetWordListLibraryPath()
	wordsPath := filepath.Join(libraryPath, name)

	if _, err := os.Stat(wordsPath); err == nil {
		return wordsPath, nil
	}

	// If not found in the library, treat as a file path
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}

	return "", fmt.Errorf("word list not found: %s", name)
}

// SetWordsFile sets the default word list in the config
func SetWordsFile(name string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.WordsFile = name
	return SaveConfig(config)
}

// CardOptions converts the configuration into card generator options,
// parsing the hex palette and loading the font file when one is set.
func (c *Config) CardOptions() (card.Options, error) {
	opts := card.Options{
		Size:           c.Card.Size,
		Padding:        c.Card.Padding,
		FontSize:       c.Card.FontSize,
		MinFontSize:    c.Card.MinFontSize,
		FooterFontSize: c.Card.FooterFontSize,
		Palette:        card.DefaultPalette(),
	}

	fields := []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", c.Colors.Background, &opts.Palette.Background},
		{"text", c.Colors.Text, &opts.Palette.Text},
		{"star", c.Colors.Star, &opts.Palette.Star},
		{"border", c.Colors.Border, &opts.Palette.Border},
		{"footer", c.Colors.Footer, &opts.Palette.Footer},
	}
	for _, f := range fields {
		if f.hex == "" {
			continue
		}
		parsed, err := colorful.Hex(f.hex)
		if err != nil {
			return opts, fmt.Errorf("error parsing %s color %q: %v", f.name, f.hex, err)
		}
		*f.dst = parsed
	}

	if c.Card.FontFile != "" {
		data, err := os.ReadFile(c.Card.FontFile)
		if err != nil {
			return opts, fmt.Errorf("error reading font file: %v", err)
		}
		font, err := opentype.Parse(data)
		if err != nil {
			return opts, fmt.Errorf("error parsing font file %s: %v", c.Card.FontFile, err)
		}
		opts.Font = font
	}

	return opts, nil
}
