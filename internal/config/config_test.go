package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/bingoland/bingosmith/internal/card"
)

// setTempXDG points the XDG directories at throwaway locations so tests
// never touch the real config or library.
func setTempXDG(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
}

func TestLoadConfigCreatesDefault(t *testing.T) {
	setTempXDG(t)

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Card.Size != card.DefaultSize || cfg.Card.FontSize != card.DefaultFontSize {
		t.Errorf("default card section not applied: %+v", cfg.Card)
	}
	if cfg.Colors.Star != "#ffd700" {
		t.Errorf("Star = %q, want %q", cfg.Colors.Star, "#ffd700")
	}
	if _, err := os.Stat(GetConfigFilePath()); err != nil {
		t.Errorf("config file was not created: %v", err)
	}
}

func TestSaveAndReloadConfig(t *testing.T) {
	setTempXDG(t)

	cfg := DefaultConfig()
	cfg.WordsFile = "team.txt"
	cfg.Card.Size = 150
	cfg.Colors.Background = "#eee8d5"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if loaded.WordsFile != "team.txt" {
		t.Errorf("WordsFile = %q, want %q", loaded.WordsFile, "team.txt")
	}
	if loaded.Card.Size != 150 {
		t.Errorf("Card.Size = %d, want 150", loaded.Card.Size)
	}
	if loaded.Colors.Background != "#eee8d5" {
		t.Errorf("Background = %q, want %q", loaded.Colors.Background, "#eee8d5")
	}
}

func TestSetWordsFile(t *testing.T) {
	setTempXDG(t)

	if err := SetWordsFile("retro.txt"); err != nil {
		t.Fatalf("SetWordsFile: %v", err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.WordsFile != "retro.txt" {
		t.Errorf("WordsFile = %q, want %q", cfg.WordsFile, "retro.txt")
	}
}

func TestCardOptions(t *testing.T) {
	cfg := DefaultConfig()

	opts, err := cfg.CardOptions()
	if err != nil {
		t.Fatalf("CardOptions: %v", err)
	}
	if opts.Size != card.DefaultSize || opts.Padding != card.DefaultPadding {
		t.Errorf("geometry not carried over: %+v", opts)
	}

	r, g, b, _ := opts.Palette.Star.RGBA()
	if r != 0xffff || g != 0xd7d7 || b != 0 {
		t.Errorf("star color = (%#x, %#x, %#x), want gold", r, g, b)
	}
}

func TestCardOptionsEmptyColorKeepsDefault(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Text = ""

	opts, err := cfg.CardOptions()
	if err != nil {
		t.Fatalf("CardOptions: %v", err)
	}
	if opts.Palette.Text == nil {
		t.Fatal("empty color dropped the default instead of keeping it")
	}
}

func TestCardOptionsBadColor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Colors.Border = "not-a-color"

	if _, err := cfg.CardOptions(); err == nil {
		t.Fatal("expected an error for a malformed color")
	}
}

func TestCardOptionsFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "font.ttf")
	if err := os.WriteFile(path, goregular.TTF, 0644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Card.FontFile = path

	opts, err := cfg.CardOptions()
	if err != nil {
		t.Fatalf("CardOptions: %v", err)
	}
	if opts.Font == nil {
		t.Fatal("font file was not loaded")
	}
}

func TestCardOptionsBadFontFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("not a font"), 0644); err != nil {
		t.Fatalf("write font: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Card.FontFile = path

	if _, err := cfg.CardOptions(); err == nil {
		t.Fatal("expected an error for a malformed font file")
	}
}

func TestGetWordsPath(t *testing.T) {
	setTempXDG(t)

	library := GetWordListLibraryPath()
	if err := os.MkdirAll(library, 0755); err != nil {
		t.Fatalf("create library: %v", err)
	}
	if err := os.WriteFile(filepath.Join(library, "team.txt"), []byte("alpha\nbeta\n"), 0644); err != nil {
		t.Fatalf("write list: %v", err)
	}

	t.Run("library name", func(t *testing.T) {
		path, err := GetWordsPath("team.txt")
		if err != nil {
			t.Fatalf("GetWordsPath: %v", err)
		}
		if want := filepath.Join(library, "team.txt"); path != want {
			t.Errorf("path = %q, want %q", path, want)
		}
	})

	t.Run("file path", func(t *testing.T) {
		direct := filepath.Join(t.TempDir(), "direct.txt")
		if err := os.WriteFile(direct, []byte("gamma\n"), 0644); err != nil {
			t.Fatalf("write list: %v", err)
		}

		path, err := GetWordsPath(direct)
		if err != nil {
			t.Fatalf("GetWordsPath: %v", err)
		}
		if path != direct {
			t.Errorf("path = %q, want %q", path, direct)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := GetWordsPath("no-such-list.txt"); err == nil {
			t.Fatal("expected an error for an unknown list")
		}
	})
}
