package wordlist

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []string
	}{
		{"simple", "alpha\nbeta\ngamma", []string{"alpha", "beta", "gamma"}},
		{"trailing newline", "alpha\nbeta\n", []string{"alpha", "beta"}},
		{"blank lines skipped", "alpha\n\n\nbeta\n", []string{"alpha", "beta"}},
		{"whitespace trimmed", "  alpha  \n\tbeta\n", []string{"alpha", "beta"}},
		{"crlf endings", "alpha\r\nbeta\r\n", []string{"alpha", "beta"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := Parse([]byte(tt.data))
			if !reflect.DeepEqual(list.Words, tt.want) {
				t.Errorf("Parse(%q).Words = %q, want %q", tt.data, list.Words, tt.want)
			}
		})
	}
}

func TestParseChecksum(t *testing.T) {
	data := []byte("alpha\nbeta\n")
	sum := md5.Sum(data)

	list := Parse(data)
	if want := hex.EncodeToString(sum[:]); list.Checksum != want {
		t.Errorf("Checksum = %q, want %q", list.Checksum, want)
	}

	// The checksum covers the raw bytes, so a formatting-only change to
	// the file still changes it.
	if Parse([]byte("alpha\nbeta")).Checksum == list.Checksum {
		t.Error("different raw bytes produced the same checksum")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "team.txt")
	if err := os.WriteFile(path, []byte("standup\nretro\nalign\n"), 0644); err != nil {
		t.Fatalf("write word list: %v", err)
	}

	list, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := []string{"standup", "retro", "align"}; !reflect.DeepEqual(list.Words, want) {
		t.Errorf("Words = %q, want %q", list.Words, want)
	}
	if list.Source != path {
		t.Errorf("Source = %q, want %q", list.Source, path)
	}
	if list.Checksum == "" {
		t.Error("Checksum is empty")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestDefault(t *testing.T) {
	list := Default()
	if len(list.Words) < 25 {
		t.Errorf("builtin list has %d words, a 5x5 card needs at least 25", len(list.Words))
	}
	if list.Source != BuiltinSource {
		t.Errorf("Source = %q, want %q", list.Source, BuiltinSource)
	}
	if list.Checksum == "" {
		t.Error("Checksum is empty")
	}
}
