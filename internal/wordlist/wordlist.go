// Package wordlist loads the phrase pools that cards are generated from.
// A list is a plain text file with one phrase per line; the loader also
// fingerprints the raw bytes so a card's footer can identify exactly which
// list it was drawn from.
package wordlist

import (
	"crypto/md5"
	_ "embed"
	"encoding/hex"
	"fmt"
	"os"
	"strings"
)

//go:embed default.dat
var defaultData []byte

// BuiltinSource is the Source value of the embedded default list.
const BuiltinSource = "builtin"

// List is a loaded word list.
type List struct {
	// Words holds the phrases in file order.
	Words []string
	// Checksum is the md5 hex digest of the raw file bytes, taken before
	// any parsing so it identifies the exact file.
	Checksum string
	// Source is the path the list was read from, or BuiltinSource.
	Source string
}

// Load reads a word list from a file.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading word list: %v", err)
	}
	list := Parse(data)
	list.Source = path
	return list, nil
}

// Parse splits raw word list bytes into phrases: one per line, surrounding
// whitespace trimmed (which also strips the carriage returns of CRLF
// files), blank lines skipped.
func Parse(data []byte) *List {
	sum := md5.Sum(data)

	var words []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}

	return &List{Words: words, Checksum: hex.EncodeToString(sum[:])}
}

// Default returns the embedded meeting-buzzword list, enough to fill a
// 5x5 card with room to spare.
func Default() *List {
	list := Parse(defaultData)
	list.Source = BuiltinSource
	return list
}
