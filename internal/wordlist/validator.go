package wordlist

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// A 5x5 card needs 25 phrases; shorter lists still render smaller cards
// but get flagged.
const recommendedWords = 25

// maxWordLength is the length above which a phrase is flagged: it will
// still render, but only after shrinking to the smallest font.
const maxWordLength = 64

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	Path    string
	Results ValidationResults
}

func NewValidator(path string) *Validator {
	return &Validator{
		Path:    path,
		Results: ValidationResults{},
	}
}

// Validate checks a word list file and reports everything it finds:
// Errors are states no card can be generated from, Warnings are states
// that degrade the result. An unreadable file fails outright.
func (v *Validator) Validate() (ValidationResults, error) {
	data, err := os.ReadFile(v.Path)
	if err != nil {
		return v.Results, fmt.Errorf("error reading word list: %v", err)
	}

	list := Parse(data)
	v.validateCount(list)
	v.validateEntries(list)

	return v.Results, nil
}

func (v *Validator) validateCount(list *List) {
	switch {
	case len(list.Words) == 0:
		v.Results.Errors = append(v.Results.Errors, "word list has no entries")
	case len(list.Words) < recommendedWords:
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("only %d words: a 5x5 card needs %d", len(list.Words), recommendedWords))
	}
}

func (v *Validator) validateEntries(list *List) {
	seen := make(map[string]int)
	for i, word := range list.Words {
		if first, ok := seen[word]; ok {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("duplicate entry %q (lines %d and %d of the parsed list)", word, first+1, i+1))
			continue
		}
		seen[word] = i

		if utf8.RuneCountInString(word) > maxWordLength {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("entry %q is longer than %d characters and will render very small", word, maxWordLength))
		}
		if strings.ContainsAny(word, "\t") {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("entry %q contains a tab character", word))
		}
	}
}
