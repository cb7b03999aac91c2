package formatter

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/gnolang/wordtrie/internal/index"
)

// WordsResult is the JSON form of a prefix search.
type WordsResult struct {
	Prefix string   `json:"prefix"`
	Words  []string `json:"words"`
}

// LocationsResult is the JSON form of a lookup.
type LocationsResult struct {
	Word      string           `json:"word"`
	Locations []index.Location `json:"locations"`
}

// PruneResult is the JSON form of a prefix removal.
type PruneResult struct {
	Prefix    string `json:"prefix"`
	Removed   int    `json:"removed"`
	Remaining int    `json:"remaining"`
}

// NewWordsResult sorts words so that output is stable.
func NewWordsResult(prefix string, words []string) WordsResult {
	sorted := append([]string{}, words...)
	sort.Strings(sorted)
	return WordsResult{Prefix: prefix, Words: sorted}
}

// WriteJSON encodes v as indented JSON followed by a newline.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
