// Package token splits words into the units a prefix tree is keyed by.
//
// Every Tokenizer must be deterministic and reversible by concatenation:
// strings.Join(t.Tokenize(w), "") == w for the text the tokenizer was given.
// Normalized tokenizers rewrite the text first, so the identity holds for the
// normalized form only.
package token

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"
)

// ErrUnknownTokenizer is returned by ByName for unsupported names.
var ErrUnknownTokenizer = errors.New("unknown tokenizer")

// Tokenizer splits a word into tokens.
type Tokenizer interface {
	Tokenize(word string) []string
}

// Func adapts an ordinary function to the Tokenizer interface.
type Func func(word string) []string

func (f Func) Tokenize(word string) []string { return f(word) }

// Bytes yields one token per byte. Multi-byte characters are split apart,
// which is only safe for ASCII input.
var Bytes Tokenizer = Func(func(word string) []string {
	tokens := make([]string, len(word))
	for i := range len(word) {
		tokens[i] = word[i : i+1]
	}
	return tokens
})

// Runes yields one token per UTF-8 encoded code point.
var Runes Tokenizer = Func(func(word string) []string {
	tokens := make([]string, 0, utf8.RuneCountInString(word))
	for len(word) > 0 {
		_, size := utf8.DecodeRuneInString(word)
		tokens = append(tokens, word[:size])
		word = word[size:]
	}
	return tokens
})

// Graphemes yields one token per extended grapheme cluster, so "é" or a
// flag emoji stays a single token.
var Graphemes Tokenizer = Func(func(word string) []string {
	tokens := make([]string, 0, len(word))
	state := -1
	var cluster string
	for len(word) > 0 {
		cluster, word, _, state = uniseg.FirstGraphemeClusterInString(word, state)
		tokens = append(tokens, cluster)
	}
	return tokens
})

// Normalized returns a tokenizer that converts words to Unicode NFC before
// delegating to inner, so canonically equivalent spellings share one path.
func Normalized(inner Tokenizer) Tokenizer {
	return Func(func(word string) []string {
		return inner.Tokenize(norm.NFC.String(word))
	})
}

const nfcSuffix = "+nfc"

// ByName resolves a tokenizer from its configuration name: "byte", "rune" or
// "grapheme", optionally followed by "+nfc".
func ByName(name string) (Tokenizer, error) {
	base, normalize := strings.CutSuffix(strings.ToLower(strings.TrimSpace(name)), nfcSuffix)

	var t Tokenizer
	switch base {
	case "byte", "bytes":
		t = Bytes
	case "rune", "runes":
		t = Runes
	case "", "grapheme", "graphemes":
		t = Graphemes
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownTokenizer, name)
	}

	if normalize {
		return Normalized(t), nil
	}
	return t, nil
}
