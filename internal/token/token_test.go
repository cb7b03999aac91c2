package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		tokenizer Tokenizer
		input     string
		expected  []string
	}{
		{"bytes_ascii", Bytes, "word", []string{"w", "o", "r", "d"}},
		{"bytes_empty", Bytes, "", []string{}},
		{"runes_ascii", Runes, "abc", []string{"a", "b", "c"}},
		{"runes_multibyte", Runes, "w\u00f6rd", []string{"w", "\u00f6", "r", "d"}},
		{"runes_decomposed", Runes, "e\u0301", []string{"e", "\u0301"}},
		{"graphemes_decomposed", Graphemes, "e\u0301t", []string{"e\u0301", "t"}},
		{"graphemes_flag", Graphemes, "\U0001F1E9\U0001F1EAx", []string{"\U0001F1E9\U0001F1EA", "x"}},
		{"graphemes_empty", Graphemes, "", []string{}},
		{"normalized_composes", Normalized(Runes), "e\u0301t", []string{"\u00e9", "t"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tt.tokenizer.Tokenize(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestTokenizersAreReversible(t *testing.T) {
	t.Parallel()

	words := []string{"", "a", "eating", "na\u00efve", "e\u0301", "\U0001F469\u200D\U0001F469\u200D\U0001F467", "\u65e5\u672c\u8a9e"}
	for _, tok := range []Tokenizer{Bytes, Runes, Graphemes} {
		for _, w := range words {
			assert.Equal(t, w, strings.Join(tok.Tokenize(w), ""))
		}
	}
}

func TestByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"byte", "rune", "grapheme", "", "Grapheme+NFC", "rune+nfc"} {
		tok, err := ByName(name)
		require.NoError(t, err, name)
		assert.NotNil(t, tok)
	}

	tok, err := ByName("rune+nfc")
	require.NoError(t, err)
	assert.Equal(t, []string{"\u00e9"}, tok.Tokenize("e\u0301"))

	_, err = ByName("words")
	assert.ErrorIs(t, err, ErrUnknownTokenizer)
}
