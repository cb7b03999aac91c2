// Package wordtrie implements an in-memory prefix tree that maps text keys
// ("words") to zero or more values.
//
// Words are split into tokens by a pluggable Tokenizer (grapheme clusters by
// default) and stored one token per level, so exact and prefix lookups cost
// time proportional to the key length rather than the number of stored words.
//
// Two variants are provided:
//
//	Trie         marks word ends only.
//	DataTrie[D]  attaches an ordered list of D values to every word end.
//
// Removal prunes every node that only existed for the removed word, prefix
// removal drops whole subtrees at once, and two tries of the same variant can
// be merged by moving subtrees instead of copying them.
//
// A trie is not safe for concurrent mutation. Readers may share a trie as long
// as no writer runs at the same time; callers that need concurrent writes must
// guard the trie with their own lock.
//
// Usage:
//
//	t := wordtrie.NewData[int]()
//	t.Insert("eat", 1)
//	t.Insert("eating", 2)
//
//	words, _ := t.Find("ea")       // [eat eating] in unspecified order
//	data, _ := t.Data("eat", false) // [&1]
//	removed, _ := t.RemovePrefix("eat") // [2]; "eat" itself stays
package wordtrie

import (
	"strings"

	"github.com/gnolang/wordtrie/internal/node"
	"github.com/gnolang/wordtrie/internal/token"
)

// Tokenizer splits a word into the tokens used as child keys.
// Implementations must be deterministic and reversible by concatenation.
type Tokenizer interface {
	Tokenize(word string) []string
}

// Built-in tokenizers.
var (
	// ByteTokens splits words into single bytes. Only safe for ASCII input.
	ByteTokens Tokenizer = token.Bytes
	// RuneTokens splits words into code points.
	RuneTokens Tokenizer = token.Runes
	// GraphemeTokens splits words into extended grapheme clusters. It is the default.
	GraphemeTokens Tokenizer = token.Graphemes
)

// NFC wraps a tokenizer so that words are normalized to Unicode NFC first.
func NFC(t Tokenizer) Tokenizer {
	return token.Normalized(t)
}

// TokenizerByName resolves "byte", "rune" or "grapheme" with an optional
// "+nfc" suffix.
func TokenizerByName(name string) (Tokenizer, error) {
	return token.ByName(name)
}

// Option configures a trie at construction time.
type Option func(*options)

type options struct {
	tokenizer Tokenizer
}

// WithTokenizer sets the tokenizer used by every operation of the trie.
// Tries that are merged or compared must use the same tokenizer.
func WithTokenizer(t Tokenizer) Option {
	return func(o *options) {
		if t != nil {
			o.tokenizer = t
		}
	}
}

// base carries the state and the variant-independent operations shared by
// Trie and DataTrie.
type base[D any] struct {
	root *node.Node[D]
	// len is the number of word ends reachable from root.
	len       int
	tokenizer Tokenizer
	variant   node.Variant
}

func newBase[D any](variant node.Variant, opts []Option) base[D] {
	o := options{tokenizer: GraphemeTokens}
	for _, opt := range opts {
		opt(&o)
	}
	return base[D]{
		root:      node.New[D](),
		tokenizer: o.tokenizer,
		variant:   variant,
	}
}

// insert marks word as a word end and returns its node.
// The empty word is never stored; it returns nil.
func (b *base[D]) insert(word string) *node.Node[D] {
	tokens := b.tokenizer.Tokenize(word)
	if len(tokens) == 0 {
		return nil
	}

	end := b.root.Insert(tokens)
	if end.Associate(b.variant) {
		b.len++
	}
	return end
}

// finalNode returns the node reached by query, the root for an empty query.
func (b *base[D]) finalNode(query string) (*node.Node[D], []string, bool) {
	tokens := b.tokenizer.Tokenize(query)
	end, ok := b.root.Walk(tokens)
	return end, tokens, ok
}

func (b *base[D]) remove(word string) (node.Association[D], bool) {
	end, tokens, ok := b.finalNode(word)
	if !ok || !end.IsAssociated() {
		return node.Association[D]{}, false
	}

	var removed node.Association[D]
	if end.IsLeaf() {
		removed = b.root.RemoveOne(tokens).Assoc
	} else {
		// end is a prefix of other words and must stay in the tree.
		removed = end.Disassociate()
	}

	b.len--
	return removed, true
}

func (b *base[D]) removePrefix(prefix string, collect *[]D) bool {
	end, tokens, ok := b.finalNode(prefix)
	if !ok {
		return false
	}

	b.len -= end.RemoveDescendants(collect)

	// A prefix that is not a word itself is now a dead leaf.
	if len(tokens) > 0 && !end.IsAssociated() {
		b.root.RemoveOne(tokens)
	}
	return true
}

// Find returns every stored word that begins with query. The order is
// unspecified. It returns false if no stored word has that prefix.
func (b *base[D]) Find(query string) ([]string, bool) {
	end, tokens, ok := b.finalNode(query)
	if !ok {
		return nil, false
	}

	var words []string
	end.FindWords(strings.Join(tokens, ""), &words)
	return words, len(words) > 0
}

// All returns every stored word in unspecified order.
func (b *base[D]) All() []string {
	words := make([]string, 0, b.len)
	b.root.FindWords("", &words)
	return words
}

// Longest returns all words tied for the largest number of tokens. Length is
// counted in tokens of the trie's tokenizer, not in bytes, so with the default
// grapheme tokenizer a letter followed by a combining accent counts as one.
func (b *base[D]) Longest() []string {
	return b.root.Extremes("", 0, node.Longest)
}

// Shortest returns all words tied for the smallest number of tokens, counted
// like Longest.
func (b *base[D]) Shortest() []string {
	return b.root.Extremes("", 0, node.Shortest)
}

// Contains reports whether word is stored as a complete word.
func (b *base[D]) Contains(word string) bool {
	end, tokens, ok := b.finalNode(word)
	return ok && len(tokens) > 0 && end.IsAssociated()
}

// Len returns the number of stored words.
func (b *base[D]) Len() int {
	return b.len
}

// IsEmpty reports whether the trie stores no words.
func (b *base[D]) IsEmpty() bool {
	return b.len == 0
}

// Clear removes every word.
func (b *base[D]) Clear() {
	b.root.RemoveAll(nil)
	b.len = 0
}

// String renders the tree as token(subtree) groups in sorted order with '*'
// marking word ends, e.g. "a(b(*)c(*))".
func (b *base[D]) String() string {
	return b.root.String()
}

// absorb moves every word of other into b and leaves other empty.
// Absorbing b itself is a no-op.
func (b *base[D]) absorb(other *base[D]) {
	if other == b {
		return
	}
	shared := b.root.Merge(other.root)
	b.len += other.len - shared
	other.len = 0
}
