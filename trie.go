package wordtrie

import "github.com/gnolang/wordtrie/internal/node"

// Trie is a prefix tree that only marks word ends.
type Trie struct {
	base[struct{}]
}

// New returns an empty Trie.
func New(opts ...Option) *Trie {
	return &Trie{base: newBase[struct{}](node.Untagged, opts)}
}

// Insert stores word. Inserting a stored word again has no effect, and the
// empty word is ignored.
func (t *Trie) Insert(word string) {
	t.insert(word)
}

// Remove deletes word and prunes the nodes that only existed for it.
// It returns false if word was not stored.
func (t *Trie) Remove(word string) bool {
	_, ok := t.remove(word)
	return ok
}

// RemovePrefix deletes every word that strictly extends prefix. The word
// prefix itself is kept if stored. It returns false if no stored word passes
// through prefix.
func (t *Trie) RemovePrefix(prefix string) bool {
	return t.removePrefix(prefix, nil)
}

// MergeInto moves every word of other into t. other is left empty.
// t.MergeInto(t) leaves t unchanged.
func (t *Trie) MergeInto(other *Trie) {
	t.absorb(&other.base)
}

// Equal reports whether both tries store exactly the same words.
func (t *Trie) Equal(other *Trie) bool {
	return t.root.Equal(other.root, nil)
}

// Merge returns the union of a and b. The trie with fewer words is merged into
// the larger one, which is returned; both arguments must not be used afterwards.
func Merge(a, b *Trie) *Trie {
	smaller, bigger := b, a
	if a.len < b.len {
		smaller, bigger = a, b
	}
	bigger.MergeInto(smaller)
	return bigger
}
