package wordtrie

import "github.com/gnolang/wordtrie/internal/node"

// DataTrie is a prefix tree whose word ends carry an ordered list of values.
type DataTrie[D any] struct {
	base[D]
}

// NewData returns an empty DataTrie.
func NewData[D any](opts ...Option) *DataTrie[D] {
	return &DataTrie[D]{base: newBase[D](node.WithData, opts)}
}

// Insert stores word and appends data to its value list. Inserting the same
// word twice keeps both values in insertion order. The empty word is ignored.
func (t *DataTrie[D]) Insert(word string, data D) {
	if end := t.insert(word); end != nil {
		end.PushData(data)
	}
}

// InsertNoData stores word without appending a value, so data can be
// attached by later calls to Insert.
func (t *DataTrie[D]) InsertNoData(word string) {
	t.insert(word)
}

// Remove deletes word and returns the values it carried. A stored word
// without values yields an empty, non-nil slice. It returns false if word
// was not stored.
func (t *DataTrie[D]) Remove(word string) ([]D, bool) {
	removed, ok := t.remove(word)
	if !ok {
		return nil, false
	}
	return removed.Data, true
}

// RemovePrefix deletes every word that strictly extends prefix and returns
// all of their values. The word prefix itself and its values are kept. It
// returns false if no stored word passes through prefix.
func (t *DataTrie[D]) RemovePrefix(prefix string) ([]D, bool) {
	collected := []D{}
	if !t.removePrefix(prefix, &collected) {
		return nil, false
	}
	return collected, true
}

// Data returns pointers to the values of query. With softMatch, the values of
// every word beginning with query are returned; otherwise query must be a
// stored word. The pointers alias stored values and may be written through.
func (t *DataTrie[D]) Data(query string, softMatch bool) ([]*D, bool) {
	end, _, ok := t.finalNode(query)
	if !ok {
		return nil, false
	}

	if !softMatch {
		return end.DataRefs()
	}

	refs := []*D{}
	end.CollectData(&refs)
	return refs, true
}

// ClearData removes and returns the values of word while keeping the word.
// It returns false if word is not stored.
func (t *DataTrie[D]) ClearData(word string) ([]D, bool) {
	end, tokens, ok := t.finalNode(word)
	if !ok || len(tokens) == 0 {
		return nil, false
	}
	return end.ClearData()
}

// MergeInto moves every word of other into t. Values of words stored in both
// are appended after t's own values. other is left empty.
// t.MergeInto(t) leaves t unchanged.
func (t *DataTrie[D]) MergeInto(other *DataTrie[D]) {
	t.absorb(&other.base)
}

// EqualFunc reports whether both tries store the same words with equal value
// lists, comparing values with eq.
func (t *DataTrie[D]) EqualFunc(other *DataTrie[D], eq func(a, b D) bool) bool {
	return t.root.Equal(other.root, eq)
}

// Equal reports whether a and b store the same words with equal value lists.
func Equal[D comparable](a, b *DataTrie[D]) bool {
	return a.EqualFunc(b, func(x, y D) bool { return x == y })
}

// MergeData returns the union of a and b. The trie with fewer words is merged
// into the larger one, so for words stored in both, the larger trie's values
// come first; on a tie a's values come first. Both arguments must not be used
// afterwards.
func MergeData[D any](a, b *DataTrie[D]) *DataTrie[D] {
	smaller, bigger := b, a
	if a.len < b.len {
		smaller, bigger = a, b
	}
	bigger.MergeInto(smaller)
	return bigger
}
