package node

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func split(word string) []string {
	return strings.Split(word, "")
}

func buildTree(variant Variant, words ...string) *Node[int] {
	root := New[int]()
	for i, w := range words {
		end := root.Insert(split(w))
		end.Associate(variant)
		end.PushData(i)
	}
	return root
}

func sortedWords(n *Node[int], prefix string) []string {
	var words []string
	n.FindWords(prefix, &words)
	sort.Strings(words)
	return words
}

func intEq(a, b int) bool { return a == b }

func TestEqCorrectness(t *testing.T) {
	tests := []struct {
		name     string
		setup    func() (*Node[int], *Node[int])
		expectEq bool
	}{
		{
			name: "identical_empty_nodes",
			setup: func() (*Node[int], *Node[int]) {
				return New[int](), New[int]()
			},
			expectEq: true,
		},
		{
			name: "identical_single_path",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc"), buildTree(Untagged, "abc")
			},
			expectEq: true,
		},
		{
			name: "identical_multiple_paths",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc", "abd", "xyz"), buildTree(Untagged, "xyz", "abd", "abc")
			},
			expectEq: true,
		},
		{
			name: "different_paths",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc"), buildTree(Untagged, "abd")
			},
			expectEq: false,
		},
		{
			name: "different_number_of_paths",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc"), buildTree(Untagged, "abc", "xyz")
			},
			expectEq: false,
		},
		{
			name: "different_path_lengths",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc"), buildTree(Untagged, "ab")
			},
			expectEq: false,
		},
		{
			name: "prefix_overlap",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(Untagged, "abc", "ab"), buildTree(Untagged, "abc")
			},
			expectEq: false,
		},
		{
			name: "different_data",
			setup: func() (*Node[int], *Node[int]) {
				return buildTree(WithData, "a", "b"), buildTree(WithData, "b", "a")
			},
			expectEq: false,
		},
		{
			name: "empty_data_differs_from_untagged",
			setup: func() (*Node[int], *Node[int]) {
				a, b := New[int](), New[int]()
				a.Insert(split("ab")).Associate(WithData)
				b.Insert(split("ab")).Associate(Untagged)
				return a, b
			},
			expectEq: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n1, n2 := tt.setup()

			if got := n1.Equal(n2, intEq); got != tt.expectEq {
				t.Errorf("Equal returned %v, expected %v", got, tt.expectEq)
			}
			if got := n2.Equal(n1, intEq); got != tt.expectEq {
				t.Errorf("reversed Equal returned %v, expected %v", got, tt.expectEq)
			}
		})
	}
}

func TestNodeString(t *testing.T) {
	root := buildTree(Untagged, "abc", "abd", "ae", "f")

	expected := "a(b(c(*)d(*))e(*))f(*)"
	if str := root.String(); str != expected {
		t.Errorf("String() = %q, expected %q", str, expected)
	}
}

func TestAssociate(t *testing.T) {
	n := New[int]()
	assert.False(t, n.IsAssociated())

	assert.True(t, n.Associate(WithData))
	assert.False(t, n.Associate(WithData), "second associate is a no-op")
	assert.Equal(t, Tagged, n.Association().Kind)
	assert.Empty(t, n.Association().Data)

	n.PushData(5)
	n.PushData(3)
	assert.Equal(t, []int{5, 3}, n.Association().Data)

	prev := n.Disassociate()
	assert.Equal(t, []int{5, 3}, prev.Data)
	assert.False(t, n.IsAssociated())

	n.PushData(1)
	assert.False(t, n.IsAssociated(), "push on a non-word end is ignored")
}

func TestClearData(t *testing.T) {
	n := New[int]()
	_, ok := n.ClearData()
	assert.False(t, ok)

	n.Associate(WithData)
	n.PushData(7)
	data, ok := n.ClearData()
	require.True(t, ok)
	assert.Equal(t, []int{7}, data)
	assert.True(t, n.IsAssociated())
	assert.Empty(t, n.Association().Data)
}

func TestRemoveOne(t *testing.T) {
	tests := []struct {
		name      string
		words     []string
		remove    string
		remaining []string
		tree      string
		data      []int
	}{
		{
			name:      "only_word",
			words:     []string{"abc"},
			remove:    "abc",
			remaining: nil,
			tree:      "",
			data:      []int{0},
		},
		{
			name:      "deepest_word_prunes_to_word_end",
			words:     []string{"a", "ab", "abc", "abcd"},
			remove:    "abcd",
			remaining: []string{"a", "ab", "abc"},
			tree:      "a(*b(*c(*)))",
			data:      []int{3},
		},
		{
			name:      "prunes_to_branch_point",
			words:     []string{"abcd", "abx"},
			remove:    "abcd",
			remaining: []string{"abx"},
			tree:      "a(b(x(*)))",
			data:      []int{0},
		},
		{
			name:      "prunes_chain_below_root",
			words:     []string{"abc", "x"},
			remove:    "abc",
			remaining: []string{"x"},
			tree:      "x(*)",
			data:      []int{0},
		},
		{
			name:      "inner_word_keeps_path",
			words:     []string{"a", "ab", "abc", "abcd"},
			remove:    "abc",
			remaining: []string{"a", "ab", "abcd"},
			tree:      "a(*b(*c(d(*))))",
			data:      []int{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := buildTree(WithData, tt.words...)

			result := root.RemoveOne(split(tt.remove))

			assert.Equal(t, tt.data, result.Assoc.Data)
			assert.True(t, result.Assoc.IsWord())
			assert.Equal(t, tt.remaining, sortedWords(root, ""))
			assert.Equal(t, tt.tree, root.String())
			assert.Equal(t, len(tt.remaining), root.Count())
		})
	}
}

func TestRemoveOneMissingChildPanics(t *testing.T) {
	root := buildTree(Untagged, "abc")
	assert.Panics(t, func() {
		root.RemoveOne(split("abx"))
	})
}

func TestRemoveAll(t *testing.T) {
	root := buildTree(WithData, "ea", "eat", "eats", "eating")

	ea, ok := root.Walk(split("ea"))
	require.True(t, ok)

	var collected []int
	removed := ea.RemoveDescendants(&collected)

	sort.Ints(collected)
	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{1, 2, 3}, collected)
	assert.Equal(t, []string{"ea"}, sortedWords(root, ""))
	assert.True(t, ea.IsLeaf())

	removed = root.RemoveAll(nil)
	assert.Equal(t, 1, removed)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, 0, root.Count())
}

func TestFindWords(t *testing.T) {
	root := buildTree(Untagged, "word1", "word2", "word", "other", "w\u00f6rd")

	w, ok := root.Walk(split("wo"))
	require.True(t, ok)
	assert.Equal(t, []string{"word", "word1", "word2"}, sortedWords(w, "wo"))

	assert.Equal(t, []string{"other", "word", "word1", "word2", "w\u00f6rd"}, sortedWords(root, ""))

	_, ok = root.Walk(split("xyz"))
	assert.False(t, ok)
}

func TestExtremes(t *testing.T) {
	root := buildTree(Untagged, "a", "aa", "bb", "ccc", "cc", "c")

	shortest := root.Extremes("", 0, Shortest)
	sort.Strings(shortest)
	assert.Equal(t, []string{"a", "c"}, shortest)

	longest := root.Extremes("", 0, Longest)
	assert.Equal(t, []string{"ccc"}, longest)

	empty := New[int]()
	assert.Empty(t, empty.Extremes("", 0, Longest))
	assert.NotNil(t, empty.Extremes("", 0, Shortest))
}

func TestExtremesCountsTokensNotBytes(t *testing.T) {
	root := New[int]()
	root.Insert([]string{"\u00e9", "\u00e9"}).Associate(Untagged)
	root.Insert([]string{"a", "b", "c"}).Associate(Untagged)

	assert.Equal(t, []string{"abc"}, root.Extremes("", 0, Longest))
	assert.Equal(t, []string{"\u00e9\u00e9"}, root.Extremes("", 0, Shortest))
}

func TestCollectData(t *testing.T) {
	root := buildTree(WithData, "word1", "word2", "other")

	w, ok := root.Walk(split("word"))
	require.True(t, ok)

	var refs []*int
	w.CollectData(&refs)
	require.Len(t, refs, 2)

	for _, ref := range refs {
		*ref += 10
	}

	var values []int
	for _, ref := range refs {
		values = append(values, *ref)
	}
	sort.Ints(values)
	assert.Equal(t, []int{10, 11}, values)

	end, _ := root.Walk(split("word2"))
	assert.Equal(t, []int{11}, end.Association().Data)
}

func TestMerge(t *testing.T) {
	t.Run("disjoint_subtrees_move", func(t *testing.T) {
		lhs := buildTree(Untagged, "abc")
		rhs := buildTree(Untagged, "xyz")

		shared := lhs.Merge(rhs)

		assert.Equal(t, 0, shared)
		assert.Equal(t, []string{"abc", "xyz"}, sortedWords(lhs, ""))
		assert.True(t, rhs.IsLeaf())
	})

	t.Run("associates_inner_node", func(t *testing.T) {
		lhs := buildTree(Untagged, "word1")
		rhs := buildTree(Untagged, "word")

		shared := lhs.Merge(rhs)

		assert.Equal(t, 0, shared)
		assert.Equal(t, []string{"word", "word1"}, sortedWords(lhs, ""))
	})

	t.Run("into_itself_is_noop", func(t *testing.T) {
		root := buildTree(WithData, "abc", "abd", "x")

		shared := root.Merge(root)

		assert.Equal(t, 0, shared)
		assert.Equal(t, 3, root.Count())
		assert.Equal(t, "a(b(c(*)d(*)))x(*)", root.String())
		end, ok := root.Walk(split("abc"))
		require.True(t, ok)
		assert.Equal(t, []int{0}, end.Association().Data)
	})

	t.Run("shared_word_appends_data", func(t *testing.T) {
		lhs := New[int]()
		end := lhs.Insert(split("twice"))
		end.Associate(WithData)
		end.PushData(5)

		rhs := New[int]()
		end = rhs.Insert(split("twice"))
		end.Associate(WithData)
		end.PushData(3)
		rhs.Insert(split("tw")).Associate(WithData)

		shared := lhs.Merge(rhs)

		assert.Equal(t, 1, shared)
		got, ok := lhs.Walk(split("twice"))
		require.True(t, ok)
		assert.Equal(t, []int{5, 3}, got.Association().Data)
		assert.Equal(t, 2, lhs.Count())
	})
}
