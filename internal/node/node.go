package node

import (
	"sort"
	"strings"
)

/*
Prefix Tree Node

A Node is the recursive unit of the word trie. Every node owns a child table keyed by
token (a byte, a rune, or a grapheme cluster, depending on the tokenizer in use) and an
association that records whether some word terminates at the node.

1. Ownership:
	- Children are owned exclusively by their parent. There are no parent pointers and no
	subtree is ever shared between two parents, so whole subtrees can be moved between
	trees (merge) or dropped in one assignment (prefix removal).

2. Variants:
	- Untagged trees only mark word ends (Marked).
	- Tagged trees attach an ordered, possibly empty list of caller data (Tagged).
	- A tree is built entirely from one variant. Tagged with no data is a valid state and
	differs from None.

3. Invariants:
	- A node with no children and no association exists only while a deletion is in
	progress. Mutating operations prune such nodes before returning.
	- The root of a tree never carries an association.
*/

// Kind describes the word-end state of a node.
type Kind uint8

const (
	// None means no word terminates at the node.
	None Kind = iota
	// Marked is a word end of an untagged tree.
	Marked
	// Tagged is a word end of a tagged tree, carrying a data list.
	Tagged
)

func (k Kind) String() string {
	switch k {
	case Marked:
		return "marked"
	case Tagged:
		return "tagged"
	default:
		return "none"
	}
}

// Variant selects which association a tree uses for its word ends.
type Variant uint8

const (
	// Untagged trees mark word ends without data.
	Untagged Variant = iota
	// WithData trees attach a data list to every word end.
	WithData
)

// Association is the word-end marker of a node.
type Association[D any] struct {
	Kind Kind
	// Data is only meaningful for Tagged associations.
	Data []D
}

// IsWord reports whether the association marks a word end.
func (a Association[D]) IsWord() bool {
	return a.Kind != None
}

// Node is a single vertex of the prefix tree.
type Node[D any] struct {
	// children maps a token to the owned child node.
	children map[string]*Node[D]
	// assoc is present iff some word terminates here.
	assoc Association[D]
}

// New returns a node with an empty child table and no association.
// The table itself is allocated on the first insertion below the node.
func New[D any]() *Node[D] {
	return &Node[D]{}
}

// Len returns the number of children.
func (n *Node[D]) Len() int {
	return len(n.children)
}

// IsLeaf reports whether the node has no children.
func (n *Node[D]) IsLeaf() bool {
	return len(n.children) == 0
}

// IsAssociated reports whether a word terminates at the node.
func (n *Node[D]) IsAssociated() bool {
	return n.assoc.IsWord()
}

// Association returns the node's word-end association.
func (n *Node[D]) Association() Association[D] {
	return n.assoc
}

// Associate marks the node as a word end for the given variant.
// It returns false if the node was already associated.
func (n *Node[D]) Associate(v Variant) bool {
	if n.assoc.IsWord() {
		return false
	}
	if v == WithData {
		n.assoc = Association[D]{Kind: Tagged, Data: []D{}}
	} else {
		n.assoc = Association[D]{Kind: Marked}
	}
	return true
}

// Disassociate clears the word end and returns the association it held.
func (n *Node[D]) Disassociate() Association[D] {
	prev := n.assoc
	n.assoc = Association[D]{}
	return prev
}

// PushData appends d to the data list of a tagged word end.
// Nodes that are not tagged word ends are left untouched.
func (n *Node[D]) PushData(d D) {
	if n.assoc.Kind != Tagged {
		return
	}
	n.assoc.Data = append(n.assoc.Data, d)
}

// ClearData empties the data list of a tagged word end while keeping the word.
func (n *Node[D]) ClearData() ([]D, bool) {
	if n.assoc.Kind != Tagged {
		return nil, false
	}
	data := n.assoc.Data
	n.assoc.Data = []D{}
	return data, true
}

// Child returns the child for tok.
func (n *Node[D]) Child(tok string) (*Node[D], bool) {
	child, ok := n.children[tok]
	return child, ok
}

// ChildOrCreate returns the child for tok, creating it if absent.
func (n *Node[D]) ChildOrCreate(tok string) *Node[D] {
	child, exists := n.children[tok]
	if !exists {
		if n.children == nil {
			n.children = make(map[string]*Node[D])
		}
		child = New[D]()
		n.children[tok] = child
	}
	return child
}

// ClearChildren drops the whole child table, detaching every subtree below n.
func (n *Node[D]) ClearChildren() {
	n.children = nil
}

// Insert walks tokens from n, creating one child per novel token,
// and returns the terminal node.
func (n *Node[D]) Insert(tokens []string) *Node[D] {
	current := n
	for _, tok := range tokens {
		current = current.ChildOrCreate(tok)
	}
	return current
}

// Walk follows tokens from n and returns the terminal node.
// It returns false if any token on the path is missing.
func (n *Node[D]) Walk(tokens []string) (*Node[D], bool) {
	current := n
	for _, tok := range tokens {
		next, exists := current.children[tok]
		if !exists {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Count returns the number of word ends in the subtree rooted at n.
func (n *Node[D]) Count() int {
	count := 0
	if n.IsAssociated() {
		count++
	}
	for _, child := range n.children {
		count += child.Count()
	}
	return count
}

// sortedTokens returns the child tokens in lexical order.
func (n *Node[D]) sortedTokens() []string {
	keys := make([]string, 0, len(n.children))
	for key := range n.children {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Equal checks whether two subtrees are identical in structure and association.
// dataEq compares data items of tagged word ends; a nil dataEq ignores data.
func (n *Node[D]) Equal(other *Node[D], dataEq func(a, b D) bool) bool {
	// Quick checks for obvious differences
	if n.assoc.Kind != other.assoc.Kind || len(n.children) != len(other.children) {
		return false
	}
	if !equalData(n.assoc.Data, other.assoc.Data, dataEq) {
		return false
	}

	for key, child := range n.children {
		otherChild, exists := other.children[key]
		if !exists || !child.Equal(otherChild, dataEq) {
			return false
		}
	}

	return true
}

func equalData[D any](a, b []D, eq func(a, b D) bool) bool {
	if eq == nil {
		return true
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i]) {
			return false
		}
	}
	return true
}

// String returns a deterministic rendering of the subtree for debugging purposes.
// Word ends are marked with '*', children are rendered as token(subtree) in sorted order.
func (n *Node[D]) String() string {
	var sb strings.Builder
	n.writeTo(&sb)
	return sb.String()
}

func (n *Node[D]) writeTo(sb *strings.Builder) {
	if n.IsAssociated() {
		sb.WriteString("*")
	}

	for _, key := range n.sortedTokens() {
		sb.WriteString(key)
		sb.WriteString("(")
		n.children[key].writeTo(sb)
		sb.WriteString(")")
	}
}
