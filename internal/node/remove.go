package node

import "fmt"

// Removed is the result threaded back through the single-word deletion recursion.
type Removed[D any] struct {
	// MustKeep tells the caller that the node it recursed into is still needed.
	MustKeep bool
	// Assoc is the association cleared at the terminal node of the removed word.
	Assoc Association[D]
}

// RemoveOne removes the word spelled by tokens below n and prunes every node that
// only existed for it.
//
// The terminal node is disassociated and its association is carried back up
// unchanged. While unwinding, a child that reported !MustKeep is detached; the
// current node is then needed if it still has children or is itself a word end.
// Pruning therefore stops at the first ancestor that is the root, a branch point,
// or another word's end.
//
// The path must exist; callers verify it with Walk first. A missing child is a
// contract violation and panics.
func (n *Node[D]) RemoveOne(tokens []string) Removed[D] {
	if len(tokens) == 0 {
		return Removed[D]{
			MustKeep: !n.IsLeaf(),
			Assoc:    n.Disassociate(),
		}
	}

	next, ok := n.children[tokens[0]]
	if !ok {
		panic(fmt.Sprintf("node: missing child %q on a verified path", tokens[0]))
	}

	result := next.RemoveOne(tokens[1:])
	if !result.MustKeep {
		// next holds no word and leads to none.
		delete(n.children, tokens[0])
		if len(n.children) == 0 {
			n.ClearChildren()
		}
	}

	result.MustKeep = !n.IsLeaf() || n.IsAssociated()
	return result
}

// RemoveAll disassociates every word end in the subtree rooted at n, including n,
// and drops all children. Data of tagged word ends is appended to collect when it
// is non-nil. It returns the number of word ends removed.
func (n *Node[D]) RemoveAll(collect *[]D) int {
	removed := 0
	for _, child := range n.children {
		removed += child.RemoveAll(collect)
	}

	if prev := n.Disassociate(); prev.IsWord() {
		removed++
		if collect != nil {
			*collect = append(*collect, prev.Data...)
		}
	}

	n.ClearChildren()
	return removed
}

// RemoveDescendants removes every word strictly below n, leaving n's own
// association untouched, and returns the number of word ends removed.
func (n *Node[D]) RemoveDescendants(collect *[]D) int {
	removed := 0
	for _, child := range n.children {
		removed += child.RemoveAll(collect)
	}
	n.ClearChildren()
	return removed
}
