package node

// Ordering selects which extreme Extremes keeps.
type Ordering int

const (
	// Shortest keeps the words with the fewest tokens.
	Shortest Ordering = -1
	// Longest keeps the words with the most tokens.
	Longest Ordering = 1
)

// FindWords appends every word in the subtree rooted at n to found.
// prefix is the text already spelled by the path from the root to n.
// A word is emitted even when it is a strict prefix of other words.
func (n *Node[D]) FindWords(prefix string, found *[]string) {
	n.findWords([]byte(prefix), found)
}

func (n *Node[D]) findWords(path []byte, found *[]string) {
	if n.IsAssociated() {
		*found = append(*found, string(path))
	}

	for tok, child := range n.children {
		child.findWords(append(path, tok...), found)
	}
}

type extremal struct {
	words []string
	depth int
	ord   Ordering
}

// offer applies the length ordering to a candidate word found at the given depth.
func (e *extremal) offer(word string, depth int) {
	if len(e.words) > 0 {
		switch {
		case depth == e.depth:
		case (depth < e.depth) == (e.ord == Shortest):
			e.words = e.words[:0]
		default:
			return
		}
	}
	e.depth = depth
	e.words = append(e.words, word)
}

// Extremes returns every word below n whose token length is extremal under ord.
// All words tied at that length are returned; an empty subtree yields an empty slice.
func (n *Node[D]) Extremes(prefix string, depth int, ord Ordering) []string {
	acc := &extremal{words: []string{}, ord: ord}
	n.extremes([]byte(prefix), depth, acc)
	return acc.words
}

func (n *Node[D]) extremes(path []byte, depth int, acc *extremal) {
	if n.IsAssociated() {
		acc.offer(string(path), depth)
	}

	for tok, child := range n.children {
		child.extremes(append(path, tok...), depth+1, acc)
	}
}

// CollectData appends a pointer to every data item stored in the subtree rooted at n.
// The pointers alias the stored items, so callers may update them in place.
func (n *Node[D]) CollectData(found *[]*D) {
	for i := range n.assoc.Data {
		*found = append(*found, &n.assoc.Data[i])
	}

	for _, child := range n.children {
		child.CollectData(found)
	}
}

// DataRefs returns pointers to the data items of n's own word end.
func (n *Node[D]) DataRefs() ([]*D, bool) {
	if !n.IsAssociated() {
		return nil, false
	}
	refs := make([]*D, 0, len(n.assoc.Data))
	for i := range n.assoc.Data {
		refs = append(refs, &n.assoc.Data[i])
	}
	return refs, true
}
