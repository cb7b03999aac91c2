package node

// Merge moves every word of rhs into n and returns the number of words both
// subtrees already had in common.
//
// For every child of rhs:
//   - if n has no child for that token, the whole rhs subtree is moved over as is;
//   - otherwise both children are merged recursively. If only the rhs child is a
//     word end, n's child takes over its association. If both are word ends, rhs
//     data is appended after n's data.
//
// rhs must not be used afterwards: its subtrees now belong to n. Merging a
// node into itself changes nothing and returns 0.
func (n *Node[D]) Merge(rhs *Node[D]) int {
	if rhs == n {
		return 0
	}
	shared := 0

	for tok, rhsChild := range rhs.children {
		selfChild, exists := n.children[tok]
		if !exists {
			if n.children == nil {
				n.children = make(map[string]*Node[D], len(rhs.children))
			}
			n.children[tok] = rhsChild
			continue
		}

		// Edge case: adding "word" to "word1" must associate the 'd' node.
		switch {
		case !rhsChild.IsAssociated():
		case !selfChild.IsAssociated():
			selfChild.assoc = rhsChild.assoc
		default:
			selfChild.assoc.Data = append(selfChild.assoc.Data, rhsChild.assoc.Data...)
			shared++
		}

		shared += selfChild.Merge(rhsChild)
	}

	rhs.ClearChildren()
	return shared
}
