package trie

import "unicode/utf8"

// FoldFunc computes the value of a node from the node itself and the already
// folded values of its children, given in edge order.
type FoldFunc[T any] func(n *Node, children []T) T

// Fold computes f bottom-up over the subtree rooted at n.
func Fold[T any](n *Node, f FoldFunc[T]) T {
	values := make([]T, 0, len(n.order))
	for _, ch := range n.order {
		values = append(values, Fold(n.children[ch], f))
	}
	return f(n, values)
}

// Size returns the number of nodes, the root included.
func (t *Trie) Size() int {
	return Fold(t.root, func(_ *Node, children []int) int {
		size := 1
		for _, c := range children {
			size += c
		}
		return size
	})
}

// Height returns -1 for a trie with no words and otherwise the length of the
// longest root-to-leaf path minus one.
func (t *Trie) Height() int {
	return Fold(t.root, func(_ *Node, children []int) int {
		if len(children) == 0 {
			return -1
		}
		tallest := children[0]
		for _, c := range children[1:] {
			tallest = max(tallest, c)
		}
		return tallest + 1
	})
}

// NumLeaves returns the number of nodes without children.
func (t *Trie) NumLeaves() int {
	return Fold(t.root, func(_ *Node, children []int) int {
		if len(children) == 0 {
			return 1
		}
		leaves := 0
		for _, c := range children {
			leaves += c
		}
		return leaves
	})
}

// MaximumBranching returns the largest number of outgoing edges of any node.
func (t *Trie) MaximumBranching() int {
	return Fold(t.root, func(n *Node, children []int) int {
		widest := n.NumChildren()
		for _, c := range children {
			widest = max(widest, c)
		}
		return widest
	})
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return Fold(t.root, func(n *Node, children []int) int {
		count := 0
		if n.isEnd {
			count = 1
		}
		for _, c := range children {
			count += c
		}
		return count
	})
}

// LongestWord returns the longest string spelled from the root to a leaf.
// On ties the first branch in edge order wins.
func (t *Trie) LongestWord() string {
	return longestFrom(t.root)
}

func longestFrom(n *Node) string {
	longest := ""
	for _, ch := range n.order {
		candidate := string(ch) + longestFrom(n.children[ch])
		if utf8.RuneCountInString(candidate) > utf8.RuneCountInString(longest) {
			longest = candidate
		}
	}
	return longest
}

// Stats is a snapshot of the structural analytics.
type Stats struct {
	Words            int
	Nodes            int
	Height           int
	Leaves           int
	MaximumBranching int
	LongestWord      string
}

// Stats gathers all analytics in one call.
func (t *Trie) Stats() Stats {
	return Stats{
		Words:            t.Len(),
		Nodes:            t.Size(),
		Height:           t.Height(),
		Leaves:           t.NumLeaves(),
		MaximumBranching: t.MaximumBranching(),
		LongestWord:      t.LongestWord(),
	}
}
