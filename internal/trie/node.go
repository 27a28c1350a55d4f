// Package trie implements a character-level prefix tree used for word
// completion. Words may carry an integer popularity that orders ranked
// predictions.
package trie

// Node represents a node in the trie
type Node struct {
	// children maps the next character to the child node
	children map[rune]*Node

	// order records the branch characters in the order they were created
	order []rune

	// isEnd marks if this node terminates a stored word
	isEnd bool

	// word is the stored word (only meaningful if isEnd)
	word string

	// popularity ranks the word for PredictN (only meaningful if ranked)
	popularity int
	ranked     bool
}

// newNode creates a new trie node
func newNode() *Node {
	return &Node{
		children: make(map[rune]*Node),
	}
}

// Word returns the word terminated at this node, if any.
func (n *Node) Word() (string, bool) {
	return n.word, n.isEnd
}

// Popularity returns the popularity of the word terminated at this node.
// It reports false for non-terminal nodes and for words inserted without one.
func (n *Node) Popularity() (int, bool) {
	return n.popularity, n.isEnd && n.ranked
}

// NumChildren returns the number of outgoing edges.
func (n *Node) NumChildren() int {
	return len(n.order)
}

// Child returns the child reached over the edge labelled r.
func (n *Node) Child(r rune) (*Node, bool) {
	child, ok := n.children[r]
	return child, ok
}

// child appends a new edge if r is not yet a branch of n.
func (n *Node) child(r rune) *Node {
	if c, ok := n.children[r]; ok {
		return c
	}
	c := newNode()
	n.children[r] = c
	n.order = append(n.order, r)
	return c
}

// detach drops the edge r and the whole subtree below it.
func (n *Node) detach(r rune) {
	if _, ok := n.children[r]; !ok {
		return
	}
	delete(n.children, r)
	for i, ch := range n.order {
		if ch == r {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
}

// record returns the word record stored at n.
func (n *Node) record() WordRecord {
	return WordRecord{Word: n.word, Popularity: n.popularity, Ranked: n.ranked}
}

// WordRecord pairs a stored word with its optional popularity.
type WordRecord struct {
	Word       string
	Popularity int
	Ranked     bool
}

// Trie represents a trie data structure. It is not safe for concurrent use;
// callers sharing a Trie across goroutines must guard it with their own lock.
type Trie struct {
	root *Node
}

// New creates a new empty trie
func New() *Trie {
	return &Trie{
		root: newNode(),
	}
}

// Root returns the root node. The root never terminates a word.
func (t *Trie) Root() *Node {
	return t.root
}
