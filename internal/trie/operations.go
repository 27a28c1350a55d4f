package trie

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrEmptyWord is returned when inserting the empty string
	ErrEmptyWord = errors.New("word must not be empty")
	// ErrInvalidWord is returned when inserting a word that is not valid UTF-8
	ErrInvalidWord = errors.New("word is not valid UTF-8")
	// ErrUnranked is returned by PredictN when a candidate has no popularity
	ErrUnranked = errors.New("candidate word has no popularity")
)

// Insert adds a word without popularity. Inserting a word that is already
// present is a no-op.
func (t *Trie) Insert(word string) error {
	if word == "" {
		return ErrEmptyWord
	}
	if !utf8.ValidString(word) {
		return ErrInvalidWord
	}
	insertAt(t.root, word, 0, false)
	return nil
}

// InsertWithPopularity adds a word ranked by popularity. The popularity of a
// word that is already present is left untouched.
func (t *Trie) InsertWithPopularity(word string, popularity int) error {
	if word == "" {
		return ErrEmptyWord
	}
	if !utf8.ValidString(word) {
		return ErrInvalidWord
	}
	insertAt(t.root, word, popularity, true)
	return nil
}

// insertAt walks from root creating missing edges and marks the final node
// terminal unless it already is.
func insertAt(root *Node, word string, popularity int, ranked bool) {
	node := root
	for _, ch := range word {
		node = node.child(ch)
	}
	if node.isEnd {
		return
	}
	node.isEnd = true
	node.word = word
	node.popularity = popularity
	node.ranked = ranked
}

// Contains reports whether word is stored in the trie. A node that is only a
// branching point does not count. The empty string is never stored.
func (t *Trie) Contains(word string) bool {
	_, ok := t.Lookup(word)
	return ok
}

// Lookup returns the record stored for word, if any.
func (t *Trie) Lookup(word string) (WordRecord, bool) {
	if word == "" {
		return WordRecord{}, false
	}
	node := t.findNode(word)
	if node != nil && node.isEnd {
		return node.record(), true
	}
	return WordRecord{}, false
}

// FindPrefix returns the node reached by following prefix from the root.
// The empty prefix resolves to the root.
func (t *Trie) FindPrefix(prefix string) (*Node, bool) {
	node := t.findNode(prefix)
	return node, node != nil
}

// findNode returns the node corresponding to the key, or nil if not found.
// Keys that are not valid UTF-8 are never found.
func (t *Trie) findNode(key string) *Node {
	if !utf8.ValidString(key) {
		return nil
	}
	node := t.root
	for _, ch := range key {
		child, exists := node.children[ch]
		if !exists {
			return nil
		}
		node = child
	}
	return node
}

// Remove deletes word from the trie and reports whether the node that held
// it had no children. It returns false both when the word is absent and when
// the word terminated an internal node.
//
// The subtree under the word's first character is collected and detached,
// then every collected word except the removed one is inserted again, so no
// dead branch is left behind. The reinserted edge moves to the end of the
// root's edge order. The cost is proportional to that subtree, not to the
// word length.
func (t *Trie) Remove(word string) bool {
	node := t.findNode(word)
	if word == "" || node == nil || !node.isEnd {
		return false
	}
	wasLeaf := len(node.children) == 0

	first, _ := utf8.DecodeRuneInString(word)
	records := collect(t.root.children[first], nil)
	t.root.detach(first)

	for _, rec := range records {
		if rec.Word == word {
			continue
		}
		insertAt(t.root, rec.Word, rec.Popularity, rec.Ranked)
	}
	return wasLeaf
}

// collect appends the records under node in pre-order: the node itself first,
// then its children in edge order.
func collect(node *Node, out []WordRecord) []WordRecord {
	if node == nil {
		return out
	}
	if node.isEnd {
		out = append(out, node.record())
	}
	for _, ch := range node.order {
		out = collect(node.children[ch], out)
	}
	return out
}

// Records returns every word record under prefix in pre-order.
func (t *Trie) Records(prefix string) []WordRecord {
	node := t.findNode(prefix)
	if node == nil {
		return nil
	}
	return collect(node, nil)
}

// KeysWithPrefix returns all words in the trie that have the given prefix,
// the prefix itself included when it is stored.
func (t *Trie) KeysWithPrefix(prefix string) []string {
	results := []string{}
	for _, rec := range t.Records(prefix) {
		results = append(results, rec.Word)
	}
	return results
}

// AllWords returns every stored word in pre-order.
func (t *Trie) AllWords() []string {
	return t.KeysWithPrefix("")
}

// TraverseFunc is the type of the function called for each stored word.
// If the function returns false, the traversal stops.
type TraverseFunc func(rec WordRecord) bool

// Traverse visits every word under prefix in pre-order, calling f for each.
// If f returns false, the traversal stops.
func (t *Trie) Traverse(prefix string, f TraverseFunc) {
	node := t.findNode(prefix)
	if node == nil {
		return
	}
	traverseNode(node, f)
}

// traverseNode is a helper function that recursively traverses the trie
func traverseNode(node *Node, f TraverseFunc) bool {
	if node.isEnd {
		if !f(node.record()) {
			return false
		}
	}
	for _, ch := range node.order {
		if !traverseNode(node.children[ch], f) {
			return false
		}
	}
	return true
}
