package trie

import (
	"fmt"
	"io"
	"strings"
)

// Dump format, one line per node, children indented under their parent in
// edge order:
//
//	<indent><label> [word=<quoted>] [popularity=<n>] children=<n>
//
// - label: "root" for the root, otherwise the quoted branch character
// - word: present only on terminal nodes
// - popularity: present only on terminal nodes inserted with a popularity
//
// The dump is meant for people reading diagnostics; nothing parses it back.

// Dump writes the structure of the trie to w.
func (t *Trie) Dump(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "root children=%d\n", t.root.NumChildren()); err != nil {
		return fmt.Errorf("failed to write root: %w", err)
	}
	for _, ch := range t.root.order {
		if err := dumpNode(w, ch, t.root.children[ch], 1); err != nil {
			return err
		}
	}
	return nil
}

// dumpNode recursively writes a node and its children
func dumpNode(w io.Writer, label rune, node *Node, depth int) error {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))
	fmt.Fprintf(&b, "%q", label)
	if node.isEnd {
		fmt.Fprintf(&b, " word=%q", node.word)
		if node.ranked {
			fmt.Fprintf(&b, " popularity=%d", node.popularity)
		}
	}
	fmt.Fprintf(&b, " children=%d\n", node.NumChildren())

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write node %q: %w", label, err)
	}

	for _, ch := range node.order {
		if err := dumpNode(w, ch, node.children[ch], depth+1); err != nil {
			return err
		}
	}
	return nil
}
