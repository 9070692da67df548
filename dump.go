// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a structural rendering of the trie to w, depth-first from the
// root (a node, then its left and right real children): for each node a
// line with its bit index and key/value, then one line per child edge
// showing how it resolves (a real descent, a self-loop, or an uplink to an
// ancestor).
// Intended for debugging and test failure output, not as a stable format.
func (t *Trie[K, V]) Dump(w io.Writer) {
	fmt.Fprintf(w, "root (size=%d)\n", t.size)
	t.dumpNode(w, t.root, 1)
}

func (t *Trie[K, V]) dumpNode(w io.Writer, n *node[K, V], depth int) {
	indent := strings.Repeat("  ", depth)
	if n.hasKey {
		fmt.Fprintf(w, "%sbit=%d key=%v value=%v\n", indent, n.bitIndex.int(), n.key, n.value)
	} else {
		fmt.Fprintf(w, "%s(empty)\n", indent)
	}
	fmt.Fprintf(w, "%s left: %s\n", indent, t.edgeString(n, false))
	fmt.Fprintf(w, "%s right: %s\n", indent, t.edgeString(n, true))
	if r := realChild(n, false); r != nil {
		t.dumpNode(w, r, depth+1)
	}
	if r := realChild(n, true); r != nil {
		t.dumpNode(w, r, depth+1)
	}
}

func (t *Trie[K, V]) edgeString(n *node[K, V], goRight bool) string {
	c := n.child(goRight)
	switch {
	case c == nil:
		return "<nil>"
	case c == n:
		return "self-loop"
	case c.bitIndex.le(n.bitIndex):
		return fmt.Sprintf("uplink(bit=%d key=%v)", c.bitIndex.int(), c.key)
	default:
		return fmt.Sprintf("descend(bit=%d)", c.bitIndex.int())
	}
}

// String renders the same structural dump as Dump, as a string.
func (t *Trie[K, V]) String() string {
	var b strings.Builder
	t.Dump(&b)
	return b.String()
}
