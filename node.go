// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

// bitPos is the tagged discriminating-bit-index of a node. The root
// sentinel sorts lower than every real bit index, per spec §3.2: root has
// bitIndex = -1. Modeling it as a tagged sum type (rather than relying on
// the caller to remember that -1 means "root") keeps the `<=`/`>`
// comparisons spec.md §4.3.3/§4.3.4 perform on bitIndex() honest even if a
// future analyzer ever wanted bit index 0 to mean something unusual.
type bitPos struct {
	idx    int
	isRoot bool
}

// rootBit is the distinguished bit position of the trie's root sentinel.
var rootBit = bitPos{isRoot: true}

// bit constructs a real (non-root) discriminating-bit position.
func bit(i int) bitPos {
	return bitPos{idx: i}
}

// int returns the conventional integer encoding (-1 for root), useful only
// for diagnostics/dumping.
func (p bitPos) int() int {
	if p.isRoot {
		return -1
	}
	return p.idx
}

// le reports whether p <= o, with root sorting lowest.
func (p bitPos) le(o bitPos) bool {
	if p.isRoot {
		return true
	}
	if o.isRoot {
		return false
	}
	return p.idx <= o.idx
}

// gt reports whether p > o.
func (p bitPos) gt(o bitPos) bool {
	return !p.le(o)
}

// ge reports whether p >= o.
func (p bitPos) ge(o bitPos) bool {
	return o.le(p)
}

// lt reports whether p < o.
func (p bitPos) lt(o bitPos) bool {
	return p.le(o) && p != o
}

// attach wires child into parent's goRight slot. If child's bit index is
// strictly deeper than parent's, the edge is a real structural descent and
// child.parent is updated; otherwise the edge is an uplink and
// child.predecessor is updated instead (spec §4.4).
func attach[K, V any](parent, child *node[K, V], goRight bool) {
	parent.setChild(goRight, child)
	if child.bitIndex.gt(parent.bitIndex) {
		child.parent = parent
	} else {
		child.predecessor = parent
	}
}

// realChild returns n's left or right child only if that edge is a genuine
// structural descent (strictly deeper bit index); a self-loop or an uplink
// to an ancestor is reported as absent, the way a nil child would be in an
// ordinary binary search tree.
func realChild[K, V any](n *node[K, V], goRight bool) *node[K, V] {
	c := n.child(goRight)
	if c == nil || c.bitIndex.le(n.bitIndex) {
		return nil
	}
	return c
}

// firstReal walks n's real left children to the bit-order minimum of n's
// subtree.
func firstReal[K, V any](n *node[K, V]) *node[K, V] {
	for l := realChild(n, false); l != nil; l = realChild(n, false) {
		n = l
	}
	return n
}

// lastReal walks n's real right children to the bit-order maximum of n's
// subtree.
func lastReal[K, V any](n *node[K, V]) *node[K, V] {
	for r := realChild(n, true); r != nil; r = realChild(n, true) {
		n = r
	}
	return n
}

// node is the sole payload-carrying entity in the trie (spec §3.1). Every
// node except the root sentinel carries a key. Children may loop back to
// self (external node, forming an uplink the node owns) or to an ancestor
// (uplink to a predecessor); predecessor records the node from which the
// uplink targeting this node departs. Bit-order traversal (nextNode and
// previousNode in trie.go) climbs via parent and does not read predecessor.
type node[K, V any] struct {
	key   K
	value V
	// hasKey distinguishes an empty root sentinel (no key yet) from a root
	// holding a zero-length-bit or all-zero-bit key (spec §4.3.3). K is
	// generic, so there is no universal "absent" zero value to compare
	// against.
	hasKey bool

	bitIndex bitPos

	parent      *node[K, V]
	left        *node[K, V]
	right       *node[K, V]
	predecessor *node[K, V]
}

// newNode allocates a fresh, self-looped node: both children and the
// predecessor point at the node itself until insertAt rewires them.
func newNode[K, V any](key K, value V, bi bitPos) *node[K, V] {
	n := &node[K, V]{
		key:      key,
		value:    value,
		hasKey:   true,
		bitIndex: bi,
	}
	n.left = n
	n.right = n
	n.predecessor = n
	return n
}

// isEmpty reports whether the node carries no key. Only the root sentinel
// of an empty trie is ever empty.
func (n *node[K, V]) isEmpty() bool {
	return !n.hasKey
}

// isInternal reports whether neither child is a self-loop.
func (n *node[K, V]) isInternal() bool {
	return n.left != n && n.right != n
}

// isExternal reports whether at least one child loops to self.
func (n *node[K, V]) isExternal() bool {
	return !n.isInternal()
}

// clear resets key/value so that an iterator still holding this node after
// removal cannot observe or resurrect stale state (spec §3.3).
func (n *node[K, V]) clear() {
	var zeroK K
	var zeroV V
	n.key = zeroK
	n.value = zeroV
	n.hasKey = false
}

// child returns the node's left or right child.
func (n *node[K, V]) child(goRight bool) *node[K, V] {
	if goRight {
		return n.right
	}
	return n.left
}

// setChild sets the node's left or right child.
func (n *node[K, V]) setChild(goRight bool, c *node[K, V]) {
	if goRight {
		n.right = c
	} else {
		n.left = c
	}
}

// isValidUplink reports whether next is a usable uplink target reached
// from the node "from" (spec §4.4): non-nil, bitIndex no greater than
// from's, and key-bearing.
func isValidUplink[K, V any](next, from *node[K, V]) bool {
	return next != nil && next.bitIndex.le(from.bitIndex) && !next.isEmpty()
}
