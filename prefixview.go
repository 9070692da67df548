// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import "iter"

// PrefixView is a live sub-mapping over every entry whose key agrees with
// prefix on bits [offset, offset+length). A Put through the view is
// rejected with errOutOfRange, and a Remove reports false, if the key does
// not satisfy the prefix; mutations through the owning Trie are
// immediately visible here.
type PrefixView[K, V any] struct {
	t      *Trie[K, V]
	prefix K
	offset int
	length int
}

// PrefixView returns a live view over prefix's matching entries.
func (t *Trie[K, V]) PrefixView(prefix K, offsetBits, lengthBits int) *PrefixView[K, V] {
	return &PrefixView[K, V]{t: t, prefix: prefix, offset: offsetBits, length: lengthBits}
}

func (v *PrefixView[K, V]) contains(key K) bool {
	return v.t.analyzer.IsPrefix(v.prefix, v.offset, v.length, key)
}

// probe uses subtree to cheaply rule out an empty view without a full
// scan; a true result does not guarantee a match, only a false result
// guarantees there is none.
func (v *PrefixView[K, V]) probe() bool {
	n := v.t.subtreeRoot(v.prefix, v.offset, v.length)
	return n != nil && !n.isEmpty()
}

// Get returns the value for key if key both satisfies the prefix and is
// present in the underlying trie.
func (v *PrefixView[K, V]) Get(key K) (V, bool) {
	if !v.contains(key) {
		var zero V
		return zero, false
	}
	return v.t.Get(key)
}

// ContainsKey reports whether key satisfies the prefix and is present.
func (v *PrefixView[K, V]) ContainsKey(key K) bool {
	return v.contains(key) && v.t.ContainsKey(key)
}

// Put inserts key/value through to the underlying trie, or reports
// errOutOfRange if key does not satisfy the prefix.
func (v *PrefixView[K, V]) Put(key K, value V) (V, bool, error) {
	if !v.contains(key) {
		var zero V
		return zero, false, errOutOfRange
	}
	return v.t.Put(key, value)
}

// Remove deletes key through to the underlying trie, or reports false if
// key does not satisfy the prefix.
func (v *PrefixView[K, V]) Remove(key K) (V, bool) {
	if !v.contains(key) {
		var zero V
		return zero, false
	}
	return v.t.Remove(key)
}

// Size recomputes the number of matching entries by scanning the
// underlying trie in bit order.
func (v *PrefixView[K, V]) Size() int {
	if !v.probe() {
		return 0
	}
	n := 0
	for range v.Entries() {
		n++
	}
	return n
}

// FirstEntry returns the bit-order minimum matching entry.
func (v *PrefixView[K, V]) FirstEntry() (Entry[K, V], bool) {
	if !v.probe() {
		return Entry[K, V]{}, false
	}
	for n := v.t.firstNode(); n != nil; n = v.t.nextNode(n) {
		if v.contains(n.key) {
			return Entry[K, V]{Key: n.key, Value: n.value}, true
		}
	}
	return Entry[K, V]{}, false
}

// LastEntry returns the bit-order maximum matching entry.
func (v *PrefixView[K, V]) LastEntry() (Entry[K, V], bool) {
	if !v.probe() {
		return Entry[K, V]{}, false
	}
	var last Entry[K, V]
	ok := false
	for n := v.t.firstNode(); n != nil; n = v.t.nextNode(n) {
		if v.contains(n.key) {
			last = Entry[K, V]{Key: n.key, Value: n.value}
			ok = true
		}
	}
	return last, ok
}

// Entries returns a range-over-func sequence of every matching key/value
// pair in bit order.
func (v *PrefixView[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for n := v.t.firstNode(); n != nil; n = v.t.nextNode(n) {
			if v.contains(n.key) {
				if !yield(n.key, n.value) {
					return
				}
			}
		}
	}
}
