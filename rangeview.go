// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import "iter"

// RangeView is a live sub-mapping bounded by [fromKey, toKey], each
// endpoint independently inclusive or exclusive and optional. A nil
// endpoint means unbounded on that side; at least one endpoint is
// required.
type RangeView[K, V any] struct {
	t        *Trie[K, V]
	fromKey  *K
	fromIncl bool
	toKey    *K
	toIncl   bool
}

// RangeView returns a live view bounded by the given endpoints. Passing
// nil for both fromKey and toKey, or a fromKey greater than toKey, reports
// errInvalidRange.
func (t *Trie[K, V]) RangeView(fromKey *K, fromIncl bool, toKey *K, toIncl bool) (*RangeView[K, V], error) {
	if fromKey == nil && toKey == nil {
		return nil, errInvalidRange
	}
	if fromKey != nil && toKey != nil && t.analyzer.Compare(*fromKey, *toKey) > 0 {
		return nil, errInvalidRange
	}
	return &RangeView[K, V]{t: t, fromKey: fromKey, fromIncl: fromIncl, toKey: toKey, toIncl: toIncl}, nil
}

// SubRange returns a further-bounded view that lies within v: each
// supplied endpoint narrows v's own, and a nil endpoint here defers to v's
// existing bound on that side.
func (v *RangeView[K, V]) SubRange(fromKey *K, fromIncl bool, toKey *K, toIncl bool) (*RangeView[K, V], error) {
	sub := &RangeView[K, V]{t: v.t, fromKey: v.fromKey, fromIncl: v.fromIncl, toKey: v.toKey, toIncl: v.toIncl}
	if fromKey != nil {
		sub.fromKey, sub.fromIncl = fromKey, fromIncl
	}
	if toKey != nil {
		sub.toKey, sub.toIncl = toKey, toIncl
	}
	if sub.fromKey != nil && sub.toKey != nil && v.t.analyzer.Compare(*sub.fromKey, *sub.toKey) > 0 {
		return nil, errInvalidRange
	}
	if v.fromKey != nil {
		if c := v.t.analyzer.Compare(*sub.fromKey, *v.fromKey); c < 0 || (c == 0 && sub.fromIncl && !v.fromIncl) {
			return nil, errOutOfRange
		}
	}
	if v.toKey != nil {
		if c := v.t.analyzer.Compare(*sub.toKey, *v.toKey); c > 0 || (c == 0 && sub.toIncl && !v.toIncl) {
			return nil, errOutOfRange
		}
	}
	return sub, nil
}

func (v *RangeView[K, V]) contains(key K) bool {
	if v.fromKey != nil {
		c := v.t.analyzer.Compare(key, *v.fromKey)
		if c < 0 || (c == 0 && !v.fromIncl) {
			return false
		}
	}
	if v.toKey != nil {
		c := v.t.analyzer.Compare(key, *v.toKey)
		if c > 0 || (c == 0 && !v.toIncl) {
			return false
		}
	}
	return true
}

// Get returns the value for key if key lies within the range and is
// present in the underlying trie.
func (v *RangeView[K, V]) Get(key K) (V, bool) {
	if !v.contains(key) {
		var zero V
		return zero, false
	}
	return v.t.Get(key)
}

// ContainsKey reports whether key lies within the range and is present.
func (v *RangeView[K, V]) ContainsKey(key K) bool {
	return v.contains(key) && v.t.ContainsKey(key)
}

// Put inserts key/value through to the underlying trie, or reports
// errOutOfRange if key lies outside the range.
func (v *RangeView[K, V]) Put(key K, value V) (V, bool, error) {
	if !v.contains(key) {
		var zero V
		return zero, false, errOutOfRange
	}
	return v.t.Put(key, value)
}

// Remove deletes key through to the underlying trie, or reports false if
// key lies outside the range.
func (v *RangeView[K, V]) Remove(key K) (V, bool) {
	if !v.contains(key) {
		var zero V
		return zero, false
	}
	return v.t.Remove(key)
}

// FirstEntry returns the bit-order minimum entry within the range.
func (v *RangeView[K, V]) FirstEntry() (Entry[K, V], bool) {
	var e Entry[K, V]
	var ok bool
	switch {
	case v.fromKey == nil:
		e, ok = v.t.FirstEntry()
	case v.fromIncl:
		e, ok = v.t.CeilingEntry(*v.fromKey)
	default:
		e, ok = v.t.HigherEntry(*v.fromKey)
	}
	if !ok || !v.contains(e.Key) {
		return Entry[K, V]{}, false
	}
	return e, true
}

// LastEntry returns the bit-order maximum entry within the range.
func (v *RangeView[K, V]) LastEntry() (Entry[K, V], bool) {
	var e Entry[K, V]
	var ok bool
	switch {
	case v.toKey == nil:
		e, ok = v.t.LastEntry()
	case v.toIncl:
		e, ok = v.t.FloorEntry(*v.toKey)
	default:
		e, ok = v.t.LowerEntry(*v.toKey)
	}
	if !ok || !v.contains(e.Key) {
		return Entry[K, V]{}, false
	}
	return e, true
}

// Size recomputes the number of entries in the range by scanning.
func (v *RangeView[K, V]) Size() int {
	n := 0
	for range v.Entries() {
		n++
	}
	return n
}

// Entries returns a range-over-func sequence of every entry within the
// range, in bit order.
func (v *RangeView[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		first, ok := v.FirstEntry()
		if !ok {
			return
		}
		n, found := v.t.find(first.Key)
		if !found {
			return
		}
		for n != nil && v.contains(n.key) {
			if !yield(n.key, n.value) {
				return
			}
			n = v.t.nextNode(n)
		}
	}
}
