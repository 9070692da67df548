// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import (
	"errors"
	"testing"
)

func TestIteratorBasic(t *testing.T) {
	tr := NewTrie[[]byte, int](ByteArrayAnalyzer{})
	for i, k := range [][]byte{{0x03}, {0x01}, {0x02}} {
		tr.Put(k, i)
	}

	it := tr.Iterator()
	var got []byte
	for it.Next() {
		got = append(got, it.Entry().Key[0])
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	want := []byte{0x01, 0x02, 0x03}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// B4: a mutation made directly on the trie between Next calls is detected
// as a concurrent modification on the following Next.
func TestIteratorConcurrentModification(t *testing.T) {
	tr := NewTrie[[]byte, int](ByteArrayAnalyzer{})
	tr.Put([]byte{0x01}, 1)
	tr.Put([]byte{0x02}, 2)

	it := tr.Iterator()
	if !it.Next() {
		t.Fatalf("Next() = false, want true")
	}

	tr.Put([]byte{0x03}, 3)

	if it.Next() {
		t.Fatalf("Next() = true after concurrent modification, want false")
	}
	if !errors.Is(it.Err(), errConcurrentModification) {
		t.Fatalf("Err() = %v, want errConcurrentModification", it.Err())
	}
}

func TestIteratorRemove(t *testing.T) {
	tr := NewTrie[[]byte, int](ByteArrayAnalyzer{})
	for i, k := range [][]byte{{0x01}, {0x02}, {0x03}, {0x04}} {
		tr.Put(k, i)
	}

	it := tr.Iterator()
	var kept []byte
	for it.Next() {
		k := it.Entry().Key[0]
		if k == 0x02 || k == 0x03 {
			if err := it.Remove(); err != nil {
				t.Fatalf("Remove() error = %v", err)
			}
			continue
		}
		kept = append(kept, k)
	}
	if err := it.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if tr.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", tr.Size())
	}
	want := []byte{0x01, 0x04}
	if len(kept) != len(want) || kept[0] != want[0] || kept[1] != want[1] {
		t.Fatalf("kept = %v, want %v", kept, want)
	}
}

func TestIteratorRemoveWithoutNextFails(t *testing.T) {
	tr := NewTrie[[]byte, int](ByteArrayAnalyzer{})
	tr.Put([]byte{0x01}, 1)

	it := tr.Iterator()
	if err := it.Remove(); !errors.Is(err, errNoCurrentEntry) {
		t.Fatalf("Remove() before Next() = %v, want errNoCurrentEntry", err)
	}
}

func TestKeysValuesEntries(t *testing.T) {
	tr := NewTrie[[]byte, string](ByteArrayAnalyzer{})
	tr.Put([]byte{0x01}, "a")
	tr.Put([]byte{0x02}, "b")

	var keys [][]byte
	for k := range tr.Keys() {
		keys = append(keys, k)
	}
	if len(keys) != 2 {
		t.Fatalf("Keys() yielded %d entries, want 2", len(keys))
	}

	var values []string
	for v := range tr.Values() {
		values = append(values, v)
	}
	if len(values) != 2 || values[0] != "a" || values[1] != "b" {
		t.Fatalf("Values() = %v, want [a b]", values)
	}

	n := 0
	for k, v := range tr.Entries() {
		if len(k) != 1 {
			t.Fatalf("unexpected key %v", k)
		}
		_ = v
		n++
	}
	if n != 2 {
		t.Fatalf("Entries() yielded %d pairs, want 2", n)
	}
}
