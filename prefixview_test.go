// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import (
	"math/big"
	"testing"
)

// Seed scenario: PrefixView over the bits of the integer 1 (its sole set
// bit is the LSB) selects every odd value in the trie, in bit order.
func TestPrefixViewBigIntOddNumbers(t *testing.T) {
	tr := NewTrie[*big.Int, int](BigIntAnalyzer{})
	for i := 0; i < 20; i++ {
		tr.Put(big.NewInt(int64(i)), i)
	}

	view := tr.PrefixView(big.NewInt(1), 0, 1)

	var got []int64
	for k := range view.Entries() {
		got = append(got, k.Int64())
	}
	want := []int64{1, 3, 5, 7, 9, 11, 13, 15, 17, 19}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

// Seed scenario: PrefixView("Lime", 0, 64) over a batch of string keys
// yields exactly the keys sharing that 64-bit (4 UTF-16 code unit) prefix,
// in bit order.
func TestPrefixViewStrings(t *testing.T) {
	tr := NewTrie[string, struct{}](CodeUnitStringAnalyzer{})
	for _, k := range []string{"Lime", "LimeWire", "LimeRadio", "Lax", "Later", "Lake", "Lovely"} {
		tr.Put(k, struct{}{})
	}

	view := tr.PrefixView("Lime", 0, 64)

	var got []string
	for k := range view.Entries() {
		got = append(got, k)
	}
	want := []string{"Lime", "LimeRadio", "LimeWire"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPrefixViewPutOutOfRange(t *testing.T) {
	tr := NewTrie[string, struct{}](CodeUnitStringAnalyzer{})
	tr.Put("Lime", struct{}{})

	view := tr.PrefixView("Lime", 0, 64)
	if _, _, err := view.Put("Other", struct{}{}); err != errOutOfRange {
		t.Fatalf("Put(\"Other\") error = %v, want errOutOfRange", err)
	}
	if _, _, err := view.Put("LimeRadio", struct{}{}); err != nil {
		t.Fatalf("Put(\"LimeRadio\") error = %v, want nil", err)
	}
	if view.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", view.Size())
	}
}

func TestPrefixViewFirstLastEntry(t *testing.T) {
	tr := NewTrie[string, int](CodeUnitStringAnalyzer{})
	for i, k := range []string{"Lime", "LimeWire", "LimeRadio", "Lax"} {
		tr.Put(k, i)
	}
	view := tr.PrefixView("Lime", 0, 64)

	first, ok := view.FirstEntry()
	if !ok || first.Key != "Lime" {
		t.Fatalf("FirstEntry() = %v, %v, want Lime", first, ok)
	}
	last, ok := view.LastEntry()
	if !ok || last.Key != "LimeWire" {
		t.Fatalf("LastEntry() = %v, %v, want LimeWire", last, ok)
	}
}
