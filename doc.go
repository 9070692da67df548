// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package patricia implements a PATRICIA (Practical Algorithm To Retrieve
// Information Coded In Alphanumeric) trie: a generic ordered associative
// container keyed by arbitrary bit strings.
//
// It is a radix tree in which every node holds a key — there are no empty
// internal nodes. Branching at a node is governed by a single discriminating
// bit index tested on the key; descent follows "uplink" back-pointing edges
// that terminate search. In addition to an ordinary ordered map, the trie
// supports nearest-neighbor selection under a bitwise XOR metric, live
// bit-prefix and ordered-range views, and cursor-driven traversal that can
// remove entries as it walks.
//
// Bit-level key inspection is delegated entirely to a KeyAnalyzer supplied
// by the caller; the trie itself never extracts a bit from a key directly.
//
// The trie is not safe for concurrent use; callers needing concurrent access
// must provide their own synchronization.
package patricia
