// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import "errors"

// Sentinel errors, one per error-taxonomy bucket.
var (
	// errAbsentKey is returned when put is called with a key the analyzer
	// reports as absent.
	errAbsentKey = errors.New("patricia: key is absent")

	// errMisalignedRange is the value an analyzer panics with when an
	// offset/length is not on an element boundary (e.g. a code-unit string
	// range not aligned to 16 bits).
	errMisalignedRange = errors.New("patricia: bit range is not element-aligned")

	// errInvalidRange is returned when a range view is constructed with
	// neither endpoint or with fromKey > toKey. PrefixView does not check
	// its offset and length and never reports it.
	errInvalidRange = errors.New("patricia: invalid key range")

	// errOutOfRange is returned when a Put targets a key outside a view's
	// bounds, or when SubRange would reach outside its parent range.
	errOutOfRange = errors.New("patricia: key outside view bounds")

	// errConcurrentModification is returned by an Iterator that detects the
	// owning trie changed other than through its own Remove. Views do not
	// check for modification.
	errConcurrentModification = errors.New("patricia: concurrent modification")

	// errNoCurrentEntry is returned when Iterator.Remove is called with no
	// current entry, or twice in a row.
	errNoCurrentEntry = errors.New("patricia: no current entry to remove")

	// errRemoveDuringSelect is returned when a cursor returns Remove during
	// a read-only XOR-metric select.
	errRemoveDuringSelect = errors.New("patricia: cursor returned Remove during select")

	// errInternalInconsistency signals an analyzer bug: a bit-index
	// combination the core cannot interpret. It is unrecoverable for the
	// operation in progress.
	errInternalInconsistency = errors.New("patricia: internal inconsistency (analyzer bug)")
)
