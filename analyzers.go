// Copyright (c) 2024 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package patricia

import (
	"bytes"
	"math/big"
	"unicode/utf16"
	"unsafe"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/exp/constraints"
)

// bitIndexOver is the shared first-differing-bit scan behind every
// analyzer's BitIndex: it only needs a way to read bit i of each operand.
func bitIndexOver(len1, len2 int, bit1, bit2 func(i int) bool) int {
	switch {
	case len1 == 0 && len2 == 0:
		return EqualBitKey
	case len1 == 0:
		return NullBitKey
	case len2 == 0:
		// k2 reads as all zero bits, so k1's first set bit is where the two
		// differ.
		for i := 0; i < len1; i++ {
			if bit1(i) {
				return i
			}
		}
		return NullBitKey
	}
	minLen := len1
	if len2 < minLen {
		minLen = len2
	}
	for i := 0; i < minLen; i++ {
		if bit1(i) != bit2(i) {
			return i
		}
	}
	if len1 == len2 {
		return EqualBitKey
	}
	return minLen
}

// isPrefixOver is the shared IsPrefix scan: prefix bits compared against
// key bits, both read starting from index 0 of the supplied closures.
func isPrefixOver(length int, prefixBit, keyBit func(i int) bool) bool {
	for i := 0; i < length; i++ {
		if prefixBit(i) != keyBit(i) {
			return false
		}
	}
	return true
}

// IntegerAnalyzer is a KeyAnalyzer over any fixed-width integer type,
// MSB-first. Uint32Analyzer and Uint16Analyzer are the two fixed-width
// instances spec's reference analyzer table names; both are plain
// embeddings of this one.
type IntegerAnalyzer[T constraints.Integer] struct{}

// LengthInBits returns T's full bit width.
func (IntegerAnalyzer[T]) LengthInBits(T) int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// BitsPerElement reports 1: every bit of a fixed-width integer is
// individually addressable.
func (IntegerAnalyzer[T]) BitsPerElement() int { return 1 }

func (a IntegerAnalyzer[T]) IsBitSet(k T, bitIndex, lengthInBits int) bool {
	if bitIndex < 0 || bitIndex >= lengthInBits {
		return false
	}
	width := uint(lengthInBits)
	mask := (uint64(1) << width) - 1
	u := uint64(k) & mask
	return u&(uint64(1)<<(width-1-uint(bitIndex))) != 0
}

func (a IntegerAnalyzer[T]) BitIndex(k1 T, off1, len1 int, k2 T, off2, len2 int) int {
	return bitIndexOver(len1, len2,
		func(i int) bool { return a.IsBitSet(k1, off1+i, off1+len1) },
		func(i int) bool { return a.IsBitSet(k2, off2+i, off2+len2) })
}

// Compare orders keys by their MSB-first bit patterns read as unsigned
// values, so a negative signed key sorts after every non-negative one, as
// in IsBitSet's bit order.
func (a IntegerAnalyzer[T]) Compare(k1, k2 T) int {
	mask := (uint64(1) << uint(a.LengthInBits(k1))) - 1
	u1, u2 := uint64(k1)&mask, uint64(k2)&mask
	switch {
	case u1 < u2:
		return -1
	case u1 > u2:
		return 1
	default:
		return 0
	}
}

func (a IntegerAnalyzer[T]) IsPrefix(prefix T, offset, length int, key T) bool {
	return isPrefixOver(length,
		func(i int) bool { return a.IsBitSet(prefix, offset+i, offset+length) },
		func(i int) bool { return a.IsBitSet(key, i, a.LengthInBits(key)) })
}

// Uint32Analyzer is the fixed-width 32-bit integer reference analyzer
// (spec §6.1): 32 bits, MSB-first, one bit per element.
type Uint32Analyzer struct{ IntegerAnalyzer[uint32] }

// Uint16Analyzer is the fixed-width 16-bit character code-unit reference
// analyzer (spec §6.1): 16 bits, MSB-first, one bit per element.
type Uint16Analyzer struct{ IntegerAnalyzer[uint16] }

// CodeUnitStringAnalyzer treats a Go string as a sequence of UTF-16 code
// units, MSB-first within each unit, matching a 16-bit `char`-keyed
// analyzer's bit order. Offsets and lengths must be 16-bit aligned.
type CodeUnitStringAnalyzer struct{}

func (CodeUnitStringAnalyzer) units(s string) []uint16 {
	return utf16.Encode([]rune(s))
}

// LengthInBits returns 16 times the number of UTF-16 code units in s.
func (a CodeUnitStringAnalyzer) LengthInBits(s string) int {
	return 16 * len(a.units(s))
}

// BitsPerElement reports 16: one UTF-16 code unit.
func (CodeUnitStringAnalyzer) BitsPerElement() int { return 16 }

func (a CodeUnitStringAnalyzer) IsBitSet(s string, bitIndex, lengthInBits int) bool {
	if bitIndex < 0 || bitIndex >= lengthInBits {
		return false
	}
	units := a.units(s)
	unitIdx := bitIndex / 16
	if unitIdx >= len(units) {
		return false
	}
	bitInUnit := uint(bitIndex % 16)
	return units[unitIdx]&(1<<(15-bitInUnit)) != 0
}

func (a CodeUnitStringAnalyzer) BitIndex(k1 string, off1, len1 int, k2 string, off2, len2 int) int {
	if off1%16 != 0 || off2%16 != 0 || len1%16 != 0 || len2%16 != 0 {
		panic(errMisalignedRange)
	}
	return bitIndexOver(len1, len2,
		func(i int) bool { return a.IsBitSet(k1, off1+i, off1+len1) },
		func(i int) bool { return a.IsBitSet(k2, off2+i, off2+len2) })
}

// Compare orders strings by UTF-16 code unit, not by Go's native UTF-8 byte
// order, so that iteration order matches a 16-bit `char`-keyed analyzer's
// (the two coincide for the BMP but not for astral-plane characters).
func (a CodeUnitStringAnalyzer) Compare(k1, k2 string) int {
	u1, u2 := a.units(k1), a.units(k2)
	n := len(u1)
	if len(u2) < n {
		n = len(u2)
	}
	for i := 0; i < n; i++ {
		if u1[i] != u2[i] {
			if u1[i] < u2[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(u1) < len(u2):
		return -1
	case len(u1) > len(u2):
		return 1
	default:
		return 0
	}
}

func (a CodeUnitStringAnalyzer) IsPrefix(prefix string, offset, length int, key string) bool {
	if offset%16 != 0 || length%16 != 0 {
		panic(errMisalignedRange)
	}
	return isPrefixOver(length,
		func(i int) bool { return a.IsBitSet(prefix, offset+i, offset+length) },
		func(i int) bool { return a.IsBitSet(key, i, a.LengthInBits(key)) })
}

// ByteArrayAnalyzer treats a []byte as its canonical bit form, MSB-first
// within each byte.
type ByteArrayAnalyzer struct{}

func (ByteArrayAnalyzer) LengthInBits(k []byte) int {
	return 8 * len(k)
}

func (ByteArrayAnalyzer) BitsPerElement() int { return 8 }

func (ByteArrayAnalyzer) IsBitSet(k []byte, bitIndex, lengthInBits int) bool {
	if bitIndex < 0 || bitIndex >= lengthInBits {
		return false
	}
	byteIdx := bitIndex / 8
	if byteIdx >= len(k) {
		return false
	}
	return k[byteIdx]&(1<<uint(7-bitIndex%8)) != 0
}

func (a ByteArrayAnalyzer) BitIndex(k1 []byte, off1, len1 int, k2 []byte, off2, len2 int) int {
	return bitIndexOver(len1, len2,
		func(i int) bool { return a.IsBitSet(k1, off1+i, off1+len1) },
		func(i int) bool { return a.IsBitSet(k2, off2+i, off2+len2) })
}

func (ByteArrayAnalyzer) Compare(k1, k2 []byte) int {
	return bytes.Compare(k1, k2)
}

func (a ByteArrayAnalyzer) IsPrefix(prefix []byte, offset, length int, key []byte) bool {
	return isPrefixOver(length,
		func(i int) bool { return a.IsBitSet(prefix, offset+i, offset+length) },
		func(i int) bool { return a.IsBitSet(key, i, a.LengthInBits(key)) })
}

// ByteArrayMaxBitsAnalyzer is a []byte analyzer with a caller-declared
// maximum bit length, for bit-prefix tries over fixed-width keys such as IP
// prefixes. Any range extending past MaxBits is rejected.
type ByteArrayMaxBitsAnalyzer struct {
	MaxBits int
}

func (a ByteArrayMaxBitsAnalyzer) LengthInBits(k []byte) int {
	n := 8 * len(k)
	if n > a.MaxBits {
		return a.MaxBits
	}
	return n
}

func (ByteArrayMaxBitsAnalyzer) BitsPerElement() int { return 8 }

func (ByteArrayMaxBitsAnalyzer) IsBitSet(k []byte, bitIndex, lengthInBits int) bool {
	if bitIndex < 0 || bitIndex >= lengthInBits {
		return false
	}
	byteIdx := bitIndex / 8
	if byteIdx >= len(k) {
		return false
	}
	return k[byteIdx]&(1<<uint(7-bitIndex%8)) != 0
}

func (a ByteArrayMaxBitsAnalyzer) BitIndex(k1 []byte, off1, len1 int, k2 []byte, off2, len2 int) int {
	if off1+len1 > a.MaxBits || off2+len2 > a.MaxBits {
		return OutOfBoundsBitKey
	}
	return bitIndexOver(len1, len2,
		func(i int) bool { return a.IsBitSet(k1, off1+i, off1+len1) },
		func(i int) bool { return a.IsBitSet(k2, off2+i, off2+len2) })
}

func (ByteArrayMaxBitsAnalyzer) Compare(k1, k2 []byte) int {
	return bytes.Compare(k1, k2)
}

// IsPrefix compares the two bit ranges via bitset.BitSet rather than a
// plain loop, so that a caller validating many candidate prefixes against
// the same key (the common IP-routing-table lookup pattern) can hand this
// analyzer pre-built bitsets in a future extension without changing the
// comparison itself.
func (a ByteArrayMaxBitsAnalyzer) IsPrefix(prefix []byte, offset, length int, key []byte) bool {
	if offset+length > a.MaxBits {
		return false
	}
	keyLen := a.LengthInBits(key)
	prefixBits := bitset.New(uint(length))
	keyBits := bitset.New(uint(length))
	for i := 0; i < length; i++ {
		if a.IsBitSet(prefix, offset+i, offset+length) {
			prefixBits.Set(uint(i))
		}
		if a.IsBitSet(key, i, keyLen) {
			keyBits.Set(uint(i))
		}
	}
	return prefixBits.Equal(keyBits)
}

// BigIntAnalyzer is a KeyAnalyzer over non-negative *big.Int values,
// little-endian bit order (bit 0 is the least significant bit, matching
// big.Int.Bit's own convention directly rather than reversing it). A
// negative value is not a valid key under this analyzer's domain and
// panics rather than silently misordering.
type BigIntAnalyzer struct{}

func (BigIntAnalyzer) LengthInBits(k *big.Int) int {
	if k == nil {
		return 0
	}
	if k.Sign() < 0 {
		panic("patricia: BigIntAnalyzer requires a non-negative value")
	}
	return k.BitLen()
}

func (BigIntAnalyzer) BitsPerElement() int { return 1 }

func (BigIntAnalyzer) IsBitSet(k *big.Int, bitIndex, lengthInBits int) bool {
	if k == nil || bitIndex < 0 || bitIndex >= lengthInBits {
		return false
	}
	return k.Bit(bitIndex) == 1
}

func (a BigIntAnalyzer) BitIndex(k1 *big.Int, off1, len1 int, k2 *big.Int, off2, len2 int) int {
	return bitIndexOver(len1, len2,
		func(i int) bool { return a.IsBitSet(k1, off1+i, off1+len1) },
		func(i int) bool { return a.IsBitSet(k2, off2+i, off2+len2) })
}

func (BigIntAnalyzer) Compare(k1, k2 *big.Int) int {
	return k1.Cmp(k2)
}

func (a BigIntAnalyzer) IsPrefix(prefix *big.Int, offset, length int, key *big.Int) bool {
	return isPrefixOver(length,
		func(i int) bool { return a.IsBitSet(prefix, offset+i, offset+length) },
		func(i int) bool { return a.IsBitSet(key, i, a.LengthInBits(key)) })
}
