// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

import (
	"fmt"
	"slices"

	"github.com/daanv2/go-webp-huffman/pkg/constants"
)

// build fills the lookup tables of t with the canonical code described by
// codeLengths, indexed by symbol. A zero length marks an absent symbol.
func (t *Table) build(codeLengths []int) error {
	// Sort symbols by length, by symbol order within each length.
	sorted := make([]uint32, 0, len(codeLengths))
	kraft := 0
	for symbol, length := range codeLengths {
		if length < 0 || length > constants.MAX_ALLOWED_CODE_LENGTH {
			return fmt.Errorf("%w: symbol %d has code length %d", ErrInvalidCode, symbol, length)
		}
		if length > 0 {
			sorted = append(sorted, uint32(length)<<16|uint32(symbol))
			kraft += 1 << (constants.MAX_ALLOWED_CODE_LENGTH - length)
			t.maxLength = max(t.maxLength, length)
		}
	}
	if len(sorted) == 0 {
		return ErrEmptyCode
	}
	// Incomplete codes are allowed, over-subscribed ones are not.
	if kraft > 1<<constants.MAX_ALLOWED_CODE_LENGTH {
		return fmt.Errorf("%w: code lengths are over-subscribed", ErrInvalidCode)
	}
	slices.Sort(sorted)
	t.numSymbols = len(sorted)

	// Special case code with only one value.
	if len(sorted) == 1 {
		t.maxLength = 0
		replicateValue(t.level1[:], 1, HUFFMAN_TABLE_SIZE, code{bits: 0, value: uint16(sorted[0])})
		return nil
	}

	var key uint32 // reversed prefix code
	rootEntry := -1
	tableBits := 0
	for i, packed := range sorted {
		length := int(packed >> 16)
		symbol := uint16(packed)
		if length <= HUFFMAN_TABLE_BITS {
			replicateValue(t.level1[key:], 1<<length, HUFFMAN_TABLE_SIZE, code{bits: uint8(length), value: symbol})
		} else {
			if low := int(key & HUFFMAN_TABLE_MASK); low != rootEntry {
				rootEntry = low
				tableBits = nextTableBitSize(sorted[i:], HUFFMAN_TABLE_BITS)
				t.level2 = append(t.level2, make([]code, 1<<tableBits))
				t.level1[low] = code{
					bits:  uint8(HUFFMAN_TABLE_BITS + tableBits),
					value: uint16(len(t.level2) - 1),
				}
			}
			table := t.level2[len(t.level2)-1]
			replicateValue(table[key>>HUFFMAN_TABLE_BITS:], 1<<(length-HUFFMAN_TABLE_BITS), 1<<tableBits,
				code{bits: uint8(length - HUFFMAN_TABLE_BITS), value: symbol})
		}
		key = nextCode(key, length)
	}
	return nil
}
