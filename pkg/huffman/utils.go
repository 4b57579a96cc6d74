// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.
// -----------------------------------------------------------------------------
//
// Utilities for building Huffman lookup tables.

package huffman

import (
	"math/bits"

	"github.com/daanv2/go-webp-huffman/pkg/assert"
)

// nextCode returns reverse(reverse(key, len) + 1, len), where reverse(key, len)
// is the bit-wise reversal of the len least significant bits of key. The last
// code of a given length is returned unchanged.
func nextCode(key uint32, length int) uint32 {
	step := highestOneBit(^key & (uint32(1)<<length - 1))
	return (key & (step - 1)) | step
}

func highestOneBit(v uint32) uint32 {
	if v == 0 {
		return 0
	}
	return uint32(1) << (bits.Len32(v) - 1)
}

// Stores code in table[0], table[step], table[2*step], ..., table[end-step].
// Assumes that end is an integer multiple of step.
func replicateValue(table []code, step int, end int, c code) {
	assert.Assert(end%step == 0)
	for i := end - step; i >= 0; i -= step {
		table[i] = c
	}
}

// Returns the table width of the next 2nd level table. sorted holds the packed
// length<<16|symbol keys of the remaining symbols, starting with the first
// symbol stored in that table.
func nextTableBitSize(sorted []uint32, rootBits int) int {
	length := int(sorted[0] >> 16)
	left := 1 << (length - rootBits)
	for _, key := range sorted {
		for int(key>>16) > length {
			length++
			left <<= 1
		}
		left--
		if left <= 0 {
			break
		}
	}
	return length - rootBits
}
