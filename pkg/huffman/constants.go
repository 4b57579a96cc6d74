// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

import "github.com/daanv2/go-webp-huffman/pkg/constants"

const (
	HUFFMAN_TABLE_BITS = 8
	HUFFMAN_TABLE_SIZE = 1 << HUFFMAN_TABLE_BITS
	HUFFMAN_TABLE_MASK = HUFFMAN_TABLE_SIZE - 1

	NUM_CODE_LENGTH_CODES = constants.CODE_LENGTH_CODES
)

const (
	kCodeLengthLiterals   = 16
	kCodeLengthRepeatCode = 16
	kCodeLengthMaxCode    = 18
)

var kCodeLengthExtraBits = [3]int{2, 3, 7}
var kCodeLengthRepeatOffsets = [3]int{3, 3, 11}

var kCodeLengthCodeOrder = [NUM_CODE_LENGTH_CODES]uint8{
	17, 18, 0, 1, 2, 3, 4, 5, 16, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// -----------------------------------------------------------------------------
//  Five Huffman codes are used at each meta code:
//  1. green + length prefix codes + color cache codes,
//  2. red,
//  3. blue,
//  4. alpha, and,
//  5. distance prefix codes.
type HuffIndex int

const (
	GREEN HuffIndex = 0
	RED   HuffIndex = 1
	BLUE  HuffIndex = 2
	ALPHA HuffIndex = 3
	DIST  HuffIndex = 4
)

var kAlphabetSize = [constants.HUFFMAN_CODES_PER_META_CODE]int{
	constants.NUM_LITERAL_CODES + constants.NUM_LENGTH_CODES,
	constants.NUM_LITERAL_CODES,
	constants.NUM_LITERAL_CODES,
	constants.NUM_LITERAL_CODES,
	constants.NUM_DISTANCE_CODES,
}

func (i HuffIndex) String() string {
	switch i {
	case GREEN:
		return "green"
	case RED:
		return "red"
	case BLUE:
		return "blue"
	case ALPHA:
		return "alpha"
	case DIST:
		return "distance"
	}
	return "unknown"
}

// AlphabetSize returns the number of symbols of the code at index i of a group
// using a color cache of 1<<colorCacheBits entries (0 disables the cache).
func AlphabetSize(i HuffIndex, colorCacheBits int) int {
	size := kAlphabetSize[i]
	if i == GREEN && colorCacheBits > 0 {
		size += 1 << colorCacheBits
	}
	return size
}
