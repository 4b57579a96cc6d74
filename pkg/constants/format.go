// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.
// -----------------------------------------------------------------------------
//
//  Constants related to the VP8L (WebP lossless) bitstream format.

package constants

// VP8L related constants.
const (
	VP8L_MAGIC_BYTE        = 0x2f // VP8L signature byte.
	VP8L_IMAGE_SIZE_BITS   = 14   // Number of bits used to store width and height.
	VP8L_VERSION_BITS      = 3    // 3 bits reserved for version.
	VP8L_VERSION           = 0    // version 0
	VP8L_FRAME_HEADER_SIZE = 5    // Size of the VP8L frame header.
)

const (
	MAX_CACHE_BITS              = 11
	HUFFMAN_CODES_PER_META_CODE = 5

	DEFAULT_CODE_LENGTH     = 8
	MAX_ALLOWED_CODE_LENGTH = 15

	NUM_LITERAL_CODES  = 256
	NUM_LENGTH_CODES   = 24
	NUM_DISTANCE_CODES = 40
	CODE_LENGTH_CODES  = 19

	MIN_HUFFMAN_BITS = 2 // min number of Huffman bits
	NUM_HUFFMAN_BITS = 3
)

// Maximum alphabet size of the green code, reached for 11-bit color cache.
// More commonly, the value is around ~280.
const MAX_CODE_LENGTHS_SIZE = (1 << MAX_CACHE_BITS) + NUM_LITERAL_CODES + NUM_LENGTH_CODES
