// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.
// -----------------------------------------------------------------------------
//
// Color Cache for WebP Lossless
//
// Authors: Jyrki Alakuijala (jyrki@google.com)
//          Urvang Joshi (urvang@google.com)

package colorcache

import (
	"github.com/daanv2/go-webp-huffman/pkg/assert"
	"github.com/daanv2/go-webp-huffman/pkg/constants"
)

const kHashMul = uint32(0x1e35a7bd)

// Cache holds the most recently seen ARGB colors, addressed by a
// multiplicative hash of the color.
type Cache struct {
	colors    []uint32 // color entries
	hashShift int      // hash shift: 32 - hashBits.
	hashBits  int
}

// New creates a cache with 1<<hashBits entries, hashBits in [1, MAX_CACHE_BITS].
func New(hashBits int) *Cache {
	assert.Assertf(hashBits > 0 && hashBits <= constants.MAX_CACHE_BITS, "hash bits %d out of range", hashBits)
	return &Cache{
		colors:    make([]uint32, 1<<hashBits),
		hashShift: 32 - hashBits,
		hashBits:  hashBits,
	}
}

func HashPix(argb uint32, shift int) int {
	return int((argb * kHashMul) >> shift)
}

// Size is the number of entries of the cache.
func (cc *Cache) Size() int {
	return len(cc.colors)
}

// Lookup returns the color stored at key, key < Size().
func (cc *Cache) Lookup(key int) uint32 {
	assert.Assert((key >> cc.hashBits) == 0)
	return cc.colors[key]
}

// Insert stores argb at its hash key.
func (cc *Cache) Insert(argb uint32) {
	cc.colors[HashPix(argb, cc.hashShift)] = argb
}
