// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package bits

import "github.com/daanv2/go-webp-huffman/pkg/assert"

// Writer accumulates bits least-significant-bit first, the inverse of Reader.
type Writer struct {
	bits uint64 // bit accumulator
	used int    // number of bits used in accumulator
	buf  []uint8
}

func NewWriter(expectedSize int) *Writer {
	return &Writer{buf: make([]uint8, 0, expectedSize)}
}

// WriteBits appends the n_bits low bits of bits.
func (bw *Writer) WriteBits(bits uint32, n int) {
	assert.Assertf(n >= 0 && n <= MAX_NUM_BIT_READ, "n_bits %d out of range", n)
	bw.bits |= uint64(bits&kBitMask[n]) << bw.used
	bw.used += n
	for bw.used >= 8 {
		bw.buf = append(bw.buf, uint8(bw.bits))
		bw.bits >>= 8
		bw.used -= 8
	}
}

func (bw *Writer) WriteBit(bit bool) {
	if bit {
		bw.WriteBits(1, 1)
	} else {
		bw.WriteBits(0, 1)
	}
}

// NumBits is the number of bits written so far.
func (bw *Writer) NumBits() int {
	return len(bw.buf)*8 + bw.used
}

// Bytes returns the written bits, the last partial byte padded with zeros.
func (bw *Writer) Bytes() []uint8 {
	out := make([]uint8, len(bw.buf), len(bw.buf)+1)
	copy(out, bw.buf)
	if bw.used > 0 {
		out = append(out, uint8(bw.bits))
	}
	return out
}
