// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

// BitSource supplies bits least-significant-bit first. It is implemented by
// bits.Reader.
type BitSource interface {
	ReadBit() (bool, error)
	// ReadBits consumes n bits.
	ReadBits(n int) (uint32, error)
	// PeekBits returns the next n bits without consuming them; bits past the
	// end of the stream read as zero.
	PeekBits(n int) uint32
}

// Huffman lookup table entry
type code struct {
	bits  uint8  // number of bits used for this symbol, or 8 + 2nd level table bits
	value uint16 // symbol value or 2nd level table index
}
