// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.
// -----------------------------------------------------------------------------
//
// LSB-first bit reader for the VP8L bitstream.

package bits

import (
	"errors"
	"fmt"

	"github.com/daanv2/go-webp-huffman/pkg/assert"
)

const (
	LBITS = 64 // Number of bits prefetched (= bit-size of val).

	// Maximum number of bits (inclusive) the bit-reader can handle at once.
	MAX_NUM_BIT_READ = 24
)

var ErrEndOfStream = errors.New("bits: read past end of stream")

var kBitMask = [MAX_NUM_BIT_READ + 1]uint32{
	0,
	0x000001, 0x000003, 0x000007, 0x00000f,
	0x00001f, 0x00003f, 0x00007f, 0x0000ff,
	0x0001ff, 0x0003ff, 0x0007ff, 0x000fff,
	0x001fff, 0x003fff, 0x007fff, 0x00ffff,
	0x01ffff, 0x03ffff, 0x07ffff, 0x0fffff,
	0x1fffff, 0x3fffff, 0x7fffff, 0xffffff,
}

// Reader supplies bits least-significant-bit first from a byte slice.
type Reader struct {
	val   uint64 // pre-fetched bits, next bit to read in the lsb
	nbits int    // number of valid bits in val
	buf   []uint8
	pos   int  // byte position in buf of the next byte to prefetch
	eos   bool // true if a bit was read past the end of buffer
}

func NewReader(data []uint8) *Reader {
	br := &Reader{buf: data}
	br.shiftBytes()
	return br
}

// If not at EOS, reload up to LBITS byte-by-byte.
func (br *Reader) shiftBytes() {
	for br.nbits <= LBITS-8 && br.pos < len(br.buf) {
		br.val |= uint64(br.buf[br.pos]) << br.nbits
		br.pos++
		br.nbits += 8
	}
}

// ReadBits reads the specified number of bits from the read buffer. Reading
// past the end of the buffer flags the reader as end-of-stream and every
// subsequent read fails.
func (br *Reader) ReadBits(n int) (uint32, error) {
	assert.Assertf(n >= 0 && n <= MAX_NUM_BIT_READ, "n_bits %d out of range", n)
	if br.eos {
		return 0, fmt.Errorf("%w at bit %d", ErrEndOfStream, br.BitPos())
	}
	br.shiftBytes()
	if n > br.nbits {
		pos, avail := br.BitPos(), br.nbits
		br.setEndOfStream()
		return 0, fmt.Errorf("%w: %d bits requested at bit %d, %d available", ErrEndOfStream, n, pos, avail)
	}
	val := uint32(br.val) & kBitMask[n]
	br.val >>= uint(n)
	br.nbits -= n
	return val, nil
}

// ReadBit reads a single bit as a flag.
func (br *Reader) ReadBit() (bool, error) {
	v, err := br.ReadBits(1)
	return v == 1, err
}

// PeekBits returns the next n bits without consuming them. Bits past the end
// of the buffer read as zero.
func (br *Reader) PeekBits(n int) uint32 {
	assert.Assertf(n >= 0 && n <= MAX_NUM_BIT_READ, "n_bits %d out of range", n)
	br.shiftBytes()
	return uint32(br.val) & kBitMask[n]
}

// BitPos is the number of bits consumed so far.
func (br *Reader) BitPos() int {
	return br.pos*8 - br.nbits
}

// IsEndOfStream reports whether there was an attempt at reading past the end
// of the buffer.
func (br *Reader) IsEndOfStream() bool {
	return br.eos
}

func (br *Reader) setEndOfStream() {
	br.eos = true
	br.val = 0
	br.nbits = 0
	br.pos = len(br.buf)
}
