package vp8l_test

import (
	mbits "math/bits"

	"github.com/daanv2/go-webp-huffman/pkg/bits"
)

// stream assembles VP8L bitstreams.
type stream struct {
	*bits.Writer
}

func newStream() *stream {
	return &stream{bits.NewWriter(64)}
}

func (s *stream) header(width, height int) *stream {
	s.WriteBits(0x2f, 8)
	s.WriteBits(uint32(width-1), 14)
	s.WriteBits(uint32(height-1), 14)
	s.WriteBit(true)
	s.WriteBits(0, 3)
	return s
}

// trivial writes a simple code holding only symbol.
func (s *stream) trivial(symbol int) {
	s.WriteBit(true)
	s.WriteBits(0, 1)
	s.WriteBit(true)
	s.WriteBits(uint32(symbol), 8)
}

// group writes a group whose green code is a normal code with lengths
// and all other codes trivial.
func (s *stream) group(alphabetSize int, green map[int]int, red, blue, alpha, dist int) *encoder {
	enc := s.code(alphabetSize, green)
	s.trivial(red)
	s.trivial(blue)
	s.trivial(alpha)
	s.trivial(dist)
	return enc
}

var kCodeLengthCodeOrder = [19]int{17, 18, 0, 1, 2, 3, 4, 5, 16, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}

// code writes a normal code. Code lengths 0..15 are all coded with 4 bits and
// every length is written as a literal.
func (s *stream) code(alphabetSize int, lengths map[int]int) *encoder {
	s.WriteBit(false)
	s.WriteBits(19-4, 4)
	for _, sym := range kCodeLengthCodeOrder {
		if sym < 16 {
			s.WriteBits(4, 3)
		} else {
			s.WriteBits(0, 3)
		}
	}
	s.WriteBit(false)

	all := make([]int, alphabetSize)
	for symbol, l := range lengths {
		all[symbol] = l
	}
	for _, l := range all {
		s.WriteBits(mbits.Reverse32(uint32(l))>>28, 4)
	}
	return newEncoder(all)
}

func canonicalCodes(lengths []int) []uint32 {
	var count [16]uint32
	for _, l := range lengths {
		if l > 0 {
			count[l]++
		}
	}
	var next [16]uint32
	code := uint32(0)
	for l := 1; l < 16; l++ {
		code = (code + count[l-1]) << 1
		next[l] = code
	}
	codes := make([]uint32, len(lengths))
	for symbol, l := range lengths {
		if l == 0 {
			continue
		}
		codes[symbol] = mbits.Reverse32(next[l]) >> (32 - l)
		next[l]++
	}
	return codes
}

type encoder struct {
	lengths []int
	codes   []uint32
}

func newEncoder(lengths []int) *encoder {
	return &encoder{lengths: lengths, codes: canonicalCodes(lengths)}
}

func (e *encoder) write(s *stream, symbols ...int) {
	for _, symbol := range symbols {
		s.WriteBits(e.codes[symbol], e.lengths[symbol])
	}
}
