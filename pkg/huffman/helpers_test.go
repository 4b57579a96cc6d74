package huffman_test

import (
	mbits "math/bits"
	"testing"

	"github.com/daanv2/go-webp-huffman/pkg/bits"
	"github.com/daanv2/go-webp-huffman/pkg/huffman"
	"github.com/stretchr/testify/require"
)

// canonicalCodes returns the bit reversed canonical code of each symbol, ready
// to be written LSB first.
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

func (e *encoder) write(w *bits.Writer, symbol int) {
	w.WriteBits(e.codes[symbol], e.lengths[symbol])
}

// lcodeLengths is a complete code over the 19 code length codes.
func lcodeLengths() []int {
	lengths := make([]int, huffman.NUM_CODE_LENGTH_CODES)
	for i := range lengths {
		if i < 13 {
			lengths[i] = 4
		} else {
			lengths[i] = 5
		}
	}
	return lengths
}

var kExtraBits = map[int]int{16: 2, 17: 3, 18: 7}

type lengthOp struct {
	sym   int
	extra uint32
}

// writeCodeLengths writes the code length code followed by ops. codedSymbols,
// when non-zero, is written as the truncated number of coded symbols.
func writeCodeLengths(w *bits.Writer, codedSymbols int, ops ...lengthOp) {
	lengths := lcodeLengths()
	w.WriteBits(huffman.NUM_CODE_LENGTH_CODES-4, 4)
	for _, sym := range huffman.CodeLengthCodeOrd {
		w.WriteBits(uint32(lengths[sym]), 3)
	}

	if codedSymbols > 0 {
		w.WriteBit(true)
		value := uint32(codedSymbols - 2)
		k := 0
		for 2+2*k < mbits.Len32(value) {
			k++
		}
		w.WriteBits(uint32(k), 3)
		w.WriteBits(value, 2+2*k)
	} else {
		w.WriteBit(false)
	}

	enc := newEncoder(lengths)
	for _, op := range ops {
		enc.write(w, op.sym)
		if n, ok := kExtraBits[op.sym]; ok {
			w.WriteBits(op.extra, n)
		}
	}
}

// writeTable writes a normal (non-simple) code for lengths, every length as a
// literal.
func writeTable(w *bits.Writer, lengths []int) {
	w.WriteBit(false)
	ops := make([]lengthOp, len(lengths))
	for i, l := range lengths {
		ops[i] = lengthOp{sym: l}
	}
	writeCodeLengths(w, 0, ops...)
}

// writeSimpleTable writes a simple code of one or two 8-bit symbols.
func writeSimpleTable(w *bits.Writer, symbols ...int) {
	w.WriteBit(true)
	w.WriteBits(uint32(len(symbols)-1), 1)
	w.WriteBit(true)
	for _, s := range symbols {
		w.WriteBits(uint32(s), 8)
	}
}

func requireDecodes(t *testing.T, table *huffman.Table, data []uint8, want []int) *bits.Reader {
	t.Helper()

	br := bits.NewReader(data)
	for i, symbol := range want {
		got, err := table.ReadSymbol(br)
		require.NoError(t, err, "symbol %d", i)
		require.Equal(t, symbol, int(got), "symbol %d", i)
	}
	return br
}
