package huffman_test

import (
	"testing"

	"github.com/daanv2/go-webp-huffman/pkg/bits"
	"github.com/daanv2/go-webp-huffman/pkg/huffman"
	"github.com/stretchr/testify/require"
)

func TestAlphabetSize(t *testing.T) {
	require.Equal(t, 280, huffman.AlphabetSize(huffman.GREEN, 0))
	require.Equal(t, 280+16, huffman.AlphabetSize(huffman.GREEN, 4))
	require.Equal(t, 280+2048, huffman.AlphabetSize(huffman.GREEN, 11))
	require.Equal(t, 256, huffman.AlphabetSize(huffman.RED, 4))
	require.Equal(t, 256, huffman.AlphabetSize(huffman.BLUE, 4))
	require.Equal(t, 256, huffman.AlphabetSize(huffman.ALPHA, 4))
	require.Equal(t, 40, huffman.AlphabetSize(huffman.DIST, 4))
}

func TestReadGroupOrder(t *testing.T) {
	w := bits.NewWriter(0)
	for _, symbol := range []int{10, 20, 30, 40, 39} {
		writeSimpleTable(w, symbol)
	}

	br := bits.NewReader(w.Bytes())
	g, err := huffman.ReadGroup(br, 0)
	require.NoError(t, err)
	require.Equal(t, w.NumBits(), br.BitPos())

	want := []struct {
		symbol       uint16
		alphabetSize int
	}{{10, 280}, {20, 256}, {30, 256}, {40, 256}, {39, 40}}
	for i, table := range g.Tables() {
		require.Equal(t, want[i].alphabetSize, table.AlphabetSize(), "table %s", huffman.HuffIndex(i))
		require.Equal(t, want[i].symbol, table.TrivialSymbol(), "table %s", huffman.HuffIndex(i))
	}
	require.Same(t, g.Main, g.Tables()[huffman.GREEN])
	require.Same(t, g.Distance, g.Tables()[huffman.DIST])

	require.True(t, g.IsTrivialLiteral)
	require.True(t, g.IsTrivialCode)
	require.Equal(t, uint32(40<<24|20<<16|10<<8|30), g.LiteralARB)
}

func TestReadGroupColorCache(t *testing.T) {
	lengths := make([]int, huffman.AlphabetSize(huffman.GREEN, 3))
	for i := range lengths {
		lengths[i] = 9
	}
	// 288 9-bit codes: 256 literals, 24 lengths and 8 cache entries.
	w := bits.NewWriter(0)
	writeTable(w, lengths)
	writeSimpleTable(w, 1, 2)
	writeSimpleTable(w, 3)
	writeSimpleTable(w, 4)
	writeSimpleTable(w, 5, 6)

	enc := newEncoder(lengths)
	enc.write(w, 287)
	w.WriteBit(true)

	br := bits.NewReader(w.Bytes())
	g, err := huffman.ReadGroup(br, 3)
	require.NoError(t, err)
	require.Equal(t, 288, g.Main.AlphabetSize())
	require.False(t, g.IsTrivialLiteral)
	require.False(t, g.IsTrivialCode)

	s, err := g.Main.ReadSymbol(br)
	require.NoError(t, err)
	require.Equal(t, uint16(287), s)
	s, err = g.Red.ReadSymbol(br)
	require.NoError(t, err)
	require.Equal(t, uint16(2), s)
}

func TestReadGroupTrivialLiteralWithBackwardReference(t *testing.T) {
	// The green code holds a single length prefix symbol: the literals are
	// trivial but the code is not.
	lengths := make([]int, 280)
	lengths[260] = 1

	w := bits.NewWriter(0)
	writeTable(w, lengths)
	for _, symbol := range []int{1, 2, 3, 0} {
		writeSimpleTable(w, symbol)
	}

	g, err := huffman.ReadGroup(bits.NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	require.Equal(t, uint16(260), g.Main.TrivialSymbol())
	require.True(t, g.IsTrivialLiteral)
	require.False(t, g.IsTrivialCode)
	require.Equal(t, uint32(3<<24|1<<16|2), g.LiteralARB)
}

func TestReadGroupRepeatedSimpleSymbol(t *testing.T) {
	// A red code sending the same symbol twice still costs one bit per
	// literal, so neither fast path applies.
	w := bits.NewWriter(0)
	writeSimpleTable(w, 10)
	writeSimpleTable(w, 7, 7)
	for _, symbol := range []int{3, 255, 0} {
		writeSimpleTable(w, symbol)
	}

	g, err := huffman.ReadGroup(bits.NewReader(w.Bytes()), 0)
	require.NoError(t, err)
	require.False(t, g.Red.IsTrivial())
	require.False(t, g.IsTrivialLiteral)
	require.False(t, g.IsTrivialCode)

	br := bits.NewReader([]uint8{0x01})
	s, err := g.Red.ReadSymbol(br)
	require.NoError(t, err)
	require.Equal(t, uint16(7), s)
	require.Equal(t, 1, br.BitPos())
}

func TestReadGroupErrors(t *testing.T) {
	w := bits.NewWriter(0)
	for _, symbol := range []int{10, 20, 30} {
		writeSimpleTable(w, symbol)
	}

	_, err := huffman.ReadGroup(bits.NewReader(w.Bytes()), 0)
	require.ErrorIs(t, err, bits.ErrEndOfStream)
	require.ErrorContains(t, err, "reading alpha code")

	w = bits.NewWriter(0)
	for _, symbol := range []int{10, 20, 30, 40, 41} {
		writeSimpleTable(w, symbol)
	}
	_, err = huffman.ReadGroup(bits.NewReader(w.Bytes()), 0)
	require.ErrorIs(t, err, huffman.ErrInvalidCode)
	require.ErrorContains(t, err, "reading distance code")
}
