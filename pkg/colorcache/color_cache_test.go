package colorcache_test

import (
	"testing"

	"github.com/daanv2/go-webp-huffman/pkg/colorcache"
	"github.com/stretchr/testify/require"
)

func TestCacheInsertLookup(t *testing.T) {
	cc := colorcache.New(4)
	require.Equal(t, 16, cc.Size())

	colors := []uint32{0xff000000, 0xff102030, 0x80ffffff, 0x00000001}
	for _, argb := range colors {
		cc.Insert(argb)
		key := colorcache.HashPix(argb, 32-4)
		require.Less(t, key, cc.Size())
		require.Equal(t, argb, cc.Lookup(key))
	}
}

func TestCacheInsertReplaces(t *testing.T) {
	cc := colorcache.New(1)
	require.Equal(t, uint32(0), cc.Lookup(0))
	require.Equal(t, uint32(0), cc.Lookup(1))

	// 0 and 2 hash to the same key with one hash bit.
	require.Equal(t, colorcache.HashPix(0, 31), colorcache.HashPix(2, 31))
	cc.Insert(2)
	require.Equal(t, uint32(2), cc.Lookup(colorcache.HashPix(2, 31)))
	cc.Insert(0)
	require.Equal(t, uint32(0), cc.Lookup(colorcache.HashPix(2, 31)))
}

func TestCacheHash(t *testing.T) {
	// (argb * 0x1e35a7bd) >> (32 - bits)
	require.Equal(t, 0, colorcache.HashPix(0, 21))
	require.Equal(t, 0xf1, colorcache.HashPix(1, 21))
	require.Equal(t, 1, colorcache.HashPix(1, 28))
}

func TestNewOutOfRange(t *testing.T) {
	require.Panics(t, func() { colorcache.New(0) })
	require.Panics(t, func() { colorcache.New(12) })
}
