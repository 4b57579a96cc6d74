// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

import (
	"fmt"

	"github.com/daanv2/go-webp-huffman/pkg/constants"
)

// Group holds the five Huffman codes of one meta code.
type Group struct {
	Main     *Table // green + length prefix codes + color cache codes
	Red      *Table
	Blue     *Table
	Alpha    *Table
	Distance *Table

	// True if red, blue and alpha each hold a single zero-length symbol.
	IsTrivialLiteral bool
	// True if, in addition, the green code holds a single literal.
	IsTrivialCode bool
	// Packed ARGB of the trivial literals. Green is only set when
	// IsTrivialCode is true.
	LiteralARB uint32
}

// ReadGroup reads the five codes of a group from src, in wire order: green,
// red, blue, alpha, distance. colorCacheBits is 0 when no color cache is used.
func ReadGroup(src BitSource, colorCacheBits int) (*Group, error) {
	var htrees [constants.HUFFMAN_CODES_PER_META_CODE]*Table
	for i := range htrees {
		index := HuffIndex(i)
		table, err := ReadTable(src, AlphabetSize(index, colorCacheBits))
		if err != nil {
			return nil, fmt.Errorf("reading %s code: %w", index, err)
		}
		htrees[i] = table
	}

	g := &Group{
		Main:     htrees[GREEN],
		Red:      htrees[RED],
		Blue:     htrees[BLUE],
		Alpha:    htrees[ALPHA],
		Distance: htrees[DIST],
	}
	g.IsTrivialLiteral = g.Red.IsTrivial() && g.Blue.IsTrivial() && g.Alpha.IsTrivial()
	if g.IsTrivialLiteral {
		red := uint32(g.Red.TrivialSymbol())
		blue := uint32(g.Blue.TrivialSymbol())
		alpha := uint32(g.Alpha.TrivialSymbol())
		g.LiteralARB = alpha<<24 | red<<16 | blue
		if g.Main.IsTrivial() && g.Main.TrivialSymbol() < constants.NUM_LITERAL_CODES {
			g.IsTrivialCode = true
			g.LiteralARB |= uint32(g.Main.TrivialSymbol()) << 8
		}
	}
	return g, nil
}

// Tables returns the codes of the group in wire order.
func (g *Group) Tables() [constants.HUFFMAN_CODES_PER_META_CODE]*Table {
	return [...]*Table{g.Main, g.Red, g.Blue, g.Alpha, g.Distance}
}
