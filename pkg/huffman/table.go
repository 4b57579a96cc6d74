// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.
// -----------------------------------------------------------------------------
//
// Two-level lookup tables for the canonical Huffman codes of VP8L.

package huffman

import (
	"fmt"

	"github.com/daanv2/go-webp-huffman/pkg/assert"
	"github.com/daanv2/go-webp-huffman/pkg/constants"
)

// Table decodes one canonical Huffman code. The first level is indexed by the
// next HUFFMAN_TABLE_BITS bits of the stream; codes longer than that continue
// in a second level table selected by the first level entry.
//
// A Table is immutable once built and may be shared between goroutines.
type Table struct {
	level1 [HUFFMAN_TABLE_SIZE]code
	level2 [][]code

	alphabetSize int
	numSymbols   int
	maxLength    int
}

// NewTable builds the table of the canonical code given by codeLengths,
// indexed by symbol. The alphabet size is len(codeLengths).
func NewTable(codeLengths []int) (*Table, error) {
	t := &Table{alphabetSize: len(codeLengths)}
	if err := t.build(codeLengths); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadTable reads a Huffman code for an alphabet of alphabetSize symbols from
// src, either as a simple code of one or two symbols or as Huffman-coded code
// lengths.
func ReadTable(src BitSource, alphabetSize int) (*Table, error) {
	assert.Assertf(alphabetSize > 0 && alphabetSize <= constants.MAX_CODE_LENGTHS_SIZE,
		"alphabet size %d out of range", alphabetSize)

	simpleCode, err := src.ReadBit()
	if err != nil {
		return nil, err
	}

	if simpleCode {
		return readSimpleCode(src, alphabetSize)
	}
	codeLengths, err := readCodeLengths(src, alphabetSize)
	if err != nil {
		return nil, err
	}
	return NewTable(codeLengths)
}

// Read symbols directly. A single symbol is decoded without consuming bits.
// With two symbols, every even first level index decodes the first one and
// every odd index the second, whatever their values.
func readSimpleCode(src BitSource, alphabetSize int) (*Table, error) {
	v, err := src.ReadBits(1)
	if err != nil {
		return nil, err
	}
	numSymbols := int(v) + 1

	first8Bits, err := src.ReadBit()
	if err != nil {
		return nil, err
	}
	// The first code is either 1 bit or 8 bit code.
	firstBits := 1
	if first8Bits {
		firstBits = 8
	}

	var symbols [2]uint16
	for i := 0; i < numSymbols; i++ {
		n := 8
		if i == 0 {
			n = firstBits
		}
		symbol, err := src.ReadBits(n)
		if err != nil {
			return nil, err
		}
		if int(symbol) >= alphabetSize {
			return nil, fmt.Errorf("%w: simple code symbol %d outside alphabet of %d", ErrInvalidCode, symbol, alphabetSize)
		}
		symbols[i] = uint16(symbol)
	}

	t := &Table{alphabetSize: alphabetSize, numSymbols: numSymbols}
	if numSymbols == 1 {
		replicateValue(t.level1[:], 1, HUFFMAN_TABLE_SIZE, code{bits: 0, value: symbols[0]})
		return t, nil
	}
	t.maxLength = 1
	for i := range t.level1 {
		t.level1[i] = code{bits: 1, value: symbols[i&1]}
	}
	return t, nil
}

// ReadSymbol decodes the next symbol from src, consuming exactly the bits of
// its code.
func (t *Table) ReadSymbol(src BitSource) (uint16, error) {
	entry := t.level1[src.PeekBits(HUFFMAN_TABLE_BITS)]
	if nbits := int(entry.bits) - HUFFMAN_TABLE_BITS; nbits > 0 {
		if _, err := src.ReadBits(HUFFMAN_TABLE_BITS); err != nil {
			return 0, err
		}
		entry = t.level2[entry.value][src.PeekBits(nbits)]
	}
	if _, err := src.ReadBits(int(entry.bits)); err != nil {
		return 0, err
	}
	return entry.value, nil
}

// AlphabetSize is the number of symbols the code was built for.
func (t *Table) AlphabetSize() int { return t.alphabetSize }

// NumSymbols is the number of codes of the table. A simple code may hold the
// same symbol twice.
func (t *Table) NumSymbols() int { return t.numSymbols }

// MaxCodeLength is the length of the longest code, 0 for a single symbol code.
func (t *Table) MaxCodeLength() int { return t.maxLength }

// Level2Tables is the number of second level tables.
func (t *Table) Level2Tables() int { return len(t.level2) }

// IsTrivial reports whether the code holds a single symbol, decoded without
// consuming any bits.
func (t *Table) IsTrivial() bool { return t.numSymbols == 1 }

// TrivialSymbol is the symbol of a trivial code.
func (t *Table) TrivialSymbol() uint16 {
	assert.Assert(t.IsTrivial())
	return t.level1[0].value
}
