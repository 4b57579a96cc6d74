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

// readCodeLengths decodes the code lengths of an alphabetSize alphabet. The
// lengths are themselves Huffman coded with a 19 symbol code whose 3-bit
// lengths come first, in kCodeLengthCodeOrder.
func readCodeLengths(src BitSource, alphabetSize int) ([]int, error) {
	v, err := src.ReadBits(4)
	if err != nil {
		return nil, err
	}
	numCodes := int(v) + 4

	var codeLengthCodeLengths [NUM_CODE_LENGTH_CODES]int
	for i := 0; i < numCodes; i++ {
		v, err := src.ReadBits(3)
		if err != nil {
			return nil, err
		}
		codeLengthCodeLengths[kCodeLengthCodeOrder[i]] = int(v)
	}

	lengthsTable, err := NewTable(codeLengthCodeLengths[:])
	if err != nil {
		return nil, fmt.Errorf("code length code: %w", err)
	}

	maxSymbol := alphabetSize
	useLength, err := src.ReadBit()
	if err != nil {
		return nil, err
	}
	if useLength {
		v, err := src.ReadBits(3)
		if err != nil {
			return nil, err
		}
		lengthNBits := 2 + 2*int(v)
		v, err = src.ReadBits(lengthNBits)
		if err != nil {
			return nil, err
		}
		maxSymbol = 2 + int(v)
		if maxSymbol > alphabetSize {
			return nil, fmt.Errorf("%w: %d coded symbols for an alphabet of %d", ErrInvalidCode, maxSymbol, alphabetSize)
		}
	}

	codeLengths := make([]int, alphabetSize)
	prevCodeLen := constants.DEFAULT_CODE_LENGTH
	for symbol := 0; symbol < alphabetSize; {
		if maxSymbol == 0 {
			break
		}
		maxSymbol--

		codeLen, err := lengthsTable.ReadSymbol(src)
		if err != nil {
			return nil, fmt.Errorf("code length of symbol %d: %w", symbol, err)
		}
		switch {
		case codeLen < kCodeLengthLiterals:
			codeLengths[symbol] = int(codeLen)
			symbol++
			if codeLen != 0 {
				prevCodeLen = int(codeLen)
			}
		case codeLen <= kCodeLengthMaxCode:
			slot := codeLen - kCodeLengthLiterals
			extra, err := src.ReadBits(kCodeLengthExtraBits[slot])
			if err != nil {
				return nil, fmt.Errorf("repeat count at symbol %d: %w", symbol, err)
			}
			repeat := int(extra) + kCodeLengthRepeatOffsets[slot]
			if symbol+repeat > alphabetSize {
				return nil, fmt.Errorf("%w: %d repeats at symbol %d, alphabet size %d", ErrRepeatOverflow, repeat, symbol, alphabetSize)
			}
			length := 0
			if codeLen == kCodeLengthRepeatCode {
				length = prevCodeLen
			}
			for ; repeat > 0; repeat-- {
				codeLengths[symbol] = length
				symbol++
			}
		default:
			return nil, fmt.Errorf("%w: got %d at symbol %d", ErrMalformedLength, codeLen, symbol)
		}
	}
	return codeLengths, nil
}
