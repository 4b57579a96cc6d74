// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

import "errors"

var (
	ErrMalformedLength   = errors.New("huffman: decoded code length > 18 is unreachable")
	ErrRepeatOverflow    = errors.New("huffman: code length repeat runs past the alphabet")
	ErrEmptyCode         = errors.New("huffman: all code lengths are zero")
	ErrInvalidCode       = errors.New("huffman: invalid Huffman code")
	ErrInvalidGroupIndex = errors.New("huffman: meta code group index out of range")
)
