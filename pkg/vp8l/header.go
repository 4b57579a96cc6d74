// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp8l

import (
	"fmt"

	"github.com/daanv2/go-webp-huffman/pkg/bits"
	"github.com/daanv2/go-webp-huffman/pkg/constants"
)

// Header is the VP8L frame header.
type Header struct {
	Width    int
	Height   int
	HasAlpha bool // hint only, the pixels hold the actual alpha
	Version  int
}

// CheckSignature returns true if the next bytes in data are a VP8L signature.
func CheckSignature(data []uint8) bool {
	return len(data) >= constants.VP8L_FRAME_HEADER_SIZE && data[0] == constants.VP8L_MAGIC_BYTE &&
		(data[4]>>5) == 0 // version
}

// ReadHeader reads the signature, dimensions, alpha hint and version.
func ReadHeader(br *bits.Reader) (Header, error) {
	var hdr Header
	magic, err := br.ReadBits(8)
	if err != nil {
		return hdr, err
	}
	if magic != constants.VP8L_MAGIC_BYTE {
		return hdr, fmt.Errorf("%w: %#x", ErrBadSignature, magic)
	}

	width, err := br.ReadBits(constants.VP8L_IMAGE_SIZE_BITS)
	if err != nil {
		return hdr, err
	}
	height, err := br.ReadBits(constants.VP8L_IMAGE_SIZE_BITS)
	if err != nil {
		return hdr, err
	}
	hasAlpha, err := br.ReadBit()
	if err != nil {
		return hdr, err
	}
	version, err := br.ReadBits(constants.VP8L_VERSION_BITS)
	if err != nil {
		return hdr, err
	}
	if version != constants.VP8L_VERSION {
		return hdr, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	hdr.Width = int(width) + 1
	hdr.Height = int(height) + 1
	hdr.HasAlpha = hasAlpha
	hdr.Version = int(version)
	return hdr, nil
}
