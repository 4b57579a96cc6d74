// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp8l

import (
	"github.com/daanv2/go-webp-huffman/pkg/bits"
)

const CODE_TO_PLANE_CODES = 120

var kCodeToPlane = [CODE_TO_PLANE_CODES]uint8{
	0x18, 0x07, 0x17, 0x19, 0x28, 0x06, 0x27, 0x29, 0x16, 0x1a,
	0x26, 0x2a, 0x38, 0x05, 0x37, 0x39, 0x15, 0x1b, 0x36, 0x3a,
	0x25, 0x2b, 0x48, 0x04, 0x47, 0x49, 0x14, 0x1c, 0x35, 0x3b,
	0x46, 0x4a, 0x24, 0x2c, 0x58, 0x45, 0x4b, 0x34, 0x3c, 0x03,
	0x57, 0x59, 0x13, 0x1d, 0x56, 0x5a, 0x23, 0x2d, 0x44, 0x4c,
	0x55, 0x5b, 0x33, 0x3d, 0x68, 0x02, 0x67, 0x69, 0x12, 0x1e,
	0x66, 0x6a, 0x22, 0x2e, 0x54, 0x5c, 0x43, 0x4d, 0x65, 0x6b,
	0x32, 0x3e, 0x78, 0x01, 0x77, 0x79, 0x53, 0x5d, 0x11, 0x1f,
	0x64, 0x6c, 0x42, 0x4e, 0x76, 0x7a, 0x21, 0x2f, 0x75, 0x7b,
	0x31, 0x3f, 0x63, 0x6d, 0x52, 0x5e, 0x00, 0x74, 0x7c, 0x41,
	0x4f, 0x10, 0x20, 0x62, 0x6e, 0x30, 0x73, 0x7d, 0x51, 0x5f,
	0x40, 0x72, 0x7e, 0x61, 0x6f, 0x50, 0x71, 0x7f, 0x60, 0x70,
}

func GetCopyDistance(distanceSymbol int, br *bits.Reader) (int, error) {
	if distanceSymbol < 4 {
		return distanceSymbol + 1, nil
	}
	extraBits := (distanceSymbol - 2) >> 1
	offset := (2 + (distanceSymbol & 1)) << extraBits
	v, err := br.ReadBits(extraBits)
	if err != nil {
		return 0, err
	}
	return offset + int(v) + 1, nil
}

// Length and distance prefixes are encoded the same way.
func GetCopyLength(lengthSymbol int, br *bits.Reader) (int, error) {
	return GetCopyDistance(lengthSymbol, br)
}

// PlaneCodeToDistance maps a distance code to a pixel distance. The first 120
// codes address a 2D neighbourhood of the current pixel.
func PlaneCodeToDistance(xsize int, planeCode int) int {
	if planeCode > CODE_TO_PLANE_CODES {
		return planeCode - CODE_TO_PLANE_CODES
	}
	distCode := int(kCodeToPlane[planeCode-1])
	yoffset := distCode >> 4
	xoffset := 8 - (distCode & 0xf)
	dist := yoffset*xsize + xoffset
	if dist >= 1 {
		return dist
	}
	return 1 // dist<1 can happen if xsize is very small
}

// SubSampleSize returns the size of an image of size subsampled by 1<<bits,
// rounded up.
func SubSampleSize(size int, bits int) int {
	return (size + (1 << bits) - 1) >> bits
}
