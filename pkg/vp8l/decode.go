// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp8l

import (
	"github.com/daanv2/go-webp-huffman/pkg/config"
	"github.com/daanv2/go-webp-huffman/pkg/huffman"
)

// Image is a decoded transform-free VP8L image.
type Image struct {
	Header
	ColorCacheBits int
	Codes          *huffman.Info
	Pix            []uint32 // ARGB, row-major
}

// Decode decodes a VP8L bitstream, starting at the signature byte.
func Decode(data []uint8, conf *config.Config) (*Image, error) {
	dec, err := NewDecoder(data, conf)
	if err != nil {
		return nil, err
	}
	hdr, err := ReadHeader(dec.br)
	if err != nil {
		return nil, err
	}
	pix, err := dec.DecodeImageStream(hdr.Width, hdr.Height, true)
	if err != nil {
		return nil, err
	}
	return &Image{
		Header:         hdr,
		ColorCacheBits: dec.colorCacheBits,
		Codes:          dec.codes,
		Pix:            pix,
	}, nil
}

// At returns the ARGB pixel at (x, y).
func (img *Image) At(x, y int) uint32 {
	return img.Pix[y*img.Width+x]
}
