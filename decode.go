// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package webp

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/daanv2/go-webp-huffman/pkg/config"
	"github.com/daanv2/go-webp-huffman/pkg/vp8l"
	"github.com/klauspost/compress/zstd"
)

var zstdMagic = []uint8{0x28, 0xb5, 0x2f, 0xfd}

// DecodeLossless reads a raw VP8L bitstream from r and decodes it. Input
// framed as zstd is decompressed first.
func DecodeLossless(r io.Reader, conf *config.Config) (*vp8l.Image, error) {
	if r == nil {
		return nil, errors.New("reader is nil")
	}
	if conf == nil {
		conf = config.Default()
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data, err = Unwrap(data)
	if err != nil {
		return nil, err
	}
	if !vp8l.CheckSignature(data) {
		return nil, vp8l.ErrBadSignature
	}
	return vp8l.Decode(data, conf)
}

// Unwrap returns data decompressed when it starts with a zstd frame, and
// data itself otherwise.
func Unwrap(data []uint8) ([]uint8, error) {
	if !bytes.HasPrefix(data, zstdMagic) {
		return data, nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1), zstd.WithDecoderLowmem(true))
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	plain, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	return plain, nil
}
