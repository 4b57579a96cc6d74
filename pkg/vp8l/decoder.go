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
	"github.com/daanv2/go-webp-huffman/pkg/colorcache"
	"github.com/daanv2/go-webp-huffman/pkg/config"
	"github.com/daanv2/go-webp-huffman/pkg/constants"
	"github.com/daanv2/go-webp-huffman/pkg/huffman"
)

// Decoder reads entropy-coded images from a VP8L bitstream.
type Decoder struct {
	br   *bits.Reader
	conf *config.Config

	// Set by the level-0 image stream.
	colorCacheBits int
	codes          *huffman.Info
}

// NewDecoder returns a decoder reading data. A nil conf uses the defaults.
func NewDecoder(data []uint8, conf *config.Config) (*Decoder, error) {
	if conf == nil {
		conf = config.Default()
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &Decoder{br: bits.NewReader(data), conf: conf}, nil
}

// BitReader exposes the underlying bit reader.
func (dec *Decoder) BitReader() *bits.Reader { return dec.br }

// ColorCacheBits of the main image, 0 when it has no color cache.
func (dec *Decoder) ColorCacheBits() int { return dec.colorCacheBits }

// Codes of the main image, nil until DecodeImageStream ran at level 0.
func (dec *Decoder) Codes() *huffman.Info { return dec.codes }

func (dec *Decoder) readColorCacheBits() (int, error) {
	present, err := dec.br.ReadBit()
	if err != nil || !present {
		return 0, err
	}
	v, err := dec.br.ReadBits(4)
	if err != nil {
		return 0, err
	}
	if v < 1 || v > constants.MAX_CACHE_BITS {
		return 0, fmt.Errorf("%w: %d", ErrInvalidColorCacheBits, v)
	}
	return int(v), nil
}

// ReadHuffmanCodes reads the meta code image (when allowMeta is set and the
// stream carries one) and every Huffman code group of an image of
// xsize * ysize pixels.
func (dec *Decoder) ReadHuffmanCodes(xsize, ysize, colorCacheBits int, allowMeta bool) (*huffman.Info, error) {
	var (
		image        []uint32
		mapping      []int
		numBits      = 0
		huffXSize    = 0
		numGroups    = 1
		numGroupsMax = 1
	)

	if allowMeta {
		meta, err := dec.br.ReadBit()
		if err != nil {
			return nil, err
		}
		if meta {
			v, err := dec.br.ReadBits(constants.NUM_HUFFMAN_BITS)
			if err != nil {
				return nil, err
			}
			numBits = int(v) + constants.MIN_HUFFMAN_BITS
			huffXSize = SubSampleSize(xsize, numBits)
			huffYSize := SubSampleSize(ysize, numBits)
			image, err = dec.DecodeImageStream(huffXSize, huffYSize, false)
			if err != nil {
				return nil, fmt.Errorf("vp8l: reading meta code image: %w", err)
			}
			for i := range image {
				// The group index is stored in the red and green bytes.
				group := (image[i] >> 8) & 0xffff
				image[i] = group
				if int(group) >= numGroupsMax {
					numGroupsMax = int(group) + 1
				}
			}

			// Sparse group indices waste memory on groups nothing points
			// to. Compact them to the groups that are actually used.
			if numGroupsMax > dec.conf.GroupRemapThreshold || numGroupsMax > xsize*ysize {
				mapping = make([]int, numGroupsMax)
				for i := range mapping {
					mapping[i] = -1
				}
				numGroups = 0
				for i := range image {
					m := &mapping[image[i]]
					if *m == -1 {
						*m = numGroups
						numGroups++
					}
					image[i] = uint32(*m)
				}
			} else {
				numGroups = numGroupsMax
			}
		}
	}

	groups := make([]*huffman.Group, numGroups)
	for i := 0; i < numGroupsMax; i++ {
		group, err := huffman.ReadGroup(dec.br, colorCacheBits)
		if err != nil {
			return nil, fmt.Errorf("vp8l: reading group %d: %w", i, err)
		}
		if mapping == nil {
			groups[i] = group
		} else if mapping[i] != -1 {
			groups[mapping[i]] = group
		}
		// Unused groups are validated and then dropped.
	}

	return huffman.NewInfo(groups, image, huffXSize, numBits)
}

// DecodeImageStream decodes an entropy-coded image of xsize * ysize pixels.
// The level-0 image is the main image, others are sub-images such as the
// meta code image.
func (dec *Decoder) DecodeImageStream(xsize, ysize int, isLevel0 bool) ([]uint32, error) {
	if isLevel0 {
		transform, err := dec.br.ReadBit()
		if err != nil {
			return nil, err
		}
		if transform {
			return nil, ErrUnsupportedTransform
		}
	}

	colorCacheBits, err := dec.readColorCacheBits()
	if err != nil {
		return nil, err
	}

	codes, err := dec.ReadHuffmanCodes(xsize, ysize, colorCacheBits, isLevel0)
	if err != nil {
		return nil, err
	}

	var cache *colorcache.Cache
	if colorCacheBits > 0 {
		cache = colorcache.New(colorCacheBits)
	}

	if isLevel0 {
		dec.colorCacheBits = colorCacheBits
		dec.codes = codes
	}

	if xsize*ysize > dec.conf.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageTooLarge, xsize, ysize)
	}
	pixels := make([]uint32, xsize*ysize)
	if err := dec.decodeImageData(pixels, xsize, codes, cache); err != nil {
		return nil, err
	}
	return pixels, nil
}

func (dec *Decoder) decodeImageData(data []uint32, width int, codes *huffman.Info, cache *colorcache.Cache) error {
	br := dec.br
	lenCodeLimit := constants.NUM_LITERAL_CODES + constants.NUM_LENGTH_CODES
	colorCacheLimit := lenCodeLimit
	if cache != nil {
		colorCacheLimit += cache.Size()
	}
	mask := -1
	if codes.Bits() > 0 {
		mask = (1 << codes.Bits()) - 1
	}

	var group *huffman.Group
	pos, last := 0, len(data)
	x, y := 0, 0
	emit := func(argb uint32) {
		data[pos] = argb
		if cache != nil {
			cache.Insert(argb)
		}
		pos++
		x++
		if x >= width {
			x = 0
			y++
		}
	}

	for pos < last {
		if x&mask == 0 {
			group = codes.GroupAt(x, y)
		}
		if group.IsTrivialCode {
			emit(group.LiteralARB)
			continue
		}

		sym, err := group.Main.ReadSymbol(br)
		if err != nil {
			return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
		}
		code := int(sym)
		switch {
		case code < constants.NUM_LITERAL_CODES:
			if group.IsTrivialLiteral {
				emit(group.LiteralARB | uint32(code)<<8)
				continue
			}
			red, err := group.Red.ReadSymbol(br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			blue, err := group.Blue.ReadSymbol(br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			alpha, err := group.Alpha.ReadSymbol(br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			emit(uint32(alpha)<<24 | uint32(red)<<16 | uint32(code)<<8 | uint32(blue))

		case code < lenCodeLimit:
			length, err := GetCopyLength(code-constants.NUM_LITERAL_CODES, br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			distSymbol, err := group.Distance.ReadSymbol(br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			distCode, err := GetCopyDistance(int(distSymbol), br)
			if err != nil {
				return fmt.Errorf("vp8l: pixel %d: %w", pos, err)
			}
			dist := PlaneCodeToDistance(width, distCode)
			if pos < dist || last-pos < length {
				return fmt.Errorf("%w: distance %d length %d at pixel %d of %d", ErrInvalidBackwardRef, dist, length, pos, last)
			}
			// Source and destination may overlap, copy forward pixel by pixel.
			for i := 0; i < length; i++ {
				emit(data[pos-dist])
			}
			if pos < last && x&mask != 0 {
				group = codes.GroupAt(x, y)
			}

		case code < colorCacheLimit:
			key := code - lenCodeLimit
			emit(cache.Lookup(key))

		default:
			return fmt.Errorf("%w: symbol %d at pixel %d", ErrInvalidColorCacheIndex, code, pos)
		}
	}
	return nil
}
