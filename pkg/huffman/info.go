// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package huffman

import "fmt"

// Info selects the Group used at each pixel. The image is divided in blocks
// of 1<<bits pixels, each block holding the index of its group.
type Info struct {
	bits   int
	xsize  int // width of the meta image, in blocks
	image  []uint32
	groups []*Group
}

// NewInfo associates groups with the meta image of xsize blocks per row.
// With bits == 0 there is no meta image and every pixel uses groups[0].
func NewInfo(groups []*Group, image []uint32, xsize int, bits int) (*Info, error) {
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no groups", ErrInvalidGroupIndex)
	}
	if bits > 0 {
		if xsize <= 0 || len(image) == 0 || len(image)%xsize != 0 {
			return nil, fmt.Errorf("huffman: meta image of %d entries does not fit width %d", len(image), xsize)
		}
		for i, index := range image {
			if int(index) >= len(groups) {
				return nil, fmt.Errorf("%w: block %d uses group %d of %d", ErrInvalidGroupIndex, i, index, len(groups))
			}
		}
	}
	return &Info{bits: bits, xsize: xsize, image: image, groups: groups}, nil
}

// GroupIndexAt returns the index of the group used at pixel (x, y).
func (h *Info) GroupIndexAt(x, y int) int {
	if h.bits == 0 {
		return 0
	}
	return int(h.image[h.xsize*(y>>h.bits)+(x>>h.bits)])
}

// GroupAt returns the group used at pixel (x, y).
func (h *Info) GroupAt(x, y int) *Group {
	return h.groups[h.GroupIndexAt(x, y)]
}

// Bits is the log2 size of the meta code blocks, 0 without meta codes.
func (h *Info) Bits() int { return h.bits }

func (h *Info) NumGroups() int { return len(h.groups) }

func (h *Info) Group(i int) *Group { return h.groups[i] }
