// Copyright 2012 Google Inc. All Rights Reserved.
//
// Use of this source code is governed by a BSD-style license
// that can be found in the COPYING file in the root of the source
// tree. An additional intellectual property rights grant can be found
// in the file PATENTS. All contributing project authors may
// be found in the AUTHORS file in the root of the source tree.

package vp8l

import "errors"

var (
	ErrBadSignature           = errors.New("vp8l: bad signature")
	ErrUnsupportedVersion     = errors.New("vp8l: unsupported version")
	ErrUnsupportedTransform   = errors.New("vp8l: transforms are not supported")
	ErrInvalidColorCacheBits  = errors.New("vp8l: invalid color cache bits")
	ErrInvalidBackwardRef     = errors.New("vp8l: backward reference out of bounds")
	ErrInvalidColorCacheIndex = errors.New("vp8l: invalid color cache index")
	ErrImageTooLarge          = errors.New("vp8l: image too large")
)
